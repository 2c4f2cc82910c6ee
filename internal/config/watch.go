package config

import (
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Watch struct {
	// Period is the interval between two key checks.
	Period time.Duration
	// ExpiryWarning is how long before the key expiry
	// a notification is sent.
	ExpiryWarning time.Duration
}

func (w *Watch) setDefaults() {
	const defaultPeriod = 10 * time.Minute
	w.Period = gosettings.DefaultComparable(w.Period, defaultPeriod)
	const defaultExpiryWarning = 72 * time.Hour
	w.ExpiryWarning = gosettings.DefaultComparable(w.ExpiryWarning, defaultExpiryWarning)
}

func (w Watch) Validate() (err error) {
	return nil
}

func (w Watch) String() string {
	return w.toLinesNode().String()
}

func (w Watch) toLinesNode() *gotree.Node {
	node := gotree.New("Key watch")
	node.Appendf("Period: %s", w.Period)
	node.Appendf("Expiry warning: %s", w.ExpiryWarning)
	return node
}

func (w *Watch) read(reader *reader.Reader) (err error) {
	w.Period, err = reader.Duration("WATCH_PERIOD")
	if err != nil {
		return err
	}

	w.ExpiryWarning, err = reader.Duration("KEY_EXPIRY_WARNING")
	return err
}
