package config

import (
	"errors"
	"fmt"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/qdm12/log"
)

type Logger struct {
	Caller *bool
	Level  string
}

func (l *Logger) setDefaults() {
	l.Caller = gosettings.DefaultPointer(l.Caller, false)
	l.Level = gosettings.DefaultComparable(l.Level, "info")
}

var ErrLogLevelUnknown = errors.New("log level is unknown")

func (l Logger) Validate() (err error) {
	_, err = log.ParseLevel(l.Level)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrLogLevelUnknown, l.Level)
	}

	return nil
}

func (l Logger) String() string {
	return l.toLinesNode().String()
}

func (l Logger) toLinesNode() *gotree.Node {
	node := gotree.New("Logger")
	node.Appendf("Level: %s", l.Level)
	node.Appendf("Log caller: %t", *l.Caller)
	return node
}

// ToOptions converts the settings to options for the logger,
// to patch it once the configuration has been read.
func (l Logger) ToOptions() (options []log.Option) {
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		// settings are validated before use
		panic(err)
	}
	options = append(options, log.SetLevel(level))
	if *l.Caller {
		options = append(options,
			log.SetCallerFile(true), log.SetCallerLine(true))
	}
	return options
}

func (l *Logger) read(reader *reader.Reader) (err error) {
	l.Caller, err = reader.BoolPtr("LOG_CALLER")
	if err != nil {
		return err
	}

	l.Level = reader.String("LOG_LEVEL")
	return nil
}
