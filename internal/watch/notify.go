package watch

import (
	"strings"
	"time"

	"github.com/cactivenetwork/cactive-hypixel-api/internal/models"
)

func joinIDs(ids []string) string {
	return strings.Join(ids, ", ")
}

// notifyFailure notifies only on the transition from a
// successful check to a failed one, to avoid spamming on
// every cycle of a long outage.
func (s *Service) notifyFailure(previous models.KeyCheck,
	hasPrevious bool, err error) {
	if hasPrevious && !previous.Success {
		return
	}
	s.notifier.Notify("key check failed: " + err.Error())
}

func (s *Service) notifyTransitions(previous models.KeyCheck,
	hasPrevious bool, check models.KeyCheck) {
	previousKnown := hasPrevious && previous.Success

	switch {
	case !check.KeyData.Valid:
		if !previousKnown || previous.KeyData.Valid {
			s.notifier.Notify("API key is no longer valid")
		}
		return
	case !check.KeyData.Active:
		if !previousKnown || previous.KeyData.Active {
			s.notifier.Notify("API key is no longer active")
		}
		return
	}

	if hasPrevious && !previous.Success {
		s.notifier.Notify("key check succeeding again")
	}

	s.notifyEndpointsDown(previous, previousKnown, check)
	s.notifyExpiry(previous, previousKnown, check)
}

func (s *Service) notifyEndpointsDown(previous models.KeyCheck,
	previousKnown bool, check models.KeyCheck) {
	downIDs := check.DownEndpoints()
	if len(downIDs) == 0 {
		return
	}

	previouslyDown := make(map[string]struct{})
	if previousKnown {
		for _, id := range previous.DownEndpoints() {
			previouslyDown[id] = struct{}{}
		}
	}

	var newlyDown []string
	for _, id := range downIDs {
		_, wasDown := previouslyDown[id]
		if !wasDown {
			newlyDown = append(newlyDown, id)
		}
	}

	if len(newlyDown) > 0 {
		s.notifier.Notify("API endpoints newly down: " + joinIDs(newlyDown))
	}
}

func (s *Service) notifyExpiry(previous models.KeyCheck,
	previousKnown bool, check models.KeyCheck) {
	now := s.timeNow()
	expiring, expiresAt := check.ExpiresWithin(now, s.expiryWarning)
	if !expiring {
		return
	}

	if previousKnown {
		alreadyWarned, _ := previous.ExpiresWithin(previous.Time, s.expiryWarning)
		if alreadyWarned {
			return
		}
	}

	s.notifier.Notify("API key expires at " +
		expiresAt.Format(time.RFC3339) + " (in " +
		expiresAt.Sub(now).Round(time.Minute).String() + ")")
}
