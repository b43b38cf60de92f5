package hold

import "hotel-booking/internal/pkg/errs"

type Status string

const (
	StatusActive    Status = "active"
	StatusReleased  Status = "released"
	StatusExpired   Status = "expired"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusReleased, StatusExpired, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s.IsValid() && s != StatusActive
}

// ReleaseReason selects the terminal state of a release.
type ReleaseReason string

const (
	ReasonUserCancelled ReleaseReason = "user_cancelled"
	ReasonExpired       ReleaseReason = "expired"
)

func ParseReleaseReason(s string) (ReleaseReason, error) {
	r := ReleaseReason(s)
	if _, err := r.TargetStatus(); err != nil {
		return "", err
	}
	return r, nil
}

func (r ReleaseReason) String() string {
	return string(r)
}

func (r ReleaseReason) TargetStatus() (Status, error) {
	switch r {
	case ReasonUserCancelled:
		return StatusReleased, nil
	case ReasonExpired:
		return StatusExpired, nil
	default:
		return "", errs.Wrapf(errs.ErrValidationFailed, "unknown release reason %q", string(r))
	}
}
