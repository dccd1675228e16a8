package subscriptions

type Status string

const (
	StatusTrialing  Status = "trialing"
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) Valid() bool {
	switch s {
	case StatusTrialing, StatusActive, StatusCancelled, StatusExpired:
		return true
	}
	return false
}

// Terminal statuses never transition out automatically. A cancelled
// subscription can still fall to expired once its paid-through window ends,
// but it is never reactivated.
func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusExpired
}

// CanUseService reports whether the subscription currently grants access.
func (s Status) CanUseService() bool {
	return s == StatusActive || s == StatusTrialing
}
