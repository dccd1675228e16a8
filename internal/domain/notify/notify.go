package notify

type Kind string

const (
	KindVendorActivated         Kind = "vendor_activated"
	KindSubscriptionTrialEnding Kind = "subscription_trial_ending"
	KindLoginOTP                Kind = "login_otp"
)

// Notifier delivers a fire-and-forget message. Callers log failures and move
// on; a failed notification never rolls back the operation that emitted it.
type Notifier interface {
	Send(kind Kind, recipient string, payload map[string]string) error
}
