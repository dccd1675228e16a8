package subscriptions

import (
	"fmt"
	"time"
)

// Patch is an explicit operator edit with named optional fields. Nil means
// "leave alone"; the Clear flags express setting a nullable date to null.
type Patch struct {
	Status               *Status
	ExpiryDate           *time.Time
	ClearExpiryDate      bool
	NextBillingDate      *time.Time
	ClearNextBillingDate bool
	CancelledAt          *time.Time
	ClearCancelledAt     bool
	AutoRenew            *bool
	CancelReason         *string
	Notes                *string
}

func (p Patch) Apply(s *UserSubscription) error {
	if p.Status != nil {
		if !p.Status.Valid() {
			return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, *p.Status)
		}
		s.Status = *p.Status
	}
	if p.ClearExpiryDate {
		s.ExpiryDate = nil
	} else if p.ExpiryDate != nil {
		s.ExpiryDate = p.ExpiryDate
	}
	if p.ClearNextBillingDate {
		s.NextBillingDate = nil
	} else if p.NextBillingDate != nil {
		s.NextBillingDate = p.NextBillingDate
	}
	if p.ClearCancelledAt {
		s.CancelledAt = nil
	} else if p.CancelledAt != nil {
		s.CancelledAt = p.CancelledAt
	}
	if p.AutoRenew != nil {
		s.AutoRenew = *p.AutoRenew
	}
	if p.CancelReason != nil {
		s.CancelReason = p.CancelReason
	}
	if p.Notes != nil {
		s.Notes = p.Notes
	}
	return nil
}
