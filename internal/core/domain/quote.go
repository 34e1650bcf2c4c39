package domain

import "time"

// Quote is a proposed price for a service. It is never edited once created;
// ApprovedAt records the last time its owner approved it.
type Quote struct {
	ID          uint
	Description string
	Amount      float64
	ServiceID   uint
	CreatedAt   time.Time
	ApprovedAt  *time.Time
}
