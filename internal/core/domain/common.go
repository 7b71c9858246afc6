package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// DateRange is an optional, inclusive window supplied by a caller.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// IsSet reports whether either bound was supplied.
func (r DateRange) IsSet() bool {
	return r.From != nil || r.To != nil
}
