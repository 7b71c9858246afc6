package dto

import "time"

// CivilFormatter renders a date in the configured civil calendar.
type CivilFormatter interface {
	Format(t time.Time) string
}

// DateResponse carries a date both as ISO YYYY-MM-DD and in the civil calendar.
type DateResponse struct {
	ISO   string `json:"iso"`
	Civil string `json:"civil"`
}

// ToDateResponse formats t for a response.
func ToDateResponse(t time.Time, cal CivilFormatter) DateResponse {
	return DateResponse{
		ISO:   t.Format(time.DateOnly),
		Civil: cal.Format(t),
	}
}

func toOptionalDate(t *time.Time, cal CivilFormatter) *DateResponse {
	if t == nil {
		return nil
	}
	d := ToDateResponse(*t, cal)
	return &d
}
