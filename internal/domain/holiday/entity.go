package holiday

import "time"

// Holiday is a named non-working date. Dates are unique across the calendar.
type Holiday struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	Name     string    `json:"name"`
	Category Category  `json:"category"`
}

type Category string

const (
	CategoryNational Category = "national"
	CategoryOptional Category = "optional"
)
