package domain

import "time"

// PriceAlert is a user watch on a route/date/price threshold. IsTriggered
// flips false -> true at most once and is never reset; CurrentPrice is the
// fare that triggered it.
type PriceAlert struct {
	ID           string    `json:"id"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	Date         string    `json:"date"`
	TargetPrice  int       `json:"target_price"`
	IsTriggered  bool      `json:"is_triggered"`
	CurrentPrice int       `json:"current_price,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
