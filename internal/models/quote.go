package models

import "time"

// LineItem is a resolved catalog entry on a quote
type LineItem struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Quote is a selection with its resolved lines and computed total.
// It is derived on demand and never stored.
type Quote struct {
	ID        string     `json:"id"`
	Selection Selection  `json:"selection"`
	Board     LineItem   `json:"board"`
	Firmware  *LineItem  `json:"firmware,omitempty"`
	Modules   []LineItem `json:"modules"`
	Options   []LineItem `json:"options"`
	Total     int        `json:"total"`
	CreatedAt time.Time  `json:"createdAt"`
}
