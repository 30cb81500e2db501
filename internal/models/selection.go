package models

import "strings"

// Selection is the user's chosen combination plus buyer contact info.
// Modules and Options have set semantics: duplicates collapse and order is irrelevant.
type Selection struct {
	Board      string   `json:"board"`
	Modules    []string `json:"modules"`
	Firmware   string   `json:"firmware"`
	Options    []string `json:"options"`
	BuyerName  string   `json:"buyerName"`
	BuyerEmail string   `json:"buyerEmail"`
	Notes      string   `json:"notes,omitempty"`
}

// HasBuyerInfo reports whether both name and email are non-blank
func (s Selection) HasBuyerInfo() bool {
	return strings.TrimSpace(s.BuyerName) != "" && strings.TrimSpace(s.BuyerEmail) != ""
}
