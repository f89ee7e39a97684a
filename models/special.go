package models

import "time"

const (
	SpecialTypeSet    = "set"
	SpecialTypeOption = "option"
)

// Special is a composite or discounted offering. When Type is "option",
// Options holds up to OptionsQuantity drink references.
type Special struct {
	ID              string    `json:"_id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"` // "set" | "option"
	Price           Price     `json:"price"`
	Image           string    `json:"image,omitempty"`
	OptionsQuantity Count     `json:"optionsQuantity,omitempty"`
	Options         []string  `json:"options"` // drink ids
	Description     string    `json:"description"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
