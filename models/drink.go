package models

import "time"

type Size struct {
	Size  string `json:"size"`
	Price Price  `json:"price"`
}

type Drink struct {
	ID        string    `json:"_id"`
	Category  string    `json:"category"`
	Name      string    `json:"name"`
	Image     string    `json:"image,omitempty"`
	IsPopular string    `json:"ispopular"` // "yes" | "no"
	InStock   string    `json:"instock"`   // "yes" | "no"
	Sizes     []Size    `json:"sizes"`
	Deleted   bool      `json:"deleted"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DisplaySize and DisplayPrice are the list-form simplification: a
// drink shows its first size entry.
func (d Drink) DisplaySize() string {
	if len(d.Sizes) == 0 {
		return ""
	}
	return d.Sizes[0].Size
}

func (d Drink) DisplayPrice() Price {
	if len(d.Sizes) == 0 {
		return "0"
	}
	return d.Sizes[0].Price
}
