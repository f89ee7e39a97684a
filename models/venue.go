package models

// Venue is the operator's establishment. Singleton per account: each
// operator maps to at most one venue.
type Venue struct {
	ID              string    `json:"_id"`
	Name            string    `json:"name"`
	Logo            string    `json:"logo"`
	StripeLoginLink string    `json:"stripeLoginLink"`
	Drinks          []Drink   `json:"drinks"`
	Specials        []Special `json:"specials"`
	Menus           []Menu    `json:"menus"`
}

func (v Venue) Empty() bool {
	return v.ID == ""
}
