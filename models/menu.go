package models

// Menu is a named, orderable subset of drinks/specials. At most one menu
// per venue is active; the backend enforces that on activate.
type Menu struct {
	ID       string   `json:"_id"`
	Name     string   `json:"name"`
	Active   bool     `json:"active"`
	Drinks   []string `json:"drinks"`   // drink ids
	Specials []string `json:"specials"` // special ids
}
