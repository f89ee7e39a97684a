package models

// Input structs carry the full field set an editor submits. Add and
// update send the same shape; delete sends no body. Validation tags are
// a pre-flight check only; the backend remains the authority.

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type DrinkInput struct {
	Category  string `json:"category" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Image     string `json:"image"`
	IsPopular string `json:"ispopular" validate:"oneof=yes no"`
	InStock   string `json:"instock" validate:"oneof=yes no"`
	Sizes     []Size `json:"sizes" validate:"dive"`
}

type SpecialInput struct {
	Name            string   `json:"name" validate:"required"`
	Type            string   `json:"type" validate:"oneof=set option"`
	Price           Price    `json:"price" validate:"required,numeric"`
	Image           string   `json:"image"`
	OptionsQuantity Count    `json:"optionsQuantity"`
	Options         []string `json:"options"`
	Description     string   `json:"description"`
}

type MenuInput struct {
	Name     string   `json:"name" validate:"required"`
	Drinks   []string `json:"drinks"`
	Specials []string `json:"specials"`
}
