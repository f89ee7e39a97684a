package models

import "time"

// Order is read-only from the dashboard: only filtered historical
// retrieval, no mutations.
type Order struct {
	ID         string        `json:"_id"`
	OrderID    int           `json:"orderID"`
	Customer   OrderCustomer `json:"customer"`
	Drinks     []OrderDrink  `json:"drinks"`
	TotalPrice Price         `json:"totalPrice"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

type OrderCustomer struct {
	Name string `json:"name"`
}

type OrderDrink struct {
	Name           string          `json:"name"`
	Quantity       int             `json:"quantity"`
	Price          Price           `json:"price"`
	Category       string          `json:"category"`
	SpecialOptions []SpecialOption `json:"specialOptions"`
}

type SpecialOption struct {
	DrinkName string `json:"drinkName"`
}
