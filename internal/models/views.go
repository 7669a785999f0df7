package models

import "time"

// CartLine is a cart row joined with the live product.
type CartLine struct {
	ID        uint    `json:"id"`
	UserID    uint    `json:"userId"`
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Stock     int     `json:"stock"`
}

type OrderSummary struct {
	ID        uint        `json:"id"`
	UserID    uint        `json:"userId"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	ItemCount int         `json:"itemCount"`
}

type OrderItemView struct {
	OrderItem
	Image string `json:"image"`
}

type OrderDetail struct {
	ID        uint            `json:"id"`
	UserID    uint            `json:"userId"`
	Total     float64         `json:"total"`
	Status    OrderStatus     `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	Items     []OrderItemView `json:"items"`
}

type ReviewView struct {
	Review
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type AdminReviewView struct {
	ReviewView
	Email        string `json:"email"`
	ProductTitle string `json:"productTitle"`
}
