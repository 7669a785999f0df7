package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"          json:"id"`
	Email        string    `gorm:"uniqueIndex;not null"              json:"email"`
	PasswordHash string    `gorm:"not null"                          json:"-"`
	FirstName    string    `gorm:"not null"                          json:"firstName"`
	LastName     string    `gorm:"not null"                          json:"lastName"`
	Role         string    `gorm:"not null;default:user"             json:"role"`
	CreatedAt    time.Time `                                         json:"createdAt"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"        json:"id"`
	Title       string  `gorm:"not null"                        json:"title"`
	Price       float64 `gorm:"not null;check:price >= 0"       json:"price"`
	Description string  `                                       json:"description"`
	Category    string  `gorm:"index"                           json:"category"`
	Image       string  `                                       json:"image"`
	Rating      float64 `gorm:"default:0"                       json:"rating"`
	RatingCount int     `gorm:"default:0"                       json:"ratingCount"`
	Stock       int     `gorm:"not null;check:stock >= 0"       json:"stock"`
}

type CartItem struct {
	ID        uint `gorm:"primaryKey;autoIncrement"                          json:"id"`
	UserID    uint `gorm:"uniqueIndex:idx_cart_user_product;not null"        json:"userId"`
	ProductID uint `gorm:"uniqueIndex:idx_cart_user_product;not null"        json:"productId"`
	Quantity  int  `gorm:"not null;default:1;check:quantity > 0"             json:"quantity"`
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID        uint        `gorm:"primaryKey;autoIncrement"              json:"id"`
	UserID    uint        `gorm:"index;not null"                        json:"userId"`
	Total     float64     `gorm:"not null;check:total >= 0"             json:"total"`
	Status    OrderStatus `gorm:"type:varchar(16);not null;default:completed" json:"status"`
	CreatedAt time.Time   `gorm:"index"                                 json:"createdAt"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// OrderItem freezes price and title at checkout time.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"index;not null"           json:"orderId"`
	ProductID uint    `gorm:"not null"                 json:"productId"`
	Quantity  int     `gorm:"not null"                 json:"quantity"`
	Price     float64 `gorm:"not null"                 json:"price"`
	Title     string  `gorm:"not null"                 json:"title"`
}

type Review struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"                            json:"id"`
	ProductID uint      `gorm:"uniqueIndex:idx_review_product_user;not null"        json:"productId"`
	UserID    uint      `gorm:"uniqueIndex:idx_review_product_user;not null;index"  json:"userId"`
	Rating    int       `gorm:"not null;check:rating BETWEEN 1 AND 5"               json:"rating"`
	Comment   string    `                                                           json:"comment"`
	CreatedAt time.Time `gorm:"index"                                               json:"createdAt"`
}

// RefreshToken stores the sha256 digest of an issued refresh token, never the token itself.
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey"          json:"id"`
	UserID    uint      `gorm:"index;not null"      json:"userId"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	JTI       string    `gorm:"uniqueIndex;not null" json:"jti"`
	ExpiresAt time.Time `gorm:"not null"            json:"expiresAt"`
	CreatedAt time.Time `                           json:"createdAt"`
}

func All() []any {
	return []any{
		&User{},
		&Product{},
		&CartItem{},
		&Order{},
		&OrderItem{},
		&Review{},
		&RefreshToken{},
	}
}
