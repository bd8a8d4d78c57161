package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

// Order is a user's purchase of a product tier for a number of months.
// TotalPrice is computed once at creation and never recomputed, so the
// historical price survives later catalog changes. UserID is immutable and
// is the authorization boundary for every order-scoped read and write.
type Order struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	UserID       string    `gorm:"column:user_id;not null;index" json:"userId"`
	ProductID    string    `gorm:"column:product_id;not null" json:"productId"`
	Duration     int       `gorm:"column:duration;not null" json:"duration"`
	TotalPrice   int       `gorm:"column:total_price;not null" json:"totalPrice"`
	Status       string    `gorm:"column:status;default:PENDING" json:"status"`
	PaymentProof *string   `gorm:"column:payment_proof" json:"paymentProof"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
