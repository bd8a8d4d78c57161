package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ServerStatusActive    = "ACTIVE"
	ServerStatusSuspended = "SUSPENDED"
	ServerStatusExpired   = "EXPIRED"
)

// Server is a provisioned resource record linked back to the order that
// paid for it. Provisioning happens outside the storefront; the storefront
// only reads these rows and expires them when their time runs out.
type Server struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id;not null;index" json:"userId"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Status    string    `gorm:"column:status;default:ACTIVE" json:"status"`
	ExpiresAt time.Time `gorm:"column:expires_at" json:"expiresAt"`
	OrderID   string    `gorm:"column:order_id;not null" json:"orderId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Order *Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`
}

func (Server) TableName() string {
	return "servers"
}

func (s *Server) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
