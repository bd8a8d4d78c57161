package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryNodeJS = "NODEJS"
	CategoryVPS    = "VPS"
	CategoryPython = "PYTHON"
)

// Product is a fixed hosting-tier offering. Rows are seeded at deployment
// and read-only from the storefront's perspective.
type Product struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Category    string    `gorm:"column:category;not null" json:"category"`
	RAM         int       `gorm:"column:ram" json:"ram"`
	CPU         int       `gorm:"column:cpu" json:"cpu"`
	Price       int       `gorm:"column:price;not null" json:"price"`
	Emoji       string    `gorm:"column:emoji" json:"emoji"`
	IsActive    bool      `gorm:"column:is_active;default:true" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ProductSummary is the projection offered to the dashboard order list.
// Price and category are intentionally excluded.
type ProductSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	RAM         int    `json:"ram"`
	CPU         int    `json:"cpu"`
	Emoji       string `json:"emoji"`
}

func (p Product) Summary() ProductSummary {
	return ProductSummary{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		RAM:         p.RAM,
		CPU:         p.CPU,
		Emoji:       p.Emoji,
	}
}
