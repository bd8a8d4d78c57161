package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"column:email;unique;not null" json:"email"`
	Username    string    `gorm:"column:username;unique;not null" json:"username"`
	Password    string    `gorm:"column:password;not null" json:"-"`
	Role        string    `gorm:"column:role;default:USER" json:"role"`
	FullName    *string   `gorm:"column:full_name" json:"fullName"`
	PhoneNumber *string   `gorm:"column:phone_number" json:"phoneNumber"`
	Whatsapp    *string   `gorm:"column:whatsapp" json:"whatsapp"`
	IsActive    bool      `gorm:"column:is_active;default:true" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// UserSummary is the redacted projection returned alongside orders and in
// auth responses. Never carries the password hash.
type UserSummary struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Username string  `json:"username"`
	Role     string  `json:"role,omitempty"`
	FullName *string `json:"fullName"`
}

func (u User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		Role:     u.Role,
		FullName: u.FullName,
	}
}
