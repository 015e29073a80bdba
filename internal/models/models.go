// Package models defines the GORM entities persisted by the service.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account record. The password is stored only as a bcrypt hash
// and is never serialized.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Username     string    `json:"username" gorm:"size:50;uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Calculation stores one performed arithmetic operation together with its
// operands and result. UserID is optional: anonymous calculations are kept
// without an owner.
type Calculation struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	A         float64    `json:"a" gorm:"not null"`
	B         float64    `json:"b" gorm:"not null"`
	Type      string     `json:"type" gorm:"size:20;not null"`
	Result    float64    `json:"result" gorm:"not null"`
	UserID    *uuid.UUID `json:"user_id" gorm:"type:uuid;index"`
	User      *User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

func (Calculation) TableName() string { return "calculations" }

func (c *Calculation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
