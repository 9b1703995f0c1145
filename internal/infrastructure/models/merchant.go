package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Merchant struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	BusinessName  string    `gorm:"type:varchar(255);not null"`
	BusinessEmail string    `gorm:"type:varchar(255);not null"`
	Phone         *string   `gorm:"type:varchar(50)"`
	Address       string    `gorm:"type:text;not null"`
	Latitude      *float64  `gorm:"type:decimal(10,7)"`
	Longitude     *float64  `gorm:"type:decimal(10,7)"`
	Rating        float64   `gorm:"type:decimal(3,2);default:0"`
	ReviewCount   int       `gorm:"default:0"`
	Status        string    `gorm:"type:varchar(50);not null;default:'pending';index"`
	IsActive      bool      `gorm:"default:false;index"`
	ApprovedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}
