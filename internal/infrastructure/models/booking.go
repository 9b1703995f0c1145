package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	MerchantID uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Date       string    `gorm:"type:varchar(20);not null"`
	Time       string    `gorm:"type:varchar(20);not null"`
	Address    string    `gorm:"type:text;not null"`
	Notes      *string   `gorm:"type:text"`
	Status     string    `gorm:"type:varchar(50);not null;index;default:'pending'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}
