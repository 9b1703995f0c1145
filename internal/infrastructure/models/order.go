package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	MerchantID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ServiceType     string     `gorm:"type:varchar(50);not null"`
	Status          string     `gorm:"type:varchar(50);not null;index;default:'pending'"`
	PickupAddress   string     `gorm:"type:text;not null"`
	DeliveryAddress string     `gorm:"type:text;not null"`
	ScheduledDate   string     `gorm:"type:varchar(20);not null"`
	ScheduledTime   string     `gorm:"type:varchar(20);not null"`
	WeightKg        *float64   `gorm:"type:decimal(6,2)"`
	Instructions    *string    `gorm:"type:text"`
	QuoteID         *uuid.UUID `gorm:"type:uuid"`
	TotalPrice      *float64   `gorm:"type:decimal(10,2)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}
