package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PriceRule struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ServiceType string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	PricePerKg  float64   `gorm:"type:decimal(10,2);not null"`
	BaseFee     float64   `gorm:"type:decimal(10,2);default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Quote struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CustomerID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ServiceType       string    `gorm:"type:varchar(50);not null"`
	EstimatedWeightKg float64   `gorm:"type:decimal(6,2);not null"`
	QuotedTotal       float64   `gorm:"type:decimal(10,2);not null"`
	Status            string    `gorm:"type:varchar(50);not null;index;default:'pending'"`
	ExpiresAt         time.Time `gorm:"not null;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}
