package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Seller struct {
	ID          string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name        string          `gorm:"size:200;not null"`
	Description string          `gorm:"type:text"`
	Email       string          `gorm:"size:254;not null;uniqueIndex"`
	Phone       string          `gorm:"size:20"`
	Address     string          `gorm:"type:text"`
	Website     string          `gorm:"size:1024"`
	Commission  decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0.00"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s *Seller) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
