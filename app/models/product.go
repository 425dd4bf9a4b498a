package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID             string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name           string          `gorm:"size:200;not null"`
	Description    string          `gorm:"type:text"`
	Price          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock          int             `gorm:"not null;default:0"`
	ImageURL       string          `gorm:"size:1024"`
	CommissionRate decimal.Decimal `gorm:"type:decimal(5,2);not null;default:5.00"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}
