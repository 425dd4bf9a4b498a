package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleItem struct {
	ID        string  `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	SaleID    string  `gorm:"size:36;not null;index" json:"sale_id"`
	ProductID string  `gorm:"size:36;not null;index" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`

	Quantity int `gorm:"not null;default:1" json:"quantity"`

	// Price is copied from the product when the item is first saved and is
	// never re-read from the product afterwards.
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	// CommissionRate is resolved again on every save of the owning sale.
	CommissionRate decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0.00" json:"commission_rate"`

	Lot string `gorm:"size:200" json:"lot,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (si *SaleItem) BeforeCreate(tx *gorm.DB) (err error) {
	if si.ID == "" {
		si.ID = uuid.New().String()
	}
	return
}
