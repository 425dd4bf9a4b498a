package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Sale struct {
	ID         string   `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	CustomerID string   `gorm:"size:36;not null;index" json:"customer_id"`
	Customer   Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	SellerID   *string  `gorm:"size:36;index" json:"seller_id,omitempty"`
	Seller     *Seller  `gorm:"foreignKey:SellerID;constraint:OnDelete:SET NULL"`

	// SaleDate is set once on create and never touched again.
	SaleDate time.Time `gorm:"not null" json:"sale_date"`

	// TotalAmount and CommissionAmount are derived from Items on every save.
	TotalAmount      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	CommissionAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0.00" json:"commission_amount"`

	Lot   string     `gorm:"size:200" json:"lot,omitempty"`
	Items []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Sale) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.SaleDate.IsZero() {
		s.SaleDate = time.Now()
	}
	return
}
