package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/rmscampos/gosales/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleRepository interface {
	GetAllSales(ctx context.Context) ([]models.Sale, error)
	GetByIDWithItems(ctx context.Context, id string) (*models.Sale, error)
	GetRecentSales(ctx context.Context, limit int) ([]models.Sale, error)
	Create(ctx context.Context, tx *gorm.DB, sale *models.Sale) error
	UpdateHeader(ctx context.Context, tx *gorm.DB, sale *models.Sale) error
	UpdateTotals(ctx context.Context, tx *gorm.DB, saleID string, totalAmount, commissionAmount decimal.Decimal) error
	Delete(ctx context.Context, id string) error
}

type gormSaleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &gormSaleRepository{db: db}
}

func (r *gormSaleRepository) GetAllSales(ctx context.Context) ([]models.Sale, error) {
	var sales []models.Sale
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Seller").
		Order("sale_date DESC").
		Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *gormSaleRepository) GetByIDWithItems(ctx context.Context, id string) (*models.Sale, error) {
	var sale models.Sale
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Seller").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("sale_items.created_at ASC")
		}).
		Preload("Items.Product").
		First(&sale, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sale, nil
}

func (r *gormSaleRepository) GetRecentSales(ctx context.Context, limit int) ([]models.Sale, error) {
	var sales []models.Sale
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Seller").
		Order("sale_date DESC").
		Limit(limit).
		Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *gormSaleRepository) Create(ctx context.Context, tx *gorm.DB, sale *models.Sale) error {
	return tx.WithContext(ctx).Omit("Items", "Customer", "Seller").Create(sale).Error
}

func (r *gormSaleRepository) UpdateHeader(ctx context.Context, tx *gorm.DB, sale *models.Sale) error {
	return tx.WithContext(ctx).Model(&models.Sale{}).Where("id = ?", sale.ID).Updates(map[string]interface{}{
		"customer_id": sale.CustomerID,
		"seller_id":   sale.SellerID,
		"lot":         sale.Lot,
		"updated_at":  time.Now(),
	}).Error
}

func (r *gormSaleRepository) UpdateTotals(ctx context.Context, tx *gorm.DB, saleID string, totalAmount, commissionAmount decimal.Decimal) error {
	return tx.WithContext(ctx).Model(&models.Sale{}).Where("id = ?", saleID).Updates(map[string]interface{}{
		"total_amount":      totalAmount,
		"commission_amount": commissionAmount,
		"updated_at":        time.Now(),
	}).Error
}

func (r *gormSaleRepository) Delete(ctx context.Context, id string) error {
	// Items are removed alongside the sale inside one transaction; the FK
	// cascade covers raw SQL paths, this covers soft-cascade drivers too.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sale_id = ?", id).Delete(&models.SaleItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Sale{}).Error
	})
}
