package repositories

import (
	"context"
	"time"

	"github.com/rmscampos/gosales/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleItemRepository interface {
	FindBySaleID(ctx context.Context, tx *gorm.DB, saleID string) ([]models.SaleItem, error)
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.SaleItem, error)
	Create(ctx context.Context, tx *gorm.DB, item *models.SaleItem) error
	Update(ctx context.Context, tx *gorm.DB, item *models.SaleItem) error
	UpdateCommissionRate(ctx context.Context, tx *gorm.DB, itemID string, rate decimal.Decimal) error
	Delete(ctx context.Context, tx *gorm.DB, id string) error
}

type gormSaleItemRepository struct {
	db *gorm.DB
}

func NewSaleItemRepository(db *gorm.DB) SaleItemRepository {
	return &gormSaleItemRepository{db: db}
}

func (r *gormSaleItemRepository) FindBySaleID(ctx context.Context, tx *gorm.DB, saleID string) ([]models.SaleItem, error) {
	var items []models.SaleItem
	err := tx.WithContext(ctx).
		Preload("Product").
		Where("sale_id = ?", saleID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *gormSaleItemRepository) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.SaleItem, error) {
	var item models.SaleItem
	if err := tx.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *gormSaleItemRepository) Create(ctx context.Context, tx *gorm.DB, item *models.SaleItem) error {
	return tx.WithContext(ctx).Omit("Product").Create(item).Error
}

func (r *gormSaleItemRepository) Update(ctx context.Context, tx *gorm.DB, item *models.SaleItem) error {
	// Price is deliberately not touched here: it stays frozen at the value
	// copied from the product when the item was created.
	return tx.WithContext(ctx).Model(&models.SaleItem{}).Where("id = ?", item.ID).Updates(map[string]interface{}{
		"product_id": item.ProductID,
		"quantity":   item.Quantity,
		"lot":        item.Lot,
		"updated_at": time.Now(),
	}).Error
}

func (r *gormSaleItemRepository) UpdateCommissionRate(ctx context.Context, tx *gorm.DB, itemID string, rate decimal.Decimal) error {
	return tx.WithContext(ctx).Model(&models.SaleItem{}).Where("id = ?", itemID).Updates(map[string]interface{}{
		"commission_rate": rate,
		"updated_at":      time.Now(),
	}).Error
}

func (r *gormSaleItemRepository) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	return tx.WithContext(ctx).Where("id = ?", id).Delete(&models.SaleItem{}).Error
}
