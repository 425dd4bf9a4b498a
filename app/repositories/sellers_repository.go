package repositories

import (
	"context"

	"github.com/rmscampos/gosales/app/models"
	"gorm.io/gorm"
)

type SellerRepositoryImpl interface {
	GetSellers(ctx context.Context) ([]models.Seller, error)
	GetByID(ctx context.Context, id string) (*models.Seller, error)
	Create(ctx context.Context, seller *models.Seller) error
	Update(ctx context.Context, seller *models.Seller) error
	Delete(ctx context.Context, id string) error
}

type sellerRepository struct {
	db *gorm.DB
}

func NewSellerRepository(db *gorm.DB) SellerRepositoryImpl {
	return &sellerRepository{db}
}

func (s *sellerRepository) GetSellers(ctx context.Context) ([]models.Seller, error) {
	var sellers []models.Seller
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&sellers).Error; err != nil {
		return nil, err
	}
	return sellers, nil
}

func (s *sellerRepository) GetByID(ctx context.Context, id string) (*models.Seller, error) {
	var seller models.Seller
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&seller).Error; err != nil {
		return nil, err
	}
	return &seller, nil
}

func (s *sellerRepository) Create(ctx context.Context, seller *models.Seller) error {
	return s.db.WithContext(ctx).Create(seller).Error
}

func (s *sellerRepository) Update(ctx context.Context, seller *models.Seller) error {
	return s.db.WithContext(ctx).Save(seller).Error
}

func (s *sellerRepository) Delete(ctx context.Context, id string) error {
	// Sales keep their row, the seller reference is nulled by the FK.
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Seller{}).Error
}
