package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/rmscampos/gosales/app/forms"
	"github.com/rmscampos/gosales/app/models"
	"github.com/rmscampos/gosales/app/repositories"
	"github.com/rmscampos/gosales/app/utils/calc"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrSaleNotFound     = errors.New("sale not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrSellerNotFound   = errors.New("seller not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrSaleItemNotFound = errors.New("sale item not found")
)

type SaleService struct {
	db           *gorm.DB
	saleRepo     repositories.SaleRepository
	saleItemRepo repositories.SaleItemRepository
	productRepo  repositories.ProductRepositoryImpl
	customerRepo repositories.CustomerRepositoryImpl
	sellerRepo   repositories.SellerRepositoryImpl
}

func NewSaleService(
	db *gorm.DB,
	saleRepo repositories.SaleRepository,
	saleItemRepo repositories.SaleItemRepository,
	productRepo repositories.ProductRepositoryImpl,
	customerRepo repositories.CustomerRepositoryImpl,
	sellerRepo repositories.SellerRepositoryImpl,
) *SaleService {
	return &SaleService{
		db:           db,
		saleRepo:     saleRepo,
		saleItemRepo: saleItemRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		sellerRepo:   sellerRepo,
	}
}

// Create persists a new sale and its items in one transaction. Each item's
// price is copied from its product at this moment and stays frozen from then
// on. Totals and per-item commission rates are derived before commit, so no
// half-written sale is ever visible.
func (s *SaleService) Create(ctx context.Context, input forms.SaleInput) (*models.Sale, error) {
	seller, err := s.resolveReferences(ctx, input)
	if err != nil {
		return nil, err
	}

	products, err := s.resolveProducts(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC: rolling back sale create: %v", r)
			tx.Rollback()
		}
	}()

	// Header first with zero totals, so the items have an owner id.
	sale := &models.Sale{
		CustomerID:       input.CustomerID,
		SellerID:         input.SellerID,
		Lot:              input.Lot,
		TotalAmount:      decimal.Zero,
		CommissionAmount: decimal.Zero,
	}
	if err := s.saleRepo.Create(ctx, tx, sale); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	items := make([]models.SaleItem, 0, len(input.Items))
	for _, in := range input.Items {
		if in.Remove {
			continue
		}
		product := products[in.ProductID]
		items = append(items, models.SaleItem{
			SaleID:    sale.ID,
			ProductID: product.ID,
			Product:   product,
			Quantity:  in.Quantity,
			Price:     product.Price,
			Lot:       in.Lot,
		})
	}

	totalAmount, commissionAmount := calc.ComputeSaleTotals(seller, items)

	for i := range items {
		if err := s.saleItemRepo.Create(ctx, tx, &items[i]); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to create sale item: %w", err)
		}
	}

	if err := s.saleRepo.UpdateTotals(ctx, tx, sale.ID, totalAmount, commissionAmount); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update sale totals: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit sale: %w", err)
	}

	return s.saleRepo.GetByIDWithItems(ctx, sale.ID)
}

// Update applies header changes and the item operations (remove, modify, add)
// in one transaction, then recomputes commission rates and totals over the
// full surviving item set. Untouched items get a fresh commission rate too,
// because a seller change shifts the precedence rule for every item. Existing
// items keep their frozen price; only newly added items read the product's
// current price.
func (s *SaleService) Update(ctx context.Context, saleID string, input forms.SaleInput) (*models.Sale, error) {
	sale, err := s.saleRepo.GetByIDWithItems(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sale: %w", err)
	}
	if sale == nil {
		return nil, ErrSaleNotFound
	}

	seller, err := s.resolveReferences(ctx, input)
	if err != nil {
		return nil, err
	}

	products, err := s.resolveProducts(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	owned := make(map[string]bool, len(sale.Items))
	for _, item := range sale.Items {
		owned[item.ID] = true
	}
	for _, in := range input.Items {
		if in.ID != "" && !owned[in.ID] {
			return nil, ErrSaleItemNotFound
		}
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC: rolling back sale update: %v", r)
			tx.Rollback()
		}
	}()

	sale.CustomerID = input.CustomerID
	sale.SellerID = input.SellerID
	sale.Lot = input.Lot
	if err := s.saleRepo.UpdateHeader(ctx, tx, sale); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update sale header: %w", err)
	}

	// Removals first, then changes and additions.
	for _, in := range input.Items {
		if !in.Remove {
			continue
		}
		if err := s.saleItemRepo.Delete(ctx, tx, in.ID); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to delete sale item: %w", err)
		}
	}

	for _, in := range input.Items {
		if in.Remove {
			continue
		}
		if in.ID == "" {
			product := products[in.ProductID]
			item := models.SaleItem{
				SaleID:    sale.ID,
				ProductID: product.ID,
				Quantity:  in.Quantity,
				Price:     product.Price,
				Lot:       in.Lot,
			}
			if err := s.saleItemRepo.Create(ctx, tx, &item); err != nil {
				tx.Rollback()
				return nil, fmt.Errorf("failed to create sale item: %w", err)
			}
			continue
		}

		item := models.SaleItem{
			ID:        in.ID,
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			Lot:       in.Lot,
		}
		if err := s.saleItemRepo.Update(ctx, tx, &item); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to update sale item: %w", err)
		}
	}

	items, err := s.saleItemRepo.FindBySaleID(ctx, tx, sale.ID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to reload sale items: %w", err)
	}

	totalAmount, commissionAmount := calc.ComputeSaleTotals(seller, items)

	for i := range items {
		if err := s.saleItemRepo.UpdateCommissionRate(ctx, tx, items[i].ID, items[i].CommissionRate); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to update item commission rate: %w", err)
		}
	}

	if err := s.saleRepo.UpdateTotals(ctx, tx, sale.ID, totalAmount, commissionAmount); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update sale totals: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit sale update: %w", err)
	}

	return s.saleRepo.GetByIDWithItems(ctx, sale.ID)
}

func (s *SaleService) Delete(ctx context.Context, saleID string) error {
	sale, err := s.saleRepo.GetByIDWithItems(ctx, saleID)
	if err != nil {
		return fmt.Errorf("failed to load sale: %w", err)
	}
	if sale == nil {
		return ErrSaleNotFound
	}
	return s.saleRepo.Delete(ctx, saleID)
}

// resolveReferences checks the customer and optional seller exist, returning
// the seller (nil when none is attached).
func (s *SaleService) resolveReferences(ctx context.Context, input forms.SaleInput) (*models.Seller, error) {
	if _, err := s.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}

	if input.SellerID == nil {
		return nil, nil
	}

	seller, err := s.sellerRepo.GetByID(ctx, *input.SellerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSellerNotFound
		}
		return nil, fmt.Errorf("failed to load seller: %w", err)
	}
	return seller, nil
}

// resolveProducts loads every product referenced by a surviving item row.
func (s *SaleService) resolveProducts(ctx context.Context, items []forms.SaleItemInput) (map[string]models.Product, error) {
	products := make(map[string]models.Product)
	for _, in := range items {
		if in.Remove || in.ProductID == "" {
			continue
		}
		if _, done := products[in.ProductID]; done {
			continue
		}
		product, err := s.productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, fmt.Errorf("failed to load product %s: %w", in.ProductID, err)
		}
		products[in.ProductID] = *product
	}
	return products, nil
}
