package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/rmscampos/gosales/app/forms"
	"github.com/rmscampos/gosales/app/models"
	"github.com/rmscampos/gosales/app/models/migrations"
	"github.com/rmscampos/gosales/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func newTestService(db *gorm.DB) *SaleService {
	return NewSaleService(
		db,
		repositories.NewSaleRepository(db),
		repositories.NewSaleItemRepository(db),
		repositories.NewProductRepository(db),
		repositories.NewCustomerRepository(db),
		repositories.NewSellerRepository(db),
	)
}

func createProduct(t *testing.T, db *gorm.DB, name, price, rate string) *models.Product {
	t.Helper()
	product := &models.Product{Name: name, Price: dec(price), CommissionRate: dec(rate)}
	require.NoError(t, db.Create(product).Error)
	return product
}

func createCustomer(t *testing.T, db *gorm.DB, name string) *models.Customer {
	t.Helper()
	customer := &models.Customer{Name: name, Email: name + "@example.com"}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func createSeller(t *testing.T, db *gorm.DB, name, commission string) *models.Seller {
	t.Helper()
	seller := &models.Seller{Name: name, Email: name + "@example.com", Commission: dec(commission)}
	require.NoError(t, db.Create(seller).Error)
	return seller
}

func TestCreateSale_ComputesTotals(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	ctx := context.Background()

	customer := createCustomer(t, db, "carla")
	product := createProduct(t, db, "soap", "10.00", "5.00")

	sale, err := svc.Create(ctx, forms.SaleInput{
		CustomerID: customer.ID,
		Items:      []forms.SaleItemInput{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	require.NotNil(t, sale)

	assert.Equal(t, "20.00", sale.TotalAmount.StringFixed(2))
	assert.Equal(t, "1.00", sale.CommissionAmount.StringFixed(2))
	require.Len(t, sale.Items, 1)
	assert.Equal(t, "10.00", sale.Items[0].Price.StringFixed(2))
	assert.Equal(t, "5.00", sale.Items[0].CommissionRate.StringFixed(2))
	assert.False(t, sale.SaleDate.IsZero())
}

func TestCreateSale_SellerCommissionWins(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	ctx := context.Background()

	customer := createCustomer(t, db, "carla")
	seller := createSeller(t, db, "sandra", "8.00")
	product := createProduct(t, db, "lamp", "50.00", "3.00")

	sale, err := svc.Create(ctx, forms.SaleInput{
		CustomerID: customer.ID,
		SellerID:   &seller.ID,
		Items:      []forms.SaleItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, "50.00", sale.TotalAmount.StringFixed(2))
	assert.Equal(t, "4.00", sale.CommissionAmount.StringFixed(2))
	require.Len(t, sale.Items, 1)
	assert.Equal(t, "8.00", sale.Items[0].CommissionRate.StringFixed(2))
}

func TestCreateSale_ZeroCommissionSellerFallsBack(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	ctx := context.Background()

	customer := createCustomer(t, db, "carla")
	seller := createSeller(t, db, "sandra", "0.00")
	product := createProduct(t, db, "lamp", "50.00", "3.00")

	sale, err := svc.Create(ctx, forms.SaleInput{
		CustomerID: customer.ID,
		SellerID:   &seller.ID,
		Items:      []forms.SaleItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.Len(t, sale.Items, 1)
	assert.Equal(t, "3.00", sale.Items[0].CommissionRate.StringFixed(2))
	assert.Equal(t, "1.50", sale.CommissionAmount.StringFixed(2))
}

func TestCreateSale_EmptyItems(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	ctx := context.Background()

	customer := createCustomer(t, db, "carla")

	sale, err := svc.Create(ctx, forms.SaleInput{CustomerID: customer.ID})
	require.NoError(t, err)

	assert.True(t, sale.TotalAmount.IsZero())
	assert.True(t, sale.CommissionAmount.IsZero())
	assert.Empty(t, sale.Items)
}

func TestCreateSale_UnknownReferences(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	ctx := context.Background()

	customer := createCustomer(t, db, "carla")

	_, err := svc.Create(ctx, forms.SaleInput{CustomerID: "missing"})
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	_, err = svc.Create(ctx, forms.SaleInput{
		CustomerID: customer.ID,
		Items:      []forms.SaleItemInput{{ProductID: "missing", Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrProductNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Sale{}).Count(&count).Error)
	assert.Zero(t, count, "nothing may be persisted on a failed create")
}

func TestCreateSale_RollsBackWhenItemInsertFails(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	ctx := context.Background()

	customer := createCustomer(t, db, "carla")
	product := createProduct(t, db, "soap", "10.00", "5.00")

	// Make the item insert blow up after the header insert succeeded.
	require.NoError(t, db.Migrator().DropTable(&models.SaleItem{}))

	_, err := svc.Create(ctx, forms.SaleInput{
		CustomerID: customer.ID,
		Items:      []forms.SaleItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Sale{}).Count(&count).Error)
	assert.Zero(t, count, "the header insert must have been rolled back")
}

func TestUpdateSale_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)

	_, err := svc.Update(context.Background(), "missing", forms.SaleInput{CustomerID: "whatever"})
	assert.ErrorIs(t, err, ErrSaleNotFound)
}

func TestUpdateSale_RemovingSellerRecomputesAllRates(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	ctx := context.Background()

	customer := createCustomer(t, db, "carla")
	seller := createSeller(t, db, "sandra", "8.00")
	product := createProduct(t, db, "lamp", "50.00", "3.00")

	sale, err := svc.Create(ctx, forms.SaleInput{
		CustomerID: customer.ID,
		SellerID:   &seller.ID,
		Items:      []forms.SaleItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	require.Equal(t, "8.00", sale.Items[0].CommissionRate.StringFixed(2))

	// The update does not touch the item at all, only drops the seller.
	updated, err := svc.Update(ctx, sale.ID, forms.SaleInput{
		CustomerID: customer.ID,
		Items: []forms.SaleItemInput{
			{ID: sale.Items[0].ID, ProductID: product.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Nil(t, updated.SellerID)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "3.00", updated.Items[0].CommissionRate.StringFixed(2), "rate falls back to the product's own")
	assert.Equal(t, "1.50", updated.CommissionAmount.StringFixed(2))
	assert.Equal(t, "50.00", updated.TotalAmount.StringFixed(2))
}

func TestUpdateSale_PriceStaysFrozen(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	ctx := context.Background()

	customer := createCustomer(t, db, "carla")
	productA := createProduct(t, db, "soap", "10.00", "5.00")
	productB := createProduct(t, db, "lamp", "40.00", "5.00")

	sale, err := svc.Create(ctx, forms.SaleInput{
		CustomerID: customer.ID,
		Items:      []forms.SaleItemInput{{ProductID: productA.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// Catalog price changes after the sale was recorded.
	require.NoError(t, db.Model(productA).Update("price", dec("15.00")).Error)

	updated, err := svc.Update(ctx, sale.ID, forms.SaleInput{
		CustomerID: customer.ID,
		Items: []forms.SaleItemInput{
			{ID: sale.Items[0].ID, ProductID: productA.ID, Quantity: 1},
			{ProductID: productB.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.Items, 2)

	byProduct := map[string]models.SaleItem{}
	for _, item := range updated.Items {
		byProduct[item.ProductID] = item
	}

	assert.Equal(t, "10.00", byProduct[productA.ID].Price.StringFixed(2), "existing item keeps the price frozen at sale time")
	assert.Equal(t, "40.00", byProduct[productB.ID].Price.StringFixed(2), "new item freezes the current catalog price")
	assert.Equal(t, "50.00", updated.TotalAmount.StringFixed(2))
}

func TestUpdateSale_RemoveItem(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	ctx := context.Background()

	customer := createCustomer(t, db, "carla")
	productA := createProduct(t, db, "soap", "10.00", "5.00")
	productB := createProduct(t, db, "lamp", "40.00", "5.00")

	sale, err := svc.Create(ctx, forms.SaleInput{
		CustomerID: customer.ID,
		Items: []forms.SaleItemInput{
			{ProductID: productA.ID, Quantity: 1},
			{ProductID: productB.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.Len(t, sale.Items, 2)

	var removeID, keepID string
	for _, item := range sale.Items {
		if item.ProductID == productB.ID {
			removeID = item.ID
		} else {
			keepID = item.ID
		}
	}

	updated, err := svc.Update(ctx, sale.ID, forms.SaleInput{
		CustomerID: customer.ID,
		Items: []forms.SaleItemInput{
			{ID: keepID, ProductID: productA.ID, Quantity: 1},
			{ID: removeID, Remove: true},
		},
	})
	require.NoError(t, err)

	require.Len(t, updated.Items, 1)
	assert.Equal(t, productA.ID, updated.Items[0].ProductID)
	assert.Equal(t, "10.00", updated.TotalAmount.StringFixed(2))
	assert.Equal(t, "0.50", updated.CommissionAmount.StringFixed(2))
}

func TestUpdateSale_QuantityChangeRecomputesTotals(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	ctx := context.Background()

	customer := createCustomer(t, db, "carla")
	product := createProduct(t, db, "soap", "10.00", "5.00")

	sale, err := svc.Create(ctx, forms.SaleInput{
		CustomerID: customer.ID,
		Items:      []forms.SaleItemInput{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, sale.ID, forms.SaleInput{
		CustomerID: customer.ID,
		Items: []forms.SaleItemInput{
			{ID: sale.Items[0].ID, ProductID: product.ID, Quantity: 5},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "50.00", updated.TotalAmount.StringFixed(2))
	assert.Equal(t, "2.50", updated.CommissionAmount.StringFixed(2))
}

func TestUpdateSale_RejectsForeignItem(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	ctx := context.Background()

	customer := createCustomer(t, db, "carla")
	product := createProduct(t, db, "soap", "10.00", "5.00")

	saleA, err := svc.Create(ctx, forms.SaleInput{
		CustomerID: customer.ID,
		Items:      []forms.SaleItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	saleB, err := svc.Create(ctx, forms.SaleInput{CustomerID: customer.ID})
	require.NoError(t, err)

	_, err = svc.Update(ctx, saleB.ID, forms.SaleInput{
		CustomerID: customer.ID,
		Items: []forms.SaleItemInput{
			{ID: saleA.Items[0].ID, ProductID: product.ID, Quantity: 9},
		},
	})
	assert.ErrorIs(t, err, ErrSaleItemNotFound)

	reloaded, err := svc.saleRepo.GetByIDWithItems(ctx, saleA.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Items[0].Quantity, "the foreign item is untouched")
}

func TestDeleteSale_RemovesItems(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	ctx := context.Background()

	customer := createCustomer(t, db, "carla")
	product := createProduct(t, db, "soap", "10.00", "5.00")

	sale, err := svc.Create(ctx, forms.SaleInput{
		CustomerID: customer.ID,
		Items:      []forms.SaleItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, sale.ID))

	var saleCount, itemCount int64
	require.NoError(t, db.Model(&models.Sale{}).Count(&saleCount).Error)
	require.NoError(t, db.Model(&models.SaleItem{}).Count(&itemCount).Error)
	assert.Zero(t, saleCount)
	assert.Zero(t, itemCount)

	assert.ErrorIs(t, svc.Delete(ctx, sale.ID), ErrSaleNotFound)
}
