package repositories

import (
	"context"

	"github.com/rmscampos/gosales/app/models"
	"gorm.io/gorm"
)

type CustomerRepositoryImpl interface {
	GetCustomers(ctx context.Context) ([]models.Customer, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepositoryImpl {
	return &customerRepository{db}
}

func (c *customerRepository) GetCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := c.db.WithContext(ctx).Order("created_at ASC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *customerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	if err := c.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	return c.db.WithContext(ctx).Create(customer).Error
}

func (c *customerRepository) Update(ctx context.Context, customer *models.Customer) error {
	return c.db.WithContext(ctx).Save(customer).Error
}

func (c *customerRepository) Delete(ctx context.Context, id string) error {
	// Sales referencing this customer go with it, items cascade in turn.
	return c.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Customer{}).Error
}

func (c *customerRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := c.db.WithContext(ctx).Model(&models.Customer{}).Count(&total).Error
	return total, err
}
