package migrations

import (
	"github.com/rmscampos/gosales/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{}, &models.Customer{}, &models.Seller{}, &models.Sale{}, &models.SaleItem{})
}
