package seeders

import (
	"github.com/rmscampos/gosales/app/db/fakers"
	"gorm.io/gorm"
)

func DBSeed(db *gorm.DB) error {
	for i := 0; i < 10; i++ {
		if err := db.Create(fakers.ProductFaker()).Error; err != nil {
			return err
		}
	}
	for i := 0; i < 5; i++ {
		if err := db.Create(fakers.CustomerFaker()).Error; err != nil {
			return err
		}
	}
	for i := 0; i < 3; i++ {
		if err := db.Create(fakers.SellerFaker()).Error; err != nil {
			return err
		}
	}
	return nil
}
