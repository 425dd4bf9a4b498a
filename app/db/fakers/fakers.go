package fakers

import (
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/rmscampos/gosales/app/models"
	"github.com/shopspring/decimal"
)

var commissionRates = []float64{0, 2.5, 5, 7.5, 10}

func ProductFaker() *models.Product {
	name := faker.Word() + " " + faker.Word()

	return &models.Product{
		ID:             uuid.New().String(),
		Name:           name,
		Description:    faker.Sentence(),
		Price:          decimal.NewFromFloat(float64(rand.Intn(20000)+100) / 100),
		Stock:          rand.Intn(50),
		ImageURL:       "/images/products/" + slug.Make(name) + ".jpg",
		CommissionRate: decimal.NewFromFloat(commissionRates[rand.Intn(len(commissionRates))]),
	}
}

func CustomerFaker() *models.Customer {
	return &models.Customer{
		ID:      uuid.New().String(),
		Name:    faker.Name(),
		Email:   faker.Email(),
		Phone:   faker.Phonenumber(),
		Address: faker.Sentence(),
	}
}

func SellerFaker() *models.Seller {
	return &models.Seller{
		ID:         uuid.New().String(),
		Name:       faker.Name(),
		Email:      faker.Email(),
		Phone:      faker.Phonenumber(),
		Commission: decimal.NewFromFloat(commissionRates[rand.Intn(len(commissionRates))]),
	}
}
