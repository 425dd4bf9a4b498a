package forms

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rmscampos/gosales/app/helpers"
	"github.com/rmscampos/gosales/app/models"
	"github.com/shopspring/decimal"
)

const defaultProductCommissionRate = "5.00"

type ProductForm struct {
	Name           string `validate:"required,max=200"`
	Description    string
	Price          string `validate:"required"`
	Stock          string
	ImageURL       string `validate:"omitempty,url,max=1024"`
	CommissionRate string
}

func NewProductForm() ProductForm {
	return ProductForm{CommissionRate: defaultProductCommissionRate}
}

func ParseProductForm(r *http.Request) ProductForm {
	return ProductForm{
		Name:           r.PostFormValue("name"),
		Description:    r.PostFormValue("description"),
		Price:          r.PostFormValue("price"),
		Stock:          r.PostFormValue("stock"),
		ImageURL:       r.PostFormValue("image_url"),
		CommissionRate: r.PostFormValue("commission_rate"),
	}
}

// Bind validates the form and copies it onto the product. On failure the
// product is left untouched and the field errors are returned.
func (f ProductForm) Bind(v *validator.Validate, product *models.Product) Errors {
	errs := Errors{}
	if err := v.Struct(f); err != nil {
		for field, msg := range helpers.FormatValidationErrors(err.(validator.ValidationErrors)) {
			errs.Add(field, msg)
		}
	}

	price, err := decimal.NewFromString(f.Price)
	if err != nil || price.IsNegative() {
		errs.Add("price", "Price must be a non-negative amount.")
	}

	stock := 0
	if f.Stock != "" {
		stock, err = strconv.Atoi(f.Stock)
		if err != nil || stock < 0 {
			errs.Add("stock", "Stock must be a non-negative whole number.")
		}
	}

	rate := decimal.RequireFromString(defaultProductCommissionRate)
	if f.CommissionRate != "" {
		rate, err = decimal.NewFromString(f.CommissionRate)
		if err != nil || rate.IsNegative() {
			errs.Add("commission_rate", "Commission rate must be a non-negative percentage.")
		}
	}

	if errs.Any() {
		return errs
	}

	product.Name = f.Name
	product.Description = f.Description
	product.Price = price
	product.Stock = stock
	product.ImageURL = f.ImageURL
	product.CommissionRate = rate
	return nil
}

func ProductFormFromModel(product *models.Product) ProductForm {
	return ProductForm{
		Name:           product.Name,
		Description:    product.Description,
		Price:          product.Price.StringFixed(2),
		Stock:          strconv.Itoa(product.Stock),
		ImageURL:       product.ImageURL,
		CommissionRate: product.CommissionRate.StringFixed(2),
	}
}
