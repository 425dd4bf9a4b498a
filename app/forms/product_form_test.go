package forms

import (
	"testing"

	validatorpkg "github.com/go-playground/validator/v10"
	"github.com/rmscampos/gosales/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductFormBind(t *testing.T) {
	v := validatorpkg.New()

	var product models.Product
	form := ProductForm{
		Name:           "Soap",
		Price:          "10.50",
		Stock:          "3",
		CommissionRate: "2.25",
	}

	errs := form.Bind(v, &product)
	require.False(t, errs.Any(), "errors: %v", errs)
	assert.Equal(t, "Soap", product.Name)
	assert.Equal(t, "10.50", product.Price.StringFixed(2))
	assert.Equal(t, 3, product.Stock)
	assert.Equal(t, "2.25", product.CommissionRate.StringFixed(2))
}

func TestProductFormBind_DefaultsCommissionRate(t *testing.T) {
	v := validatorpkg.New()

	var product models.Product
	errs := ProductForm{Name: "Soap", Price: "1.00"}.Bind(v, &product)
	require.False(t, errs.Any())
	assert.Equal(t, "5.00", product.CommissionRate.StringFixed(2))
}

func TestProductFormBind_FieldErrors(t *testing.T) {
	v := validatorpkg.New()

	var product models.Product
	form := ProductForm{
		Price: "ten",
		Stock: "-1",
	}

	errs := form.Bind(v, &product)
	require.True(t, errs.Any())
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "stock")
	assert.Empty(t, product.Name, "the product must be untouched on failure")
}
