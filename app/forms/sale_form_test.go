package forms

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	validatorpkg "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseForm(t *testing.T, values url.Values) SaleForm {
	t.Helper()
	r := httptest.NewRequest("POST", "/sales/add", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.NoError(t, r.ParseForm())
	return ParseSaleForm(r)
}

func TestParseSaleForm_ReadsIndexedItemRows(t *testing.T) {
	form := parseForm(t, url.Values{
		"customer_id":        {"cust-1"},
		"seller_id":          {"sell-1"},
		"lot":                {"L-2024"},
		"items.0.id":         {"item-1"},
		"items.0.product_id": {"prod-1"},
		"items.0.quantity":   {"2"},
		"items.0.lot":        {"A"},
		"items.1.product_id": {"prod-2"},
		"items.1.quantity":   {"1"},
	})

	assert.Equal(t, "cust-1", form.CustomerID)
	assert.Equal(t, "sell-1", form.SellerID)
	assert.Equal(t, "L-2024", form.Lot)
	require.Len(t, form.Items, 2)
	assert.Equal(t, "item-1", form.Items[0].ID)
	assert.Equal(t, "prod-2", form.Items[1].ProductID)
	assert.False(t, form.Items[0].Remove)
}

func TestParseSaleForm_ToleratesIndexGaps(t *testing.T) {
	form := parseForm(t, url.Values{
		"customer_id":        {"cust-1"},
		"items.0.product_id": {"prod-1"},
		"items.0.quantity":   {"1"},
		"items.4.product_id": {"prod-2"},
		"items.4.quantity":   {"3"},
	})

	require.Len(t, form.Items, 2)
	assert.Equal(t, "prod-1", form.Items[0].ProductID)
	assert.Equal(t, "prod-2", form.Items[1].ProductID)
	assert.Equal(t, "3", form.Items[1].Quantity)
}

func TestParseSaleForm_ReadsDeleteFlag(t *testing.T) {
	form := parseForm(t, url.Values{
		"customer_id":      {"cust-1"},
		"items.0.id":       {"item-1"},
		"items.0.delete":   {"1"},
		"items.0.quantity": {"2"},
	})

	require.Len(t, form.Items, 1)
	assert.True(t, form.Items[0].Remove)
}

func TestSaleFormValidate_RequiresCustomer(t *testing.T) {
	v := validatorpkg.New()
	form := SaleForm{}

	_, errs := form.Validate(v)
	require.True(t, errs.Any())
	assert.Contains(t, errs, "customer_id")
}

func TestSaleFormValidate_RejectsBadQuantity(t *testing.T) {
	v := validatorpkg.New()

	for _, quantity := range []string{"0", "-1", "abc", "1.5"} {
		form := SaleForm{
			CustomerID: "cust-1",
			Items:      []SaleItemForm{{ProductID: "prod-1", Quantity: quantity}},
		}
		_, errs := form.Validate(v)
		require.True(t, errs.Any(), "quantity %q must be rejected", quantity)
		assert.Contains(t, errs, "items.0.quantity")
	}
}

func TestSaleFormValidate_RequiresProductOnRow(t *testing.T) {
	v := validatorpkg.New()
	form := SaleForm{
		CustomerID: "cust-1",
		Items:      []SaleItemForm{{Quantity: "2"}},
	}

	_, errs := form.Validate(v)
	require.True(t, errs.Any())
	assert.Contains(t, errs, "items.0.product_id")
}

func TestSaleFormValidate_SkipsBlankRows(t *testing.T) {
	v := validatorpkg.New()
	form := SaleForm{
		CustomerID: "cust-1",
		Items: []SaleItemForm{
			{ProductID: "prod-1", Quantity: "2"},
			{}, // untouched extra formset row
		},
	}

	input, errs := form.Validate(v)
	require.False(t, errs.Any(), "errors: %v", errs)
	require.Len(t, input.Items, 1)
	assert.Equal(t, 2, input.Items[0].Quantity)
}

func TestSaleFormValidate_DropsRemovalOfUnsavedRow(t *testing.T) {
	v := validatorpkg.New()
	form := SaleForm{
		CustomerID: "cust-1",
		Items: []SaleItemForm{
			{ProductID: "prod-1", Quantity: "bad", Remove: true},
		},
	}

	// A row marked for removal that was never saved is discarded without
	// validating its other fields.
	input, errs := form.Validate(v)
	require.False(t, errs.Any(), "errors: %v", errs)
	assert.Empty(t, input.Items)
}

func TestSaleFormValidate_KeepsRemovalOfSavedRow(t *testing.T) {
	v := validatorpkg.New()
	form := SaleForm{
		CustomerID: "cust-1",
		Items: []SaleItemForm{
			{ID: "item-1", Remove: true},
		},
	}

	input, errs := form.Validate(v)
	require.False(t, errs.Any())
	require.Len(t, input.Items, 1)
	assert.True(t, input.Items[0].Remove)
	assert.Equal(t, "item-1", input.Items[0].ID)
}

func TestSaleFormValidate_SellerOptional(t *testing.T) {
	v := validatorpkg.New()

	input, errs := SaleForm{CustomerID: "cust-1"}.Validate(v)
	require.False(t, errs.Any())
	assert.Nil(t, input.SellerID)

	input, errs = SaleForm{CustomerID: "cust-1", SellerID: "sell-1"}.Validate(v)
	require.False(t, errs.Any())
	require.NotNil(t, input.SellerID)
	assert.Equal(t, "sell-1", *input.SellerID)
}
