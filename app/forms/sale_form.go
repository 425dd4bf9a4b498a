package forms

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rmscampos/gosales/app/helpers"
	"github.com/rmscampos/gosales/app/models"
)

// SaleItemForm is one row of the item formset. Rows arrive as indexed fields
// (items.0.product_id, items.0.quantity, ...); a row posted with its delete
// box checked is marked for removal.
type SaleItemForm struct {
	ID        string
	ProductID string
	Quantity  string
	Lot       string
	Remove    bool
}

func (f SaleItemForm) empty() bool {
	return f.ID == "" && f.ProductID == "" && strings.TrimSpace(f.Quantity) == "" && f.Lot == ""
}

type SaleForm struct {
	CustomerID string `validate:"required"`
	SellerID   string
	Lot        string `validate:"max=200"`
	Items      []SaleItemForm
}

// SaleInput is the validated payload handed to the sale service.
type SaleInput struct {
	CustomerID string
	SellerID   *string
	Lot        string
	Items      []SaleItemInput
}

type SaleItemInput struct {
	ID        string
	ProductID string
	Quantity  int
	Lot       string
	Remove    bool
}

func ParseSaleForm(r *http.Request) SaleForm {
	form := SaleForm{
		CustomerID: r.PostFormValue("customer_id"),
		SellerID:   r.PostFormValue("seller_id"),
		Lot:        r.PostFormValue("lot"),
	}

	for _, idx := range itemIndexes(r) {
		prefix := fmt.Sprintf("items.%d.", idx)
		form.Items = append(form.Items, SaleItemForm{
			ID:        r.PostFormValue(prefix + "id"),
			ProductID: r.PostFormValue(prefix + "product_id"),
			Quantity:  r.PostFormValue(prefix + "quantity"),
			Lot:       r.PostFormValue(prefix + "lot"),
			Remove:    r.PostFormValue(prefix+"delete") != "",
		})
	}

	return form
}

// itemIndexes collects the distinct row indexes present in the posted form,
// in ascending order. Rows removed client side leave gaps, so the indexes
// cannot simply be counted.
func itemIndexes(r *http.Request) []int {
	seen := map[int]bool{}
	for key := range r.PostForm {
		rest, ok := strings.CutPrefix(key, "items.")
		if !ok {
			continue
		}
		numStr, _, ok := strings.Cut(rest, ".")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(numStr); err == nil {
			seen[n] = true
		}
	}

	indexes := make([]int, 0, len(seen))
	for n := range seen {
		indexes = append(indexes, n)
	}
	sort.Ints(indexes)
	return indexes
}

// Validate checks the form structurally and converts it into a SaleInput.
// Blank extra rows are dropped the way an unused formset row would be; rows
// marked for removal only need an identity.
func (f SaleForm) Validate(v *validator.Validate) (SaleInput, Errors) {
	errs := Errors{}
	if err := v.Struct(f); err != nil {
		for field, msg := range helpers.FormatValidationErrors(err.(validator.ValidationErrors)) {
			errs.Add(field, msg)
		}
	}

	input := SaleInput{
		CustomerID: f.CustomerID,
		Lot:        f.Lot,
	}
	if f.SellerID != "" {
		sellerID := f.SellerID
		input.SellerID = &sellerID
	}

	for i, item := range f.Items {
		if item.empty() {
			continue
		}

		if item.Remove {
			if item.ID == "" {
				// Removing a row that was never saved is a no-op.
				continue
			}
			input.Items = append(input.Items, SaleItemInput{ID: item.ID, Remove: true})
			continue
		}

		field := func(name string) string { return fmt.Sprintf("items.%d.%s", i, name) }

		if item.ProductID == "" {
			errs.Add(field("product_id"), "Product is required.")
		}

		qty, err := strconv.Atoi(strings.TrimSpace(item.Quantity))
		if err != nil || qty < 1 {
			errs.Add(field("quantity"), "Quantity must be a positive whole number.")
		}

		input.Items = append(input.Items, SaleItemInput{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  qty,
			Lot:       item.Lot,
		})
	}

	if errs.Any() {
		return SaleInput{}, errs
	}
	return input, nil
}

func SaleFormFromModel(sale *models.Sale) SaleForm {
	form := SaleForm{
		CustomerID: sale.CustomerID,
		Lot:        sale.Lot,
	}
	if sale.SellerID != nil {
		form.SellerID = *sale.SellerID
	}
	for _, item := range sale.Items {
		form.Items = append(form.Items, SaleItemForm{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  strconv.Itoa(item.Quantity),
			Lot:       item.Lot,
		})
	}
	return form
}
