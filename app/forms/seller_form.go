package forms

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rmscampos/gosales/app/helpers"
	"github.com/rmscampos/gosales/app/models"
	"github.com/shopspring/decimal"
)

type SellerForm struct {
	Name        string `validate:"required,max=200"`
	Description string
	Email       string `validate:"required,email,max=254"`
	Phone       string `validate:"max=20"`
	Address     string
	Website     string `validate:"omitempty,url,max=1024"`
	Commission  string
}

func ParseSellerForm(r *http.Request) SellerForm {
	return SellerForm{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		Email:       r.PostFormValue("email"),
		Phone:       r.PostFormValue("phone"),
		Address:     r.PostFormValue("address"),
		Website:     r.PostFormValue("website"),
		Commission:  r.PostFormValue("commission"),
	}
}

func (f SellerForm) Bind(v *validator.Validate, seller *models.Seller) Errors {
	errs := Errors{}
	if err := v.Struct(f); err != nil {
		for field, msg := range helpers.FormatValidationErrors(err.(validator.ValidationErrors)) {
			errs.Add(field, msg)
		}
	}

	commission := decimal.Zero
	if f.Commission != "" {
		parsed, err := decimal.NewFromString(f.Commission)
		if err != nil || parsed.IsNegative() {
			errs.Add("commission", "Commission must be a non-negative percentage.")
		} else {
			commission = parsed
		}
	}

	if errs.Any() {
		return errs
	}

	seller.Name = f.Name
	seller.Description = f.Description
	seller.Email = f.Email
	seller.Phone = f.Phone
	seller.Address = f.Address
	seller.Website = f.Website
	seller.Commission = commission
	return nil
}

func SellerFormFromModel(seller *models.Seller) SellerForm {
	return SellerForm{
		Name:        seller.Name,
		Description: seller.Description,
		Email:       seller.Email,
		Phone:       seller.Phone,
		Address:     seller.Address,
		Website:     seller.Website,
		Commission:  seller.Commission.StringFixed(2),
	}
}
