package forms

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rmscampos/gosales/app/helpers"
	"github.com/rmscampos/gosales/app/models"
)

type CustomerForm struct {
	Name    string `validate:"required,max=200"`
	Email   string `validate:"required,email,max=254"`
	Phone   string `validate:"max=20"`
	Address string
}

func ParseCustomerForm(r *http.Request) CustomerForm {
	return CustomerForm{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Phone:   r.PostFormValue("phone"),
		Address: r.PostFormValue("address"),
	}
}

func (f CustomerForm) Bind(v *validator.Validate, customer *models.Customer) Errors {
	errs := Errors{}
	if err := v.Struct(f); err != nil {
		for field, msg := range helpers.FormatValidationErrors(err.(validator.ValidationErrors)) {
			errs.Add(field, msg)
		}
	}
	if errs.Any() {
		return errs
	}

	customer.Name = f.Name
	customer.Email = f.Email
	customer.Phone = f.Phone
	customer.Address = f.Address
	return nil
}

func CustomerFormFromModel(customer *models.Customer) CustomerForm {
	return CustomerForm{
		Name:    customer.Name,
		Email:   customer.Email,
		Phone:   customer.Phone,
		Address: customer.Address,
	}
}
