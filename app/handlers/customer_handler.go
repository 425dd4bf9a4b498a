package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rmscampos/gosales/app/forms"
	"github.com/rmscampos/gosales/app/models"
)

type CustomerListPageData struct {
	PageData
	Customers []models.Customer
}

type CustomerFormPageData struct {
	PageData
	FormAction string
	IsEdit     bool
	Form       forms.CustomerForm
	Errors     forms.Errors
}

type CustomerDeletePageData struct {
	PageData
	Customer *models.Customer
}

func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	data := &CustomerListPageData{}
	h.populateBaseData(w, r, &data.PageData)
	data.Title = "Customers"

	customers, err := h.customerRepo.GetCustomers(r.Context())
	if err != nil {
		log.Printf("ListCustomers: failed to load customers: %v", err)
		data.FlashError = append(data.FlashError, "Failed to load customers.")
	}
	data.Customers = customers

	h.render.HTML(w, http.StatusOK, "customers/index", data)
}

func (h *Handler) AddCustomerPage(w http.ResponseWriter, r *http.Request) {
	data := &CustomerFormPageData{
		FormAction: "/customers/add",
		Errors:     forms.Errors{},
	}
	h.populateBaseData(w, r, &data.PageData)
	data.Title = "New Customer"

	h.render.HTML(w, http.StatusOK, "customers/form", data)
}

func (h *Handler) AddCustomerPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := forms.ParseCustomerForm(r)

	var customer models.Customer
	if errs := form.Bind(h.validator, &customer); errs.Any() {
		data := &CustomerFormPageData{FormAction: "/customers/add", Form: form, Errors: errs}
		h.populateBaseData(w, r, &data.PageData)
		data.Title = "New Customer"
		h.render.HTML(w, http.StatusUnprocessableEntity, "customers/form", data)
		return
	}

	if err := h.customerRepo.Create(r.Context(), &customer); err != nil {
		log.Printf("AddCustomerPost: failed to create customer: %v", err)
		h.flash.AddError(w, r, "Failed to save the customer. The email may already be in use.")
		http.Redirect(w, r, "/customers/add", http.StatusSeeOther)
		return
	}

	h.flash.AddSuccess(w, r, "Customer created.")
	http.Redirect(w, r, "/customers", http.StatusSeeOther)
}

func (h *Handler) EditCustomerPage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	customer, err := h.customerRepo.GetByID(r.Context(), id)
	if err != nil {
		h.notFound(w, r, "Customer not found")
		return
	}

	data := &CustomerFormPageData{
		FormAction: "/customers/" + id + "/edit",
		IsEdit:     true,
		Form:       forms.CustomerFormFromModel(customer),
		Errors:     forms.Errors{},
	}
	h.populateBaseData(w, r, &data.PageData)
	data.Title = "Edit Customer"

	h.render.HTML(w, http.StatusOK, "customers/form", data)
}

func (h *Handler) EditCustomerPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	customer, err := h.customerRepo.GetByID(r.Context(), id)
	if err != nil {
		h.notFound(w, r, "Customer not found")
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := forms.ParseCustomerForm(r)
	if errs := form.Bind(h.validator, customer); errs.Any() {
		data := &CustomerFormPageData{FormAction: "/customers/" + id + "/edit", IsEdit: true, Form: form, Errors: errs}
		h.populateBaseData(w, r, &data.PageData)
		data.Title = "Edit Customer"
		h.render.HTML(w, http.StatusUnprocessableEntity, "customers/form", data)
		return
	}

	if err := h.customerRepo.Update(r.Context(), customer); err != nil {
		log.Printf("EditCustomerPost: failed to update customer %s: %v", id, err)
		h.flash.AddError(w, r, "Failed to save the customer.")
		http.Redirect(w, r, "/customers/"+id+"/edit", http.StatusSeeOther)
		return
	}

	h.flash.AddSuccess(w, r, "Customer updated.")
	http.Redirect(w, r, "/customers", http.StatusSeeOther)
}

func (h *Handler) DeleteCustomerPage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	customer, err := h.customerRepo.GetByID(r.Context(), id)
	if err != nil {
		h.notFound(w, r, "Customer not found")
		return
	}

	data := &CustomerDeletePageData{Customer: customer}
	h.populateBaseData(w, r, &data.PageData)
	data.Title = "Delete Customer"

	h.render.HTML(w, http.StatusOK, "customers/confirm_delete", data)
}

func (h *Handler) DeleteCustomerPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.customerRepo.Delete(r.Context(), id); err != nil {
		log.Printf("DeleteCustomerPost: failed to delete customer %s: %v", id, err)
		h.flash.AddError(w, r, "Failed to delete the customer.")
	} else {
		h.flash.AddSuccess(w, r, "Customer deleted, along with their sales.")
	}
	http.Redirect(w, r, "/customers", http.StatusSeeOther)
}
