package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rmscampos/gosales/app/forms"
	"github.com/rmscampos/gosales/app/models"
	"github.com/rmscampos/gosales/app/services"
)

type SaleListPageData struct {
	PageData
	Sales []models.Sale
}

type SaleFormPageData struct {
	PageData
	FormAction string
	IsEdit     bool
	Form       forms.SaleForm
	Errors     forms.Errors

	Customers []models.Customer
	Sellers   []models.Seller
	Products  []models.Product
}

type SaleDeletePageData struct {
	PageData
	Sale *models.Sale
}

func (h *Handler) ListSales(w http.ResponseWriter, r *http.Request) {
	data := &SaleListPageData{}
	h.populateBaseData(w, r, &data.PageData)
	data.Title = "Sales"

	sales, err := h.saleRepo.GetAllSales(r.Context())
	if err != nil {
		log.Printf("ListSales: failed to load sales: %v", err)
		data.FlashError = append(data.FlashError, "Failed to load sales.")
	}
	data.Sales = sales

	h.render.HTML(w, http.StatusOK, "sales/index", data)
}

// populateSaleFormOptions loads the select-box options the sale form needs.
func (h *Handler) populateSaleFormOptions(r *http.Request, data *SaleFormPageData) {
	var err error
	if data.Customers, err = h.customerRepo.GetCustomers(r.Context()); err != nil {
		log.Printf("sale form: failed to load customers: %v", err)
	}
	if data.Sellers, err = h.sellerRepo.GetSellers(r.Context()); err != nil {
		log.Printf("sale form: failed to load sellers: %v", err)
	}
	if data.Products, err = h.productRepo.GetProducts(r.Context()); err != nil {
		log.Printf("sale form: failed to load products: %v", err)
	}
}

func (h *Handler) AddSalePage(w http.ResponseWriter, r *http.Request) {
	data := &SaleFormPageData{
		FormAction: "/sales/add",
		Errors:     forms.Errors{},
	}
	h.populateBaseData(w, r, &data.PageData)
	h.populateSaleFormOptions(r, data)
	data.Title = "New Sale"

	h.render.HTML(w, http.StatusOK, "sales/form", data)
}

func (h *Handler) AddSalePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := forms.ParseSaleForm(r)

	input, errs := form.Validate(h.validator)
	if errs.Any() {
		h.renderSaleForm(w, r, "/sales/add", false, form, errs)
		return
	}

	if _, err := h.saleService.Create(r.Context(), input); err != nil {
		if errs := saleReferenceErrors(err); errs != nil {
			h.renderSaleForm(w, r, "/sales/add", false, form, errs)
			return
		}
		log.Printf("AddSalePost: failed to create sale: %v", err)
		h.flash.AddError(w, r, "Failed to save the sale. Nothing was recorded.")
		http.Redirect(w, r, "/sales/add", http.StatusSeeOther)
		return
	}

	h.flash.AddSuccess(w, r, "Sale recorded.")
	http.Redirect(w, r, "/sales", http.StatusSeeOther)
}

func (h *Handler) EditSalePage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	sale, err := h.saleRepo.GetByIDWithItems(r.Context(), id)
	if err != nil {
		log.Printf("EditSalePage: failed to load sale %s: %v", id, err)
		h.notFound(w, r, "Sale not found")
		return
	}
	if sale == nil {
		h.notFound(w, r, "Sale not found")
		return
	}

	data := &SaleFormPageData{
		FormAction: "/sales/" + id + "/edit",
		IsEdit:     true,
		Form:       forms.SaleFormFromModel(sale),
		Errors:     forms.Errors{},
	}
	h.populateBaseData(w, r, &data.PageData)
	h.populateSaleFormOptions(r, data)
	data.Title = "Edit Sale"

	h.render.HTML(w, http.StatusOK, "sales/form", data)
}

func (h *Handler) EditSalePost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := forms.ParseSaleForm(r)
	action := "/sales/" + id + "/edit"

	input, errs := form.Validate(h.validator)
	if errs.Any() {
		h.renderSaleForm(w, r, action, true, form, errs)
		return
	}

	if _, err := h.saleService.Update(r.Context(), id, input); err != nil {
		if errors.Is(err, services.ErrSaleNotFound) {
			h.notFound(w, r, "Sale not found")
			return
		}
		if errs := saleReferenceErrors(err); errs != nil {
			h.renderSaleForm(w, r, action, true, form, errs)
			return
		}
		log.Printf("EditSalePost: failed to update sale %s: %v", id, err)
		h.flash.AddError(w, r, "Failed to save the sale. The previous state was kept.")
		http.Redirect(w, r, action, http.StatusSeeOther)
		return
	}

	h.flash.AddSuccess(w, r, "Sale updated.")
	http.Redirect(w, r, "/sales", http.StatusSeeOther)
}

func (h *Handler) DeleteSalePage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	sale, err := h.saleRepo.GetByIDWithItems(r.Context(), id)
	if err != nil || sale == nil {
		h.notFound(w, r, "Sale not found")
		return
	}

	data := &SaleDeletePageData{Sale: sale}
	h.populateBaseData(w, r, &data.PageData)
	data.Title = "Delete Sale"

	h.render.HTML(w, http.StatusOK, "sales/confirm_delete", data)
}

func (h *Handler) DeleteSalePost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.saleService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrSaleNotFound) {
			h.notFound(w, r, "Sale not found")
			return
		}
		log.Printf("DeleteSalePost: failed to delete sale %s: %v", id, err)
		h.flash.AddError(w, r, "Failed to delete the sale.")
	} else {
		h.flash.AddSuccess(w, r, "Sale deleted.")
	}
	http.Redirect(w, r, "/sales", http.StatusSeeOther)
}

func (h *Handler) renderSaleForm(w http.ResponseWriter, r *http.Request, action string, isEdit bool, form forms.SaleForm, errs forms.Errors) {
	data := &SaleFormPageData{
		FormAction: action,
		IsEdit:     isEdit,
		Form:       form,
		Errors:     errs,
	}
	h.populateBaseData(w, r, &data.PageData)
	h.populateSaleFormOptions(r, data)
	if isEdit {
		data.Title = "Edit Sale"
	} else {
		data.Title = "New Sale"
	}
	h.render.HTML(w, http.StatusUnprocessableEntity, "sales/form", data)
}

// saleReferenceErrors maps a dangling-reference failure onto the form field
// that carried the bad id; any other error returns nil.
func saleReferenceErrors(err error) forms.Errors {
	switch {
	case errors.Is(err, services.ErrCustomerNotFound):
		return forms.Errors{"customer_id": "The selected customer no longer exists."}
	case errors.Is(err, services.ErrSellerNotFound):
		return forms.Errors{"seller_id": "The selected seller no longer exists."}
	case errors.Is(err, services.ErrProductNotFound):
		return forms.Errors{"items": "One of the selected products no longer exists."}
	case errors.Is(err, services.ErrSaleItemNotFound):
		return forms.Errors{"items": "One of the items does not belong to this sale."}
	}
	return nil
}
