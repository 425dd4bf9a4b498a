package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rmscampos/gosales/app/forms"
	"github.com/rmscampos/gosales/app/models"
)

type SellerListPageData struct {
	PageData
	Sellers []models.Seller
}

type SellerFormPageData struct {
	PageData
	FormAction string
	IsEdit     bool
	Form       forms.SellerForm
	Errors     forms.Errors
}

type SellerDeletePageData struct {
	PageData
	Seller *models.Seller
}

func (h *Handler) ListSellers(w http.ResponseWriter, r *http.Request) {
	data := &SellerListPageData{}
	h.populateBaseData(w, r, &data.PageData)
	data.Title = "Sellers"

	sellers, err := h.sellerRepo.GetSellers(r.Context())
	if err != nil {
		log.Printf("ListSellers: failed to load sellers: %v", err)
		data.FlashError = append(data.FlashError, "Failed to load sellers.")
	}
	data.Sellers = sellers

	h.render.HTML(w, http.StatusOK, "sellers/index", data)
}

func (h *Handler) AddSellerPage(w http.ResponseWriter, r *http.Request) {
	data := &SellerFormPageData{
		FormAction: "/sellers/add",
		Errors:     forms.Errors{},
	}
	h.populateBaseData(w, r, &data.PageData)
	data.Title = "New Seller"

	h.render.HTML(w, http.StatusOK, "sellers/form", data)
}

func (h *Handler) AddSellerPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := forms.ParseSellerForm(r)

	var seller models.Seller
	if errs := form.Bind(h.validator, &seller); errs.Any() {
		data := &SellerFormPageData{FormAction: "/sellers/add", Form: form, Errors: errs}
		h.populateBaseData(w, r, &data.PageData)
		data.Title = "New Seller"
		h.render.HTML(w, http.StatusUnprocessableEntity, "sellers/form", data)
		return
	}

	if err := h.sellerRepo.Create(r.Context(), &seller); err != nil {
		log.Printf("AddSellerPost: failed to create seller: %v", err)
		h.flash.AddError(w, r, "Failed to save the seller. The email may already be in use.")
		http.Redirect(w, r, "/sellers/add", http.StatusSeeOther)
		return
	}

	h.flash.AddSuccess(w, r, "Seller created.")
	http.Redirect(w, r, "/sellers", http.StatusSeeOther)
}

func (h *Handler) EditSellerPage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	seller, err := h.sellerRepo.GetByID(r.Context(), id)
	if err != nil {
		h.notFound(w, r, "Seller not found")
		return
	}

	data := &SellerFormPageData{
		FormAction: "/sellers/" + id + "/edit",
		IsEdit:     true,
		Form:       forms.SellerFormFromModel(seller),
		Errors:     forms.Errors{},
	}
	h.populateBaseData(w, r, &data.PageData)
	data.Title = "Edit Seller"

	h.render.HTML(w, http.StatusOK, "sellers/form", data)
}

func (h *Handler) EditSellerPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	seller, err := h.sellerRepo.GetByID(r.Context(), id)
	if err != nil {
		h.notFound(w, r, "Seller not found")
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := forms.ParseSellerForm(r)
	if errs := form.Bind(h.validator, seller); errs.Any() {
		data := &SellerFormPageData{FormAction: "/sellers/" + id + "/edit", IsEdit: true, Form: form, Errors: errs}
		h.populateBaseData(w, r, &data.PageData)
		data.Title = "Edit Seller"
		h.render.HTML(w, http.StatusUnprocessableEntity, "sellers/form", data)
		return
	}

	if err := h.sellerRepo.Update(r.Context(), seller); err != nil {
		log.Printf("EditSellerPost: failed to update seller %s: %v", id, err)
		h.flash.AddError(w, r, "Failed to save the seller.")
		http.Redirect(w, r, "/sellers/"+id+"/edit", http.StatusSeeOther)
		return
	}

	h.flash.AddSuccess(w, r, "Seller updated.")
	http.Redirect(w, r, "/sellers", http.StatusSeeOther)
}

func (h *Handler) DeleteSellerPage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	seller, err := h.sellerRepo.GetByID(r.Context(), id)
	if err != nil {
		h.notFound(w, r, "Seller not found")
		return
	}

	data := &SellerDeletePageData{Seller: seller}
	h.populateBaseData(w, r, &data.PageData)
	data.Title = "Delete Seller"

	h.render.HTML(w, http.StatusOK, "sellers/confirm_delete", data)
}

func (h *Handler) DeleteSellerPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.sellerRepo.Delete(r.Context(), id); err != nil {
		log.Printf("DeleteSellerPost: failed to delete seller %s: %v", id, err)
		h.flash.AddError(w, r, "Failed to delete the seller.")
	} else {
		h.flash.AddSuccess(w, r, "Seller deleted. Their sales were kept.")
	}
	http.Redirect(w, r, "/sellers", http.StatusSeeOther)
}
