package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rmscampos/gosales/app/forms"
	"github.com/rmscampos/gosales/app/models"
)

type ProductListPageData struct {
	PageData
	Products []models.Product
}

type ProductFormPageData struct {
	PageData
	FormAction string
	IsEdit     bool
	Form       forms.ProductForm
	Errors     forms.Errors
}

type ProductDeletePageData struct {
	PageData
	Product *models.Product
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	data := &ProductListPageData{}
	h.populateBaseData(w, r, &data.PageData)
	data.Title = "Products"

	products, err := h.productRepo.GetProducts(r.Context())
	if err != nil {
		log.Printf("ListProducts: failed to load products: %v", err)
		data.FlashError = append(data.FlashError, "Failed to load products.")
	}
	data.Products = products

	h.render.HTML(w, http.StatusOK, "products/index", data)
}

func (h *Handler) AddProductPage(w http.ResponseWriter, r *http.Request) {
	data := &ProductFormPageData{
		FormAction: "/products/add",
		Form:       forms.NewProductForm(),
		Errors:     forms.Errors{},
	}
	h.populateBaseData(w, r, &data.PageData)
	data.Title = "New Product"

	h.render.HTML(w, http.StatusOK, "products/form", data)
}

func (h *Handler) AddProductPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := forms.ParseProductForm(r)

	var product models.Product
	if errs := form.Bind(h.validator, &product); errs.Any() {
		data := &ProductFormPageData{FormAction: "/products/add", Form: form, Errors: errs}
		h.populateBaseData(w, r, &data.PageData)
		data.Title = "New Product"
		h.render.HTML(w, http.StatusUnprocessableEntity, "products/form", data)
		return
	}

	if err := h.productRepo.Create(r.Context(), &product); err != nil {
		log.Printf("AddProductPost: failed to create product: %v", err)
		h.flash.AddError(w, r, "Failed to save the product.")
		http.Redirect(w, r, "/products/add", http.StatusSeeOther)
		return
	}

	h.flash.AddSuccess(w, r, "Product created.")
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (h *Handler) EditProductPage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		h.notFound(w, r, "Product not found")
		return
	}

	data := &ProductFormPageData{
		FormAction: "/products/" + id + "/edit",
		IsEdit:     true,
		Form:       forms.ProductFormFromModel(product),
		Errors:     forms.Errors{},
	}
	h.populateBaseData(w, r, &data.PageData)
	data.Title = "Edit Product"

	h.render.HTML(w, http.StatusOK, "products/form", data)
}

func (h *Handler) EditProductPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		h.notFound(w, r, "Product not found")
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := forms.ParseProductForm(r)
	if errs := form.Bind(h.validator, product); errs.Any() {
		data := &ProductFormPageData{FormAction: "/products/" + id + "/edit", IsEdit: true, Form: form, Errors: errs}
		h.populateBaseData(w, r, &data.PageData)
		data.Title = "Edit Product"
		h.render.HTML(w, http.StatusUnprocessableEntity, "products/form", data)
		return
	}

	if err := h.productRepo.Update(r.Context(), product); err != nil {
		log.Printf("EditProductPost: failed to update product %s: %v", id, err)
		h.flash.AddError(w, r, "Failed to save the product.")
		http.Redirect(w, r, "/products/"+id+"/edit", http.StatusSeeOther)
		return
	}

	h.flash.AddSuccess(w, r, "Product updated.")
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (h *Handler) DeleteProductPage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		h.notFound(w, r, "Product not found")
		return
	}

	data := &ProductDeletePageData{Product: product}
	h.populateBaseData(w, r, &data.PageData)
	data.Title = "Delete Product"

	h.render.HTML(w, http.StatusOK, "products/confirm_delete", data)
}

func (h *Handler) DeleteProductPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.productRepo.Delete(r.Context(), id); err != nil {
		log.Printf("DeleteProductPost: failed to delete product %s: %v", id, err)
		h.flash.AddError(w, r, "Failed to delete the product.")
	} else {
		h.flash.AddSuccess(w, r, "Product deleted.")
	}
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}
