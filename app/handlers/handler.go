package handlers

import (
	"html/template"
	"net/http"

	validatorpkg "github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/rmscampos/gosales/app/repositories"
	"github.com/rmscampos/gosales/app/services"
	"github.com/rmscampos/gosales/app/utils/renderer"
	"github.com/rmscampos/gosales/app/utils/sessions"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

type Handler struct {
	render    *render.Render
	validator *validatorpkg.Validate
	flash     sessions.FlashStore

	productRepo  repositories.ProductRepositoryImpl
	customerRepo repositories.CustomerRepositoryImpl
	sellerRepo   repositories.SellerRepositoryImpl
	saleRepo     repositories.SaleRepository

	saleService *services.SaleService
}

func NewHandler(db *gorm.DB, flash sessions.FlashStore) *Handler {
	productRepo := repositories.NewProductRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	sellerRepo := repositories.NewSellerRepository(db)
	saleRepo := repositories.NewSaleRepository(db)
	saleItemRepo := repositories.NewSaleItemRepository(db)

	return &Handler{
		render:       renderer.New(),
		validator:    validatorpkg.New(),
		flash:        flash,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		sellerRepo:   sellerRepo,
		saleRepo:     saleRepo,
		saleService:  services.NewSaleService(db, saleRepo, saleItemRepo, productRepo, customerRepo, sellerRepo),
	}
}

// PageData carries what every template under the layout needs.
type PageData struct {
	Title        string
	FlashSuccess []string
	FlashError   []string
	CSRFField    template.HTML
}

func (h *Handler) populateBaseData(w http.ResponseWriter, r *http.Request, data *PageData) {
	data.CSRFField = csrf.TemplateField(r)
	data.FlashSuccess, data.FlashError = h.flash.Pop(w, r)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request, title string) {
	data := &PageData{Title: title}
	h.populateBaseData(w, r, data)
	h.render.HTML(w, http.StatusNotFound, "not_found", data)
}
