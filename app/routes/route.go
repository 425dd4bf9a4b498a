package routes

import (
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/rmscampos/gosales/app/configs"
	"github.com/rmscampos/gosales/app/handlers"
	"github.com/rmscampos/gosales/app/middlewares"
	"github.com/rmscampos/gosales/app/utils/sessions"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, keys *configs.SessionKeys) *mux.Router {
	flash := sessions.NewCookieFlashStore(keys.AuthKey, keys.EncKey)
	h := handlers.NewHandler(db, flash)

	router := mux.NewRouter()
	router.Use(middlewares.RequestLogger)
	router.Use(csrf.Protect(keys.AuthKey, csrf.Secure(false), csrf.Path("/")))

	router.HandleFunc("/", h.Home).Methods("GET")

	router.HandleFunc("/products", h.ListProducts).Methods("GET")
	router.HandleFunc("/products/add", h.AddProductPage).Methods("GET")
	router.HandleFunc("/products/add", h.AddProductPost).Methods("POST")
	router.HandleFunc("/products/{id}/edit", h.EditProductPage).Methods("GET")
	router.HandleFunc("/products/{id}/edit", h.EditProductPost).Methods("POST")
	router.HandleFunc("/products/{id}/delete", h.DeleteProductPage).Methods("GET")
	router.HandleFunc("/products/{id}/delete", h.DeleteProductPost).Methods("POST")

	router.HandleFunc("/customers", h.ListCustomers).Methods("GET")
	router.HandleFunc("/customers/add", h.AddCustomerPage).Methods("GET")
	router.HandleFunc("/customers/add", h.AddCustomerPost).Methods("POST")
	router.HandleFunc("/customers/{id}/edit", h.EditCustomerPage).Methods("GET")
	router.HandleFunc("/customers/{id}/edit", h.EditCustomerPost).Methods("POST")
	router.HandleFunc("/customers/{id}/delete", h.DeleteCustomerPage).Methods("GET")
	router.HandleFunc("/customers/{id}/delete", h.DeleteCustomerPost).Methods("POST")

	router.HandleFunc("/sellers", h.ListSellers).Methods("GET")
	router.HandleFunc("/sellers/add", h.AddSellerPage).Methods("GET")
	router.HandleFunc("/sellers/add", h.AddSellerPost).Methods("POST")
	router.HandleFunc("/sellers/{id}/edit", h.EditSellerPage).Methods("GET")
	router.HandleFunc("/sellers/{id}/edit", h.EditSellerPost).Methods("POST")
	router.HandleFunc("/sellers/{id}/delete", h.DeleteSellerPage).Methods("GET")
	router.HandleFunc("/sellers/{id}/delete", h.DeleteSellerPost).Methods("POST")

	router.HandleFunc("/sales", h.ListSales).Methods("GET")
	router.HandleFunc("/sales/add", h.AddSalePage).Methods("GET")
	router.HandleFunc("/sales/add", h.AddSalePost).Methods("POST")
	router.HandleFunc("/sales/{id}/edit", h.EditSalePage).Methods("GET")
	router.HandleFunc("/sales/{id}/edit", h.EditSalePost).Methods("POST")
	router.HandleFunc("/sales/{id}/delete", h.DeleteSalePage).Methods("GET")
	router.HandleFunc("/sales/{id}/delete", h.DeleteSalePost).Methods("POST")

	return router
}
