package handlers

import (
	"log"
	"net/http"

	"github.com/rmscampos/gosales/app/models"
)

type HomePageData struct {
	PageData
	ProductCount  int64
	CustomerCount int64
	RecentSales   []models.Sale
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	data := &HomePageData{}
	h.populateBaseData(w, r, &data.PageData)
	data.Title = "Dashboard"

	var err error
	if data.ProductCount, err = h.productRepo.Count(r.Context()); err != nil {
		log.Printf("Home: failed to count products: %v", err)
	}
	if data.CustomerCount, err = h.customerRepo.Count(r.Context()); err != nil {
		log.Printf("Home: failed to count customers: %v", err)
	}
	if data.RecentSales, err = h.saleRepo.GetRecentSales(r.Context(), 5); err != nil {
		log.Printf("Home: failed to load recent sales: %v", err)
	}

	h.render.HTML(w, http.StatusOK, "home", data)
}
