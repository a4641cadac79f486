package handlers

import (
	"log/slog"
	"net/http"

	"github.com/guiklos/lcpc-v2/internal/catalog"
	"github.com/guiklos/lcpc-v2/internal/models"
)

// CatalogHandler serves the reference data the dashboard's dropdowns
// and lookup labels are built from.
type CatalogHandler struct {
	snapshot *catalog.Snapshot
	source   catalog.Source
	log      *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(snapshot *catalog.Snapshot, source catalog.Source, log *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		snapshot: snapshot,
		source:   source,
		log:      log,
	}
}

// ClientView is a client enriched with the resolved city name the
// address column shows.
type ClientView struct {
	models.Client
	CityName string `json:"cityName"`
}

// ListClients handles GET /api/clients
func (h *CatalogHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients := h.snapshot.Clients()
	views := make([]ClientView, 0, len(clients))
	for _, c := range clients {
		views = append(views, ClientView{
			Client:   c,
			CityName: h.snapshot.CityName(c.CityID),
		})
	}
	writeJSON(w, http.StatusOK, views)
}

// ListCities handles GET /api/cities
func (h *CatalogHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.snapshot.Cities())
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.snapshot.Products())
}

// ListUsers handles GET /api/users
func (h *CatalogHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.snapshot.Users())
}

// Refresh handles POST /api/catalog/refresh
// Reloads the reference data from the upstream API, the same way the
// dashboard refetches on page load.
func (h *CatalogHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.snapshot.Refresh(r.Context(), h.source); err != nil {
		h.log.Error("catalog refresh failed", "error", err)
		writeError(w, http.StatusBadGateway, "Failed to load reference data")
		return
	}

	h.log.Info("catalog refreshed", "stats", h.snapshot.Stats())
	writeJSON(w, http.StatusOK, h.snapshot.Stats())
}
