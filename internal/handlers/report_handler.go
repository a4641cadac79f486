package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/guiklos/lcpc-v2/internal/report"
	"github.com/guiklos/lcpc-v2/internal/service"
)

// ReportHandler serves the three dashboard reports.
type ReportHandler struct {
	reports *service.ReportService
	log     *slog.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports *service.ReportService, log *slog.Logger) *ReportHandler {
	return &ReportHandler{
		reports: reports,
		log:     log,
	}
}

// Orders handles GET /api/reports/orders
// Query params: startDate, endDate (YYYY-MM-DD or RFC3339), status
func (h *ReportHandler) Orders(w http.ResponseWriter, r *http.Request) {
	params, err := parseParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.reports.Orders(r.Context(), params)
	if err != nil {
		h.writeReportError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Billing handles GET /api/reports/billing
// Query params: startDate, endDate, clientId
func (h *ReportHandler) Billing(w http.ResponseWriter, r *http.Request) {
	params, err := parseParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.reports.Billing(r.Context(), params)
	if err != nil {
		h.writeReportError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// TopProducts handles GET /api/reports/top-products
// Query params: startDate, endDate, productType
func (h *ReportHandler) TopProducts(w http.ResponseWriter, r *http.Request) {
	params, err := parseParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.reports.TopProducts(r.Context(), params)
	if err != nil {
		h.writeReportError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ReportHandler) writeReportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, report.ErrDateRange),
		errors.Is(err, report.ErrUnknownStatus),
		errors.Is(err, report.ErrUnknownType):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.Error("failed to generate report", "error", err)
		writeError(w, http.StatusBadGateway, "Failed to generate report")
	}
}

func parseParams(r *http.Request) (report.Params, error) {
	q := r.URL.Query()
	params := report.Params{
		Status:      q.Get("status"),
		ClientID:    q.Get("clientId"),
		ProductType: q.Get("productType"),
	}

	var err error
	if params.StartDate, err = parseDate(q.Get("startDate")); err != nil {
		return report.Params{}, errors.New("invalid startDate")
	}
	if params.EndDate, err = parseDate(q.Get("endDate")); err != nil {
		return report.Params{}, errors.New("invalid endDate")
	}
	return params, nil
}

// parseDate accepts the date picker's plain date as well as RFC3339.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
