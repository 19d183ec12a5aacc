package report

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// Handler exposes report and dashboard HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/reports", func(r chi.Router) {
		r.Get("/sales", h.salesReport)         // GET /api/v1/reports/sales?from=&to=
		r.Get("/purchases", h.purchasesReport) // GET /api/v1/reports/purchases?from=&to=
		r.Get("/inventory", h.inventoryReport)
		r.Get("/monthly-sales", h.monthlySales)         // GET ?year=
		r.Get("/monthly-purchases", h.monthlyPurchases) // GET ?year=
	})
	r.Route("/api/v1/dashboard", func(r chi.Router) {
		r.Get("/stats", h.dashboardStats)
		r.Get("/activities", h.recentActivities)
	})
}

func (h *Handler) salesReport(w http.ResponseWriter, r *http.Request) {
	start, end := parsePeriod(r)
	rep, err := h.service.SalesReport(r.Context(), start, end)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, rep)
}

func (h *Handler) purchasesReport(w http.ResponseWriter, r *http.Request) {
	start, end := parsePeriod(r)
	rep, err := h.service.PurchasesReport(r.Context(), start, end)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, rep)
}

func (h *Handler) inventoryReport(w http.ResponseWriter, r *http.Request) {
	rep, err := h.service.InventoryReport(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, rep)
}

func (h *Handler) monthlySales(w http.ResponseWriter, r *http.Request) {
	totals, err := h.service.MonthlySales(r.Context(), parseYear(r))
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, totals)
}

func (h *Handler) monthlyPurchases(w http.ResponseWriter, r *http.Request) {
	totals, err := h.service.MonthlyPurchases(r.Context(), parseYear(r))
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, totals)
}

func (h *Handler) dashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.DashboardStats(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, stats)
}

func (h *Handler) recentActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.RecentActivities(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, activities)
}

// parsePeriod reads from/to query params, defaulting to the last 30 days.
func parsePeriod(r *http.Request) (time.Time, time.Time) {
	now := time.Now()
	start := now.AddDate(0, 0, -30)
	end := now
	if from, err := time.Parse("2006-01-02", r.URL.Query().Get("from")); err == nil {
		start = from
	}
	if to, err := time.Parse("2006-01-02", r.URL.Query().Get("to")); err == nil {
		end = to.Add(24*time.Hour - time.Nanosecond)
	}
	return start, end
}

func parseYear(r *http.Request) int {
	if year, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil && year > 0 {
		return year
	}
	return time.Now().Year()
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
