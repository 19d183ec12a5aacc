package sale

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// Handler exposes sale HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/sales", func(r chi.Router) {
		r.Post("/", h.createSale)
		r.Get("/", h.listSales) // GET /api/v1/sales?q=&status=&payment_method=&from=&to=&sort=
		r.Get("/{id}", h.getSale)
		r.Patch("/{id}/status", h.updateStatus)
		r.Delete("/{id}", h.deleteSale)
	})
}

func (h *Handler) createSale(w http.ResponseWriter, r *http.Request) {
	var req CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	s, err := h.service.CreateSale(r.Context(), req)
	if err != nil {
		code := http.StatusInternalServerError
		msg := err.Error()
		if errors.Is(err, ErrDuplicateSubmission) {
			code = http.StatusConflict
		} else if strings.Contains(msg, "invalid") || strings.Contains(msg, "must") || strings.Contains(msg, "required") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": msg})
		return
	}
	respond(w, http.StatusCreated, s)
}

func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.service.ListSales(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	query := r.URL.Query()
	filters := Filters{
		Status:        Status(query.Get("status")),
		PaymentMethod: PaymentMethod(query.Get("payment_method")),
	}
	if from, err := time.Parse("2006-01-02", query.Get("from")); err == nil {
		filters.From = from
	}
	if to, err := time.Parse("2006-01-02", query.Get("to")); err == nil {
		// Date-only upper bound covers the whole day.
		filters.To = to.Add(24*time.Hour - time.Nanosecond)
	}
	sales = FilterSales(sales, query.Get("q"), filters)
	if by := SortOption(query.Get("sort")); by != "" {
		sales = SortSales(sales, by)
	}
	respond(w, http.StatusOK, sales)
}

func (h *Handler) getSale(w http.ResponseWriter, r *http.Request) {
	s, err := h.service.GetSale(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, s)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid status") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "sale updated"})
}

func (h *Handler) deleteSale(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSale(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "sale deleted"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
