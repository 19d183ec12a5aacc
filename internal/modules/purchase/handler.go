package purchase

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// Handler exposes purchase HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/purchases", func(r chi.Router) {
		r.Post("/", h.createPurchase)
		r.Get("/", h.listPurchases) // GET /api/v1/purchases?q=&status=&payment_status=&from=&to=&sort=
		r.Get("/{id}", h.getPurchase)
		r.Patch("/{id}/status", h.updateStatus)
		r.Patch("/{id}/payment-status", h.updatePaymentStatus)
		r.Delete("/{id}", h.deletePurchase)
	})
}

func (h *Handler) createPurchase(w http.ResponseWriter, r *http.Request) {
	var req CreatePurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	p, err := h.service.CreatePurchase(r.Context(), req)
	if err != nil {
		code := http.StatusInternalServerError
		msg := err.Error()
		if errors.Is(err, ErrDuplicateSubmission) {
			code = http.StatusConflict
		} else if strings.Contains(msg, "invalid") || strings.Contains(msg, "must") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": msg})
		return
	}
	respond(w, http.StatusCreated, p)
}

func (h *Handler) listPurchases(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.service.ListPurchases(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	query := r.URL.Query()
	filters := Filters{
		Status:        Status(query.Get("status")),
		PaymentStatus: PaymentStatus(query.Get("payment_status")),
	}
	if from, err := time.Parse("2006-01-02", query.Get("from")); err == nil {
		filters.From = from
	}
	if to, err := time.Parse("2006-01-02", query.Get("to")); err == nil {
		// Date-only upper bound covers the whole day.
		filters.To = to.Add(24*time.Hour - time.Nanosecond)
	}
	purchases = FilterPurchases(purchases, query.Get("q"), filters)
	if by := SortOption(query.Get("sort")); by != "" {
		purchases = SortPurchases(purchases, by)
	}
	respond(w, http.StatusOK, purchases)
}

func (h *Handler) getPurchase(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetPurchase(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, p)
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
	respond(w, http.StatusOK, map[string]string{"status": "purchase updated"})
}

func (h *Handler) updatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdatePaymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.service.UpdatePaymentStatus(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid payment status") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "purchase updated"})
}

func (h *Handler) deletePurchase(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePurchase(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "purchase deleted"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
