package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/clearpath-mortgage/backend/internal/model"
	"github.com/clearpath-mortgage/backend/internal/repository"
	"github.com/clearpath-mortgage/backend/internal/service"
)

// LeadHandler handles the public lead submission and the admin moderation
// endpoints. A successful submission also triggers the best-effort
// notification email via the lead service.
type LeadHandler struct {
	leads         service.LeadService
	exposeDetails bool
}

// NewLeadHandler creates a LeadHandler with the given service.
func NewLeadHandler(leads service.LeadService, exposeDetails bool) *LeadHandler {
	return &LeadHandler{leads: leads, exposeDetails: exposeDetails}
}

// leadSubmitRequest is the expected JSON body for POST /api/leads.
type leadSubmitRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	LoanType      string `json:"loanType"`
	PropertyValue string `json:"propertyValue"`
	DownPayment   string `json:"downPayment"`
	CreditScore   string `json:"creditScore"`
	Timeframe     string `json:"timeframe"`
}

// Submit handles POST /api/leads (public). Only email is required; the
// multi-step form may submit any subset of the remaining fields.
func (h *LeadHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req leadSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid_json")
		return
	}
	if req.Email == "" {
		respondBadRequest(w, "email_required")
		return
	}

	stored, err := h.leads.Submit(r.Context(), &model.Lead{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		LoanType:      req.LoanType,
		PropertyValue: req.PropertyValue,
		DownPayment:   req.DownPayment,
		CreditScore:   req.CreditScore,
		Timeframe:     req.Timeframe,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to store lead", err, h.exposeDetails)
		return
	}

	respondData(w, http.StatusOK, stored)
}

// List handles GET /api/leads (admin).
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.leads.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list leads", err, h.exposeDetails)
		return
	}

	// Return [] not null for empty collections
	if records == nil {
		records = []*model.Lead{}
	}
	respondData(w, http.StatusOK, records)
}

// MarkAsRead handles PATCH /api/leads/{id} (admin).
func (h *LeadHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	updated, err := h.leads.MarkAsRead(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "lead not found", nil, false)
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to update lead", err, h.exposeDetails)
		return
	}

	respondData(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/leads/{id} (admin).
func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.leads.Delete(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete lead", err, h.exposeDetails)
		return
	}

	writeJSON(w, http.StatusOK, envelope{Success: true})
}
