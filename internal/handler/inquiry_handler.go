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

// InquiryHandler handles the public inquiry submission and the admin
// moderation endpoints.
type InquiryHandler struct {
	inquiries     service.InquiryService
	exposeDetails bool
}

// NewInquiryHandler creates an InquiryHandler with the given service.
// exposeDetails includes raw error strings in 500 responses (non-production).
func NewInquiryHandler(inquiries service.InquiryService, exposeDetails bool) *InquiryHandler {
	return &InquiryHandler{inquiries: inquiries, exposeDetails: exposeDetails}
}

// inquirySubmitRequest is the expected JSON body for POST /api/inquiries.
type inquirySubmitRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
	LoanType string `json:"loanType"`
}

// Submit handles POST /api/inquiries (public).
// email and message are required; everything else is optional.
func (h *InquiryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req inquirySubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid_json")
		return
	}
	if req.Email == "" {
		respondBadRequest(w, "email_required")
		return
	}
	if req.Message == "" {
		respondBadRequest(w, "message_required")
		return
	}

	stored, err := h.inquiries.Submit(r.Context(), &model.Inquiry{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Message:  req.Message,
		LoanType: req.LoanType,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to store inquiry", err, h.exposeDetails)
		return
	}

	respondData(w, http.StatusOK, stored)
}

// List handles GET /api/inquiries (admin).
func (h *InquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.inquiries.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list inquiries", err, h.exposeDetails)
		return
	}

	// Return [] not null for empty collections
	if records == nil {
		records = []*model.Inquiry{}
	}
	respondData(w, http.StatusOK, records)
}

// MarkAsRead handles PATCH /api/inquiries/{id} (admin). The request body is
// ignored; the only supported transition is isRead=true.
func (h *InquiryHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	updated, err := h.inquiries.MarkAsRead(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "inquiry not found", nil, false)
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to update inquiry", err, h.exposeDetails)
		return
	}

	respondData(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/inquiries/{id} (admin). Deleting an id that no
// longer exists still succeeds.
func (h *InquiryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.inquiries.Delete(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete inquiry", err, h.exposeDetails)
		return
	}

	writeJSON(w, http.StatusOK, envelope{Success: true})
}
