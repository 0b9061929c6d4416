package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shareledger/dividend-backend/internal/api/request"
	"github.com/shareledger/dividend-backend/internal/api/response"
	"github.com/shareledger/dividend-backend/internal/apperrors"
	"github.com/shareledger/dividend-backend/internal/service"
	"github.com/shareledger/dividend-backend/internal/validation"
)

// EventHandler handles HTTP requests for share event (ledger) endpoints.
type EventHandler struct {
	ledgerService *service.LedgerService
}

// NewEventHandler creates a new EventHandler with the provided service dependency.
func NewEventHandler(ledgerService *service.LedgerService) *EventHandler {
	return &EventHandler{
		ledgerService: ledgerService,
	}
}

// RecordEvent handles POST requests to record a share event.
// The event is created in APPLIED status and must be approved before it
// participates in dividend computation.
//
// Endpoint: POST /api/event
// Request Body: CreateShareEventRequest (accountId, productId, type, quantity, eventDate)
// Response: 201 Created with ShareEvent
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *EventHandler) RecordEvent(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateShareEventRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateShareEvent(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	event, err := h.ledgerService.RecordEvent(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to record share event", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, event)
}

// ApproveEvent handles POST requests to approve a pending share event.
//
// Endpoint: POST /api/event/{uuid}/approve
// Response: 204 No Content on success
// Error: 400 Bad Request if the event ID is invalid (validated by middleware)
// Error: 404 Not Found if the event does not exist
// Error: 409 Conflict if the event is no longer pending
// Error: 500 Internal Server Error if the update fails
func (h *EventHandler) ApproveEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "uuid")

	if err := h.ledgerService.ApproveEvent(r.Context(), eventID); err != nil {
		respondEventError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// RejectEvent handles POST requests to reject a pending share event.
//
// Endpoint: POST /api/event/{uuid}/reject
// Response: 204 No Content on success
// Error: 400 Bad Request if the event ID is invalid (validated by middleware)
// Error: 404 Not Found if the event does not exist
// Error: 409 Conflict if the event is no longer pending
// Error: 500 Internal Server Error if the update fails
func (h *EventHandler) RejectEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "uuid")

	if err := h.ledgerService.RejectEvent(r.Context(), eventID); err != nil {
		respondEventError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// EventsPerAccount handles GET requests to retrieve an account's share events.
//
// Endpoint: GET /api/event/account/{uuid}
// Response: 200 OK with array of ShareEvent in event-date order
// Error: 400 Bad Request if the account ID is invalid (validated by middleware)
// Error: 500 Internal Server Error if retrieval fails
func (h *EventHandler) EventsPerAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "uuid")

	events, err := h.ledgerService.GetEventsPerAccount(accountID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveEvents.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, events)
}

func respondEventError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrEventNotFound):
		response.RespondError(w, http.StatusNotFound, apperrors.ErrEventNotFound.Error(), err.Error())
	case errors.Is(err, apperrors.ErrEventNotPending):
		response.RespondError(w, http.StatusConflict, apperrors.ErrEventNotPending.Error(), err.Error())
	default:
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveEvents.Error(), err.Error())
	}
}
