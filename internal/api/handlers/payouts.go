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

// PayoutHandler handles HTTP requests for dividend payout endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the dividendService.
type PayoutHandler struct {
	dividendService *service.DividendService
}

// NewPayoutHandler creates a new PayoutHandler with the provided service dependency.
func NewPayoutHandler(dividendService *service.DividendService) *PayoutHandler {
	return &PayoutHandler{
		dividendService: dividendService,
	}
}

// ComputeDividend handles POST requests to compute and persist a dividend payout.
//
// Endpoint: POST /api/dividend
// Request Body: ComputeDividendRequest (productId, poolAmount, periodStart, periodEnd)
// Response: 201 Created with DividendPayout including its allocations
// Error: 400 Bad Request if validation fails or the period/pool amount is invalid
// Error: 404 Not Found if the product does not exist
// Error: 409 Conflict if no account holds eligible shares, or a payout already
// exists for the product and period
// Error: 500 Internal Server Error if computation or persistence fails
func (h *PayoutHandler) ComputeDividend(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.ComputeDividendRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateComputeDividend(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	payout, err := h.dividendService.ComputeDividend(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidDateRange) || errors.Is(err, apperrors.ErrInvalidPoolAmount):
			response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		case errors.Is(err, apperrors.ErrProductNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrProductNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrNoEligibleShares):
			response.RespondError(w, http.StatusConflict, apperrors.ErrNoEligibleShares.Error(), err.Error())
		case errors.Is(err, apperrors.ErrDuplicatePayout):
			response.RespondError(w, http.StatusConflict, apperrors.ErrDuplicatePayout.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeDividend.Error(), err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusCreated, payout)
}

// GetPayout handles GET requests to retrieve a payout with its allocations.
//
// Endpoint: GET /api/dividend/{uuid}
// Response: 200 OK with DividendPayout
// Error: 400 Bad Request if the payout ID is invalid (validated by middleware)
// Error: 404 Not Found if the payout does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *PayoutHandler) GetPayout(w http.ResponseWriter, r *http.Request) {
	payoutID := chi.URLParam(r, "uuid")

	payout, err := h.dividendService.GetPayout(r.Context(), payoutID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPayoutNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPayoutNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePayouts.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, payout)
}

// PayoutsPerProduct handles GET requests to retrieve all payouts of a product.
//
// Endpoint: GET /api/dividend/product/{uuid}
// Response: 200 OK with array of DividendPayout (no allocation detail)
// Error: 400 Bad Request if the product ID is invalid (validated by middleware)
// Error: 500 Internal Server Error if retrieval fails
func (h *PayoutHandler) PayoutsPerProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "uuid")

	payouts, err := h.dividendService.GetPayoutsPerProduct(productID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePayouts.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, payouts)
}

// ApprovePayout handles POST requests to finalize a pending payout.
//
// Endpoint: POST /api/dividend/{uuid}/approve
// Response: 204 No Content on success
// Error: 400 Bad Request if the payout ID is invalid (validated by middleware)
// Error: 404 Not Found if the payout does not exist
// Error: 409 Conflict if the payout is already approved
// Error: 500 Internal Server Error if the update fails
func (h *PayoutHandler) ApprovePayout(w http.ResponseWriter, r *http.Request) {
	payoutID := chi.URLParam(r, "uuid")

	if err := h.dividendService.ApprovePayout(r.Context(), payoutID); err != nil {
		respondLifecycleError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// DeletePayout handles DELETE requests to remove a pending payout.
// Approved payouts are permanent and cannot be deleted.
//
// Endpoint: DELETE /api/dividend/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if the payout ID is invalid (validated by middleware)
// Error: 404 Not Found if the payout does not exist
// Error: 409 Conflict if the payout is already approved
// Error: 500 Internal Server Error if deletion fails
func (h *PayoutHandler) DeletePayout(w http.ResponseWriter, r *http.Request) {
	payoutID := chi.URLParam(r, "uuid")

	if err := h.dividendService.DeletePayout(r.Context(), payoutID); err != nil {
		respondLifecycleError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

func respondLifecycleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrPayoutNotFound):
		response.RespondError(w, http.StatusNotFound, apperrors.ErrPayoutNotFound.Error(), err.Error())
	case errors.Is(err, apperrors.ErrPayoutAlreadyApproved):
		response.RespondError(w, http.StatusConflict, apperrors.ErrPayoutAlreadyApproved.Error(), err.Error())
	default:
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePayouts.Error(), err.Error())
	}
}
