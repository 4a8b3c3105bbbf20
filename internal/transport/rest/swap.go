package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/slotswapper/backend/internal/domain"
	"github.com/slotswapper/backend/internal/service/swap"
)

// swapService defines the minimal interface needed by SwapHandler.
type swapService interface {
	ListMarketplace(ctx context.Context) ([]*domain.MarketplaceSlot, error)
	CreateSwapRequest(ctx context.Context, input swap.CreateSwapRequestInput) (*domain.SwapRequest, error)
	ListSwapRequests(ctx context.Context) (*swap.RequestList, error)
	RespondToSwapRequest(ctx context.Context, input swap.RespondInput) (*domain.SwapOutcome, error)
}

// SwapHandler serves the marketplace and swap protocol REST endpoints.
type SwapHandler struct {
	svc swapService
	log *slog.Logger
}

// NewSwapHandler creates a SwapHandler.
func NewSwapHandler(svc swapService, logger *slog.Logger) *SwapHandler {
	return &SwapHandler{svc: svc, log: logger.With("handler", "swap")}
}

type publicUserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type marketplaceSlotResponse struct {
	eventResponse
	Owner publicUserResponse `json:"owner"`
}

type createSwapRequestRequest struct {
	MySlotID    string `json:"mySlotId"`
	TheirSlotID string `json:"theirSlotId"`
}

type swapRequestResponse struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	RequesterID string    `json:"requesterId"`
	RecipientID string    `json:"recipientId"`
	MySlotID    string    `json:"mySlotId"`
	TheirSlotID string    `json:"theirSlotId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type swapRequestDetailsResponse struct {
	swapRequestResponse
	Requester publicUserResponse `json:"requester"`
	Recipient publicUserResponse `json:"recipient"`
	MySlot    eventResponse      `json:"mySlot"`
	TheirSlot eventResponse      `json:"theirSlot"`
}

type requestListResponse struct {
	Incoming []swapRequestDetailsResponse `json:"incoming"`
	Outgoing []swapRequestDetailsResponse `json:"outgoing"`
}

type respondRequest struct {
	Accepted bool `json:"accepted"`
}

type swapOutcomeResponse struct {
	RequestID string `json:"requestId"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

// Marketplace handles GET /api/swappable-slots. Returns SWAPPABLE slots
// owned by other users.
func (h *SwapHandler) Marketplace(w http.ResponseWriter, r *http.Request) {
	slots, err := h.svc.ListMarketplace(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]marketplaceSlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, marketplaceSlotResponse{
			eventResponse: toEventResponse(&s.Event),
			Owner:         toPublicUserResponse(s.Owner),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateRequest handles POST /api/swap-request.
func (h *SwapHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req createSwapRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	mySlotID, err := uuid.Parse(req.MySlotID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid mySlotId")
		return
	}
	theirSlotID, err := uuid.Parse(req.TheirSlotID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid theirSlotId")
		return
	}

	created, err := h.svc.CreateSwapRequest(r.Context(), swap.CreateSwapRequestInput{
		MySlotID:    mySlotID,
		TheirSlotID: theirSlotID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSwapRequestResponse(created))
}

// ListRequests handles GET /api/swap-requests. Returns the caller's
// incoming and outgoing requests, newest first.
func (h *SwapHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListSwapRequests(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, requestListResponse{
		Incoming: toDetailsResponses(list.Incoming),
		Outgoing: toDetailsResponses(list.Outgoing),
	})
}

// Respond handles POST /api/swap-response/{requestId}.
func (h *SwapHandler) Respond(w http.ResponseWriter, r *http.Request) {
	requestID, err := uuid.Parse(r.PathValue("requestId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var req respondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outcome, err := h.svc.RespondToSwapRequest(r.Context(), swap.RespondInput{
		RequestID: requestID,
		Accepted:  req.Accepted,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, swapOutcomeResponse{
		RequestID: outcome.RequestID.String(),
		Status:    string(outcome.Status),
		Message:   outcome.Message,
	})
}

func toPublicUserResponse(u domain.PublicUser) publicUserResponse {
	return publicUserResponse{ID: u.ID.String(), Name: u.Name, Email: u.Email}
}

func toSwapRequestResponse(sr *domain.SwapRequest) swapRequestResponse {
	return swapRequestResponse{
		ID:          sr.ID.String(),
		Status:      string(sr.Status),
		RequesterID: sr.RequesterID.String(),
		RecipientID: sr.RecipientID.String(),
		MySlotID:    sr.MySlotID.String(),
		TheirSlotID: sr.TheirSlotID.String(),
		CreatedAt:   sr.CreatedAt,
		UpdatedAt:   sr.UpdatedAt,
	}
}

func toDetailsResponses(details []*domain.SwapRequestDetails) []swapRequestDetailsResponse {
	resp := make([]swapRequestDetailsResponse, 0, len(details))
	for _, d := range details {
		resp = append(resp, swapRequestDetailsResponse{
			swapRequestResponse: toSwapRequestResponse(&d.SwapRequest),
			Requester:           toPublicUserResponse(d.Requester),
			Recipient:           toPublicUserResponse(d.Recipient),
			MySlot:              toEventResponse(&d.MySlot),
			TheirSlot:           toEventResponse(&d.TheirSlot),
		})
	}
	return resp
}
