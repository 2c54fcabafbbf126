package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"cadastro/internal/address/models"
	"cadastro/internal/address/service"
	"cadastro/internal/platform/middleware"
	dErrors "cadastro/pkg/domain-errors"
	"cadastro/pkg/platform/httputil"
)

// Service defines the interface for address operations.
// Returns domain objects, not HTTP response DTOs.
type Service interface {
	Create(ctx context.Context, cmd *service.CreateAddressCommand) (*models.Address, error)
	Get(ctx context.Context, addressID int64) (*models.Address, error)
	List(ctx context.Context, offset, limit int64) ([]models.Address, error)
	Update(ctx context.Context, addressID int64, cmd *service.UpdateAddressCommand) (*models.Address, error)
	Delete(ctx context.Context, addressID int64) error
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/address", func(r chi.Router) {
		r.Post("/", h.HandleCreate)
		r.Get("/", h.HandleList)
		r.Get("/{address_id}", h.HandleGet)
		r.Patch("/{address_id}", h.HandleUpdate)
		r.Delete("/{address_id}", h.HandleDelete)
	})
}

// HandleCreate creates an address and returns its public projection.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateAddressRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	address, err := h.service.Create(ctx, req.ToCommand())
	if err != nil {
		h.logger.ErrorContext(ctx, "create address failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, NewAddressResponse(address))
}

// HandleList returns a page of addresses.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	offset, limit, err := httputil.ParsePage(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	addresses, err := h.service.List(ctx, offset, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list addresses failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, newAddressResponses(addresses))
}

// HandleGet returns one address by id.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	addressID, ok := parseAddressID(w, r)
	if !ok {
		return
	}

	address, err := h.service.Get(ctx, addressID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get address failed", "error", err, "request_id", requestID, "address_id", addressID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, NewAddressResponse(address))
}

// HandleUpdate applies a partial update and returns the merged row.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	addressID, ok := parseAddressID(w, r)
	if !ok {
		return
	}

	req, ok := httputil.DecodeAndPrepare[UpdateAddressRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	address, err := h.service.Update(ctx, addressID, req.ToCommand())
	if err != nil {
		h.logger.ErrorContext(ctx, "update address failed", "error", err, "request_id", requestID, "address_id", addressID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, NewAddressResponse(address))
}

// HandleDelete removes an address. Success is 204 with an empty body.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	addressID, ok := parseAddressID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, addressID); err != nil {
		h.logger.ErrorContext(ctx, "delete address failed", "error", err, "request_id", requestID, "address_id", addressID)
		httputil.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseAddressID binds the typed path parameter. A non-numeric id is a
// validation failure, not a routing miss.
func parseAddressID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	addressID, err := strconv.ParseInt(chi.URLParam(r, "address_id"), 10, 64)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "address_id must be an integer"))
		return 0, false
	}
	return addressID, true
}
