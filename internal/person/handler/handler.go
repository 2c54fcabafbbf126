package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	addresshandler "cadastro/internal/address/handler"
	addressmodels "cadastro/internal/address/models"
	"cadastro/internal/person/models"
	"cadastro/internal/person/service"
	"cadastro/internal/platform/middleware"
	dErrors "cadastro/pkg/domain-errors"
	"cadastro/pkg/platform/httputil"
)

// Service defines the interface for person operations.
// Returns domain objects, not HTTP response DTOs.
type Service interface {
	Create(ctx context.Context, cmd *service.CreatePersonCommand) (*models.Person, error)
	Get(ctx context.Context, personID int64) (*models.Person, error)
	List(ctx context.Context, offset, limit int64) ([]models.Person, error)
	Update(ctx context.Context, personID int64, cmd *service.UpdatePersonCommand) (*models.Person, error)
	Delete(ctx context.Context, personID int64) error
	ResolveAddress(ctx context.Context, personID int64) (*addressmodels.Address, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/persons", func(r chi.Router) {
		r.Post("/", h.HandleCreate)
		r.Get("/", h.HandleList)
		r.Get("/{person_id}", h.HandleGet)
		r.Patch("/{person_id}", h.HandleUpdate)
		r.Delete("/{person_id}", h.HandleDelete)
		r.Get("/{person_id}/address", h.HandleResolveAddress)
	})
}

// HandleCreate creates a person and returns its public projection.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreatePersonRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	person, err := h.service.Create(ctx, req.ToCommand())
	if err != nil {
		h.logger.ErrorContext(ctx, "create person failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toPersonResponse(person))
}

// HandleList returns a page of persons.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	offset, limit, err := httputil.ParsePage(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	persons, err := h.service.List(ctx, offset, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list persons failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toPersonResponses(persons))
}

// HandleGet returns one person by id.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	personID, ok := parsePersonID(w, r)
	if !ok {
		return
	}

	person, err := h.service.Get(ctx, personID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get person failed", "error", err, "request_id", requestID, "person_id", personID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toPersonResponse(person))
}

// HandleUpdate applies a partial update and returns the merged row.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	personID, ok := parsePersonID(w, r)
	if !ok {
		return
	}

	req, ok := httputil.DecodeAndPrepare[UpdatePersonRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	person, err := h.service.Update(ctx, personID, req.ToCommand())
	if err != nil {
		h.logger.ErrorContext(ctx, "update person failed", "error", err, "request_id", requestID, "person_id", personID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toPersonResponse(person))
}

// HandleDelete removes a person. Success is 204 with an empty body.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	personID, ok := parsePersonID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, personID); err != nil {
		h.logger.ErrorContext(ctx, "delete person failed", "error", err, "request_id", requestID, "person_id", personID)
		httputil.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleResolveAddress returns the address the person references.
func (h *Handler) HandleResolveAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	personID, ok := parsePersonID(w, r)
	if !ok {
		return
	}

	address, err := h.service.ResolveAddress(ctx, personID)
	if err != nil {
		h.logger.ErrorContext(ctx, "resolve address failed", "error", err, "request_id", requestID, "person_id", personID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, addresshandler.NewAddressResponse(address))
}

// parsePersonID binds the typed path parameter. A non-numeric id is a
// validation failure, not a routing miss.
func parsePersonID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	personID, err := strconv.ParseInt(chi.URLParam(r, "person_id"), 10, 64)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "person_id must be an integer"))
		return 0, false
	}
	return personID, true
}
