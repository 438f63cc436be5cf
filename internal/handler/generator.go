package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/screen"
	"github.com/vaultpass/passgen-go/internal/service"
)

const maxBodyBytes = 1 << 20 // 1MB

// StateSigner issues the screen-state token returned with every response.
type StateSigner interface {
	Sign(state model.ScreenState) (string, error)
}

// GeneratorHandler handles HTTP requests for the generator screen.
type GeneratorHandler struct {
	service *service.GeneratorService
	signer  StateSigner
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService, signer StateSigner) *GeneratorHandler {
	return &GeneratorHandler{service: svc, signer: signer}
}

// HandleScreen handles GET /api/v1/screen requests.
func (h *GeneratorHandler) HandleScreen(w http.ResponseWriter, r *http.Request) {
	state, ok := middleware.StateFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	h.writeState(w, r, state)
}

// HandleToggle handles POST /api/v1/screen/toggle requests.
func (h *GeneratorHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	state, ok := middleware.StateFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	var req model.ToggleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	next, err := h.service.Toggle(r.Context(), state, req.Class)
	if err != nil {
		if errors.Is(err, screen.ErrUnknownClass) {
			writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Field: "class"})
			return
		}
		h.internalError(w, r, err)
		return
	}

	h.writeState(w, r, next)
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	state, ok := middleware.StateFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	var req model.GenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	next, err := h.service.Generate(r.Context(), state, req)
	if err != nil {
		var vErr *generator.ValidationError
		if errors.As(err, &vErr) {
			writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: vErr.Message, Field: vErr.Field})
			return
		}
		h.internalError(w, r, err)
		return
	}

	h.writeState(w, r, next)
}

// HandleReset handles POST /api/v1/screen/reset requests.
func (h *GeneratorHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	state, ok := middleware.StateFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	next, err := h.service.Reset(r.Context(), state)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	h.writeState(w, r, next)
}

func (h *GeneratorHandler) writeState(w http.ResponseWriter, r *http.Request, state model.ScreenState) {
	token, err := h.signer.Sign(state)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ScreenResponse{
		ScreenState: state,
		Length:      len(state.Password),
		State:       token,
	})
}

func (h *GeneratorHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}

// decodeBody decodes a JSON body into v, writing the error response itself
// when it fails. An empty body leaves v at its zero value.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil {
		return true
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return true
		case errors.As(err, &tooLarge):
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
		default:
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		}
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) model.ErrorResponse {
	return model.ErrorResponse{Error: msg}
}
