package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/shortener/internal/entity"
)

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "pong")
}

func handleWelcome(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, welcomeMessage)
}

// maxRequestBodySize caps the body of POST /url.
const maxRequestBodySize = 4 << 10

type urlUseCase interface {
	ShortenURL(ctx context.Context, targetURL string) (*entity.URL, error)
	ResolveKey(ctx context.Context, key string) (*entity.URL, error)
	GetInfo(ctx context.Context, secretKey string) (*entity.URL, error)
	Revoke(ctx context.Context, secretKey string) (*entity.URL, error)
}

type urlHandler struct {
	useCase  urlUseCase
	validate *validator.Validate
	baseURL  string
}

func newURLHandler(useCase urlUseCase, validate *validator.Validate, baseURL string) *urlHandler {
	return &urlHandler{
		useCase:  useCase,
		validate: validate,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

func (h *urlHandler) shortenURL(w http.ResponseWriter, r *http.Request) {
	var req urlRequest

	body := http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	if err := render.DecodeJSON(body, &req); err != nil {
		if errors.Is(err, io.EOF) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, emptyRequestBodyResponse)
			return
		}

		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			render.Status(r, http.StatusRequestEntityTooLarge)
			render.JSON(w, r, requestBodyTooLargeResponse)
			return
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidRequestBodyResponse)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidURLResponse)
		return
	}

	url, err := h.useCase.ShortenURL(r.Context(), req.TargetURL)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidURL) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, invalidURLResponse)
			return
		}

		h.serverError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toURLInfoResponse(h.baseURL, url))
}

func (h *urlHandler) forwardToTarget(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	url, err := h.useCase.ResolveKey(r.Context(), key)
	if err != nil {
		if errors.Is(err, entity.ErrURLNotFound) {
			h.notFound(w, r)
			return
		}

		h.serverError(w, r, err)
		return
	}

	http.Redirect(w, r, url.TargetURL, http.StatusTemporaryRedirect)
}

func (h *urlHandler) getURLInfo(w http.ResponseWriter, r *http.Request) {
	secretKey := chi.URLParam(r, "secretKey")

	url, err := h.useCase.GetInfo(r.Context(), secretKey)
	if err != nil {
		if errors.Is(err, entity.ErrURLNotFound) {
			h.notFound(w, r)
			return
		}

		h.serverError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toURLInfoResponse(h.baseURL, url))
}

func (h *urlHandler) deleteURL(w http.ResponseWriter, r *http.Request) {
	secretKey := chi.URLParam(r, "secretKey")

	url, err := h.useCase.Revoke(r.Context(), secretKey)
	if err != nil {
		if errors.Is(err, entity.ErrURLNotFound) {
			h.notFound(w, r)
			return
		}

		h.serverError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, revokedResponse(url))
}

// notFound names the requested URL without telling a deactivated record
// apart from one that never existed.
func (h *urlHandler) notFound(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusNotFound)
	render.JSON(w, r, notFoundResponse(h.baseURL+r.URL.Path))
}

func (h *urlHandler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, serverErrorResponse)
}
