package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"lis-dashboard/internal/backend"
	"lis-dashboard/internal/store"
)

const APIPrefix = "/api/v1"

type ErrorResponse struct {
	Detail any `json:"detail"`
}

// APIHandler exposes a backend router over HTTP.
type APIHandler struct {
	h   backend.Handler
	log zerolog.Logger
}

func NewAPIHandler(h backend.Handler, log zerolog.Logger) *APIHandler {
	return &APIHandler{h: h, log: log}
}

func (a *APIHandler) Dispatch(c echo.Context) error {
	req := c.Request()
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid body"})
	}
	// the backend unescapes segments itself, so keep them escaped here
	path := strings.TrimPrefix(req.URL.EscapedPath(), APIPrefix)
	if req.URL.RawQuery != "" {
		path += "?" + req.URL.RawQuery
	}

	res, err := a.h.Handle(req.Context(), req.Method, path, body)
	if err != nil {
		code := statusOf(err)
		if code == http.StatusInternalServerError {
			a.log.Error().Err(err).Str("method", req.Method).Str("path", path).Msg("request failed")
		}
		return c.JSON(code, ErrorResponse{Detail: store.Detail(err)})
	}
	if res == nil {
		return c.NoContent(http.StatusNoContent)
	}
	code := http.StatusOK
	if req.Method == http.MethodPost && strings.Trim(path, "/") != backend.WarmPath {
		code = http.StatusCreated
	}
	return c.JSON(code, res)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, store.ErrInvalid):
		return http.StatusUnprocessableEntity
	case errors.Is(err, store.ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
