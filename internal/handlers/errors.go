package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/emergentai/leafvision/internal/components"
	"github.com/emergentai/leafvision/internal/leaf"
	"github.com/emergentai/leafvision/internal/page"
	"github.com/emergentai/leafvision/internal/preview"
	"github.com/emergentai/leafvision/pkg/apperror"
	"github.com/emergentai/leafvision/pkg/logger"
)

var domainErrors = []struct {
	target error
	appErr *apperror.Error
}{
	{preview.ErrNotImage, apperror.ErrInvalidFileType},
	{preview.ErrTooLarge, apperror.ErrFileTooLarge},
	{preview.ErrDecode, apperror.ErrDecodeFailed},
	{page.ErrStaleSelection, apperror.ErrStaleSelection},
	{page.ErrSessionNotFound, apperror.ErrSessionNotFound},
	{page.ErrNoImage, apperror.ErrNoImage},
	{page.ErrGenerationPending, apperror.ErrGenerationPending},
	{page.ErrRateLimited, apperror.ErrRateLimited},
	{page.ErrGenerationTimeout, apperror.ErrGenerationTimeout},
	{page.ErrGenerationFailed, apperror.ErrGenerationFailed},
	{leaf.ErrInvalidMode, apperror.ErrInvalidMode},
	{context.Canceled, apperror.ErrClientClosed},
}

// toAppError maps domain errors onto the HTTP error vocabulary.
func toAppError(err error) *apperror.Error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return apperror.ErrFileTooLarge.WithInternal(err)
	}

	for _, d := range domainErrors {
		if errors.Is(err, d.target) {
			return d.appErr.WithInternal(err)
		}
	}

	return apperror.From(err)
}

// fail reports err to the client: JSON when asked for, otherwise a
// notification fragment the page shows as a dismissible toast.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	appErr := toAppError(err)

	// Nobody is left to read a body.
	if appErr.Code == apperror.ErrClientClosed.Code {
		h.log.Debug("client went away", slog.String("path", r.URL.Path), logger.Error(err))
		w.WriteHeader(appErr.HTTPStatus)
		return
	}

	if apperror.WantsJSON(r) {
		apperror.WriteJSON(w, r, h.log, appErr)
		return
	}

	if appErr.HTTPStatus >= 500 {
		h.log.Error("request error",
			slog.Int("status", appErr.HTTPStatus),
			slog.String("path", r.URL.Path),
			logger.Error(err),
		)
	}

	w.Header().Set("X-Error-Code", appErr.Code)
	h.render(w, appErr.HTTPStatus, components.Notification(appErr.Code, appErr.Message))
}
