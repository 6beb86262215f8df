package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emergentai/leafvision/internal/leaf"
	"github.com/emergentai/leafvision/internal/page"
	"github.com/emergentai/leafvision/internal/preview"
	"github.com/emergentai/leafvision/pkg/apperror"
)

func TestToAppError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"not an image", fmt.Errorf("%w: %q", preview.ErrNotImage, "text/plain"), "invalid_file_type", http.StatusUnsupportedMediaType},
		{"body limit", &http.MaxBytesError{Limit: 10}, "file_too_large", apperror.ErrFileTooLarge.HTTPStatus},
		{"stale selection", page.ErrStaleSelection, "stale_selection", apperror.ErrStaleSelection.HTTPStatus},
		{"pending", page.ErrGenerationPending, "generation_pending", http.StatusConflict},
		{"bad mode", fmt.Errorf("%w: %q", leaf.ErrInvalidMode, "wilted"), "invalid_mode", http.StatusBadRequest},
		{"client went away", context.Canceled, "client_closed_request", 499},
		{"client went away wrapped", fmt.Errorf("generate: %w", context.Canceled), "client_closed_request", 499},
		{"already mapped", apperror.ErrNoImage, "no_image", http.StatusConflict},
		{"unknown", errors.New("boom"), "internal_error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toAppError(tt.err)
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, tt.status, got.HTTPStatus)
		})
	}
}
