package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/fx"
	g "maragu.dev/gomponents"

	"github.com/emergentai/leafvision/internal/components"
	"github.com/emergentai/leafvision/internal/config"
	"github.com/emergentai/leafvision/internal/leaf"
	"github.com/emergentai/leafvision/internal/page"
	"github.com/emergentai/leafvision/internal/preview"
	"github.com/emergentai/leafvision/pkg/apperror"
	"github.com/emergentai/leafvision/pkg/logger"
)

var Module = fx.Module("handlers",
	fx.Provide(New),
)

// multipartOverhead leaves room for boundaries and headers around the file.
const multipartOverhead = 1 << 20

type Handler struct {
	orch          *page.Orchestrator
	maxUploadBody int64
	log           *slog.Logger
}

func New(orch *page.Orchestrator, cfg *config.Config, log *slog.Logger) *Handler {
	return &Handler{
		orch:          orch,
		maxUploadBody: cfg.Upload.MaxBytes + multipartOverhead,
		log:           log.With(logger.Scope("handlers")),
	}
}

// Index renders the whole page for a fresh session. The comparison section
// only appears once a result exists, which for a new page is never.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	view := h.orch.NewPage()

	sections := []g.Node{
		components.Topbar(),
		components.Hero(),
		components.SectionDivider(),
		components.HowItWorks(),
		components.SectionDivider(),
		components.ImageUpload(view),
		components.ComparisonSlot(view.SessionID, view.Result),
		components.SectionDivider(),
		components.AboutProject(),
		components.PageFooter(),
	}

	pageNode := components.Layout(
		components.PageConfig{
			Title:     components.DefaultTitle,
			SessionID: view.SessionID,
		},
		sections...,
	)

	h.render(w, http.StatusOK, pageNode)
}

// Upload accepts the multipart field "image" and returns the refreshed panel.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBody)

	mr, err := r.MultipartReader()
	if err != nil {
		h.fail(w, r, apperror.NewBadRequest("Expected a multipart upload").WithInternal(err))
		return
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			h.fail(w, r, apperror.ErrMissingFile)
			return
		}
		if err != nil {
			h.fail(w, r, err)
			return
		}
		if part.FormName() != "image" {
			_ = part.Close()
			continue
		}

		view, err := h.orch.SelectImage(r.Context(), sessionID, preview.File{
			Name:         part.FileName(),
			DeclaredType: part.Header.Get("Content-Type"),
			Body:         part,
		})
		_ = part.Close()
		if err != nil {
			h.fail(w, r, err)
			return
		}

		h.render(w, http.StatusOK, components.UploadPanel(view))
		return
	}
}

// UploadPanel re-renders the upload panel from the session state.
func (h *Handler) UploadPanel(w http.ResponseWriter, r *http.Request) {
	view, err := h.orch.View(chi.URLParam(r, "sessionID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, http.StatusOK, components.UploadPanel(view))
}

// Generate runs one generation and returns the comparison section. The
// scroll headers tell the page where to scroll once it has swapped it in.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	mode, err := leaf.ParseMode(chi.URLParam(r, "mode"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	out, err := h.orch.Generate(r.Context(), chi.URLParam(r, "sessionID"), mode)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("X-Scroll-Target", out.ScrollTarget)
	w.Header().Set("X-Scroll-Delay", strconv.FormatInt(out.ScrollDelay.Milliseconds(), 10))
	w.Header().Set("X-Result-ID", out.Result.ID)
	h.render(w, http.StatusOK, components.ComparisonSection(out.Result))
}

// Comparison re-renders the current result, or 204 when there is none.
func (h *Handler) Comparison(w http.ResponseWriter, r *http.Request) {
	view, err := h.orch.View(chi.URLParam(r, "sessionID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if view.Result == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.render(w, http.StatusOK, components.ComparisonSection(*view.Result))
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (h *Handler) render(w http.ResponseWriter, status int, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := node.Render(w); err != nil {
		h.log.Error("failed to render response", logger.Error(err))
	}
}
