package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/emergentai/leafvision/internal/leaf"
	"github.com/emergentai/leafvision/internal/page"
	"github.com/emergentai/leafvision/internal/preview"
)

func render(t *testing.T, node g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, node.Render(&b))
	return b.String()
}

func loadedView() page.View {
	return page.View{
		SessionID: "s-1",
		Preview: &preview.Image{
			Name:     "leaf.png",
			MIMEType: "image/png",
			DataURL:  "data:image/png;base64,AAAA",
		},
	}
}

func TestConvertIconName(t *testing.T) {
	assert.Equal(t, "lucide:leaf", convertIconName("lucide--leaf size-5"))
	assert.Equal(t, "size-5 text-success", extractSizeClasses("lucide--leaf size-5 text-success"))
	assert.Empty(t, extractSizeClasses("lucide--leaf"))
}

func TestGenerateButton(t *testing.T) {
	tests := []struct {
		name         string
		view         page.View
		mode         leaf.Mode
		wantDisabled bool
		wantText     string
	}{
		{"no image", page.View{SessionID: "s-1"}, leaf.ModeHealthy, true, "Generate Healthy Version"},
		{"ready healthy", loadedView(), leaf.ModeHealthy, false, "Generate Healthy Version"},
		{"ready diseased", loadedView(), leaf.ModeDiseased, false, "Generate Diseased Version"},
		{"pending same mode", withPending(loadedView(), leaf.ModeDiseased), leaf.ModeDiseased, true, "Processing..."},
		{"pending other mode", withPending(loadedView(), leaf.ModeDiseased), leaf.ModeHealthy, true, "Generate Healthy Version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := render(t, GenerateButton(tt.view, tt.mode))

			assert.Contains(t, html, tt.wantText)
			assert.Contains(t, html, `data-generate-url="/api/sessions/s-1/generate/`+tt.mode.String()+`"`)
			if tt.wantDisabled {
				assert.Contains(t, html, " disabled")
			} else {
				assert.NotContains(t, html, " disabled")
			}
		})
	}
}

func withPending(v page.View, m leaf.Mode) page.View {
	v.Pending = m
	return v
}

func TestUploadPanel(t *testing.T) {
	empty := render(t, UploadPanel(page.View{SessionID: "s-1"}))
	assert.Contains(t, empty, `data-upload-url="/api/sessions/s-1/image"`)
	assert.Contains(t, empty, `data-panel-url="/api/sessions/s-1/upload"`)
	assert.Contains(t, empty, `accept="image/*"`)
	assert.Contains(t, empty, "or click to browse")
	assert.NotContains(t, empty, "<img")

	loaded := render(t, UploadPanel(loadedView()))
	assert.Contains(t, loaded, `src="data:image/png;base64,AAAA"`)
	assert.Contains(t, loaded, "Click or drag to upload a different image")
	assert.NotContains(t, loaded, "or click to browse")
}

func TestImageComparison(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		mode     leaf.Mode
		title    string
		label    string
		analysis string
		tint     string
	}{
		{leaf.ModeHealthy, "Original vs. Healthy Leaf", "Healthy Version", "removed disease markers", "bg-success/10"},
		{leaf.ModeDiseased, "Original vs. Diseased Leaf", "Diseased Version", "necrotic tissues", "bg-error/10"},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			result := leaf.NewComparisonResult("data:image/png;base64,AAAA", "https://example.com/out.jpg", tt.mode, at)
			html := render(t, ComparisonSection(result))

			assert.Contains(t, html, `id="comparison-section"`)
			assert.Contains(t, html, `data-reveal-key="`+result.ID+`"`)
			assert.Contains(t, html, tt.title)
			assert.Contains(t, html, "Original Image")
			assert.Contains(t, html, tt.label)
			assert.Contains(t, html, tt.analysis)
			assert.Contains(t, html, tt.tint)
			assert.Contains(t, html, `src="https://example.com/out.jpg"`)
		})
	}
}

func TestComparisonSlot(t *testing.T) {
	assert.Equal(t,
		`<div id="comparison-slot" data-comparison-url="/api/sessions/s-1/comparison"></div>`,
		render(t, ComparisonSlot("s-1", nil)),
	)

	result := leaf.NewComparisonResult("a", "b", leaf.ModeHealthy, time.Now())
	assert.Contains(t, render(t, ComparisonSlot("s-1", &result)), `id="comparison-section"`)
}

func TestHowItWorks_AlternatesAndStaggers(t *testing.T) {
	html := render(t, HowItWorks())

	for _, title := range []string{"Upload Image", "Choose Mode", "View Result"} {
		assert.Contains(t, html, title)
	}
	assert.Equal(t, 2, strings.Count(html, `data-reveal="left"`))
	assert.Equal(t, 1, strings.Count(html, `data-reveal="right"`))
	assert.Contains(t, html, `data-reveal-delay="200"`)
	assert.Contains(t, html, `data-reveal-delay="400"`)
}

func TestAboutProject_RendersMarkdown(t *testing.T) {
	html := render(t, AboutProject())

	assert.Contains(t, html, "About the Project")
	assert.Contains(t, html, "<h3>Technology Stack</h3>")
	assert.Contains(t, html, "<li>")
	assert.Contains(t, html, `target="_blank"`)
	assert.Contains(t, html, "GitHub Repository")
	assert.Contains(t, html, "Connect on LinkedIn")
}

func TestNotification(t *testing.T) {
	html := render(t, Notification("invalid_file_type", "Please upload an image file"))

	assert.Contains(t, html, `data-notification="invalid_file_type"`)
	assert.Contains(t, html, "Please upload an image file")
	assert.Contains(t, html, "data-dismiss")
}

func TestLayout_Defaults(t *testing.T) {
	html := render(t, Layout(PageConfig{SessionID: "abc"}))

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>"+DefaultTitle+"</title>")
	assert.Contains(t, html, `data-session-id="abc"`)
	assert.Contains(t, html, `data-theme="forest"`)
	assert.Contains(t, html, `id="notifications"`)
	assert.NotContains(t, html, "og:image")
}

func TestPageFooter_CurrentYear(t *testing.T) {
	html := render(t, PageFooter())
	assert.Contains(t, html, "LeafVision AI. All rights reserved.")
	assert.Contains(t, html, time.Now().Format("2006"))
	assert.Contains(t, html, "using GenAI")
}
