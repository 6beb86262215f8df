package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const DefaultTitle = "AI-Powered Leaf Health Visualizer"

type PageConfig struct {
	Title       string
	Description string
	Theme       string
	OGImage     string
	SessionID   string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Theme == "" {
		config.Theme = "forest"
	}

	if config.Title == "" {
		config.Title = DefaultTitle
	}

	if config.Description == "" {
		config.Description = "Upload a plant leaf image and generate its healthy or reddened version using GenAI."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			g.Attr("data-theme", config.Theme),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(config.OGImage != "", Meta(g.Attr("property", "og:image"), Content(config.OGImage))),

				Link(Rel("stylesheet"), Href("https://cdn.jsdelivr.net/npm/daisyui@5")),
				Script(Src("https://cdn.jsdelivr.net/npm/@tailwindcss/browser@4")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("min-h-screen bg-base-100 text-base-content overflow-x-hidden"),
				Main(
					ID("app"),
					Data("session-id", config.SessionID),
					g.Group(content),
				),
				Div(ID("notifications"), Class("toast toast-end z-[70]"), Aria("live", "polite")),

				Script(Type("module"), Src("/static/js/app.js")),
			),
		),
	})
}
