package components

import (
	"bytes"
	_ "embed"
	"sync"

	"github.com/yuin/goldmark"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

//go:embed content/about.md
var aboutMarkdown []byte

var (
	aboutOnce sync.Once
	aboutHTML string
	aboutErr  error
)

// renderAbout converts the embedded markdown once.
func renderAbout() (string, error) {
	aboutOnce.Do(func() {
		var buf bytes.Buffer
		aboutErr = goldmark.Convert(aboutMarkdown, &buf)
		aboutHTML = buf.String()
	})
	return aboutHTML, aboutErr
}

type ExternalLink struct {
	Icon  string
	Label string
	Href  string
}

func AboutProject() g.Node {
	links := []ExternalLink{
		{"lucide--github", "GitHub Repository", "https://github.com"},
		{"lucide--linkedin", "Connect on LinkedIn", "https://linkedin.com"},
	}

	body, err := renderAbout()
	if err != nil {
		body = ""
	}

	return Section(
		ID("about"),
		Class("px-4 py-20"),
		Div(
			Class("mx-auto max-w-4xl"),
			H2(
				Reveal("up", 0),
				Class("mb-10 text-center text-3xl font-bold md:text-4xl"),
				g.Text("About the Project"),
			),

			Div(
				Reveal("up", 200),
				Class("about-prose rounded-box border border-base-300 bg-base-200/40 p-8"),
				g.Raw(body),
			),

			Div(
				Reveal("up", 400),
				Class("mt-12 flex flex-col justify-center gap-4 md:flex-row md:gap-6"),
				g.Group(g.Map(links, func(l ExternalLink) g.Node {
					return A(
						Href(l.Href),
						Target("_blank"),
						Rel("noopener noreferrer"),
						Class("btn btn-outline"),
						Icon(l.Icon+" size-5", ""),
						g.Text(l.Label),
					)
				})),
			),
		),
	)
}
