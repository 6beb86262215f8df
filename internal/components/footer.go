package components

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter() g.Node {
	currentYear := time.Now().Year()

	return Footer(
		Class("border-t border-base-300 px-4 py-8"),
		Div(
			Class("mx-auto flex max-w-6xl flex-col items-center"),
			Div(Class("mb-4"), Logo()),

			P(
				Class("mb-4 text-center text-sm text-base-content/60"),
				g.Text(fmt.Sprintf("© %d LeafVision AI. All rights reserved.", currentYear)),
			),

			P(
				Class("flex items-center text-sm text-base-content/50"),
				g.Text("Built with "),
				Span(Class("mx-1 text-error"), g.Text("❤️")),
				g.Text(" using GenAI"),
			),
		),
	)
}
