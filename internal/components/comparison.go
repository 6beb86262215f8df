package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergentai/leafvision/internal/leaf"
	"github.com/emergentai/leafvision/internal/page"
)

const ComparisonSectionID = page.ComparisonSectionID

// ComparisonSection wraps the comparison so the page can scroll to it.
func ComparisonSection(result leaf.ComparisonResult) g.Node {
	return Div(
		ID(ComparisonSectionID),
		Class("px-4"),
		ImageComparison(result),
	)
}

// ComparisonSlot is where the comparison is swapped in. It stays empty until
// a result exists.
func ComparisonSlot(sessionID string, result *leaf.ComparisonResult) g.Node {
	return Div(
		ID("comparison-slot"),
		Data("comparison-url", ComparisonURL(sessionID)),
		g.Iff(result != nil, func() g.Node { return ComparisonSection(*result) }),
	)
}

// ImageComparison renders an original and generated image side by side.
// The reveal key changes with every result, which replays the entrance.
func ImageComparison(result leaf.ComparisonResult) g.Node {
	mode := result.Mode

	return Div(
		Reveal("up", 0),
		Data("reveal-key", result.ID),
		Data("mode", mode.String()),
		Class("mx-auto my-12 max-w-5xl"),

		H3(Class("mb-6 text-center text-2xl font-semibold"), g.Text(mode.Title())),

		Div(
			Class("grid grid-cols-1 gap-8 md:grid-cols-2"),
			imageCard("bg-base-200/60", "Original Image", result.OriginalImage, "Original leaf"),
			imageCard("bg-"+mode.Color()+"/10", mode.VersionLabel(), result.GeneratedImage, mode.String()+" version"),
		),

		Div(
			Class("mt-8 rounded-box border border-base-300 bg-base-200/50 p-6"),
			H4(Class("mb-2 text-lg font-medium"), g.Text("Analysis")),
			P(Class("text-base-content/70"), Data("analysis", mode.String()), g.Text(mode.Analysis())),
		),
	)
}

func imageCard(background, heading, src, alt string) g.Node {
	return Div(
		Class("rounded-box p-4 "+background),
		H4(Class("mb-3 text-center text-lg font-medium"), g.Text(heading)),
		Div(
			Class("aspect-4/3 overflow-hidden rounded-md"),
			Img(
				Src(src),
				Alt(alt),
				Class("h-full w-full rounded-md object-cover"),
			),
		),
	)
}
