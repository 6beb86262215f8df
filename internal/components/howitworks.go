package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Step struct {
	Icon        string
	Title       string
	Description string
	Color       string
}

func HowItWorks() g.Node {
	steps := []Step{
		{"lucide--cloud-upload", "Upload Image", "Upload your plant leaf image using our easy drag-and-drop interface.", "success"},
		{"lucide--arrow-up-down", "Choose Mode", "Select whether you want to generate a healthy or diseased version of your leaf.", "accent"},
		{"lucide--eye", "View Result", "Compare the original and generated images side by side with our AI visualization.", "error"},
	}

	return Section(
		ID("how-it-works"),
		Class("container px-4 py-20"),

		H2(
			Reveal("up", 0),
			Class("mb-16 text-center text-3xl font-bold md:text-4xl"),
			g.Text("How It Works"),
		),

		Div(
			Class("grid gap-8 md:grid-cols-3"),
			g.Group(stepCards(steps)),
		),
	)
}

// Steps slide in from alternating sides, staggered by position.
func stepCards(steps []Step) []g.Node {
	cards := make([]g.Node, 0, len(steps))
	for i, s := range steps {
		direction := "left"
		if i%2 == 1 {
			direction = "right"
		}
		cards = append(cards, Div(
			Reveal(direction, i*200),
			Class("card border border-base-300 bg-base-200/40 transition-all duration-300 hover:border-base-300/60"),
			Div(
				Class("card-body items-center text-center"),
				IconBadge(s.Icon, s.Color),
				H3(Class("mt-4 mb-3 text-xl font-semibold"), g.Text(s.Title)),
				P(Class("text-base-content/70"), g.Text(s.Description)),
			),
		))
	}
	return cards
}
