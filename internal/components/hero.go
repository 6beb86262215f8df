package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero() g.Node {
	return Section(
		Class("relative z-2 flex min-h-screen items-center justify-center overflow-hidden px-4"),
		ID("hero"),

		Div(Class("absolute inset-0 -z-1 opacity-20 grainy")),
		Div(Class("absolute -top-40 start-1/4 -z-1 h-96 w-96 rounded-full bg-success/30 blur-[160px]")),
		Div(Class("absolute -bottom-40 end-1/4 -z-1 h-96 w-96 rounded-full bg-error/20 blur-[160px]")),

		Div(
			Class("container max-w-4xl text-center"),

			H1(
				Reveal("up", 0),
				Class("text-4xl leading-tight font-extrabold tracking-[-0.5px] md:text-6xl"),
				g.Text("AI-Powered "),
				Span(
					Class("animate-background-shift bg-linear-to-r from-success via-accent to-error bg-[400%,400%] bg-clip-text text-transparent"),
					g.Text("Leaf Health"),
				),
				g.Text(" Visualizer"),
			),

			P(
				Reveal("up", 500),
				Class("text-base-content/80 mx-auto mt-6 max-w-2xl text-lg md:text-xl"),
				g.Text("Upload a plant leaf image and generate its healthy or reddened version using GenAI."),
			),

			Div(
				Reveal("up", 800),
				Class("mt-10 flex justify-center"),
				Button(
					Type("button"),
					Class("btn btn-success btn-lg shadow-success/20 shadow-xl"),
					Data("scroll-to", "upload-section"),
					Icon("lucide--leaf size-5", ""),
					g.Text("Try Demo"),
				),
			),
		),

		Div(
			Class("absolute bottom-10 left-1/2 -translate-x-1/2 animate-bounce"),
			Icon("lucide--arrow-down size-6 text-base-content/60", "Scroll down"),
		),
	)
}
