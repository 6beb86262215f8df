package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type NavLink struct {
	Label  string
	Target string
}

// NavLinks are the in-page anchors shown in the top bar.
var NavLinks = []NavLink{
	{"How it Works", "how-it-works"},
	{"Try Demo", UploadSectionID},
	{"About", "about"},
}

func navItems() g.Node {
	return g.Group(g.Map(NavLinks, func(l NavLink) g.Node {
		return Li(
			A(Href("#"+l.Target), Data("scroll-to", l.Target), g.Text(l.Label)),
		)
	}))
}

// Topbar hides while scrolling down and gains a background once the page
// leaves the top. app.js maintains both data attributes.
func Topbar() g.Node {
	return Div(
		g.Attr("data-scrolling", ""),
		g.Attr("data-at-top", "true"),
		Class("group fixed inset-x-0 z-[60] flex justify-center transition-[top] duration-500 data-[scrolling=down]:-top-full sm:container [&:not([data-scrolling=down])]:top-0 [&:not([data-scrolling=down])]:sm:top-4"),

		Div(
			Class("flex justify-between items-center group-data-[at-top=false]:bg-base-100 group-data-[at-top=false]:shadow px-3 sm:px-6 py-3 lg:py-1.5 sm:rounded-full w-full group-data-[at-top=false]:w-[800px] transition-all duration-500"),

			Div(
				Class("flex items-center gap-2"),

				Div(
					Class("lg:hidden flex-none"),
					Div(
						Class("drawer"),
						Input(
							ID("nav-drawer"),
							Type("checkbox"),
							Class("drawer-toggle"),
						),
						Div(
							Class("drawer-content"),
							Label(
								g.Attr("for", "nav-drawer"),
								Class("btn drawer-button btn-ghost btn-square btn-sm"),
								Icon("lucide--menu size-4.5", "Open menu"),
							),
						),
						Div(
							Class("z-[50] drawer-side"),
							Label(
								g.Attr("for", "nav-drawer"),
								g.Attr("aria-label", "close sidebar"),
								Class("drawer-overlay"),
							),
							Ul(
								Class("bg-base-100 p-4 w-80 min-h-full text-base-content menu"),
								navItems(),
							),
						),
					),
				),

				A(
					Href("#hero"),
					Data("scroll-to", "hero"),
					Logo(),
				),
			),

			Ul(
				Class("hidden lg:inline-flex gap-2 px-0 menu menu-horizontal"),
				navItems(),
			),

			A(
				Href("#"+UploadSectionID),
				Data("scroll-to", UploadSectionID),
				Class("group/try relative gap-2 bg-linear-to-r from-success to-primary border-0 text-primary-content text-sm btn btn-sm max-sm:btn-square"),
				Icon("lucide--leaf size-4", ""),
				Span(Class("max-sm:hidden"), g.Text("Upload a Leaf")),
			),
		),
	)
}
