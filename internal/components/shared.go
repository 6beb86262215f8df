package components

import (
	"fmt"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo() g.Node {
	return Div(
		Class("flex items-center gap-3"),
		Div(
			Class("flex items-center justify-center size-10 rounded-full bg-success/20"),
			Icon("lucide--sprout text-success size-5", ""),
		),
		Span(
			Class("font-semibold text-lg"),
			g.Text("LeafVision AI"),
		),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	iconName := parts[0]
	return strings.Replace(iconName, "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	sizeClasses := extractSizeClasses(iconClass)
	classes := "iconify inline-block"
	if sizeClasses != "" {
		classes = fmt.Sprintf("iconify inline-block %s", sizeClasses)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

func IconBadge(icon, color string) g.Node {
	containerClass := fmt.Sprintf("inline-flex items-center justify-center shrink-0 select-none size-16 rounded-full bg-%s/10 border border-%s/20 transition-colors", color, color)
	iconName := convertIconName(icon)
	sizeClass := fmt.Sprintf("text-%s size-8", color)

	return Span(
		Class(containerClass),
		Span(
			Class(fmt.Sprintf("iconify %s", sizeClass)),
			g.Attr("data-icon", iconName),
		),
	)
}

// Reveal marks an element for the entrance transition played when it scrolls
// into view. Direction is "up", "left" or "right".
func Reveal(direction string, delayMs int) g.Node {
	attrs := []g.Node{Data("reveal", direction)}
	if delayMs > 0 {
		attrs = append(attrs, Data("reveal-delay", strconv.Itoa(delayMs)))
	}
	return g.Group(attrs)
}

func SectionDivider() g.Node {
	return Div(Class("leaf-section-divider h-px w-full bg-linear-to-r from-transparent via-success/40 to-transparent"))
}

func Spinner() g.Node {
	return Span(Class("loading loading-spinner loading-sm"), Aria("hidden", "true"))
}

// Notification is a dismissible message shown in the toast area.
func Notification(code, message string) g.Node {
	return Div(
		Class("alert alert-error shadow-lg"),
		Role("alert"),
		Data("notification", code),
		Icon("lucide--circle-alert size-5", ""),
		Span(g.Text(message)),
		Button(
			Type("button"),
			Class("btn btn-ghost btn-xs btn-circle"),
			Data("dismiss", ""),
			Aria("label", "Dismiss"),
			Icon("lucide--x size-4", ""),
		),
	)
}
