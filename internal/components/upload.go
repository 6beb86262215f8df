package components

import (
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergentai/leafvision/internal/leaf"
	"github.com/emergentai/leafvision/internal/page"
	"github.com/emergentai/leafvision/internal/preview"
)

const UploadSectionID = "upload-section"

func UploadURL(sessionID string) string {
	return "/api/sessions/" + url.PathEscape(sessionID) + "/image"
}

func GenerateURL(sessionID string, mode leaf.Mode) string {
	return "/api/sessions/" + url.PathEscape(sessionID) + "/generate/" + mode.String()
}

func PanelURL(sessionID string) string {
	return "/api/sessions/" + url.PathEscape(sessionID) + "/upload"
}

func ComparisonURL(sessionID string) string {
	return "/api/sessions/" + url.PathEscape(sessionID) + "/comparison"
}

// ImageUpload is the upload section. The panel inside it is re-rendered on
// every upload.
func ImageUpload(view page.View) g.Node {
	return Section(
		ID(UploadSectionID),
		Class("px-4 py-20"),
		Div(
			Class("mx-auto max-w-4xl"),
			H2(Class("mb-10 text-center text-3xl font-bold md:text-4xl"), g.Text("Upload Your Leaf Image")),
			Div(
				Reveal("up", 0),
				UploadPanel(view),
			),
		),
	)
}

// UploadPanel holds the drop zone and the generate actions.
func UploadPanel(view page.View) g.Node {
	return Div(
		ID("upload-panel"),
		Data("pending", view.Pending.String()),
		Data("panel-url", PanelURL(view.SessionID)),

		Div(
			Class("drop-zone mb-8 cursor-pointer rounded-box border-2 border-dashed border-base-300 p-10 text-center transition-colors hover:border-success/60"),
			Data("drop-zone", ""),
			Data("upload-url", UploadURL(view.SessionID)),
			Role("button"),
			g.Attr("tabindex", "0"),
			Input(
				Type("file"),
				Name("image"),
				Accept("image/*"),
				Class("hidden"),
				Data("file-input", ""),
			),
			g.Iff(view.Preview != nil, func() g.Node { return previewContent(*view.Preview) }),
			g.If(view.Preview == nil, emptyDropZone()),
		),

		Div(
			Class("flex flex-col justify-center gap-4 md:flex-row"),
			g.Group(g.Map(leaf.Modes(), func(m leaf.Mode) g.Node {
				return GenerateButton(view, m)
			})),
		),
	)
}

func previewContent(img preview.Image) g.Node {
	return Div(
		Class("mb-6"),
		Img(
			Src(img.DataURL),
			Alt("Uploaded leaf"),
			Class("mx-auto max-h-64 rounded-md"),
			Data("preview", img.Name),
		),
		P(Class("mt-4 text-base-content/60"), g.Text("Click or drag to upload a different image")),
	)
}

func emptyDropZone() g.Node {
	return g.Group([]g.Node{
		Div(Class("mb-4"), Icon("lucide--image size-16 text-base-content/40", "")),
		P(Class("text-lg font-medium"), g.Text("Drag & drop your leaf image here")),
		P(Class("mt-2 text-base-content/60"), g.Text("or click to browse")),
	})
}

// GenerateButton is enabled only when an image is loaded and nothing is pending.
func GenerateButton(view page.View, mode leaf.Mode) g.Node {
	pulse := "animate-pulse-glow"
	if mode == leaf.ModeDiseased {
		pulse = "animate-pulse-glow-red"
	}
	state := pulse
	if !view.HasImage() {
		state = "opacity-50 cursor-not-allowed"
	}

	return Button(
		Type("button"),
		Class("btn btn-lg btn-"+mode.Color()+" px-6 text-white "+state),
		Data("generate", mode.String()),
		Data("generate-url", GenerateURL(view.SessionID, mode)),
		g.If(!view.CanGenerate(), Disabled()),
		g.If(view.Pending == mode, g.Group([]g.Node{
			Spinner(),
			g.Text("Processing..."),
		})),
		g.If(view.Pending != mode, g.Text(mode.ButtonLabel())),
	)
}
