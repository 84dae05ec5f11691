package dashboard

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

const (
	DefaultTitle   = "Dash Demo Dashboard"
	DefaultCaption = "Dash: A web dashboard"

	// FigureID is the element id of the chart container on the page.
	FigureID = "demo-graph"

	// PageView is the template name of the dashboard page.
	PageView = "index"
)

//go:embed views/*.html
var viewsFS embed.FS

// LegendEntry pairs a group name with its bar color.
type LegendEntry struct {
	Name  string
	Color template.CSS
}

// Dashboard is the static page content: a title, a caption and one figure
// rendered once at construction.
type Dashboard struct {
	Title   string
	Caption string
	Figure  Figure

	svg []byte
}

// New renders fig and returns the Dashboard holding it.
func New(title, caption string, fig Figure) (*Dashboard, error) {
	svg, err := Render(fig)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		Title:   title,
		Caption: caption,
		Figure:  fig,
		svg:     svg,
	}, nil
}

// SVG returns the rendered chart.
func (d *Dashboard) SVG() []byte {
	return d.svg
}

// Legend lists the groups in plotting order.
func (d *Dashboard) Legend() []LegendEntry {
	entries := make([]LegendEntry, len(d.Figure.Groups))
	for i, g := range d.Figure.Groups {
		entries[i] = LegendEntry{Name: g.Name, Color: template.CSS(groupHex(i))}
	}
	return entries
}

// ViewData is the binding passed to PageView.
func (d *Dashboard) ViewData() map[string]any {
	return map[string]any{
		"Title":       d.Title,
		"Caption":     d.Caption,
		"FigureID":    FigureID,
		"LegendTitle": d.Figure.Spec.Color,
		"Legend":      d.Legend(),
		"Chart":       template.HTML(d.svg),
	}
}

// Views returns the template engine serving the embedded page templates.
// With reload set the templates are re-parsed on every render.
func Views(reload bool) *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.Reload(reload)
	return engine
}
