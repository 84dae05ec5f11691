package dashboard

import (
	"errors"
	"fmt"

	"github.com/i474232898/tennis-dashboard/internal/common"
	"github.com/i474232898/tennis-dashboard/internal/tennis"
)

// ErrEmptyFigure is returned when there is nothing to plot.
var ErrEmptyFigure = errors.New("figure has no bars")

// FigureSpec names the columns mapped to the bar chart axes.
type FigureSpec struct {
	X     string // category axis
	Y     string // value axis, must be an integer column
	Color string // grouping
}

// DefaultFigureSpec plots temperature per outlook, grouped by play.
func DefaultFigureSpec() FigureSpec {
	return FigureSpec{
		X:     tennis.ColOutlook,
		Y:     tennis.ColTemperature,
		Color: tennis.ColPlay,
	}
}

// Group is one set of bars sharing a color. Values and Present are indexed
// by category.
type Group struct {
	Name    string
	Values  []float64
	Present []bool
}

// Figure is a grouped bar chart: for each category, one bar per group.
type Figure struct {
	Spec       FigureSpec
	Categories []string
	Groups     []Group
}

// BuildFigure aggregates ds into a grouped bar chart. Categories and groups
// keep the order in which they first appear. Rows sharing a category and a
// group are summed into a single bar.
func BuildFigure(ds *tennis.Dataset, spec FigureSpec) (Figure, error) {
	xs, err := ds.Strings(spec.X)
	if err != nil {
		return Figure{}, fmt.Errorf("x axis: %w", err)
	}
	ys, err := ds.Ints(spec.Y)
	if err != nil {
		return Figure{}, fmt.Errorf("y axis: %w", err)
	}
	colors, err := ds.Strings(spec.Color)
	if err != nil {
		return Figure{}, fmt.Errorf("color: %w", err)
	}

	fig := Figure{
		Spec:       spec,
		Categories: common.FirstSeen(xs),
	}
	if len(fig.Categories) == 0 {
		return Figure{}, ErrEmptyFigure
	}

	catIdx := make(map[string]int, len(fig.Categories))
	for i, c := range fig.Categories {
		catIdx[c] = i
	}

	groupIdx := make(map[string]int)
	for _, name := range common.FirstSeen(colors) {
		groupIdx[name] = len(fig.Groups)
		fig.Groups = append(fig.Groups, Group{
			Name:    name,
			Values:  make([]float64, len(fig.Categories)),
			Present: make([]bool, len(fig.Categories)),
		})
	}

	for i := range xs {
		g := &fig.Groups[groupIdx[colors[i]]]
		c := catIdx[xs[i]]
		g.Values[c] += float64(ys[i])
		g.Present[c] = true
	}

	return fig, nil
}

// Value returns the bar height for a category and group, and whether the
// bar exists.
func (f Figure) Value(category, group string) (float64, bool) {
	for _, g := range f.Groups {
		if g.Name != group {
			continue
		}
		for i, c := range f.Categories {
			if c == category {
				return g.Values[i], g.Present[i]
			}
		}
	}
	return 0, false
}
