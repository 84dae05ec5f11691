package dashboard

import (
	"bytes"
	"errors"
	"io"
	"log"
	"path/filepath"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/tennis-dashboard/internal/tennis"
)

func quietLog(t *testing.T) {
	t.Helper()
	prev := log.Writer()
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(prev) })
}

func typeMap() tennis.TypeMap {
	return tennis.TypeMap{
		tennis.ColPlayTime:    tennis.TypeString,
		tennis.ColOutlook:     tennis.TypeString,
		tennis.ColTemp:        tennis.TypeString,
		tennis.ColHumidity:    tennis.TypeString,
		tennis.ColWindy:       tennis.TypeString,
		tennis.ColPlay:        tennis.TypeString,
		tennis.ColTemperature: tennis.TypeInt,
	}
}

// dataset preprocesses rows of (outlook, play, temperature).
func dataset(t *testing.T, rows ...[3]string) *tennis.Dataset {
	t.Helper()
	quietLog(t)

	records := [][]string{tennis.RequiredColumns}
	for _, r := range rows {
		records = append(records, []string{"01-01-2020 10:00:00", r[0], "mild", "high", "false", r[1], r[2]})
	}
	frame := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	require.NoError(t, frame.Err)

	res := tennis.NewPreprocessor(typeMap(), io.Discard).Preprocess(tennis.NewDataset(frame))
	require.False(t, res.Degraded(), "recovered: %v", res.Recovered)
	return res.Dataset
}

func TestBuildFigureGroupsByPlay(t *testing.T) {
	ds := dataset(t,
		[3]string{"sunny", "no", "30"},
		[3]string{"rainy", "yes", "18"},
		[3]string{"sunny", "yes", "25"},
		[3]string{"sunny", "no", "28"},
	)

	fig, err := BuildFigure(ds, DefaultFigureSpec())
	require.NoError(t, err)

	assert.Equal(t, []string{"sunny", "rainy"}, fig.Categories)
	require.Len(t, fig.Groups, 2)
	assert.Equal(t, "no", fig.Groups[0].Name)
	assert.Equal(t, "yes", fig.Groups[1].Name)

	v, ok := fig.Value("sunny", "no")
	assert.True(t, ok)
	assert.Equal(t, 58.0, v)

	v, ok = fig.Value("sunny", "yes")
	assert.True(t, ok)
	assert.Equal(t, 25.0, v)

	_, ok = fig.Value("rainy", "no")
	assert.False(t, ok, "no rainy/no rows")
}

func TestBuildFigureSampleData(t *testing.T) {
	quietLog(t)

	raw, err := tennis.NewLoader(filepath.Join("..", "..", "Sample_Data", "tennis.csv")).Load()
	require.NoError(t, err)
	res := tennis.NewPreprocessor(typeMap(), io.Discard).Preprocess(raw)

	fig, err := BuildFigure(res.Dataset, DefaultFigureSpec())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"sunny", "overcast", "rainy"}, fig.Categories)
	assert.GreaterOrEqual(t, len(fig.Groups), 2)
}

func TestBuildFigureRequiresIntegerValues(t *testing.T) {
	quietLog(t)

	frame := dataframe.LoadRecords([][]string{
		tennis.RequiredColumns,
		{"01-01-2020 10:00:00", "sunny", "mild", "high", "false", "no", "warm"},
	}, dataframe.HasHeader(true), dataframe.DetectTypes(false), dataframe.DefaultType(series.String))
	require.NoError(t, frame.Err)

	res := tennis.NewPreprocessor(typeMap(), io.Discard).Preprocess(tennis.NewDataset(frame))
	require.True(t, res.Degraded())

	_, err := BuildFigure(res.Dataset, DefaultFigureSpec())
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	ds := dataset(t,
		[3]string{"sunny", "no", "30"},
		[3]string{"overcast", "yes", "22"},
		[3]string{"sunny", "yes", "25"},
	)
	fig, err := BuildFigure(ds, DefaultFigureSpec())
	require.NoError(t, err)

	svg, err := Render(fig)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(bytes.TrimSpace(svg), []byte("<svg")), "got %.40q", svg)
	assert.Contains(t, string(svg), "sunny/no")
	assert.Contains(t, string(svg), "overcast/yes")
}

func TestRenderEmptyFigure(t *testing.T) {
	_, err := Render(Figure{Spec: DefaultFigureSpec()})
	assert.True(t, errors.Is(err, ErrEmptyFigure))
}

func TestNewDashboard(t *testing.T) {
	ds := dataset(t,
		[3]string{"sunny", "no", "30"},
		[3]string{"sunny", "yes", "25"},
	)
	fig, err := BuildFigure(ds, DefaultFigureSpec())
	require.NoError(t, err)

	d, err := New(DefaultTitle, DefaultCaption, fig)
	require.NoError(t, err)
	assert.NotEmpty(t, d.SVG())

	legend := d.Legend()
	require.Len(t, legend, 2)
	assert.Equal(t, "no", legend[0].Name)
	assert.Equal(t, "#636efa", string(legend[0].Color))

	data := d.ViewData()
	assert.Equal(t, DefaultTitle, data["Title"])
	assert.Equal(t, FigureID, data["FigureID"])
	assert.Equal(t, tennis.ColPlay, data["LegendTitle"])
}

func TestViewsRenderPage(t *testing.T) {
	ds := dataset(t, [3]string{"sunny", "no", "30"}, [3]string{"rainy", "yes", "20"})
	fig, err := BuildFigure(ds, DefaultFigureSpec())
	require.NoError(t, err)
	d, err := New(DefaultTitle, DefaultCaption, fig)
	require.NoError(t, err)

	engine := Views(false)
	require.NoError(t, engine.Load())

	var out bytes.Buffer
	require.NoError(t, engine.Render(&out, PageView, d.ViewData()))

	page := out.String()
	assert.Contains(t, page, "<h1>Dash Demo Dashboard</h1>")
	assert.Contains(t, page, "Dash: A web dashboard")
	assert.Contains(t, page, `id="demo-graph"`)
	assert.Contains(t, page, "<svg")
}

func TestBarChartZeroBaseline(t *testing.T) {
	fig := Figure{
		Spec:       DefaultFigureSpec(),
		Categories: []string{"sunny", "rainy"},
		Groups: []Group{
			{Name: "no", Values: []float64{-5, 10}, Present: []bool{true, true}},
			{Name: "yes", Values: []float64{-2, 0}, Present: []bool{true, false}},
		},
	}

	graph, err := barChart(fig)
	require.NoError(t, err)
	assert.True(t, graph.UseBaseValue)
	assert.Equal(t, 0.0, graph.BaseValue)
	require.Len(t, graph.Bars, 3)

	rng := graph.YAxis.Range
	assert.Less(t, rng.GetMin(), -5.0)
	assert.Greater(t, rng.GetMax(), 10.0)

	svg, err := Render(fig)
	require.NoError(t, err)
	assert.NotEmpty(t, svg)
}

func TestBarChartPositiveValuesStartAtZero(t *testing.T) {
	fig := Figure{
		Spec:       DefaultFigureSpec(),
		Categories: []string{"sunny"},
		Groups:     []Group{{Name: "yes", Values: []float64{20}, Present: []bool{true}}},
	}

	graph, err := barChart(fig)
	require.NoError(t, err)
	assert.Equal(t, 0.0, graph.YAxis.Range.GetMin())
	assert.Greater(t, graph.YAxis.Range.GetMax(), 20.0)
}
