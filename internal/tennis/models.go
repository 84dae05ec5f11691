package tennis

import (
	"fmt"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column names as they appear in the source file.
const (
	ColDatetime    = "datetime_24hr_format"
	ColOutlook     = "outlook"
	ColTemp        = "temp"
	ColHumidity    = "humidity"
	ColWindy       = "windy"
	ColPlay        = "play"
	ColTemperature = "temperature"

	// ColPlayTime is the canonical name of the time column after preprocessing.
	ColPlayTime = "play_time"
)

// PlayTimeLayout is the layout of the raw time column ("DD-MM-YYYY HH:MM:SS").
const PlayTimeLayout = "02-01-2006 15:04:05"

// displayLayout is used when a parsed time is shown back in the frame.
const displayLayout = "2006-01-02 15:04:05"

// RequiredColumns lists the columns read from the source file.
var RequiredColumns = []string{
	ColDatetime,
	ColOutlook,
	ColTemp,
	ColHumidity,
	ColWindy,
	ColPlay,
	ColTemperature,
}

// ColumnType is the target primitive type of a column.
type ColumnType string

const (
	TypeString    ColumnType = "string"
	TypeInt       ColumnType = "int"
	TypeTimestamp ColumnType = "datetime"
)

// TypeMap maps a column name to the type it should be cast to.
type TypeMap map[string]ColumnType

// Record is a single typed observation.
type Record struct {
	PlayTime    time.Time `json:"playTime"`
	Outlook     string    `json:"outlook"`
	Temp        string    `json:"temp"`
	Humidity    string    `json:"humidity"`
	Windy       string    `json:"windy"`
	Play        string    `json:"play"`
	Temperature int       `json:"temperature"`
}

// Dataset is an ordered table of observations.
//
// Values live in a gota frame. Columns that have been cast to integers hold
// series.Int values; every other column holds strings. Once the time column
// has been parsed its timestamps are kept alongside the frame, since gota has
// no time series type.
type Dataset struct {
	frame dataframe.DataFrame
	types map[string]ColumnType
	times []time.Time
}

// NewDataset wraps a frame whose columns are all strings.
func NewDataset(frame dataframe.DataFrame) *Dataset {
	types := make(map[string]ColumnType, frame.Ncol())
	for _, name := range frame.Names() {
		types[name] = TypeString
	}
	return &Dataset{frame: frame, types: types}
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	if d == nil || d.frame.Err != nil || d.frame.Ncol() == 0 {
		return 0
	}
	return d.frame.Nrow()
}

// Columns returns the column names in order.
func (d *Dataset) Columns() []string {
	if d == nil || d.frame.Err != nil {
		return nil
	}
	return d.frame.Names()
}

// HasColumn reports whether the dataset has a column with the given name.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.types[name]
	return ok
}

// Type returns the current type of a column.
func (d *Dataset) Type(name string) (ColumnType, bool) {
	t, ok := d.types[name]
	return t, ok
}

// Strings returns the textual values of a column.
func (d *Dataset) Strings(name string) ([]string, error) {
	if !d.HasColumn(name) {
		return nil, fmt.Errorf("unknown column %q", name)
	}
	return d.frame.Col(name).Records(), nil
}

// Ints returns the values of an integer column.
func (d *Dataset) Ints(name string) ([]int, error) {
	t, ok := d.types[name]
	if !ok {
		return nil, fmt.Errorf("unknown column %q", name)
	}
	if t != TypeInt {
		return nil, fmt.Errorf("column %q is %s, not %s", name, t, TypeInt)
	}
	return d.frame.Col(name).Int()
}

// Times returns the parsed play times, or nil when the time column has not
// been parsed.
func (d *Dataset) Times() []time.Time {
	if d.times == nil {
		return nil
	}
	out := make([]time.Time, len(d.times))
	copy(out, d.times)
	return out
}

// Records returns the typed view of the dataset. It fails unless the time
// column has been parsed and the temperature column cast to integers.
func (d *Dataset) Records() ([]Record, error) {
	if d.times == nil {
		return nil, fmt.Errorf("%s has not been parsed", ColPlayTime)
	}
	temps, err := d.Ints(ColTemperature)
	if err != nil {
		return nil, err
	}

	cols := make(map[string][]string)
	for _, name := range []string{ColOutlook, ColTemp, ColHumidity, ColWindy, ColPlay} {
		vals, err := d.Strings(name)
		if err != nil {
			return nil, err
		}
		cols[name] = vals
	}

	recs := make([]Record, d.Len())
	for i := range recs {
		recs[i] = Record{
			PlayTime:    d.times[i],
			Outlook:     cols[ColOutlook][i],
			Temp:        cols[ColTemp][i],
			Humidity:    cols[ColHumidity][i],
			Windy:       cols[ColWindy][i],
			Play:        cols[ColPlay][i],
			Temperature: temps[i],
		}
	}
	return recs, nil
}

func (d *Dataset) clone() *Dataset {
	types := make(map[string]ColumnType, len(d.types))
	for k, v := range d.types {
		types[k] = v
	}
	return &Dataset{frame: d.frame.Copy(), types: types, times: d.Times()}
}

func (d *Dataset) rename(from, to string) {
	t, ok := d.types[from]
	if !ok {
		return
	}
	d.frame = d.frame.Rename(to, from)
	delete(d.types, from)
	d.types[to] = t
}

func (d *Dataset) replace(s series.Series, t ColumnType) {
	d.frame = d.frame.Mutate(s)
	d.types[s.Name] = t
}
