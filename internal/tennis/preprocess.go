package tennis

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/series"
)

// Result is the outcome of preprocessing. The Dataset is always usable;
// Recovered lists the failures that were reported and skipped on the way.
type Result struct {
	Dataset   *Dataset
	Recovered []error
}

// Degraded reports whether any conversion step was skipped.
func (r Result) Degraded() bool {
	return len(r.Recovered) > 0
}

// Preprocessor renames, casts, parses and sorts a raw Dataset.
type Preprocessor struct {
	types TypeMap
	out   io.Writer
}

// NewPreprocessor creates a Preprocessor that casts columns according to
// types and writes its data overview to out (stdout when nil).
func NewPreprocessor(types TypeMap, out io.Writer) *Preprocessor {
	if out == nil {
		out = os.Stdout
	}
	return &Preprocessor{
		types: types,
		out:   out,
	}
}

// Preprocess produces the cleaned Dataset. The input is not modified.
//
// Conversion is best effort: if a cast fails the dataset is left unconverted,
// and if the time parse fails the play_time column stays textual. Either way
// the rows are still sorted and returned.
func (p *Preprocessor) Preprocess(raw *Dataset) Result {
	ds := raw.clone()
	ds.rename(ColDatetime, ColPlayTime)

	var recovered []error
	converted, err := p.convert(ds)
	if err != nil {
		reportConvertError(err)
		recovered = append(recovered, err)
	}

	sortByPlayTime(converted)

	if err := WriteSummary(p.out, converted); err != nil {
		log.Printf("ERROR: preprocess: writing data overview: %v", err)
	}

	return Result{Dataset: converted, Recovered: recovered}
}

// convert casts every configured column and then parses the time column.
// The parse only runs once the cast has succeeded.
func (p *Preprocessor) convert(ds *Dataset) (*Dataset, error) {
	cast, err := castColumns(ds, p.types)
	if err != nil {
		return ds, err
	}
	parsed, err := parsePlayTimes(cast)
	if err != nil {
		return cast, err
	}
	return parsed, nil
}

// castColumns applies the whole type map or nothing.
func castColumns(ds *Dataset, types TypeMap) (*Dataset, error) {
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)

	out := ds.clone()
	for _, name := range names {
		if !ds.HasColumn(name) {
			return nil, fmt.Errorf("column %q not found in dataset", name)
		}
		vals := ds.frame.Col(name).Records()

		switch target := types[name]; target {
		case TypeString:
			out.replace(series.New(vals, series.String, name), TypeString)
		case TypeInt:
			ints, err := toInts(name, vals)
			if err != nil {
				return nil, err
			}
			out.replace(series.New(ints, series.Int, name), TypeInt)
		default:
			return nil, fmt.Errorf("unsupported target type %q for column %q", target, name)
		}
	}
	return out, nil
}

func toInts(name string, vals []string) ([]int, error) {
	ints := make([]int, len(vals))
	for i, v := range vals {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, &CastError{Column: name, Row: i, Value: v, Target: TypeInt}
		}
		ints[i] = n
	}
	return ints, nil
}

func parsePlayTimes(ds *Dataset) (*Dataset, error) {
	raw, err := ds.Strings(ColPlayTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTimeParse, err)
	}

	times := make([]time.Time, len(raw))
	display := make([]string, len(raw))
	for i, v := range raw {
		ts, err := parsePlayTime(v)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrTimeParse, i, err)
		}
		times[i] = ts
		display[i] = ts.Format(displayLayout)
	}

	out := ds.clone()
	out.replace(series.New(display, series.String, ColPlayTime), TypeTimestamp)
	out.times = times
	return out, nil
}

// parsePlayTime parses a PlayTimeLayout value, also accepting day, month,
// hour, minute and second written with a single digit.
func parsePlayTime(v string) (time.Time, error) {
	date, clock, ok := strings.Cut(strings.TrimSpace(v), " ")
	if !ok {
		return time.Parse(PlayTimeLayout, v)
	}
	d := strings.Split(date, "-")
	c := strings.Split(clock, ":")
	if len(d) != 3 || len(c) != 3 {
		return time.Parse(PlayTimeLayout, v)
	}
	padded := pad2(d[0]) + "-" + pad2(d[1]) + "-" + d[2] + " " +
		pad2(c[0]) + ":" + pad2(c[1]) + ":" + pad2(c[2])
	return time.Parse(PlayTimeLayout, padded)
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// sortByPlayTime stable-sorts rows ascending by parsed time, or by the raw
// text when the column was never parsed.
func sortByPlayTime(ds *Dataset) {
	n := ds.Len()
	if n < 2 {
		return
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	if ds.times != nil {
		sort.SliceStable(idx, func(a, b int) bool {
			return ds.times[idx[a]].Before(ds.times[idx[b]])
		})
	} else {
		keys, err := ds.Strings(ColPlayTime)
		if err != nil {
			log.Printf("ERROR: preprocess: cannot sort: %v", err)
			return
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return keys[idx[a]] < keys[idx[b]]
		})
	}

	ds.frame = ds.frame.Subset(idx)
	if ds.times != nil {
		sorted := make([]time.Time, n)
		for i, j := range idx {
			sorted[i] = ds.times[j]
		}
		ds.times = sorted
	}
}

func reportConvertError(err error) {
	var castErr *CastError
	switch {
	case errors.As(err, &castErr), errors.Is(err, ErrTimeParse):
		log.Printf("ERROR: preprocess: datatype conversion issue: %v", err)
	default:
		log.Printf("ERROR: preprocess: issue during datatype conversion: %v", err)
	}
}
