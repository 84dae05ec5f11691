package tennis

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/i474232898/tennis-dashboard/internal/common"
)

// Loader reads the tennis records from a comma-delimited file with a header row.
type Loader struct {
	path    string
	columns []string
}

// NewLoader creates a Loader for the given path restricted to RequiredColumns.
func NewLoader(path string) *Loader {
	return &Loader{
		path:    path,
		columns: RequiredColumns,
	}
}

// Load reads the file into a Dataset.
//
// File access, empty input, parse and column failures are logged and
// swallowed. If no rows remain afterwards Load returns a *NoDataError, which
// callers are expected to treat as fatal.
func (l *Loader) Load() (*Dataset, error) {
	ds, err := l.read()
	if err != nil {
		reportLoadError(err)
	}

	if ds.Len() < 1 {
		return nil, &NoDataError{Path: l.path, Cause: err}
	}

	log.Printf("INFO: loader: loaded %d rows with columns %v from %s", ds.Len(), ds.Columns(), l.path)
	return ds, nil
}

func (l *Loader) read() (*Dataset, error) {
	empty := NewDataset(dataframe.DataFrame{})

	f, err := os.Open(l.path)
	if err != nil {
		return empty, &LoadError{Kind: ErrFileAccess, Path: l.path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ','
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return empty, &LoadError{Kind: ErrMalformedInput, Path: l.path, Err: err}
		}
		return empty, &LoadError{Kind: ErrFileAccess, Path: l.path, Err: err}
	}
	if len(records) == 0 {
		return empty, &LoadError{Kind: ErrEmptyInput, Path: l.path}
	}

	header := records[0]
	if err := padRows(records); err != nil {
		return empty, &LoadError{Kind: ErrMalformedInput, Path: l.path, Err: err}
	}
	if missing := common.Missing(header, l.columns...); len(missing) > 0 {
		return empty, &LoadError{
			Kind: ErrMissingColumns,
			Path: l.path,
			Err:  fmt.Errorf("%s", strings.Join(missing, ", ")),
		}
	}
	if len(records) == 1 {
		return empty, &LoadError{Kind: ErrEmptyInput, Path: l.path}
	}

	frame := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if frame.Err != nil {
		return empty, &LoadError{Kind: ErrMalformedInput, Path: l.path, Err: frame.Err}
	}

	// Extra columns are dropped; the remaining ones keep their file order.
	frame = frame.Select(common.Keep(header, l.columns...))
	if frame.Err != nil {
		return empty, fmt.Errorf("select columns from %s: %w", l.path, frame.Err)
	}

	return NewDataset(normalizeBools(frame)), nil
}

// missingValue marks a cell absent from a short row; gota reads it as null.
const missingValue = "NaN"

// padRows fills short data rows up to the header width. Rows wider than the
// header are rejected.
func padRows(records [][]string) error {
	width := len(records[0])
	for i := 1; i < len(records); i++ {
		n := len(records[i])
		switch {
		case n > width:
			return fmt.Errorf("record on line %d: expected %d fields, saw %d: %w", i+1, width, n, csv.ErrFieldCount)
		case n < width:
			for ; n < width; n++ {
				records[i] = append(records[i], missingValue)
			}
		}
	}
	return nil
}

var boolLiterals = map[string]string{
	"true": "True", "True": "True", "TRUE": "True",
	"false": "False", "False": "False", "FALSE": "False",
}

// normalizeBools rewrites columns made up only of boolean literals to the
// canonical True/False spelling.
func normalizeBools(frame dataframe.DataFrame) dataframe.DataFrame {
	for _, name := range frame.Names() {
		vals := frame.Col(name).Records()
		out := make([]string, len(vals))
		isBool := len(vals) > 0
		for i, v := range vals {
			b, ok := boolLiterals[v]
			if !ok {
				isBool = false
				break
			}
			out[i] = b
		}
		if isBool {
			frame = frame.Mutate(series.New(out, series.String, name))
		}
	}
	return frame
}

func reportLoadError(err error) {
	switch {
	case errors.Is(err, ErrFileAccess):
		log.Printf("ERROR: loader: file not found: %v", err)
	case errors.Is(err, ErrEmptyInput):
		log.Printf("ERROR: loader: no data: %v", err)
	case errors.Is(err, ErrMalformedInput):
		log.Printf("ERROR: loader: parse error: %v", err)
	default:
		log.Printf("ERROR: loader: some exception occurred: %v", err)
	}
}
