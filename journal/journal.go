// SPDX-License-Identifier: MIT

package journal

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/katalvlaran/tabopt/result"
	"github.com/katalvlaran/tabopt/table"
)

// Header is the first row of every journal file.
var Header = []string{"timestamp", "kind", "status", "objective", "solution", "inputs"}

var (
	// ErrEmptyPath is returned by Open for an empty path.
	ErrEmptyPath = errors.New("journal: empty path")

	// ErrBadHeader is returned by Read when the first row is not Header.
	ErrBadHeader = errors.New("journal: unexpected header")
)

// Entry is one decoded journal row.
type Entry struct {
	Time      time.Time
	Kind      string
	Status    string
	Objective *float64
	Solution  json.RawMessage
	Inputs    json.RawMessage
}

// Journal appends solve records to a CSV file.
type Journal struct {
	path string
	lock *flock.Flock
	mu   sync.Mutex
	now  func() time.Time
}

// Open prepares a journal at path. The file is created lazily on the
// first Record.
func Open(path string) (*Journal, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	return &Journal{path: path, lock: flock.New(path + ".lock"), now: time.Now}, nil
}

// Path returns the journal file path.
func (j *Journal) Path() string { return j.path }

// SetClock replaces the timestamp source.
func (j *Journal) SetClock(now func() time.Time) { j.now = now }

// Record appends one row for res. Inputs are stored by table name.
//
// Complexity: O(size of inputs) plus one fsync-free append.
func (j *Journal) Record(res *result.SolveResult, inputs ...*table.Table) error {
	if res == nil {
		return fmt.Errorf("journal: nil result")
	}
	row, err := j.encode(res, inputs)
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if err = j.lock.Lock(); err != nil {
		return fmt.Errorf("journal: lock %s: %w", j.path, err)
	}
	defer func() { _ = j.lock.Unlock() }()

	return j.append(row)
}

func (j *Journal) append(row []string) error {
	f, err := os.OpenFile(j.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("journal: %w", err)
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("journal: %w", err)
	}

	w := csv.NewWriter(f)
	if st.Size() == 0 {
		_ = w.Write(Header)
	}
	_ = w.Write(row)
	w.Flush()
	if err = w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("journal: write %s: %w", j.path, err)
	}

	return f.Close()
}

func (j *Journal) encode(res *result.SolveResult, inputs []*table.Table) ([]string, error) {
	var solution any = res.Pairs
	if res.Shape == result.ShapeVariables {
		solution = res.Mapping()
	}
	sol, err := json.Marshal(solution)
	if err != nil {
		return nil, fmt.Errorf("journal: solution: %w", err)
	}

	tables := make(map[string]any, len(inputs))
	for _, t := range inputs {
		if t == nil {
			continue
		}
		tables[t.Name] = tableRecord(t)
	}
	in, err := json.Marshal(tables)
	if err != nil {
		return nil, fmt.Errorf("journal: inputs: %w", err)
	}

	obj := ""
	if v, ok := res.ObjectiveValue(); ok {
		obj = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return []string{
		j.now().UTC().Format(time.RFC3339),
		res.Kind.String(),
		res.Status.String(),
		obj,
		string(sol),
		string(in),
	}, nil
}

// tableRecord renders a table as a list of column → cell objects.
func tableRecord(t *table.Table) []map[string]any {
	out := make([]map[string]any, t.Len())
	for i, row := range t.Rows {
		rec := make(map[string]any, len(t.Columns)+1)
		if label := t.Label(i); label != "" {
			rec[""] = label
		}
		for k, c := range t.Columns {
			rec[c] = row[k]
		}
		out[i] = rec
	}

	return out
}

// Read decodes a journal stream.
func Read(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	for k, h := range Header {
		if rows[0][k] != h {
			return nil, ErrBadHeader
		}
	}

	out := make([]Entry, 0, len(rows)-1)
	for n, row := range rows[1:] {
		ts, err := time.Parse(time.RFC3339, row[0])
		if err != nil {
			return nil, fmt.Errorf("journal: row %d: %w", n+2, err)
		}
		e := Entry{Time: ts, Kind: row[1], Status: row[2],
			Solution: json.RawMessage(row[4]), Inputs: json.RawMessage(row[5])}
		if row[3] != "" {
			v, err := strconv.ParseFloat(row[3], 64)
			if err != nil {
				return nil, fmt.Errorf("journal: row %d: %w", n+2, err)
			}
			e.Objective = &v
		}
		out = append(out, e)
	}

	return out, nil
}

// ReadFile decodes the journal at path; a missing file yields no entries.
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}
	defer f.Close()

	return Read(f)
}
