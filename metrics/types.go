// Package metrics defines the per-iteration record negotiate.Router
// emits (spec §4.5) and an append-only Reporter that can serialize the
// accumulated rows to CSV or JSON. Grounded on the teacher's
// builder.api.go deterministic-config-resolution idiom: the same
// inputs always produce the same rows, in the same order, with no
// back-editing.
package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Row is one iteration's record (spec §4.5).
type Row struct {
	Iteration       int     `json:"iteration"`
	Conflicts       int     `json:"conflicts"`
	UnroutedSignals int     `json:"unrouted_signals"`
	LongestPathCost int     `json:"longest_path_cost"`
	TotalWireUse    int     `json:"total_wire_use"`
	WireReuse       float64 `json:"wire_reuse"`
}

// Reporter accumulates Rows in iteration order and never rewrites a
// previously appended row (spec §4.5 "append-only; there is no
// back-editing of prior rows").
type Reporter struct {
	rows []Row
}

// Append records row. Callers are expected to append in increasing
// iteration order, but Reporter does not itself enforce that — it is a
// dumb, honest log, matching the teacher's reporter-as-log idiom.
func (r *Reporter) Append(row Row) {
	r.rows = append(r.rows, row)
}

// Rows returns the accumulated records, in append order. The returned
// slice must not be mutated by the caller.
func (r *Reporter) Rows() []Row {
	return r.rows
}

// WriteCSV writes one header line plus one line per row.
func (r *Reporter) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := []string{"iteration", "conflicts", "unrouted_signals", "longest_path_cost", "total_wire_use", "wire_reuse"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("metrics: write csv header: %w", err)
	}

	for _, row := range r.rows {
		record := []string{
			strconv.Itoa(row.Iteration),
			strconv.Itoa(row.Conflicts),
			strconv.Itoa(row.UnroutedSignals),
			strconv.Itoa(row.LongestPathCost),
			strconv.Itoa(row.TotalWireUse),
			strconv.FormatFloat(row.WireReuse, 'f', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("metrics: write csv row %d: %w", row.Iteration, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteJSON writes the rows as a JSON array.
func (r *Reporter) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(r.rows); err != nil {
		return fmt.Errorf("metrics: write json: %w", err)
	}

	return nil
}
