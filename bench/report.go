// SPDX-License-Identifier: MIT

package bench

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"
	"gopkg.in/yaml.v3"

	"github.com/HesamPourabbasian/Strassen-Matrix/internal/buildinfo"
)

// Column headers shared by the console table and the CSV file.
const (
	HeaderSize     = "Matrix Size"
	HeaderStandard = "Standard Time (s)"
	HeaderStrassen = "Strassen Time (s)"
)

// tableRow left-aligns every column, the last one included, to the width
// of its header.
const tableRow = "%-11s  %-17s  %-17s\n"

// seconds formats d as seconds with exactly six decimals.
func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 6, 64)
}

func rows(results []Result) [][]string {
	out := make([][]string, 0, len(results))
	for _, r := range results {
		out = append(out, []string{strconv.Itoa(r.Size), seconds(r.Standard), seconds(r.Strassen)})
	}
	return out
}

// WriteTable renders results as a fixed-width console table.
func WriteTable(w io.Writer, results []Result) error {
	if _, err := fmt.Fprintf(w, tableRow, HeaderSize, HeaderStandard, HeaderStrassen); err != nil {
		return err
	}
	for _, row := range rows(results) {
		if _, err := fmt.Fprintf(w, tableRow, row[0], row[1], row[2]); err != nil {
			return err
		}
	}

	return nil
}

// WriteCSV writes the header and one row per result.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{HeaderSize, HeaderStandard, HeaderStrassen}); err != nil {
		return err
	}
	if err := cw.WriteAll(rows(results)); err != nil {
		return fmt.Errorf("bench: write csv: %w", err)
	}

	return nil
}

// SaveCSV writes results to path, replacing any previous file.
func SaveCSV(path string, results []Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bench: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("bench: close %s: %w", path, cerr)
		}
	}()

	return WriteCSV(f, results)
}

// Report is the structured form of a run used by the JSON and YAML writers.
type Report struct {
	RunID     string         `json:"run_id" yaml:"run_id"`
	StartedAt *time.Time     `json:"started_at,omitempty" yaml:"started_at,omitempty"`
	Build     buildinfo.Info `json:"build" yaml:"build"`
	Results   []Record       `json:"results" yaml:"results"`
}

// Record is one Result with durations in seconds.
type Record struct {
	Size            int     `json:"size" yaml:"size"`
	StandardSeconds float64 `json:"standard_seconds" yaml:"standard_seconds"`
	StrassenSeconds float64 `json:"strassen_seconds" yaml:"strassen_seconds"`
	Match           bool    `json:"match" yaml:"match"`
}

// NewReport builds a Report stamped with the binary's build information.
// When runID is a ULID its timestamp becomes StartedAt.
func NewReport(runID string, results []Result) Report {
	rep := Report{RunID: runID, Build: buildinfo.Get(), Results: make([]Record, 0, len(results))}
	if id, err := ulid.Parse(runID); err == nil {
		t := ulid.Time(id.Time()).UTC()
		rep.StartedAt = &t
	}
	for _, r := range results {
		rep.Results = append(rep.Results, Record{
			Size:            r.Size,
			StandardSeconds: r.Standard.Seconds(),
			StrassenSeconds: r.Strassen.Seconds(),
			Match:           r.Match,
		})
	}

	return rep
}

// WriteJSON writes rep as indented JSON.
func WriteJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// WriteYAML writes rep as a YAML document.
func WriteYAML(w io.Writer, rep Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}
