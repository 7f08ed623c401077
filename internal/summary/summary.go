// Package summary turns a filtered requirements table into human-readable
// test-plan reports. Two strategies exist: Grouped collapses rows into
// hierarchically grouped condition lines, Dedup emits one line per distinct
// test case plus a justifiable-deviation report. Both are pure functions of
// the table; a caller picks one explicitly by Mode.
package summary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/voltlabs/emcplan-cli/internal/dataset"
)

// NoPlanMessage is returned when nothing can be reported.
const NoPlanMessage = "No test plan available for the selected criteria."

// Report holds the rendered output of a generator. Deviations is only
// populated by the Dedup strategy.
type Report struct {
	Plan       string
	Deviations string
}

// Generator renders reports from a filtered table.
type Generator interface {
	Generate(t *dataset.Table) Report
}

// Mode names a summary strategy.
type Mode string

const (
	ModeGrouped Mode = "grouped"
	ModeDedup   Mode = "dedup"
)

// New returns the generator for a mode.
func New(mode Mode) (Generator, error) {
	switch mode {
	case ModeGrouped:
		return Grouped{}, nil
	case ModeDedup:
		return Dedup{}, nil
	default:
		return nil, fmt.Errorf("unknown summary mode: %q (use %s or %s)", mode, ModeGrouped, ModeDedup)
	}
}

// severityRank orders acceptance criteria strictest first. It annotates
// conflicts; it never excludes a row.
var severityRank = map[string]int{"A": 1, "B": 2, "C": 3}

// cellKey is one component of a group key. A missing value forms its own
// group and sorts after every present value.
type cellKey struct {
	missing bool
	isNum   bool
	num     float64
	raw     string
}

func keyOf(s string) cellKey {
	if s == "" {
		return cellKey{missing: true}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return cellKey{isNum: true, num: f, raw: s}
	}
	return cellKey{raw: s}
}

// display renders a key component for output: numbers without spurious
// decimals, unparseable values verbatim, missing as "-".
func (k cellKey) display() string {
	switch {
	case k.missing:
		return "-"
	case k.isNum:
		return strconv.FormatFloat(k.num, 'f', -1, 64)
	default:
		return k.raw
	}
}

// canonical is a map key that makes "50" and "50.0" the same group while
// keeping missing distinct from any literal value.
func (k cellKey) canonical() string {
	if k.missing {
		return "\x00"
	}
	if k.isNum {
		return "#" + strconv.FormatFloat(k.num, 'f', -1, 64)
	}
	return "s" + k.raw
}

func canonicalTuple(keys []cellKey) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.canonical()
	}
	return strings.Join(parts, "\x1f")
}

// compareTuples orders group keys ascending, missing last. Numeric components
// compare numerically when both sides parse; everything else falls back to
// the raw string.
func compareTuples(a, b []cellKey) int {
	for i := range a {
		if i >= len(b) {
			return 1
		}
		if c := compareKeys(a[i], b[i]); c != 0 {
			return c
		}
	}
	if len(a) < len(b) {
		return -1
	}
	return 0
}

func compareKeys(a, b cellKey) int {
	switch {
	case a.missing && b.missing:
		return 0
	case a.missing:
		return 1
	case b.missing:
		return -1
	}
	if a.isNum && b.isNum {
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a.raw, b.raw)
}

// formatValue renders a raw cell the same way a group key component would be.
func formatValue(s string) string {
	return keyOf(s).display()
}

// durationString describes the AC VDI duration fields: "<cycles> cycles"
// and/or "<ms> ms", or "-" when neither is present. Whole numbers render
// without a decimal point; unparseable values render verbatim.
func durationString(cycles, ms string) string {
	var parts []string
	if cycles != "" {
		parts = append(parts, formatValue(cycles)+" cycles")
	}
	if ms != "" {
		parts = append(parts, formatValue(ms)+" ms")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}
