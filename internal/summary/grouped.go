package summary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/voltlabs/emcplan-cli/internal/dataset"
)

// Grouped renders the hierarchical test-plan summary. DC Ripple rows collapse
// into one line per (frequency, level) pair; AC VDI rows group by
// (applicability, frequency, crossing) with nested (reduction, duration)
// lines. Rows of any other test type are silently excluded.
type Grouped struct{}

type group struct {
	keys     []cellKey
	criteria map[string]bool
	inner    map[string]*group
}

func (g *group) addCriteria(v string) {
	if v == "" {
		return
	}
	if g.criteria == nil {
		g.criteria = make(map[string]bool)
	}
	g.criteria[v] = true
}

// criteriaString joins the distinct criteria of a group in lexicographic
// order, or "TBD" when no row in the group asserts one.
func (g *group) criteriaString() string {
	if len(g.criteria) == 0 {
		return "TBD"
	}
	vals := make([]string, 0, len(g.criteria))
	for v := range g.criteria {
		vals = append(vals, v)
	}
	sort.Strings(vals)
	return strings.Join(vals, ", ")
}

func sortedGroups(m map[string]*group) []*group {
	out := make([]*group, 0, len(m))
	for _, g := range m {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		return compareTuples(out[i].keys, out[j].keys) < 0
	})
	return out
}

func (Grouped) Generate(t *dataset.Table) Report {
	if t.IsEmpty() {
		return Report{Plan: NoPlanMessage}
	}
	var lines []string

	dc := groupRows(t, dataset.TestTypeDCRipple,
		[]string{dataset.ColDCRFreq, dataset.ColDCRLevel}, nil, dataset.ColDCRCriteria)
	if len(dc) > 0 {
		lines = append(lines, "### DC Ripple Tests")
		for _, g := range sortedGroups(dc) {
			lines = append(lines, fmt.Sprintf("- Frequency: %s Hz, Level: %s%%, Criteria: %s",
				g.keys[0].display(), g.keys[1].display(), g.criteriaString()))
		}
		lines = append(lines, "")
	}

	ac := groupRows(t, dataset.TestTypeACVDI,
		[]string{dataset.ColACVApply, dataset.ColACVFreq, dataset.ColACVCross},
		[]string{dataset.ColACVRed, dataset.ColACVDurCycles, dataset.ColACVDurMs},
		dataset.ColACVCriteria)
	if len(ac) > 0 {
		lines = append(lines, "### AC VDI Tests")
		for _, outer := range sortedGroups(ac) {
			lines = append(lines, fmt.Sprintf("- Applicability: %s, Frequency: %s Hz, Crossing: %s°",
				outer.keys[0].display(), outer.keys[1].display(), outer.keys[2].display()))
			for _, inner := range sortedGroups(outer.inner) {
				duration := durationString(inner.keys[1].raw, inner.keys[2].raw)
				lines = append(lines, fmt.Sprintf("  - Reduction: %s%%, Duration: %s, Criteria: %s",
					inner.keys[0].display(), duration, inner.criteriaString()))
			}
			lines = append(lines, "")
		}
	}

	plan := strings.TrimSpace(strings.Join(lines, "\n"))
	if plan == "" {
		return Report{Plan: NoPlanMessage}
	}
	return Report{Plan: plan}
}

// groupRows partitions the rows of one test type by outerCols. When innerCols
// is given, each outer group holds a second grouping level and criteria attach
// to the inner groups; otherwise criteria attach to the outer groups directly.
func groupRows(t *dataset.Table, testType string, outerCols, innerCols []string, criteriaCol string) map[string]*group {
	groups := make(map[string]*group)
	for r := range t.Rows {
		if t.Cell(r, dataset.ColTestType) != testType {
			continue
		}
		keys := make([]cellKey, len(outerCols))
		for i, col := range outerCols {
			keys[i] = keyOf(t.Cell(r, col))
		}
		ck := canonicalTuple(keys)
		g := groups[ck]
		if g == nil {
			g = &group{keys: keys}
			groups[ck] = g
		}
		if innerCols == nil {
			g.addCriteria(t.Cell(r, criteriaCol))
			continue
		}
		inKeys := make([]cellKey, len(innerCols))
		for i, col := range innerCols {
			inKeys[i] = keyOf(t.Cell(r, col))
		}
		ick := canonicalTuple(inKeys)
		if g.inner == nil {
			g.inner = make(map[string]*group)
		}
		in := g.inner[ick]
		if in == nil {
			in = &group{keys: inKeys}
			g.inner[ick] = in
		}
		in.addCriteria(t.Cell(r, criteriaCol))
	}
	return groups
}
