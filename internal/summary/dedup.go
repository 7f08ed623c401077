package summary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/voltlabs/emcplan-cli/internal/dataset"
)

// Dedup renders one line per distinct test case plus a secondary report of
// justifiable deviations. A row's criteria comes from DCR_Criteria, falling
// back to ACV_Criteria; rows without a valid A/B/C criteria are excluded from
// both reports.
//
// The deduplication key is the full rendered line INCLUDING the criteria
// value, so two rows with identical parameters but different criteria are
// distinct cases rather than a conflict on one case. That matches the shipped
// behavior of this report and is kept deliberately; see DESIGN.md.
type Dedup struct{}

func (Dedup) Generate(t *dataset.Table) Report {
	if t.IsEmpty() {
		return Report{Plan: NoPlanMessage}
	}

	seen := make(map[string]string)      // rendered case -> recorded criteria
	justifiable := make(map[string]bool) // rendered cases needing justification
	for r := range t.Rows {
		criteria := t.Cell(r, dataset.ColDCRCriteria)
		if criteria == "" {
			criteria = t.Cell(r, dataset.ColACVCriteria)
		}
		if _, ok := severityRank[criteria]; !ok {
			continue
		}
		desc := describeRow(t, r, criteria)
		if desc == "" {
			continue
		}
		stored, ok := seen[desc]
		if !ok {
			seen[desc] = criteria
			continue
		}
		// Reachable only when formatting collapses distinct source rows onto
		// one rendered case.
		switch {
		case severityRank[criteria] > severityRank[stored]:
			// Incoming is less strict: flag it, keep the stricter record.
			justifiable[desc] = true
		case severityRank[criteria] < severityRank[stored]:
			justifiable[desc] = true
			seen[desc] = criteria
		}
	}

	if len(seen) == 0 {
		return Report{Plan: NoPlanMessage}
	}

	cases := make([]string, 0, len(seen))
	for c := range seen {
		cases = append(cases, c)
	}
	sort.Strings(cases)
	var plan strings.Builder
	plan.WriteString("### Unique Test Cases")
	for i, c := range cases {
		plan.WriteString(fmt.Sprintf("\n%d. %s", i+1, c))
	}

	var deviations string
	if len(justifiable) > 0 {
		devs := make([]string, 0, len(justifiable))
		for d := range justifiable {
			devs = append(devs, d)
		}
		sort.Strings(devs)
		var b strings.Builder
		b.WriteString("### Justifiable Test Cases")
		for i, d := range devs {
			b.WriteString(fmt.Sprintf("\n%d. %s", i+1, d))
		}
		deviations = b.String()
	}
	return Report{Plan: plan.String(), Deviations: deviations}
}

// describeRow flattens one row into a single line, matching the field
// composition of the grouped report. Rows of an unrecognized test type yield
// "" and are skipped.
func describeRow(t *dataset.Table, r int, criteria string) string {
	switch t.Cell(r, dataset.ColTestType) {
	case dataset.TestTypeDCRipple:
		return fmt.Sprintf("DC Ripple: Frequency %s Hz, Level %s%%, Criteria %s",
			formatValue(t.Cell(r, dataset.ColDCRFreq)),
			formatValue(t.Cell(r, dataset.ColDCRLevel)),
			criteria)
	case dataset.TestTypeACVDI:
		return fmt.Sprintf("AC VDI: Applicability %s, Frequency %s Hz, Reduction %s%%, Duration %s, Crossing %s degrees, Criteria %s",
			formatValue(t.Cell(r, dataset.ColACVApply)),
			formatValue(t.Cell(r, dataset.ColACVFreq)),
			formatValue(t.Cell(r, dataset.ColACVRed)),
			durationString(t.Cell(r, dataset.ColACVDurCycles), t.Cell(r, dataset.ColACVDurMs)),
			formatValue(t.Cell(r, dataset.ColACVCross)),
			criteria)
	default:
		return ""
	}
}
