package summary

import (
	"strings"
	"testing"

	"github.com/voltlabs/emcplan-cli/internal/dataset"
)

func mixedTable(rows ...[]string) *dataset.Table {
	return dataset.New(
		[]string{"TEST_TYPE", "DCR_Freq_[Hz]", "DCR_Level_[%]", "DCR_Criteria", "ACV_Apply", "ACV_Freq_[Hz]", "ACV_Cross_[deg]", "ACV_Red_[%]", "ACV_Dur_[Cycles]", "ACV_Dur_[ms]", "ACV_Criteria"},
		rows,
	)
}

func TestDedupEmptyTable(t *testing.T) {
	rep := Dedup{}.Generate(dataset.Empty())
	if rep.Plan != NoPlanMessage {
		t.Fatalf("plan = %q, want %q", rep.Plan, NoPlanMessage)
	}
	if rep.Deviations != "" {
		t.Fatalf("deviations = %q, want empty", rep.Deviations)
	}
}

func TestDedupIdenticalRowsCollapse(t *testing.T) {
	tbl := mixedTable(
		[]string{"DC Ripple", "50", "80", "A", "", "", "", "", "", "", ""},
		[]string{"DC Ripple", "50", "80", "A", "", "", "", "", "", "", ""},
	)
	rep := Dedup{}.Generate(tbl)
	want := "### Unique Test Cases\n1. DC Ripple: Frequency 50 Hz, Level 80%, Criteria A"
	if rep.Plan != want {
		t.Fatalf("plan =\n%s\nwant:\n%s", rep.Plan, want)
	}
	if rep.Deviations != "" {
		t.Fatalf("deviations = %q, want empty", rep.Deviations)
	}
}

func TestDedupNumberingIsLexicographicAndStable(t *testing.T) {
	rows := [][]string{
		{"DC Ripple", "50", "80", "A", "", "", "", "", "", "", ""},
		{"AC VDI", "", "", "", "Continuous", "50", "0", "30", "10", "", "B"},
	}
	reversed := [][]string{rows[1], rows[0]}

	want := "### Unique Test Cases\n" +
		"1. AC VDI: Applicability Continuous, Frequency 50 Hz, Reduction 30%, Duration 10 cycles, Crossing 0 degrees, Criteria B\n" +
		"2. DC Ripple: Frequency 50 Hz, Level 80%, Criteria A"
	for _, input := range [][][]string{rows, reversed} {
		rep := Dedup{}.Generate(mixedTable(input...))
		if rep.Plan != want {
			t.Fatalf("plan =\n%s\nwant:\n%s", rep.Plan, want)
		}
	}
}

func TestDedupSameParametersDifferentCriteriaAreDistinctCases(t *testing.T) {
	// The case key includes the criteria value, so these are two cases, not a
	// conflict on one.
	tbl := mixedTable(
		[]string{"DC Ripple", "50", "80", "A", "", "", "", "", "", "", ""},
		[]string{"DC Ripple", "50", "80", "B", "", "", "", "", "", "", ""},
	)
	rep := Dedup{}.Generate(tbl)
	if !strings.Contains(rep.Plan, "1. DC Ripple: Frequency 50 Hz, Level 80%, Criteria A") ||
		!strings.Contains(rep.Plan, "2. DC Ripple: Frequency 50 Hz, Level 80%, Criteria B") {
		t.Fatalf("plan =\n%s", rep.Plan)
	}
	if rep.Deviations != "" {
		t.Fatalf("deviations = %q, want empty", rep.Deviations)
	}
}

func TestDedupSkipsRowsWithoutValidCriteria(t *testing.T) {
	tbl := mixedTable(
		[]string{"DC Ripple", "50", "80", "", "", "", "", "", "", "", ""},
		[]string{"DC Ripple", "60", "80", "X", "", "", "", "", "", "", ""},
		[]string{"DC Ripple", "70", "80", "C", "", "", "", "", "", "", ""},
	)
	rep := Dedup{}.Generate(tbl)
	want := "### Unique Test Cases\n1. DC Ripple: Frequency 70 Hz, Level 80%, Criteria C"
	if rep.Plan != want {
		t.Fatalf("plan =\n%s\nwant:\n%s", rep.Plan, want)
	}
}

func TestDedupAllRowsInvalidYieldsNoPlan(t *testing.T) {
	tbl := mixedTable(
		[]string{"DC Ripple", "50", "80", "", "", "", "", "", "", "", ""},
	)
	rep := Dedup{}.Generate(tbl)
	if rep.Plan != NoPlanMessage {
		t.Fatalf("plan = %q, want %q", rep.Plan, NoPlanMessage)
	}
}

func TestDedupPrefersDCRCriteriaOverACV(t *testing.T) {
	tbl := mixedTable(
		[]string{"DC Ripple", "50", "80", "B", "", "", "", "", "", "", "A"},
	)
	rep := Dedup{}.Generate(tbl)
	if !strings.Contains(rep.Plan, "Criteria B") {
		t.Fatalf("DCR criteria not preferred:\n%s", rep.Plan)
	}
}

func TestDedupUnknownTestTypeSkipped(t *testing.T) {
	tbl := mixedTable(
		[]string{"Surge", "50", "80", "A", "", "", "", "", "", "", ""},
	)
	rep := Dedup{}.Generate(tbl)
	if rep.Plan != NoPlanMessage {
		t.Fatalf("plan = %q, want %q", rep.Plan, NoPlanMessage)
	}
}

func TestDedupMissingFieldsRenderDash(t *testing.T) {
	tbl := mixedTable(
		[]string{"AC VDI", "", "", "", "Continuous", "50", "", "30", "", "", "A"},
	)
	rep := Dedup{}.Generate(tbl)
	want := "### Unique Test Cases\n" +
		"1. AC VDI: Applicability Continuous, Frequency 50 Hz, Reduction 30%, Duration -, Crossing - degrees, Criteria A"
	if rep.Plan != want {
		t.Fatalf("plan =\n%s\nwant:\n%s", rep.Plan, want)
	}
}

func TestNewSelectsStrategy(t *testing.T) {
	if _, err := New(ModeGrouped); err != nil {
		t.Fatalf("New(grouped): %v", err)
	}
	if _, err := New(ModeDedup); err != nil {
		t.Fatalf("New(dedup): %v", err)
	}
	if _, err := New("fancy"); err == nil {
		t.Fatalf("New(fancy) should fail")
	}
}
