package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/voltlabs/emcplan-cli/internal/dataset"
	"github.com/voltlabs/emcplan-cli/internal/filter"
	"github.com/voltlabs/emcplan-cli/internal/summary"
	"github.com/voltlabs/emcplan-cli/internal/utils"
)

var (
	planProductFeatures []string
	planEntities        []string
	planPortTypes       []string
	planVoltageTypes    []string
	planVoltages        []string
	planInput           string
	planSheet           string
	planMode            string
	planOutput          string
	planExportXLSX      string
	planRefresh         bool
	planSummaryOnly     bool
	planTableOnly       bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a filtered test plan with an organized summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		if planSummaryOnly && planTableOnly {
			return fmt.Errorf("--summary-only and --table-only are mutually exclusive")
		}
		mode := summary.Mode(planMode)
		if planMode == "" {
			mode = summary.Mode(effectiveConfig().SummaryMode)
		}
		gen, err := summary.New(mode)
		if err != nil {
			return err
		}

		tbl, err := loadDataset(cmd.Context(), planInput, planSheet, planRefresh)
		if err != nil {
			// Surface the failure but keep going with an empty dataset; every
			// downstream stage handles empty input.
			fmt.Fprintf(os.Stderr, "✗ Error loading data: %v\n", err)
			tbl = dataset.Empty()
		}

		sel := filter.Selection{
			dataset.ColProductFeature: planProductFeatures,
			dataset.ColEntity:         planEntities,
			dataset.ColPortType:       planPortTypes,
			dataset.ColVoltageType:    planVoltageTypes,
			dataset.ColVoltages:       planVoltages,
		}
		filtered := filter.Apply(tbl, sel).Prune()

		var sections []string
		if !planSummaryOnly {
			sections = append(sections, "## Generated Test Plan", filtered.Markdown())
		}
		if !planTableOnly {
			rep := gen.Generate(filtered)
			sections = append(sections, "## Organized Test Plan Summary", rep.Plan)
			if rep.Deviations != "" {
				sections = append(sections, rep.Deviations)
			}
		}
		out := strings.Join(sections, "\n\n") + "\n"

		if planOutput != "" {
			if err := utils.SafeWriteFile(planOutput, []byte(out)); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote test plan to %s\n", planOutput)
		} else {
			fmt.Print(out)
		}
		if planExportXLSX != "" {
			if err := dataset.WriteXLSXFile(filtered, planExportXLSX, ""); err != nil {
				return fmt.Errorf("export xlsx: %w", err)
			}
			fmt.Printf("✓ Exported filtered table to %s\n", planExportXLSX)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().StringSliceVar(&planProductFeatures, "product-feature", nil, "accepted PRODUCT_FEATURE values (repeatable)")
	planCmd.Flags().StringSliceVar(&planEntities, "entity", nil, "accepted ENTITY values (repeatable)")
	planCmd.Flags().StringSliceVar(&planPortTypes, "port-type", nil, "accepted PORT_TYPE values (repeatable)")
	planCmd.Flags().StringSliceVar(&planVoltageTypes, "voltage-type", nil, "accepted VOLTAGE_TYPE values (repeatable)")
	planCmd.Flags().StringSliceVar(&planVoltages, "voltages", nil, "accepted VOLTAGES values (repeatable)")
	planCmd.Flags().StringVar(&planInput, "input", "", "local CSV/TSV/XLSX dataset instead of the remote source")
	planCmd.Flags().StringVar(&planSheet, "sheet", "", "worksheet name for --input .xlsx (default: first sheet)")
	planCmd.Flags().StringVar(&planMode, "mode", "", "summary strategy: grouped|dedup (default from config)")
	planCmd.Flags().StringVarP(&planOutput, "output", "o", "", "write the report to a file instead of stdout")
	planCmd.Flags().StringVar(&planExportXLSX, "export-xlsx", "", "also export the filtered table to an .xlsx file")
	planCmd.Flags().BoolVar(&planRefresh, "refresh", false, "bypass the snapshot cache and refetch the source")
	planCmd.Flags().BoolVar(&planSummaryOnly, "summary-only", false, "print only the summary report")
	planCmd.Flags().BoolVar(&planTableOnly, "table-only", false, "print only the filtered table")
}
