package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/voltlabs/emcplan-cli/internal/filter"
)

var (
	dimInput   string
	dimSheet   string
	dimRefresh bool
)

var dimensionsCmd = &cobra.Command{
	Use:   "dimensions",
	Short: "List the filterable dimensions and their values",
	Long:  `Lists the distinct values of each filter dimension, drawn from the full unfiltered dataset, for use with the plan command's filter flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := loadDataset(cmd.Context(), dimInput, dimSheet, dimRefresh)
		if err != nil {
			return err
		}
		for _, dim := range filter.Dimensions {
			vals := filter.Values(tbl, dim)
			if len(vals) == 0 {
				fmt.Printf("%s: (no values)\n", dim)
				continue
			}
			fmt.Printf("%s: %s\n", dim, strings.Join(vals, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dimensionsCmd)
	dimensionsCmd.Flags().StringVar(&dimInput, "input", "", "local CSV/TSV/XLSX dataset instead of the remote source")
	dimensionsCmd.Flags().StringVar(&dimSheet, "sheet", "", "worksheet name for --input .xlsx (default: first sheet)")
	dimensionsCmd.Flags().BoolVar(&dimRefresh, "refresh", false, "bypass the snapshot cache and refetch the source")
}
