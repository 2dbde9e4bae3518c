package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/pihwinfo/pkg/revision"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "List the old-style revision code table",
	Long: `Print every old-style (pre-2014) revision code the decoder knows, with the
board it maps to. New-style codes are decoded from bit fields and have no table.`,
	Args: cobra.NoArgs,
	RunE: runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)

	tableCmd.Flags().BoolVar(&outputJSON, "json", false,
		"output as JSON (for programmatic access)")
}

func runTable(cmd *cobra.Command, args []string) error {
	codes := revision.LegacyCodes()
	rows := make([]revision.Descriptor, 0, len(codes))
	for _, code := range codes {
		d, err := revision.DecodeUint32(code)
		if err != nil {
			return fmt.Errorf("legacy code 0x%04X: %w", code, err)
		}
		rows = append(rows, d)
	}

	out := cmd.OutOrStdout()
	if outputJSON {
		return writeJSON(out, rows)
	}

	fmt.Fprintf(out, "%-8s %-8s %-9s %-8s %s\n", "CODE", "MODEL", "REVISION", "MEMORY", "MANUFACTURER")
	for i, d := range rows {
		fmt.Fprintf(out, "0x%04X   %-8s %-9s %-8s %s\n",
			codes[i], d.ModelType, d.BoardRevision, fmt.Sprintf("%dMB", d.MemoryMB), d.Manufacturer)
	}
	return nil
}
