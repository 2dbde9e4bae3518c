package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/OpenTraceLab/pihwinfo/pkg/hwinfo"
	"github.com/spf13/cobra"
)

var (
	cpuInfoPath string
	netPath     string
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Report the local board's hardware",
	Long: `Read the system info file and network interface tree, decode the board
revision code and print the result. Missing sources are reported as UNKNOWN.

Examples:
  pihw info
  pihw info --json
  pihw info --cpuinfo ./cpuinfo --net ./net`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().BoolVar(&outputJSON, "json", false,
		"output as JSON (for programmatic access)")
	infoCmd.Flags().StringVar(&cpuInfoPath, "cpuinfo", "",
		"system info file (env PIHW_CPUINFO_PATH, default /proc/cpuinfo)")
	infoCmd.Flags().StringVar(&netPath, "net", "",
		"network interface directory (env PIHW_NET_PATH, default /sys/class/net)")
}

func runInfo(cmd *cobra.Command, args []string) error {
	cpuPath := cfg.CPUInfoPath
	if cpuInfoPath != "" {
		cpuPath = cpuInfoPath
	}
	ifPath := cfg.NetPath
	if netPath != "" {
		ifPath = netPath
	}

	collector, err := hwinfo.NewCollector(cpuPath, ifPath, logger)
	if err != nil {
		return err
	}
	info, err := collector.Collect(cmd.Context())
	if err != nil {
		return fmt.Errorf("collect hardware info: %w", err)
	}

	if outputJSON {
		return writeJSON(cmd.OutOrStdout(), info)
	}
	writeInfoHuman(cmd.OutOrStdout(), info)
	return nil
}

func writeInfoHuman(w io.Writer, info hwinfo.Info) {
	fmt.Fprintf(w, "Board: %s\n", info.ModelName)
	fmt.Fprintf(w, "  Serial:       %s\n", info.SerialNumber)
	fmt.Fprintf(w, "  Code:         %s\n", info.RevisionCode)
	writeDescriptor(w, info.Descriptor)

	if len(info.NetworkInterfaces) == 0 {
		fmt.Fprintln(w, "  Interfaces:   none")
		return
	}
	names := make([]string, 0, len(info.NetworkInterfaces))
	for name := range info.NetworkInterfaces {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "  Interfaces:")
	for _, name := range names {
		fmt.Fprintf(w, "    - %-10s %s\n", name, info.NetworkInterfaces[name])
	}
}
