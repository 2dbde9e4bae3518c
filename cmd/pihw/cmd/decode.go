package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/OpenTraceLab/pihwinfo/pkg/revision"
	"github.com/spf13/cobra"
)

var (
	outputJSON bool
)

// DecodeResult is the outcome of decoding one code on the command line.
type DecodeResult struct {
	Input      string               `json:"input"`
	Descriptor *revision.Descriptor `json:"descriptor,omitempty"`
	Error      string               `json:"error,omitempty"`
}

var decodeCmd = &cobra.Command{
	Use:   "decode CODE...",
	Short: "Decode one or more revision codes",
	Long: `Decode hexadecimal revision codes (with or without a 0x prefix) and print
the board model, processor, memory, manufacturer and revision they describe.

Examples:
  pihw decode a020d3
  pihw decode 0x0015 d04170
  pihw decode --json c03114`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().BoolVar(&outputJSON, "json", false,
		"output as JSON (for programmatic access)")
}

func runDecode(cmd *cobra.Command, args []string) error {
	results := make([]DecodeResult, 0, len(args))
	failed := 0
	for _, arg := range args {
		code := strings.TrimSpace(arg)
		res := DecodeResult{Input: code}
		d, err := revision.Decode(code)
		if err != nil {
			logger.Debug("decode failed", "code", code, "error", err)
			res.Error = err.Error()
			failed++
		} else {
			res.Descriptor = &d
		}
		results = append(results, res)
	}

	out := cmd.OutOrStdout()
	var err error
	if outputJSON {
		err = writeJSON(out, results)
	} else {
		err = writeDecodeHuman(out, results)
	}
	if err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d revision code(s) failed to decode", failed, len(args))
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeDecodeHuman(w io.Writer, results []DecodeResult) error {
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Revision %s\n", res.Input)
		if res.Descriptor == nil {
			fmt.Fprintf(w, "  Error:        %s\n", res.Error)
			continue
		}
		writeDescriptor(w, *res.Descriptor)
	}
	return nil
}

func writeDescriptor(w io.Writer, d revision.Descriptor) {
	fmt.Fprintf(w, "  Model:        %s\n", d.ModelType)
	fmt.Fprintf(w, "  Revision:     %s\n", d.BoardRevision)
	fmt.Fprintf(w, "  Processor:    %s\n", d.Processor)
	fmt.Fprintf(w, "  Memory:       %d MB\n", d.MemoryMB)
	fmt.Fprintf(w, "  Manufacturer: %s\n", d.Manufacturer)
	if verbose {
		fmt.Fprintf(w, "  Overvoltage:  %t\n", d.Overvoltage)
		fmt.Fprintf(w, "  OTP program:  %t\n", d.OTPProgram)
		fmt.Fprintf(w, "  OTP read:     %t\n", d.OTPRead)
	}
}
