package cmd

import (
	"fmt"
	"os"

	"github.com/ozgrakkurt/zrak/internal/errors"
	"github.com/ozgrakkurt/zrak/pkg/printer"
	"github.com/ozgrakkurt/zrak/pkg/zrak"
	"github.com/spf13/cobra"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Reformat zrak source code",
	Long: `Reformat zrak source code by parsing it and printing the AST back
with canonical whitespace.

By default the result is written to stdout. With -w the source file is
overwritten in place.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result back to the source file instead of stdout")
}

func runFmt(cmd *cobra.Command, args []string) error {
	input, filename, err := readInput("", args)
	if err != nil {
		return err
	}

	result, err := zrak.Parse(input)
	if err != nil {
		if serr, ok := err.(*errors.Error); ok {
			fmt.Println(serr.Format(input, filename, true))
			return fmt.Errorf("parsing failed")
		}
		return err
	}

	formatted := printer.New(result.Interner).Program(result.Program)

	if fmtWrite {
		if len(args) != 1 {
			return fmt.Errorf("-w requires a file argument")
		}
		return os.WriteFile(args[0], []byte(formatted), 0o644)
	}

	fmt.Print(formatted)
	return nil
}
