package cmd

import (
	"fmt"

	"github.com/ozgrakkurt/zrak/internal/errors"
	"github.com/ozgrakkurt/zrak/pkg/printer"
	"github.com/ozgrakkurt/zrak/pkg/zrak"
	"github.com/spf13/cobra"
)

var parseEvalExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse zrak source code and display the AST",
	Long: `Parse zrak source code and print the program back from its AST.

If no file is provided, reads from stdin.
Use -e to parse inline code from the command line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, filename, err := readInput(parseEvalExpr, args)
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

	fmt.Printf("parsed %d declaration(s)\n", len(result.Program.Decls))
	fmt.Print(printer.New(result.Interner).Program(result.Program))
	return nil
}
