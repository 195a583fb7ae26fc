package cmd

import (
	"fmt"

	"github.com/ozgrakkurt/zrak/internal/errors"
	"github.com/ozgrakkurt/zrak/internal/scanner"
	"github.com/ozgrakkurt/zrak/pkg/ident"
	"github.com/ozgrakkurt/zrak/pkg/token"
	"github.com/spf13/cobra"
)

var (
	lexEvalExpr string
	showPos     bool
	showType    bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a zrak file or expression",
	Long: `Tokenize (lex) zrak source code and print the resulting tokens.

This command is useful for debugging the scanner and understanding how
source code is tokenized.

Examples:
  # Tokenize a script file
  zrak lex script.zrak

  # Tokenize inline code
  zrak lex -e "let x = 1 + 2;"

  # Show token types and positions
  zrak lex --show-type --show-pos script.zrak`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
}

func lexScript(cmd *cobra.Command, args []string) error {
	input, filename, err := readInput(lexEvalExpr, args)
	if err != nil {
		return err
	}

	sc := scanner.New(input, ident.New())
	for {
		tok, err := sc.Next()
		if err != nil {
			if serr, ok := err.(*errors.Error); ok {
				fmt.Println(serr.Format(input, filename, true))
				return fmt.Errorf("tokenization failed")
			}
			return err
		}

		line := tok.String()
		if showType {
			line = fmt.Sprintf("%-14s %s", tok.Type, tok.Literal)
		}
		if showPos {
			line = fmt.Sprintf("%s\t%s", tok.Pos, line)
		}
		fmt.Println(line)

		if tok.Type == token.EOF {
			return nil
		}
	}
}
