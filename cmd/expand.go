package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/macroforge/macrokit"
	"github.com/macroforge/macrokit/diag"
	"github.com/macroforge/macrokit/internal"
	"github.com/macroforge/macrokit/lexer"
	"github.com/macroforge/macrokit/token"
)

var macroName string

var expandCmd = &cobra.Command{
	Use:   "expand [files... | -]",
	Short: "Expand a macro invocation read from files or stdin",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide input files or '-' for stdin")
			os.Exit(1)
		}

		failed := false
		for _, path := range args {
			if err := expandOne(path); err != nil {
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	expandCmd.Flags().StringVarP(&macroName, "macro", "m", "idents", "macro to expand (idents, match_lit)")
}

// expandOne lexes one input, runs the selected macro, and prints either the
// expansion or a caret diagnostic.
func expandOne(path string) error {
	src, name, err := readInput(path)
	if err != nil {
		logger.Error("Failed to read input", zap.String("path", path), zap.Error(err))
		return err
	}

	out, serr := runMacro(macroName, src)
	if serr != nil {
		fmt.Fprint(os.Stderr, internal.FormatSyntaxError(serr, internal.SourceFromString(src), name))
		return serr
	}
	fmt.Println(out)
	return nil
}

// runMacro lexes src and applies the named macro, returning the rendered
// expansion.
func runMacro(name, src string) (string, *diag.SyntaxError) {
	macro, ok := macrokit.Lookup(name)
	if !ok {
		logger.Fatal("Unknown macro", zap.String("macro", name), zap.Strings("available", macrokit.Names()))
	}

	stream, err := lexer.Lex(src)
	if err != nil {
		logger.Error("Failed to lex input", zap.Error(err))
		return "", diag.New(token.NoPos, err.Error())
	}

	out, serr := macro(stream)
	if serr != nil {
		return "", serr
	}
	return out.String(), nil
}

func readInput(path string) (src, name string, err error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), "<stdin>", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	return string(data), path, nil
}
