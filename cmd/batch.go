package cmd

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/macroforge/macrokit/internal"
)

// Case is one named expansion in a batch file.
type Case struct {
	Name  string `yaml:"name"`
	Macro string `yaml:"macro"`
	Input string `yaml:"input"`
}

// BatchConfig is the YAML batch file layout.
type BatchConfig struct {
	Cases []Case `yaml:"cases"`
}

var batchCmd = &cobra.Command{
	Use:   "batch <cases.yaml>",
	Short: "Expand every case in a YAML batch file",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("error: Please provide exactly one batch file")
			os.Exit(1)
		}

		cases, err := loadCases(args[0])
		if err != nil {
			logger.Fatal("Failed to load batch file", zap.Error(err))
		}

		bar := progressbar.Default(int64(len(cases)), "expanding")
		failed := 0
		for _, c := range cases {
			out, serr := runMacro(c.Macro, c.Input)
			_ = bar.Add(1)
			if serr != nil {
				failed++
				fmt.Fprintf(os.Stderr, "%s:\n%s", c.Name,
					internal.FormatSyntaxError(serr, internal.SourceFromString(c.Input), c.Name))
				continue
			}
			fmt.Printf("%s: %s\n", c.Name, out)
		}
		if failed > 0 {
			fmt.Fprintf(os.Stderr, "%d of %d cases failed\n", failed, len(cases))
			os.Exit(1)
		}
	},
}

func loadCases(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg BatchConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return cfg.Cases, nil
}
