package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/sable-lang/sable/codegen"
)

func newCheckCmd() *cobra.Command {
	var configPath string
	var grammarPath string
	var outDir string
	var packageName string

	cmd := &cobra.Command{
		Use:          "check",
		Short:        "Verify committed sources match the grammar",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := resolveGenerate(cmd, configPath, grammarPath, outDir, packageName)
			if err != nil {
				return err
			}
			files, err := generateFiles(gen)
			if err != nil {
				return err
			}
			diff, clean, err := codegen.Diff(gen.OutDir, files)
			if err != nil {
				return fmt.Errorf("diff generated files: %w", err)
			}
			if clean {
				commonlog.GetLogger("syntaxgen.check").Noticef("%s: generated sources are up to date", gen.OutDir)
				return nil
			}
			fmt.Print(diff)
			return fmt.Errorf("generated sources under %s are stale; run `syntaxgen generate`", gen.OutDir)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to the syntaxgen config file")
	cmd.Flags().StringVar(&grammarPath, "grammar", "", "grammar file to load (overrides config)")
	cmd.Flags().StringVar(&outDir, "out", "", "directory with committed sources (overrides config)")
	cmd.Flags().StringVar(&packageName, "package", "", "package name for generated sources (overrides config)")

	return cmd
}
