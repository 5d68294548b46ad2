package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/sable-lang/sable/codegen"
)

func newGenerateCmd() *cobra.Command {
	var configPath string
	var grammarPath string
	var outDir string
	var packageName string

	cmd := &cobra.Command{
		Use:          "generate",
		Short:        "Generate syntax tree sources from the grammar",
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
			written, err := codegen.WriteFiles(gen.OutDir, files)
			if err != nil {
				return fmt.Errorf("write generated files: %w", err)
			}

			log := commonlog.GetLogger("syntaxgen.generate")
			if len(written) == 0 {
				log.Notice("generated sources are up to date")
				return nil
			}
			for _, path := range written {
				log.Noticef("wrote %s", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to the syntaxgen config file")
	cmd.Flags().StringVar(&grammarPath, "grammar", "", "grammar file to load (overrides config)")
	cmd.Flags().StringVar(&outDir, "out", "", "directory for generated sources (overrides config)")
	cmd.Flags().StringVar(&packageName, "package", "", "package name for generated sources (overrides config)")

	return cmd
}
