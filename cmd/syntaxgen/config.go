package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/sable-lang/sable/codegen"
)

const defaultConfigPath = "syntaxgen.toml"

// Config mirrors syntaxgen.toml.
type Config struct {
	Generate GenerateConfig `toml:"generate"`
}

// GenerateConfig says which grammar to read and where the generated
// package goes.
type GenerateConfig struct {
	Grammar       string   `toml:"grammar"`
	OutDir        string   `toml:"out_dir"`
	Package       string   `toml:"package"`
	SyntreeImport string   `toml:"syntree_import"`
	TokenClasses  []string `toml:"token_classes"`
}

// loadConfig reads the config file. A missing file is an error only when
// the user named the path explicitly; otherwise flags alone can carry the
// whole configuration.
func loadConfig(path string, explicit bool) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); err != nil {
		if explicit {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, nil
}

func (g *GenerateConfig) applyDefaults() error {
	if g.Grammar == "" {
		return fmt.Errorf("no grammar configured: set generate.grammar in %s or pass --grammar", defaultConfigPath)
	}
	if g.OutDir == "" {
		g.OutDir = filepath.Dir(g.Grammar)
	}
	if g.Package == "" {
		g.Package = filepath.Base(g.OutDir)
	}
	if g.SyntreeImport == "" {
		g.SyntreeImport = "github.com/sable-lang/sable/syntree"
	}
	return nil
}

// resolveGenerate layers flag overrides on top of the config file.
func resolveGenerate(cmd *cobra.Command, configPath, grammar, outDir, pkg string) (GenerateConfig, error) {
	cfg, err := loadConfig(configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return GenerateConfig{}, err
	}
	gen := cfg.Generate
	if grammar != "" {
		gen.Grammar = grammar
	}
	if outDir != "" {
		gen.OutDir = outDir
	}
	if pkg != "" {
		gen.Package = pkg
	}
	if err := gen.applyDefaults(); err != nil {
		return GenerateConfig{}, err
	}
	return gen, nil
}

func generateFiles(gen GenerateConfig) ([]codegen.File, error) {
	src, err := os.ReadFile(gen.Grammar)
	if err != nil {
		return nil, fmt.Errorf("read grammar: %w", err)
	}
	return codegen.FromSource(gen.Grammar, src, gen.TokenClasses, codegen.Options{
		PackageName:   gen.Package,
		SyntreeImport: gen.SyntreeImport,
	})
}
