// Copyright 2026 The GLBForge Authors
// SPDX-License-Identifier: Apache-2.0

// glbforge-export converts a scene definition file into a GLB binary
// container.
//
// The scene is described in JSONC (see lib/scenedef for the format):
//
//	glbforge-export --scene plant.jsonc --output plant.glb
//
// Defaults for the export options come from an optional YAML config
// file (GLBFORGE_CONFIG or --config); explicit flags win over the
// file. Exit status is 0 on success, 1 when the export fails, and 2
// for usage errors.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/glbforge/glbforge/lib/config"
	"github.com/glbforge/glbforge/lib/gltf"
	"github.com/glbforge/glbforge/lib/scenedef"
	"github.com/glbforge/glbforge/lib/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Handle --version before flag parsing to match other GLBForge
	// binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("glbforge-export")
		return 0
	}

	var (
		scenePath  string
		outputPath string
		configPath string
	)

	flagSet := pflag.NewFlagSet("glbforge-export", pflag.ContinueOnError)
	flagSet.StringVar(&scenePath, "scene", "", "path to the JSONC scene definition (required)")
	flagSet.StringVar(&outputPath, "output", "", "path of the GLB container to write (required)")
	flagSet.StringVar(&configPath, "config", "", "path to a glbforge.yaml config file")
	includeAttributes := flagSet.Bool("include-attributes", true, "export group attributes as node extras")
	dump := flagSet.Bool("dump", false, "print an indented rendering of the document to stderr")
	checksum := flagSet.Bool("checksum", false, "print the BLAKE3 hash of the written container")
	generator := flagSet.String("generator", "", "generator string recorded in the asset descriptor")
	verbose := flagSet.Bool("verbose", false, "log at debug level")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if arguments := flagSet.Args(); len(arguments) > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected argument: %s\n", arguments[0])
		return 2
	}
	if scenePath == "" || outputPath == "" {
		fmt.Fprintln(os.Stderr, "error: --scene and --output are required")
		fmt.Fprint(os.Stderr, flagSet.FlagUsages())
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	// Flags explicitly set on the command line override the config
	// file; untouched flags take the file's value.
	if !flagSet.Changed("include-attributes") {
		*includeAttributes = cfg.Export.IncludeAttributes
	}
	if !flagSet.Changed("dump") {
		*dump = cfg.Export.Dump
	}
	if !flagSet.Changed("checksum") {
		*checksum = cfg.Export.Checksum
	}
	if !flagSet.Changed("generator") {
		*generator = cfg.Export.Generator
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	store, err := scenedef.ReadFile(scenePath)
	if err != nil {
		logger.Error("loading scene definition", "error", err)
		return 1
	}

	options := gltf.Options{
		IncludeAttributes: *includeAttributes,
		Generator:         *generator,
	}
	if *dump {
		options.Dump = os.Stderr
	}

	if !gltf.Export(store, options, logger, outputPath) {
		return 1
	}

	if *checksum {
		hash, err := gltf.HashContainerFile(outputPath)
		if err != nil {
			logger.Error("hashing container", "error", err)
			return 1
		}
		fmt.Printf("%s  %s\n", hash, outputPath)
	}

	return 0
}

// loadConfig resolves the effective configuration: an explicit --config
// path, else GLBFORGE_CONFIG if set, else the built-in defaults.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	if os.Getenv("GLBFORGE_CONFIG") != "" {
		return config.Load()
	}
	return config.Default(), nil
}
