package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/qmllink/app"
	"github.com/ludo-technologies/qmllink/domain"
	"github.com/ludo-technologies/qmllink/service"
)

var (
	functionsOutputFormat string
	functionsOutputPath   string
	functionsConfigPath   string
	functionsNoRecursive  bool
	functionsNoCache      bool
	functionsNoDocs       bool
	functionsNoProgress   bool
)

func functionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "functions [path...]",
		Short: "Extract top-level function declarations from script files",
		Long: `Extract top-level function declarations and their documentation
from JavaScript modules.

Only declarations anchored at the start of a line are reported; nested and
indented declarations are skipped. Documentation blocks immediately above a
declaration contribute description, parameter and return-type metadata.

Examples:
  qmllink functions src/
  qmllink functions --format json helpers.js
  qmllink functions --no-docs --output report.txt src/`,
		Args: cobra.MinimumNArgs(1),
		RunE: runFunctions,
	}

	cmd.Flags().StringVarP(&functionsOutputFormat, "format", "f", "text",
		"Output format: text, json, yaml")
	cmd.Flags().StringVarP(&functionsOutputPath, "output", "o", "",
		"Output file path (default: stdout)")
	cmd.Flags().StringVarP(&functionsConfigPath, "config", "c", "",
		"Config file path")
	cmd.Flags().BoolVar(&functionsNoRecursive, "no-recursive", false,
		"Do not descend into directories")
	cmd.Flags().BoolVar(&functionsNoCache, "no-cache", false,
		"Bypass the function cache")
	cmd.Flags().BoolVar(&functionsNoDocs, "no-docs", false,
		"Omit documentation from output")
	cmd.Flags().BoolVar(&functionsNoProgress, "no-progress", false,
		"Disable progress reporting")

	return cmd
}

func runFunctions(cmd *cobra.Command, args []string) (err error) {
	format, err := parseOutputFormat(functionsOutputFormat)
	if err != nil {
		return err
	}

	cfg := loadConfigFor(functionsConfigPath, args[0])

	writer, closeOutput, err := openOutput(functionsOutputPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeOutput(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	reader := service.NewContentReader()
	var cache domain.FunctionCache
	if cfg.Resolve.CacheEnabled && !functionsNoCache {
		cache = service.NewFunctionCache()
	}

	showProgress := !functionsNoProgress && format == domain.OutputFormatText && functionsOutputPath == ""
	pm := service.NewProgressManager(showProgress)
	defer pm.Close()

	svc := service.NewFunctionServiceWithProgress(reader, cache, pm)
	uc := app.NewFunctionsUseCase(svc)

	req := domain.FunctionsRequest{
		Paths:           args,
		Recursive:       !functionsNoRecursive,
		ExcludePatterns: cfg.Workspace.ExcludePatterns,
		NoCache:         functionsNoCache,
		OutputFormat:    format,
		ShowDocs:        cfg.Output.ShowDocs && !functionsNoDocs,
	}

	response, err := uc.Execute(context.Background(), req)
	if err != nil {
		return err
	}

	formatter := service.NewOutputFormatter()
	return formatter.WriteFunctions(response, format, writer, req.ShowDocs)
}
