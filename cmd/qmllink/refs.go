package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/qmllink/domain"
	"github.com/ludo-technologies/qmllink/service"
)

var (
	refsOutputFormat string
	refsOutputPath   string
	refsConfigPath   string
	refsRoot         string
	refsMaxFiles     int
	refsNoProgress   bool
)

func refsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refs <script.js> <function>",
		Short: "Find markup-side references to a script function",
		Long: `Search QML documents across the workspace for usages of a script
function, through whatever alias each document binds the script to.

Documents are scanned in parallel; unreadable files are skipped with a
warning and never abort the search.

Examples:
  qmllink refs helpers/account-helper.js createAccount
  qmllink refs --root . --format json util.js formatDate`,
		Args: cobra.ExactArgs(2),
		RunE: runRefs,
	}

	cmd.Flags().StringVarP(&refsOutputFormat, "format", "f", "text",
		"Output format: text, json, yaml")
	cmd.Flags().StringVarP(&refsOutputPath, "output", "o", "",
		"Output file path (default: stdout)")
	cmd.Flags().StringVarP(&refsConfigPath, "config", "c", "",
		"Config file path")
	cmd.Flags().StringVar(&refsRoot, "root", "",
		"Workspace root for document enumeration (default: script directory)")
	cmd.Flags().IntVar(&refsMaxFiles, "max-files", 0,
		"Maximum documents scanned (0 = configured bound)")
	cmd.Flags().BoolVar(&refsNoProgress, "no-progress", false,
		"Disable progress reporting")

	return cmd
}

func runRefs(cmd *cobra.Command, args []string) (err error) {
	format, err := parseOutputFormat(refsOutputFormat)
	if err != nil {
		return err
	}

	cfg := loadConfigFor(refsConfigPath, args[0])

	writer, closeOutput, err := openOutput(refsOutputPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeOutput(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	showProgress := !refsNoProgress && format == domain.OutputFormatText && refsOutputPath == ""
	pm := service.NewProgressManager(showProgress)
	defer pm.Close()

	reader := service.NewContentReader()
	finder := service.NewWorkspaceFinder(&cfg.Workspace)
	executor := service.NewParallelExecutorWithProgress(&cfg.Performance, pm)
	svc := service.NewReferenceService(reader, finder, executor)

	response, err := svc.Search(context.Background(), domain.ReferencesRequest{
		ScriptPath:    args[0],
		FunctionName:  args[1],
		WorkspaceRoot: refsRoot,
		MaxFiles:      refsMaxFiles,
		OutputFormat:  format,
	})
	if err != nil {
		return err
	}

	return service.NewOutputFormatter().WriteReferences(response, format, writer)
}
