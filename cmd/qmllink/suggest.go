package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/qmllink/app"
	"github.com/ludo-technologies/qmllink/domain"
	"github.com/ludo-technologies/qmllink/service"
)

var (
	suggestOutputFormat string
	suggestOutputPath   string
	suggestConfigPath   string
	suggestRoot         string
	suggestMax          int
)

func suggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest <document.qml> <Identifier>",
		Short: "Propose auto-imports for a typed identifier",
		Long: `Propose script-module imports whose generated alias matches a typed
identifier. Suggestions trigger for identifiers of at least 2 characters
beginning with an uppercase letter that are not already bound by an import.

Candidates come from workspace enumeration, bounded to keep latency
predictable; matches keep enumeration order.

Examples:
  qmllink suggest Main.qml Acco
  qmllink suggest --root src/ Main.qml Util`,
		Args: cobra.ExactArgs(2),
		RunE: runSuggest,
	}

	cmd.Flags().StringVarP(&suggestOutputFormat, "format", "f", "text",
		"Output format: text, json, yaml")
	cmd.Flags().StringVarP(&suggestOutputPath, "output", "o", "",
		"Output file path (default: stdout)")
	cmd.Flags().StringVarP(&suggestConfigPath, "config", "c", "",
		"Config file path")
	cmd.Flags().StringVar(&suggestRoot, "root", "",
		"Workspace root for candidate enumeration (default: document directory)")
	cmd.Flags().IntVar(&suggestMax, "max", 0,
		"Maximum candidate files enumerated (0 = configured bound)")

	return cmd
}

func runSuggest(cmd *cobra.Command, args []string) (err error) {
	format, err := parseOutputFormat(suggestOutputFormat)
	if err != nil {
		return err
	}

	cfg := loadConfigFor(suggestConfigPath, args[0])

	writer, closeOutput, err := openOutput(suggestOutputPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeOutput(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	reader := service.NewContentReader()
	finder := service.NewWorkspaceFinder(&cfg.Workspace)
	uc := app.NewSuggestUseCase(service.NewAutoImportService(reader, finder, &cfg.Resolve))

	response, err := uc.Execute(context.Background(), domain.SuggestRequest{
		DocumentPath:  args[0],
		Identifier:    args[1],
		WorkspaceRoot: suggestRoot,
		MaxCandidates: suggestMax,
		OutputFormat:  format,
	})
	if err != nil {
		return err
	}

	return service.NewOutputFormatter().WriteSuggest(response, format, writer)
}
