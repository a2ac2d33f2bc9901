package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/qmllink/app"
	"github.com/ludo-technologies/qmllink/domain"
	"github.com/ludo-technologies/qmllink/service"
)

var (
	insertOutputFormat string
	insertAlias        string
	insertWrite        bool
)

func insertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insert <document.qml> <script.js>",
		Short: "Plan (and optionally apply) a script import insertion",
		Long: `Compute where a new script import belongs in a QML document: script
imports follow ordinary imports, separated by a single blank line, without
introducing duplicate blanks. By default only the plan is printed; --write
applies it to the document.

Examples:
  qmllink insert Main.qml helpers/account-helper.js
  qmllink insert --alias Accounts --write Main.qml account.js`,
		Args: cobra.ExactArgs(2),
		RunE: runInsert,
	}

	cmd.Flags().StringVarP(&insertOutputFormat, "format", "f", "text",
		"Output format: text, json, yaml")
	cmd.Flags().StringVar(&insertAlias, "alias", "",
		"Alias for the import (default: derived from the file name)")
	cmd.Flags().BoolVar(&insertWrite, "write", false,
		"Write the updated document back to disk")

	return cmd
}

func runInsert(cmd *cobra.Command, args []string) error {
	format, err := parseOutputFormat(insertOutputFormat)
	if err != nil {
		return err
	}

	uc := app.NewInsertUseCase(service.NewContentReader())

	response, err := uc.Execute(context.Background(), domain.InsertRequest{
		DocumentPath: args[0],
		ScriptPath:   args[1],
		Alias:        insertAlias,
		Write:        insertWrite,
		OutputFormat: format,
	})
	if err != nil {
		return err
	}

	return service.NewOutputFormatter().WriteInsert(response, format, cmd.OutOrStdout())
}
