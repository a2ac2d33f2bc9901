package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/qmllink/app"
	"github.com/ludo-technologies/qmllink/domain"
	"github.com/ludo-technologies/qmllink/service"
)

var (
	resolveOutputFormat string
	resolveOutputPath   string
)

func resolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <document.qml> <Alias>",
		Short: "Resolve an import alias to its script file",
		Long: `Resolve an alias used in a QML document to the absolute path of the
script module it denotes. When the same alias is bound more than once, the
first import wins.

Examples:
  qmllink resolve Main.qml AccountHelperJS
  qmllink resolve --format json Main.qml UtilJS`,
		Args: cobra.ExactArgs(2),
		RunE: runResolve,
	}

	cmd.Flags().StringVarP(&resolveOutputFormat, "format", "f", "text",
		"Output format: text, json, yaml")
	cmd.Flags().StringVarP(&resolveOutputPath, "output", "o", "",
		"Output file path (default: stdout)")

	return cmd
}

func runResolve(cmd *cobra.Command, args []string) (err error) {
	format, err := parseOutputFormat(resolveOutputFormat)
	if err != nil {
		return err
	}

	writer, closeOutput, err := openOutput(resolveOutputPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeOutput(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	reader := service.NewContentReader()
	functions := service.NewFunctionService(reader)
	uc := app.NewResolveUseCase(service.NewResolverService(reader, functions))

	response, err := uc.Execute(context.Background(), domain.ResolveRequest{
		DocumentPath: args[0],
		Alias:        args[1],
		OutputFormat: format,
	})
	if err != nil {
		return err
	}

	return service.NewOutputFormatter().WriteResolve(response, format, writer)
}

var (
	describeOutputFormat string
	describeOutputPath   string
)

func describeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <document.qml> <Alias> <function>",
		Short: "Show hover-style information for alias.function",
		Long: `Resolve alias.function through a QML document's imports and print the
declaration signature, normalized types and documentation.

Examples:
  qmllink describe Main.qml AccountHelperJS createAccount`,
		Args: cobra.ExactArgs(3),
		RunE: runDescribe,
	}

	cmd.Flags().StringVarP(&describeOutputFormat, "format", "f", "text",
		"Output format: text, json, yaml")
	cmd.Flags().StringVarP(&describeOutputPath, "output", "o", "",
		"Output file path (default: stdout)")

	return cmd
}

func runDescribe(cmd *cobra.Command, args []string) (err error) {
	format, err := parseOutputFormat(describeOutputFormat)
	if err != nil {
		return err
	}

	writer, closeOutput, err := openOutput(describeOutputPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeOutput(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	reader := service.NewContentReader()
	functions := service.NewFunctionService(reader)
	uc := app.NewResolveUseCase(service.NewResolverService(reader, functions))

	response, err := uc.Describe(context.Background(), domain.DescribeRequest{
		DocumentPath: args[0],
		Alias:        args[1],
		FunctionName: args[2],
		OutputFormat: format,
	})
	if err != nil {
		return err
	}

	return service.NewOutputFormatter().WriteDescribe(response, format, writer)
}
