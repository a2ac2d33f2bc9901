package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/qmllink/internal/scanner"
	"github.com/ludo-technologies/qmllink/service"
)

var (
	importsOutputFormat string
	importsOutputPath   string
)

func importsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "imports <document.qml>",
		Short: "List script-module imports of a QML document",
		Long: `List every 'import "<file>.js" as <Alias>' declaration in a QML
document, in document order.

Examples:
  qmllink imports Main.qml
  qmllink imports --format json Main.qml`,
		Args: cobra.ExactArgs(1),
		RunE: runImports,
	}

	cmd.Flags().StringVarP(&importsOutputFormat, "format", "f", "text",
		"Output format: text, json, yaml")
	cmd.Flags().StringVarP(&importsOutputPath, "output", "o", "",
		"Output file path (default: stdout)")

	return cmd
}

func runImports(cmd *cobra.Command, args []string) (err error) {
	format, err := parseOutputFormat(importsOutputFormat)
	if err != nil {
		return err
	}

	text, ok := service.NewContentReader().Read(args[0])
	if !ok {
		return fmt.Errorf("cannot read document: %s", args[0])
	}

	writer, closeOutput, err := openOutput(importsOutputPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeOutput(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	imports := scanner.ExtractImports(text)
	switch format {
	case "json":
		return service.WriteJSON(writer, imports)
	case "yaml":
		return service.WriteYAML(writer, imports)
	default:
		if len(imports) == 0 {
			fmt.Fprintln(writer, "no script imports")
			return nil
		}
		for _, imp := range imports {
			fmt.Fprintf(writer, "import %q as %s\n", imp.File, imp.Alias)
		}
	}

	if importsOutputPath != "" {
		fmt.Fprintf(os.Stderr, "Output saved to: %s\n", importsOutputPath)
	}
	return nil
}
