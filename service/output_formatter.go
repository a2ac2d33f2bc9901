package service

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ludo-technologies/qmllink/domain"
	"github.com/ludo-technologies/qmllink/internal/typemap"
)

// OutputFormatterImpl renders responses as text, JSON or YAML
type OutputFormatterImpl struct{}

// NewOutputFormatter creates a new output formatter
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// WriteJSON writes data as indented JSON to the writer
func WriteJSON(writer io.Writer, data interface{}) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteYAML writes data as YAML to the writer
func WriteYAML(writer io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(writer)
	defer encoder.Close()
	return encoder.Encode(data)
}

// writeStructured handles the JSON/YAML formats shared by every response
func writeStructured(writer io.Writer, format domain.OutputFormat, data interface{}) (bool, error) {
	switch format {
	case domain.OutputFormatJSON:
		return true, WriteJSON(writer, data)
	case domain.OutputFormatYAML:
		return true, WriteYAML(writer, data)
	default:
		return false, nil
	}
}

// WriteFunctions writes a functions response in the specified format
func (f *OutputFormatterImpl) WriteFunctions(response *domain.FunctionsResponse, format domain.OutputFormat, writer io.Writer, showDocs bool) error {
	if done, err := writeStructured(writer, format, response); done {
		return err
	}
	if format != domain.OutputFormatText {
		return domain.NewUnsupportedFormatError(string(format))
	}

	for _, file := range response.Files {
		fmt.Fprintf(writer, "%s\n", file.Path)
		if len(file.Functions) == 0 {
			fmt.Fprintf(writer, "  (no top-level functions)\n")
		}
		for _, fn := range file.Functions {
			fmt.Fprintf(writer, "  %s(%s) -> %s\n", fn.Name, strings.Join(fn.Params, ", "), typemap.Normalize(fn.ReturnType))
			if !showDocs {
				continue
			}
			if fn.Documentation != "" {
				fmt.Fprintf(writer, "      %s\n", fn.Documentation)
			}
			for _, p := range fn.ParamDocs {
				line := fmt.Sprintf("      @param {%s} %s", typemap.Normalize(p.Type), p.Name)
				if p.Description != "" {
					line += " - " + p.Description
				}
				fmt.Fprintf(writer, "%s\n", line)
			}
		}
	}

	writeDiagnostics(writer, response.Warnings, response.Errors)
	return nil
}

// WriteResolve writes a resolution response in the specified format
func (f *OutputFormatterImpl) WriteResolve(response *domain.ResolveResponse, format domain.OutputFormat, writer io.Writer) error {
	if done, err := writeStructured(writer, format, response); done {
		return err
	}
	if format != domain.OutputFormatText {
		return domain.NewUnsupportedFormatError(string(format))
	}

	if response.Found {
		fmt.Fprintf(writer, "%s -> %s\n", response.Alias, response.ResolvedPath)
	} else {
		fmt.Fprintf(writer, "%s: not found\n", response.Alias)
	}
	if len(response.Imports) > 0 {
		fmt.Fprintf(writer, "\nImports:\n")
		for _, imp := range response.Imports {
			fmt.Fprintf(writer, "  import %q as %s\n", imp.File, imp.Alias)
		}
	}
	return nil
}

// WriteDescribe writes a describe response in the specified format
func (f *OutputFormatterImpl) WriteDescribe(response *domain.DescribeResponse, format domain.OutputFormat, writer io.Writer) error {
	if done, err := writeStructured(writer, format, response); done {
		return err
	}
	if format != domain.OutputFormatText {
		return domain.NewUnsupportedFormatError(string(format))
	}

	if !response.Found {
		fmt.Fprintf(writer, "not found\n")
		return nil
	}

	fn := response.Function
	fmt.Fprintf(writer, "%s(%s) -> %s\n", fn.Name, strings.Join(fn.Params, ", "), response.NormalizedReturnType)
	fmt.Fprintf(writer, "Defined in: %s\n", response.SourcePath)
	if fn.Documentation != "" {
		fmt.Fprintf(writer, "\n%s\n", fn.Documentation)
	}
	for i, p := range fn.ParamDocs {
		line := fmt.Sprintf("  @param {%s} %s", response.NormalizedParamTypes[i], p.Name)
		if p.Description != "" {
			line += " - " + p.Description
		}
		fmt.Fprintf(writer, "%s\n", line)
	}
	return nil
}

// WriteSuggest writes an auto-import response in the specified format
func (f *OutputFormatterImpl) WriteSuggest(response *domain.SuggestResponse, format domain.OutputFormat, writer io.Writer) error {
	if done, err := writeStructured(writer, format, response); done {
		return err
	}
	if format != domain.OutputFormatText {
		return domain.NewUnsupportedFormatError(string(format))
	}

	if !response.Triggered {
		fmt.Fprintf(writer, "no suggestions for %q\n", response.Identifier)
		return nil
	}
	if len(response.Matches) == 0 {
		fmt.Fprintf(writer, "no matches for %q\n", response.Identifier)
		return nil
	}

	for _, m := range response.Matches {
		fmt.Fprintf(writer, "import %q as %s\n", m.RelativePath, m.Alias)
	}
	writeDiagnostics(writer, response.Warnings, nil)
	return nil
}

// WriteInsert writes an insertion response in the specified format
func (f *OutputFormatterImpl) WriteInsert(response *domain.InsertResponse, format domain.OutputFormat, writer io.Writer) error {
	if done, err := writeStructured(writer, format, response); done {
		return err
	}
	if format != domain.OutputFormatText {
		return domain.NewUnsupportedFormatError(string(format))
	}

	fmt.Fprintf(writer, "%s\n", response.Statement)
	fmt.Fprintf(writer, "Insert at line %d (blank before: %t, blank after: %t)\n",
		response.Point.Line, response.Point.NeedsBlankLine, response.Point.NeedsTrailingBlankLine)
	if response.Written {
		fmt.Fprintf(writer, "Written to document\n")
	}
	return nil
}

// WriteReferences writes a reference search response in the specified format
func (f *OutputFormatterImpl) WriteReferences(response *domain.ReferencesResponse, format domain.OutputFormat, writer io.Writer) error {
	if done, err := writeStructured(writer, format, response); done {
		return err
	}
	if format != domain.OutputFormatText {
		return domain.NewUnsupportedFormatError(string(format))
	}

	for _, ref := range response.References {
		fmt.Fprintf(writer, "%s:%d:%d: %s\n", ref.File, ref.Line, ref.Column, ref.Text)
	}
	fmt.Fprintf(writer, "\n%d references in %d files scanned\n", len(response.References), response.FilesScanned)
	writeDiagnostics(writer, response.Warnings, nil)
	return nil
}

func writeDiagnostics(writer io.Writer, warnings, errors []string) {
	for _, w := range warnings {
		fmt.Fprintf(writer, "Warning: %s\n", w)
	}
	for _, e := range errors {
		fmt.Fprintf(writer, "Error: %s\n", e)
	}
}
