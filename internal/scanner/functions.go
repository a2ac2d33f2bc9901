package scanner

import (
	"regexp"
	"strings"

	"github.com/ludo-technologies/qmllink/domain"
)

// functionPattern matches top-level function declarations anchored at the
// start of a line. Indented and nested declarations are intentionally not
// matched, bounding the cost of scanning.
var functionPattern = regexp.MustCompile(`^function\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*\(([^)]*)\)`)

// ExtractFunctions scans script source line by line and returns every
// top-level function declaration in file order, with its documentation
// attached. Duplicate names are preserved; downstream first-match lookups
// resolve to the earliest declaration.
func ExtractFunctions(source string) []domain.FunctionInfo {
	lines := strings.Split(source, "\n")
	var functions []domain.FunctionInfo

	for i, line := range lines {
		m := functionPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		doc := extractDocumentation(lines, i)
		functions = append(functions, domain.FunctionInfo{
			Name:          m[1],
			Params:        splitParams(m[2]),
			ParamDocs:     doc.Params,
			ReturnType:    doc.ReturnType,
			Documentation: doc.Description,
		})
	}

	return functions
}

// FindFunction returns the first declaration with the given name.
func FindFunction(source, name string) (domain.FunctionInfo, bool) {
	for _, fn := range ExtractFunctions(source) {
		if fn.Name == name {
			return fn, true
		}
	}
	return domain.FunctionInfo{}, false
}

// splitParams splits a raw signature parameter list on commas, trimming
// each entry and dropping empty ones.
func splitParams(raw string) []string {
	parts := strings.Split(raw, ",")
	params := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			params = append(params, p)
		}
	}
	return params
}
