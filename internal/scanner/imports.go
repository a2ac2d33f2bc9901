// Package scanner implements line-level extraction of import declarations,
// function declarations and documentation blocks. It deliberately builds no
// AST: input is scanned line by line and malformed source degrades to
// partial or empty results.
package scanner

import (
	"regexp"

	"github.com/ludo-technologies/qmllink/domain"
)

// importPattern matches script-module import declarations in markup source:
//
//	import "<path ending in .js>" as <Alias>
//
// The keywords are case-sensitive and the path must be double-quoted.
var importPattern = regexp.MustCompile(`import\s+"([^"]+\.js)"\s+as\s+([A-Za-z_][A-Za-z0-9_]*)`)

// ExtractImports returns every script-module import in source, in document
// order, duplicates preserved. Any input yields zero or more records; there
// is no failure mode.
func ExtractImports(source string) []domain.Import {
	matches := importPattern.FindAllStringSubmatch(source, -1)
	imports := make([]domain.Import, 0, len(matches))
	for _, m := range matches {
		imports = append(imports, domain.Import{File: m[1], Alias: m[2]})
	}
	return imports
}

// FindImport returns the first import bound to alias. First match wins when
// a document binds the same alias more than once.
func FindImport(source, alias string) (domain.Import, bool) {
	for _, imp := range ExtractImports(source) {
		if imp.Alias == alias {
			return imp, true
		}
	}
	return domain.Import{}, false
}

// HasAlias reports whether the document already binds the given alias.
func HasAlias(source, alias string) bool {
	_, ok := FindImport(source, alias)
	return ok
}
