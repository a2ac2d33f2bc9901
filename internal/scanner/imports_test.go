package scanner

import (
	"testing"
)

func TestExtractImports_NoImports(t *testing.T) {
	sources := []string{
		"",
		"import QtQuick 2.15",
		"Rectangle { width: 100 }",
		`import "style.css" as Style`,
		`import helpers.js as Helpers`,
	}

	for _, source := range sources {
		imports := ExtractImports(source)
		if len(imports) != 0 {
			t.Errorf("Expected no imports for %q, got %d", source, len(imports))
		}
	}
}

func TestExtractImports_DocumentOrder(t *testing.T) {
	source := "import \"a.js\" as A\nimport \"b.js\" as B"

	imports := ExtractImports(source)
	if len(imports) != 2 {
		t.Fatalf("Expected 2 imports, got %d", len(imports))
	}
	if imports[0].File != "a.js" || imports[0].Alias != "A" {
		t.Errorf("Unexpected first import: %+v", imports[0])
	}
	if imports[1].File != "b.js" || imports[1].Alias != "B" {
		t.Errorf("Unexpected second import: %+v", imports[1])
	}
}

func TestExtractImports_PreservesDuplicates(t *testing.T) {
	source := "import \"a.js\" as A\nimport \"b.js\" as A\nimport \"a.js\" as A"

	imports := ExtractImports(source)
	if len(imports) != 3 {
		t.Fatalf("Expected 3 imports, got %d", len(imports))
	}
}

func TestExtractImports_MixedWithMarkup(t *testing.T) {
	source := `import QtQuick 2.15
import "../helpers/account-helper.js" as AccountHelperJS

Rectangle {
    width: 100
}`

	imports := ExtractImports(source)
	if len(imports) != 1 {
		t.Fatalf("Expected 1 import, got %d", len(imports))
	}
	if imports[0].File != "../helpers/account-helper.js" {
		t.Errorf("Unexpected file: %s", imports[0].File)
	}
	if imports[0].Alias != "AccountHelperJS" {
		t.Errorf("Unexpected alias: %s", imports[0].Alias)
	}
}

func TestExtractImports_MalformedInput(t *testing.T) {
	// Malformed declarations are skipped, never an error.
	sources := []string{
		`import "unterminated.js as X`,
		`import "a.js"`,
		`import "a.js" as`,
		"import \"\x00broken\" as Y",
	}

	for _, source := range sources {
		imports := ExtractImports(source)
		if len(imports) != 0 {
			t.Errorf("Expected no imports for malformed %q, got %+v", source, imports)
		}
	}
}

func TestFindImport_FirstMatchWins(t *testing.T) {
	source := "import \"first.js\" as A\nimport \"second.js\" as A"

	imp, ok := FindImport(source, "A")
	if !ok {
		t.Fatal("Expected to find alias A")
	}
	if imp.File != "first.js" {
		t.Errorf("Expected first binding to win, got %s", imp.File)
	}
}

func TestFindImport_NotFound(t *testing.T) {
	_, ok := FindImport("import \"a.js\" as A", "B")
	if ok {
		t.Error("Should not find unbound alias")
	}
}

func TestHasAlias(t *testing.T) {
	source := "import \"a.js\" as A"

	if !HasAlias(source, "A") {
		t.Error("Expected alias A to be bound")
	}
	if HasAlias(source, "B") {
		t.Error("Expected alias B to be unbound")
	}
}
