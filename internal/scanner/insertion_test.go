package scanner

import (
	"strings"
	"testing"

	"github.com/ludo-technologies/qmllink/domain"
)

func TestPlanImportInsertion_EmptyDocument(t *testing.T) {
	point := PlanImportInsertion("")
	want := domain.ImportInsertionPoint{Line: 0, NeedsBlankLine: false, NeedsTrailingBlankLine: false}
	if point != want {
		t.Errorf("Expected %+v, got %+v", want, point)
	}
}

func TestPlanImportInsertion_NoImports(t *testing.T) {
	source := "Rectangle {\n    width: 100\n}"

	point := PlanImportInsertion(source)
	if point.Line != 0 {
		t.Errorf("Expected insertion at top, got line %d", point.Line)
	}
	if point.NeedsBlankLine {
		t.Error("No leading blank line expected at document top")
	}
	if !point.NeedsTrailingBlankLine {
		t.Error("Expected trailing blank line before existing content")
	}
}

func TestPlanImportInsertion_OrdinaryImportOnly(t *testing.T) {
	point := PlanImportInsertion("import QtQuick 2.15")
	want := domain.ImportInsertionPoint{Line: 1, NeedsBlankLine: true, NeedsTrailingBlankLine: true}
	if point != want {
		t.Errorf("Expected %+v, got %+v", want, point)
	}
}

func TestPlanImportInsertion_OrdinaryImportWithBlankAfter(t *testing.T) {
	source := "import QtQuick 2.15\n\nRectangle {}"

	point := PlanImportInsertion(source)
	if point.Line != 2 {
		t.Errorf("Expected insertion after existing blank line, got %d", point.Line)
	}
	if point.NeedsBlankLine {
		t.Error("Existing blank line should not be duplicated")
	}
	if !point.NeedsTrailingBlankLine {
		t.Error("Expected trailing blank line before body")
	}
}

func TestPlanImportInsertion_ExistingScriptImport(t *testing.T) {
	source := "import QtQuick 2.15\n\nimport \"a.js\" as A\n\nRectangle {}"

	point := PlanImportInsertion(source)
	if point.Line != 3 {
		t.Errorf("Expected insertion after last script import, got %d", point.Line)
	}
	if point.NeedsBlankLine {
		t.Error("Appending to a script-import block needs no leading blank")
	}
	if point.NeedsTrailingBlankLine {
		t.Error("Blank line already follows the block")
	}
}

func TestPlanImportInsertion_ScriptImportAtEnd(t *testing.T) {
	source := "import \"a.js\" as A"

	point := PlanImportInsertion(source)
	if point.Line != 1 {
		t.Errorf("Expected insertion after script import, got %d", point.Line)
	}
	if !point.NeedsTrailingBlankLine {
		t.Error("Expected trailing blank line when none follows")
	}
}

func TestApplyImportInsertion_RoundTrip(t *testing.T) {
	sources := []string{
		"",
		"Rectangle {\n    width: 100\n}",
		"import QtQuick 2.15",
		"import QtQuick 2.15\n\nRectangle {}",
		"import QtQuick 2.15\n\nimport \"a.js\" as A\n\nRectangle {}",
		"import \"a.js\" as A",
	}

	for _, source := range sources {
		point := PlanImportInsertion(source)
		statement := FormatImportStatement("./new-helper.js", "NewHelperJS")
		updated := ApplyImportInsertion(source, statement, point)

		count := 0
		for _, imp := range ExtractImports(updated) {
			if imp.Alias == "NewHelperJS" {
				if imp.File != "./new-helper.js" {
					t.Errorf("Unexpected file for new alias: %s", imp.File)
				}
				count++
			}
		}
		if count != 1 {
			t.Errorf("Expected exactly one new import in %q, got %d", updated, count)
		}

		// Prior imports survive insertion.
		if strings.Contains(source, "\"a.js\"") && !strings.Contains(updated, "import \"a.js\" as A") {
			t.Errorf("Existing import lost in %q", updated)
		}
	}
}

func TestApplyImportInsertion_BlankLinePlacement(t *testing.T) {
	source := "import QtQuick 2.15\nRectangle {}"
	point := PlanImportInsertion(source)
	updated := ApplyImportInsertion(source, FormatImportStatement("./u.js", "UJS"), point)

	want := "import QtQuick 2.15\n\nimport \"./u.js\" as UJS\n\nRectangle {}"
	if updated != want {
		t.Errorf("Unexpected document:\n%q\nwant:\n%q", updated, want)
	}
}

func TestFormatImportStatement(t *testing.T) {
	got := FormatImportStatement("../helpers/account-helper.js", "AccountHelperJS")
	want := `import "../helpers/account-helper.js" as AccountHelperJS`
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
