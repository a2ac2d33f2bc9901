package scanner

import (
	"testing"
)

func TestExtractFunctions_FullDocBlock(t *testing.T) {
	source := `/**
 * Creates a new account.
 * @param {string} name - Account holder name
 * @param {number} balance - Opening balance
 * @returns {Object} the created account
 */
function createAccount(name, balance) {
}`

	functions := ExtractFunctions(source)
	if len(functions) != 1 {
		t.Fatalf("Expected 1 function, got %d", len(functions))
	}

	fn := functions[0]
	if fn.Documentation != "Creates a new account." {
		t.Errorf("Unexpected documentation: %q", fn.Documentation)
	}
	if fn.ReturnType != "Object" {
		t.Errorf("Expected return type Object, got %s", fn.ReturnType)
	}
	if len(fn.ParamDocs) != 2 {
		t.Fatalf("Expected 2 param docs, got %d", len(fn.ParamDocs))
	}
	if fn.ParamDocs[0].Type != "string" || fn.ParamDocs[0].Name != "name" ||
		fn.ParamDocs[0].Description != "Account holder name" {
		t.Errorf("Unexpected first param doc: %+v", fn.ParamDocs[0])
	}
	if fn.ParamDocs[1].Type != "number" || fn.ParamDocs[1].Name != "balance" {
		t.Errorf("Unexpected second param doc: %+v", fn.ParamDocs[1])
	}
}

func TestExtractFunctions_BlankLineBreaksAdjacency(t *testing.T) {
	source := `/**
 * Not attached to anything below.
 */

function orphan() {
}`

	functions := ExtractFunctions(source)
	if len(functions) != 1 {
		t.Fatalf("Expected 1 function, got %d", len(functions))
	}
	if functions[0].Documentation != "" {
		t.Errorf("Blank line should detach the block, got %q", functions[0].Documentation)
	}
	if functions[0].ReturnType != "any" {
		t.Errorf("Expected default return type, got %s", functions[0].ReturnType)
	}
}

func TestExtractFunctions_SingleLineDocBlock(t *testing.T) {
	source := `/** Adds two numbers. */
function add(a, b) {}`

	functions := ExtractFunctions(source)
	if len(functions) != 1 {
		t.Fatalf("Expected 1 function, got %d", len(functions))
	}
	if functions[0].Documentation != "Adds two numbers." {
		t.Errorf("Unexpected documentation: %q", functions[0].Documentation)
	}
}

func TestExtractFunctions_DocSkipsDecoratorLines(t *testing.T) {
	// Non-blank lines between the block and the declaration are skipped.
	source := `/**
 * Documented despite annotation line.
 */
// eslint-disable-next-line
function decorated() {}`

	functions := ExtractFunctions(source)
	if len(functions) != 1 {
		t.Fatalf("Expected 1 function, got %d", len(functions))
	}
	if functions[0].Documentation != "Documented despite annotation line." {
		t.Errorf("Unexpected documentation: %q", functions[0].Documentation)
	}
}

func TestParseDocBlock_ParamDefaults(t *testing.T) {
	cases := []struct {
		line  string
		typ   string
		name  string
		descr string
	}{
		{" * @param name", "any", "name", ""},
		{" * @param {string} name", "string", "name", ""},
		{" * @param name - the name", "any", "name", "the name"},
		{" * @param {} name", "any", "name", ""},
	}

	for _, c := range cases {
		doc := parseDocBlock([]string{"/**", c.line, " */"})
		if len(doc.Params) != 1 {
			t.Fatalf("Expected 1 param for %q, got %d", c.line, len(doc.Params))
		}
		p := doc.Params[0]
		if p.Type != c.typ || p.Name != c.name || p.Description != c.descr {
			t.Errorf("For %q got %+v, want {%s %s %s}", c.line, p, c.typ, c.name, c.descr)
		}
	}
}

func TestParseDocBlock_FirstReturnsWins(t *testing.T) {
	doc := parseDocBlock([]string{
		"/**",
		" * @returns {string}",
		" * @returns {number}",
		" */",
	})
	if doc.ReturnType != "string" {
		t.Errorf("Expected first @returns annotation to win, got %s", doc.ReturnType)
	}
}

func TestParseDocBlock_ReturnWithoutType(t *testing.T) {
	doc := parseDocBlock([]string{
		"/**",
		" * @return something useful",
		" */",
	})
	if doc.ReturnType != "any" {
		t.Errorf("Expected default return type, got %s", doc.ReturnType)
	}
}

func TestParseDocBlock_DescriptionEndsAtFirstTag(t *testing.T) {
	doc := parseDocBlock([]string{
		"/**",
		" * First line.",
		" * Second line.",
		" * @param {string} x",
		" * Trailing free text is not description.",
		" */",
	})
	if doc.Description != "First line. Second line." {
		t.Errorf("Unexpected description: %q", doc.Description)
	}
}

func TestParseDocBlock_UnknownTagsIgnored(t *testing.T) {
	doc := parseDocBlock([]string{
		"/**",
		" * Does a thing.",
		" * @deprecated use other",
		" * @param {int} n",
		" */",
	})
	if doc.Description != "Does a thing." {
		t.Errorf("Unexpected description: %q", doc.Description)
	}
	if len(doc.Params) != 1 || doc.Params[0].Type != "int" {
		t.Errorf("Unknown tags should not swallow later params: %+v", doc.Params)
	}
}

func TestExtractDocumentation_MissingTerminator(t *testing.T) {
	lines := []string{
		"var x = 1;",
		"function f() {}",
	}
	doc := extractDocumentation(lines, 1)
	if doc.Description != "" || len(doc.Params) != 0 || doc.ReturnType != "any" {
		t.Errorf("Expected all-default block, got %+v", doc)
	}
}

func TestExtractDocumentation_FileStart(t *testing.T) {
	doc := extractDocumentation([]string{"function f() {}"}, 0)
	if doc.ReturnType != "any" {
		t.Errorf("Expected default block at file start, got %+v", doc)
	}
}
