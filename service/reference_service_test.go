package service

import (
	"context"
	"testing"

	"github.com/ludo-technologies/qmllink/domain"
	"github.com/ludo-technologies/qmllink/internal/testutil"
)

func newReferenceForTest() *ReferenceServiceImpl {
	reader := NewContentReader()
	return NewReferenceService(reader, NewWorkspaceFinder(nil), NewParallelExecutor())
}

func TestSearch_FindsUsages(t *testing.T) {
	dir := t.TempDir()
	script := testutil.WriteFile(t, dir, "util.js", "function formatDate(d) {}\n")
	testutil.WriteFile(t, dir, "Main.qml", `import "util.js" as UtilJS

Rectangle {
    Text { text: UtilJS.formatDate(now) }
}
`)
	testutil.WriteFile(t, dir, "Other.qml", `import "util.js" as Util

Item {
    property string label: Util.formatDate(today)
}
`)
	testutil.WriteFile(t, dir, "Unrelated.qml", "Rectangle {}\n")

	svc := newReferenceForTest()
	response, err := svc.Search(context.Background(), domain.ReferencesRequest{
		ScriptPath:    script,
		FunctionName:  "formatDate",
		WorkspaceRoot: dir,
	})
	testutil.AssertNoError(t, err)

	if response.FilesScanned != 3 {
		t.Errorf("Expected 3 documents scanned, got %d", response.FilesScanned)
	}
	if len(response.References) != 2 {
		t.Fatalf("Expected 2 references, got %+v", response.References)
	}
	for _, ref := range response.References {
		if ref.Line < 1 || ref.Column < 1 {
			t.Errorf("Line and column are one-based: %+v", ref)
		}
		if ref.Text == "" {
			t.Errorf("Reference text should carry the source line: %+v", ref)
		}
	}
}

func TestSearch_AliasMismatchExcluded(t *testing.T) {
	dir := t.TempDir()
	script := testutil.WriteFile(t, dir, "util.js", "function f() {}\n")
	testutil.WriteFile(t, dir, "other.js", "function f() {}\n")
	testutil.WriteFile(t, dir, "Main.qml", `import "other.js" as OtherJS

Item { Component.onCompleted: OtherJS.f() }
`)

	svc := newReferenceForTest()
	response, err := svc.Search(context.Background(), domain.ReferencesRequest{
		ScriptPath:    script,
		FunctionName:  "f",
		WorkspaceRoot: dir,
	})
	testutil.AssertNoError(t, err)

	if len(response.References) != 0 {
		t.Errorf("Usages through an alias bound to a different script must be excluded: %+v", response.References)
	}
}

func TestSearch_WordBoundary(t *testing.T) {
	dir := t.TempDir()
	script := testutil.WriteFile(t, dir, "util.js", "function run(x) {}\n")
	testutil.WriteFile(t, dir, "Main.qml", `import "util.js" as U

Item {
    Component.onCompleted: {
        U.run(1)
        U.runner(2)
        XU.run(3)
    }
}
`)

	svc := newReferenceForTest()
	response, err := svc.Search(context.Background(), domain.ReferencesRequest{
		ScriptPath:    script,
		FunctionName:  "run",
		WorkspaceRoot: dir,
	})
	testutil.AssertNoError(t, err)

	if len(response.References) != 1 {
		t.Fatalf("Expected only the exact alias.function usage, got %+v", response.References)
	}
	if response.References[0].Line != 5 {
		t.Errorf("Expected usage on line 5, got %d", response.References[0].Line)
	}
}

func TestSearch_DuplicateAliasFirstBindingWins(t *testing.T) {
	dir := t.TempDir()
	script := testutil.WriteFile(t, dir, "first.js", "function f() {}\n")
	testutil.WriteFile(t, dir, "second.js", "function f() {}\n")
	testutil.WriteFile(t, dir, "Main.qml", `import "first.js" as A
import "second.js" as A

Item { Component.onCompleted: A.f() }
`)

	svc := newReferenceForTest()
	response, err := svc.Search(context.Background(), domain.ReferencesRequest{
		ScriptPath:    script,
		FunctionName:  "f",
		WorkspaceRoot: dir,
	})
	testutil.AssertNoError(t, err)

	// The document's alias A denotes first.js, so the usage counts for it.
	if len(response.References) != 1 {
		t.Errorf("Expected 1 reference through the first binding, got %+v", response.References)
	}

	// And not for the shadowed second binding.
	second, err := svc.Search(context.Background(), domain.ReferencesRequest{
		ScriptPath:    dir + "/second.js",
		FunctionName:  "f",
		WorkspaceRoot: dir,
	})
	testutil.AssertNoError(t, err)
	if len(second.References) != 0 {
		t.Errorf("Shadowed binding should yield no references, got %+v", second.References)
	}
}

func TestSearch_MissingInputs(t *testing.T) {
	svc := newReferenceForTest()
	if _, err := svc.Search(context.Background(), domain.ReferencesRequest{}); err == nil {
		t.Error("Expected error for missing script path and function name")
	}
}

func TestSearch_EmptyWorkspace(t *testing.T) {
	dir := t.TempDir()
	script := testutil.WriteFile(t, dir, "util.js", "function f() {}\n")

	svc := newReferenceForTest()
	response, err := svc.Search(context.Background(), domain.ReferencesRequest{
		ScriptPath:    script,
		FunctionName:  "f",
		WorkspaceRoot: dir,
	})
	testutil.AssertNoError(t, err)

	if response.FilesScanned != 0 || len(response.References) != 0 {
		t.Errorf("Expected empty result for workspace without documents: %+v", response)
	}
}
