package service

import (
	"context"
	"testing"

	"github.com/ludo-technologies/qmllink/internal/config"
	"github.com/ludo-technologies/qmllink/internal/testutil"
)

func TestWorkspaceFinder_FindFiles(t *testing.T) {
	dir := t.TempDir()
	a := testutil.WriteFile(t, dir, "a.js", "")
	b := testutil.WriteFile(t, dir, "nested/b.js", "")
	testutil.WriteFile(t, dir, "main.qml", "")

	finder := NewWorkspaceFinder(nil)
	files, err := finder.FindFiles(context.Background(), dir, "**/*.js", 0)
	testutil.AssertNoError(t, err)

	if len(files) != 2 {
		t.Fatalf("Expected 2 script files, got %d: %v", len(files), files)
	}
	found := map[string]bool{}
	for _, f := range files {
		found[f] = true
	}
	if !found[a] || !found[b] {
		t.Errorf("Missing expected files in %v", files)
	}
}

func TestWorkspaceFinder_MaxResults(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "a.js", "")
	testutil.WriteFile(t, dir, "b.js", "")
	testutil.WriteFile(t, dir, "c.js", "")

	finder := NewWorkspaceFinder(nil)
	files, err := finder.FindFiles(context.Background(), dir, "**/*.js", 2)
	testutil.AssertNoError(t, err)

	if len(files) != 2 {
		t.Errorf("Expected enumeration bounded at 2, got %d", len(files))
	}
}

func TestWorkspaceFinder_ExcludedDirsPruned(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "keep.js", "")
	testutil.WriteFile(t, dir, "node_modules/skip.js", "")
	testutil.WriteFile(t, dir, ".git/skip.js", "")

	finder := NewWorkspaceFinder(nil)
	files, err := finder.FindFiles(context.Background(), dir, "**/*.js", 0)
	testutil.AssertNoError(t, err)

	if len(files) != 1 {
		t.Errorf("Expected dependency/VCS dirs pruned, got %v", files)
	}
}

func TestWorkspaceFinder_ExcludePatterns(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "keep.js", "")
	testutil.WriteFile(t, dir, "generated/out.js", "")

	finder := NewWorkspaceFinder(&config.WorkspaceConfig{
		ExcludePatterns: []string{"generated/**"},
	})
	files, err := finder.FindFiles(context.Background(), dir, "**/*.js", 0)
	testutil.AssertNoError(t, err)

	if len(files) != 1 {
		t.Errorf("Expected exclude pattern applied, got %v", files)
	}
}

func TestWorkspaceFinder_RespectsGitignore(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, ".gitignore", "ignored.js\n")
	testutil.WriteFile(t, dir, "keep.js", "")
	testutil.WriteFile(t, dir, "ignored.js", "")

	finder := NewWorkspaceFinder(&config.WorkspaceConfig{RespectGitignore: true})
	files, err := finder.FindFiles(context.Background(), dir, "**/*.js", 0)
	testutil.AssertNoError(t, err)

	if len(files) != 1 {
		t.Fatalf("Expected gitignored file skipped, got %v", files)
	}
}

func TestWorkspaceFinder_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "a.js", "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	finder := NewWorkspaceFinder(nil)
	if _, err := finder.FindFiles(ctx, dir, "**/*.js", 0); err == nil {
		t.Error("Expected error from cancelled context")
	}
}
