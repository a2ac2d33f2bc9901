package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ludo-technologies/qmllink/domain"
	"github.com/ludo-technologies/qmllink/internal/testutil"
)

func TestFunctionService_ExtractFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "util.js", `/**
 * Formats a date.
 * @param {string} format - Format string
 * @returns {string}
 */
function formatDate(format) {
}
`)

	svc := NewFunctionService(NewContentReader())
	functions, err := svc.ExtractFile(context.Background(), path)
	testutil.AssertNoError(t, err)

	if len(functions) != 1 {
		t.Fatalf("Expected 1 function, got %d", len(functions))
	}
	fn := functions[0]
	if fn.Name != "formatDate" {
		t.Errorf("Unexpected name: %s", fn.Name)
	}
	if fn.ReturnType != "string" {
		t.Errorf("Unexpected return type: %s", fn.ReturnType)
	}
	if fn.Documentation != "Formats a date." {
		t.Errorf("Unexpected documentation: %q", fn.Documentation)
	}
}

func TestFunctionService_ExtractFile_Missing(t *testing.T) {
	svc := NewFunctionService(NewContentReader())
	_, err := svc.ExtractFile(context.Background(), "/does/not/exist.js")
	testutil.AssertError(t, err)

	var domainErr domain.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != domain.ErrCodeFileNotFound {
		t.Errorf("Expected file-not-found domain error, got %v", err)
	}
}

func TestFunctionService_ExtractFile_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "empty.js", "")

	svc := NewFunctionService(NewContentReader())
	functions, err := svc.ExtractFile(context.Background(), path)
	testutil.AssertNoError(t, err)
	if len(functions) != 0 {
		t.Errorf("Empty file should yield no records, got %d", len(functions))
	}
}

func TestFunctionService_CacheHit(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "util.js", "function a() {}\n")

	cache := NewFunctionCache()
	svc := NewFunctionServiceWithCache(NewContentReader(), cache)

	first, err := svc.ExtractFile(context.Background(), path)
	testutil.AssertNoError(t, err)
	if len(first) != 1 {
		t.Fatalf("Expected 1 function, got %d", len(first))
	}
	if cache.Len() != 1 {
		t.Errorf("Expected extraction to populate cache, got %d entries", cache.Len())
	}

	// The cached entry is served until invalidated, even when the file
	// changes underneath.
	testutil.WriteFile(t, dir, "util.js", "function a() {}\nfunction b() {}\n")
	second, err := svc.ExtractFile(context.Background(), path)
	testutil.AssertNoError(t, err)
	if len(second) != 1 {
		t.Errorf("Expected stale cached records, got %d", len(second))
	}

	cache.Invalidate(path)
	third, err := svc.ExtractFile(context.Background(), path)
	testutil.AssertNoError(t, err)
	if len(third) != 2 {
		t.Errorf("Expected fresh extraction after invalidation, got %d", len(third))
	}
}

func TestFunctionService_Extract_WarningsNotFailures(t *testing.T) {
	dir := t.TempDir()
	good := testutil.WriteFile(t, dir, "good.js", "function g() {}\n")

	svc := NewFunctionService(NewContentReader())
	response, err := svc.Extract(context.Background(), domain.FunctionsRequest{
		Paths: []string{good, "/missing/file.js"},
	})
	testutil.AssertNoError(t, err)

	if len(response.Files) != 1 {
		t.Errorf("Expected 1 successful file, got %d", len(response.Files))
	}
	if len(response.Warnings) != 1 {
		t.Errorf("Expected 1 warning for the unreadable file, got %v", response.Warnings)
	}
	if response.GeneratedAt == "" {
		t.Error("Expected GeneratedAt timestamp")
	}
}

func TestFunctionService_Extract_NoPaths(t *testing.T) {
	svc := NewFunctionService(NewContentReader())
	_, err := svc.Extract(context.Background(), domain.FunctionsRequest{})
	testutil.AssertError(t, err)
}

func TestFunctionService_Extract_NoCacheBypassesEntry(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "util.js", "function fresh() {}\n")

	cache := NewFunctionCache()
	cache.Put(path, []domain.FunctionInfo{{Name: "stale"}})

	svc := NewFunctionServiceWithCache(NewContentReader(), cache)
	response, err := svc.Extract(context.Background(), domain.FunctionsRequest{
		Paths:   []string{path},
		NoCache: true,
	})
	testutil.AssertNoError(t, err)

	if len(response.Files) != 1 || len(response.Files[0].Functions) != 1 {
		t.Fatalf("Unexpected response: %+v", response.Files)
	}
	if response.Files[0].Functions[0].Name != "fresh" {
		t.Errorf("Expected cache bypass, got %s", response.Files[0].Functions[0].Name)
	}
}
