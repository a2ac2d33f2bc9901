package service

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/ludo-technologies/qmllink/internal/config"
	"github.com/ludo-technologies/qmllink/internal/constants"
)

// WorkspaceFinderImpl implements domain.WorkspaceFileFinder by walking the
// workspace with doublestar glob matching. Dependency/VCS/build directories
// are excluded by name, exclude patterns and .gitignore rules are applied,
// and enumeration stops silently at the result bound.
type WorkspaceFinderImpl struct {
	excludePatterns  []string
	respectGitignore bool
}

// NewWorkspaceFinder creates a workspace finder from configuration
func NewWorkspaceFinder(cfg *config.WorkspaceConfig) *WorkspaceFinderImpl {
	finder := &WorkspaceFinderImpl{}
	if cfg != nil {
		finder.excludePatterns = cfg.ExcludePatterns
		finder.respectGitignore = cfg.RespectGitignore
	}
	return finder
}

// FindFiles returns up to maxResults files under root whose path relative
// to root matches pattern. Matches are returned in walk order; files beyond
// the bound are omitted.
func (f *WorkspaceFinderImpl) FindFiles(ctx context.Context, root, pattern string, maxResults int) ([]string, error) {
	if maxResults <= 0 {
		maxResults = constants.MaxAutoImportCandidates
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var ignorer *gitignore.GitIgnore
	if f.respectGitignore {
		// A missing or unreadable .gitignore simply disables the rules.
		ignorer, _ = gitignore.CompileIgnoreFile(filepath.Join(absRoot, ".gitignore"))
	}

	var matches []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Unreadable entries are skipped, never aborting the walk.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, relErr := filepath.Rel(absRoot, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path == absRoot {
				return nil
			}
			if f.isExcludedDir(d.Name(), rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if matched, _ := doublestar.Match(pattern, rel); !matched {
			return nil
		}
		if f.isExcludedPath(rel) {
			return nil
		}
		if ignorer != nil && ignorer.MatchesPath(rel) {
			return nil
		}

		matches = append(matches, path)
		if len(matches) >= maxResults {
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return matches, err
	}
	return matches, nil
}

// isExcludedDir reports whether a directory should be pruned from the walk
func (f *WorkspaceFinderImpl) isExcludedDir(name, rel string) bool {
	for _, excluded := range constants.DefaultExcludedDirs {
		if name == excluded {
			return true
		}
	}
	for _, pattern := range f.excludePatterns {
		if pattern == name {
			return true
		}
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}

// isExcludedPath reports whether a file path matches an exclude pattern
func (f *WorkspaceFinderImpl) isExcludedPath(rel string) bool {
	for _, pattern := range f.excludePatterns {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}
