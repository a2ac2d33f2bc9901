package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ludo-technologies/qmllink/internal/constants"
)

// FileHelper provides file operation utilities
type FileHelper struct{}

// NewFileHelper creates a new FileHelper
func NewFileHelper() *FileHelper {
	return &FileHelper{}
}

// CollectScriptFiles collects script files from paths
func (h *FileHelper) CollectScriptFiles(paths []string, recursive bool, excludePatterns []string) ([]string, error) {
	return h.collectFiles(paths, recursive, excludePatterns, h.IsScriptFile)
}

// CollectMarkupFiles collects markup documents from paths
func (h *FileHelper) CollectMarkupFiles(paths []string, recursive bool, excludePatterns []string) ([]string, error) {
	return h.collectFiles(paths, recursive, excludePatterns, h.IsMarkupFile)
}

func (h *FileHelper) collectFiles(paths []string, recursive bool, excludePatterns []string, accept func(string) bool) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if accept(path) && !h.isExcluded(path, excludePatterns) {
				files = append(files, path)
			}
			continue
		}

		if recursive {
			err = filepath.Walk(path, func(filePath string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}

				if info.IsDir() {
					dirName := filepath.Base(filePath)
					for _, excluded := range constants.DefaultExcludedDirs {
						if dirName == excluded {
							return filepath.SkipDir
						}
					}
					for _, pattern := range excludePatterns {
						if pattern == dirName {
							return filepath.SkipDir
						}
						if matched, _ := filepath.Match(pattern, dirName); matched {
							return filepath.SkipDir
						}
					}
					return nil
				}

				if accept(filePath) && !h.isExcluded(filePath, excludePatterns) {
					files = append(files, filePath)
				}
				return nil
			})
		} else {
			entries, readErr := os.ReadDir(path)
			if readErr != nil {
				return nil, readErr
			}
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				filePath := filepath.Join(path, entry.Name())
				if accept(filePath) && !h.isExcluded(filePath, excludePatterns) {
					files = append(files, filePath)
				}
			}
		}

		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// IsScriptFile checks if a file is an importable script module
func (h *FileHelper) IsScriptFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), constants.ScriptExtension)
}

// IsMarkupFile checks if a file is a QML markup document
func (h *FileHelper) IsMarkupFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), constants.MarkupExtension)
}

// FileExists checks if a file exists
func (h *FileHelper) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

// isExcluded checks if a path matches any exclude pattern
func (h *FileHelper) isExcluded(path string, excludePatterns []string) bool {
	for _, pattern := range excludePatterns {
		if matched, _ := filepath.Match(pattern, filepath.Base(path)); matched {
			return true
		}
		if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}

// ResolveScriptPaths resolves input paths, returning existing files
// directly or collecting script files from directories
func ResolveScriptPaths(fileHelper *FileHelper, paths []string, recursive bool, excludePatterns []string) ([]string, error) {
	allFiles := true
	for _, path := range paths {
		exists, err := fileHelper.FileExists(path)
		if err != nil || !exists {
			allFiles = false
			break
		}
	}

	if allFiles {
		return paths, nil
	}

	return fileHelper.CollectScriptFiles(paths, recursive, excludePatterns)
}
