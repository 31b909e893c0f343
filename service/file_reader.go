package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/py2cpp-go/core/domain"
)

// skippedDirs never contain modules worth feeding to the analyzer:
// dependency caches, VCS metadata, and build output.
var skippedDirs = map[string]bool{
	"__pycache__":  true,
	".git":         true,
	".svn":         true,
	".hg":          true,
	".bzr":         true,
	"node_modules": true,
	".tox":         true,
	".pytest_cache": true,
	".mypy_cache":  true,
	"venv":         true,
	"env":          true,
	".venv":        true,
	".env":         true,
	"build":        true,
	"dist":         true,
}

// FileReaderImpl walks a directory tree looking for `.py`/`.pyi`
// modules to hand to the analyzer, honoring include/exclude glob
// patterns supplied by `pyscn check`.
type FileReaderImpl struct{}

// NewFileReader constructs the default FileReader.
func NewFileReader() *FileReaderImpl {
	return &FileReaderImpl{}
}

// CollectPythonFiles walks each path in paths, returning every Python
// module found. A path that is itself a file is included directly
// (subject to the same pattern filters); a path that is a directory is
// walked, recursively when recursive is true.
func (f *FileReaderImpl) CollectPythonFiles(paths []string, recursive bool, includePatterns, excludePatterns []string) ([]string, error) {
	if err := f.validatePatterns(includePatterns, "include"); err != nil {
		return nil, err
	}
	if err := f.validatePatterns(excludePatterns, "exclude"); err != nil {
		return nil, err
	}

	var found []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, domain.NewFileNotFoundError(path, err)
		}

		if !info.IsDir() {
			if f.IsValidPythonFile(path) && f.shouldIncludeFile(path, includePatterns, excludePatterns) {
				found = append(found, path)
			}
			continue
		}

		dirFiles, err := f.walkDirectory(path, recursive, includePatterns, excludePatterns)
		if err != nil {
			return nil, err
		}
		found = append(found, dirFiles...)
	}
	return found, nil
}

// ReadFile returns a module's source bytes.
func (f *FileReaderImpl) ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewFileNotFoundError(path, err)
	}
	return content, nil
}

// IsValidPythonFile reports whether path's extension marks it as a
// module source (.py) or stub (.pyi).
func (f *FileReaderImpl) IsValidPythonFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".py", ".pyi":
		return true
	default:
		return false
	}
}

// FileExists reports whether path names a regular file (directories
// and missing paths both report false, with a nil error).
func (f *FileReaderImpl) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}

// GetFileInfo stats path, wrapping ENOENT into the core's
// FileNotFound taxonomy.
func (f *FileReaderImpl) GetFileInfo(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, domain.NewFileNotFoundError(path, err)
	}
	return info, nil
}

// ValidatePaths fails fast if any path is missing or unreadable,
// before the analyzer commits to a batch.
func (f *FileReaderImpl) ValidatePaths(paths []string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return domain.NewFileNotFoundError(path, err)
			}
			return domain.NewInvalidInputError(fmt.Sprintf("cannot access path: %s", path), err)
		}
	}
	return nil
}

// walkDirectory descends dirPath, pruning directories shouldSkipDirectory
// rejects and (when recursive is false) anything below the top level.
func (f *FileReaderImpl) walkDirectory(dirPath string, recursive bool, includePatterns, excludePatterns []string) ([]string, error) {
	var found []string

	err := filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// A single unreadable entry shouldn't abort the whole walk.
			return nil
		}

		if info.IsDir() {
			if path != dirPath && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			if f.shouldSkipDirectory(info.Name()) {
				return filepath.SkipDir
			}
			if !recursive && path != dirPath {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(info.Name(), ".") {
			return nil
		}
		if f.IsValidPythonFile(path) && f.shouldIncludeFile(path, includePatterns, excludePatterns) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", dirPath, err)
	}
	return found, nil
}

// shouldIncludeFile applies exclude patterns first (any match rejects
// the file), then include patterns (empty means "include everything
// not excluded").
func (f *FileReaderImpl) shouldIncludeFile(path string, includePatterns, excludePatterns []string) bool {
	for _, pattern := range excludePatterns {
		if f.matchesPattern(pattern, path) {
			return false
		}
	}
	if len(includePatterns) == 0 {
		return true
	}
	for _, pattern := range includePatterns {
		if f.matchesPattern(pattern, path) {
			return true
		}
	}
	return false
}

// matchesPattern matches pattern against both path's basename (so a
// bare pattern like "test_*.py" works regardless of where the file
// lives) and its full form (so a globstar pattern like "venv/**" can
// prune whole subtrees). Matching is delegated to doublestar, which
// already understands "**" the way the loader's own module-path
// resolution does.
func (f *FileReaderImpl) matchesPattern(pattern, path string) bool {
	slashPath := filepath.ToSlash(path)

	if matched, _ := doublestar.Match(pattern, filepath.Base(path)); matched {
		return true
	}
	if matched, _ := doublestar.Match(pattern, slashPath); matched {
		return true
	}

	// "dir/**" names a directory to prune wherever it occurs, not only
	// at the search root, so also try it anchored at any depth.
	if strings.HasSuffix(pattern, "/**") && !strings.HasPrefix(pattern, "**") {
		matched, _ := doublestar.Match("**/"+pattern, slashPath)
		return matched
	}
	return false
}

// validatePatterns runs validatePattern over every pattern, naming
// which list (include/exclude) and pattern failed.
func (f *FileReaderImpl) validatePatterns(patterns []string, patternType string) error {
	for _, pattern := range patterns {
		if err := f.validatePattern(pattern); err != nil {
			return fmt.Errorf("invalid %s pattern '%s': %w", patternType, pattern, err)
		}
	}
	return nil
}

// validatePattern rejects pattern syntax doublestar would accept but
// that this tool deliberately keeps out of its glob dialect: regex
// leftovers, character classes, and brace expansion all tend to be
// typos from users reaching for a different syntax, so they're
// rejected with a pointer to the glob equivalent instead of silently
// matching nothing.
func (f *FileReaderImpl) validatePattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("empty pattern not allowed")
	}
	if strings.Contains(pattern, "\\") {
		return fmt.Errorf("escaped characters not fully supported, avoid backslashes in patterns")
	}
	if strings.Count(pattern, "**") > 1 {
		return fmt.Errorf("multiple ** globstars not supported, use single ** instead")
	}
	if strings.Contains(pattern, ".*") {
		return fmt.Errorf("looks like regex syntax, use glob syntax instead (e.g., '*.py' not '.*\\.py')")
	}
	if strings.HasPrefix(pattern, "^") || strings.HasSuffix(pattern, "$") {
		return fmt.Errorf("regex anchors (^ $) not supported, use glob syntax instead")
	}
	if strings.ContainsAny(pattern, "[]") {
		return fmt.Errorf("character classes [abc] not supported, use separate patterns instead")
	}
	if strings.ContainsAny(pattern, "{}") {
		return fmt.Errorf("brace expansion {a,b} not supported, use separate patterns instead")
	}
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("invalid glob syntax")
	}
	return nil
}

// shouldSkipDirectory reports whether dirName names a tree the walk
// should never descend into (case-insensitively, matching shells'
// typical treatment of these directory names on case-insensitive
// filesystems).
func (f *FileReaderImpl) shouldSkipDirectory(dirName string) bool {
	lower := strings.ToLower(dirName)
	if skippedDirs[lower] {
		return true
	}
	return strings.HasSuffix(lower, ".egg-info")
}
