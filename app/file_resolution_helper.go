package app

import "github.com/py2cpp-go/core/domain"

// ResolveFilePaths turns the paths a CLI command was invoked with
// into a concrete list of module files for the analyzer to consume.
//
// When every path already names an existing file (optionally
// required to look like a Python module, via validatePythonFile),
// they're returned unchanged — this is the common case for `pyscn
// type`/`pyscn ast`, which are invoked against a single source file
// and have no directory to walk. Otherwise at least one path is a
// directory (or doesn't exist as a file), so the whole set is handed
// to fileReader.CollectPythonFiles, which walks directories and
// applies the include/exclude patterns.
func ResolveFilePaths(
	fileReader domain.FileReader,
	paths []string,
	recursive bool,
	includePatterns []string,
	excludePatterns []string,
	validatePythonFile bool,
) ([]string, error) {
	if allExistingFiles(fileReader, paths, validatePythonFile) {
		return paths, nil
	}
	return fileReader.CollectPythonFiles(paths, recursive, includePatterns, excludePatterns)
}

// allExistingFiles reports whether every path in paths already names
// a file on disk (and, if validatePythonFile is set, one that looks
// like a Python module).
func allExistingFiles(fileReader domain.FileReader, paths []string, validatePythonFile bool) bool {
	for _, path := range paths {
		if validatePythonFile && !fileReader.IsValidPythonFile(path) {
			return false
		}
		exists, err := fileReader.FileExists(path)
		if err != nil || !exists {
			return false
		}
	}
	return true
}
