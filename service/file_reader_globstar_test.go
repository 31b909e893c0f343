package service

import "testing"

// These pin the exclude-pattern semantics `pyscn check` relies on to
// keep dependency caches and build output out of the module batch.
func TestMatchesPattern_Globstar(t *testing.T) {
	fr := NewFileReader()

	type case_ struct {
		pattern, path string
		want          bool
	}
	groups := map[string][]case_{
		"anchored globstar": {
			{"postrp/cli/**", "postrp/cli/main.py", true},
			{"postrp/cli/**", "postrp/cli/subdir/file.py", true},
			{"postrp/cli/**", "other/dir/file.py", false},
			{"build/**", "build", true}, // globstar matches the directory itself too
		},
		"leading globstar": {
			{"**/test.py", "deep/nested/test.py", true},
			{"**/test.py", "test.py", true},
		},
		"default cache/env excludes, anchored at root": {
			{"venv/**", "venv/lib/python3.9/site-packages/module.py", true},
			{".pytest_cache/**", ".pytest_cache/v/cache/nodeids", true},
			{".tox/**", ".tox/py39/lib/python3.9/site-packages/pytest.py", true},
			{".venv/**", ".venv/bin/python", true},
		},
		"default excludes found at arbitrary depth": {
			{"__pycache__/**", "src/__pycache__/module.cpython-39.pyc", true},
			{"__pycache__/**", "/home/user/project/src/__pycache__/module.pyc", true},
		},
		"non-globstar wildcards stay within one path segment": {
			{"test_*.py", "test_example.py", true},
			{"test_*.py", "example_test.py", false},
			{"postrp/cli/*.py", "postrp/cli/main.py", true},
			{"postrp/cli/*.py", "postrp/cli/subdir/file.py", false},
		},
	}

	for group, cases := range groups {
		for _, c := range cases {
			t.Run(group+"/"+c.pattern+"~"+c.path, func(t *testing.T) {
				got := fr.matchesPattern(c.pattern, c.path)
				if got != c.want {
					t.Errorf("matchesPattern(%q, %q) = %v, want %v", c.pattern, c.path, got, c.want)
				}
			})
		}
	}
}

func TestShouldIncludeFile_WithExcludes(t *testing.T) {
	fr := NewFileReader()

	exclude := []string{"test_*.py", "*_test.py", "postrp/cli/**", "venv/**"}
	include := []string{"*.py"}

	tests := map[string]bool{
		"src/main.py":                                    true,
		"test_example.py":                                false,
		"example_test.py":                                false,
		"postrp/cli/main.py":                              false,
		"postrp/cli/commands/run.py":                      false,
		"venv/lib/python3.9/site-packages/module.py":      false,
		"postrp/core/main.py":                             true,
	}

	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			got := fr.shouldIncludeFile(path, include, exclude)
			if got != want {
				t.Errorf("shouldIncludeFile(%q) = %v, want %v", path, got, want)
			}
		})
	}
}
