package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SuiteFileSuffixes are the file name endings of declarative suite files
var SuiteFileSuffixes = []string{".suite.yaml", ".suite.yml"}

// Scanner scans for suite files in a directory
type Scanner struct {
	skipDirs map[string]bool
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap}
}

// Scan finds all suite files in the given root directory, in lexical order
func (s *Scanner) Scan(root string) ([]string, error) {
	var suiteFiles []string

	// Clean and validate the root path
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("suites path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("suites path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			// Skip hidden directories (starting with .)
			if strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}

			if s.skipDirs[name] {
				return filepath.SkipDir
			}

			return nil
		}

		if IsSuiteFile(d.Name()) {
			suiteFiles = append(suiteFiles, path)
		}

		return nil
	})

	return suiteFiles, err
}

// IsSuiteFile reports whether name looks like a declarative suite file
func IsSuiteFile(name string) bool {
	for _, suffix := range SuiteFileSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
