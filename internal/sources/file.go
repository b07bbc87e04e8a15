// SPDX-License-Identifier: MPL-2.0

package sources

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"extrasdoc/internal/issue"
)

// fromFile reads a requirements text file relative to the package root.
// Blank lines and "#" comment lines are skipped; trailing comments are
// stripped the way pip does for requirement files.
func fromFile(req Request) ([]string, error) {
	rel := req.Options[KindFile]
	if rel == "" {
		return nil, issue.NewErrorContext().
			WithOperation(fmt.Sprintf("resolve requirements for extra %q", req.Extra)).
			WithSuggestion("Give :file: a path relative to the package root").
			Wrap(fmt.Errorf("%w: :file: option has no path", ErrSourceNotFound)).
			BuildError()
	}

	path := filepath.Join(req.PackageRoot, rel)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation(fmt.Sprintf("read requirements file for extra %q", req.Extra)).
			WithResource(path).
			WithSuggestion("Check the :file: path and the package_root setting").
			Wrap(fmt.Errorf("%w: %v", ErrSourceNotFound, err)).
			BuildError()
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = stripComment(line)
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// stripComment removes a trailing "#" comment. A "#" inside a direct URL
// fragment is preceded by non-space, so only " #" (or a leading "#") counts.
func stripComment(line string) string {
	if strings.HasPrefix(strings.TrimSpace(line), "#") {
		return ""
	}
	if i := strings.Index(line, " #"); i >= 0 {
		return line[:i]
	}
	return line
}
