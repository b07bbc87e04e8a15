// SPDX-License-Identifier: MPL-2.0

package sources

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"extrasdoc/internal/issue"
)

// DefaultPkgInfoFile is the metadata file read when :pkginfo: is given
// without a path. It is the structured replacement for the legacy
// __pkginfo__.py module: the same extras_require mapping, as JSON.
const DefaultPkgInfoFile = "__pkginfo__.json"

// pkgInfo mirrors the metadata file layout. Only the extras mapping is
// consumed; other keys are ignored.
type pkgInfo struct {
	ExtrasRequire map[string][]string `json:"extras_require"`
}

// fromPkgInfo loads the extras_require mapping from a JSON metadata file
// and returns the entry for the requested extra.
func fromPkgInfo(req Request) ([]string, error) {
	rel := req.Options[KindPkgInfo]
	if rel == "" {
		rel = DefaultPkgInfoFile
	}
	path := filepath.Join(req.PackageRoot, rel)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation(fmt.Sprintf("read package metadata for extra %q", req.Extra)).
			WithResource(path).
			WithSuggestion("Check the :pkginfo: path and the package_root setting").
			Wrap(fmt.Errorf("%w: %v", ErrSourceNotFound, err)).
			BuildError()
	}

	var info pkgInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation(fmt.Sprintf("parse package metadata for extra %q", req.Extra)).
			WithResource(path).
			WithSuggestion("The file must be JSON with an extras_require object").
			Wrap(err).
			BuildError()
	}

	lines, ok := info.ExtrasRequire[req.Extra]
	if !ok {
		return nil, issue.NewErrorContext().
			WithOperation(fmt.Sprintf("resolve requirements for extra %q", req.Extra)).
			WithResource(path).
			WithSuggestion("Check the extra name for typos").
			Wrap(fmt.Errorf("%w: %q has no entry in extras_require", ErrExtraNotFound, req.Extra)).
			BuildError()
	}
	return lines, nil
}
