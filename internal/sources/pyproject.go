// SPDX-License-Identifier: MPL-2.0

package sources

import (
	"fmt"
	"os"
	"path/filepath"

	"extrasdoc/internal/issue"

	"github.com/pelletier/go-toml/v2"
)

const pyprojectFileName = "pyproject.toml"

// pyprojectFile is a partial view of pyproject.toml covering the two tables
// extras can live in: PEP 621 [project.optional-dependencies] and flit's
// [tool.flit.metadata.requires-extra]. Unknown keys are ignored.
type pyprojectFile struct {
	Project struct {
		Name                 string              `toml:"name"`
		OptionalDependencies map[string][]string `toml:"optional-dependencies"`
	} `toml:"project"`
	Tool struct {
		Flit struct {
			Metadata struct {
				RequiresExtra map[string][]string `toml:"requires-extra"`
			} `toml:"metadata"`
		} `toml:"flit"`
	} `toml:"tool"`
}

// fromPyproject reads [project.optional-dependencies] (PEP 621).
func fromPyproject(req Request) ([]string, error) {
	doc, path, err := readPyproject(req)
	if err != nil {
		return nil, err
	}

	lines, ok := doc.Project.OptionalDependencies[req.Extra]
	if !ok {
		return nil, issue.NewErrorContext().
			WithOperation(fmt.Sprintf("resolve requirements for extra %q", req.Extra)).
			WithResource(path).
			WithSuggestion("Check the keys of [project.optional-dependencies]").
			Wrap(fmt.Errorf("%w: %q not found in [project.optional-dependencies]", ErrExtraNotFound, req.Extra)).
			BuildError()
	}
	return lines, nil
}

// fromFlit reads [tool.flit.metadata.requires-extra].
func fromFlit(req Request) ([]string, error) {
	doc, path, err := readPyproject(req)
	if err != nil {
		return nil, err
	}

	lines, ok := doc.Tool.Flit.Metadata.RequiresExtra[req.Extra]
	if !ok {
		return nil, issue.NewErrorContext().
			WithOperation(fmt.Sprintf("resolve requirements for extra %q", req.Extra)).
			WithResource(path).
			WithSuggestion("Check the keys of [tool.flit.metadata.requires-extra]").
			Wrap(fmt.Errorf("%w: %q not found in [tool.flit.metadata.requires-extra]", ErrExtraNotFound, req.Extra)).
			BuildError()
	}
	return lines, nil
}

func readPyproject(req Request) (*pyprojectFile, string, error) {
	path := filepath.Join(req.PackageRoot, pyprojectFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, issue.NewErrorContext().
			WithOperation(fmt.Sprintf("read pyproject.toml for extra %q", req.Extra)).
			WithResource(path).
			WithSuggestion("Check that pyproject.toml exists under the package root").
			Wrap(fmt.Errorf("%w: cannot find %s in %s", ErrSourceNotFound, pyprojectFileName, req.PackageRoot)).
			BuildError()
	}

	var doc pyprojectFile
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, path, issue.NewErrorContext().
			WithOperation(fmt.Sprintf("parse pyproject.toml for extra %q", req.Extra)).
			WithResource(path).
			WithSuggestion("Check the TOML syntax").
			Wrap(err).
			BuildError()
	}
	return &doc, path, nil
}
