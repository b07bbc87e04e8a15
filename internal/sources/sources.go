// SPDX-License-Identifier: MPL-2.0

package sources

import (
	"errors"
	"fmt"
	"strings"

	"extrasdoc/internal/issue"
	"extrasdoc/internal/pep508"
)

// Kind identifies one requirement source strategy.
type Kind string

const (
	// KindFile reads a requirements text file.
	KindFile Kind = "file"
	// KindPkgInfo reads a JSON metadata file with an extras_require mapping.
	KindPkgInfo Kind = "pkginfo"
	// KindSetupCfg reads [options.extras_require] from setup.cfg.
	KindSetupCfg Kind = "setup-cfg"
	// KindPyproject reads [project.optional-dependencies] from pyproject.toml.
	KindPyproject Kind = "pyproject"
	// KindFlit reads [tool.flit.metadata.requires-extra] from pyproject.toml.
	KindFlit Kind = "flit"
	// KindInline uses the directive's body lines.
	KindInline Kind = "inline"
)

var (
	// ErrMultipleSources is returned when a directive names more than one source.
	ErrMultipleSources = errors.New("multiple requirement sources specified")
	// ErrNoSource is returned when a directive names no source at all.
	ErrNoSource = errors.New("no requirement source specified")
	// ErrSourceNotFound is returned when the source file or section is missing.
	ErrSourceNotFound = errors.New("requirement source not found")
	// ErrExtraNotFound is returned when the source exists but lacks the extra.
	ErrExtraNotFound = errors.New("extra not found in source")
)

// optionOrder fixes the precedence used for dispatch and for deterministic
// error messages. It matches the order the sources are documented in.
var optionOrder = []Kind{KindFile, KindPkgInfo, KindSetupCfg, KindPyproject, KindFlit}

type (
	// Options maps a source option to its parameter. Flag-style options
	// (setup-cfg, pyproject, flit) carry an empty parameter.
	Options map[Kind]string

	// Request is one directive's resolution request.
	Request struct {
		// PackageRoot is the directory source paths resolve against.
		PackageRoot string

		// Extra is the extras group being documented.
		Extra string

		// Options are the source options given on the directive.
		Options Options

		// Content is the directive body, used only when Options is empty.
		Content []string
	}
)

// Pick enforces the one-source invariant and returns the selected source.
// Inline content counts as a source; naming a source option and providing
// body content at the same time is a configuration error.
func Pick(req Request) (Kind, error) {
	selected := make([]Kind, 0, 2)
	for _, kind := range optionOrder {
		if _, ok := req.Options[kind]; ok {
			selected = append(selected, kind)
		}
	}
	if hasContent(req.Content) {
		selected = append(selected, KindInline)
	}

	switch len(selected) {
	case 0:
		return "", issue.NewErrorContext().
			WithOperation(fmt.Sprintf("resolve requirements for extra %q", req.Extra)).
			WithSuggestion("Give the directive a source option (:file:, :pkginfo:, :setup-cfg:, :pyproject:, :flit:)").
			WithSuggestion("Or list the requirements in the directive body, one per line").
			Wrap(ErrNoSource).
			BuildError()
	case 1:
		return selected[0], nil
	default:
		names := make([]string, len(selected))
		for i, k := range selected {
			names[i] = string(k)
		}
		return "", issue.NewErrorContext().
			WithOperation(fmt.Sprintf("resolve requirements for extra %q", req.Extra)).
			WithSuggestion("Keep exactly one source per directive").
			Wrap(fmt.Errorf("%w: %s", ErrMultipleSources, strings.Join(names, ", "))).
			BuildError()
	}
}

// Resolve picks the source, reads the raw requirement lines, and validates
// them as PEP 508 specifiers. The returned list is sorted by canonical name.
func Resolve(req Request) ([]pep508.Requirement, error) {
	kind, err := Pick(req)
	if err != nil {
		return nil, err
	}

	var lines []string
	switch kind {
	case KindFile:
		lines, err = fromFile(req)
	case KindPkgInfo:
		lines, err = fromPkgInfo(req)
	case KindSetupCfg:
		lines, err = fromSetupCfg(req)
	case KindPyproject:
		lines, err = fromPyproject(req)
	case KindFlit:
		lines, err = fromFlit(req)
	case KindInline:
		lines = req.Content
	default:
		err = fmt.Errorf("unknown source kind %q", kind)
	}
	if err != nil {
		return nil, err
	}

	reqs, err := pep508.ParseLines(lines)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation(fmt.Sprintf("validate requirements for extra %q", req.Extra)).
			WithResource(string(kind)).
			WithSuggestion("Fix the offending line named below").
			Wrap(err).
			BuildError()
	}

	pep508.SortByName(reqs)
	return reqs, nil
}

func hasContent(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			return true
		}
	}
	return false
}
