// SPDX-License-Identifier: MPL-2.0

package directive

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"

	"extrasdoc/internal/issue"
	"extrasdoc/internal/pep508"
	"extrasdoc/internal/sources"
)

type (
	// Resolver fills the Requirements of every extras-require node in a
	// parsed document. It runs between parse and render.
	Resolver struct {
		// PackageRoot is the directory requirement sources resolve against.
		PackageRoot string
	}

	// Occurrence records one resolved directive, in page order.
	Occurrence struct {
		Page         string
		Line         int
		Extra        string
		Scope        string
		Requirements []pep508.Requirement
	}
)

// ResolveAll walks the document and resolves every directive exactly once.
// All failures are returned, each tagged with the page position; occurrences
// cover only the directives that resolved.
func (r *Resolver) ResolveAll(doc ast.Node, source []byte, page string) ([]Occurrence, []error) {
	var (
		occurrences []Occurrence
		errs        []error
	)

	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || node.Kind() != KindExtrasRequire {
			return ast.WalkContinue, nil
		}
		n := node.(*ExtrasRequireBlock)
		line := lineOf(source, n.Offset)

		if len(n.UnknownOptions) > 0 {
			errs = append(errs, issue.NewErrorContext().
				WithOperation(fmt.Sprintf("parse extras-require directive for extra %q", n.Extra)).
				WithResource(fmt.Sprintf("%s:%d", page, line)).
				WithSuggestion("Valid options are :file:, :pkginfo:, :setup-cfg:, :pyproject:, :flit:, :scope:").
				Wrap(fmt.Errorf("unknown option(s): %s", strings.Join(n.UnknownOptions, ", "))).
				BuildError())
			return ast.WalkContinue, nil
		}

		reqs, err := sources.Resolve(sources.Request{
			PackageRoot: r.PackageRoot,
			Extra:       n.Extra,
			Options:     n.Options,
			Content:     n.Body,
		})
		if err != nil {
			errs = append(errs, issue.WrapWithContext(err,
				"render extras-require directive", fmt.Sprintf("%s:%d", page, line)))
			return ast.WalkContinue, nil
		}

		n.Requirements = reqs
		occurrences = append(occurrences, Occurrence{
			Page:         page,
			Line:         line,
			Extra:        n.Extra,
			Scope:        n.Scope,
			Requirements: reqs,
		})
		return ast.WalkContinue, nil
	})

	return occurrences, errs
}

// lineOf converts a byte offset into a 1-based line number.
func lineOf(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}
