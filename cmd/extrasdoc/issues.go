// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"extrasdoc/internal/issue"
	"extrasdoc/internal/pep508"
	"extrasdoc/internal/sources"
)

// issueIdFor maps a page failure to its catalog entry. Failures that carry
// no source sentinel (page read/render/write errors, aggregated
// multi-directive failures) fall back to the page-render card.
func issueIdFor(err error) issue.Id {
	switch {
	case errors.Is(err, sources.ErrMultipleSources):
		return issue.MultipleSourcesId
	case errors.Is(err, sources.ErrNoSource):
		return issue.NoSourceId
	case errors.Is(err, sources.ErrSourceNotFound):
		return issue.SourceNotFoundId
	case errors.Is(err, sources.ErrExtraNotFound):
		return issue.ExtraNotFoundId
	case errors.Is(err, pep508.ErrInvalid):
		return issue.InvalidRequirementId
	default:
		return issue.PageRenderFailedId
	}
}

// renderIssueCard renders the catalog guidance for a single failure.
func renderIssueCard(w io.Writer, err error) {
	renderIssueCards(w, []error{err})
}

// renderIssueCards renders the catalog guidance matching a list of page
// failures, once per distinct card.
func renderIssueCards(w io.Writer, errs []error) {
	seen := map[issue.Id]bool{}
	for _, err := range errs {
		id := issueIdFor(err)
		if seen[id] {
			continue
		}
		seen[id] = true
		if rendered, rerr := issue.Get(id).Render("dark"); rerr == nil {
			fmt.Fprint(w, rendered)
		}
	}
}
