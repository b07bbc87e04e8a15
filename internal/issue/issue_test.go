// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestGetKnownIssues(t *testing.T) {
	ids := []Id{
		ConfigLoadFailedId,
		MultipleSourcesId,
		NoSourceId,
		SourceNotFoundId,
		ExtraNotFoundId,
		InvalidRequirementId,
		PageRenderFailedId,
	}
	for _, id := range ids {
		iss := Get(id)
		if iss == nil {
			t.Errorf("Get(%d) returned nil", id)
			continue
		}
		if iss.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, iss.Id())
		}
		if strings.TrimSpace(string(iss.MarkdownMsg())) == "" {
			t.Errorf("issue %d has an empty message", id)
		}
	}
}

func TestValuesSortedById(t *testing.T) {
	vals := Values()
	if len(vals) != len(issues) {
		t.Fatalf("Values() returned %d issues, want %d", len(vals), len(issues))
	}
	for i := 1; i < len(vals); i++ {
		if vals[i-1].Id() >= vals[i].Id() {
			t.Errorf("Values() not sorted at index %d", i)
		}
	}
}

func TestActionableErrorMessage(t *testing.T) {
	err := NewErrorContext().
		WithOperation("resolve requirements").
		WithResource("setup.cfg").
		Wrap(errors.New("section not found")).
		Build()

	want := "failed to resolve requirements: setup.cfg: section not found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestActionableErrorFormatSuggestions(t *testing.T) {
	err := NewErrorContext().
		WithOperation("load configuration").
		WithSuggestion("Check the CUE syntax").
		WithSuggestion("Run 'extrasdoc config init'").
		Build()

	got := err.Format(false)
	if !strings.Contains(got, "• Check the CUE syntax") {
		t.Errorf("Format() missing first suggestion: %q", got)
	}
	if !strings.Contains(got, "• Run 'extrasdoc config init'") {
		t.Errorf("Format() missing second suggestion: %q", got)
	}
}

func TestActionableErrorFormatVerboseChain(t *testing.T) {
	inner := errors.New("no such file")
	err := NewErrorContext().
		WithOperation("read requirements file").
		WithResource("requirements/dates.txt").
		Wrap(inner).
		Build()

	got := err.Format(true)
	if !strings.Contains(got, "Error chain:") {
		t.Errorf("verbose Format() missing error chain: %q", got)
	}
	if !errors.Is(err, inner) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestBuildRequiresOperation(t *testing.T) {
	if got := NewErrorContext().WithResource("x").Build(); got != nil {
		t.Errorf("Build() without operation = %+v, want nil", got)
	}
	if got := NewErrorContext().BuildError(); got != nil {
		t.Errorf("BuildError() without operation = %v, want nil", got)
	}
}
