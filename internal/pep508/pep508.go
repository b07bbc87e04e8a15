// SPDX-License-Identifier: MPL-2.0

// Package pep508 parses PEP 508 dependency specifiers.
//
// A specifier names a distribution, optionally followed by an extras list,
// a version specifier set or a direct URL reference, and an environment
// marker. The parser accepts the grammar loosely enough for real-world
// requirement files while rejecting lines that are not requirements at all;
// it performs no dependency resolution and no version constraint solving.
package pep508

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ErrInvalid is the sentinel error wrapped by all parse failures.
var ErrInvalid = errors.New("invalid requirement")

var (
	namePattern    = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?`)
	versionPattern = regexp.MustCompile(`^[A-Za-z0-9._*+!]+(?:-[A-Za-z0-9._*+!]+)*$`)
	canonicalRuns  = regexp.MustCompile(`[-_.]+`)
)

type (
	// Requirement is a single parsed dependency specifier. It is immutable
	// once parsed; String reproduces a consistently formatted specifier.
	Requirement struct {
		// Name is the distribution name as written.
		Name string

		// Extras are the requested extras groups, if any.
		Extras []string

		// Specifiers are the version constraint clauses, if any.
		// Mutually exclusive with URL.
		Specifiers []Specifier

		// URL is a direct reference target ("name @ url"), if any.
		URL string

		// Marker is the raw environment marker text after ";", if any.
		Marker string
	}

	// Specifier is one version constraint clause, e.g. ">=2019.1".
	Specifier struct {
		Op      string
		Version string
	}

	// ParseError reports the offending line alongside the reason.
	// It wraps ErrInvalid for errors.Is() compatibility.
	ParseError struct {
		Line   string
		Reason string
	}
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid requirement %q: %s", e.Line, e.Reason)
}

// Unwrap returns ErrInvalid so callers can match with errors.Is.
func (e *ParseError) Unwrap() error {
	return ErrInvalid
}

// specifier operators, longest first so the scanner never splits "===" as "==".
var specifierOps = []string{"===", "==", "!=", "<=", ">=", "~=", "<", ">"}

// Parse parses a single PEP 508 requirement line.
func Parse(line string) (Requirement, error) {
	s := strings.TrimSpace(line)
	if s == "" {
		return Requirement{}, &ParseError{Line: line, Reason: "empty specifier"}
	}

	var req Requirement

	name := namePattern.FindString(s)
	if name == "" {
		return Requirement{}, &ParseError{Line: line, Reason: "expected package name"}
	}
	req.Name = name
	rest := strings.TrimLeft(s[len(name):], " \t")

	if strings.HasPrefix(rest, "[") {
		end := strings.Index(rest, "]")
		if end < 0 {
			return Requirement{}, &ParseError{Line: line, Reason: "unterminated extras list"}
		}
		extras, err := parseExtras(rest[1:end])
		if err != nil {
			return Requirement{}, &ParseError{Line: line, Reason: err.Error()}
		}
		req.Extras = extras
		rest = strings.TrimLeft(rest[end+1:], " \t")
	}

	if strings.HasPrefix(rest, "@") {
		url, marker := splitURLMarker(strings.TrimLeft(rest[1:], " \t"))
		if url == "" {
			return Requirement{}, &ParseError{Line: line, Reason: "missing URL after @"}
		}
		req.URL = url
		req.Marker = marker
		return req, nil
	}

	specPart := rest
	if i := strings.Index(rest, ";"); i >= 0 {
		specPart = strings.TrimSpace(rest[:i])
		req.Marker = strings.TrimSpace(rest[i+1:])
		if req.Marker == "" {
			return Requirement{}, &ParseError{Line: line, Reason: "empty environment marker"}
		}
	}

	specPart = strings.TrimSpace(specPart)
	specPart = strings.TrimPrefix(specPart, "(")
	specPart = strings.TrimSuffix(specPart, ")")
	specPart = strings.TrimSpace(specPart)

	if specPart != "" {
		specs, err := parseSpecifiers(specPart)
		if err != nil {
			return Requirement{}, &ParseError{Line: line, Reason: err.Error()}
		}
		req.Specifiers = specs
	}

	return req, nil
}

// ParseLines parses a list of requirement lines, skipping blank entries.
// It mirrors the single-pass validation the directive performs: the first
// malformed line aborts with a ParseError naming that line.
func ParseLines(lines []string) ([]Requirement, error) {
	reqs := make([]Requirement, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		req, err := Parse(line)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// String formats the requirement consistently: no spaces inside the
// specifier set, sorted extras, "; " before the marker.
func (r Requirement) String() string {
	var b strings.Builder
	b.WriteString(r.Name)

	if len(r.Extras) > 0 {
		extras := append([]string(nil), r.Extras...)
		sort.Strings(extras)
		b.WriteString("[")
		b.WriteString(strings.Join(extras, ","))
		b.WriteString("]")
	}

	if r.URL != "" {
		b.WriteString("@ ")
		b.WriteString(r.URL)
		if r.Marker != "" {
			b.WriteString(" ")
		}
	} else if len(r.Specifiers) > 0 {
		clauses := make([]string, len(r.Specifiers))
		for i, s := range r.Specifiers {
			clauses[i] = s.Op + s.Version
		}
		sort.Strings(clauses)
		b.WriteString(strings.Join(clauses, ","))
	}

	if r.Marker != "" {
		b.WriteString("; ")
		b.WriteString(r.Marker)
	}

	return b.String()
}

// CanonicalName returns the PEP 503 normalized form of the distribution
// name: lowercase, with runs of "-", "_" and "." collapsed to "-".
func (r Requirement) CanonicalName() string {
	return canonicalRuns.ReplaceAllString(strings.ToLower(r.Name), "-")
}

// SortByName sorts requirements by canonical name, in place.
// Requirement lists shown to readers are always name-ordered.
func SortByName(reqs []Requirement) {
	sort.SliceStable(reqs, func(i, j int) bool {
		return reqs[i].CanonicalName() < reqs[j].CanonicalName()
	})
}

// Strings formats a requirement list, one entry per element.
func Strings(reqs []Requirement) []string {
	out := make([]string, len(reqs))
	for i, r := range reqs {
		out[i] = r.String()
	}
	return out
}

func parseExtras(list string) ([]string, error) {
	var extras []string
	for _, part := range strings.Split(list, ",") {
		extra := strings.TrimSpace(part)
		if extra == "" {
			return nil, errors.New("empty extra name")
		}
		if namePattern.FindString(extra) != extra {
			return nil, fmt.Errorf("invalid extra name %q", extra)
		}
		extras = append(extras, extra)
	}
	return extras, nil
}

func parseSpecifiers(s string) ([]Specifier, error) {
	var specs []Specifier
	for _, clause := range strings.Split(s, ",") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			return nil, errors.New("empty version clause")
		}
		spec, err := parseSpecifier(clause)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func parseSpecifier(clause string) (Specifier, error) {
	for _, op := range specifierOps {
		if !strings.HasPrefix(clause, op) {
			continue
		}
		version := strings.TrimSpace(clause[len(op):])
		if !versionPattern.MatchString(version) {
			return Specifier{}, fmt.Errorf("invalid version %q in clause %q", version, clause)
		}
		return Specifier{Op: op, Version: version}, nil
	}
	return Specifier{}, fmt.Errorf("expected version operator in clause %q", clause)
}

// splitURLMarker splits "url ; marker" after a direct reference. PEP 508
// requires whitespace before the semicolon there, which keeps URLs that
// themselves contain ";" intact.
func splitURLMarker(s string) (url, marker string) {
	for i := 0; i < len(s); i++ {
		if s[i] != ';' {
			continue
		}
		if i > 0 && (s[i-1] == ' ' || s[i-1] == '\t') {
			return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
		}
	}
	return strings.TrimSpace(s), ""
}
