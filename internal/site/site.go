// SPDX-License-Identifier: MPL-2.0

// Package site renders a documentation tree. Each Markdown page under the
// source directory is converted to HTML in the output directory; every
// extras-require directive is resolved exactly once along the way and
// recorded as an occurrence.
package site

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"

	"extrasdoc/internal/config"
	"extrasdoc/internal/directive"
	"extrasdoc/internal/issue"
)

type (
	// Builder renders the documentation tree described by a Config.
	Builder struct {
		cfg      *config.Config
		md       goldmark.Markdown
		resolver *directive.Resolver
		logger   *log.Logger
	}

	// Result is the outcome of a build or check pass.
	Result struct {
		// Pages counts the Markdown pages visited.
		Pages int

		// Occurrences lists every resolved directive, in page order.
		Occurrences []directive.Occurrence

		// Errors holds the per-directive and per-page failures. In strict
		// mode at most one entry is present.
		Errors []error
	}
)

// New creates a Builder for the given configuration.
func New(cfg *config.Config, logger *log.Logger) *Builder {
	return &Builder{
		cfg: cfg,
		md: goldmark.New(
			goldmark.WithExtensions(&directive.Extension{Project: cfg.Project}),
		),
		resolver: &directive.Resolver{PackageRoot: ResolveRoot(cfg)},
		logger:   logger,
	}
}

// ResolveRoot is the directory requirement sources resolve against:
// package_root joined onto the parent of the source dir. An absolute
// package_root is used as given.
func ResolveRoot(cfg *config.Config) string {
	if filepath.IsAbs(cfg.PackageRoot) {
		return cfg.PackageRoot
	}
	return filepath.Join(filepath.Dir(cfg.SourceDir), cfg.PackageRoot)
}

// Build renders every page to the output directory. In strict mode the
// first failing directive aborts the pass; otherwise failing pages are
// skipped and reported together in the Result.
func (b *Builder) Build() (*Result, error) {
	return b.run(true)
}

// Check resolves every directive on every page without writing output.
// All failures are collected regardless of strict mode.
func (b *Builder) Check() (*Result, error) {
	return b.run(false)
}

func (b *Builder) run(write bool) (*Result, error) {
	pages, err := b.listPages()
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, page := range pages {
		result.Pages++
		if err := b.renderPage(page, write, result); err != nil {
			if write && b.cfg.Strict {
				result.Errors = append(result.Errors, err)
				return result, err
			}
			result.Errors = append(result.Errors, err)
		}
	}
	return result, nil
}

// renderPage converts one page. A page with failing directives produces no
// output file.
func (b *Builder) renderPage(page string, write bool, result *Result) error {
	srcPath := filepath.Join(b.cfg.SourceDir, page)
	source, err := os.ReadFile(srcPath)
	if err != nil {
		return issue.WrapWithContext(err, "read page", srcPath)
	}

	doc := b.md.Parser().Parse(text.NewReader(source))

	occurrences, errs := b.resolver.ResolveAll(doc, source, page)
	result.Occurrences = append(result.Occurrences, occurrences...)
	for _, o := range occurrences {
		if len(o.Requirements) == 0 {
			b.logger.Warn("no requirements resolved, no notice will be shown",
				"page", o.Page, "line", o.Line, "extra", o.Extra)
		}
	}
	if len(errs) > 0 {
		if len(errs) == 1 {
			return errs[0]
		}
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return issue.NewErrorContext().
			WithOperation("render page").
			WithResource(page).
			Wrap(fmt.Errorf("%d directives failed:\n  %s", len(errs), strings.Join(msgs, "\n  "))).
			BuildError()
	}

	if !write {
		return nil
	}

	var buf bytes.Buffer
	if err := b.md.Renderer().Render(&buf, source, doc); err != nil {
		return issue.WrapWithContext(err, "render page", page)
	}

	outPath := filepath.Join(b.cfg.OutputDir, htmlName(page))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return issue.WrapWithContext(err, "create output directory", filepath.Dir(outPath))
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return issue.WrapWithContext(err, "write page", outPath)
	}

	b.logger.Debug("rendered page", "page", page, "out", outPath, "directives", len(occurrences))
	return nil
}

// listPages returns the Markdown pages under the source dir, sorted, as
// paths relative to it.
func (b *Builder) listPages() ([]string, error) {
	var pages []string
	err := filepath.WalkDir(b.cfg.SourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// The output dir may be nested under the source dir.
			abs, _ := filepath.Abs(path)
			out, _ := filepath.Abs(b.cfg.OutputDir)
			if abs == out {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".md") {
			rel, err := filepath.Rel(b.cfg.SourceDir, path)
			if err != nil {
				return err
			}
			pages = append(pages, rel)
		}
		return nil
	})
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("walk source directory").
			WithResource(b.cfg.SourceDir).
			WithSuggestion("Check the source_dir setting in extrasdoc.cue").
			Wrap(err).
			BuildError()
	}
	sort.Strings(pages)
	return pages, nil
}

func htmlName(page string) string {
	return strings.TrimSuffix(page, filepath.Ext(page)) + ".html"
}
