// SPDX-License-Identifier: MPL-2.0

// Package directive implements the extras-require Markdown block as a
// goldmark extension.
//
// The block form is:
//
//	extras-require:: dates
//	:scope: module
//	:file: requirements/dates.txt
//
// The marker line names the extra; following ":option: value" lines select
// the requirement source and scope; remaining lines are inline body content,
// used only when no source option is given. The block ends at a blank line.
//
// Parsing only collects syntax. Requirement resolution is a separate step
// (Resolver.ResolveAll) run between parse and render, so resolution failures
// surface as build errors with page positions instead of disappearing inside
// the Markdown pipeline.
package directive
