// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// The configuration loader validates extrasdoc.cue against an embedded
// schema; this package supplies the size guard applied before parsing and
// the error formatter that turns CUE validation errors into messages with
// JSON-path prefixes, e.g.:
//
//	extrasdoc.cue: ui.color_scheme: expected "auto" | "dark" | "light"
package cueutil
