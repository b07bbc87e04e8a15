// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for extrasdoc.
//
// This package implements the Cobra command hierarchy for the extrasdoc CLI:
// the root command, the build and check passes, the terminal preview, and
// configuration utilities.
package cmd
