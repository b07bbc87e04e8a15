// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// Every user-facing failure of the documentation build is an ActionableError
// carrying the operation, the resource involved, and remediation suggestions.
// Recurring failure classes additionally have a catalog entry with
// Markdown-formatted guidance rendered to the terminal via glamour.
package issue
