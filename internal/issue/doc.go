// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// It holds a catalog of Markdown help pages, one per failure a user can run
// into (an empty postcode, a rejected postcode, parts of the wrong type, an
// unreadable configuration file, ...), rendered for the terminal with glamour.
// ActionableError adds operation, resource and suggestions to an error.
package issue
