// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that fail fast on
// setup errors and restore process state on cleanup.
//
// Helpers cover environment variables (MustSetenv, MustUnsetenv, SetHomeDir),
// the working directory (MustChdir) and fixture files (MustMkdirAll,
// MustWriteFile).
package testutil
