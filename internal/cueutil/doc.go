// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides the shared CUE parsing flow used for the postcode
// configuration file and for parts documents:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify with schema
//  3. Validate and decode to Go struct
//
// # Usage
//
//	//go:embed parts_schema.cue
//	var schema []byte
//
//	result, err := cueutil.ParseAndDecode[Document](
//	    schema,
//	    data,
//	    "#PartsDocument",
//	    cueutil.WithFilename("parts.cue"),
//	)
//
// JSON is valid CUE, so the same flow accepts JSON documents.
package cueutil
