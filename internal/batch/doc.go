// SPDX-License-Identifier: MPL-2.0

// Package batch validates and formats many postcodes at once.
//
// Check reads one candidate per line from a reader and collects a Result for
// every line, including blank ones. LoadPartsDocument and FormatAll do the same
// for CUE or JSON documents listing postcode parts. Both produce reports whose
// ExitCode summarizes the worst outcome.
package batch
