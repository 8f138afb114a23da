// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the greeter.
// It implements a Cobra-based CLI that acts as an in-process consumer of the
// producers: each greet call produces an owned string, reads it, prints it and
// reclaims it exactly once. The contract command prints the C ABI surface of the
// shared library as a markdown table or JSON.
package cli
