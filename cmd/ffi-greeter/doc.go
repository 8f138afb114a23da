// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// ffi-greeter is a command-line consumer of the greeter producers. It runs the
// same code the shared library exports, in-process, and shows the lifecycle of
// an owned string: produce, read, reclaim.
//
// # Installation
//
// Install with Go 1.25.5 or later and cgo enabled:
//
//	go install github.com/H0llyW00dzZ/ffi-greeter/cmd/ffi-greeter@latest
//
// # Usage
//
//	ffi-greeter greet [NAME] [FLAGS]
//	ffi-greeter contract [--format markdown|json]
//
// # Flags
//
//	-c, --config   Config file (.json, .yaml, .yml) (default: $FFI_GREETER_CONFIG_FILE)
//	-m, --mode     Producer: checked, unchecked or unconditional (greet only)
//	    --null     Pass a null name handle (greet only)
//	-v, --verbose  Log handle addresses, lengths and reclamation (greet only)
//	-f, --format   markdown or json (contract only)
//
// # Examples
//
// Greet through the checked producer:
//
//	ffi-greeter greet Ferris
//
// Show the fallback for a null handle:
//
//	ffi-greeter greet --null -v
//
// Print the ABI surface as JSON:
//
//	ffi-greeter contract --format json
package main
