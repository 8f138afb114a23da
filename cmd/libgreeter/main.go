// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import verpkg "github.com/H0llyW00dzZ/ffi-greeter/src/version"

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

// main is required by -buildmode=c-shared and never runs.
func main() {}
