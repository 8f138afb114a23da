// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// FallbackName is returned by GetExecutableName when os.Args[0] is unusable.
const FallbackName = "ffi-greeter"

// GetExecutableName returns the executable name without extension, cross-platform compatible.
// It extracts the last path component of os.Args[0], splitting on both '/' and '\'
// so a Windows-style path still resolves on Unix, and drops a trailing .exe.
//
//   - Linux/macOS: "ffi-greeter" from "/usr/local/bin/ffi-greeter"
//   - Windows: "ffi-greeter" from "C:\bin\ffi-greeter.exe"
//   - Fallback: [FallbackName] if os.Args[0] is empty or missing
func GetExecutableName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return FallbackName
	}

	parts := strings.FieldsFunc(os.Args[0], func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return FallbackName
	}

	name := strings.TrimSuffix(parts[len(parts)-1], ".exe")
	if name == "" {
		return FallbackName
	}
	return name
}
