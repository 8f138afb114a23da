// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package contract describes the C ABI surface of the shared library as data:
// which functions exist, what they take and return, and who is liable when
// their preconditions are broken. The CLI renders it as a markdown table or
// JSON so consumers in other languages can check their bindings against it.
package contract
