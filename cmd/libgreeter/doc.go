// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// libgreeter is the greeter built as a C shared library.
//
// # Build
//
//	go build -buildmode=c-shared -o libgreeter.so ./cmd/libgreeter
//
// The build also writes libgreeter.h with these declarations:
//
//	char *hello_world(void);             // safe
//	char *hello_unchecked(char *name);   // caller validates name
//	char *hello(char *name);             // safe, validates name
//	char *greeter_version(void);         // safe
//	void  free_str(char *s);             // caller guarantees provenance and single use
//
// # Ownership
//
// Every char * returned by the library is a fresh allocation owned by the caller,
// who must release it with free_str exactly once. Do not pass it to free or to
// any other allocator, and do not read it after free_str. Returned strings carry
// no length, so read them up to the NUL terminator.
//
// # Example
//
//	char *s = hello("Ferris");
//	puts(s);       // Hello, Ferris!
//	free_str(s);
//
// # Configuration
//
// The first call to hello reads FFI_GREETER_CONFIG_FILE, FFI_GREETER_LOG and
// FFI_GREETER_MAX_NAME_BYTES. Fallbacks are not logged unless FFI_GREETER_LOG
// or the config file names a destination.
package main
