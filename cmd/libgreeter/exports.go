// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import "C"

import (
	"unsafe"

	"github.com/H0llyW00dzZ/ffi-greeter/src/cstring"
)

// Every string returned below is allocated by this library and must be handed
// back to free_str exactly once. Freeing it any other way is undefined behavior.

//export hello_world
func hello_world() *C.char {
	return (*C.char)(cstring.Greeting().Pointer())
}

// hello_unchecked greets name without validating it.
//
// # Safety
//
// name must be non-null, NUL-terminated, and valid for the duration of the call.
//
//export hello_unchecked
func hello_unchecked(name *C.char) *C.char {
	return (*C.char)(cstring.GreetUnchecked(unsafe.Pointer(name)).Pointer())
}

// hello greets name, or returns "Hello, world!" when name is null, not valid
// UTF-8, unreadable, or longer than an explicitly configured maxNameBytes.
// Names of any length are accepted by default. It never returns null.
//
//export hello
func hello(name *C.char) *C.char {
	return (*C.char)(sharedGreeter().Greet(unsafe.Pointer(name)).Pointer())
}

//export greeter_version
func greeter_version() *C.char {
	return (*C.char)(cstring.FromString(version).Pointer())
}

// free_str releases a string returned by this library. Null is a no-op.
//
// # Safety
//
// s must come from this library and must not have been freed already.
//
//export free_str
func free_str(s *C.char) {
	cstring.Reclaim(unsafe.Pointer(s))
}
