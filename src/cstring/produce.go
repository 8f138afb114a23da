// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cstring

// #include <string.h>
import "C"

import (
	"unsafe"

	"github.com/H0llyW00dzZ/ffi-greeter/src/internal/helper/gc"
)

const (
	greetingPrefix = "Hello, "
	greetingSuffix = "!"
	// FallbackName is the name used by [Greeting] and by every checked fallback.
	FallbackName = "world"
)

// compose writes "Hello, <name>!\x00" into a pooled buffer and copies it into
// C memory. The result never aliases name.
func compose(name []byte) Owned {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	buf.WriteString(greetingPrefix)
	buf.Write(name)
	buf.WriteString(greetingSuffix)
	buf.WriteByte(0)

	return Owned{p: C.CBytes(buf.Bytes())}
}

// Greeting returns a new "Hello, world!" string.
// It never fails and takes no input.
func Greeting() Owned { return compose([]byte(FallbackName)) }

// GreetUnchecked returns a new "Hello, <name>!" string without validating name.
//
// # Safety
//
// The caller must guarantee, before every call, that name is non-nil, points to a
// NUL-terminated byte sequence, and stays valid until GreetUnchecked returns.
// Any violation is undefined behavior. Use [Greeter.Greet] for untrusted input.
func GreetUnchecked(name unsafe.Pointer) Owned {
	n := C.strlen((*C.char)(name))
	return compose(unsafe.Slice((*byte)(name), int(n)))
}

// FromString copies s into a new owned string.
// Bytes from the first NUL in s onward are not visible to C readers.
func FromString(s string) Owned { return Owned{p: unsafe.Pointer(C.CString(s))} }
