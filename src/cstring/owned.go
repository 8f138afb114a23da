// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cstring

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"

import "unsafe"

// Owned is a NUL-terminated string allocated by this package with the C allocator.
//
// Only the producers in this package construct a non-nil Owned. Copies of an
// Owned share one handle, so releasing any copy invalidates all of them.
type Owned struct{ p unsafe.Pointer }

// Pointer returns the raw handle for passing across the C ABI.
// The caller takes over the duty to hand it back to [Reclaim] exactly once.
func (o Owned) Pointer() unsafe.Pointer { return o.p }

// IsNil reports whether o holds no handle, either because it is the zero value
// or because it has been released.
func (o Owned) IsNil() bool { return o.p == nil }

// Len returns the number of bytes before the NUL terminator.
func (o Owned) Len() int {
	if o.p == nil {
		return 0
	}
	return int(C.strlen((*C.char)(o.p)))
}

// Bytes returns a Go copy of the bytes before the NUL terminator.
func (o Owned) Bytes() []byte {
	if o.p == nil {
		return nil
	}
	return C.GoBytes(o.p, C.int(o.Len()))
}

// String returns a Go copy of the string.
func (o Owned) String() string {
	if o.p == nil {
		return ""
	}
	return C.GoString((*C.char)(o.p))
}

// Release reclaims the handle and clears o, so releasing the same variable
// twice is a no-op. Other copies of o are not cleared.
func (o *Owned) Release() {
	Reclaim(o.p)
	o.p = nil
}

// Reclaim frees a handle returned by a producer in this package.
//
// A nil handle is a no-op.
//
// # Safety
//
// p must come from this package's producers and must not have been reclaimed
// already. No registry is kept, so a foreign pointer or a second reclaim of the
// same handle is undefined behavior. Two goroutines must never reclaim the same
// handle concurrently.
func Reclaim(p unsafe.Pointer) {
	if p == nil {
		return
	}
	C.free(p)
}
