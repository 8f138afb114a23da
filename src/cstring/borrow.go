// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cstring

import "unsafe"

// Borrowed returns a caller-owned, NUL-terminated copy of s in Go memory,
// suitable as the name argument of the producers. It is not an [Owned] and must
// never be passed to [Reclaim]. The garbage collector frees it once the returned
// pointer is no longer referenced.
func Borrowed(s string) unsafe.Pointer {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return unsafe.Pointer(&b[0])
}
