// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cstring implements NUL-terminated strings that are owned by this
// library and handed across the C ABI.
//
// # Ownership
//
// Every producer ([Greeting], [GreetUnchecked], [Greeter.Greet], [FromString])
// allocates a fresh block with the C allocator and returns it as an [Owned].
// From that moment the bytes belong to the caller: this package keeps no
// reference to them and never writes to them again. Ownership comes back only
// through [Reclaim], the single place that calls C free. After reclamation the
// handle must not be read or reclaimed again.
//
// Handles carry no length. Readers must scan to the NUL terminator and must not
// assume a maximum length.
//
// # Safety classes
//
//   - [Greeting] and [FromString] take no foreign input and are always safe.
//   - [GreetUnchecked] trusts its input pointer. Passing anything other than a
//     live NUL-terminated string is undefined behavior.
//   - [Greeter.Greet] validates its input and never fails. Invalid input yields
//     the same bytes as [Greeting].
//   - [Reclaim] does no provenance tracking. Reclaiming a foreign pointer, or
//     one handle twice, is undefined behavior.
//
// Allocation failure inside a producer is fatal to the process, the same
// policy the Go runtime applies to a failed C malloc.
package cstring
