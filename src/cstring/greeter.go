// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cstring

import (
	"errors"
	"fmt"
	"runtime/debug"
	"unicode/utf8"
	"unsafe"

	"github.com/H0llyW00dzZ/ffi-greeter/src/logger"
)

// DefaultMaxNameBytes is the default scan bound of the checked producer. Zero
// means no bound: the scan stops only at the first NUL.
const DefaultMaxNameBytes = 0

var (
	// ErrNilName is reported for a nil input handle.
	ErrNilName = errors.New("cstring: nil name")
	// ErrUnterminated is reported when no NUL terminator is found within the scan bound.
	ErrUnterminated = errors.New("cstring: name is not NUL-terminated within bound")
	// ErrInvalidUTF8 is reported in strict mode for names that are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("cstring: name is not valid UTF-8")
	// ErrUnreadable is reported when reading the name panicked or faulted.
	ErrUnreadable = errors.New("cstring: name is unreadable")
)

// Greeter is the checked producer. It is immutable once built and safe for
// concurrent use.
type Greeter struct {
	maxNameBytes int
	strictUTF8   bool
	log          logger.Logger
}

// GreeterBuilder provides a fluent interface for configuring a [Greeter].
//
// Example usage:
//
//	g := cstring.NewGreeterBuilder().
//	    WithMaxNameBytes(256).
//	    WithLogger(log).
//	    Build()
type GreeterBuilder struct{ g Greeter }

// NewGreeterBuilder creates a builder with no scan bound, strict UTF-8
// validation, and a silent logger.
func NewGreeterBuilder() *GreeterBuilder {
	return &GreeterBuilder{g: Greeter{
		maxNameBytes: DefaultMaxNameBytes,
		strictUTF8:   true,
		log:          logger.NewJSONLogger(nil, true),
	}}
}

// WithMaxNameBytes opts into a scan bound: names longer than n bytes fall back.
// Values of zero or less remove the bound.
func (b *GreeterBuilder) WithMaxNameBytes(n int) *GreeterBuilder {
	b.g.maxNameBytes = max(n, 0)
	return b
}

// WithStrictUTF8 controls whether names that are not valid UTF-8 fall back.
func (b *GreeterBuilder) WithStrictUTF8(strict bool) *GreeterBuilder {
	b.g.strictUTF8 = strict
	return b
}

// WithLogger sets where fallbacks are reported. A nil logger is ignored.
func (b *GreeterBuilder) WithLogger(l logger.Logger) *GreeterBuilder {
	if l != nil {
		b.g.log = l
	}
	return b
}

// Build returns the configured Greeter. The builder may be reused afterwards.
func (b *GreeterBuilder) Build() *Greeter {
	g := b.g
	return &g
}

var defaultGreeter = NewGreeterBuilder().Build()

// Greet is [Greeter.Greet] on a Greeter with default settings.
func Greet(name unsafe.Pointer) Owned { return defaultGreeter.Greet(name) }

// Greet returns a new "Hello, <name>!" string, or a new "Hello, world!" string
// when name is rejected by [Greeter.Validate].
//
// Greet is total: it never panics and never returns a nil handle, whatever bytes
// name points to. The input is only read, never retained.
func (g *Greeter) Greet(name unsafe.Pointer) Owned {
	b, err := g.read(name)
	if err != nil {
		g.log.Printf("greeting fallback: %v", err)
		return Greeting()
	}
	return compose(b)
}

// Validate reports why name would be rejected by [Greeter.Greet], or nil if it
// would be greeted. The error wraps one of [ErrNilName], [ErrUnterminated],
// [ErrInvalidUTF8] or [ErrUnreadable].
func (g *Greeter) Validate(name unsafe.Pointer) error {
	_, err := g.read(name)
	return err
}

// read returns a view of the bytes before the NUL terminator. It never reads past
// the first NUL, and with a bound set it reads at most maxNameBytes+1 bytes.
func (g *Greeter) read(name unsafe.Pointer) (b []byte, err error) {
	if name == nil {
		return nil, ErrNilName
	}

	// A bad address becomes a recoverable panic instead of a fatal signal.
	defer debug.SetPanicOnFault(debug.SetPanicOnFault(true))
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, fmt.Errorf("%w: %v", ErrUnreadable, r)
		}
	}()

	n := -1
	for i := 0; g.maxNameBytes == 0 || i <= g.maxNameBytes; i++ {
		if *(*byte)(unsafe.Add(name, i)) == 0 {
			n = i
			break
		}
	}
	if n < 0 {
		return nil, fmt.Errorf("%w (%d bytes)", ErrUnterminated, g.maxNameBytes)
	}

	b = unsafe.Slice((*byte)(name), n)
	if g.strictUTF8 && !utf8.Valid(b) {
		return nil, ErrInvalidUTF8
	}
	return b, nil
}
