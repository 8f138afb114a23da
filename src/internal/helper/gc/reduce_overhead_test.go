// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or use this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"encoding/json"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ io.Writer = Buffer(nil)

// TestBufferInterface verifies that bytebufferpool.ByteBuffer satisfies Buffer interface
func TestBufferInterface(t *testing.T) {
	tests := []struct {
		name  string
		setup func(buf Buffer)
		want  []byte
	}{
		{
			name:  "Write byte slice",
			setup: func(buf Buffer) { buf.Write([]byte("hello")) },
			want:  []byte("hello"),
		},
		{
			name:  "WriteString",
			setup: func(buf Buffer) { buf.WriteString("Ferris") },
			want:  []byte("Ferris"),
		},
		{
			name: "NUL terminated greeting",
			setup: func(buf Buffer) {
				buf.WriteString("Hello, ")
				buf.Write([]byte("world"))
				buf.WriteByte('!')
				buf.WriteByte(0)
			},
			want: []byte("Hello, world!\x00"),
		},
		{
			name: "Reset clears buffer",
			setup: func(buf Buffer) {
				buf.WriteString("data to clear")
				buf.Reset()
			},
			want: []byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Default.Get()
			defer func() {
				buf.Reset()
				Default.Put(buf)
			}()

			tt.setup(buf)
			assert.Equal(t, len(tt.want), buf.Len())
			if len(tt.want) > 0 {
				assert.Equal(t, tt.want, buf.Bytes())
			}
		})
	}
}

// TestBufferAsEncoderTarget verifies a pooled buffer can back a JSON encoder
func TestBufferAsEncoderTarget(t *testing.T) {
	buf := Default.Get()
	defer func() {
		buf.Reset()
		Default.Put(buf)
	}()

	require.NoError(t, json.NewEncoder(buf).Encode(map[string]string{"level": "info"}))
	assert.Equal(t, "{\"level\":\"info\"}\n", string(buf.Bytes()))
}

// TestPoolGetPut verifies pool Get/Put operations
func TestPoolGetPut(t *testing.T) {
	buf1 := Default.Get()
	require.NotNil(t, buf1, "Get() returned nil buffer")

	buf1.WriteString("test data")
	assert.Equal(t, 9, buf1.Len(), "WriteString() length")
	buf1.Reset()
	assert.Equal(t, 0, buf1.Len(), "Reset() failed")

	// buf1 must not be accessed after this
	Default.Put(buf1)

	buf2 := Default.Get()
	require.NotNil(t, buf2, "Get() returned nil buffer after Put()")
	assert.Equal(t, 0, buf2.Len(), "Buffer from pool should be empty")

	buf2.Reset()
	Default.Put(buf2)
}

// TestGoroutineCooking verifies the pool is safe for concurrent use (with 100 goroutines sizzling!)
func TestGoroutineCooking(t *testing.T) {
	const goroutines = 100
	const iterations = 1000

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := range goroutines {
		go func(id int) {
			defer wg.Done()
			for range iterations {
				buf := Default.Get()

				buf.WriteString("Hello, goroutine #")
				buf.WriteByte(byte('0' + (id % 10)))
				buf.WriteString("!")

				assert.Equal(t, "Hello, goroutine #"+string(rune('0'+(id%10)))+"!", string(buf.Bytes()))

				buf.Reset()
				Default.Put(buf)
			}
		}(i)
	}

	wg.Wait()
}

// TestPoolPutNonByteBuffer verifies Put handles non-ByteBuffer types gracefully
func TestPoolPutNonByteBuffer(t *testing.T) {
	mock := &mockBuffer{}
	mock.WriteString("not pooled")

	assert.NotPanics(t, func() { Default.Put(mock) })
	assert.Equal(t, "not pooled", string(mock.Bytes()), "foreign buffer must be left untouched")
}

// TestMultipleGetPutCycles verifies multiple Get/Put cycles work correctly
func TestMultipleGetPutCycles(t *testing.T) {
	for i := range 10 {
		buf := Default.Get()

		buf.WriteString("cycle ")
		for range i {
			buf.WriteByte('*')
		}

		expected := "cycle " + strings.Repeat("*", i)
		assert.Equal(t, expected, string(buf.Bytes()), "Cycle %d", i)

		buf.Reset()
		Default.Put(buf)
	}
}
