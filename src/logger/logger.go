// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/H0llyW00dzZ/ffi-greeter/src/internal/helper/gc"
)

// Logger defines the interface for logging operations.
// It provides methods for different log levels and formatted output.
//
// This interface supports both the CLI consumer and the shared library,
// allowing seamless switching between human-readable output and structured logging.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stdout, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// JSONLogger implements Logger with one JSON object per line.
//
// It is the logger used inside the shared library, where the host process owns
// stdout and stderr. It is silent by default and only writes when the
// configuration names a destination.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
}

// logEntry is the wire shape of a single JSONLogger line.
type logEntry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// NewJSONLogger creates a new structured logger.
// A nil writer is replaced with [io.Discard].
// Set silent=false and provide a writer to enable structured logging to a file or stderr.
func NewJSONLogger(writer io.Writer, silent bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{
		writer: writer,
		silent: silent,
	}
}

// Printf formats and logs a structured message in JSON format.
// Output is suppressed if silent mode is enabled.
//
// Printf is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) Printf(format string, v ...any) {
	if j.silent {
		return
	}
	j.write(fmt.Sprintf(format, v...))
}

// Println logs a structured message in JSON format.
// Output is suppressed if silent mode is enabled.
//
// Println is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) Println(v ...any) {
	if j.silent {
		return
	}
	j.write(fmt.Sprint(v...))
}

// write encodes msg into a pooled buffer and emits it as one line.
func (j *JSONLogger) write(msg string) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	// Encode appends the trailing newline.
	if err := json.NewEncoder(buf).Encode(logEntry{Level: "info", Message: msg}); err != nil {
		return
	}

	j.mu.Lock()
	j.writer.Write(buf.Bytes())
	j.mu.Unlock()
}

// SetOutput sets the output destination for the JSON logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) SetOutput(w io.Writer) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if w == nil {
		j.writer = io.Discard
	} else {
		j.writer = w
	}
}
