// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package contract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// Safety classifies who must uphold an operation's preconditions.
type Safety int

const (
	// Safe operations are total: any input yields a defined result.
	Safe Safety = iota
	// CallerValidated operations trust their input. The caller must validate it
	// before every call, and undefined behavior follows otherwise.
	CallerValidated
	// CallerOwnsProvenance operations trust that a handle came from this library
	// and is used exactly once.
	CallerOwnsProvenance
)

// String returns the class name used in tables and JSON.
func (s Safety) String() string {
	switch s {
	case Safe:
		return "safe"
	case CallerValidated:
		return "caller-validated"
	case CallerOwnsProvenance:
		return "caller-owns-provenance"
	default:
		return fmt.Sprintf("Safety(%d)", int(s))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (s Safety) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Operation is one exported C function.
type Operation struct {
	Export    string `json:"export"`
	Signature string `json:"signature"`
	Input     string `json:"input"`
	Output    string `json:"output"`
	Safety    Safety `json:"safety"`
}

// Operations returns the exported functions of the shared library, in export order.
func Operations() []Operation {
	return []Operation{
		{
			Export:    "hello_world",
			Signature: "char *hello_world(void)",
			Input:     "none",
			Output:    "owned handle to \"Hello, world!\"",
			Safety:    Safe,
		},
		{
			Export:    "hello_unchecked",
			Signature: "char *hello_unchecked(char *name)",
			Input:     "caller-owned NUL-terminated name, non-null",
			Output:    "owned handle to \"Hello, <name>!\"",
			Safety:    CallerValidated,
		},
		{
			Export:    "hello",
			Signature: "char *hello(char *name)",
			Input:     "caller-owned name, may be null or untrusted",
			Output:    "owned handle, \"Hello, world!\" on invalid input",
			Safety:    Safe,
		},
		{
			Export:    "greeter_version",
			Signature: "char *greeter_version(void)",
			Input:     "none",
			Output:    "owned handle to the library version",
			Safety:    Safe,
		},
		{
			Export:    "free_str",
			Signature: "void free_str(char *s)",
			Input:     "owned handle from a producer above, or null",
			Output:    "none",
			Safety:    CallerOwnsProvenance,
		},
	}
}

// RenderTable renders ops as a markdown table.
func RenderTable(ops []Operation) (string, error) {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	table.Header("Export", "Signature", "Input", "Output", "Safety")

	rows := make([][]string, 0, len(ops))
	for _, op := range ops {
		rows = append(rows, []string{op.Export, op.Signature, op.Input, op.Output, op.Safety.String()})
	}

	if err := table.Bulk(rows); err != nil {
		return "", fmt.Errorf("failed to add contract rows: %w", err)
	}
	if err := table.Render(); err != nil {
		return "", fmt.Errorf("failed to render contract table: %w", err)
	}
	return buf.String(), nil
}

// RenderJSON renders ops as indented JSON.
func RenderJSON(ops []Operation) (string, error) {
	data, err := json.MarshalIndent(ops, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal contract: %w", err)
	}
	return string(data), nil
}
