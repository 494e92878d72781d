// SPDX-License-Identifier: Apache-2.0

package server

import (
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
)

// arguments wraps the raw tool-call arguments with typed accessors. The
// first failed access sticks as the error so a handler can build its whole
// parameter record before a single check. Unknown argument names are
// rejected up front: an argument the schema does not declare is a caller
// mistake, not something to silently ignore.
type arguments struct {
	raw map[string]any
	err error
}

func parseArguments(request mcp.CallToolRequest, allowed ...string) *arguments {
	raw := request.GetArguments()

	declared := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		declared[name] = struct{}{}
	}
	for name := range raw {
		if _, ok := declared[name]; !ok {
			return &arguments{err: fmt.Errorf("unknown argument %q", name)}
		}
	}
	return &arguments{raw: raw}
}

// Err returns the first access failure, or nil.
func (a *arguments) Err() error {
	return a.err
}

func (a *arguments) fail(format string, args ...any) {
	if a.err == nil {
		a.err = fmt.Errorf(format, args...)
	}
}

// stringVal returns the string argument, or fallback when absent.
func (a *arguments) stringVal(key, fallback string) string {
	value, ok := a.raw[key]
	if !ok || a.err != nil {
		return fallback
	}
	s, ok := value.(string)
	if !ok {
		a.fail("argument %q must be a string", key)
		return fallback
	}
	return s
}

// stringPtr returns the string argument, or nil when absent. Pointer form
// distinguishes "not provided" from an explicit empty string in updates.
func (a *arguments) stringPtr(key string) *string {
	value, ok := a.raw[key]
	if !ok || a.err != nil {
		return nil
	}
	s, ok := value.(string)
	if !ok {
		a.fail("argument %q must be a string", key)
		return nil
	}
	return &s
}

// intVal returns the integer argument, or fallback when absent.
func (a *arguments) intVal(key string, fallback int) int {
	n, ok := a.integer(key)
	if !ok {
		return fallback
	}
	return int(n)
}

// int64Val returns the integer argument, or zero when absent.
func (a *arguments) int64Val(key string) int64 {
	n, _ := a.integer(key)
	return n
}

// int64Ptr returns the integer argument, or nil when absent.
func (a *arguments) int64Ptr(key string) *int64 {
	n, ok := a.integer(key)
	if !ok {
		return nil
	}
	return &n
}

// boolVal returns the boolean argument, or fallback when absent.
func (a *arguments) boolVal(key string, fallback bool) bool {
	value, ok := a.raw[key]
	if !ok || a.err != nil {
		return fallback
	}
	b, ok := value.(bool)
	if !ok {
		a.fail("argument %q must be a boolean", key)
		return fallback
	}
	return b
}

// idList returns an integer array argument, or nil when absent.
func (a *arguments) idList(key string) []int64 {
	value, ok := a.raw[key]
	if !ok || a.err != nil {
		return nil
	}
	items, ok := value.([]any)
	if !ok {
		a.fail("argument %q must be an array of integers", key)
		return nil
	}
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		id, ok := toInt64(item)
		if !ok {
			a.fail("argument %q must be an array of integers", key)
			return nil
		}
		ids = append(ids, id)
	}
	return ids
}

// integer reads one integral number; JSON numbers arrive as float64.
func (a *arguments) integer(key string) (int64, bool) {
	value, ok := a.raw[key]
	if !ok || a.err != nil {
		return 0, false
	}
	n, ok := toInt64(value)
	if !ok {
		a.fail("argument %q must be an integer", key)
		return 0, false
	}
	return n, true
}

func toInt64(value any) (int64, bool) {
	switch n := value.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}
