package search

import (
	"fmt"
	"strings"
)

type option[T any] struct {
	name  string
	value T
}

func opt[T any](name string, value T) option[T] {
	return option[T]{name: name, value: value}
}

// table maps upper-case option names onto typed values and remembers their
// declaration order for error listings.
type table[T any] struct {
	what  string // used in the error message, e.g. "order type"
	field string // key of the list in ErrorResult, e.g. "valid_orders"
	names []string
	index map[string]T
}

// newTable builds a table. It panics on empty, lower-case or duplicate
// names so a broken table fails at package init.
func newTable[T any](what, field string, opts ...option[T]) *table[T] {
	t := &table[T]{
		what:  what,
		field: field,
		names: make([]string, 0, len(opts)),
		index: make(map[string]T, len(opts)),
	}
	for _, o := range opts {
		if o.name == "" || o.name != strings.ToUpper(o.name) {
			panic(fmt.Sprintf("search: bad %s option name %q", what, o.name))
		}
		if _, dup := t.index[o.name]; dup {
			panic(fmt.Sprintf("search: duplicate %s option %q", what, o.name))
		}
		t.names = append(t.names, o.name)
		t.index[o.name] = o.value
	}
	return t
}

// resolve looks input up case-insensitively. On a miss it returns an
// ErrorResult listing every accepted name.
func (t *table[T]) resolve(input string) (T, *ErrorResult) {
	if v, ok := t.index[strings.ToUpper(input)]; ok {
		return v, nil
	}
	var zero T
	return zero, &ErrorResult{
		Code:    ErrorCode,
		Message: fmt.Sprintf("invalid %s: %s", t.what, input),
		Field:   t.field,
		Valid:   t.Names(),
	}
}

// Names returns the accepted names in declaration order.
func (t *table[T]) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}
