package server

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/bilibili-mcp/go-bilibili-mcp/src/bilibili"
	"github.com/bilibili-mcp/go-bilibili-mcp/src/search"
)

// args wraps the raw arguments of one tool call.
type args map[string]interface{}

func (a args) present(name string) bool {
	v, ok := a[name]
	return ok && v != nil
}

func (a args) requireString(name string) (string, error) {
	if !a.present(name) {
		return "", fmt.Errorf("missing required argument %q", name)
	}
	s, err := cast.ToStringE(a[name])
	if err != nil {
		return "", fmt.Errorf("argument %q: %w", name, err)
	}
	return s, nil
}

func (a args) optString(name string) (string, error) {
	if !a.present(name) {
		return "", nil
	}
	s, err := cast.ToStringE(a[name])
	if err != nil {
		return "", fmt.Errorf("argument %q: %w", name, err)
	}
	return s, nil
}

func (a args) intOr(name string, def int) (int, error) {
	if !a.present(name) {
		return def, nil
	}
	n, err := toInt(a[name])
	if err != nil {
		return 0, fmt.Errorf("argument %q: %w", name, err)
	}
	return n, nil
}

func (a args) optInt(name string) (*int, error) {
	if !a.present(name) {
		return nil, nil
	}
	n, err := toInt(a[name])
	if err != nil {
		return nil, fmt.Errorf("argument %q: %w", name, err)
	}
	return &n, nil
}

// toInt accepts JSON numbers with no fractional part and decimal strings.
// Strings are parsed in base 10 so "08" stays 8. Booleans are rejected.
func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case string:
		return strconv.Atoi(strings.TrimSpace(n))
	case bool:
		return 0, fmt.Errorf("expected an integer, got %t", n)
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("expected an integer, got %v", n)
		}
	case float32:
		if float64(n) != math.Trunc(float64(n)) {
			return 0, fmt.Errorf("expected an integer, got %v", n)
		}
	}
	return cast.ToIntE(v)
}

// category reads a category given either as a number, a numeric string or
// an enumeration name.
func (a args) category(name string) (search.CategoryRef, error) {
	if !a.present(name) {
		return search.CategoryRef{}, nil
	}
	switch v := a[name].(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return search.CategoryRef{}, nil
		}
		if n, err := strconv.Atoi(s); err == nil {
			return search.CategoryCode(n), nil
		}
		return search.CategoryName(v), nil
	default:
		n, err := toInt(v)
		if err != nil {
			return search.CategoryRef{}, fmt.Errorf("argument %q: %w", name, err)
		}
		return search.CategoryCode(n), nil
	}
}

// credential reads a login credential object. A JSON-encoded string is
// accepted too.
func (a args) credential(name string) (*bilibili.Credential, error) {
	if !a.present(name) {
		return nil, nil
	}
	m, err := cast.ToStringMapStringE(a[name])
	if err != nil {
		return nil, fmt.Errorf("argument %q: %w", name, err)
	}
	cred := &bilibili.Credential{
		Sessdata:   m["sessdata"],
		BiliJct:    m["bili_jct"],
		Buvid3:     m["buvid3"],
		DedeUserID: m["dedeuserid"],
	}
	if cred.IsEmpty() {
		return nil, nil
	}
	return cred, nil
}
