// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package guard

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/k14s/starlark-go/starlark"
)

// Parameters are the named values guards can refer to.
type Parameters map[string]interface{}

// Names returns parameter names in sorted order.
func (p Parameters) Names() []string {
	var names []string
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that every value can be used from a guard.
func (p Parameters) Validate() error {
	for _, name := range p.Names() {
		_, err := NewGoValue(p[name]).AsStarlarkValue()
		if err != nil {
			return fmt.Errorf("Parameter '%s': %s", name, err)
		}
	}
	return nil
}

// GoValue converts parameter values into Starlark values.
type GoValue struct {
	val interface{}
}

func NewGoValue(val interface{}) GoValue {
	return GoValue{val}
}

func (e GoValue) AsStarlarkValue() (starlark.Value, error) {
	switch typedVal := e.val.(type) {
	case bool:
		return starlark.Bool(typedVal), nil

	case string:
		return starlark.String(typedVal), nil

	case int:
		return starlark.MakeInt(typedVal), nil

	case int64:
		return starlark.MakeInt64(typedVal), nil

	case uint:
		return starlark.MakeUint(typedVal), nil

	case uint64:
		return starlark.MakeUint64(typedVal), nil

	case float64:
		return starlark.Float(typedVal), nil
	}

	// named types and remaining sizes
	if e.val != nil {
		rv := reflect.ValueOf(e.val)
		switch rv.Kind() {
		case reflect.Bool:
			return starlark.Bool(rv.Bool()), nil
		case reflect.String:
			return starlark.String(rv.String()), nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return starlark.MakeInt64(rv.Int()), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return starlark.MakeUint64(rv.Uint()), nil
		case reflect.Float32, reflect.Float64:
			return starlark.Float(rv.Float()), nil
		}
	}

	return nil, fmt.Errorf("Expected value to be a string, bool, integer or float, but was %T", e.val)
}
