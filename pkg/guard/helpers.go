// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package guard

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"carvel.dev/vurf/pkg/spell"
	"github.com/k14s/starlark-go/starlark"
	"github.com/k14s/starlark-go/syntax"
)

type helperFunc func(e *Evaluator, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

var helpers = map[string]helperFunc{
	"env":     envHelper,
	"has_env": hasEnvHelper,
	"exists":  statHelper("exists", func(fs.FileInfo) bool { return true }),
	"is_file": statHelper("is_file", func(info fs.FileInfo) bool { return info.Mode().IsRegular() }),
	"is_dir":  statHelper("is_dir", func(info fs.FileInfo) bool { return info.IsDir() }),
	"defined": definedHelper,
}

// HelperNames returns names of functions callable from guards.
func HelperNames() []string {
	var result []string
	for name := range helpers {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

func helperOf(expr *syntax.CallExpr) (helperFunc, error) {
	ident, ok := expr.Fn.(*syntax.Ident)
	if !ok {
		return nil, fmt.Errorf("Expected called function to be one of: %s", strings.Join(HelperNames(), ", "))
	}
	fn, found := helpers[ident.Name]
	if !found {
		if hint := spell.Hint(ident.Name, HelperNames()); len(hint) > 0 {
			return nil, fmt.Errorf("Unknown function '%s'%s", ident.Name, hint)
		}
		return nil, fmt.Errorf("Unknown function '%s' (expected one of: %s)", ident.Name, strings.Join(HelperNames(), ", "))
	}
	return fn, nil
}

func envHelper(e *Evaluator, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name, defaultVal string
	err := starlark.UnpackArgs("env", args, kwargs, "name", &name, "default?", &defaultVal)
	if err != nil {
		return nil, err
	}
	if val, found := e.host.LookupEnv(name); found {
		return starlark.String(val), nil
	}
	return starlark.String(defaultVal), nil
}

func hasEnvHelper(e *Evaluator, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	err := starlark.UnpackArgs("has_env", args, kwargs, "name", &name)
	if err != nil {
		return nil, err
	}
	_, found := e.host.LookupEnv(name)
	return starlark.Bool(found), nil
}

func definedHelper(e *Evaluator, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	err := starlark.UnpackArgs("defined", args, kwargs, "name", &name)
	if err != nil {
		return nil, err
	}
	_, found := e.params[name]
	return starlark.Bool(found), nil
}

// statHelper builds a path predicate. Paths that cannot be stat'ed for
// any reason do not satisfy it.
func statHelper(name string, pred func(fs.FileInfo) bool) helperFunc {
	return func(e *Evaluator, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var path string
		err := starlark.UnpackArgs(name, args, kwargs, "path", &path)
		if err != nil {
			return nil, err
		}
		path, err = ExpandHome(e.host, path)
		if err != nil {
			return nil, fmt.Errorf("%s: %s", name, err)
		}
		info, err := e.host.Stat(path)
		if err != nil {
			return starlark.False, nil
		}
		return starlark.Bool(pred(info)), nil
	}
}
