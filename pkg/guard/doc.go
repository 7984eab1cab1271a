// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package guard evaluates the conditions of "if" and "elif" blocks.

Guards use Starlark expression syntax but only a small subset of it is
accepted: parameter names, True/False, string and number literals,
parentheses, "not", "and", "or", comparisons, "in"/"not in", unary
signs and calls to these helpers:

	env(name, default="")   value of an environment variable
	has_env(name)           whether an environment variable is set
	exists(path)            whether a path exists ("~" is expanded)
	is_file(path)
	is_dir(path)
	defined(name)           whether a parameter is set

A guard must evaluate to a bool.
*/
package guard
