// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package vurfsyntax scans and parses the packages format into a concrete syntax
tree.

The format is indentation sensitive. Scanner converts changes in leading
whitespace into INDENT and DEDENT tokens (two columns per level, a tab counts
as two columns) so that Parser only deals with explicit blocks:

	file          := (with_stmt | comment_stmt)*
	statement     := comment_stmt | package_stmt | ellipsis_stmt | if_stmt
	with_stmt     := "with" NAME ":" block
	if_stmt       := "if" EXPR ":" block elif_stmt* else_stmt?
	elif_stmt     := "elif" EXPR ":" block
	else_stmt     := "else" ":" block
	block         := NEWLINE INDENT statement+ DEDENT
	package_stmt  := PACKAGE comment_stmt?
	comment_stmt  := "#" TEXT
	ellipsis_stmt := "..."

For example:

	# tools for every machine
	with brew:
	  git
	  "multi word package"  # quoted because of the spaces
	  if has_display:
	    firefox
	  else:
	    lynx

Parser is single pass with one token of lookahead. Guard expressions (EXPR)
are kept as unparsed text; see package guard for their evaluation.
*/
package vurfsyntax
