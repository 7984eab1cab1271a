// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package vurfmeta holds the editable tree of a packages document
(tree of vurfmeta.Node's) along with the operations used to query and
modify the package sets it declares.
*/
package vurfmeta
