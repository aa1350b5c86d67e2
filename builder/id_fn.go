// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// id_fn.go — vertex ID schemes.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to a vertex ID.
type IDFn func(idx int) string

// DefaultIDFn renders decimal IDs: "0", "1", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// symbolIDCount is the number of IDs SymbolIDFn can render.
const symbolIDCount = 26

// SymbolIDFn renders "A".."Z". Panics outside [0,25]; WithSymbolIDs makes
// constructors reject larger graphs instead.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx >= symbolIDCount {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string(rune('A' + idx))
}

// ExcelColumnIDFn renders spreadsheet column names: A..Z, AA, AB, ...
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixIDFn renders prefix followed by the decimal index, e.g. "V0", "V1".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbolIDs uses SymbolIDFn; constructors needing more than 26 vertices
// fail with ErrConstructFailed.
func WithSymbolIDs() BuilderOption {
	return func(c *builderConfig) {
		c.idFn = SymbolIDFn
		c.idLimit = symbolIDCount
	}
}

// WithExcelColumnIDs uses ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithPrefixIDs uses PrefixIDFn(prefix).
func WithPrefixIDs(prefix string) BuilderOption { return WithIDScheme(PrefixIDFn(prefix)) }
