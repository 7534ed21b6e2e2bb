// Package textutil provides small text helpers shared across shelf.
//
// Title lookups in the catalog are case-insensitive; FoldKey and EqualFold
// apply full Unicode case folding so "STRASSE" and "Straße" compare equal.
package textutil
