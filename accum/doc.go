// Package accum is the binding surface over internal/core: the byte-oriented
// operation set a host-language binding (or a direct Go caller) actually
// calls, plus the synchronisation internal/core deliberately leaves out.
//
// Every function here operates on serialised bytes at the boundary and on
// internal/core values internally; nothing in this package does its own
// elliptic-curve arithmetic.
package accum
