package core

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// scalarOf builds an fr.Element from a small int64, for tests that want
// literal, human-readable elements (x = 42) rather than payload-derived ones.
func scalarOf(t *testing.T, v int64) fr.Element {
	t.Helper()
	var s fr.Element
	s.SetInt64(v)
	return s
}
