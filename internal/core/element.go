package core

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Element is an accumulatable value: the pair (x, g1*x). The field X holds
// the scalar x and the field P holds the G1 point g1*x. Callers
// produce Elements from arbitrary byte payloads via ElementFromPayload; the
// pair is redundant by construction and callers must supply both
// consistently (ElementFromPayload always does).
type Element struct {
	X fr.Element
	P bls12381.G1Affine
}

// ElementFromPayload hashes an arbitrary byte payload to a scalar (see
// spec's hash-to-scalar collaborator) and lifts it to G1, producing a
// well-formed Element.
func ElementFromPayload(payload []byte) Element {
	x := hashToScalar(payload)
	var p bls12381.G1Affine
	p.ScalarMultiplicationBase(x.BigInt(new(big.Int)))
	return Element{X: x, P: p}
}

// ElementFromScalar lifts an already-derived scalar to an Element. Exposed
// for tests and callers (e.g. property-based tests) that need symbolic
// elements such as x = 42 rather than payload-derived ones.
func ElementFromScalar(x fr.Element) Element {
	var p bls12381.G1Affine
	p.ScalarMultiplicationBase(x.BigInt(new(big.Int)))
	return Element{X: x, P: p}
}
