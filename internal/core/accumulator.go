package core

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Accumulator is a single G1 point: the constant-size commitment to
// everything added so far. The zero value is not meaningful; use
// NewAccumulator.
type Accumulator struct {
	Value bls12381.G1Affine
}

// NewAccumulator returns A = g1. No RNG, no secret key needed.
func NewAccumulator() *Accumulator {
	_, _, g1Gen, _ := bls12381.Generators()
	return &Accumulator{Value: g1Gen}
}

// Add mutates the accumulator in place: A' = e.P + A*alpha. It is
// non-commutative at the byte level (A after add(x) then add(y) differs
// from A after add(y) then add(x)) and does not deduplicate: adding the same
// element twice produces a distinct, valid state.
func (a *Accumulator) Add(sk *SecretKey, e Element) {
	var scaled bls12381.G1Affine
	scaled.ScalarMultiplication(&a.Value, sk.Alpha.BigInt(new(big.Int)))

	var next bls12381.G1Affine
	next.Add(&e.P, &scaled)
	a.Value = next
}

// Serialize encodes the accumulator as the canonical uncompressed affine
// encoding of its single G1 point.
func Serialize(a *Accumulator) []byte {
	return encodeG1(&a.Value)
}

// Deserialize parses the encoding produced by Serialize.
func Deserialize(b []byte) (*Accumulator, error) {
	p, err := decodeG1("accumulator", b)
	if err != nil {
		return nil, err
	}
	return &Accumulator{Value: p}, nil
}
