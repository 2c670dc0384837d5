package core

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// MembershipWitness is a single G1 point W relating an Element e to an
// Accumulator A under a SecretKey alpha by W = A * (e.x + alpha)^-1.
type MembershipWitness struct {
	W bls12381.G1Affine
}

// IssueMembershipWitness computes W = A * (e.x + alpha)^-1.
//
// The generator does not check that e was ever accumulated: a witness for a
// non-member Element is computed exactly the same way, and simply fails the
// pairing check in Verify by construction. Issuers are responsible for only
// publishing witnesses for Elements they know were added.
//
// Returns ErrSingularInput iff e.X + alpha == 0 — a catastrophic case that
// would reveal alpha were it silently tolerated.
func IssueMembershipWitness(acc *Accumulator, sk *SecretKey, e Element) (*MembershipWitness, error) {
	var sum fr.Element
	sum.Add(&e.X, &sk.Alpha)
	if sum.IsZero() {
		return nil, ErrSingularInput
	}

	var inv fr.Element
	inv.Inverse(&sum)

	var w bls12381.G1Affine
	w.ScalarMultiplication(&acc.Value, inv.BigInt(new(big.Int)))
	return &MembershipWitness{W: w}, nil
}

// VerifyMembershipWitness evaluates e(W, g2*alpha) * e(e.P, g2) = e(A, g2)
// in GT. It never errors; malformed algebraic relationships simply verify
// false.
func VerifyMembershipWitness(w *MembershipWitness, acc *Accumulator, e Element, pk *PublicKey) bool {
	lhs, err := bls12381.Pair(
		[]bls12381.G1Affine{w.W, e.P},
		[]bls12381.G2Affine{pk.Alpha, pk.G2},
	)
	if err != nil {
		return false
	}
	rhs, err := bls12381.Pair(
		[]bls12381.G1Affine{acc.Value},
		[]bls12381.G2Affine{pk.G2},
	)
	if err != nil {
		return false
	}
	return lhs.Equal(&rhs)
}

// SerializeMembershipWitness encodes w as the canonical uncompressed affine
// encoding of its G1 point.
func SerializeMembershipWitness(w *MembershipWitness) []byte {
	return encodeG1(&w.W)
}

// DeserializeMembershipWitness parses the encoding produced by
// SerializeMembershipWitness.
func DeserializeMembershipWitness(b []byte) (*MembershipWitness, error) {
	p, err := decodeG1("membership_witness", b)
	if err != nil {
		return nil, err
	}
	return &MembershipWitness{W: p}, nil
}
