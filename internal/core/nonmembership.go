package core

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// NonMembershipWitness is a pair (d, v) satisfying
// A = g1*v + d*(e.x + alpha). v is resampled on every call to
// IssueNonMembershipWitness, so the witness for a given (A, e) is not
// unique.
type NonMembershipWitness struct {
	D bls12381.G1Affine
	V fr.Element
}

// IssueNonMembershipWitness samples v uniformly and sets
// d = (A - g1*v) * (e.x + alpha)^-1.
//
// Returns ErrSingularInput iff e.X + alpha == 0, for the same reason as
// IssueMembershipWitness. Re-checks the defining identity before returning
// and escalates any mismatch to ErrInvariantViolation: correct field
// arithmetic makes that mismatch unreachable, so its appearance means a
// library or implementation bug, not a bad input.
func IssueNonMembershipWitness(acc *Accumulator, sk *SecretKey, e Element) (*NonMembershipWitness, error) {
	var sum fr.Element
	sum.Add(&e.X, &sk.Alpha)
	if sum.IsZero() {
		return nil, ErrSingularInput
	}

	var v fr.Element
	if _, err := v.SetRandom(); err != nil {
		return nil, ErrRngFailure
	}

	_, _, g1Gen, _ := bls12381.Generators()
	var gV bls12381.G1Affine
	gV.ScalarMultiplication(&g1Gen, v.BigInt(new(big.Int)))

	var negGV bls12381.G1Affine
	negGV.Neg(&gV)

	var numerator bls12381.G1Affine
	numerator.Add(&acc.Value, &negGV)

	var inv fr.Element
	inv.Inverse(&sum)

	var d bls12381.G1Affine
	d.ScalarMultiplication(&numerator, inv.BigInt(new(big.Int)))

	// Self-check: A =?= g1*v + d*(e.x + alpha).
	var dPowSum bls12381.G1Affine
	dPowSum.ScalarMultiplication(&d, sum.BigInt(new(big.Int)))
	var reconstructed bls12381.G1Affine
	reconstructed.Add(&gV, &dPowSum)
	if !reconstructed.Equal(&acc.Value) {
		return nil, ErrInvariantViolation
	}

	return &NonMembershipWitness{D: d, V: v}, nil
}

// VerifyNonMembershipWitness evaluates
// e(A, g2) = e(g1*v, g2) * e(d, g2*alpha + g2*e.x) in GT. Never errors;
// malformed witnesses simply verify false.
func VerifyNonMembershipWitness(w *NonMembershipWitness, acc *Accumulator, e Element, pk *PublicKey) bool {
	_, _, g1Gen, _ := bls12381.Generators()
	var g1V bls12381.G1Affine
	g1V.ScalarMultiplication(&g1Gen, w.V.BigInt(new(big.Int)))

	var g2Y bls12381.G2Affine
	g2Y.ScalarMultiplication(&pk.G2, e.X.BigInt(new(big.Int)))
	var alphaPlusY bls12381.G2Affine
	alphaPlusY.Add(&pk.Alpha, &g2Y)

	lhs, err := bls12381.Pair([]bls12381.G1Affine{acc.Value}, []bls12381.G2Affine{pk.G2})
	if err != nil {
		return false
	}
	rhs, err := bls12381.Pair(
		[]bls12381.G1Affine{g1V, w.D},
		[]bls12381.G2Affine{pk.G2, alphaPlusY},
	)
	if err != nil {
		return false
	}
	return lhs.Equal(&rhs)
}

// SerializeNonMembershipWitness encodes w as d (uncompressed affine) followed
// by v (32-byte little-endian scalar).
func SerializeNonMembershipWitness(w *NonMembershipWitness) []byte {
	out := encodeG1(&w.D)
	return append(out, encodeScalarLE(&w.V)...)
}

// DeserializeNonMembershipWitness parses the encoding produced by
// SerializeNonMembershipWitness.
func DeserializeNonMembershipWitness(b []byte) (*NonMembershipWitness, error) {
	const g1Size = bls12381.SizeOfG1AffineUncompressed
	if len(b) != g1Size+fr.Bytes {
		return nil, newParseError("non_membership_witness", errWrongScalarLength(len(b)))
	}
	d, err := decodeG1("non_membership_witness.d", b[:g1Size])
	if err != nil {
		return nil, err
	}
	v, err := decodeScalarLE("non_membership_witness.v", b[g1Size:])
	if err != nil {
		return nil, err
	}
	return &NonMembershipWitness{D: d, V: v}, nil
}
