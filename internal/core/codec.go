package core

import (
	"crypto/sha256"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// hashToScalar implements spec's hash-to-scalar collaborator: SHA-256 of the
// payload, interpreted as a big-endian integer and reduced modulo r.
func hashToScalar(payload []byte) fr.Element {
	digest := sha256.Sum256(payload)
	var x fr.Element
	x.SetBigInt(new(big.Int).SetBytes(digest[:]))
	return x
}

// hashToChallenge implements the sigma-protocol's Fiat-Shamir challenge:
// SHA-256 over the uncompressed affine encodings of A, e.X, T1, T2 in that
// order, interpreted as a LITTLE-endian integer and reduced modulo r. The
// little-endian convention (as opposed to hashToScalar's big-endian one) is
// inherited verbatim from the reference implementation's challenge
// derivation and must not be "fixed" to match hashToScalar.
func hashToChallenge(acc, elemX *bls12381.G1Affine, t1 *bls12381.G1Affine, t2 *bls12381.G2Affine) fr.Element {
	h := sha256.New()
	accBytes := acc.RawBytes()
	elemBytes := elemX.RawBytes()
	t1Bytes := t1.RawBytes()
	t2Bytes := t2.RawBytes()
	h.Write(accBytes[:])
	h.Write(elemBytes[:])
	h.Write(t1Bytes[:])
	h.Write(t2Bytes[:])
	digest := h.Sum(nil)

	reversed := make([]byte, len(digest))
	for i, b := range digest {
		reversed[len(digest)-1-i] = b
	}

	var c fr.Element
	c.SetBigInt(new(big.Int).SetBytes(reversed))
	return c
}

// encodeG1 returns the canonical uncompressed affine encoding of p.
func encodeG1(p *bls12381.G1Affine) []byte {
	b := p.RawBytes()
	return b[:]
}

// encodeG2 returns the canonical uncompressed affine encoding of p.
func encodeG2(p *bls12381.G2Affine) []byte {
	b := p.RawBytes()
	return b[:]
}

// decodeG1 parses the canonical uncompressed affine encoding of a G1 point.
func decodeG1(field string, b []byte) (bls12381.G1Affine, error) {
	var p bls12381.G1Affine
	if _, err := p.SetBytes(b); err != nil {
		return p, newParseError(field, err)
	}
	return p, nil
}

// decodeG2 parses the canonical uncompressed affine encoding of a G2 point.
func decodeG2(field string, b []byte) (bls12381.G2Affine, error) {
	var p bls12381.G2Affine
	if _, err := p.SetBytes(b); err != nil {
		return p, newParseError(field, err)
	}
	return p, nil
}

// encodeScalarLE returns s as a 32-byte little-endian scalar, per spec's
// proof serialisation rule for the response field s.
func encodeScalarLE(s *fr.Element) []byte {
	be := s.Bytes()
	out := make([]byte, len(be))
	for i, b := range be {
		out[len(be)-1-i] = b
	}
	return out
}

// decodeScalarLE parses a 32-byte little-endian scalar, reducing modulo r
// the same way hashToScalar and hashToChallenge do.
func decodeScalarLE(field string, b []byte) (fr.Element, error) {
	var s fr.Element
	if len(b) != fr.Bytes {
		return s, newParseError(field, errWrongScalarLength(len(b)))
	}
	be := make([]byte, len(b))
	for i, c := range b {
		be[len(b)-1-i] = c
	}
	s.SetBigInt(new(big.Int).SetBytes(be))
	return s, nil
}

type wrongScalarLength int

func (n wrongScalarLength) Error() string {
	return "unexpected scalar length"
}

func errWrongScalarLength(n int) error {
	return wrongScalarLength(n)
}
