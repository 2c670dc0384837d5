package core

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// SecretKey is the accumulator trapdoor: a single uniformly random scalar
// alpha in Fr. It is created once per accumulator instance and never
// mutated.
type SecretKey struct {
	Alpha fr.Element
}

// PublicKey is the pair (g2, g2*alpha) derived deterministically from a
// SecretKey. Safe to disclose: recovering alpha means solving a discrete log
// in G2.
type PublicKey struct {
	G2    bls12381.G2Affine
	Alpha bls12381.G2Affine
}

// GenerateSecretKey draws alpha uniformly from Fr using a cryptographically
// secure source. The only failure mode is the RNG itself refusing entropy.
func GenerateSecretKey() (*SecretKey, error) {
	var alpha fr.Element
	if _, err := alpha.SetRandom(); err != nil {
		return nil, ErrRngFailure
	}
	return &SecretKey{Alpha: alpha}, nil
}

// DerivePublicKey computes (g2, g2*alpha) from sk. Pure, no RNG.
func DerivePublicKey(sk *SecretKey) *PublicKey {
	_, _, _, g2Gen := bls12381.Generators()
	var alphaPoint bls12381.G2Affine
	alphaPoint.ScalarMultiplication(&g2Gen, sk.Alpha.BigInt(new(big.Int)))
	return &PublicKey{G2: g2Gen, Alpha: alphaPoint}
}

// SerializeSecretKey encodes sk as its 32-byte scalar encoding (big-endian,
// matching fr.Element's native byte order).
func SerializeSecretKey(sk *SecretKey) []byte {
	b := sk.Alpha.Bytes()
	return b[:]
}

// DeserializeSecretKey parses the encoding produced by SerializeSecretKey.
func DeserializeSecretKey(b []byte) (*SecretKey, error) {
	if len(b) != fr.Bytes {
		return nil, newParseError("secret_key", errWrongScalarLength(len(b)))
	}
	var alpha fr.Element
	alpha.SetBigInt(new(big.Int).SetBytes(b))
	return &SecretKey{Alpha: alpha}, nil
}

// SerializePublicKey encodes pk as g2 || alpha, each in canonical
// uncompressed affine form.
func SerializePublicKey(pk *PublicKey) []byte {
	out := make([]byte, 0, 2*len(encodeG2(&pk.G2)))
	out = append(out, encodeG2(&pk.G2)...)
	out = append(out, encodeG2(&pk.Alpha)...)
	return out
}

// DeserializePublicKey parses the encoding produced by SerializePublicKey.
func DeserializePublicKey(b []byte) (*PublicKey, error) {
	half := len(b) / 2
	if len(b)%2 != 0 || half == 0 {
		return nil, newParseError("public_key", errWrongScalarLength(len(b)))
	}
	g2, err := decodeG2("public_key.g2", b[:half])
	if err != nil {
		return nil, err
	}
	alpha, err := decodeG2("public_key.alpha", b[half:])
	if err != nil {
		return nil, err
	}
	return &PublicKey{G2: g2, Alpha: alpha}, nil
}
