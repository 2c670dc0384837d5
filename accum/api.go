package accum

import (
	"github.com/vaultmesh/paccum/internal/core"
)

// GenerateKey draws a fresh SecretKey and returns its canonical encoding.
func GenerateKey() ([]byte, error) {
	sk, err := core.GenerateSecretKey()
	if err != nil {
		return nil, err
	}
	return core.SerializeSecretKey(sk), nil
}

// VerifyMembershipProof recomputes the Fiat-Shamir challenge and checks the
// proof's pairing equation against accBytes and the Element derived from
// payload. nonce is accepted for symmetry with GetMembershipProof's return
// value but is not incorporated into the check: per spec the challenge is
// fully determined by (A, e.X, T1, T2).
func VerifyMembershipProof(accBytes, proofBytes, pkBytes []byte, nonce [16]byte, payload []byte) (bool, error) {
	_ = nonce

	acc, err := core.Deserialize(accBytes)
	if err != nil {
		return false, err
	}
	proof, err := core.DeserializeMembershipProof(proofBytes)
	if err != nil {
		return false, err
	}
	pk, err := core.DeserializePublicKey(pkBytes)
	if err != nil {
		return false, err
	}
	e := core.ElementFromPayload(payload)
	return core.VerifyMembershipProof(proof, acc, e, pk), nil
}

// IssueMembershipWitness issues a MembershipWitness for payload against
// accBytes under the secret key encoded in skBytes, returning its canonical
// encoding. Not exposed on Handle because, unlike GetMembershipProof, a raw
// witness is meant to be handed to the element's owner rather than consumed
// immediately.
func IssueMembershipWitness(accBytes, skBytes, payload []byte) ([]byte, error) {
	acc, err := core.Deserialize(accBytes)
	if err != nil {
		return nil, err
	}
	sk, err := core.DeserializeSecretKey(skBytes)
	if err != nil {
		return nil, err
	}
	e := core.ElementFromPayload(payload)
	w, err := core.IssueMembershipWitness(acc, sk, e)
	if err != nil {
		return nil, err
	}
	return core.SerializeMembershipWitness(w), nil
}

// VerifyMembershipWitness checks a MembershipWitness against accBytes,
// pkBytes and the Element derived from payload.
func VerifyMembershipWitness(witnessBytes, accBytes, pkBytes, payload []byte) (bool, error) {
	w, err := core.DeserializeMembershipWitness(witnessBytes)
	if err != nil {
		return false, err
	}
	acc, err := core.Deserialize(accBytes)
	if err != nil {
		return false, err
	}
	pk, err := core.DeserializePublicKey(pkBytes)
	if err != nil {
		return false, err
	}
	e := core.ElementFromPayload(payload)
	return core.VerifyMembershipWitness(w, acc, e, pk), nil
}

// IssueNonMembershipWitness issues a NonMembershipWitness for payload against
// accBytes, returning its canonical encoding. Callers must not add payload to
// the accumulator before relying on a previously issued witness: per spec,
// add invalidates every non-membership witness for the element added.
func IssueNonMembershipWitness(accBytes, skBytes, payload []byte) ([]byte, error) {
	acc, err := core.Deserialize(accBytes)
	if err != nil {
		return nil, err
	}
	sk, err := core.DeserializeSecretKey(skBytes)
	if err != nil {
		return nil, err
	}
	e := core.ElementFromPayload(payload)
	w, err := core.IssueNonMembershipWitness(acc, sk, e)
	if err != nil {
		return nil, err
	}
	return core.SerializeNonMembershipWitness(w), nil
}

// VerifyNonMembershipWitness checks a NonMembershipWitness against accBytes,
// pkBytes and the Element derived from payload.
func VerifyNonMembershipWitness(witnessBytes, accBytes, pkBytes, payload []byte) (bool, error) {
	w, err := core.DeserializeNonMembershipWitness(witnessBytes)
	if err != nil {
		return false, err
	}
	acc, err := core.Deserialize(accBytes)
	if err != nil {
		return false, err
	}
	pk, err := core.DeserializePublicKey(pkBytes)
	if err != nil {
		return false, err
	}
	e := core.ElementFromPayload(payload)
	return core.VerifyNonMembershipWitness(w, acc, e, pk), nil
}
