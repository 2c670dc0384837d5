package core

import "testing"

// S1: membership witness verifies true for an added element.
func TestMembershipWitnessVerifiesForAddedElement(t *testing.T) {
	sk, err := GenerateSecretKey()
	if err != nil {
		t.Fatalf("GenerateSecretKey failed: %v", err)
	}
	pk := DerivePublicKey(sk)

	a := NewAccumulator()
	e := ElementFromScalar(scalarOf(t, 42))
	a.Add(sk, e)

	w, err := IssueMembershipWitness(a, sk, e)
	if err != nil {
		t.Fatalf("IssueMembershipWitness failed: %v", err)
	}
	if !VerifyMembershipWitness(w, a, e, pk) {
		t.Errorf("membership witness for an added element did not verify")
	}
}

// S2: a witness for a non-member fails verification.
func TestMembershipWitnessFailsForNonMember(t *testing.T) {
	sk, err := GenerateSecretKey()
	if err != nil {
		t.Fatalf("GenerateSecretKey failed: %v", err)
	}
	pk := DerivePublicKey(sk)

	a := NewAccumulator()
	member := ElementFromScalar(scalarOf(t, 42))
	a.Add(sk, member)

	nonMember := ElementFromScalar(scalarOf(t, 43))
	w, err := IssueMembershipWitness(a, sk, nonMember)
	if err != nil {
		t.Fatalf("IssueMembershipWitness failed: %v", err)
	}
	if VerifyMembershipWitness(w, a, nonMember, pk) {
		t.Errorf("membership witness verified true for an element never added")
	}
}

func TestMembershipWitnessRoundTrip(t *testing.T) {
	sk, err := GenerateSecretKey()
	if err != nil {
		t.Fatalf("GenerateSecretKey failed: %v", err)
	}
	a := NewAccumulator()
	e := ElementFromPayload([]byte("witness round trip"))
	a.Add(sk, e)

	w, err := IssueMembershipWitness(a, sk, e)
	if err != nil {
		t.Fatalf("IssueMembershipWitness failed: %v", err)
	}
	got, err := DeserializeMembershipWitness(SerializeMembershipWitness(w))
	if err != nil {
		t.Fatalf("DeserializeMembershipWitness failed: %v", err)
	}
	if !got.W.Equal(&w.W) {
		t.Errorf("membership witness round trip produced a different point")
	}
}

func TestIssueMembershipWitnessRejectsSingularInput(t *testing.T) {
	sk := &SecretKey{}
	// Force e.X + alpha = 0 by setting e.X = -alpha.
	var negAlpha = sk.Alpha
	negAlpha.Neg(&negAlpha)
	e := ElementFromScalar(negAlpha)

	a := NewAccumulator()
	if _, err := IssueMembershipWitness(a, sk, e); err != ErrSingularInput {
		t.Errorf("expected ErrSingularInput, got %v", err)
	}
}
