package accum

import "testing"

func TestEndToEndMembershipProof(t *testing.T) {
	skBytes, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}
	h, err := NewAccumulator(skBytes)
	if err != nil {
		t.Fatalf("NewAccumulator failed: %v", err)
	}

	payload := []byte("alice@example.com")
	if err := h.AddElement(payload); err != nil {
		t.Fatalf("AddElement failed: %v", err)
	}

	proofBytes, nonce, err := h.GetMembershipProof(payload)
	if err != nil {
		t.Fatalf("GetMembershipProof failed: %v", err)
	}

	ok, err := VerifyMembershipProof(h.Export(), proofBytes, h.PublicKeyBytes(), nonce, payload)
	if err != nil {
		t.Fatalf("VerifyMembershipProof returned an error: %v", err)
	}
	if !ok {
		t.Errorf("VerifyMembershipProof returned false for a proof issued moments before")
	}
}

func TestVerifyMembershipProofFailsForUnaddedPayload(t *testing.T) {
	skBytes, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}
	h, err := NewAccumulator(skBytes)
	if err != nil {
		t.Fatalf("NewAccumulator failed: %v", err)
	}

	if err := h.AddElement([]byte("member")); err != nil {
		t.Fatalf("AddElement failed: %v", err)
	}

	proofBytes, nonce, err := h.GetMembershipProof([]byte("member"))
	if err != nil {
		t.Fatalf("GetMembershipProof failed: %v", err)
	}

	ok, err := VerifyMembershipProof(h.Export(), proofBytes, h.PublicKeyBytes(), nonce, []byte("not a member"))
	if err != nil {
		t.Fatalf("VerifyMembershipProof returned an error: %v", err)
	}
	if ok {
		t.Errorf("VerifyMembershipProof returned true for a proof checked against the wrong payload")
	}
}

func TestWitnessLevelOperations(t *testing.T) {
	skBytes, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}
	h, err := NewAccumulator(skBytes)
	if err != nil {
		t.Fatalf("NewAccumulator failed: %v", err)
	}

	member := []byte("bob@example.com")
	if err := h.AddElement(member); err != nil {
		t.Fatalf("AddElement failed: %v", err)
	}

	accBytes := h.Export()
	pkBytes := h.PublicKeyBytes()

	witnessBytes, err := IssueMembershipWitness(accBytes, skBytes, member)
	if err != nil {
		t.Fatalf("IssueMembershipWitness failed: %v", err)
	}
	ok, err := VerifyMembershipWitness(witnessBytes, accBytes, pkBytes, member)
	if err != nil {
		t.Fatalf("VerifyMembershipWitness returned an error: %v", err)
	}
	if !ok {
		t.Errorf("VerifyMembershipWitness returned false for an added element")
	}

	nonMember := []byte("carol@example.com")
	nwBytes, err := IssueNonMembershipWitness(accBytes, skBytes, nonMember)
	if err != nil {
		t.Fatalf("IssueNonMembershipWitness failed: %v", err)
	}
	ok, err = VerifyNonMembershipWitness(nwBytes, accBytes, pkBytes, nonMember)
	if err != nil {
		t.Fatalf("VerifyNonMembershipWitness returned an error: %v", err)
	}
	if !ok {
		t.Errorf("VerifyNonMembershipWitness returned false for a non-member")
	}

	if err := h.AddElement(nonMember); err != nil {
		t.Fatalf("AddElement failed: %v", err)
	}
	ok, err = VerifyNonMembershipWitness(nwBytes, h.Export(), pkBytes, nonMember)
	if err != nil {
		t.Fatalf("VerifyNonMembershipWitness returned an error: %v", err)
	}
	if ok {
		t.Errorf("VerifyNonMembershipWitness returned true after the element was added")
	}
}

func TestAddElementsMatchesSequentialAdd(t *testing.T) {
	skBytes, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}

	sequential, err := NewAccumulator(skBytes)
	if err != nil {
		t.Fatalf("NewAccumulator failed: %v", err)
	}
	payloads := [][]byte{[]byte("one"), []byte("two"), []byte("three")}
	for _, p := range payloads {
		if err := sequential.AddElement(p); err != nil {
			t.Fatalf("AddElement failed: %v", err)
		}
	}

	bulk, err := NewAccumulator(skBytes)
	if err != nil {
		t.Fatalf("NewAccumulator failed: %v", err)
	}
	if err := bulk.AddElements(payloads); err != nil {
		t.Fatalf("AddElements failed: %v", err)
	}

	if string(sequential.Export()) != string(bulk.Export()) {
		t.Errorf("AddElements produced different accumulator bytes than sequential AddElement calls in the same order")
	}
}

func TestLoadAccumulatorResumesExistingState(t *testing.T) {
	skBytes, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}
	h1, err := NewAccumulator(skBytes)
	if err != nil {
		t.Fatalf("NewAccumulator failed: %v", err)
	}
	if err := h1.AddElement([]byte("persisted")); err != nil {
		t.Fatalf("AddElement failed: %v", err)
	}

	h2, err := LoadAccumulator(skBytes, h1.Export())
	if err != nil {
		t.Fatalf("LoadAccumulator failed: %v", err)
	}
	if string(h1.Export()) != string(h2.Export()) {
		t.Errorf("LoadAccumulator did not resume the exported accumulator state")
	}
}

func TestAddElementIsOrderSensitiveThroughHandle(t *testing.T) {
	skBytes, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}

	h1, err := NewAccumulator(skBytes)
	if err != nil {
		t.Fatalf("NewAccumulator failed: %v", err)
	}
	h1.AddElement([]byte("a"))
	h1.AddElement([]byte("b"))

	h2, err := NewAccumulator(skBytes)
	if err != nil {
		t.Fatalf("NewAccumulator failed: %v", err)
	}
	h2.AddElement([]byte("b"))
	h2.AddElement([]byte("a"))

	a1, a2 := h1.Export(), h2.Export()
	if string(a1) == string(a2) {
		t.Errorf("two handles sharing a key but adding in different orders produced identical accumulator bytes")
	}
}
