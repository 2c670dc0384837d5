package core

import (
	"bytes"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

func TestNewAccumulatorIsGenerator(t *testing.T) {
	a := NewAccumulator()
	_, _, g1Gen, _ := bls12381.Generators()
	if !a.Value.Equal(&g1Gen) {
		t.Errorf("NewAccumulator did not return g1")
	}
}

// Property 9 / S6: order sensitivity.
func TestAddIsOrderSensitive(t *testing.T) {
	sk, err := GenerateSecretKey()
	if err != nil {
		t.Fatalf("GenerateSecretKey failed: %v", err)
	}
	ea := ElementFromPayload([]byte("a"))
	eb := ElementFromPayload([]byte("b"))

	ab := NewAccumulator()
	ab.Add(sk, ea)
	ab.Add(sk, eb)

	ba := NewAccumulator()
	ba.Add(sk, eb)
	ba.Add(sk, ea)

	if bytes.Equal(Serialize(ab), Serialize(ba)) {
		t.Errorf("add(a) then add(b) produced the same bytes as add(b) then add(a)")
	}
}

func TestAddingSameElementTwiceDiffers(t *testing.T) {
	sk, err := GenerateSecretKey()
	if err != nil {
		t.Fatalf("GenerateSecretKey failed: %v", err)
	}
	e := ElementFromPayload([]byte("repeat"))

	a := NewAccumulator()
	a.Add(sk, e)
	once := Serialize(a)
	a.Add(sk, e)
	twice := Serialize(a)

	if bytes.Equal(once, twice) {
		t.Errorf("adding the same element twice did not change the accumulator")
	}
}

// S5: serialisation round trip.
func TestAccumulatorSerializeRoundTrip(t *testing.T) {
	sk, err := GenerateSecretKey()
	if err != nil {
		t.Fatalf("GenerateSecretKey failed: %v", err)
	}
	a := NewAccumulator()
	a.Add(sk, ElementFromPayload([]byte("payload")))

	b := Serialize(a)
	got, err := Deserialize(b)
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if !bytes.Equal(Serialize(got), b) {
		t.Errorf("deserialize(serialize(a)) did not round trip to the same bytes")
	}
}

func TestDeserializeRejectsGarbage(t *testing.T) {
	if _, err := Deserialize([]byte("not a point")); err == nil {
		t.Errorf("expected an error deserialising garbage bytes")
	}
}
