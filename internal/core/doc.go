// Package core implements a pairing-based cryptographic accumulator over
// BLS12-381.
//
// An accumulator is a constant-size commitment to an unbounded set of
// scalar-field elements. Given the secret key, additions are cheap; given
// only the public key and the current accumulator value, anyone can verify
// a membership or non-membership witness, or a zero-knowledge proof that an
// element was accumulated, without learning anything about the element
// beyond that fact.
//
// Security rests on the q-SDH and discrete-log hardness assumptions in the
// groups underlying the pairing e: G1 x G2 -> GT, instantiated here with
// gnark-crypto's BLS12-381 implementation. The package performs no I/O, no
// logging, and no serialisation beyond the byte encodings spec'd in codec.go;
// callers (see package accum) own storage, transport, and concurrency.
package core
