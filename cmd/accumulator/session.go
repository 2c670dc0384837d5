// session.go - CBOR-persisted working state for the accumulator CLI
package main

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// Session records the last nonce a CLI invocation issued, so a later `verify`
// run in the same directory can recover it without the caller re-supplying
// it on the command line.
type Session struct {
	LastPayload []byte   `cbor:"last_payload"`
	LastNonce   [16]byte `cbor:"last_nonce"`
}

// LoadSession reads a Session from path. A missing file is not an error: it
// returns a zero-value Session.
func LoadSession(path string) (*Session, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Session{}, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	var s Session
	if err := cbor.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("failed to decode session file: %w", err)
	}
	return &s, nil
}

// SaveSession writes s to path as CBOR.
func SaveSession(s *Session, path string) error {
	b, err := cbor.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}
