package accum

import (
	"crypto/rand"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vaultmesh/paccum/internal/core"
)

// Handle is an opaque, concurrency-safe accumulator instance: the binding
// layer's realisation of spec's "core exposes no locking; providing it is
// the binding layer's duty." AddElement and AddElements take the write lock;
// Export and GetMembershipProof take the read lock. Verification is done by
// package-level functions over exported bytes and takes no lock.
type Handle struct {
	mu  sync.RWMutex
	sk  *core.SecretKey
	pk  *core.PublicKey
	acc *core.Accumulator
}

// NewAccumulator creates a fresh accumulator (A = g1) bound to the secret key
// encoded in skBytes.
func NewAccumulator(skBytes []byte) (*Handle, error) {
	sk, err := core.DeserializeSecretKey(skBytes)
	if err != nil {
		return nil, err
	}
	return &Handle{
		sk:  sk,
		pk:  core.DerivePublicKey(sk),
		acc: core.NewAccumulator(),
	}, nil
}

// LoadAccumulator wraps an existing, previously-exported accumulator value in
// a Handle bound to the secret key encoded in skBytes, for callers resuming
// work against a stored accumulator rather than starting fresh.
func LoadAccumulator(skBytes, accBytes []byte) (*Handle, error) {
	sk, err := core.DeserializeSecretKey(skBytes)
	if err != nil {
		return nil, err
	}
	acc, err := core.Deserialize(accBytes)
	if err != nil {
		return nil, err
	}
	return &Handle{
		sk:  sk,
		pk:  core.DerivePublicKey(sk),
		acc: acc,
	}, nil
}

// Export returns the canonical encoding of the handle's current accumulator
// value.
func (h *Handle) Export() []byte {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return core.Serialize(h.acc)
}

// PublicKeyBytes returns the canonical encoding of the handle's public key,
// derived once at construction and immutable thereafter.
func (h *Handle) PublicKeyBytes() []byte {
	return core.SerializePublicKey(h.pk)
}

// AddElement hashes payload to an Element and absorbs it into the
// accumulator, under the write lock.
func (h *Handle) AddElement(payload []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	e := core.ElementFromPayload(payload)
	h.acc.Add(h.sk, e)
	return nil
}

// AddElements hashes every payload to an Element concurrently (hash-to-scalar
// is pure and parallelises cleanly) and then absorbs them into the
// accumulator sequentially, in input order, under a single write-lock
// acquisition. Order is observable per spec, so callers that need
// reproducible accumulator bytes across replicas must pass payloads in a
// fixed order; this function does not reorder them.
func (h *Handle) AddElements(payloads [][]byte) error {
	elements := make([]core.Element, len(payloads))

	g := new(errgroup.Group)
	for i, payload := range payloads {
		i, payload := i, payload
		g.Go(func() error {
			elements[i] = core.ElementFromPayload(payload)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, e := range elements {
		h.acc.Add(h.sk, e)
	}
	return nil
}

// GetMembershipProof issues a membership witness for payload against the
// handle's current accumulator state and derives a ZK membership proof from
// it, under the read lock (issuance must see a consistent A, but does not
// mutate it). The returned nonce is an opaque 16-byte tag generated
// alongside the proof; per spec it is NOT folded into the proof's
// Fiat-Shamir challenge, and exists purely for callers that want an external
// replay-prevention handle returned alongside the proof.
func (h *Handle) GetMembershipProof(payload []byte) (proofBytes []byte, nonce [16]byte, err error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	e := core.ElementFromPayload(payload)
	w, err := core.IssueMembershipWitness(h.acc, h.sk, e)
	if err != nil {
		return nil, nonce, err
	}
	p, err := core.ProveMembership(w, h.acc, e, h.pk)
	if err != nil {
		return nil, nonce, err
	}
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, nonce, core.ErrRngFailure
	}
	return core.SerializeMembershipProof(p), nonce, nil
}
