// Package dedup suppresses duplicate scales within one batch run. The
// registry tracks accepted fingerprints; winner selection among colliding
// candidates is caller policy and must be total.
package dedup

import "fmt"

// Registry is the process-scoped, append-only set of fingerprints
// accepted during one source's generation pass. It is owned by a single
// goroutine; batches are synchronous by design.
type Registry struct {
	seen map[string]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{seen: map[string]struct{}{}}
}

// Seen reports whether a fingerprint was already accepted.
func (r *Registry) Seen(fingerprint string) bool {
	_, ok := r.seen[fingerprint]
	return ok
}

// Accept records a fingerprint. It returns false when the fingerprint
// was already accepted, in which case the candidate scale must be
// dropped or resolved by the caller's priority policy.
func (r *Registry) Accept(fingerprint string) bool {
	if r.Seen(fingerprint) {
		return false
	}
	r.seen[fingerprint] = struct{}{}
	return true
}

// Len returns the number of accepted fingerprints.
func (r *Registry) Len() int { return len(r.seen) }

// Resolve picks the single winner among candidates sharing a
// fingerprint. The prefer predicate encodes the caller's priority policy
// and must single out exactly one candidate; anything else is a logic
// error in the policy, not a runtime condition to recover from.
func Resolve[T any](candidates []T, prefer func(T) bool) (T, error) {
	var winner T
	if len(candidates) == 0 {
		return winner, fmt.Errorf("resolve: no candidates")
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}
	found := 0
	for _, c := range candidates {
		if prefer(c) {
			winner = c
			found++
		}
	}
	if found != 1 {
		return winner, fmt.Errorf("resolve: policy selected %d of %d colliding candidates, want exactly 1", found, len(candidates))
	}
	return winner, nil
}
