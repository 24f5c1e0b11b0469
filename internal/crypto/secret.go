package crypto

import "github.com/awnumar/memguard"

// Secret is a scoped buffer holding a master secret.
//
// The bytes live in a memguard LockedBuffer: locked into RAM, guarded by
// canaries and wiped when the buffer is destroyed. The operation that owns a
// Secret destroys it exactly once, usually with
//
//	defer secret.Destroy()
//
// so the buffer is cleared on every exit path. All methods are safe on a nil
// or destroyed Secret.
type Secret struct {
	buf *memguard.LockedBuffer
}

// NewSecret moves b into a locked buffer. The source slice is wiped, so the
// caller is left holding only zeros.
func NewSecret(b []byte) *Secret {
	if len(b) == 0 {
		return &Secret{}
	}
	return &Secret{buf: memguard.NewBufferFromBytes(b)}
}

// NewSecretFromString copies s into a locked buffer. The intermediate byte
// slice is wiped; s itself is immutable and cannot be cleared, so callers
// should drop their reference to it right away.
func NewSecretFromString(s string) *Secret {
	return NewSecret([]byte(s))
}

// Alive reports whether the secret still holds usable bytes.
func (s *Secret) Alive() bool {
	return s != nil && s.buf != nil && s.buf.IsAlive()
}

// Bytes returns a read-only view of the secret, or nil once destroyed.
// The view must not be retained past the owning scope.
func (s *Secret) Bytes() []byte {
	if !s.Alive() {
		return nil
	}
	return s.buf.Bytes()
}

// Destroy wipes and releases the underlying buffer. Repeated calls are no-ops.
func (s *Secret) Destroy() {
	if s == nil || s.buf == nil {
		return
	}
	s.buf.Destroy()
}
