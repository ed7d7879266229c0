package hasher

import "runtime"

// secretBuffer holds plaintext password bytes for the duration of one
// derivation. Wipe must run on every exit path.
type secretBuffer struct {
	b []byte
}

func newSecretBuffer(s string) *secretBuffer {
	b := make([]byte, len(s))
	copy(b, s)
	return &secretBuffer{b: b}
}

func (s *secretBuffer) Bytes() []byte {
	return s.b
}

// Wipe overwrites the buffer with zeros.
func (s *secretBuffer) Wipe() {
	wipe(s.b)
}

func wipe(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}
