// Package hash provides the xxHash64 digests used for waveform fingerprints
// and frame payload checksums.
package hash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 of the given bytes.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest accumulates an xxHash64 over several writes.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest returns a Digest with the default zero seed.
func NewDigest() Digest {
	return Digest{d: xxhash.New()}
}

// WriteByte adds a single byte to the digest.
func (d Digest) WriteByte(b byte) error {
	_, err := d.d.Write([]byte{b})
	return err
}

// Sum64 returns the digest of everything written so far.
func (d Digest) Sum64() uint64 {
	return d.d.Sum64()
}
