// Package sampling provides the pseudo-random byte sources used by the
// shuffle and random-lookup helpers: a thread-safe source over the system
// CSPRNG and a keyed, deterministic, resettable source over the blake2b XOF.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"sync"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

const keySize = 32

// PRNG is an interface for generation of random bytes.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG is a PRNG over the system CSPRNG; it is safe for concurrent
// use but not reproducible.
type ThreadSafePRNG struct {
}

// NewPRNG returns a new PRNG that is thread-safe.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

// Read fills sum with random bytes from the system CSPRNG.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG deterministically generates a sequence of random bytes from a
// key using the hash function blake2b. Two KeyedPRNGs built from the same
// key produce the same stream.
// WARNING: KeyedPRNG should NOT be shared by multiple goroutines; the
// resulting interleaving would not be deterministic for a given key. For a
// concurrent source use [ThreadSafePRNG].
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// Accepts an optional key, else set key=nil which is treated as key=[]byte{}.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = make([]byte, len(key))
	copy(prng.key, key)
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// NewSeededPRNG creates a KeyedPRNG whose key is derived from a 64-bit seed
// by hashing it with blake3, so nearby seeds still produce unrelated streams.
func NewSeededPRNG(seed uint64) (*KeyedPRNG, error) {
	hasher := blake3.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], seed)
	hasher.Write(buf[:])
	key := hasher.Sum(nil)
	return NewKeyedPRNG(key[:keySize])
}

// Key returns a copy of the key used to seed the PRNG.
// This value can be used with [NewKeyedPRNG] to instantiate
// a new PRNG that will produce the same stream of bytes.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset resets the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}
