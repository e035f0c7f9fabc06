package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Fsince94/PortfolioApp/internal/kvstore"
)

// The durable snapshot is the engine's full binary image stored under
// kvstore.KeyDatabase as a JSON array of byte values. Wasteful but simple,
// and it round-trips byte-for-byte. There is no write-ahead log and no
// partial commit: the previous snapshot stays valid until the atomic
// kvstore write replaces it.

// loadSnapshot reads and decodes the persisted engine image.
// hydrated=false means no snapshot exists yet and a fresh database should
// be built. A present-but-malformed snapshot is an initialization error.
func (s *Service) loadSnapshot() (image []byte, hydrated bool, err error) {
	raw, ok := s.kv.Get(kvstore.KeyDatabase)
	if !ok {
		return nil, false, nil
	}

	var bytes []int
	if err := json.Unmarshal(raw, &bytes); err != nil {
		return nil, false, fmt.Errorf("decode snapshot: %w", err)
	}

	image = make([]byte, len(bytes))
	for i, b := range bytes {
		if b < 0 || b > 255 {
			return nil, false, fmt.Errorf("decode snapshot: value %d at index %d is not a byte", b, i)
		}
		image[i] = byte(b)
	}
	return image, true, nil
}

// commitLocked exports the engine image, persists it, and broadcasts one
// change notification. Called with s.mu held, after every mutation.
// The broadcast fires only once the combined mutation+persist step has
// completed without error.
func (s *Service) commitLocked(ctx context.Context) error {
	image, err := s.eng.Serialize(ctx)
	if err != nil {
		return fmt.Errorf("export snapshot: %w", err)
	}

	encoded, err := encodeImage(image)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := s.kv.Set(kvstore.KeyDatabase, encoded); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}

	s.changes.Notify()
	return nil
}

// encodeImage renders the binary image as a JSON array of integers.
func encodeImage(image []byte) ([]byte, error) {
	ints := make([]int, len(image))
	for i, b := range image {
		ints[i] = int(b)
	}
	return json.Marshal(ints)
}
