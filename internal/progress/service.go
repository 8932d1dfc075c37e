package progress

import (
	"encoding/json"
	"fmt"
)

// RecordKey is the store key under which the progress mapping is persisted.
const RecordKey = "progress"

// Records is the slice of the store the service needs: named records holding
// canonical JSON. Implemented by internal/store.
type Records interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
}

// Service holds the in-memory progress mapping and writes it through eagerly
// on every accepted score. The read-modify-write cycle is safe only under
// the app's single event-handling goroutine; the service must not be shared
// across concurrent callers.
type Service struct {
	records Records
	current Progress
}

// NewService loads the persisted mapping. A missing or undecodable record
// falls back to a fresh empty mapping; persistence problems never block the
// app.
func NewService(records Records) *Service {
	return &Service{
		records: records,
		current: load(records),
	}
}

func load(records Records) Progress {
	raw, ok, err := records.Get(RecordKey)
	if err != nil || !ok {
		return Progress{}
	}
	var p Progress
	if err := json.Unmarshal(raw, &p); err != nil || p == nil {
		return Progress{}
	}
	return p
}

// RecordScore records a completed attempt. The score is written and
// persisted only when no prior entry exists for (specID, levelID) or the
// new score is strictly greater than the prior best; otherwise the call is
// a no-op with no persistence round-trip.
func (s *Service) RecordScore(specID string, levelID, score int) error {
	if prior, ok := s.current.Best(specID, levelID); ok && score <= prior {
		return nil
	}

	next := s.current.with(specID, levelID, score)
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := s.records.Put(RecordKey, raw); err != nil {
		return fmt.Errorf("persist progress: %w", err)
	}
	s.current = next
	return nil
}

// BestScore returns the best recorded score for a (spec, level) pair.
func (s *Service) BestScore(specID string, levelID int) (int, bool) {
	return s.current.Best(specID, levelID)
}

// All returns a copy of the whole mapping for aggregate statistics.
func (s *Service) All() Progress {
	return s.current.Clone()
}
