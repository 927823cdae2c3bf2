// Package casefile owns the durable case history: every completed analysis
// persisted as a named record, restorable later. The history is serialized
// as a single versioned keyed record; the UI never mutates it directly.
package casefile

import (
	"context"
	"fmt"
	"github.com/myrjola/thejury/internal/errors"
	"github.com/myrjola/thejury/internal/models"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	// ErrNotFound means the referenced case id does not exist.
	ErrNotFound = errors.NewSentinel("case file not found")
	// ErrStorageFailed means persistence failed even after degrading the
	// write. The in-memory history reflects the record having been dropped.
	ErrStorageFailed = errors.NewSentinel("case history persistence failed")
)

// Store is the sole owner of the case history. All operations are atomic
// from the caller's perspective: they either fully update the persisted
// snapshot or leave it unchanged.
type Store struct {
	records RecordStore
	logger  *slog.Logger
	now     func() time.Time

	mu     sync.Mutex
	cases  []models.CaseFile
	lastID int64
}

// NewStore loads any previously persisted history. Malformed stored data is
// logged and treated as empty history; it never fails the caller. Records
// persisted before the name field existed get a derived name on first load,
// which is persisted back right away.
func NewStore(ctx context.Context, records RecordStore, logger *slog.Logger) (*Store, error) {
	store := &Store{ //nolint:exhaustruct
		records: records,
		logger:  logger.With("source", "casefile.Store"),
		now:     time.Now,
	}

	data, err := records.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load case history")
	}
	if data == nil {
		return store, nil
	}

	snap, migrated, err := decodeSnapshot(data)
	if err != nil {
		// History is best-effort convenience data: a corrupt snapshot must
		// never prevent startup.
		store.logger.LogAttrs(ctx, slog.LevelWarn, "discarding malformed case history",
			errors.SlogError(err))
		return store, nil
	}

	store.cases = snap.Cases
	for _, caseFile := range store.cases {
		if id, parseErr := strconv.ParseInt(caseFile.ID, 10, 64); parseErr == nil && id > store.lastID {
			store.lastID = id
		}
	}

	if migrated {
		if err = store.persistLocked(ctx); err != nil {
			store.logger.LogAttrs(ctx, slog.LevelWarn, "failed to persist migrated case history",
				errors.SlogError(err))
		}
	}
	return store, nil
}

// Append constructs a case file for a completed analysis, adds it at the
// tail of the history and persists the full history.
//
// When persisting exceeds the backing store's capacity and the new record
// carries an image, the persist is retried once with that image stripped:
// image data is sacrificial, the analysis result is not. The returned record
// reflects the degradation. If even the degraded write fails, the append is
// rolled back and ErrStorageFailed returned.
func (s *Store) Append(
	ctx context.Context,
	pitchText string,
	image *models.Image,
	result models.AnalysisResult,
) (models.CaseFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	caseFile := models.CaseFile{ //nolint:exhaustruct
		ID:        s.nextIDLocked(now),
		Name:      s.appendName(result.CaseTitle, pitchText, now),
		CreatedAt: now,
		PitchText: pitchText,
		Image:     image,
		Result:    result,
	}

	s.cases = append(s.cases, caseFile)
	err := s.persistLocked(ctx)
	if err != nil && image != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "persist failed, retrying without image payload",
			slog.String("id", caseFile.ID), errors.SlogError(err))
		caseFile.Image = nil
		s.cases[len(s.cases)-1] = caseFile
		err = s.persistLocked(ctx)
	}
	if err != nil {
		s.cases = s.cases[:len(s.cases)-1]
		return models.CaseFile{}, errors.Wrap(ErrStorageFailed, "append case file",
			errors.SlogError(err))
	}
	return caseFile, nil
}

// List returns the current history, oldest first.
func (s *Store) List(_ context.Context) []models.CaseFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	cases := make([]models.CaseFile, len(s.cases))
	copy(cases, s.cases)
	return cases
}

// Get returns the case file with the given id.
func (s *Store) Get(_ context.Context, id string) (models.CaseFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, caseFile := range s.cases {
		if caseFile.ID == id {
			return caseFile, nil
		}
	}
	return models.CaseFile{}, errors.Wrap(ErrNotFound, "get case file", slog.String("id", id))
}

// Rename updates one record's display name and persists. An empty or
// whitespace-only newName leaves the record unchanged without error.
func (s *Store) Rename(ctx context.Context, id, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, caseFile := range s.cases {
		if caseFile.ID != id {
			continue
		}
		previous := caseFile.Name
		s.cases[i].Name = newName
		if err := s.persistLocked(ctx); err != nil {
			s.cases[i].Name = previous
			return errors.Wrap(ErrStorageFailed, "rename case file", errors.SlogError(err))
		}
		return nil
	}
	return errors.Wrap(ErrNotFound, "rename case file", slog.String("id", id))
}

// Clear empties the history and persists the empty collection.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous := s.cases
	s.cases = nil
	if err := s.persistLocked(ctx); err != nil {
		s.cases = previous
		return errors.Wrap(ErrStorageFailed, "clear case history", errors.SlogError(err))
	}
	return nil
}

func (s *Store) persistLocked(ctx context.Context) error {
	data, err := encodeSnapshot(s.cases)
	if err != nil {
		return err
	}
	return s.records.Save(ctx, data)
}

// nextIDLocked derives a unique id from the creation time, bumping past the
// previous id on millisecond collisions so ids stay strictly increasing.
func (s *Store) nextIDLocked(now time.Time) string {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

// appendName derives the display name for a fresh record: the generated
// case title, then a pitch excerpt, then a timestamped placeholder.
func (s *Store) appendName(caseTitle, pitchText string, now time.Time) string {
	if name := strings.TrimSpace(caseTitle); name != "" {
		return name
	}
	if strings.TrimSpace(pitchText) != "" {
		return pitchExcerptName(pitchText)
	}
	return fmt.Sprintf("Unidentified Case [%s]", now.Format("2006-01-02"))
}
