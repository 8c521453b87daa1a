package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hard75/hard75/internal/constants"
	apperrors "github.com/hard75/hard75/internal/errors"
	"github.com/hard75/hard75/internal/logger"
	"github.com/hard75/hard75/internal/migration"
	"github.com/hard75/hard75/internal/models"
)

// ChallengeStore is the authoritative, versioned snapshot of the challenge
// persisted as a single serialized blob. All writes are whole-blob
// overwrites, last-writer-wins.
//
// Concurrency note:
//   - ChallengeStore is not safe for concurrent use by multiple goroutines
//     without external synchronization.
//   - Running multiple processes sharing the same storage path is not
//     supported and may lead to lost updates.
type ChallengeStore struct {
	blob Blob
}

// NewChallengeStore wraps a blob store with challenge-level operations
func NewChallengeStore(blob Blob) *ChallengeStore {
	return &ChallengeStore{blob: blob}
}

// IsInitialized reports whether a challenge record is present
func (s *ChallengeStore) IsInitialized() (bool, error) {
	_, ok, err := s.blob.Get(constants.ChallengeKey)
	if err != nil {
		return false, apperrors.Storage("read", err)
	}
	return ok, nil
}

// Initialize builds and persists a fresh 75-day challenge. The caller is
// responsible for checking IsInitialized first; initializing over an
// existing record is refused.
func (s *ChallengeStore) Initialize(startDate time.Time) (models.Challenge, error) {
	exists, err := s.IsInitialized()
	if err != nil {
		return models.Challenge{}, err
	}
	if exists {
		return models.Challenge{}, fmt.Errorf("challenge already initialized")
	}

	ch := models.NewChallenge(startDate)
	if err := s.Save(ch); err != nil {
		return models.Challenge{}, err
	}
	return ch, nil
}

// Load deserializes the stored challenge. A version mismatch runs the
// schema migration and re-persists before returning. Returns ErrNotFound
// when no record exists.
func (s *ChallengeStore) Load() (models.Challenge, error) {
	data, ok, err := s.blob.Get(constants.ChallengeKey)
	if err != nil {
		return models.Challenge{}, apperrors.Storage("read", err)
	}
	if !ok {
		return models.Challenge{}, apperrors.ErrNotFound
	}

	var ch models.Challenge
	if err := json.Unmarshal(data, &ch); err != nil {
		return models.Challenge{}, apperrors.Storage("decode", err)
	}

	if ch.Version != constants.SchemaVersion {
		logger.Info("Migrating challenge schema", "from", ch.Version, "to", constants.SchemaVersion)
		ch = migration.Run(ch)
		if err := s.Save(ch); err != nil {
			return models.Challenge{}, err
		}
	}

	return ch, nil
}

// Save re-serializes and persists the whole challenge in one write
func (s *ChallengeStore) Save(ch models.Challenge) error {
	data, err := json.MarshalIndent(ch, "", "  ")
	if err != nil {
		return apperrors.Storage("encode", err)
	}
	if err := s.blob.Set(constants.ChallengeKey, data); err != nil {
		return apperrors.Storage("write", err)
	}
	return nil
}

// UpdateDay replaces the day whose index matches and persists the whole
// challenge.
func (s *ChallengeStore) UpdateDay(existing models.Challenge, day models.Day) (models.Challenge, error) {
	updated := existing.WithDay(day)
	if err := s.Save(updated); err != nil {
		return models.Challenge{}, err
	}
	return updated, nil
}

// UpdateDays merges a batch of replacement days by index and persists them
// in a single write, so a bulk revision touching most of the challenge
// lands atomically instead of as one write per day.
func (s *ChallengeStore) UpdateDays(existing models.Challenge, days []models.Day) (models.Challenge, error) {
	merged := make([]models.Day, len(existing.Days))
	copy(merged, existing.Days)
	byIndex := make(map[int]models.Day, len(days))
	for _, d := range days {
		byIndex[d.Index] = d
	}
	for i := range merged {
		if d, ok := byIndex[merged[i].Index]; ok {
			merged[i] = d
		}
	}

	updated := existing.WithDays(merged)
	if err := s.Save(updated); err != nil {
		return models.Challenge{}, err
	}
	return updated, nil
}

// Clear deletes the persisted challenge. The weight-unit preference is
// retained across a reset.
func (s *ChallengeStore) Clear() error {
	if err := s.blob.Delete(constants.ChallengeKey); err != nil {
		return apperrors.Storage("delete", err)
	}
	return nil
}

// WeightUnit returns the display-unit preference, defaulting to lbs
func (s *ChallengeStore) WeightUnit() (string, error) {
	data, ok, err := s.blob.Get(constants.WeightUnitKey)
	if err != nil {
		return "", apperrors.Storage("read", err)
	}
	if !ok {
		return constants.DefaultWeightUnit, nil
	}
	return string(data), nil
}

// SetWeightUnit persists the display-unit preference
func (s *ChallengeStore) SetWeightUnit(unit string) error {
	if unit != constants.WeightUnitLbs && unit != constants.WeightUnitKg {
		return apperrors.NewValidation("invalid weight unit: %q (lbs|kg)", unit)
	}
	if err := s.blob.Set(constants.WeightUnitKey, []byte(unit)); err != nil {
		return apperrors.Storage("write", err)
	}
	return nil
}

// Close releases the underlying blob store
func (s *ChallengeStore) Close() error {
	return s.blob.Close()
}
