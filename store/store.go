// Package store persists rated fingerings — the training corpus the
// rater's coefficients are fit from — in a local SQLite database via GORM,
// so ratings gathered across runs accumulate instead of being lost.
package store

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/marcusleclerc/fretwise/fingering"
	"github.com/marcusleclerc/fretwise/train"
)

// RatedSample is the persisted form of a train.Sample: a fingering's
// eight category scores alongside the rating a user assigned it.
type RatedSample struct {
	ID     uint `gorm:"primaryKey"`
	Score0 float64
	Score1 float64
	Score2 float64
	Score3 float64
	Score4 float64
	Score5 float64
	Score6 float64
	Score7 float64
	Rating float64
}

// Store wraps a GORM handle over a local SQLite file.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if necessary) the SQLite database at path and
// migrates the rated_samples table.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("store: opening %s: %w", path, err)
	}
	if err := db.AutoMigrate(&RatedSample{}); err != nil {
		return nil, fmt.Errorf("store: migrating schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record appends a rated fingering's category scores to the corpus.
func (s *Store) Record(f *fingering.Fingering, userRating float64) error {
	row := RatedSample{
		Score0: f.Scores[0],
		Score1: f.Scores[1],
		Score2: f.Scores[2],
		Score3: f.Scores[3],
		Score4: f.Scores[4],
		Score5: f.Scores[5],
		Score6: f.Scores[6],
		Score7: f.Scores[7],
		Rating: userRating,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return fmt.Errorf("store: recording sample: %w", err)
	}
	return nil
}

// Samples loads the entire corpus as train.Sample values, ready to pass
// to train.Fit.
func (s *Store) Samples() ([]train.Sample, error) {
	var rows []RatedSample
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("store: loading samples: %w", err)
	}
	out := make([]train.Sample, len(rows))
	for i, r := range rows {
		out[i] = train.Sample{
			Scores: [fingering.NumScores]float64{
				r.Score0, r.Score1, r.Score2, r.Score3, r.Score4, r.Score5, r.Score6, r.Score7,
			},
			Rating: r.Rating,
		}
	}
	return out, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("store: closing: %w", err)
	}
	return sqlDB.Close()
}
