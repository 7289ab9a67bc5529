// Package rater combines a fingering's eight category scores into a
// single quality score via a learned linear model.
package rater

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/marcusleclerc/fretwise/fingering"
	"github.com/marcusleclerc/fretwise/train"
)

// DefaultCoefficients are the seed weights used before any training data
// is available, preserved from the reference implementation.
var DefaultCoefficients = [fingering.NumScores]float64{0.09, 0.28, 0.28, 0.18, 0.03, 0.03, 0.04, 0.07}

// Rater scores fingerings as coefficients·categoryScores + intercept.
type Rater struct {
	coefficients [fingering.NumScores]float64
	intercept    float64
}

// Default returns a Rater seeded with the reference default coefficients
// and a zero intercept.
func Default() *Rater {
	return &Rater{coefficients: DefaultCoefficients}
}

// FromCoefficients builds a Rater from an explicit coefficient vector and
// intercept, e.g. one produced by Fit or loaded from storage.
func FromCoefficients(w [fingering.NumScores]float64, intercept float64) *Rater {
	return &Rater{coefficients: w, intercept: intercept}
}

// Coefficients returns the rater's weight vector.
func (r *Rater) Coefficients() [fingering.NumScores]float64 {
	return r.coefficients
}

// Intercept returns the rater's scalar intercept.
func (r *Rater) Intercept() float64 {
	return r.intercept
}

// Score computes coefficients·scores + intercept for one category-score
// vector.
func (r *Rater) Score(scores [fingering.NumScores]float64) float64 {
	total := r.intercept
	for i, w := range r.coefficients {
		total += w * scores[i]
	}
	return total
}

// Rate sets f.Score from f.Scores.
func (r *Rater) Rate(f *fingering.Fingering) {
	f.Score = r.Score(f.Scores)
}

// RateBatch rates every fingering in fs in place.
func (r *Rater) RateBatch(fs []*fingering.Fingering) {
	for _, f := range fs {
		r.Rate(f)
	}
}

// Fit trains a new Rater from rated fingerings using ridge regression
// (see the train package) with the default regularization strength.
func Fit(samples []train.Sample) (*Rater, error) {
	return FitWithAlpha(samples, train.DefaultAlpha)
}

// FitWithAlpha is Fit with an explicit ridge regularization strength.
func FitWithAlpha(samples []train.Sample, alpha float64) (*Rater, error) {
	result, err := train.Fit(samples, alpha)
	if err != nil {
		return nil, err
	}
	return FromCoefficients(result.Coefficients, result.Intercept), nil
}

// MarshalBinary encodes the rater's weight vector and intercept as nine
// little-endian float64 values (the eight coefficients, then the
// intercept) — a fixed, small format that doesn't warrant a general
// serialization library.
func (r *Rater) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	for _, w := range r.coefficients {
		if err := binary.Write(buf, binary.LittleEndian, w); err != nil {
			return nil, fmt.Errorf("rater: encoding coefficients: %w", err)
		}
	}
	if err := binary.Write(buf, binary.LittleEndian, r.intercept); err != nil {
		return nil, fmt.Errorf("rater: encoding intercept: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a Rater from the format MarshalBinary produces.
func (r *Rater) UnmarshalBinary(data []byte) error {
	buf := bytes.NewReader(data)
	var coefficients [fingering.NumScores]float64
	for i := range coefficients {
		if err := binary.Read(buf, binary.LittleEndian, &coefficients[i]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return fmt.Errorf("rater: truncated coefficient data")
			}
			return fmt.Errorf("rater: decoding coefficients: %w", err)
		}
	}
	var intercept float64
	if err := binary.Read(buf, binary.LittleEndian, &intercept); err != nil {
		return fmt.Errorf("rater: decoding intercept: %w", err)
	}
	r.coefficients = coefficients
	r.intercept = intercept
	return nil
}
