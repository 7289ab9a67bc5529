// Package train fits the rater's linear coefficients from user-rated
// fingerings via ridge regression, solved through a thin SVD of the
// centered design matrix.
package train

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/marcusleclerc/fretwise/algorithms/common"
	"github.com/marcusleclerc/fretwise/fingering"
	"github.com/marcusleclerc/fretwise/logging"
)

// DefaultAlpha is the ridge regularization strength used when the caller
// doesn't specify one.
const DefaultAlpha = 1.0

// Sample is one rated fingering: its eight category scores and the rating
// a user assigned it.
type Sample struct {
	Scores [fingering.NumScores]float64
	Rating float64
}

// Result is a fitted linear model plus diagnostics about the fit.
type Result struct {
	Coefficients [fingering.NumScores]float64
	Intercept    float64
	// Residual is the Euclidean norm of the prediction residual ||y - yhat||.
	Residual float64
	// MeanRating and RatingStdDev summarize the training targets.
	MeanRating   float64
	RatingStdDev float64
}

// Fit performs ridge regression of the samples' ratings on their category
// scores: columns of the design matrix and the target are centered, a
// thin SVD of the centered design matrix is taken, each singular value s
// is replaced by s/(s²+alpha²), and the coefficients are recovered as
// V·Σ'·Uᵗ·y_centered. The intercept is the target mean minus the column
// means (the centering offsets) dotted with the coefficients. With alpha > 0 the solve is
// always well conditioned; at alpha == 0 a near-singular design matrix is
// reported as an error rather than silently producing huge coefficients.
func Fit(samples []Sample, alpha float64) (*Result, error) {
	m := len(samples)
	if m == 0 {
		return nil, fmt.Errorf("train: insufficient data: no rated samples provided")
	}
	n := fingering.NumScores

	rawA := make([]float64, m*n)
	rawY := make([]float64, m)
	for i, s := range samples {
		copy(rawA[i*n:(i+1)*n], s.Scores[:])
		rawY[i] = s.Rating
	}

	A := mat.NewDense(m, n, append([]float64(nil), rawA...))
	colMeans := make([]float64, n)
	for j := 0; j < n; j++ {
		colMeans[j] = stat.Mean(mat.Col(nil, j, A), nil)
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			A.Set(i, j, A.At(i, j)-colMeans[j])
		}
	}

	yMean := stat.Mean(rawY, nil)
	yCentered := mat.NewVecDense(m, nil)
	for i := 0; i < m; i++ {
		yCentered.SetVec(i, rawY[i]-yMean)
	}

	var svd mat.SVD
	if !svd.Factorize(A, mat.SVDThin) {
		return nil, fmt.Errorf("train: SVD factorization of the design matrix failed")
	}
	singularValues := svd.Values(nil)
	if alpha == 0 {
		for _, s := range singularValues {
			if s < 1e-12 {
				return nil, fmt.Errorf("train: insufficient data: design matrix is singular at alpha=0")
			}
		}
	}

	var U, V mat.Dense
	svd.UTo(&U)
	svd.VTo(&V)

	r := len(singularValues)
	sigmaPrime := mat.NewDiagDense(r, nil)
	for i, s := range singularValues {
		sigmaPrime.SetDiag(i, s/(s*s+alpha*alpha))
	}

	var ut mat.Dense
	ut.CloneFrom(U.T())

	var uty mat.Dense
	uty.Mul(&ut, yCentered)

	var scaled mat.Dense
	scaled.Mul(sigmaPrime, &uty)

	var coefVec mat.Dense
	coefVec.Mul(&V, &scaled)

	var coefficients [fingering.NumScores]float64
	for i := 0; i < n; i++ {
		coefficients[i] = coefVec.At(i, 0)
	}

	var meanDot float64
	for i := 0; i < n; i++ {
		meanDot += colMeans[i] * coefficients[i]
	}
	intercept := yMean - meanDot

	residual := 0.0
	for i := 0; i < m; i++ {
		pred := intercept
		for j := 0; j < n; j++ {
			pred += coefficients[j] * rawA[i*n+j]
		}
		diff := rawY[i] - pred
		residual += diff * diff
	}

	result := &Result{
		Coefficients: coefficients,
		Intercept:    intercept,
		Residual:     math.Sqrt(residual),
		MeanRating:   yMean,
		RatingStdDev: common.StandardDeviation(rawY),
	}
	logging.Debug("ridge fit complete", logging.Fields{
		"samples": m, "alpha": alpha, "residual": result.Residual, "meanRating": result.MeanRating,
	})
	return result, nil
}
