package assessment

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// mahalanobisSquared computes the squared Mahalanobis distance of x from
// the reference corpus, together with the chi-squared cutoff at outlierP
// for the vector's dimensionality. Returns ok=false when the distance is
// not computable (dimension mismatch or a singular covariance matrix),
// in which case the caller skips the outlier check.
func mahalanobisSquared(x []float64, reference [][]float64) (d2, threshold float64, ok bool) {
	n := len(reference)
	d := len(x)
	if n == 0 || d == 0 {
		return 0, 0, false
	}

	data := mat.NewDense(n, d, nil)
	for i, row := range reference {
		if len(row) != d {
			return 0, 0, false
		}
		data.SetRow(i, row)
	}

	mean := make([]float64, d)
	for j := 0; j < d; j++ {
		mean[j] = stat.Mean(mat.Col(nil, j, data), nil)
	}

	cov := mat.NewSymDense(d, nil)
	stat.CovarianceMatrix(cov, data, nil)

	var chol mat.Cholesky
	if !chol.Factorize(cov) {
		return 0, 0, false
	}

	diff := mat.NewVecDense(d, nil)
	for j := 0; j < d; j++ {
		diff.SetVec(j, x[j]-mean[j])
	}

	var solved mat.VecDense
	if err := chol.SolveVecTo(&solved, diff); err != nil {
		return 0, 0, false
	}
	d2 = mat.Dot(diff, &solved)

	cutoff := distuv.ChiSquared{K: float64(d)}.Quantile(1 - outlierP)
	return d2, cutoff, true
}
