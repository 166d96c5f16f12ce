// SPDX-License-Identifier: MIT
package linpred_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/cournape/talkbox/linpred"
	"github.com/cournape/talkbox/ndarray"
)

// benchBatch builds rows positive-definite lanes without a *testing.T.
func benchBatch(rows, n int) *ndarray.Array {
	rng := rand.New(rand.NewSource(1))
	data := make([]float64, 0, rows*n)
	for i := 0; i < rows; i++ {
		data = append(data, pdAutocorr(rng, n, 0.5)...)
	}
	a, err := ndarray.Wrap(data, rows, n)
	if err != nil {
		panic(err)
	}

	return a
}

func BenchmarkLevinson1D(b *testing.B) {
	for _, order := range []int{10, 32, 128} {
		r := benchBatch(1, order+1).Data()
		b.Run(fmt.Sprintf("order=%d", order), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, _, _, err := linpred.Levinson1D(r, order); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkLevinson_Batch(b *testing.B) {
	const rows, order = 4096, 24
	seq := benchBatch(rows, order+1)
	for _, workers := range []int{1, 4, linpred.AutoWorkers} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, _, _, err := linpred.Levinson(seq, order, linpred.WithWorkers(workers)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
