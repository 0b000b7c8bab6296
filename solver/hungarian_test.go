package solver_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabopt/model"
	"github.com/katalvlaran/tabopt/solver"
)

func matrix(t *testing.T, values [][]float64) *model.CostMatrix {
	t.Helper()
	n := len(values)
	rows, cols := make([]string, n), make([]string, n)
	for i := range rows {
		rows[i] = fmt.Sprintf("A%d", i+1)
		cols[i] = fmt.Sprintf("T%d", i+1)
	}
	cm, err := model.NewCostMatrix(rows, cols, values)
	require.NoError(t, err)

	return cm
}

func cost(cm *model.CostMatrix, out *solver.AssignmentOutcome) float64 {
	var z float64
	for k := range out.Rows {
		z += cm.At(out.Rows[k], out.Cols[k])
	}

	return z
}

// bruteForce returns the minimum assignment cost over all permutations.
func bruteForce(a [][]float64) float64 {
	n := len(a)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	best := -1.0
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			var z float64
			for i, j := range perm {
				z += a[i][j]
			}
			if best < 0 || z < best {
				best = z
			}
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			rec(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	rec(0)

	return best
}

func TestHungarian_Example(t *testing.T) {
	cm := matrix(t, [][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}})
	out, err := solver.NewHungarian().SolveAssignment(context.Background(), cm)
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 2}, out.Rows)
	require.Equal(t, []int{1, 0, 2}, out.Cols)
	require.Equal(t, 5.0, cost(cm, out))
}

func TestHungarian_Single(t *testing.T) {
	cm := matrix(t, [][]float64{{7}})
	out, err := solver.NewHungarian().SolveAssignment(context.Background(), cm)
	require.NoError(t, err)
	require.Equal(t, []int{0}, out.Cols)
}

func TestHungarian_NegativeCosts(t *testing.T) {
	// Negated utilities: the minimum here is the maximum of the original.
	cm := matrix(t, [][]float64{{-4, -1, -3}, {-2, 0, -5}, {-3, -2, -2}})
	out, err := solver.NewHungarian().SolveAssignment(context.Background(), cm)
	require.NoError(t, err)
	require.Equal(t, -11.0, cost(cm, out))
}

func TestHungarian_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 2; n <= 6; n++ {
		for trial := 0; trial < 20; trial++ {
			a := make([][]float64, n)
			for i := range a {
				a[i] = make([]float64, n)
				for j := range a[i] {
					a[i][j] = float64(rng.Intn(50))
				}
			}
			cm := matrix(t, a)
			out, err := solver.NewHungarian().SolveAssignment(context.Background(), cm)
			require.NoError(t, err)
			require.Equal(t, bruteForce(a), cost(cm, out), "n=%d trial=%d", n, trial)

			seen := make(map[int]bool)
			for _, j := range out.Cols {
				require.False(t, seen[j])
				seen[j] = true
			}
		}
	}
}

func TestHungarian_Guards(t *testing.T) {
	h := solver.NewHungarian()
	_, err := h.SolveAssignment(context.Background(), nil)
	require.ErrorIs(t, err, model.ErrNilModel)

	_, err = h.SolveAssignment(context.Background(), &model.CostMatrix{})
	require.ErrorIs(t, err, model.ErrShape)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = h.SolveAssignment(ctx, matrix(t, [][]float64{{1}}))
	require.ErrorIs(t, err, context.Canceled)
}
