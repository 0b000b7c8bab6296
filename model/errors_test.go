package model_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabopt/model"
)

func TestFieldError_Message(t *testing.T) {
	err := &model.FieldError{Kind: model.ErrNumericCoercion, Table: "modelo", Column: "Coef_FO", Row: 2, Value: "a"}
	require.Equal(t, `model: value is not numeric: table "modelo", column "Coef_FO", row 2, value "a"`, err.Error())

	bare := model.Errorf(model.ErrShape, "%d×%d", 3, 4)
	require.Equal(t, "model: invalid matrix shape: 3×4", bare.Error())
}

func TestFieldError_Matching(t *testing.T) {
	err := fmt.Errorf("build: %w", &model.FieldError{Kind: model.ErrSchema, Column: "Variable"})

	require.ErrorIs(t, err, model.ErrSchema)
	require.False(t, errors.Is(err, model.ErrRelation))

	var fe *model.FieldError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, "Variable", fe.Column)
}

func TestNewCostMatrix(t *testing.T) {
	rows, cols := []string{"A1", "A2"}, []string{"T1", "T2"}

	cm, err := model.NewCostMatrix(rows, cols, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, 2, cm.Size())
	require.Equal(t, 3.0, cm.At(1, 0))

	neg := cm.Negated()
	require.Equal(t, -4.0, neg.At(1, 1))
	require.Equal(t, 4.0, cm.At(1, 1), "Negated must not touch the receiver")
	require.Equal(t, [][]float64{{-1, -2}, {-3, -4}}, neg.Values())
	require.Equal(t, 2, cm.Dense().Cols())
	require.Equal(t, 0.0, cm.At(5, 5), "out-of-range cells read as 0")
	require.Equal(t, 0, (&model.CostMatrix{}).Size())

	_, err = model.NewCostMatrix(rows, []string{"T1", "T2", "T3"}, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, err, model.ErrShape)

	_, err = model.NewCostMatrix(rows, cols, [][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, model.ErrShape)

	_, err = model.NewCostMatrix(nil, nil, nil)
	require.ErrorIs(t, err, model.ErrShape)

	_, err = model.NewCostMatrix(rows, cols, [][]float64{{1, math.NaN()}, {3, 4}})
	require.ErrorIs(t, err, model.ErrNumericCoercion)
}
