package schema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabopt/model"
	"github.com/katalvlaran/tabopt/schema"
	"github.com/katalvlaran/tabopt/table"
)

func TestValidateAssignment_Example(t *testing.T) {
	in, err := schema.ValidateAssignment(schema.AssignmentExample())
	require.NoError(t, err)

	cm := in.Matrix
	require.Equal(t, 3, cm.Size())
	require.Equal(t, []string{"Agente 1", "Agente 2", "Agente 3"}, cm.RowLabels)
	require.Equal(t, []string{"Tarea 1", "Tarea 2", "Tarea 3"}, cm.ColLabels)
	require.Equal(t, 5.0, cm.At(1, 2))
}

func TestValidateAssignment_DefaultLabels(t *testing.T) {
	tb := table.MustFromRows(schema.SheetCosts, []string{"", "B"},
		[]any{"1", 2.0},
		[]any{3.0, "4"},
	)
	in, err := schema.ValidateAssignment(tb)
	require.NoError(t, err)
	require.Equal(t, []string{"Agente 1", "Agente 2"}, in.Matrix.RowLabels)
	require.Equal(t, []string{"Tarea 1", "B"}, in.Matrix.ColLabels)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, in.Matrix.Values())
}

func TestValidateAssignment_NonSquare(t *testing.T) {
	tb := table.MustFromRows(schema.SheetCosts, []string{"T1", "T2", "T3", "T4"},
		[]any{1.0, 2.0, 3.0, 4.0},
		[]any{1.0, 2.0, 3.0, 4.0},
		[]any{1.0, 2.0, 3.0, "x"},
	)
	_, err := schema.ValidateAssignment(tb)
	require.ErrorIs(t, err, model.ErrShape, "shape is checked before any cell")
}

func TestValidateAssignment_Errors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := schema.ValidateAssignment(table.New(schema.SheetCosts, "T1"))
		require.ErrorIs(t, err, model.ErrShape)
	})
	t.Run("nil", func(t *testing.T) {
		_, err := schema.ValidateAssignment(nil)
		require.ErrorIs(t, err, model.ErrShape)
	})
	t.Run("blank cell", func(t *testing.T) {
		tb := table.New(schema.SheetCosts, "T1", "T2")
		_ = tb.AppendLabeled("A1", 1.0, nil)
		_ = tb.AppendLabeled("A2", 1.0, 2.0)
		_, err := schema.ValidateAssignment(tb)
		require.ErrorIs(t, err, model.ErrNumericCoercion)

		var fe *model.FieldError
		require.True(t, errors.As(err, &fe))
		require.Equal(t, "T2", fe.Column)
		require.Equal(t, 1, fe.Row)
	})
	t.Run("duplicate row label", func(t *testing.T) {
		tb := table.New(schema.SheetCosts, "T1", "T2")
		_ = tb.AppendLabeled("A", 1.0, 2.0)
		_ = tb.AppendLabeled("A", 1.0, 2.0)
		_, err := schema.ValidateAssignment(tb)
		require.ErrorIs(t, err, model.ErrSchema)
	})
	t.Run("duplicate column label", func(t *testing.T) {
		tb := &table.Table{Name: schema.SheetCosts, Columns: []string{"T", "T"}, Rows: [][]any{{1.0, 2.0}, {3.0, 4.0}}}
		_, err := schema.ValidateAssignment(tb)
		require.ErrorIs(t, err, model.ErrSchema)
	})
}
