package build_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabopt/build"
	"github.com/katalvlaran/tabopt/model"
	"github.com/katalvlaran/tabopt/schema"
	"github.com/katalvlaran/tabopt/table"
)

func mustLinearInput(t *testing.T, vars, cons *table.Table) *schema.LinearInput {
	t.Helper()
	in, err := schema.ValidateLinear(vars, cons)
	require.NoError(t, err)

	return in
}

func TestLinear_MaximizeExample(t *testing.T) {
	vars, cons := schema.MaximizeExample()
	m, err := build.Linear(mustLinearInput(t, vars, cons), model.Maximize)
	require.NoError(t, err)

	want := &model.OptimizationModel{
		Name:  build.MaximizeModelName,
		Sense: model.Maximize,
		Variables: []model.VariableSpec{
			{Name: "X1", Objective: 40},
			{Name: "X2", Objective: 30},
		},
		Constraints: []model.ConstraintSpec{
			{Name: "R1", Relation: model.LessEqual, RHS: 100, Coefficients: map[string]float64{"X1": 2, "X2": 1}},
			{Name: "R2", Relation: model.LessEqual, RHS: 80, Coefficients: map[string]float64{"X1": 3, "X2": 2}},
		},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestLinear_CountPreservation(t *testing.T) {
	vars, cons := schema.LinearTemplate(4, 3)
	in := mustLinearInput(t, vars, cons)
	m, err := build.Linear(in, model.Minimize)
	require.NoError(t, err)

	require.Equal(t, build.MinimizeModelName, m.Name)
	require.Len(t, m.Variables, vars.Len())
	require.Len(t, m.Constraints, cons.Len())
	for _, c := range m.Constraints {
		require.Len(t, c.Coefficients, vars.Len(), "zeros are kept")
	}
}

func TestLinear_BlankCoefficientIsZero(t *testing.T) {
	vars := table.MustFromRows(schema.SheetModel, []string{"Variable", "Coef_FO", "Coef_R1"},
		[]any{"X1", 1.0, nil},
		[]any{"X2", 1.0, 2.0},
	)
	cons := table.MustFromRows(schema.SheetConstraints, []string{"Restriccion", "Tipo", "RHS"},
		[]any{"R1", "<=", 4.0},
	)
	m, err := build.Linear(mustLinearInput(t, vars, cons), model.Maximize)
	require.NoError(t, err)

	c, ok := m.Constraint("R1")
	require.True(t, ok)
	v, present := c.Coefficients["X1"]
	require.True(t, present)
	require.Equal(t, 0.0, v)
}

func TestLinear_StructuralMismatch(t *testing.T) {
	vars := table.MustFromRows(schema.SheetModel, []string{"Variable", "Coef_FO", "Coef_R1", "Coef_R2"},
		[]any{"X1", 1.0, 1.0, 1.0},
	)
	cons := table.MustFromRows(schema.SheetConstraints, []string{"Restriccion", "Tipo", "RHS"},
		[]any{"R1", "<=", 4.0},
		[]any{"R2", "<=", 4.0},
		[]any{"R3", "<=", 4.0},
	)
	_, err := build.Linear(mustLinearInput(t, vars, cons), model.Maximize)
	require.ErrorIs(t, err, model.ErrStructuralMismatch)
}

func TestLinear_PositionalBinding(t *testing.T) {
	// Coefficient columns are bound by position, not by the digit in their header.
	vars := table.MustFromRows(schema.SheetModel, []string{"Variable", "Coef_FO", "Coef_R2", "Coef_R1"},
		[]any{"X1", 1.0, 7.0, 5.0},
	)
	cons := table.MustFromRows(schema.SheetConstraints, []string{"Restriccion", "Tipo", "RHS"},
		[]any{"A", "<=", 1.0},
		[]any{"B", ">=", 2.0},
	)
	m, err := build.Linear(mustLinearInput(t, vars, cons), model.Minimize)
	require.NoError(t, err)
	require.Equal(t, 7.0, m.Constraints[0].Coefficient("X1"))
	require.Equal(t, 5.0, m.Constraints[1].Coefficient("X1"))
}

func TestSynthesize(t *testing.T) {
	vars, cons := schema.MinimizeExample()
	in := mustLinearInput(t, vars, cons)

	c, err := build.Synthesize(in, 2)
	require.NoError(t, err)
	require.Equal(t, "R3", c.Name)
	require.Equal(t, model.GreaterEqual, c.Relation)
	require.Equal(t, 1.5, c.RHS)
	require.Equal(t, map[string]float64{"X1": 0.5, "X2": 0}, c.Coefficients)

	_, err = build.Synthesize(in, 3)
	require.True(t, errors.Is(err, model.ErrStructuralMismatch))
	_, err = build.Synthesize(in, -1)
	require.ErrorIs(t, err, model.ErrStructuralMismatch)
}

func TestTables_RoundTrip(t *testing.T) {
	vars, cons := schema.MinimizeExample()
	m, err := build.Linear(mustLinearInput(t, vars, cons), model.Minimize)
	require.NoError(t, err)

	v2, c2, err := build.Tables(m)
	require.NoError(t, err)
	m2, err := build.Linear(mustLinearInput(t, v2, c2), model.Minimize)
	require.NoError(t, err)

	if diff := cmp.Diff(m, m2); diff != "" {
		t.Fatalf("round trip changed the model (-want +got):\n%s", diff)
	}

	names := func(tb *table.Table, col string) []string {
		var out []string
		for i := 0; i < tb.Len(); i++ {
			out = append(out, tb.Cell(i, col).(string))
		}
		sort.Strings(out)
		return out
	}
	require.Equal(t, names(vars, "Variable"), names(v2, "Variable"))
	require.Equal(t, names(cons, "Restriccion"), names(c2, "Restriccion"))
}

func TestLinear_Nil(t *testing.T) {
	_, err := build.Linear(nil, model.Maximize)
	require.ErrorIs(t, err, model.ErrNilModel)
	_, _, err = build.Tables(nil)
	require.ErrorIs(t, err, model.ErrNilModel)
}
