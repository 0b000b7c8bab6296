package schema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabopt/schema"
)

func TestLinearTemplate_Validates(t *testing.T) {
	vars, cons := schema.LinearTemplate(3, 2)
	require.Equal(t, []string{"Variable", "Coef_FO", "Coef_R1", "Coef_R2"}, vars.Columns)
	require.Equal(t, 3, vars.Len())
	require.Equal(t, 2, cons.Len())

	in, err := schema.ValidateLinear(vars, cons)
	require.NoError(t, err)
	require.Equal(t, []string{"X1", "X2", "X3"}, in.Variables)
}

func TestLinearTemplate_ClampsSizes(t *testing.T) {
	vars, cons := schema.LinearTemplate(0, -4)
	require.Equal(t, 1, vars.Len())
	require.Equal(t, 1, cons.Len())
}

func TestTransportTemplate_Validates(t *testing.T) {
	tb := schema.TransportTemplate(2, 3)
	require.Equal(t, 6, tb.Len())

	in, err := schema.ValidateTransport(tb)
	require.NoError(t, err)
	require.Equal(t, "O2", in.Routes[5].Origin)
	require.Equal(t, "D3", in.Routes[5].Destination)
}

func TestAssignmentTemplate_Validates(t *testing.T) {
	in, err := schema.ValidateAssignment(schema.AssignmentTemplate(1))
	require.NoError(t, err)
	require.Equal(t, 2, in.Matrix.Size())
	require.Equal(t, "Tarea 2", in.Matrix.ColLabels[1])
}

func TestExamples_Validate(t *testing.T) {
	vars, cons := schema.MinimizeExample()
	_, err := schema.ValidateLinear(vars, cons)
	require.NoError(t, err)

	_, err = schema.ValidateTransport(schema.TransportExample())
	require.NoError(t, err)
}
