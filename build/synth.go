package build

import (
	"github.com/katalvlaran/tabopt/model"
	"github.com/katalvlaran/tabopt/schema"
)

// Synthesize builds constraint k of a linear input: it reads coefficient
// column k (CoefColumns[k], declared order) in every variable row and pairs
// each variable with that value, zeros included.
//
// Relation and RHS come from constraint row k. An index outside the
// constraint rows or the coefficient columns is ErrStructuralMismatch.
//
// Complexity: O(V).
func Synthesize(in *schema.LinearInput, k int) (model.ConstraintSpec, error) {
	if k < 0 || k >= len(in.Constraints) || k >= len(in.CoefColumns) {
		return model.ConstraintSpec{}, model.Errorf(model.ErrStructuralMismatch,
			"constraint %d has no coefficient column (%d columns, %d rows)",
			k+1, len(in.CoefColumns), len(in.Constraints))
	}

	row := in.Constraints[k]
	coefs := make(map[string]float64, len(in.Variables))
	for i, v := range in.Variables {
		coefs[v] = in.Coefficients[i][k]
	}

	return model.ConstraintSpec{
		Name:         row.Name,
		Relation:     row.Relation,
		RHS:          row.RHS,
		Coefficients: coefs,
	}, nil
}
