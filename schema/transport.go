package schema

import (
	"strconv"

	"github.com/katalvlaran/tabopt/model"
	"github.com/katalvlaran/tabopt/table"
)

// Route is one validated row of the long-format transportation table.
// Supply and Demand are nil when the cell was blank (sparse columns).
type Route struct {
	Origin      string
	Destination string
	Cost        float64
	Supply      *float64
	Demand      *float64
}

// TransportInput is the validated transportation table, rows in table order.
type TransportInput struct {
	Routes []Route
}

// ValidateTransport checks the costos table of a transportation problem.
//
// Rules:
//   - Origen, Destino, Costo, Oferta, Demanda must exist (ErrSchema);
//   - Origen / Destino non-empty, each (origin, destination) pair at most once (ErrSchema).
//     Rejecting a repeated route goes beyond the column and value checks:
//     two rows for one route would yield two flow variables with one name;
//   - Costo coerces on every row, blank included (ErrNumericCoercion);
//   - Oferta / Demanda are optional per row, but present values must coerce;
//   - at least one Oferta and one Demanda value overall (ErrSchema).
//
// Complexity: O(R).
func ValidateTransport(t *table.Table) (*TransportInput, error) {
	if err := requireColumns(t, ColOrigin, ColDestination, ColCost, ColSupply, ColDemand); err != nil {
		return nil, err
	}

	var (
		in        = &TransportInput{Routes: make([]Route, 0, t.Len())}
		pairs     = make(map[[2]string]int, t.Len())
		anySupply bool
		anyDemand bool
	)
	for i := 0; i < t.Len(); i++ {
		r := Route{
			Origin:      textAt(t, i, ColOrigin),
			Destination: textAt(t, i, ColDestination),
		}
		if r.Origin == "" {
			return nil, &model.FieldError{Kind: model.ErrSchema, Table: t.Name, Column: ColOrigin, Row: i + 1, Reason: "origin is empty"}
		}
		if r.Destination == "" {
			return nil, &model.FieldError{Kind: model.ErrSchema, Table: t.Name, Column: ColDestination, Row: i + 1, Reason: "destination is empty"}
		}
		key := [2]string{r.Origin, r.Destination}
		if first, dup := pairs[key]; dup {
			return nil, &model.FieldError{Kind: model.ErrSchema, Table: t.Name, Column: ColDestination, Row: i + 1,
				Value: r.Origin + "→" + r.Destination, Reason: "route repeated from row " + strconv.Itoa(first+1)}
		}
		pairs[key] = i

		cost, ok, err := numberAt(t, i, ColCost)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &model.FieldError{Kind: model.ErrNumericCoercion, Table: t.Name, Column: ColCost, Row: i + 1, Reason: "cost is missing"}
		}
		r.Cost = cost

		if r.Supply, err = optionalNumber(t, i, ColSupply); err != nil {
			return nil, err
		}
		if r.Demand, err = optionalNumber(t, i, ColDemand); err != nil {
			return nil, err
		}
		anySupply = anySupply || r.Supply != nil
		anyDemand = anyDemand || r.Demand != nil

		in.Routes = append(in.Routes, r)
	}

	if !anySupply {
		return nil, &model.FieldError{Kind: model.ErrSchema, Table: t.Name, Column: ColSupply, Reason: "no supply value declared"}
	}
	if !anyDemand {
		return nil, &model.FieldError{Kind: model.ErrSchema, Table: t.Name, Column: ColDemand, Reason: "no demand value declared"}
	}

	return in, nil
}

func optionalNumber(t *table.Table, row int, column string) (*float64, error) {
	f, ok, err := numberAt(t, row, column)
	if err != nil || !ok {
		return nil, err
	}

	return &f, nil
}
