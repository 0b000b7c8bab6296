package schema

// Sheet (table) names used by the spreadsheet front end.
const (
	SheetModel       = "modelo"
	SheetConstraints = "restricciones"
	SheetCosts       = "costos"
)

// Column headers of the linear variant.
const (
	ColVariable   = "Variable"
	ColObjective  = "Coef_FO"
	CoefPrefix    = "Coef_R"
	ColConstraint = "Restriccion"
	ColRelation   = "Tipo"
	ColRHS        = "RHS"
)

// Column headers of the transportation variant.
const (
	ColOrigin      = "Origen"
	ColDestination = "Destino"
	ColCost        = "Costo"
	ColSupply      = "Oferta"
	ColDemand      = "Demanda"
)

// Default labels for assignment rows and columns.
const (
	AgentLabel = "Agente"
	TaskLabel  = "Tarea"
)
