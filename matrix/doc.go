// Package matrix provides the dense numeric grid behind labeled cost
// matrices, plus the shape and numeric validators the solvers rely on.
//
// Dense is row-major (offset = i*cols + j). Public accessors never panic on
// user input: At and Set return ErrOutOfRange, and Set and Apply reject
// NaN/±Inf with ErrNaNInf, so a Dense built through this package only ever
// holds finite values.
//
// Errors are package sentinels wrapped with the method and coordinates,
// e.g. "Dense.Set(1,0): matrix: NaN or Inf encountered". Match them with
// errors.Is.
//
// Complexity quicksheet:
//   - NewDense, FromRows, Clone, Apply, ToRows: O(r*c).
//   - At, Set, Rows, Cols: O(1).
//   - ValidateSquare: O(1); ValidateFinite: O(r*c).
package matrix
