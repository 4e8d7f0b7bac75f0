package framework

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// WeightTable is a cyclic supply of scalarizing weight vectors. The cursor
// wraps modulo the row count; it belongs to the table value, so independent
// runs never share scheduling state.
type WeightTable struct {
	rows   [][]float64
	cursor int
}

// NewWeightTable validates the rows and builds a table. Every row must
// have numObjectives entries and a non-zero total weight.
func NewWeightTable(rows [][]float64, numObjectives int) (*WeightTable, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("weight table has no rows")
	}
	for i, row := range rows {
		if len(row) != numObjectives {
			return nil, fmt.Errorf("weight row %d has %d entries, want %d", i, len(row), numObjectives)
		}
		if math.Abs(floats.Sum(row)) == 0 {
			return nil, fmt.Errorf("weight row %d sums to zero", i)
		}
	}
	return &WeightTable{rows: rows}, nil
}

// UniformWeightTable builds a single-row table with equal weights, the
// fallback when no weight file is supplied.
func UniformWeightTable(numObjectives int) *WeightTable {
	row := make([]float64, numObjectives)
	for i := range row {
		row[i] = 1.0 / float64(numObjectives)
	}
	return &WeightTable{rows: [][]float64{row}}
}

// Next returns the vector at the cursor and advances it, wrapping past the
// last row. The returned slice is shared; callers must not mutate it.
func (t *WeightTable) Next() []float64 {
	row := t.rows[t.cursor]
	t.cursor++
	if t.cursor >= len(t.rows) {
		t.cursor = 0
	}
	return row
}

// Len returns the row count.
func (t *WeightTable) Len() int {
	return len(t.rows)
}

// Cursor returns the current cursor position, for run-state reporting.
func (t *WeightTable) Cursor() int {
	return t.cursor
}
