package mokp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mooptim/ibmols/pkg/framework"
)

// tokenReader walks a whitespace-separated token stream.
type tokenReader struct {
	scanner *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &tokenReader{scanner: s}
}

func (t *tokenReader) next(what string) (string, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: unexpected end of input reading %s", ErrMalformedInput, what)
	}
	return t.scanner.Text(), nil
}

func (t *tokenReader) nextInt(what string) (int, error) {
	tok, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not an integer", ErrMalformedInput, what, tok)
	}
	return v, nil
}

func (t *tokenReader) nextFloat(what string) (float64, error) {
	tok, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not a number", ErrMalformedInput, what, tok)
	}
	return v, nil
}

// ReadProblem parses a problem instance: a header line with the objective
// and item counts, then per objective a capacity followed by one
// (label, weight, profit) triple per item. Labels are required but unused.
func ReadProblem(r io.Reader) (*framework.ProblemDescriptor, error) {
	tr := newTokenReader(r)

	nf, err := tr.nextInt("objective count")
	if err != nil {
		return nil, err
	}
	ni, err := tr.nextInt("item count")
	if err != nil {
		return nil, err
	}
	if nf < framework.MinObjectives || nf > framework.MaxObjectives || ni <= 0 {
		return nil, fmt.Errorf("%w: %d objectives, %d items", ErrInvalidDimensions, nf, ni)
	}

	capacities := make([]float64, nf)
	weights := make([][]int, nf)
	profits := make([][]int, nf)
	for f := 0; f < nf; f++ {
		if capacities[f], err = tr.nextFloat("capacity"); err != nil {
			return nil, err
		}
		weights[f] = make([]int, ni)
		profits[f] = make([]int, ni)
		for i := 0; i < ni; i++ {
			if _, err = tr.next("item label"); err != nil {
				return nil, err
			}
			if weights[f][i], err = tr.nextInt("item weight"); err != nil {
				return nil, err
			}
			if profits[f][i], err = tr.nextInt("item profit"); err != nil {
				return nil, err
			}
		}
	}

	problem, err := framework.NewProblem(capacities, weights, profits)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDimensions, err)
	}
	return problem, nil
}

// ReadProblemFile parses a problem instance from disk.
func ReadProblemFile(path string) (*framework.ProblemDescriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadProblem(f)
}

// ReadWeightTable parses a scalarizing-weight table: numObjectives floats
// per row, arbitrary row count. A trailing incomplete row is discarded,
// matching the cyclic consumer's expectations.
func ReadWeightTable(r io.Reader, numObjectives int) (*framework.WeightTable, error) {
	tr := newTokenReader(r)

	var rows [][]float64
	for {
		row := make([]float64, 0, numObjectives)
		for i := 0; i < numObjectives; i++ {
			tok, err := tr.next("weight")
			if err != nil {
				if i == 0 || len(rows) > 0 {
					// Clean end of table, or a partial last row dropped.
					table, terr := framework.NewWeightTable(rows, numObjectives)
					if terr != nil {
						return nil, fmt.Errorf("%w: %v", ErrMalformedInput, terr)
					}
					return table, nil
				}
				return nil, err
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: weight %q is not a number", ErrMalformedInput, tok)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
}

// ReadWeightTableFile parses a weight table from disk.
func ReadWeightTableFile(path string, numObjectives int) (*framework.WeightTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadWeightTable(f, numObjectives)
}

// WriteResults serializes one archived front: one line per point, profit
// values space-separated.
func WriteResults(w io.Writer, points []framework.ObjectiveSpacePoint) error {
	bw := bufio.NewWriter(w)
	for _, point := range points {
		for _, v := range point {
			if _, err := fmt.Fprintf(bw, "%f ", v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteResultsFile serializes a front to disk.
func WriteResultsFile(path string, points []framework.ObjectiveSpacePoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteResults(f, points)
}
