package dataset

import (
	"math"
	"strings"
	"testing"
)

func TestFromReader(t *testing.T) {
	csvData := `name,value
a,100
b,101
c,102
d,103
e,104`

	data, err := FromReader(strings.NewReader(csvData), DefaultOptions())
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	expected := []float64{100, 101, 102, 103, 104}
	if len(data) != len(expected) {
		t.Fatalf("Expected %d observations, got %d", len(expected), len(data))
	}
	for i, v := range expected {
		if data[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, data[i])
		}
	}
}

func TestFromReaderNamedColumn(t *testing.T) {
	csvData := `id,score,weight
1,89,0.5
2,73,0.25
3,94,0.25`

	opts := DefaultOptions()
	opts.ValueColumn = "score"

	data, err := FromReader(strings.NewReader(csvData), opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	expected := []float64{89, 73, 94}
	if len(data) != len(expected) {
		t.Fatalf("Expected %d observations, got %d", len(expected), len(data))
	}
	for i, v := range expected {
		if data[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, data[i])
		}
	}
}

func TestFromReaderMissingColumn(t *testing.T) {
	csvData := `a,b
1,2`

	opts := DefaultOptions()
	opts.ValueColumn = "missing"

	if _, err := FromReader(strings.NewReader(csvData), opts); err == nil {
		t.Fatal("Expected error for missing column")
	}
}

func TestFromReaderFiltered(t *testing.T) {
	csvData := `class,value
A,100
B,200
A,101
B,201
A,102`

	opts := DefaultOptions()
	opts.FilterColumn = "class"
	opts.FilterValue = "A"

	data, err := FromReader(strings.NewReader(csvData), opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if len(data) != 3 {
		t.Fatalf("Expected 3 observations for class A, got %d", len(data))
	}
	for i, v := range []float64{100, 101, 102} {
		if data[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, data[i])
		}
	}
}

func TestFromReaderSkipsMissingValues(t *testing.T) {
	csvData := `value
1
NA

NaN
null
2
abc
3`

	data, err := FromReader(strings.NewReader(csvData), DefaultOptions())
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	expected := []float64{1, 2, 3}
	if len(data) != len(expected) {
		t.Fatalf("Expected %d observations, got %d: %v", len(expected), len(data), data)
	}
	for i, v := range expected {
		if data[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, data[i])
		}
	}
}

func TestFromReaderNoHeader(t *testing.T) {
	csvData := `100
101
102`

	opts := DefaultOptions()
	opts.HasHeader = false
	opts.ValueColumn = "0"

	data, err := FromReader(strings.NewReader(csvData), opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if len(data) != 3 {
		t.Fatalf("Expected 3 observations, got %d", len(data))
	}
}

func TestFromReaderDelimiter(t *testing.T) {
	csvData := "value\n1.5\n2.5"

	opts := DefaultOptions()
	opts.Delimiter = ';'

	data, err := FromReader(strings.NewReader(csvData), opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}
	if len(data) != 2 || data[0] != 1.5 || data[1] != 2.5 {
		t.Errorf("Expected [1.5 2.5], got %v", data)
	}
}

func TestPairsFromReader(t *testing.T) {
	csvData := `hours,score
43,99
21,65
25,79
42,75
57,87
59,81`

	opts := DefaultOptions()
	opts.XColumn = "hours"
	opts.YColumn = "score"

	pairs, err := PairsFromReader(strings.NewReader(csvData), opts)
	if err != nil {
		t.Fatalf("Failed to load pairs: %v", err)
	}

	if len(pairs) != 6 {
		t.Fatalf("Expected 6 pairs, got %d", len(pairs))
	}
	if pairs[0].X != 43 || pairs[0].Y != 99 {
		t.Errorf("First pair: expected (43, 99), got (%f, %f)", pairs[0].X, pairs[0].Y)
	}
	if pairs[5].X != 59 || pairs[5].Y != 81 {
		t.Errorf("Last pair: expected (59, 81), got (%f, %f)", pairs[5].X, pairs[5].Y)
	}
}

func TestPairsFromReaderStaysAligned(t *testing.T) {
	// A row with either cell missing is dropped whole, never half-read.
	csvData := `x,y
1,10
2,NA
NA,30
4,40`

	opts := DefaultOptions()
	opts.XColumn = "x"
	opts.YColumn = "y"

	pairs, err := PairsFromReader(strings.NewReader(csvData), opts)
	if err != nil {
		t.Fatalf("Failed to load pairs: %v", err)
	}

	if len(pairs) != 2 {
		t.Fatalf("Expected 2 pairs, got %d: %v", len(pairs), pairs)
	}
	if pairs[0].X != 1 || pairs[0].Y != 10 || pairs[1].X != 4 || pairs[1].Y != 40 {
		t.Errorf("Expected pairs (1,10) and (4,40), got %v", pairs)
	}
}

func TestPairsFromReaderSameColumn(t *testing.T) {
	csvData := `x,y
1,2`

	opts := DefaultOptions()
	opts.XColumn = "x"
	opts.YColumn = "x"

	if _, err := PairsFromReader(strings.NewReader(csvData), opts); err == nil {
		t.Fatal("Expected error when x and y resolve to the same column")
	}
}

func TestFromReaderQuotedCells(t *testing.T) {
	csvData := `"class","value"
"A","1.25"
"A","2.75"`

	opts := DefaultOptions()
	opts.FilterColumn = "class"
	opts.FilterValue = "A"

	data, err := FromReader(strings.NewReader(csvData), opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}
	if len(data) != 2 || math.Abs(data[0]-1.25) > 0 || math.Abs(data[1]-2.75) > 0 {
		t.Errorf("Expected [1.25 2.75], got %v", data)
	}
}
