package stats

import "testing"

func TestDescribeValues(t *testing.T) {
	d := DescribeValues([]float64{1, 2, 3, 4, 5})
	if d.Count != 5 {
		t.Errorf("expected count 5, got %d", d.Count)
	}
	if !almostEqual(d.Mean, 3) {
		t.Errorf("expected mean 3, got %v", d.Mean)
	}
	if d.Min != 1 || d.Max != 5 {
		t.Errorf("expected range [1,5], got [%v,%v]", d.Min, d.Max)
	}
	if !almostEqual(d.Median, 3) {
		t.Errorf("expected median 3, got %v", d.Median)
	}
	if d.Std <= 0 {
		t.Errorf("expected positive std, got %v", d.Std)
	}
	if d.Q25 > d.Median || d.Median > d.Q75 {
		t.Errorf("quartiles out of order: %v %v %v", d.Q25, d.Median, d.Q75)
	}
}

func TestDescribeValuesEmpty(t *testing.T) {
	d := DescribeValues(nil)
	if d != (Describe{}) {
		t.Errorf("empty input must yield the zero table, got %+v", d)
	}
}

func TestDescribeValuesSingle(t *testing.T) {
	d := DescribeValues([]float64{7})
	if d.Count != 1 || d.Mean != 7 || d.Min != 7 || d.Max != 7 {
		t.Errorf("unexpected single-value table: %+v", d)
	}
	if d.Std != 0 {
		t.Errorf("single value has no spread, got std %v", d.Std)
	}
}
