package calculator

import "testing"

func TestYearOverYear_InsufficientHistory(t *testing.T) {
	values := make([]float64, 12)
	for i := range values {
		values[i] = 100 + float64(i)
	}
	if _, ok := YearOverYear(values); ok {
		t.Error("expected absent YoY with fewer than 13 points")
	}
	if _, ok := YearOverYear(nil); ok {
		t.Error("expected absent YoY for empty input")
	}
}

func TestYearOverYear_ThirteenPoints(t *testing.T) {
	values := []float64{100, 100.5, 101, 101.4, 101.9, 102.3, 102.8, 103.1, 103.5, 103.9, 104.2, 104.6, 105}
	got, ok := YearOverYear(values)
	if !ok {
		t.Fatal("expected YoY present with 13 points")
	}
	if got != 5.0 {
		t.Errorf("expected YoY exactly 5.0, got %v", got)
	}
}

func TestYearOverYear_UsesThirteenthBack(t *testing.T) {
	// 14 points: the base is index 1, not index 0
	values := []float64{99.5, 100, 100.5, 101, 101.5, 102, 102.4, 102.8, 103.2, 103.6, 104, 104.3, 104.6, 105}
	got, ok := YearOverYear(values)
	if !ok {
		t.Fatal("expected YoY present with 14 points")
	}
	if got != 5.0 {
		t.Errorf("expected YoY from values[1]=100 to be 5.0, got %v", got)
	}
}

func TestMonthOverMonth(t *testing.T) {
	if _, ok := MonthOverMonth([]float64{105}); ok {
		t.Error("expected absent MoM with a single point")
	}
	got, ok := MonthOverMonth([]float64{100, 104.6, 105})
	if !ok {
		t.Fatal("expected MoM present with 3 points")
	}
	want := (105 - 104.6) / 104.6 * 100
	if got != want {
		t.Errorf("expected MoM %v, got %v", want, got)
	}
}

func TestZeroDenominator(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	if _, ok := YearOverYear(values); ok {
		t.Error("expected absent YoY for zero base value, not Inf")
	}
	if _, ok := MonthOverMonth([]float64{0, 5}); ok {
		t.Error("expected absent MoM for zero previous value, not Inf")
	}
}
