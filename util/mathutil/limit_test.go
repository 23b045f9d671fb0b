package mathutil

import "testing"

func TestLimitFloat64(t *testing.T) {
	if v := LimitFloat64(10, -7, 7); v != 7 {
		t.Fatal(v)
	}
	if v := LimitFloat64(-10, -7, 7); v != -7 {
		t.Fatal(v)
	}
	if v := LimitFloat64(3.5, -7, 7); v != 3.5 {
		t.Fatal(v)
	}
}

func TestSnapZeroFloat64(t *testing.T) {
	if v := SnapZeroFloat64(0.49, 0.5); v != 0 {
		t.Fatal(v)
	}
	if v := SnapZeroFloat64(-0.49, 0.5); v != 0 {
		t.Fatal(v)
	}
	// boundary is kept
	if v := SnapZeroFloat64(0.5, 0.5); v != 0.5 {
		t.Fatal(v)
	}
}

func TestBiggest(t *testing.T) {
	if v := Biggest(0, -5); v != 0 {
		t.Fatal(v)
	}
	if v := Biggest(0, 5); v != 5 {
		t.Fatal(v)
	}
}
