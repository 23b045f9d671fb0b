package event

import "testing"

func TestWheelDelta(t *testing.T) {
	if d := ButtonWheelUp.WheelDelta(); d != 1 {
		t.Fatal(d)
	}
	if d := ButtonWheelDown.WheelDelta(); d != -1 {
		t.Fatal(d)
	}
	if d := ButtonLeft.WheelDelta(); d != 0 {
		t.Fatal(d)
	}
}

func TestMouseButtonsHas(t *testing.T) {
	bs := MouseButtons(ButtonLeft | ButtonRight)
	if !bs.Has(ButtonLeft) || !bs.Has(ButtonRight) {
		t.Fatal(bs)
	}
	if bs.Has(ButtonMiddle) {
		t.Fatal(bs)
	}
	if bs.Is(ButtonLeft) {
		t.Fatal(bs)
	}
}
