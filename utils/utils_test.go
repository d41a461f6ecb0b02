package utils

import "testing"

func TestClamp(t *testing.T) {
	for _, test := range []struct {
		x, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{255.9, 0, 255, 255},
	} {
		if got := Clamp(test.x, test.lo, test.hi); got != test.want {
			t.Errorf("Clamp(%g, %g, %g): expected %g, got %g", test.x, test.lo, test.hi, test.want, got)
		}
	}
	if got := Clamp(300, 0, 255); got != 255 {
		t.Errorf("expected 255, got %d", got)
	}
}

func TestDecorateText(t *testing.T) {
	colored := Colored
	defer func() { Colored = colored }()

	Colored = false
	if got := DecorateText("done", SuccessMessage); got != "done" {
		t.Errorf("plain output expected, got %q", got)
	}
	Colored = true
	if got := DecorateText("done", SuccessMessage); got != SuccessColor+"done"+DefaultColor {
		t.Errorf("unexpected decorated text %q", got)
	}
	if got := DecorateText("raw", MessageType(42)); got != "raw" {
		t.Errorf("unknown types should be left as is, got %q", got)
	}
}
