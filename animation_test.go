package pointerdnd

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestAnimatorMoveSettles(t *testing.T) {
	var a Animator
	card := NewBox("card", 10, 10, ColorWhite)
	card.SetPosition(40, 30)

	a.Move(card, 10, 10, 0.5, ease.Linear)
	if a.Len() != 2 {
		t.Fatalf("Len = %d, want 2", a.Len())
	}
	a.Update(0.25)
	if math.Abs(card.X-25) > 0.01 || math.Abs(card.Y-20) > 0.01 {
		t.Errorf("halfway at (%v, %v), want (25, 20)", card.X, card.Y)
	}
	a.Update(0.25)
	if card.X != 10 || card.Y != 10 {
		t.Errorf("settled at (%v, %v), want (10, 10)", card.X, card.Y)
	}
	if a.Len() != 0 {
		t.Errorf("Len = %d after finishing, want 0", a.Len())
	}
}

func TestAnimatorFadeReplacesRunningFade(t *testing.T) {
	var a Animator
	card := NewBox("card", 10, 10, ColorWhite)

	a.Fade(card, 0, 1, ease.Linear)
	a.Update(0.5)
	// Reversing mid-fade continues from the current alpha.
	a.Fade(card, 1, 0.5, ease.Linear)
	if a.Len() != 1 {
		t.Fatalf("Len = %d, want one alpha tween", a.Len())
	}
	a.Update(0.25)
	if math.Abs(card.Alpha-0.75) > 0.01 {
		t.Errorf("Alpha = %v, want ~0.75", card.Alpha)
	}
	a.Update(0.25)
	if card.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", card.Alpha)
	}
}

func TestAnimatorFadeKeepsMove(t *testing.T) {
	var a Animator
	card := NewBox("card", 10, 10, ColorWhite)

	a.Move(card, 100, 0, 1, ease.Linear)
	a.Fade(card, 0.5, 1, ease.Linear)
	if a.Len() != 3 {
		t.Fatalf("Len = %d, want 3", a.Len())
	}
	a.Update(1)
	if card.X != 100 || card.Alpha != 0.5 {
		t.Errorf("got X=%v Alpha=%v, want 100 and 0.5", card.X, card.Alpha)
	}
}

func TestAnimatorZeroDurationSetsImmediately(t *testing.T) {
	var a Animator
	card := NewBox("card", 10, 10, ColorWhite)

	a.Fade(card, 0.3, 0.5, ease.Linear)
	a.Fade(card, 0.8, 0, ease.Linear)
	if card.Alpha != 0.8 {
		t.Errorf("Alpha = %v, want 0.8", card.Alpha)
	}
	if a.Len() != 0 {
		t.Errorf("Len = %d, the earlier fade should be cancelled", a.Len())
	}
}

func TestAnimatorDropsDisposedNodes(t *testing.T) {
	tests := []struct {
		name        string
		framesFirst int
	}{
		{"before first frame", 0},
		{"mid animation", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Animator
			card := NewBox("card", 10, 10, ColorWhite)
			a.Move(card, 100, 100, 1, ease.Linear)
			for i := 0; i < tt.framesFirst; i++ {
				a.Update(0.1)
			}
			x, y := card.X, card.Y
			card.Dispose()

			a.Update(0.1)
			if a.Len() != 0 {
				t.Errorf("Len = %d, want 0", a.Len())
			}
			if card.X != x || card.Y != y {
				t.Error("disposed node should not be written")
			}
		})
	}
}

func TestAnimatorEasingShapesPath(t *testing.T) {
	var a Animator
	linear := NewBox("linear", 1, 1, ColorWhite)
	cubic := NewBox("cubic", 1, 1, ColorWhite)

	a.Move(linear, 100, 0, 1, ease.Linear)
	a.Move(cubic, 100, 0, 1, ease.OutCubic)
	a.Update(0.5)

	if cubic.X <= linear.X+1 {
		t.Errorf("OutCubic should lead at midpoint: linear=%v cubic=%v", linear.X, cubic.X)
	}
}
