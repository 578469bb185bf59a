package pointerdnd

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestFrameSeconds(t *testing.T) {
	tests := []struct {
		name   string
		tps    int
		actual float64
		want   float32
	}{
		{"fixed rate", 60, 58, 1.0 / 60},
		{"fixed rate ignores measured", 120, 0, 1.0 / 120},
		{"synced with fps", ebiten.SyncWithFPS, 144, 1.0 / 144},
		{"synced before measuring", ebiten.SyncWithFPS, 0, 1.0 / 60},
		{"zero rate", 0, 0, 1.0 / 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := frameSeconds(tt.tps, tt.actual)
			if got <= 0 {
				t.Fatalf("frameSeconds = %v, want positive", got)
			}
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("frameSeconds = %v, want %v", got, tt.want)
			}
		})
	}
}
