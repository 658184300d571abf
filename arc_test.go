package arcprogress

import (
	"testing"

	"github.com/gogpu/arcprogress/anim"
)

func TestArcStateAngles(t *testing.T) {
	tests := []struct {
		name      string
		state     ArcState
		wantStart float64
		wantSweep float64
	}{
		{
			name: "determinate half",
			state: ArcState{
				Determinate: DeterminateState{Progress: 50, Maximum: 100, StartAngle: 270},
			},
			wantStart: 270,
			wantSweep: 180,
		},
		{
			name: "determinate overshoot saturates",
			state: ArcState{
				Determinate: DeterminateState{Progress: 150, Maximum: 100, StartAngle: 270},
			},
			wantStart: 270,
			wantSweep: 360,
		},
		{
			name: "determinate with cap",
			state: ArcState{
				Determinate: DeterminateState{Progress: 25, Maximum: 100, StartAngle: 0},
				CapAngle:    3,
			},
			wantStart: 3,
			wantSweep: 84,
		},
		{
			name: "full circle ignores cap",
			state: ArcState{
				Determinate: DeterminateState{Progress: 100, Maximum: 100, StartAngle: -90},
				CapAngle:    3,
			},
			wantStart: -90,
			wantSweep: 360,
		},
		{
			name: "grow mode",
			state: ArcState{
				Indeterminate: true,
				Spinner: IndeterminateState{
					RotationAngle: 45,
					SweepAngle:    120,
					MinimumAngle:  60,
					Phase:         anim.Phase{GrowMode: true},
				},
			},
			wantStart: 45,
			wantSweep: 180,
		},
		{
			name: "grow mode with offset",
			state: ArcState{
				Indeterminate: true,
				Spinner: IndeterminateState{
					RotationAngle: 45,
					SweepAngle:    120,
					MinimumAngle:  60,
					Phase:         anim.Phase{GrowMode: true, OffsetAngle: 120},
				},
			},
			wantStart: -75,
			wantSweep: 180,
		},
		{
			name: "shrink mode",
			state: ArcState{
				Indeterminate: true,
				Spinner: IndeterminateState{
					RotationAngle: 45,
					SweepAngle:    120,
					MinimumAngle:  60,
					Phase:         anim.Phase{OffsetAngle: 120},
				},
			},
			wantStart: 45,
			wantSweep: 180,
		},
		{
			name: "shrink mode with cap",
			state: ArcState{
				Indeterminate: true,
				Spinner: IndeterminateState{
					RotationAngle: 10,
					SweepAngle:    0,
					MinimumAngle:  60,
				},
				CapAngle: 2,
			},
			wantStart: 12,
			wantSweep: 296,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, sweep := tt.state.Angles()
			if !almostEqual(start, tt.wantStart) || !almostEqual(sweep, tt.wantSweep) {
				t.Errorf("Angles() = (%v, %v), want (%v, %v)", start, sweep, tt.wantStart, tt.wantSweep)
			}
		})
	}
}

// The arc must not jump when the phase toggles at the end of a sweep.
func TestArcStateContinuousAcrossPhaseToggle(t *testing.T) {
	const minimum = 40.0
	limit := FullCircle - 2*minimum

	endOfGrow := ArcState{Indeterminate: true, Spinner: IndeterminateState{
		RotationAngle: 100, SweepAngle: limit, MinimumAngle: minimum,
		Phase: anim.Phase{GrowMode: true, OffsetAngle: 80},
	}}
	startOfShrink := ArcState{Indeterminate: true, Spinner: IndeterminateState{
		RotationAngle: 100, SweepAngle: 0, MinimumAngle: minimum,
		Phase: anim.Phase{GrowMode: false, OffsetAngle: 80},
	}}

	s1, w1 := endOfGrow.Angles()
	s2, w2 := startOfShrink.Angles()
	if !almostEqual(s1, s2) || !almostEqual(w1, w2) {
		t.Errorf("grow->shrink jumped: (%v, %v) -> (%v, %v)", s1, w1, s2, w2)
	}
}

func TestArcStateIsPure(t *testing.T) {
	s := ArcState{Determinate: DeterminateState{Progress: 33, Maximum: 100, StartAngle: 270}, CapAngle: 1}
	s1, w1 := s.Angles()
	s2, w2 := s.Angles()
	if s1 != s2 || w1 != w2 {
		t.Errorf("Angles() not deterministic: (%v, %v) vs (%v, %v)", s1, w1, s2, w2)
	}
}
