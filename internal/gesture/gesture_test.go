package gesture

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func decode(threshold int, samples ...Sample) []Pulse {
	return slices.Collect(NewDecoder(threshold).Pulses(slices.Values(samples)))
}

func TestDecoder(t *testing.T) {
	tests := []struct {
		name    string
		samples []Sample
		want    []Pulse
	}{
		{
			name:    "measures from the first sample",
			samples: []Sample{Active(0), Active(15), Active(25)},
			want:    []Pulse{None, None, Forward},
		},
		{
			name:    "backward",
			samples: []Sample{Active(100), Active(79)},
			want:    []Pulse{None, Backward},
		},
		{
			name:    "exactly the threshold is not enough",
			samples: []Sample{Active(0), Active(20), Active(-20)},
			want:    []Pulse{None, None, None},
		},
		{
			name:    "re-baselines after a pulse",
			samples: []Sample{Active(0), Active(21), Active(30), Active(45), Active(52)},
			want:    []Pulse{None, Forward, None, None, Forward},
		},
		{
			name:    "inactive clears the baseline",
			samples: []Sample{Active(0), Active(15), Inactive(), Active(30), Active(40)},
			want:    []Pulse{None, None, None, None, None},
		},
		{
			name:    "inactive alone",
			samples: []Sample{Inactive(), Inactive()},
			want:    []Pulse{None, None},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decode(DefaultThreshold, tt.samples...))
		})
	}
}

func TestDecoder_CustomThreshold(t *testing.T) {
	got := decode(2, Active(10), Active(13), Active(10), Active(7))
	assert.Equal(t, []Pulse{None, Forward, None, Backward}, got)
}

func TestNewDecoder_NonPositiveThresholdUsesDefault(t *testing.T) {
	assert.Equal(t, DefaultThreshold, NewDecoder(0).Threshold())
	assert.Equal(t, DefaultThreshold, NewDecoder(-3).Threshold())
}

func TestPulses_StopsEarly(t *testing.T) {
	d := NewDecoder(DefaultThreshold)
	var got []Pulse
	for p := range d.Pulses(slices.Values([]Sample{Active(0), Active(50), Active(0), Active(100)})) {
		got = append(got, p)
		if p == Forward {
			break
		}
	}
	assert.Equal(t, []Pulse{None, Forward}, got)
}

func TestPulse_String(t *testing.T) {
	assert.Equal(t, "forward", Forward.String())
	assert.Equal(t, "backward", Backward.String())
	assert.Equal(t, "none", None.String())
}
