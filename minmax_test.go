package shapecheck

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	minTests := []struct {
		min   float64
		value float64
		want  string
	}{
		{min: 0, value: 1, want: ""},
		{min: 0, value: 0, want: ""},
		{min: 0, value: -1, want: "Number must be at least 0"},
		{min: 5.5, value: 5.4, want: "Number must be at least 5.5"},
		{min: 5.5, value: 5.5, want: ""},
	}
	for _, tt := range minTests {
		t.Run(fmt.Sprintf("min:%v,v:%v", tt.min, tt.value), func(t *testing.T) {
			require.Equal(t, tt.want, Min(tt.min).verify(tt.value))
		})
	}

	maxTests := []struct {
		max   float64
		value float64
		want  string
	}{
		{max: 2, value: 2, want: ""},
		{max: 2, value: 1, want: ""},
		{max: 2, value: 3, want: "Number must be no more than 2"},
		{max: 5.5, value: 5.6, want: "Number must be no more than 5.5"},
	}
	for _, tt := range maxTests {
		t.Run(fmt.Sprintf("max:%v,v:%v", tt.max, tt.value), func(t *testing.T) {
			require.Equal(t, tt.want, Max(tt.max).verify(tt.value))
		})
	}
}

func TestFormatBound(t *testing.T) {
	require.Equal(t, "65535", formatBound(65535))
	require.Equal(t, "0.01", formatBound(0.01))
	require.Equal(t, "-3", formatBound(-3))
}
