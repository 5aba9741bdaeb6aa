package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeterConsume(t *testing.T) {
	meter := NewMeter(250)
	require.NoError(t, meter.Consume(100))
	require.EqualValues(t, 100, meter.Used())

	// reaching the ceiling exactly is still within budget
	require.NoError(t, meter.Consume(150))
	require.EqualValues(t, 250, meter.Used())

	require.ErrorIs(t, meter.Consume(1), ErrCyclesExceeded)
}

func TestMeterStaysExhausted(t *testing.T) {
	meter := NewMeter(50)
	require.ErrorIs(t, meter.Consume(51), ErrCyclesExceeded)
	require.ErrorIs(t, meter.Consume(0), ErrCyclesExceeded)
	require.EqualValues(t, 51, meter.Used())
}
