package vitals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	e := New()

	vs := e.Extract("Your heart rate is 110. Blood pressure 140/90, temperature 101.2 degrees, and you're satting 94 on room air.")
	require.NotNil(t, vs)
	assert.Equal(t, 110, vs.HeartRate)
	assert.Equal(t, "140/90", vs.BloodPressure)
	assert.Equal(t, 101.2, vs.Temperature)
	assert.Equal(t, 94, vs.OxygenSaturation)
}

func TestExtract_PartialVitals(t *testing.T) {
	e := New()

	vs := e.Extract("Pulse of 88 today, everything else pending.")
	require.NotNil(t, vs)
	assert.Equal(t, 88, vs.HeartRate)
	assert.Empty(t, vs.BloodPressure)
	assert.Zero(t, vs.Temperature)
	assert.Zero(t, vs.OxygenSaturation)
}

func TestExtract_SeverityScoreNotBloodPressure(t *testing.T) {
	e := New()

	// "10/10" is a pain score, not a pressure reading.
	vs := e.Extract("The pain is 10/10 right now.")
	assert.Nil(t, vs)
}

func TestExtract_NoVitals(t *testing.T) {
	e := New()

	assert.Nil(t, e.Extract("I'm having chest pain since this morning."))
	assert.Nil(t, e.Extract(""))
}

func TestExtract_FirstMatchWins(t *testing.T) {
	e := New()

	vs := e.Extract("Heart rate is 110, rechecked heart rate 95.")
	require.NotNil(t, vs)
	assert.Equal(t, 110, vs.HeartRate)
}
