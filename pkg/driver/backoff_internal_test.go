package driver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExponential_DoublesUpToMax(t *testing.T) {
	d := New(nil, Options{InitialBackoff: time.Second, MaxBackoff: 30 * time.Second})
	eb := d.exponential()

	assert.Equal(t, 2.0, eb.Multiplier)
	assert.Equal(t, time.Second, eb.InitialInterval)
	assert.Equal(t, 30*time.Second, eb.MaxInterval)
	assert.Equal(t, time.Duration(0), eb.MaxElapsedTime)

	eb.RandomizationFactor = 0
	eb.Reset()
	var waits []time.Duration
	for i := 0; i < 7; i++ {
		waits = append(waits, eb.NextBackOff())
	}
	assert.Equal(t, []time.Duration{
		time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second,
		16 * time.Second, 30 * time.Second, 30 * time.Second,
	}, waits)
}
