package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualTickOnlyFiresWhenPending(t *testing.T) {
	d := NewManual()
	require.True(t, d.Start())

	fired := 0
	d.RegisterEventHandler(func() { fired++ })

	assert.False(t, d.Tick(), "no emit yet, Tick should report false")
	assert.Equal(t, 0, fired)

	d.EmitEvent()
	assert.True(t, d.Tick())
	assert.Equal(t, 1, fired)

	assert.False(t, d.Tick(), "a single emit should only arm one tick")
	assert.Equal(t, 1, fired)
}

func TestManualDrainAllStopsAtLimit(t *testing.T) {
	d := NewManual()
	d.Start()

	fired := 0
	d.RegisterEventHandler(func() {
		fired++
		if fired < 10 {
			d.EmitEvent()
		}
	})
	d.EmitEvent()

	n := d.DrainAll(3)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, fired)
}

func TestManualUnregisterStopsDelivery(t *testing.T) {
	d := NewManual()
	d.Start()

	fired := 0
	id := d.RegisterEventHandler(func() { fired++ })
	d.UnregisterEventHandler(id)

	d.EmitEvent()
	assert.False(t, d.Tick(), "no handler registered, Tick has nothing to invoke")
	assert.Equal(t, 0, fired)
}
