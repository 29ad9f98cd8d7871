package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeControlZeroBudgetNeverPolls(t *testing.T) {
	tc := newTimeControl(0)
	tc.Start()
	time.Sleep(time.Millisecond)
	assert.False(t, tc.Poll())
}

func TestTimeControlStopLatchesImmediately(t *testing.T) {
	tc := newTimeControl(time.Hour)
	tc.Start()
	assert.False(t, tc.Poll())
	tc.Stop()
	assert.True(t, tc.Poll())
}

func TestTimeControlExpiresAfterBudget(t *testing.T) {
	tc := newTimeControl(5 * time.Millisecond)
	tc.Start()
	assert.False(t, tc.Poll())
	time.Sleep(10 * time.Millisecond)
	assert.True(t, tc.Poll())
}

func TestTimeControlStartResetsStoppedFlag(t *testing.T) {
	tc := newTimeControl(time.Hour)
	tc.Stop()
	tc.Start()
	assert.False(t, tc.Poll())
}
