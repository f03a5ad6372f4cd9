package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

func TestFakeClock_NowMovesOnlyOnAdvance(t *testing.T) {
	c := Fake(epoch)
	assert.Equal(t, epoch, c.Now())

	c.Advance(90 * time.Second)
	assert.Equal(t, epoch.Add(90*time.Second), c.Now())
}

func TestFakeClock_TickerFiresOnDeadline(t *testing.T) {
	c := Fake(epoch)
	ticker := c.NewTicker(time.Minute)
	defer ticker.Stop()

	c.Advance(59 * time.Second)
	select {
	case <-ticker.C:
		t.Fatal("ticker fired before its interval")
	default:
	}

	c.Advance(time.Second)
	select {
	case at := <-ticker.C:
		assert.Equal(t, epoch.Add(time.Minute), at)
	default:
		t.Fatal("ticker did not fire")
	}
}

func TestFakeClock_TickerDropsMissedTicks(t *testing.T) {
	c := Fake(epoch)
	ticker := c.NewTicker(time.Minute)
	defer ticker.Stop()

	c.Advance(5 * time.Minute)
	<-ticker.C
	select {
	case <-ticker.C:
		t.Fatal("missed ticks must not queue")
	default:
	}

	// next deadline is aligned to the interval, not to the advance
	c.Advance(time.Minute)
	select {
	case <-ticker.C:
	default:
		t.Fatal("ticker did not resume")
	}
}

func TestFakeClock_StoppedTickerIsSilent(t *testing.T) {
	c := Fake(epoch)
	ticker := c.NewTicker(time.Minute)
	ticker.Stop()

	c.Advance(time.Hour)
	select {
	case <-ticker.C:
		t.Fatal("stopped ticker fired")
	default:
	}
}

func TestFakeClock_BlockUntilTickers(t *testing.T) {
	c := Fake(epoch)
	done := make(chan struct{})
	go func() {
		c.BlockUntilTickers(2)
		close(done)
	}()

	c.NewTicker(time.Second)
	c.NewTicker(time.Second)

	select {
	case <-done:
	case <-time.After(time.Second):
		require.FailNow(t, "BlockUntilTickers did not return")
	}
}

func TestFakeClock_NewTickerPanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { Fake(epoch).NewTicker(0) })
}
