package observable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_SubscribeDeliversCurrent(t *testing.T) {
	v := NewValue("init")
	sub := v.Subscribe()
	defer sub.Unsubscribe()

	require.Equal(t, "init", <-sub.C())
}

func TestValue_LatestValueWins(t *testing.T) {
	v := NewValue(0)
	sub := v.Subscribe()
	defer sub.Unsubscribe()

	v.Set(1)
	v.Set(2)
	v.Set(3)

	assert.Equal(t, 3, <-sub.C())
	select {
	case got := <-sub.C():
		t.Fatalf("unexpected buffered value %d", got)
	default:
	}
	assert.Equal(t, 3, v.Get())
}

func TestValue_SetAfterUnsubscribe(t *testing.T) {
	v := NewValue("a")
	sub := v.Subscribe()
	<-sub.C()

	sub.Unsubscribe()
	sub.Unsubscribe()
	assert.Equal(t, 0, v.subscribers())

	assert.NotPanics(t, func() { v.Set("b") })

	_, ok := <-sub.C()
	assert.False(t, ok, "channel should be closed after unsubscribe")
}

func TestValue_MultipleSubscribers(t *testing.T) {
	v := NewValue(1)
	a := v.Subscribe()
	b := v.Subscribe()
	defer a.Unsubscribe()
	defer b.Unsubscribe()
	<-a.C()
	<-b.C()

	v.Set(5)

	assert.Equal(t, 5, <-a.C())
	assert.Equal(t, 5, <-b.C())
}

func TestSubscription_NilUnsubscribe(t *testing.T) {
	var sub *Subscription[int]
	assert.NotPanics(t, sub.Unsubscribe)
}
