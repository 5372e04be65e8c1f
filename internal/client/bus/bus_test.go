package bus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBroadcaster_HandlersRunInRegistrationOrder(t *testing.T) {
	b := NewBroadcaster()

	var got []int
	b.Subscribe(func() { got = append(got, 1) })
	b.Subscribe(func() { got = append(got, 2) })
	b.Subscribe(func() { got = append(got, 3) })

	b.Publish()
	require.Equal(t, []int{1, 2, 3}, got)
}

func TestBroadcaster_EachPublishRunsAllHandlers(t *testing.T) {
	b := NewBroadcaster()

	n := 0
	b.Subscribe(func() { n++ })

	b.Publish()
	b.Publish()
	b.Publish()
	require.Equal(t, 3, n, "publishes must not be coalesced")
}

func TestBroadcaster_CancelStopsDelivery(t *testing.T) {
	b := NewBroadcaster()

	var got []string
	cancel := b.Subscribe(func() { got = append(got, "a") })
	b.Subscribe(func() { got = append(got, "b") })

	b.Publish()
	cancel()
	b.Publish()

	require.Equal(t, []string{"a", "b", "b"}, got)
	require.Equal(t, 1, b.Len())
}

func TestBroadcaster_CancelTwiceIsHarmless(t *testing.T) {
	b := NewBroadcaster()

	cancel := b.Subscribe(func() {})
	b.Subscribe(func() {})

	cancel()
	cancel()
	require.Equal(t, 1, b.Len())
}

func TestBroadcaster_PublishWithNoSubscribers(t *testing.T) {
	b := NewBroadcaster()
	require.NotPanics(t, func() { b.Publish() })
}

func TestBroadcaster_SubscribeDuringPublishTakesEffectNextTime(t *testing.T) {
	b := NewBroadcaster()

	n := 0
	b.Subscribe(func() {
		if n == 0 {
			b.Subscribe(func() { n += 10 })
		}
		n++
	})

	b.Publish()
	require.Equal(t, 1, n)

	b.Publish()
	require.Equal(t, 12, n)
}
