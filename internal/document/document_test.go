package document

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatchReachesOnlyMatchingKind(t *testing.T) {
	t.Parallel()

	doc := New()
	var pointer, key []Event
	doc.AddListener(PointerDown, func(ev Event) { pointer = append(pointer, ev) })
	doc.AddListener(KeyDown, func(ev Event) { key = append(key, ev) })

	doc.Dispatch(Event{Kind: KeyDown, Key: "esc"})
	doc.Dispatch(Event{Kind: PointerDown, X: 3, Y: 4})

	require.Len(t, key, 1)
	require.Equal(t, "esc", key[0].Key)
	require.Len(t, pointer, 1)
	require.Equal(t, 3, pointer[0].X)
}

func TestRemoveIsIdempotent(t *testing.T) {
	t.Parallel()

	doc := New()
	reg := doc.AddListener(KeyDown, func(Event) {})
	require.True(t, reg.Active())
	require.Equal(t, 1, doc.ListenerCount())

	reg.Remove()
	reg.Remove()
	require.False(t, reg.Active())
	require.Equal(t, 0, doc.ListenerCount())

	Registration{}.Remove()
	require.False(t, Registration{}.Active())
}

func TestListenerMayRemoveSiblingDuringDispatch(t *testing.T) {
	t.Parallel()

	doc := New()
	calls := 0
	var second Registration
	first := doc.AddListener(PointerDown, func(Event) {
		calls++
		second.Remove()
	})
	second = doc.AddListener(PointerDown, func(Event) { calls += 100 })

	doc.Dispatch(Event{Kind: PointerDown})
	require.Equal(t, 1, calls)
	require.True(t, first.Active())
	require.Equal(t, 1, doc.ListenerCount(PointerDown))
}

func TestListenerMayRemoveItself(t *testing.T) {
	t.Parallel()

	doc := New()
	calls := 0
	var reg Registration
	reg = doc.AddListener(KeyDown, func(Event) {
		calls++
		reg.Remove()
	})

	doc.Dispatch(Event{Kind: KeyDown, Key: "a"})
	doc.Dispatch(Event{Kind: KeyDown, Key: "b"})
	require.Equal(t, 1, calls)
}

func TestDispatchOrderFollowsRegistration(t *testing.T) {
	t.Parallel()

	doc := New()
	var order []int
	for i := 0; i < 5; i++ {
		doc.AddListener(KeyDown, func(Event) { order = append(order, i) })
	}
	doc.Dispatch(Event{Kind: KeyDown})
	require.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestListenerCountByKind(t *testing.T) {
	t.Parallel()

	doc := New()
	doc.AddListener(KeyDown, func(Event) {})
	doc.AddListener(KeyDown, func(Event) {})
	doc.AddListener(PointerDown, func(Event) {})

	require.Equal(t, 2, doc.ListenerCount(KeyDown))
	require.Equal(t, 1, doc.ListenerCount(PointerDown))
	require.Equal(t, 3, doc.ListenerCount(PointerDown, KeyDown))
	require.Equal(t, 3, doc.ListenerCount())
}

func TestRect(t *testing.T) {
	t.Parallel()

	r := Rect{X: 2, Y: 1, Width: 3, Height: 2}
	require.True(t, r.Contains(2, 1))
	require.True(t, r.Contains(4, 2))
	require.False(t, r.Contains(5, 2))
	require.False(t, r.Contains(2, 3))
	require.False(t, r.Contains(1, 1))

	require.True(t, Rect{}.Empty())
	require.Equal(t, r, Rect{}.Union(r))
	require.Equal(t, Rect{X: 0, Y: 0, Width: 5, Height: 3}, r.Union(Rect{X: 0, Y: 0, Width: 1, Height: 1}))
}

func TestEventKindString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "pointerdown", PointerDown.String())
	require.Equal(t, "keydown", KeyDown.String())
	require.Equal(t, "unknown", EventKind(9).String())
}
