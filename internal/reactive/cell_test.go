package reactive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCell_GetSet(t *testing.T) {
	c := NewCell(1)
	require.Equal(t, 1, c.Get())

	c.Set(2)
	require.Equal(t, 2, c.Get())
}

func TestCell_SubscribeReceivesChanges(t *testing.T) {
	c := NewCell("a")
	ch, cancel := c.Subscribe()
	defer cancel()

	c.Set("b")
	require.Equal(t, "b", <-ch)
}

func TestCell_SlowSubscriberSeesLatestValue(t *testing.T) {
	c := NewCell(0)
	ch, cancel := c.Subscribe()
	defer cancel()

	// Nobody reads between these; the pending notification is replaced.
	c.Set(1)
	c.Set(2)
	c.Set(3)

	require.Equal(t, 3, <-ch)
}

func TestCell_CancelClosesChannel(t *testing.T) {
	c := NewCell(0)
	ch, cancel := c.Subscribe()
	cancel()

	_, open := <-ch
	require.False(t, open)

	// Setting after cancel must not panic or notify.
	c.Set(5)
}

func TestCell_Update(t *testing.T) {
	c := NewCell(10)
	c.Update(func(v int) int { return v + 5 })
	require.Equal(t, 15, c.Get())
}

func TestReadOnly_And_Derive(t *testing.T) {
	c := NewCell[*string](nil)
	ro := c.AsReadOnly()
	isSet := Derive(ro, func(v *string) bool { return v != nil })

	require.False(t, isSet())

	v := "x"
	c.Set(&v)
	require.True(t, isSet())

	c.Set(nil)
	require.False(t, isSet())
}
