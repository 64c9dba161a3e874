package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBool_InitialValue(t *testing.T) {
	assert.False(t, NewBool(false).Get())
	assert.True(t, NewBool(true).Get())
}

func TestBool_SubscribeReceivesCurrentValue(t *testing.T) {
	b := NewBool(true)

	var got []bool
	unsub := b.Subscribe(func(v bool) { got = append(got, v) })
	defer unsub()

	require.Equal(t, []bool{true}, got)
}

func TestBool_SetNotifiesOnlyOnChange(t *testing.T) {
	b := NewBool(false)

	var got []bool
	unsub := b.Subscribe(func(v bool) { got = append(got, v) })
	defer unsub()

	b.Set(true)
	b.Set(true)
	b.Set(false)
	b.Set(false)

	assert.Equal(t, []bool{false, true, false}, got)
	assert.False(t, b.Get())
}

func TestBool_Unsubscribe(t *testing.T) {
	b := NewBool(false)

	calls := 0
	unsub := b.Subscribe(func(bool) { calls++ })
	unsub()
	unsub()

	b.Set(true)
	assert.Equal(t, 1, calls)
}

func TestBool_SubscribersNotifiedInOrder(t *testing.T) {
	b := NewBool(false)

	var order []string
	b.Subscribe(func(v bool) {
		if v {
			order = append(order, "first")
		}
	})
	b.Subscribe(func(v bool) {
		if v {
			order = append(order, "second")
		}
	})

	b.Set(true)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestBool_CallbackMaySetAgain(t *testing.T) {
	b := NewBool(false)

	b.Subscribe(func(v bool) {
		if v {
			b.Set(false)
		}
	})

	b.Set(true)
	assert.False(t, b.Get())
}
