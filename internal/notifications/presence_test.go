package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(d *Directory, userID uint) *Client {
	return &Client{directory: d, UserID: userID, Send: make(chan []byte, 8)}
}

func TestDirectoryRegisterAndLookup(t *testing.T) {
	d := NewDirectory()
	c := newTestClient(d, 1)

	assert.Nil(t, d.Lookup(1))
	assert.False(t, d.Online(1))

	d.Register(c)

	assert.Same(t, c, d.Lookup(1))
	assert.True(t, d.Online(1))
	assert.Equal(t, 1, d.Count())
}

func TestDirectoryLastConnectionWins(t *testing.T) {
	d := NewDirectory()
	first := newTestClient(d, 1)
	second := newTestClient(d, 1)

	d.Register(first)
	d.Register(second)

	assert.Same(t, second, d.Lookup(1))
	assert.Equal(t, 1, d.Count())

	// The evicted client's send channel is closed so its write pump exits.
	_, open := <-first.Send
	assert.False(t, open)
}

func TestDirectoryUnregisterIgnoresStaleClient(t *testing.T) {
	d := NewDirectory()
	first := newTestClient(d, 1)
	second := newTestClient(d, 1)

	d.Register(first)
	d.Register(second)

	// The evicted connection tears itself down after the replacement is
	// already live; that must not knock the replacement offline.
	d.Unregister(first)
	assert.Same(t, second, d.Lookup(1))

	d.Unregister(second)
	assert.Nil(t, d.Lookup(1))
	assert.Equal(t, 0, d.Count())
}

func TestDirectoryTracksUsersIndependently(t *testing.T) {
	d := NewDirectory()
	a := newTestClient(d, 1)
	b := newTestClient(d, 2)

	d.Register(a)
	d.Register(b)
	require.Equal(t, 2, d.Count())

	d.Unregister(a)
	assert.Nil(t, d.Lookup(1))
	assert.Same(t, b, d.Lookup(2))
}
