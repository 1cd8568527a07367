package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_MemoryOnly_GetPutRoundTrip(t *testing.T) {
	c, err := New(4, "")
	require.NoError(t, err)

	key := Key{InputHash: "abc123", Stage: "extraction", Model: "pattern"}
	c.Put(key, []byte(`{"ok":true}`))

	v, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, `{"ok":true}`, string(v))
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	c, err := New(4, "")
	require.NoError(t, err)

	_, ok := c.Get(Key{InputHash: "nope", Stage: "x", Model: "y"})
	assert.False(t, ok)
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c, err := New(2, "")
	require.NoError(t, err)

	k1 := Key{InputHash: "1", Stage: "s", Model: "m"}
	k2 := Key{InputHash: "2", Stage: "s", Model: "m"}
	k3 := Key{InputHash: "3", Stage: "s", Model: "m"}

	c.Put(k1, []byte("one"))
	c.Put(k2, []byte("two"))
	_, _ = c.Get(k1) // touch k1 so k2 becomes the least recently used
	c.Put(k3, []byte("three"))

	_, k1ok := c.Get(k1)
	_, k2ok := c.Get(k2)
	_, k3ok := c.Get(k3)

	assert.True(t, k1ok)
	assert.False(t, k2ok, "k2 should have been evicted as least recently used")
	assert.True(t, k3ok)
	assert.Equal(t, 2, c.Len())
}

func TestCache_DifferentModelIsADifferentKey(t *testing.T) {
	c, err := New(4, "")
	require.NoError(t, err)

	base := Key{InputHash: "abc", Stage: "extraction"}
	genai := base
	genai.Model = "genai-2.0"
	mock := base
	mock.Model = "mock"

	c.Put(genai, []byte("genai-result"))
	_, ok := c.Get(mock)
	assert.False(t, ok, "a model change must miss, not reuse a stale result")
}
