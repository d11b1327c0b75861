package draft

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(8, time.Hour)
	key := Key("session-1", "training")

	_, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put(ctx, key, json.RawMessage(`{"participants":"12"}`)))
	d, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"participants":"12"}`, string(d))

	_, ok, _ = s.Get(ctx, Key("session-1", "consulting"))
	assert.False(t, ok, "drafts are per wizard kind")

	require.NoError(t, s.Delete(ctx, key))
	_, ok, _ = s.Get(ctx, key)
	assert.False(t, ok)
}

func TestMemoryStore_Expires(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(8, 20*time.Millisecond)
	require.NoError(t, s.Put(ctx, "k", json.RawMessage(`{}`)))
	time.Sleep(60 * time.Millisecond)
	_, ok, _ := s.Get(ctx, "k")
	assert.False(t, ok)
}
