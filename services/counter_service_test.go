package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memKV struct{ m map[string]string }

func newMemKV() *memKV { return &memKV{m: make(map[string]string)} }

func (k *memKV) Get(key string) (string, error) { return k.m[key], nil }
func (k *memKV) Put(key, value string) error    { k.m[key] = value; return nil }
func (k *memKV) seed(key, value string)         { k.m[key] = value }
func (k *memKV) stored(key string) string       { return k.m[key] }

func TestCounterDefaultsToZero(t *testing.T) {
	c := NewOrderCounter(newMemKV())

	last, err := c.PeekLast()
	require.NoError(t, err)
	assert.Equal(t, 0, last)

	n, err := c.AllocateNext()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCounterUnparsableValueDefaultsToZero(t *testing.T) {
	kv := newMemKV()
	kv.seed(OrderNumberKey, "not-a-number")
	c := NewOrderCounter(kv)

	last, err := c.PeekLast()
	require.NoError(t, err)
	assert.Equal(t, 0, last)

	n, err := c.AllocateNext()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "1", kv.stored(OrderNumberKey))
}

func TestCounterAllocatesSequentially(t *testing.T) {
	kv := newMemKV()
	kv.seed(OrderNumberKey, "7")
	c := NewOrderCounter(kv)

	n, err := c.AllocateNext()
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, "8", kv.stored(OrderNumberKey))

	n, err = c.AllocateNext()
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, "9", kv.stored(OrderNumberKey))
}

func TestCounterReset(t *testing.T) {
	kv := newMemKV()
	kv.seed(OrderNumberKey, "42")
	c := NewOrderCounter(kv)

	require.NoError(t, c.Reset(0))
	last, err := c.PeekLast()
	require.NoError(t, err)
	assert.Equal(t, 0, last)
}
