package item

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()

	first := r.Register("food_cake")
	second := r.Register("weapon_sword_rusty")

	assert.Equal(t, ID(1), first)
	assert.Equal(t, ID(2), second)
	assert.Equal(t, 2, r.Len())

	defID, err := r.DefID(first)
	require.NoError(t, err)
	assert.Equal(t, "food_cake", defID)
}

func TestRegistryDeregister(t *testing.T) {
	r := NewRegistry()
	id := r.Register("food_cake")

	require.NoError(t, r.Deregister(id))
	assert.Equal(t, 0, r.Len())

	_, err := r.DefID(id)
	assert.Error(t, err)

	// a destroyed id stays destroyed
	assert.Error(t, r.Deregister(id))
}

func TestRegistryIDsAreNeverReused(t *testing.T) {
	r := NewRegistry()
	first := r.Register("food_cake")
	require.NoError(t, r.Deregister(first))

	second := r.Register("food_cake")
	assert.NotEqual(t, first, second)
}

func TestRegistryJSONRoundTrip(t *testing.T) {
	r := NewRegistry()
	r.Register("food_cake")
	sword := r.Register("weapon_sword_rusty")

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded Registry
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, r.NextID, decoded.NextID)
	assert.Equal(t, r.Items, decoded.Items)

	// issuing continues where the restored session left off
	next := decoded.Register("armor_leather")
	assert.Greater(t, next, sword)
}
