package patch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Title       Field[string] `json:"title"`
	Description Field[string] `json:"description"`
	OrderIndex  Field[int]    `json:"order_index"`
}

func TestFieldAbsent(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

	assert.False(t, p.Title.Set)
	assert.False(t, p.Description.Set)
	assert.False(t, p.OrderIndex.Set)
}

func TestFieldExplicitNull(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"description":null}`), &p))

	assert.True(t, p.Description.Set)
	assert.False(t, p.Description.Valid)
	assert.Nil(t, p.Description.Ptr())
	assert.False(t, p.Title.Set)
}

func TestFieldEmptyStringIsAValue(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"description":""}`), &p))

	assert.True(t, p.Description.Set)
	assert.True(t, p.Description.Valid)
	require.NotNil(t, p.Description.Ptr())
	assert.Equal(t, "", *p.Description.Ptr())
}

func TestFieldValue(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Rocks","order_index":3}`), &p))

	assert.True(t, p.Title.Set)
	assert.True(t, p.Title.Valid)
	assert.Equal(t, "Rocks", p.Title.Value)
	assert.Equal(t, 3, p.OrderIndex.Value)
}

func TestFieldZeroValueDistinctFromAbsent(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"order_index":0}`), &p))

	assert.True(t, p.OrderIndex.Set)
	assert.True(t, p.OrderIndex.Valid)
	assert.Equal(t, 0, p.OrderIndex.Value)
}
