package museum

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMuseumRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateMuseumRequest
		wantErr bool
	}{
		{"minimal valid", CreateMuseumRequest{Title: "Rocks", Slug: "rocks"}, false},
		{"missing title", CreateMuseumRequest{Slug: "rocks"}, true},
		{"uppercase slug", CreateMuseumRequest{Title: "Rocks", Slug: "Rocks"}, true},
		{"slug with spaces", CreateMuseumRequest{Title: "Rocks", Slug: "my rocks"}, true},
		{"valid layout", CreateMuseumRequest{Title: "Rocks", Slug: "rocks", LayoutType: "masonry"}, false},
		{"unknown layout", CreateMuseumRequest{Title: "Rocks", Slug: "rocks", LayoutType: "carousel"}, true},
		{"title too long", CreateMuseumRequest{Title: strings.Repeat("a", 101), Slug: "rocks"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateMuseumRequest_TriState(t *testing.T) {
	var req UpdateMuseumRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"New","description":null}`), &req))

	assert.True(t, req.Title.Set)
	assert.True(t, req.Title.Valid)
	assert.Equal(t, "New", req.Title.Value)

	assert.True(t, req.Description.Set, "explicit null is present")
	assert.False(t, req.Description.Valid, "explicit null carries no value")

	assert.False(t, req.Slug.Set, "absent key stays out of the update set")
	assert.True(t, req.HasChanges())
}

func TestUpdateMuseumRequest_NullableRules(t *testing.T) {
	var nullTitle UpdateMuseumRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":null}`), &nullTitle))
	assert.Error(t, nullTitle.Validate(), "title cannot be cleared")

	var nullDesc UpdateMuseumRequest
	require.NoError(t, json.Unmarshal([]byte(`{"description":null}`), &nullDesc))
	assert.NoError(t, nullDesc.Validate(), "description can be cleared")

	var nullVisibility UpdateMuseumRequest
	require.NoError(t, json.Unmarshal([]byte(`{"is_public":null}`), &nullVisibility))
	assert.Error(t, nullVisibility.Validate(), "visibility cannot be cleared")
}

func TestUpdateMuseumRequest_EmptyPayloadHasNoChanges(t *testing.T) {
	var req UpdateMuseumRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.False(t, req.HasChanges())
	assert.NoError(t, req.Validate())
}
