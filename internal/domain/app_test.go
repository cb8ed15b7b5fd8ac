package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppState_UnmarshalJSON(t *testing.T) {
	var s AppState
	require.NoError(t, json.Unmarshal([]byte(`"Sanctioned"`), &s))
	assert.Equal(t, StateSanctioned, s)

	assert.Error(t, json.Unmarshal([]byte(`"Launched"`), &s))
	assert.Error(t, json.Unmarshal([]byte(`42`), &s))
}

func TestAppCategory_UnmarshalJSON(t *testing.T) {
	var c AppCategory
	require.NoError(t, json.Unmarshal([]byte(`"Sales & Marketing"`), &c))
	assert.Equal(t, CategorySalesMarketing, c)

	assert.Error(t, json.Unmarshal([]byte(`"Gaming"`), &c))
}

func TestApp_JSONFieldNames(t *testing.T) {
	app := App{
		ID:       2001,
		Name:     "Foo",
		State:    StateDiscovered,
		Category: CategoryOther,
		URL:      "https://foo.com",
		IsCustom: true,
	}

	payload, err := json.Marshal(app)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(payload, &fields))

	for _, key := range []string{
		"id", "isHidden", "name", "state", "url", "imageUrl", "category",
		"users", "description", "tags", "creationTime", "lastUpdatedAt",
		"lastUsageTime", "addedBy", "primaryOwner", "isCustom", "sources",
	} {
		assert.Contains(t, fields, key)
	}
}

func TestUpdateAppRequest_AbsentFieldsDecodeToNil(t *testing.T) {
	var patch UpdateAppRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name": "X"}`), &patch))

	require.NotNil(t, patch.Name)
	assert.Equal(t, "X", *patch.Name)
	assert.Nil(t, patch.State)
	assert.Nil(t, patch.URL)
	assert.Nil(t, patch.Category)
	assert.Nil(t, patch.Description)
	assert.Nil(t, patch.Tags)
}
