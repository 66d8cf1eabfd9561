package openapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_DocumentShape(t *testing.T) {
	spec, err := Build()
	require.NoError(t, err)

	assert.Equal(t, "base-api", spec.Info.Title)
	require.NotNil(t, spec.Paths.MapOfPathItemValues)

	for _, path := range []string{"/api/users", "/api/users/{id}", "/status"} {
		_, ok := spec.Paths.MapOfPathItemValues[path]
		assert.True(t, ok, "missing path %s", path)
	}
}

func TestBuildJSON_CreateUserSchema(t *testing.T) {
	out, err := BuildJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))

	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)

	users, ok := paths["/api/users"].(map[string]any)
	require.True(t, ok)

	// POST /api/users declares a required JSON request body whose
	// schema marks name and email as required, mirroring the
	// validator tags on the request type.
	post, ok := users["post"].(map[string]any)
	require.True(t, ok)
	body, ok := post["requestBody"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, body["required"])

	content := body["content"].(map[string]any)
	media := content["application/json"].(map[string]any)
	schema := media["schema"].(map[string]any)

	required, ok := schema["required"].([]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []any{"name", "email"}, required)

	props := schema["properties"].(map[string]any)
	email := props["email"].(map[string]any)
	assert.Equal(t, "email", email["format"])
}

func TestBuildJSON_ErrorEnvelopeDocumented(t *testing.T) {
	out, err := BuildJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))

	paths := doc["paths"].(map[string]any)
	users := paths["/api/users"].(map[string]any)
	post := users["post"].(map[string]any)
	responses := post["responses"].(map[string]any)

	// Both the created-user response and the validation-failure
	// envelope are part of the contract.
	_, ok := responses["201"]
	assert.True(t, ok)
	_, ok = responses["400"]
	assert.True(t, ok)
}
