package integration_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// extractJSONField pulls a top-level string field out of a JSON body.
func extractJSONField(t *testing.T, body, field string) string {
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &parsed), "response must be valid JSON: "+body)

	value, ok := parsed[field].(string)
	require.True(t, ok, "field %q must be a string in: %s", field, body)
	return value
}

// parseJSON decodes a response body into out.
func parseJSON(t *testing.T, body string, out interface{}) {
	require.NoError(t, json.Unmarshal([]byte(body), out), "response must be valid JSON: "+body)
}
