package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, sampleConfig()))

	out := buf.String()
	require.Contains(t, out, "name: my-lib")
	require.Contains(t, out, "connection: scm:git:https://github.com/org/my-lib.git")
}

func TestWriteJSON_UsesYAMLFieldNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleConfig()))

	var tree map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &tree))

	project, ok := tree["project"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "my-lib", project["name"])

	publishing, ok := tree["publishing"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, true, publishing["aggregate"])
}
