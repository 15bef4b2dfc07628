package schemas_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/format-analyzer/schemas"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		"analysis", "batch", "formats", "mf2", "suggestion",
		"syndication", "validation_result", "weight_table", "weights",
	}, schemas.Names())
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, name := range schemas.Names() {
		t.Run(name, func(t *testing.T) {
			doc, err := schemas.Load(name)
			require.NoError(t, err)

			var v interface{}
			assert.NoError(t, json.Unmarshal([]byte(doc), &v), "schema file should be valid JSON: %s", name)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, name := range schemas.Names() {
		t.Run(name, func(t *testing.T) {
			doc, err := schemas.Load(name)
			require.NoError(t, err)

			_, err = gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
			assert.NoError(t, err, "schema should compile: %s", name)
		})
	}
}

func TestLoad_Unknown(t *testing.T) {
	_, err := schemas.Load("poem")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown schema")
}
