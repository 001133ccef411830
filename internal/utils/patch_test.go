package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patchDoc struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Details string `json:"details"`
}

func TestApplyJSONPatch_ReplacesFields(t *testing.T) {
	doc := patchDoc{ID: 1, Name: "Villa", Details: "old"}
	patch := []byte(`[{"op":"replace","path":"/details","value":"new"}]`)

	require.NoError(t, ApplyJSONPatch(&doc, patch))
	assert.Equal(t, "new", doc.Details)
	assert.Equal(t, "Villa", doc.Name, "untouched fields survive")
	assert.Equal(t, uint(1), doc.ID)
}

func TestApplyJSONPatch_MalformedDocument(t *testing.T) {
	doc := patchDoc{ID: 1, Name: "Villa"}
	assert.Error(t, ApplyJSONPatch(&doc, []byte(`{"not":"a patch"}`)))
}

func TestApplyJSONPatch_BadOperation(t *testing.T) {
	doc := patchDoc{ID: 1, Name: "Villa"}
	// Testing a value that does not match fails the patch
	patch := []byte(`[{"op":"test","path":"/name","value":"Other"},{"op":"replace","path":"/name","value":"X"}]`)
	assert.Error(t, ApplyJSONPatch(&doc, patch))
	assert.Equal(t, "Villa", doc.Name, "document is left untouched on failure")
}
