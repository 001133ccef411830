package utils

import (
	"encoding/json" // JSON encoding/decoding

	jsonpatch "github.com/evanphx/json-patch/v5" // RFC 6902 JSON patch
)

// ApplyJSONPatch applies an RFC 6902 patch document to doc, round-tripping
// through JSON. doc must be a pointer; it is overwritten with the patched value.
func ApplyJSONPatch(doc any, patchBody []byte) error {
	patch, err := jsonpatch.DecodePatch(patchBody) // Decode the patch document
	if err != nil {
		return err // Malformed patch
	}
	original, err := json.Marshal(doc) // Serialize the current document
	if err != nil {
		return err // Return error if marshaling fails
	}
	patched, err := patch.Apply(original) // Apply the patch operations
	if err != nil {
		return err // Patch could not be applied
	}
	return json.Unmarshal(patched, doc) // Write the patched value back
}
