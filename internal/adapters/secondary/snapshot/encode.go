package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"

	"ml-platform/internal/core/domain"
)

// Marshal renders snap as indented JSON without HTML escaping, so
// non-ASCII project names stay readable in the file.
func Marshal(snap *domain.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}
