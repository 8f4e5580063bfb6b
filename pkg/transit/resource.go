package transit

import (
	"encoding/json"
	"fmt"
)

// Resource is a single JSON:API record as returned in the data array of the
// MBTA v3 API
type Resource struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Attributes json.RawMessage `json:"attributes"`
}

// DecodeResources turns a raw data payload into its records. A nil payload
// is treated as an empty list.
func DecodeResources(data json.RawMessage) ([]Resource, error) {
	if len(data) == 0 || string(data) == "null" {
		return []Resource{}, nil
	}

	var resources []Resource
	if err := json.Unmarshal(data, &resources); err != nil {
		return nil, fmt.Errorf("decode resources: %w", err)
	}

	return resources, nil
}

func (r Resource) decodeAttributes(out any) error {
	if len(r.Attributes) == 0 {
		return fmt.Errorf("resource %q has no attributes", r.ID)
	}

	if err := json.Unmarshal(r.Attributes, out); err != nil {
		return fmt.Errorf("decode attributes of %q: %w", r.ID, err)
	}

	return nil
}
