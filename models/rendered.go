// SPDX-License-Identifier: Apache-2.0

package models

import "encoding/json"

// Rendered is a WordPress "rendered" field. The REST API returns these either
// as a plain string or as an object of the form {"raw": "...", "rendered": "..."},
// depending on the edit context. Rendered decodes both and always marshals
// back to a plain string.
type Rendered string

// UnmarshalJSON implements json.Unmarshaler.
func (r *Rendered) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = Rendered(s)
		return nil
	}

	var obj struct {
		Rendered string `json:"rendered"`
		Raw      string `json:"raw"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj.Rendered != "" {
		*r = Rendered(obj.Rendered)
	} else {
		*r = Rendered(obj.Raw)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r Rendered) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

// String returns the rendered text.
func (r Rendered) String() string {
	return string(r)
}
