// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"encoding/json"
	"fmt"
)

// Decode unmarshals a successful response body into v. A body that does not
// match the expected shape yields ErrDecode: the remote operation may have
// succeeded, but its result cannot be trusted.
func Decode(raw []byte, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}
