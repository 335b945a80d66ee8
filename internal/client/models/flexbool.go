package models

import "bytes"

// FlexBool reads the assorted encodings the backend has been seen to emit
// for boolean columns (1, "1", true, "true", "yes", "on") and always
// writes exactly 0 or 1. Unknown values decode as false rather than
// failing the whole document.
type FlexBool bool

// truthy holds the tolerated true encodings, as raw JSON tokens.
var truthy = [][]byte{
	[]byte(`1`),
	[]byte(`"1"`),
	[]byte(`true`),
	[]byte(`"true"`),
	[]byte(`"yes"`),
	[]byte(`"on"`),
}

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	for _, v := range truthy {
		if bytes.Equal(data, v) {
			*b = true
			return nil
		}
	}
	*b = false
	return nil
}

func (b FlexBool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte(`1`), nil
	}
	return []byte(`0`), nil
}

func (b FlexBool) Bool() bool { return bool(b) }
