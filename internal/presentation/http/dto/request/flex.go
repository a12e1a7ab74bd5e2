package request

import (
	"bytes"
	"encoding/json"
)

// FlexString accepts any JSON value and keeps its text, so amounts and
// quantities reach the services exactly as the client typed them.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		// booleans, objects and arrays keep their raw text and are judged
		// by the field's own parsing rule
		*f = FlexString(data)
		return nil
	}
	*f = FlexString(n.String())
	return nil
}

// UnmarshalParam lets form and query binding fill a FlexString
func (f *FlexString) UnmarshalParam(param string) error {
	*f = FlexString(param)
	return nil
}

func (f FlexString) String() string {
	return string(f)
}
