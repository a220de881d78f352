package duo

import (
	"encoding/json"
	"fmt"
)

// renderPayload gives the display form of a container payload: nested
// containers of either family render through their own String, plain error
// payloads as their quoted message, everything else as JSON.
func renderPayload(v any) string {
	if c, ok := v.(interface{ containerString() string }); ok {
		return c.containerString()
	}
	if err, ok := v.(error); ok {
		if _, marshals := v.(json.Marshaler); !marshals {
			b, _ := json.Marshal(err.Error())
			return string(b)
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// marshalPayload is the MarshalJSON counterpart of renderPayload. Nested
// containers collapse through their own MarshalJSON; error payloads without
// one marshal as their message.
func marshalPayload(v any) ([]byte, error) {
	if err, ok := v.(error); ok {
		if _, marshals := v.(json.Marshaler); !marshals {
			return json.Marshal(err.Error())
		}
	}
	return json.Marshal(v)
}
