package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload converts an event payload to T. In-process publishers hand over
// T or *T directly; other shapes, such as maps from a serialized source, are
// re-decoded through JSON.
func DecodePayload[T any](payload interface{}) (T, error) {
	switch v := payload.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	}

	var out T
	raw, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf(ErrMsgDecodePayloadFormat, out, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf(ErrMsgDecodePayloadFormat, out, err)
	}
	return out, nil
}
