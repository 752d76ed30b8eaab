package logger

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// renderPayload returns the text appended below the message and whether
// there is any. A nil payload, including a nil map, slice, pointer or
// interface, counts as none. Values of string kind pass through
// untouched; anything else becomes indented JSON, so a []byte is
// printed base64 encoded.
func renderPayload(payload any) (string, bool, error) {
	if payload == nil {
		return "", false, nil
	}
	v := reflect.ValueOf(payload)
	switch v.Kind() {
	case reflect.String:
		return v.String(), true, nil
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Func:
		if v.IsNil() {
			return "", false, nil
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(payload); err != nil {
		return "", false, wrapKind(ErrPayloadEncode, err, 0)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), true, nil
}
