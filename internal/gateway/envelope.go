package gateway

import (
	"fmt"
	"strings"
)

// Envelope field names
const (
	FieldAction   = "action"
	FieldError    = "error"
	FieldSuccess  = "success"
	FieldMessage  = "message"
	FieldSettings = "settings"
	FieldProduct  = "product"
	FieldID       = "id"
)

// Recognised write actions
const (
	ActionAdd            = "add"
	ActionUpdate         = "update"
	ActionDelete         = "delete"
	ActionClearAll       = "clearAll"
	ActionGetSettings    = "getSettings"
	ActionUpdateSettings = "updateSettings"
)

// Envelope is a decoded response object, returned to callers unchanged.
type Envelope map[string]any

// HasError reports whether the body carries an error field. Null, false and
// empty-string values do not count.
func (e Envelope) HasError() bool {
	raw, ok := e[FieldError]
	if !ok {
		return false
	}
	switch v := raw.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	default:
		return true
	}
}

// ErrorText returns the error field rendered as text
func (e Envelope) ErrorText() string {
	raw, ok := e[FieldError]
	if !ok || raw == nil {
		return ""
	}
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case bool:
		// {"error": true} carries no text
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Success returns the success flag; absent means success for an error-free body
func (e Envelope) Success() bool {
	if e.HasError() {
		return false
	}
	v, ok := e[FieldSuccess].(bool)
	if !ok {
		return true
	}
	return v
}

// Message returns the optional message field
func (e Envelope) Message() string {
	v, _ := e[FieldMessage].(string)
	return strings.TrimSpace(v)
}

// Settings returns the settings object, or nil when absent
func (e Envelope) Settings() map[string]any {
	v, _ := e[FieldSettings].(map[string]any)
	return v
}
