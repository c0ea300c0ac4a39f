package log

import (
	"maps"
	"slices"
)

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldSlot      = "slot"
	FieldRecordID  = "record_id"
	FieldName      = "name"
	FieldCategory  = "category"
	FieldAmount    = "amount"
	FieldCount     = "count"
	FieldOffsets   = "offsets"
	FieldBackend   = "backend"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentLedger    = "ledger"
	ComponentFavorites = "favorites"
	ComponentActivity  = "activity"
	ComponentStorage   = "storage"
	ComponentBackend   = "backend"
)

// Operations defines standard operation names
const (
	OpLoad   = "load"
	OpSave   = "save"
	OpAppend = "append"
	OpRemove = "remove"
	OpAdd    = "add"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithSlot adds the kv slot name
func (f LogFields) WithSlot(key string) LogFields {
	f[FieldSlot] = key
	return f
}

// WithRecord adds expense record fields
func (f LogFields) WithRecord(id, name, category, amount string) LogFields {
	f[FieldRecordID] = id
	f[FieldName] = name
	f[FieldCategory] = category
	f[FieldAmount] = amount
	return f
}

// WithCount adds a count field
func (f LogFields) WithCount(n int) LogFields {
	f[FieldCount] = n
	return f
}

// ToSlice converts LogFields to a slice for slog, ordered by field name.
func (f LogFields) ToSlice() []any {
	keys := slices.Sorted(maps.Keys(f))
	slice := make([]any, 0, len(f)*2)
	for _, k := range keys {
		slice = append(slice, k, f[k])
	}
	return slice
}
