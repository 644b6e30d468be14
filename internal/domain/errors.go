package domain

import "fmt"

// SchemaError reports a response that decoded but lacks a required field.
type SchemaError struct {
	Resource string
	Field    string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Resource, e.Field)
}
