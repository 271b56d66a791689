// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: Field marshaling shared by the log packages.

// Package logf has the log.F implementation
package logf

// Marshaler is the same interface as log.Marshaler.
type Marshaler interface {
	MarshalLog(addField func(key string, v interface{}))
}

// Marshal checks if v implements Marshaler. If it does, MarshalLog
// is called recursively and nested keys are joined with ".".
func Marshal(prefix string, v interface{}, setField func(key string, value interface{})) {
	m, ok := v.(Marshaler)
	if !ok {
		if prefix != "" {
			setField(prefix, v)
		}
		return
	}

	m.MarshalLog(func(inner string, val interface{}) {
		if prefix == "" {
			Marshal(inner, val, setField)
			return
		}
		Marshal(prefix+"."+inner, val, setField)
	})
}

// F implements a generic log.Marshaler interface
type F map[string]interface{}

// Set writes the field value into F. A value that is itself a
// Marshaler is flattened into dotted keys.
func (f F) Set(field string, value interface{}) {
	Marshal(field, value, func(key string, value interface{}) {
		f[key] = value
	})
}

// MarshalLog implements the Marshaler interface for F
func (f F) MarshalLog(addField func(field string, value interface{})) {
	for k, v := range f {
		addField(k, v)
	}
}

// Many aggregates marshaling of many items
type Many []Marshaler

// MarshalLog calls MarshalLog on all the individual elements
func (m Many) MarshalLog(addField func(key string, v interface{})) {
	for _, item := range m {
		if item != nil {
			item.MarshalLog(addField)
		}
	}
}
