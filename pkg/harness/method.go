// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: Identity and metadata of a discovered test method.

package harness

// Method describes one discovered test method. It is created by
// discovery and never modified by the harness.
type Method struct {
	// Package is the import path of the package declaring the class.
	Package string
	// Class is the simple name of the declaring type.
	Class string
	// Name is the method name.
	Name string
	// Repeat is the declared repeat count. Zero means none was declared.
	Repeat int
}

// Repetitions returns how often the method runs: Repeat, but never
// less than one.
func (m Method) Repetitions() int {
	if m.Repeat < 1 {
		return 1
	}
	return m.Repeat
}

// Repeated reports whether the method runs more than once.
func (m Method) Repeated() bool {
	return m.Repeat >= 2
}

// FullClassName returns the package qualified class name.
func (m Method) FullClassName() string {
	if m.Package == "" {
		return m.Class
	}
	return m.Package + "." + m.Class
}

// String returns Class.Name.
func (m Method) String() string {
	return m.Class + "." + m.Name
}

// MarshalLog implements log.Marshaler.
func (m Method) MarshalLog(addField func(key string, v interface{})) {
	addField("class", m.FullClassName())
	addField("method", m.Name)
	if m.Repeated() {
		addField("repeat", m.Repeat)
	}
}
