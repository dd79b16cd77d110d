package job

import (
	"maps"
	"strconv"
)

// DataMap is the flat string-keyed record persisted for a job. Values are
// stored verbatim as strings; typed accessors parse on read so corruption
// introduced by any writer is caught where the value is used.
//
// A DataMap is owned by a single firing and is not internally
// synchronized. The persisted store provides last-writer-wins semantics
// per key; anything stronger is a store responsibility.
type DataMap struct {
	values map[string]string
}

// NewDataMap returns an empty DataMap.
func NewDataMap() *DataMap {
	return &DataMap{values: make(map[string]string)}
}

// DataMapFrom returns a DataMap seeded with a copy of values.
func DataMapFrom(values map[string]string) *DataMap {
	m := NewDataMap()
	maps.Copy(m.values, values)
	return m
}

// Get returns the raw value for key and whether it is present.
func (m *DataMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// GetString returns the value for key, or "" when absent. Missing values
// never surface as a null.
func (m *DataMap) GetString(key string) string {
	return m.values[key]
}

// GetBool returns the boolean value for key. A missing or unparsable
// value reads as false.
func (m *DataMap) GetBool(key string) bool {
	v, ok := m.values[key]
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return b
}

// Set stores value verbatim under key.
func (m *DataMap) Set(key, value string) {
	m.values[key] = value
}

// SetInt stores n as a decimal string under key.
func (m *DataMap) SetInt(key string, n int) {
	m.values[key] = strconv.Itoa(n)
}

// SetBool stores b as "true" or "false" under key.
func (m *DataMap) SetBool(key string, b bool) {
	m.values[key] = strconv.FormatBool(b)
}

// Delete removes key from the map.
func (m *DataMap) Delete(key string) {
	delete(m.values, key)
}

// Len returns the number of stored keys.
func (m *DataMap) Len() int { return len(m.values) }

// Values returns a copy of the underlying map for persistence layers.
func (m *DataMap) Values() map[string]string {
	out := make(map[string]string, len(m.values))
	maps.Copy(out, m.values)
	return out
}

// Clone returns an independent copy of the map.
func (m *DataMap) Clone() *DataMap {
	return DataMapFrom(m.values)
}
