package outcome

// messageMap is the insertion-ordered key/value container behind a Result's
// messages. Writing a key that already exists does not discard the previous
// value: the new value takes the base key and the previous one is pushed to
// the key with an underscore appended, cascading through earlier shadows.
// Writing "error" three times leaves the newest at "error", the second newest
// at "error_" and the oldest at "error__".
type messageMap struct {
	keys   []string
	values map[string]any
}

func newMessageMap() *messageMap {
	return &messageMap{values: make(map[string]any)}
}

func (m *messageMap) pushBack(key string, value any) {
	old, exists := m.values[key]
	if !exists {
		m.keys = append(m.keys, key)
		m.values[key] = value
		return
	}
	m.remove(key)
	m.keys = append(m.keys, key)
	m.values[key] = value
	m.pushBack(key+"_", old)
}

// set overwrites the value at key in place, without shifting shadows. Only
// the reserved status entry is written this way.
func (m *messageMap) set(key string, value any) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *messageMap) remove(key string) {
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			return
		}
	}
}

func (m *messageMap) get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Messages is a read-only, insertion-ordered view of a Result's messages.
// It always contains the reserved "status" entry; for non-success results it
// also contains at least an "error" entry. The view cannot be mutated;
// AsMap returns a fresh copy on every call.
type Messages struct {
	m *messageMap
}

// Get returns the message stored under key, if any.
func (ms Messages) Get(key string) (any, bool) {
	return ms.m.get(key)
}

// Keys returns the message keys in insertion order.
func (ms Messages) Keys() []string {
	if ms.m == nil {
		return nil
	}
	keys := make([]string, len(ms.m.keys))
	copy(keys, ms.m.keys)
	return keys
}

// Len reports the number of messages, including the status entry.
func (ms Messages) Len() int {
	if ms.m == nil {
		return 0
	}
	return len(ms.m.keys)
}

// AsMap copies the messages into a plain map. Mutating the copy has no
// effect on the Result it came from.
func (ms Messages) AsMap() map[string]any {
	out := make(map[string]any, ms.Len())
	if ms.m == nil {
		return out
	}
	for k, v := range ms.m.values {
		out[k] = v
	}
	return out
}
