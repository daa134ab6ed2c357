package primitives

// Values is an insertion-ordered string-keyed store. Deleting a key and
// setting it again moves it to the end. It is not safe for concurrent use.
type Values struct {
	keys []string
	data map[string]any
}

// NewValues creates an empty store.
func NewValues() *Values {
	return &Values{data: make(map[string]any)}
}

// Get retrieves a value by key.
func (v *Values) Get(key string) (any, bool) {
	val, ok := v.data[key]
	return val, ok
}

// Set stores a value, appending the key if it is new.
func (v *Values) Set(key string, val any) {
	if _, ok := v.data[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.data[key] = val
}

// Delete removes a key and reports whether it was present.
func (v *Values) Delete(key string) bool {
	if _, ok := v.data[key]; !ok {
		return false
	}
	delete(v.data, key)
	for i, k := range v.keys {
		if k == key {
			v.keys = append(v.keys[:i], v.keys[i+1:]...)
			break
		}
	}
	return true
}

// Has reports whether key is present.
func (v *Values) Has(key string) bool {
	_, ok := v.data[key]
	return ok
}

// Len returns the number of keys.
func (v *Values) Len() int { return len(v.keys) }

// Keys returns the keys in insertion order.
func (v *Values) Keys() []string {
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// Snapshot returns a copy of the store.
func (v *Values) Snapshot() *Values {
	out := &Values{
		keys: make([]string, len(v.keys)),
		data: make(map[string]any, len(v.data)),
	}
	copy(out.keys, v.keys)
	for k, val := range v.data {
		out.data[k] = val
	}
	return out
}

