package vox

// KeyValue is one entry of a Dictionary.
type KeyValue struct {
	Key   string
	Value string
}

// Dictionary is an ordered list of string attributes as stored in the file.
// Duplicate keys are kept in encounter order.
type Dictionary []KeyValue

// Get returns the value of the first entry with the given key.
func (d Dictionary) Get(key string) (string, bool) {
	for _, kv := range d {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

func (d Dictionary) Len() int { return len(d) }
