package storage

// Blob is the durable key-value store the challenge state is persisted
// against. All writes are whole-value, last-writer-wins; there is no
// partial update at this layer.
type Blob interface {
	// Get returns the value for key, with ok false when the key is absent
	Get(key string) (value []byte, ok bool, err error)
	// Set overwrites the value for key
	Set(key string, value []byte) error
	// Delete removes key; deleting an absent key is not an error
	Delete(key string) error
	// Close releases any underlying resources
	Close() error
}
