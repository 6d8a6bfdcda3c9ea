package storage

// Store defines the interface for the durable key-value store backing the
// application state. Values are JSON-encoded at this boundary.
type Store interface {
	// Get decodes the value stored under key into out. It returns false when
	// the key is absent. A corrupt stored value is treated as absent, not as
	// an error.
	Get(key string, out interface{}) (bool, error)
	// Set encodes value and stores it under key, overwriting any prior value.
	Set(key string, value interface{}) error
	// Remove deletes the entry under key. Removing an absent key is a no-op.
	Remove(key string) error
}

// Well-known keys of the persisted application state.
const (
	KeyCurrentUser  = "currentUser"
	KeyUserAccounts = "userAccounts"
	KeySharedItems  = "sharedItems"
)
