package govconf

// Hooks lightweight callbacks for store events.
// Implementations MUST be cheap and non-blocking.
type Hooks interface {
	// The store failed a write; the caller received a StoreError
	// (or nothing, with Options.SwallowStoreErrors).
	WriteFailed(path string, err error)

	// The store failed a delete.
	DeleteFailed(path string, err error)

	// The store failed a read. Reads always surface the error.
	ReadFailed(path string, err error)

	// A read found nothing at path.
	Miss(path string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) WriteFailed(string, error)  {}
func (NopHooks) DeleteFailed(string, error) {}
func (NopHooks) ReadFailed(string, error)   {}
func (NopHooks) Miss(string)                {}
