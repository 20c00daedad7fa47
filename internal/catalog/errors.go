package catalog

// Error is an explicit error envelope returned by the catalog API. The
// message is the server's own, or a per-resource fallback when the server
// sent none. Transport and decode failures are ordinary wrapped errors, not
// an Error.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
