package contract

// IHandleRepository mints and resolves ephemeral display handles for
// uploaded payloads. A handle stays resolvable until released; Release is
// a hard delete and the library guarantees it is called exactly once per
// handle.
type IHandleRepository interface {
	Mint(payload []byte, mimeType string) string
	Resolve(handle string) (payload []byte, mimeType string, found bool)
	Release(handle string)
}
