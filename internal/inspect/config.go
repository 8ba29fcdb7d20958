package inspect

type Config struct {
	// SchemaFile is the path to an optional JSON Schema. When set,
	// POST bodies are validated against it and the verdict is added
	// to the dump. The HTTP response is never affected.
	SchemaFile string `conf:"schema"`

	// MaxBodyBytes caps the request body size. Zero means unlimited.
	MaxBodyBytes int64 `conf:"max_body_bytes"`
}
