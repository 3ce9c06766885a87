package der

// unpackConfig holds the options resolved from a call's UnpackOption list.
type unpackConfig struct {
	strictTrailing bool
}

// UnpackOption configures a single [Unpack] call.
type UnpackOption func(*unpackConfig)

// StrictTrailingData makes Unpack fail with ErrBadMessage if crs still
// holds bytes once the top-level program reaches its terminating LEAVE.
// This is the default.
func StrictTrailingData() UnpackOption {
	return func(c *unpackConfig) { c.strictTrailing = true }
}

// LenientTrailingData makes Unpack silently ignore bytes left in crs past
// the top-level program's terminating LEAVE, leaving crs positioned at
// them on return. Use this when the schema intentionally covers only a
// prefix of the buffer, such as one message in a stream of concatenated
// DER values.
func LenientTrailingData() UnpackOption {
	return func(c *unpackConfig) { c.strictTrailing = false }
}

func resolveUnpackConfig(opts []UnpackOption) unpackConfig {
	cfg := unpackConfig{strictTrailing: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
