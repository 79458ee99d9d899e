package area

// DecodeOptions configures decoding behavior.
type DecodeOptions struct {
	// SkipImage decodes only the directory, navigation, georeference and
	// timestamp, leaving Image() nil. Header-only decodes are cheap and
	// are what the index builder uses.
	SkipImage bool
}

// DefaultDecodeOptions returns decode options with defaults.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{
		SkipImage: false,
	}
}
