package texapply

// ApplyOptions controls a texture application run.
type ApplyOptions struct {
	// Slots are the texture slot definitions to apply.
	// Empty means DefaultSlots().
	Slots []Slot
	// Lookup is the texture lookup strategy. Nil means IndexLookup, which
	// resolves against the table built from the root scan. Use DirProbe for
	// trees where textures sit next to their descriptors.
	Lookup TextureLookup
	// StripPrefixes are literal prefixes removed from extracted texture
	// filenames before lookup (for example "T_"). Empty disables stripping.
	StripPrefixes []string
}

// normalize normalizes the ApplyOptions.
func (o *ApplyOptions) normalize() ApplyOptions {
	var out ApplyOptions
	if o != nil {
		out = *o
	}

	if len(out.Slots) == 0 {
		out.Slots = DefaultSlots()
	}
	if out.Lookup == nil {
		out.Lookup = IndexLookup{}
	}

	return out
}
