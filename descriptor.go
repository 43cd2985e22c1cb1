package texapply

import (
	"encoding/json"
	"fmt"
	"os"
)

// Descriptor represents a parsed material descriptor file.
// Only the "Textures" object is consumed; other top-level keys are ignored.
type Descriptor struct {
	Textures map[string]string `json:"Textures"` // Texture reference strings keyed by descriptor key
}

// DescriptorRef locates a descriptor file found during indexing.
type DescriptorRef struct {
	Path string // Path to the descriptor file
	Dir  string // Directory containing the descriptor file
}

// ParseDescriptor decodes a material descriptor from JSON bytes.
// A document that does not decode, or whose "Textures" key is absent or not
// an object, is a malformed descriptor rather than a fatal condition.
func ParseDescriptor(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDescriptor, err)
	}
	if d.Textures == nil {
		return nil, fmt.Errorf("%w: missing Textures object", ErrMalformedDescriptor)
	}

	return &d, nil
}

// LoadDescriptor reads and decodes a descriptor file from disk.
func LoadDescriptor(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read descriptor %s: %w", path, err)
	}

	d, err := ParseDescriptor(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}
