package texapply

import "errors"

var (
	// ErrRootNotFound indicates the root directory does not exist or is not a directory.
	ErrRootNotFound = errors.New("root directory not found")

	// ErrNoMaterials indicates no material names were supplied for the run.
	ErrNoMaterials = errors.New("no material slots")

	// ErrNoDescriptors indicates no JSON descriptor files were found under the root.
	ErrNoDescriptors = errors.New("no descriptor files found")

	// ErrMalformedDescriptor indicates a descriptor file could not be decoded
	// or is missing its "Textures" object.
	ErrMalformedDescriptor = errors.New("malformed descriptor")
)
