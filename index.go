package texapply

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// textureExts is the fixed set of texture file extensions recognized by the
// indexer, matched case-insensitively.
var textureExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".tga":  {},
	".exr":  {},
	".tiff": {},
	".bmp":  {},
	".dds":  {},
}

// Index holds the lookup tables built from one scan of a root directory.
type Index struct {
	Descriptors map[string]DescriptorRef // Descriptor files keyed by filename without extension
	Textures    map[string]string        // Texture files keyed by lower-cased filename without extension

	fold map[string]string // Lower-cased descriptor key to original key, first seen wins
}

// BuildIndex walks root recursively and builds both lookup tables.
// The walk is lexical, so duplicate filenames overwrite earlier entries in a
// defined order. Tables are rebuilt from scratch on every call; nothing is
// cached between runs.
func BuildIndex(root string) (*Index, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}

	idx := &Index{
		Descriptors: make(map[string]DescriptorRef),
		Textures:    make(map[string]string),
		fold:        make(map[string]string),
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		name := d.Name()
		ext := strings.ToLower(filepath.Ext(name))
		base := strings.TrimSuffix(name, filepath.Ext(name))

		if ext == ".json" {
			idx.Descriptors[base] = DescriptorRef{Path: path, Dir: filepath.Dir(path)}
			lower := strings.ToLower(base)
			if _, ok := idx.fold[lower]; !ok {
				idx.fold[lower] = base
			}
			return nil
		}

		if _, ok := textureExts[ext]; ok {
			idx.Textures[strings.ToLower(base)] = path
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	return idx, nil
}
