package texapply

import (
	"os"
	"path/filepath"
	"strings"
)

// resolveExts is the extension list probed by directory-local lookup, in order.
var resolveExts = []string{".png", ".jpg", ".jpeg", ".tga", ".exr", ".tiff", ".bmp", ".dds"}

// ExtractTextureName extracts the intended filename from a texture reference
// string, such as an engine asset path "/Game/Textures/T_Wall_D.T_Wall_D".
// The last path segment is taken; the duplicated-name asset pattern
// "Foo.Foo" collapses to "Foo". Any other dotted segment is kept whole and
// its extension is trimmed later during lookup.
func ExtractTextureName(ref string) string {
	if ref == "" {
		return ""
	}

	parts := strings.Split(ref, "/")
	name := parts[len(parts)-1]

	if i := strings.Index(name, "."); i >= 0 {
		base := name[:i]
		if name[i+1:] == base {
			return base
		}
	}

	return name
}

// LookupContext carries per-material context into a texture lookup strategy.
type LookupContext struct {
	Index         *Index   // Tables from the root scan, used by IndexLookup
	Dir           string   // Directory of the matched descriptor file, used by DirProbe
	StripPrefixes []string // Literal prefixes removed from extracted names before lookup
}

// TextureLookup resolves a texture reference string from a descriptor to a
// file on disk. Implementations decide where and how to search; a miss is
// reported with ok == false and is not an error.
type TextureLookup interface {
	Lookup(ref string, ctx LookupContext) (string, bool)
}

// IndexLookup resolves references against the globally indexed texture table.
type IndexLookup struct{}

// Lookup implements TextureLookup. Candidates are tried in order: the
// extracted name, the original last path segment, and the part of that
// segment before its first dot, each lower-cased without extension.
func (IndexLookup) Lookup(ref string, ctx LookupContext) (string, bool) {
	if ref == "" || ctx.Index == nil {
		return "", false
	}

	name := stripNamePrefix(ExtractTextureName(ref), ctx.StripPrefixes)
	if p, ok := ctx.Index.Textures[lowerNoExt(name)]; ok {
		return p, true
	}

	// Fall back to the raw last segment before extraction.
	orig := lastSegment(ref)
	if p, ok := ctx.Index.Textures[lowerNoExt(orig)]; ok {
		return p, true
	}

	if i := strings.Index(orig, "."); i >= 0 {
		if p, ok := ctx.Index.Textures[strings.ToLower(orig[:i])]; ok {
			return p, true
		}
	}

	return "", false
}

// DirProbe resolves references by probing the matched descriptor's own
// directory instead of a global table. Used for trees where textures sit
// next to their descriptors and are not indexed up front.
type DirProbe struct{}

// Lookup implements TextureLookup. The extracted name is probed across the
// known texture extensions, then the raw last path segment verbatim, then
// the part of that segment before its first dot across the extensions again.
func (DirProbe) Lookup(ref string, ctx LookupContext) (string, bool) {
	if ref == "" || ctx.Dir == "" {
		return "", false
	}

	name := stripNamePrefix(ExtractTextureName(ref), ctx.StripPrefixes)
	if p, ok := probeDir(ctx.Dir, trimExt(name)); ok {
		return p, true
	}

	orig := lastSegment(ref)
	if p := filepath.Join(ctx.Dir, orig); fileExists(p) {
		return p, true
	}

	if i := strings.Index(orig, "."); i >= 0 {
		if p, ok := probeDir(ctx.Dir, orig[:i]); ok {
			return p, true
		}
	}

	return "", false
}

// probeDir checks dir for base with every known texture extension.
func probeDir(dir, base string) (string, bool) {
	if base == "" {
		return "", false
	}

	for _, ext := range resolveExts {
		p := filepath.Join(dir, base+ext)
		if fileExists(p) {
			return p, true
		}
	}

	return "", false
}

// stripNamePrefix removes the first matching configured prefix, if any.
func stripNamePrefix(name string, prefixes []string) string {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(name, p) {
			return name[len(p):]
		}
	}

	return name
}

// lastSegment returns the part of ref after the final forward slash.
func lastSegment(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// trimExt strips the final extension from a filename.
func trimExt(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// lowerNoExt lower-cases a filename with its final extension stripped,
// matching the texture table's key form.
func lowerNoExt(name string) string {
	return strings.ToLower(trimExt(name))
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
