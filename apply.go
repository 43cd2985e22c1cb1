package texapply

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ShaderGraph is the host boundary. The caller's shader graph receives the
// resolved images; how nodes are created and connected is host-specific.
// MemoryGraph is an in-memory implementation for dry runs and tests.
type ShaderGraph interface {
	// InputAvailable reports whether the named shader input exists on the
	// material and has no existing connection.
	InputAvailable(material, input string) bool
	// LinkImage creates an image node for link.Path and wires it as the
	// link describes.
	LinkImage(material string, link ImageLink) error
}

// ImageLink describes one image wiring the host should perform.
type ImageLink struct {
	Path       string     `json:"path" yaml:"path"`                               // Resolved texture file path
	Input      string     `json:"input" yaml:"input"`                             // Target shader input name
	ColorSpace ColorSpace `json:"colorSpace" yaml:"colorSpace"`                   // Color space for the loaded image
	NormalMap  bool       `json:"normalMap,omitempty" yaml:"normalMap,omitempty"` // Route the image through a normal-map conversion
	AlphaInput string     `json:"alphaInput,omitempty" yaml:"alphaInput,omitempty"` // Secondary input wired from the image alpha channel
}

// Apply matches each material name against the descriptor files under root,
// resolves the active texture reference of every configured slot, and wires
// the results into graph. Each call rescans root from scratch.
//
// Configuration problems abort the run: a missing root directory, an empty
// material list, or a tree with no descriptor files at all. Everything else
// degrades to a skip recorded on the report: unmatched materials, malformed
// descriptors, unresolved references, and already-connected inputs.
func Apply(root string, materials []string, graph ShaderGraph, opt *ApplyOptions) (*Report, error) {
	aopt := opt.normalize()

	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("%w: empty path", ErrRootNotFound)
	}
	if len(materials) == 0 {
		return nil, ErrNoMaterials
	}
	if graph == nil {
		return nil, errors.New("nil shader graph")
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %s: %w", root, err)
	}

	idx, err := BuildIndex(filepath.Clean(abs))
	if err != nil {
		return nil, err
	}
	if len(idx.Descriptors) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoDescriptors, root)
	}

	rep := &Report{}
	for _, name := range materials {
		if name == "" {
			continue
		}

		ref, _, ok := idx.MatchMaterial(name)
		if !ok {
			rep.addIssue(IssueWarning, "no_descriptor", "no matching descriptor file", name)
			continue
		}
		rep.Matched++

		data, err := os.ReadFile(ref.Path)
		if err != nil {
			rep.addIssue(IssueError, "descriptor_read", err.Error(), ref.Path)
			continue
		}

		desc, err := ParseDescriptor(data)
		if err != nil {
			rep.addIssue(IssueError, "descriptor_malformed", err.Error(), ref.Path)
			continue
		}

		applySlots(rep, &aopt, idx, ref, desc, name, graph)
	}

	return rep, nil
}

// applySlots runs every configured slot against one matched material.
func applySlots(rep *Report, opt *ApplyOptions, idx *Index, ref DescriptorRef, desc *Descriptor, material string, graph ShaderGraph) {
	ctx := LookupContext{Index: idx, Dir: ref.Dir, StripPrefixes: opt.StripPrefixes}

	for i := range opt.Slots {
		slot := &opt.Slots[i]

		key, ok := slot.ActiveKey()
		if !ok {
			rep.addIssue(IssueWarning, "no_active_key", fmt.Sprintf("slot %q has no active descriptor key", slot.Name), material)
			continue
		}

		texRef, ok := desc.Textures[key]
		if !ok || texRef == "" {
			rep.addIssue(IssueWarning, "key_missing", fmt.Sprintf("descriptor has no %q entry for slot %q", key, slot.Name), material)
			continue
		}

		path, ok := opt.Lookup.Lookup(texRef, ctx)
		if !ok {
			rep.addIssue(IssueWarning, "texture_unresolved", fmt.Sprintf("%s texture not found: %s", slot.Name, ExtractTextureName(texRef)), material)
			continue
		}

		if !graph.InputAvailable(material, slot.Input) {
			rep.Skipped++
			rep.addIssue(IssueWarning, "input_unavailable", fmt.Sprintf("input %q already connected or missing for slot %q", slot.Input, slot.Name), material)
			continue
		}

		link := ImageLink{
			Path:       path,
			Input:      slot.Input,
			ColorSpace: slot.ColorSpace,
			NormalMap:  slot.IsNormal(),
		}
		if slot.UseAlpha && !slot.IsNormal() {
			link.AlphaInput = slot.alphaInput()
		}

		if err := graph.LinkImage(material, link); err != nil {
			rep.addIssue(IssueError, "link_failed", err.Error(), material)
			continue
		}

		rep.Applied++
		if link.AlphaInput != "" {
			// The alpha wire counts as its own applied texture.
			rep.Applied++
		}
	}
}
