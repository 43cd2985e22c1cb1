package texapply

// MemoryGraph is an in-memory ShaderGraph for dry runs and tests. It records
// every link and treats recorded inputs as connected on later calls, so a
// second run over the same graph skips everything it already wired.
type MemoryGraph struct {
	links  []RecordedLink
	linked map[string]struct{}
	inputs map[string]struct{} // nil means every input name exists
}

// RecordedLink is one LinkImage call captured by a MemoryGraph.
type RecordedLink struct {
	Material string    // Material the image was wired into
	Link     ImageLink // The wiring that was requested
}

// NewMemoryGraph creates an empty MemoryGraph that accepts every input name.
func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{linked: make(map[string]struct{})}
}

// LimitInputs restricts the graph to the given shader input names; any other
// input is reported unavailable, like a shader without that socket.
func (g *MemoryGraph) LimitInputs(names ...string) {
	g.inputs = make(map[string]struct{}, len(names))
	for _, n := range names {
		g.inputs[n] = struct{}{}
	}
}

// MarkLinked marks an input as already connected, as if a previous run or
// the user had wired it by hand.
func (g *MemoryGraph) MarkLinked(material, input string) {
	g.linked[linkKey(material, input)] = struct{}{}
}

// InputAvailable implements ShaderGraph.
func (g *MemoryGraph) InputAvailable(material, input string) bool {
	if g.inputs != nil {
		if _, ok := g.inputs[input]; !ok {
			return false
		}
	}

	_, ok := g.linked[linkKey(material, input)]
	return !ok
}

// LinkImage implements ShaderGraph.
func (g *MemoryGraph) LinkImage(material string, link ImageLink) error {
	g.links = append(g.links, RecordedLink{Material: material, Link: link})
	g.linked[linkKey(material, link.Input)] = struct{}{}
	if link.AlphaInput != "" {
		g.linked[linkKey(material, link.AlphaInput)] = struct{}{}
	}

	return nil
}

// Links returns the captured links in application order.
func (g *MemoryGraph) Links() []RecordedLink { return g.links }

// linkKey builds the connection table key for a material input.
func linkKey(material, input string) string { return material + "\x00" + input }
