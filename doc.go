/*
Package texapply matches per-material JSON descriptor files to a 3D object's
material slots and resolves the texture references inside those descriptors
to image files on disk.

A run scans a root directory once, building two lookup tables: descriptor
files keyed by filename without extension, and texture files keyed by
lower-cased filename without extension. Material names are matched against
the descriptor table (exact, case-insensitive, then with common prefixes
such as "MI_" or "MAT_" stripped), and each configured texture slot resolves
its active descriptor key through a pluggable lookup strategy. Wiring the
resolved images into an actual shader graph is the host's job, expressed
through the ShaderGraph interface; MemoryGraph is an in-memory stand-in.

Apply example:

	graph := texapply.NewMemoryGraph()
	rep, err := texapply.Apply("./assets", []string{"MI_Wall"}, graph, nil)
	if err != nil {
		// handle error
	}
	fmt.Println(rep.Summary())

Index example:

	idx, err := texapply.BuildIndex("./assets")
	if err != nil {
		// handle error
	}
	ref, key, ok := idx.MatchMaterial("MI_Wall")
	if ok {
		_ = ref.Path
		_ = key
	}

Resolution example:

	path, ok := texapply.IndexLookup{}.Lookup(
		"/Game/Textures/T_Wall_D.T_Wall_D",
		texapply.LookupContext{Index: idx},
	)
	if ok {
		_ = path
	}

Configuration example:

	cfg, err := texapply.LoadConfig("slots.yaml")
	if err != nil {
		// handle error
	}
	opt, err := cfg.Options()
	if err != nil {
		// handle error
	}
	rep, err := texapply.Apply(cfg.Root, []string{"MI_Wall"}, graph, opt)
*/
package texapply
