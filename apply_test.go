package texapply

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// seedRoot writes a minimal descriptor/texture tree and returns its path.
func seedRoot(t *testing.T, descriptor, textureName string) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Wall.json"), descriptor)
	if textureName != "" {
		writeFile(t, filepath.Join(root, textureName), "img")
	}
	return root
}

const wallDescriptor = `{"Textures": {"PM_Diffuse": "/Game/T_Wall_D.T_Wall_D"}}`

func TestApplyEndToEnd(t *testing.T) {
	root := seedRoot(t, wallDescriptor, "t_wall_d.png")
	graph := NewMemoryGraph()

	rep, err := Apply(root, []string{"MI_Wall"}, graph, nil)
	require.NoError(t, err)

	require.Equal(t, 1, rep.Matched)
	require.Equal(t, 1, rep.Applied)
	require.Equal(t, 0, rep.Skipped)
	require.Equal(t, OutcomeApplied, rep.Outcome())

	links := graph.Links()
	require.Len(t, links, 1)
	require.Equal(t, "MI_Wall", links[0].Material)
	require.Equal(t, "Base Color", links[0].Link.Input)
	require.Equal(t, ColorSpaceSRGB, links[0].Link.ColorSpace)
	require.Equal(t, filepath.Join(root, "t_wall_d.png"), links[0].Link.Path)
	require.False(t, links[0].Link.NormalMap)
}

func TestApplyPrefixStripToggle(t *testing.T) {
	root := seedRoot(t, wallDescriptor, "wall_d.png")
	graph := NewMemoryGraph()

	rep, err := Apply(root, []string{"MI_Wall"}, graph, &ApplyOptions{StripPrefixes: []string{"T_"}})
	require.NoError(t, err)
	require.Equal(t, 1, rep.Applied)
	require.Equal(t, filepath.Join(root, "wall_d.png"), graph.Links()[0].Link.Path)
}

func TestApplyMissingTexturesKey(t *testing.T) {
	root := seedRoot(t, `{"Name": "Wall"}`, "t_wall_d.png")

	rep, err := Apply(root, []string{"MI_Wall"}, NewMemoryGraph(), nil)
	require.NoError(t, err)

	// Matched but nothing applied is a distinct outcome, not an error.
	require.Equal(t, 1, rep.Matched)
	require.Equal(t, 0, rep.Applied)
	require.Equal(t, 0, rep.Skipped)
	require.Equal(t, OutcomeNothingApplied, rep.Outcome())
	require.NotEmpty(t, rep.Issues)
	require.Equal(t, "descriptor_malformed", rep.Issues[0].Code)
}

func TestApplyMalformedDescriptor(t *testing.T) {
	root := seedRoot(t, `not json at all`, "t_wall_d.png")

	rep, err := Apply(root, []string{"MI_Wall"}, NewMemoryGraph(), nil)
	require.NoError(t, err)
	require.Equal(t, 1, rep.Matched)
	require.Equal(t, 0, rep.Applied)
	require.Equal(t, "descriptor_malformed", rep.Issues[0].Code)
}

func TestApplyAlreadyLinkedInput(t *testing.T) {
	root := seedRoot(t, wallDescriptor, "t_wall_d.png")
	graph := NewMemoryGraph()
	graph.MarkLinked("MI_Wall", "Base Color")

	rep, err := Apply(root, []string{"MI_Wall"}, graph, nil)
	require.NoError(t, err)
	require.Equal(t, 1, rep.Matched)
	require.Equal(t, 0, rep.Applied)
	require.Equal(t, 1, rep.Skipped)
	require.Equal(t, OutcomeAllPresent, rep.Outcome())
	require.Empty(t, graph.Links())
}

func TestApplyRerunSkipsExisting(t *testing.T) {
	root := seedRoot(t, wallDescriptor, "t_wall_d.png")
	graph := NewMemoryGraph()

	rep, err := Apply(root, []string{"MI_Wall"}, graph, nil)
	require.NoError(t, err)
	require.Equal(t, 1, rep.Applied)

	rep, err = Apply(root, []string{"MI_Wall"}, graph, nil)
	require.NoError(t, err)
	require.Equal(t, 0, rep.Applied)
	require.Equal(t, 1, rep.Skipped)
}

func TestApplyMissingInput(t *testing.T) {
	root := seedRoot(t, wallDescriptor, "t_wall_d.png")
	graph := NewMemoryGraph()
	graph.LimitInputs("Normal", "Alpha")

	rep, err := Apply(root, []string{"MI_Wall"}, graph, nil)
	require.NoError(t, err)
	require.Equal(t, 1, rep.Skipped)
	require.Equal(t, 0, rep.Applied)
}

func TestApplyNormalSlot(t *testing.T) {
	root := seedRoot(t, `{"Textures": {"PM_Normals": "/Game/T_Wall_N.T_Wall_N"}}`, "t_wall_n.png")
	graph := NewMemoryGraph()
	slots := []Slot{{
		Name:       "normal",
		Input:      "Normal",
		ColorSpace: ColorSpaceNonColor,
		Keys:       []string{"PM_Normals"},
	}}

	rep, err := Apply(root, []string{"Wall"}, graph, &ApplyOptions{Slots: slots})
	require.NoError(t, err)
	require.Equal(t, 1, rep.Applied)

	links := graph.Links()
	require.Len(t, links, 1)
	require.True(t, links[0].Link.NormalMap)
	require.Empty(t, links[0].Link.AlphaInput)
	require.Equal(t, ColorSpaceNonColor, links[0].Link.ColorSpace)
}

func TestApplyAlphaSlotCountsTwice(t *testing.T) {
	root := seedRoot(t, `{"Textures": {"PM_Alpha": "/Game/T_Wall_A.T_Wall_A"}}`, "t_wall_a.png")
	graph := NewMemoryGraph()
	slots := []Slot{{
		Name:       "alpha",
		Input:      "Alpha",
		ColorSpace: ColorSpaceNonColor,
		UseAlpha:   true,
		Keys:       []string{"PM_Alpha"},
	}}

	rep, err := Apply(root, []string{"Wall"}, graph, &ApplyOptions{Slots: slots})
	require.NoError(t, err)

	// The secondary alpha wire counts as its own applied texture.
	require.Equal(t, 2, rep.Applied)
	links := graph.Links()
	require.Len(t, links, 1)
	require.Equal(t, "Alpha", links[0].Link.AlphaInput)
}

func TestApplyActiveKeyOnly(t *testing.T) {
	// The descriptor carries "Diffuse" but the active key is "PM_Diffuse";
	// other candidates in the list are not consulted.
	root := seedRoot(t, `{"Textures": {"Diffuse": "/Game/T_Wall_D.T_Wall_D"}}`, "t_wall_d.png")
	graph := NewMemoryGraph()

	rep, err := Apply(root, []string{"Wall"}, graph, nil)
	require.NoError(t, err)
	require.Equal(t, 0, rep.Applied)

	// Selecting the matching candidate makes it resolve.
	slots := DefaultSlots()
	slots[0].Active = 1 // "Diffuse"
	rep, err = Apply(root, []string{"Wall"}, NewMemoryGraph(), &ApplyOptions{Slots: slots})
	require.NoError(t, err)
	require.Equal(t, 1, rep.Applied)
}

func TestApplyDirProbeStrategy(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "mats", "Wall.json"), wallDescriptor)
	writeFile(t, filepath.Join(root, "mats", "t_wall_d.png"), "img")

	graph := NewMemoryGraph()
	rep, err := Apply(root, []string{"MI_Wall"}, graph, &ApplyOptions{Lookup: DirProbe{}})
	require.NoError(t, err)
	require.Equal(t, 1, rep.Applied)
	require.Equal(t, filepath.Join(root, "mats", "t_wall_d.png"), graph.Links()[0].Link.Path)
}

func TestApplyUnmatchedMaterialIsNotAnError(t *testing.T) {
	root := seedRoot(t, wallDescriptor, "t_wall_d.png")

	rep, err := Apply(root, []string{"MI_Wall", "Unknown"}, NewMemoryGraph(), nil)
	require.NoError(t, err)
	require.Equal(t, 1, rep.Matched)

	var codes []string
	for _, issue := range rep.Issues {
		codes = append(codes, issue.Code)
	}
	require.Contains(t, codes, "no_descriptor")
}

func TestApplyConfigurationErrors(t *testing.T) {
	root := seedRoot(t, wallDescriptor, "t_wall_d.png")
	graph := NewMemoryGraph()

	_, err := Apply("", []string{"MI_Wall"}, graph, nil)
	require.ErrorIs(t, err, ErrRootNotFound)

	_, err = Apply(filepath.Join(root, "nope"), []string{"MI_Wall"}, graph, nil)
	require.ErrorIs(t, err, ErrRootNotFound)

	_, err = Apply(root, nil, graph, nil)
	require.ErrorIs(t, err, ErrNoMaterials)

	empty := t.TempDir()
	writeFile(t, filepath.Join(empty, "tex.png"), "img")
	_, err = Apply(empty, []string{"MI_Wall"}, graph, nil)
	require.ErrorIs(t, err, ErrNoDescriptors)
}

func TestReportSummary(t *testing.T) {
	cases := []struct {
		rep  Report
		want string
	}{
		{Report{}, "no materials matched any descriptor files"},
		{Report{Matched: 2, Applied: 3}, "matched 2 material(s), applied 3 texture(s)"},
		{Report{Matched: 2, Applied: 3, Skipped: 1}, "matched 2 material(s), applied 3 texture(s), skipped 1 existing texture(s)"},
		{Report{Matched: 1, Skipped: 2}, "matched 1 material(s), all textures already present"},
		{Report{Matched: 1}, "matched 1 material(s), but no textures were found or applied"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, c.rep.Summary())
	}
}
