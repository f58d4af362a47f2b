// Package material classifies calendar counts into column heights and
// per-layer block materials.
//
// Near the surface the rules are structural: the top layer is sand for a
// quiet day and grass otherwise, the layer beneath is always dirt, and a
// tall column may carry a second dirt layer. Everything deeper is resolved
// by the ore sampler, a weighted draw over [OreTable] that favours rare ores
// deep in the columns of busy days.
//
// All randomness comes from the *rand.Rand passed in by the caller, so a
// seeded generator reproduces a scene exactly.
package material

// Material is a block type.
type Material int

const (
	Water Material = iota
	Sand
	Grass
	Dirt
	Stone
	Coal
	Copper
	Iron
	Lapis
	Redstone
	Gold
	Emerald
	Diamond
)

// Aliases used by the classification rules.
const (
	SoftSurface    = Sand  // top of a column for a day with at most one contribution
	CoveredSurface = Grass // top of a column for a busier day
	Soil           = Dirt  // sub-surface layer
	Deep           = Stone // fallback for deep layers no ore claimed
)

// Info describes how a material is drawn.
type Info struct {
	Name      string
	TopFile   string // texture file for the top face
	SideFile  string // texture file for the side faces
	TopColor  string // flat color for raster output
	SideColor string
	TopTint   string // SVG filter id applied to the top texture, if any
	SideTint  string // SVG filter id applied to the side texture, if any
	Liquid    bool
}

var infos = [...]Info{
	Water:    {Name: "water", TopFile: "water_still.png", SideFile: "water_still.png", TopColor: "#3f76e4", SideColor: "#3463c4", TopTint: "tint-water", SideTint: "tint-water", Liquid: true},
	Sand:     {Name: "sand", TopFile: "sand.png", SideFile: "sand.png", TopColor: "#dbcfa3", SideColor: "#c9bb8a"},
	Grass:    {Name: "grass", TopFile: "grass_block_top.png", SideFile: "grass_block_side.png", TopColor: "#5d9b3a", SideColor: "#7a5a3a", TopTint: "tint-grass"},
	Dirt:     {Name: "dirt", TopFile: "dirt.png", SideFile: "dirt.png", TopColor: "#866043", SideColor: "#79553a"},
	Stone:    {Name: "stone", TopFile: "stone.png", SideFile: "stone.png", TopColor: "#7d7d7d", SideColor: "#707070"},
	Coal:     {Name: "coal", TopFile: "coal_ore.png", SideFile: "coal_ore.png", TopColor: "#4a4a4a", SideColor: "#404040"},
	Copper:   {Name: "copper", TopFile: "copper_ore.png", SideFile: "copper_ore.png", TopColor: "#b8704f", SideColor: "#a66245"},
	Iron:     {Name: "iron", TopFile: "iron_ore.png", SideFile: "iron_ore.png", TopColor: "#c9a58b", SideColor: "#b8957c"},
	Lapis:    {Name: "lapis", TopFile: "lapis_ore.png", SideFile: "lapis_ore.png", TopColor: "#3458b8", SideColor: "#2c4c9f"},
	Redstone: {Name: "redstone", TopFile: "redstone_ore.png", SideFile: "redstone_ore.png", TopColor: "#b3261e", SideColor: "#9c1f19"},
	Gold:     {Name: "gold", TopFile: "gold_ore.png", SideFile: "gold_ore.png", TopColor: "#e6c84a", SideColor: "#cfb23f"},
	Emerald:  {Name: "emerald", TopFile: "emerald_ore.png", SideFile: "emerald_ore.png", TopColor: "#2fbf63", SideColor: "#27a655"},
	Diamond:  {Name: "diamond", TopFile: "diamond_ore.png", SideFile: "diamond_ore.png", TopColor: "#5fd9df", SideColor: "#4fc2c8"},
}

// All lists every material in declaration order.
func All() []Material {
	out := make([]Material, len(infos))
	for i := range infos {
		out[i] = Material(i)
	}
	return out
}

// Info returns the drawing information for m.
func (m Material) Info() Info {
	if m < 0 || int(m) >= len(infos) {
		return infos[Stone]
	}
	return infos[m]
}

// String returns the material name used in ids and JSON.
func (m Material) String() string { return m.Info().Name }

// Parse returns the material with the given name.
func Parse(name string) (Material, bool) {
	for i, info := range infos {
		if info.Name == name {
			return Material(i), true
		}
	}
	return 0, false
}

// IsOre reports whether m comes from the ore table.
func (m Material) IsOre() bool {
	return m >= Coal && m <= Diamond
}
