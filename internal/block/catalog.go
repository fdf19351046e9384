package block

// Layer is an index into the block texture array
type Layer uint16

const (
	LayerNone Layer = iota
	LayerGrassTop
	LayerGrassSide
	LayerDirt
	LayerLogTop
	LayerLogSide
	LayerLeaves
	LayerStone
	LayerSand
	LayerGlass
	LayerPlanks
	LayerBricks

	numLayers
)

// LayerCount is the number of texture-array layers referenced by the catalog
const LayerCount = int(numLayers)

// Faces holds the material layer per face group
type Faces struct {
	Top    Layer
	Side   Layer
	Bottom Layer
}

func uniform(l Layer) Faces {
	return Faces{Top: l, Side: l, Bottom: l}
}

type definition struct {
	name        string
	transparent bool
	faces       Faces
	color       [3]uint8
}

// catalog is indexed by Type. Adding a block type means adding a row here.
var catalog = [numTypes]definition{
	Air:    {name: "air", transparent: true, faces: uniform(LayerNone)},
	Grass:  {name: "grass", faces: Faces{Top: LayerGrassTop, Side: LayerGrassSide, Bottom: LayerDirt}, color: [3]uint8{95, 159, 53}},
	Log:    {name: "log", faces: Faces{Top: LayerLogTop, Side: LayerLogSide, Bottom: LayerLogTop}, color: [3]uint8{102, 81, 51}},
	Leaves: {name: "leaves", transparent: true, faces: uniform(LayerLeaves), color: [3]uint8{58, 110, 36}},
	Dirt:   {name: "dirt", faces: uniform(LayerDirt), color: [3]uint8{134, 96, 67}},
	Stone:  {name: "stone", faces: uniform(LayerStone), color: [3]uint8{125, 125, 125}},
	Sand:   {name: "sand", faces: uniform(LayerSand), color: [3]uint8{219, 207, 163}},
	Glass:  {name: "glass", transparent: true, faces: uniform(LayerGlass), color: [3]uint8{200, 230, 240}},
	Planks: {name: "planks", faces: uniform(LayerPlanks), color: [3]uint8{162, 130, 78}},
	Bricks: {name: "bricks", faces: uniform(LayerBricks), color: [3]uint8{150, 74, 60}},
}

var layerColors = [numLayers][3]uint8{
	LayerGrassTop:  {95, 159, 53},
	LayerGrassSide: {120, 110, 60},
	LayerDirt:      {134, 96, 67},
	LayerLogTop:    {160, 130, 80},
	LayerLogSide:   {102, 81, 51},
	LayerLeaves:    {58, 110, 36},
	LayerStone:     {125, 125, 125},
	LayerSand:      {219, 207, 163},
	LayerGlass:     {200, 230, 240},
	LayerPlanks:    {162, 130, 78},
	LayerBricks:    {150, 74, 60},
}

// LayerColor returns the flat color the viewer uses in place of a texture layer
func LayerColor(l Layer) [3]uint8 {
	if l >= numLayers {
		return [3]uint8{255, 0, 255}
	}
	return layerColors[l]
}
