package tag

// Color is one of the fixed tag palette entries.
type Color string

const (
	ColorViolet  Color = "violet"
	ColorBlue    Color = "blue"
	ColorCyan    Color = "cyan"
	ColorEmerald Color = "emerald"
	ColorAmber   Color = "amber"
	ColorRose    Color = "rose"
	ColorPink    Color = "pink"
	ColorOrange  Color = "orange"
)

// Palette lists the colors in assignment order.
var Palette = []Color{
	ColorViolet,
	ColorBlue,
	ColorCyan,
	ColorEmerald,
	ColorAmber,
	ColorRose,
	ColorPink,
	ColorOrange,
}

// Valid reports whether c is a palette color.
func (c Color) Valid() bool {
	for _, p := range Palette {
		if c == p {
			return true
		}
	}
	return false
}

// Tag is a named, colored label attachable to any item
type Tag struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Color Color  `json:"color" yaml:"color"`
}
