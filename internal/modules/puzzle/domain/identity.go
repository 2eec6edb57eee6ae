package domain

// Identity is the sole matching key between endpoints. Two endpoints match
// iff their Identity values are equal.
type Identity struct {
	Color  string
	Symbol string
	Name   string
	// DarkGlyph marks bright colors whose symbol reads better in black.
	DarkGlyph bool
}

func (i Identity) String() string {
	return i.Name + " " + i.Symbol
}

var catalog = [...]Identity{
	{Color: "#ff0000", Symbol: "■", Name: "red"},
	{Color: "#1111ff", Symbol: "▲", Name: "blue"},
	{Color: "#ffe100", Symbol: "★", Name: "yellow", DarkGlyph: true},
	{Color: "#ff00ff", Symbol: "●", Name: "magenta"},
	{Color: "#00ff00", Symbol: "♦", Name: "green", DarkGlyph: true},
	{Color: "#ff6600", Symbol: "✚", Name: "orange"},
	{Color: "#00ffff", Symbol: "▼", Name: "cyan", DarkGlyph: true},
	{Color: "#ffffff", Symbol: "♠", Name: "white", DarkGlyph: true},
}

// CatalogSize is the ceiling on endpoint pairs per level.
const CatalogSize = len(catalog)

// Catalog returns the fixed identity palette in catalog order.
func Catalog() []Identity {
	out := make([]Identity, CatalogSize)
	copy(out, catalog[:])
	return out
}

// IdentityByName looks up a catalog entry by its human name.
func IdentityByName(name string) (Identity, bool) {
	for _, id := range catalog {
		if id.Name == name {
			return id, true
		}
	}
	return Identity{}, false
}
