package domain

// ThemeTag identifies the visual theme an artist page is rendered with.
type ThemeTag string

const (
	ThemeDefault  ThemeTag = "default"
	ThemeStreet   ThemeTag = "street"
	ThemeClassic  ThemeTag = "classic"
	ThemePop      ThemeTag = "pop"
	ThemeMinimal  ThemeTag = "minimal"
	ThemeNeon     ThemeTag = "neon"
	ThemeAbstract ThemeTag = "abstract"
	ThemeRaw      ThemeTag = "raw"
	ThemeRealism  ThemeTag = "realism"
	ThemeMural    ThemeTag = "mural"
)

type Artist struct {
	ID        string
	Name      string
	Handle    string
	Instagram string
	Photo     string
	Theme     ThemeTag
	Bio       string
	Specialty string

	// CommissionRatePerM2USD is the price per square meter for a
	// custom commissioned painting by this artist.
	CommissionRatePerM2USD float64
}

// Theme describes the currently active storefront theme. It is owned by a
// single writer (the theme use case) and only read everywhere else.
type Theme struct {
	ArtistID string
	Tag      ThemeTag
}
