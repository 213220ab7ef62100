package clack

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// ColorScheme defines the colors the default theme paints prompts with.
type ColorScheme struct {
	Name     string `json:"name" yaml:"name"`
	Active   Color  `json:"active" yaml:"active"`     // Marker and bar of a prompt waiting for input
	Submit   Color  `json:"submit" yaml:"submit"`     // Marker of a submitted prompt
	Cancel   Color  `json:"cancel" yaml:"cancel"`     // Marker and footer of a cancelled prompt
	Error    Color  `json:"error" yaml:"error"`       // Marker, bar and message of an error frame
	Selected Color  `json:"selected" yaml:"selected"` // Active radio button and checked boxes
	Hint     Color  `json:"hint" yaml:"hint"`         // Hints, placeholders and inactive items
	Input    Color  `json:"input" yaml:"input"`       // Typed text
}

// Color represents an RGB color with optional formatting.
type Color struct {
	R    uint8 `json:"r" yaml:"r"`
	G    uint8 `json:"g" yaml:"g"`
	B    uint8 `json:"b" yaml:"b"`
	Bold bool  `json:"bold" yaml:"bold"`
}

// ThemeDefault is the default color scheme with a cyan marker and green results
var ThemeDefault = &ColorScheme{
	Name:     "default",
	Active:   Color{R: 0, G: 255, B: 255, Bold: true},
	Submit:   Color{R: 0, G: 255, B: 0, Bold: false},
	Cancel:   Color{R: 255, G: 0, B: 0, Bold: false},
	Error:    Color{R: 255, G: 255, B: 0, Bold: false},
	Selected: Color{R: 0, G: 255, B: 0, Bold: false},
	Hint:     Color{R: 128, G: 128, B: 128, Bold: false},
	Input:    Color{R: 255, G: 255, B: 255, Bold: false},
}

// ThemeDark is a dark theme with light blue markers and off-white text
var ThemeDark = &ColorScheme{
	Name:     "Dark",
	Active:   Color{R: 102, G: 217, B: 239, Bold: true},
	Submit:   Color{R: 80, G: 250, B: 123, Bold: false},
	Cancel:   Color{R: 255, G: 85, B: 85, Bold: false},
	Error:    Color{R: 255, G: 184, B: 108, Bold: false},
	Selected: Color{R: 80, G: 250, B: 123, Bold: true},
	Hint:     Color{R: 98, G: 114, B: 164, Bold: false},
	Input:    Color{R: 248, G: 248, B: 242, Bold: false},
}

// ThemeSolarizedDark is the Solarized Dark color scheme
var ThemeSolarizedDark = &ColorScheme{
	Name:     "Solarized Dark",
	Active:   Color{R: 42, G: 161, B: 152, Bold: true},
	Submit:   Color{R: 133, G: 153, B: 0, Bold: false},
	Cancel:   Color{R: 220, G: 50, B: 47, Bold: false},
	Error:    Color{R: 181, G: 137, B: 0, Bold: false},
	Selected: Color{R: 38, G: 139, B: 210, Bold: true},
	Hint:     Color{R: 88, G: 110, B: 117, Bold: false},
	Input:    Color{R: 147, G: 161, B: 161, Bold: false},
}

// ThemeAccessible is a colorblind-safe theme with high contrast
var ThemeAccessible = &ColorScheme{
	Name:     "Accessible",
	Active:   Color{R: 0, G: 114, B: 178, Bold: true},
	Submit:   Color{R: 0, G: 158, B: 115, Bold: false},
	Cancel:   Color{R: 213, G: 94, B: 0, Bold: true},
	Error:    Color{R: 240, G: 228, B: 66, Bold: true},
	Selected: Color{R: 230, G: 159, B: 0, Bold: true},
	Hint:     Color{R: 204, G: 204, B: 204, Bold: false},
	Input:    Color{R: 255, G: 255, B: 255, Bold: false},
}

// ThemeDracula is the Dracula color scheme
var ThemeDracula = &ColorScheme{
	Name:     "Dracula",
	Active:   Color{R: 255, G: 121, B: 198, Bold: true},
	Submit:   Color{R: 80, G: 250, B: 123, Bold: false},
	Cancel:   Color{R: 255, G: 85, B: 85, Bold: false},
	Error:    Color{R: 241, G: 250, B: 140, Bold: false},
	Selected: Color{R: 139, G: 233, B: 253, Bold: true},
	Hint:     Color{R: 98, G: 114, B: 164, Bold: false},
	Input:    Color{R: 248, G: 248, B: 242, Bold: false},
}

// ThemeMonokai is the Monokai color scheme
var ThemeMonokai = &ColorScheme{
	Name:     "Monokai",
	Active:   Color{R: 249, G: 38, B: 114, Bold: true},
	Submit:   Color{R: 166, G: 226, B: 46, Bold: false},
	Cancel:   Color{R: 249, G: 38, B: 114, Bold: false},
	Error:    Color{R: 253, G: 151, B: 31, Bold: false},
	Selected: Color{R: 102, G: 217, B: 239, Bold: true},
	Hint:     Color{R: 117, G: 113, B: 94, Bold: false},
	Input:    Color{R: 248, G: 248, B: 242, Bold: false},
}

// Hex returns the color in #rrggbb notation.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ToANSI converts a Color to an ANSI escape sequence supported by profile.
// Colors are degraded to the 256 or 16 color palettes when needed, and the
// Ascii profile yields an empty string.
func (c Color) ToANSI(profile termenv.Profile) string {
	codes := c.codes(profile)
	if len(codes) == 0 {
		return ""
	}
	return termenv.CSI + strings.Join(codes, ";") + "m"
}

// codes returns the SGR parameters of the color, bold first.
func (c Color) codes(profile termenv.Profile) []string {
	if profile == termenv.Ascii {
		return nil
	}

	var codes []string
	if c.Bold {
		codes = append(codes, termenv.BoldSeq)
	}
	if seq := profile.Convert(termenv.RGBColor(c.Hex())).Sequence(false); seq != "" {
		codes = append(codes, seq)
	}
	return codes
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return termenv.CSI + termenv.ResetSeq + "m"
}

// ParseColorScheme decodes a YAML color scheme. Colors missing from data are
// taken from ThemeDefault.
//
// Example document:
//
//	name: ocean
//	active: {r: 0, g: 128, b: 255, bold: true}
//	error: {r: 255, g: 160, b: 0}
func ParseColorScheme(data []byte) (*ColorScheme, error) {
	scheme := *ThemeDefault
	scheme.Name = ""
	if err := yaml.Unmarshal(data, &scheme); err != nil {
		return nil, fmt.Errorf("failed to parse color scheme: %w", err)
	}
	return &scheme, nil
}

// LoadColorScheme reads a YAML color scheme from path.
func LoadColorScheme(path string) (*ColorScheme, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the caller
	if err != nil {
		return nil, fmt.Errorf("failed to read color scheme: %w", err)
	}
	return ParseColorScheme(data)
}
