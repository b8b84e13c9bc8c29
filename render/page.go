package render

import (
	"fmt"
	"html/template"
	"io"
	"strings"
)

// Region names match the class names of the widget markup.
const (
	RegionLocation   = "location"
	RegionIcon       = "icon"
	RegionTemp       = "temp"
	RegionHumidity   = "humidity"
	RegionDetails    = "details"
	RegionAlert      = "alert-title"
	RegionWind       = "wind"
	RegionFahrenheit = "fahrenheit"
	RegionCelsius    = "celsius"
)

var regionOrder = []string{
	RegionLocation,
	RegionIcon,
	RegionTemp,
	RegionHumidity,
	RegionDetails,
	RegionAlert,
	RegionWind,
	RegionFahrenheit,
	RegionCelsius,
}

// Region is one display slot. Glyph is a weather-icons class drawn after Text.
type Region struct {
	Name    string
	Text    string
	Glyph   string
	Hidden  bool
	onClick func()
}

func (r *Region) Set(text, glyph string) {
	r.Text = text
	r.Glyph = glyph
}

func (r *Region) SetText(text string) {
	r.Set(text, "")
}

func (r *Region) Hide() {
	r.Hidden = true
}

func (r *Region) OnClick(fn func()) {
	r.onClick = fn
}

// Click fires the attached handler, if any.
func (r *Region) Click() {
	if r.onClick != nil {
		r.onClick()
	}
}

// Page is the presentation surface: a fixed set of named regions.
type Page struct {
	regions map[string]*Region
}

func NewPage() *Page {
	p := &Page{regions: make(map[string]*Region, len(regionOrder))}
	for _, name := range regionOrder {
		p.regions[name] = &Region{Name: name}
	}
	return p
}

// Region panics on names outside the fixed set.
func (p *Page) Region(name string) *Region {
	r, ok := p.regions[name]
	if !ok {
		panic(fmt.Sprintf("render: unknown region %q", name))
	}
	return r
}

func (p *Page) visible() []*Region {
	out := make([]*Region, 0, len(regionOrder))
	for _, name := range regionOrder {
		if r := p.regions[name]; !r.Hidden {
			out = append(out, r)
		}
	}
	return out
}

var pageTemplate = template.Must(template.New("widget").Parse(`<div class="weather">
{{- range .}}
  <div class="{{.Name}}">{{.Text}}{{if .Glyph}}{{if .Text}} {{end}}<i class="wi {{.Glyph}}"></i>{{end}}</div>
{{- end}}
</div>
`))

// WriteHTML writes the visible regions using weather-icons markup.
func (p *Page) WriteHTML(w io.Writer) error {
	return pageTemplate.Execute(w, p.visible())
}

var glyphText = map[string]string{
	"wi-fahrenheit":   "°F",
	"wi-celsius":      "°C",
	"wi-humidity":     "%",
	"wi-strong-wind":  "mph",
	"wi-day-sunny":    "☀",
	"wi-day-cloudy":   "⛅",
	"wi-cloudy":       "☁",
	"wi-fog":          "🌫",
	"wi-sprinkle":     "🌦",
	"wi-sleet":        "🌨",
	"wi-rain":         "🌧",
	"wi-snow":         "❄",
	"wi-showers":      "🌦",
	"wi-thunderstorm": "⛈",
	"wi-na":           "?",
}

// WriteText writes a terminal view of the visible regions that carry content.
// Toggle controls are not printed.
func (p *Page) WriteText(w io.Writer) error {
	for _, r := range p.visible() {
		if r.Name == RegionFahrenheit || r.Name == RegionCelsius {
			continue
		}
		line := textOf(r)
		if line == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%-9s %s\n", strings.ToUpper(r.Name), line); err != nil {
			return err
		}
	}
	return nil
}

func textOf(r *Region) string {
	if r.Glyph == "" {
		return r.Text
	}
	glyph, ok := glyphText[r.Glyph]
	if !ok {
		glyph = r.Glyph
	}
	if r.Text == "" {
		return glyph
	}
	return r.Text + " " + glyph
}
