package render

import (
	"math"
	"strconv"

	"widget/manager"
	"widget/wmo"
)

const (
	GlyphFahrenheit = "wi-fahrenheit"
	GlyphCelsius    = "wi-celsius"
	GlyphHumidity   = "wi-humidity"
	GlyphWind       = "wi-strong-wind"
)

type message struct {
	Headline string
	Detail   string
}

var errorMessages = map[manager.ErrorState]message{
	manager.StateUnsupported:         {"Geolocation not supported", "Your device does not support geolocation."},
	manager.StateLocationUnavailable: {"Location unavailable", "Please enable location services."},
	manager.StateFetchFailed:         {"Error loading weather", "Please try again later."},
}

// Temperature holds the Fahrenheit source of the toggles.
// Both units are derived from it at display time.
type Temperature struct {
	Fahrenheit float64
}

func (t Temperature) RoundedFahrenheit() int {
	return round(t.Fahrenheit)
}

func (t Temperature) RoundedCelsius() int {
	return round((t.Fahrenheit - 32) * 5 / 9)
}

// ShowFahrenheit writes the temperature in Fahrenheit to region.
func ShowFahrenheit(region *Region, t *Temperature) {
	region.Set(strconv.Itoa(t.RoundedFahrenheit()), GlyphFahrenheit)
}

// ShowCelsius writes the temperature in Celsius to region.
func ShowCelsius(region *Region, t *Temperature) {
	region.Set(strconv.Itoa(t.RoundedCelsius()), GlyphCelsius)
}

// Renderer writes load outcomes into a Page.
type Renderer struct {
	page        *Page
	temperature *Temperature
}

func New(page *Page) *Renderer {
	return &Renderer{page: page}
}

func (r *Renderer) Page() *Page {
	return r.page
}

// Temperature returns the toggle state of the last successful render, or nil.
func (r *Renderer) Temperature() *Temperature {
	return r.temperature
}

func (r *Renderer) Show(report manager.Report) {
	p := r.page
	current := report.Current

	p.Region(RegionLocation).SetText(report.Place)
	p.Region(RegionIcon).Set("", wmo.Icon(current.Code))
	p.Region(RegionHumidity).Set(strconv.Itoa(current.HumidityPct), GlyphHumidity)
	p.Region(RegionWind).Set(strconv.Itoa(round(current.WindSpeedMph)), GlyphWind)
	p.Region(RegionDetails).SetText(report.Summary)

	t := &Temperature{Fahrenheit: current.TemperatureF}
	r.temperature = t
	temp := p.Region(RegionTemp)
	ShowFahrenheit(temp, t)

	toF := p.Region(RegionFahrenheit)
	toF.Set("", GlyphFahrenheit)
	toF.OnClick(func() { ShowFahrenheit(temp, t) })

	toC := p.Region(RegionCelsius)
	toC.Set("", GlyphCelsius)
	toC.OnClick(func() { ShowCelsius(temp, t) })

	// Open-Meteo has no alert feed.
	p.Region(RegionAlert).Hide()
}

func (r *Renderer) ShowError(state manager.ErrorState) {
	m, ok := errorMessages[state]
	if !ok {
		m = errorMessages[manager.StateFetchFailed]
	}
	r.page.Region(RegionLocation).SetText(m.Headline)
	r.page.Region(RegionDetails).SetText(m.Detail)
	r.page.Region(RegionAlert).Hide()
}

// round rounds half up, so -2.5 becomes -2.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
