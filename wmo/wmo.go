package wmo

import "fmt"

// Code is a WMO synoptic weather code as reported by Open-Meteo.
type Code int

const (
	UnknownIcon        = "wi-na"
	UnknownDescription = "Unknown conditions"
)

type condition struct {
	Code        Code
	Icon        string
	Description string
}

// conditions is the whole WMO domain Open-Meteo reports.
var conditions = []condition{
	{0, "wi-day-sunny", "Clear sky"},
	{1, "wi-day-sunny", "Mainly clear"},
	{2, "wi-day-cloudy", "Partly cloudy"},
	{3, "wi-cloudy", "Overcast"},
	{45, "wi-fog", "Foggy"},
	{48, "wi-fog", "Depositing rime fog"},
	{51, "wi-sprinkle", "Light drizzle"},
	{53, "wi-sprinkle", "Moderate drizzle"},
	{55, "wi-sprinkle", "Dense drizzle"},
	{56, "wi-sleet", "Light freezing drizzle"},
	{57, "wi-sleet", "Dense freezing drizzle"},
	{61, "wi-rain", "Slight rain"},
	{63, "wi-rain", "Moderate rain"},
	{65, "wi-rain", "Heavy rain"},
	{66, "wi-sleet", "Light freezing rain"},
	{67, "wi-sleet", "Heavy freezing rain"},
	{71, "wi-snow", "Slight snow fall"},
	{73, "wi-snow", "Moderate snow fall"},
	{75, "wi-snow", "Heavy snow fall"},
	{77, "wi-snow", "Snow grains"},
	{80, "wi-showers", "Slight rain showers"},
	{81, "wi-showers", "Moderate rain showers"},
	{82, "wi-showers", "Violent rain showers"},
	{85, "wi-snow", "Slight snow showers"},
	{86, "wi-snow", "Heavy snow showers"},
	{95, "wi-thunderstorm", "Thunderstorm"},
	{96, "wi-thunderstorm", "Thunderstorm with slight hail"},
	{99, "wi-thunderstorm", "Thunderstorm with heavy hail"},
}

var byCode = mustIndex(conditions)

func mustIndex(table []condition) map[Code]condition {
	index, err := buildIndex(table)
	if err != nil {
		panic(err)
	}
	return index
}

// buildIndex rejects codes outside 0..99, duplicates and blank entries.
func buildIndex(table []condition) (map[Code]condition, error) {
	index := make(map[Code]condition, len(table))
	for _, c := range table {
		if c.Code < 0 || c.Code > 99 {
			return nil, fmt.Errorf("wmo: code %d outside synoptic range", c.Code)
		}
		if _, ok := index[c.Code]; ok {
			return nil, fmt.Errorf("wmo: duplicate code %d", c.Code)
		}
		if c.Icon == "" || c.Description == "" {
			return nil, fmt.Errorf("wmo: code %d has empty icon or description", c.Code)
		}
		index[c.Code] = c
	}
	return index, nil
}

// Icon returns the weather-icons class for code.
func Icon(code Code) string {
	if c, ok := byCode[code]; ok {
		return c.Icon
	}
	return UnknownIcon
}

// Description returns a human-readable description for code.
func Description(code Code) string {
	if c, ok := byCode[code]; ok {
		return c.Description
	}
	return UnknownDescription
}

// Known reports whether code belongs to the table.
func Known(code Code) bool {
	_, ok := byCode[code]
	return ok
}

// Codes lists the known codes in table order.
func Codes() []Code {
	codes := make([]Code, 0, len(conditions))
	for _, c := range conditions {
		codes = append(codes, c.Code)
	}
	return codes
}
