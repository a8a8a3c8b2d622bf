// Package library holds the static soundscape and weather overlay tables
package library

import (
	"fmt"
	"strings"
)

// Location is a room or area the listener can be in
type Location int

const (
	Bedroom Location = iota
	Kitchen
	Garden
	Living
	Bathroom
	Garage
	Shop
	Supermarket
	Attic
	Basement
	Terrace
	locationCount
)

var locationNames = [locationCount]string{
	"bedroom", "kitchen", "garden", "living", "bathroom", "garage",
	"shop", "supermarket", "attic", "basement", "terrace",
}

func (l Location) String() string {
	if l < 0 || l >= locationCount {
		return fmt.Sprintf("location(%d)", int(l))
	}
	return locationNames[l]
}

// Locations returns every location in declaration order
func Locations() []Location {
	out := make([]Location, locationCount)
	for i := range out {
		out[i] = Location(i)
	}
	return out
}

// ParseLocation resolves a case-insensitive location name
func ParseLocation(s string) (Location, error) {
	for i, name := range locationNames {
		if strings.EqualFold(s, name) {
			return Location(i), nil
		}
	}
	return 0, fmt.Errorf("unknown location %q", s)
}

// TimeOfDay selects time-dependent accent tables
type TimeOfDay int

const (
	Morning TimeOfDay = iota
	Afternoon
	Evening
	Night
	timeOfDayCount
)

var timeOfDayNames = [timeOfDayCount]string{"morning", "afternoon", "evening", "night"}

func (t TimeOfDay) String() string {
	if t < 0 || t >= timeOfDayCount {
		return fmt.Sprintf("time(%d)", int(t))
	}
	return timeOfDayNames[t]
}

// TimesOfDay returns every time of day in order
func TimesOfDay() []TimeOfDay {
	return []TimeOfDay{Morning, Afternoon, Evening, Night}
}

// ParseTimeOfDay resolves a case-insensitive time-of-day name
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for i, name := range timeOfDayNames {
		if strings.EqualFold(s, name) {
			return TimeOfDay(i), nil
		}
	}
	return 0, fmt.Errorf("unknown time of day %q", s)
}

// TimeOfDayAt buckets an hour (0-23) into a time of day
func TimeOfDayAt(hour int) TimeOfDay {
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 21:
		return Evening
	default:
		return Night
	}
}

// Weather is the current weather condition
type Weather int

const (
	Clear Weather = iota
	Cloudy
	Rain
	Storm
	Snow
	Hot
	Windy
	weatherCount
)

var weatherNames = [weatherCount]string{"clear", "cloudy", "rain", "storm", "snow", "hot", "windy"}

func (w Weather) String() string {
	if w < 0 || w >= weatherCount {
		return fmt.Sprintf("weather(%d)", int(w))
	}
	return weatherNames[w]
}

// Weathers returns every weather condition in order
func Weathers() []Weather {
	out := make([]Weather, weatherCount)
	for i := range out {
		out[i] = Weather(i)
	}
	return out
}

// ParseWeather resolves a case-insensitive weather name
func ParseWeather(s string) (Weather, error) {
	for i, name := range weatherNames {
		if strings.EqualFold(s, name) {
			return Weather(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weather %q", s)
}

// Classification is how exposed a location is to the weather
type Classification int

const (
	Indoor Classification = iota
	SemiOutdoor
	Outdoor
)

func (c Classification) String() string {
	switch c {
	case Indoor:
		return "indoor"
	case SemiOutdoor:
		return "semi-outdoor"
	case Outdoor:
		return "outdoor"
	default:
		return fmt.Sprintf("classification(%d)", int(c))
	}
}
