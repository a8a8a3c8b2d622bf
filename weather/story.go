// Package weather picks the weather when no live source is available
package weather

import (
	"hash/fnv"
	"time"

	"github.com/lixenwraith/soundscape/library"
)

type weight struct {
	w library.Weather
	n int
}

// seasons maps each month to its weather distribution
var seasons = map[time.Month][]weight{}

func init() {
	winter := []weight{{library.Clear, 3}, {library.Cloudy, 4}, {library.Snow, 4}, {library.Windy, 2}, {library.Rain, 1}}
	spring := []weight{{library.Clear, 4}, {library.Cloudy, 3}, {library.Rain, 4}, {library.Windy, 2}, {library.Storm, 1}}
	summer := []weight{{library.Clear, 5}, {library.Hot, 4}, {library.Storm, 2}, {library.Cloudy, 1}, {library.Rain, 1}}
	autumn := []weight{{library.Clear, 3}, {library.Cloudy, 4}, {library.Rain, 4}, {library.Windy, 3}, {library.Storm, 1}}

	for _, m := range []time.Month{time.December, time.January, time.February} {
		seasons[m] = winter
	}
	for _, m := range []time.Month{time.March, time.April, time.May} {
		seasons[m] = spring
	}
	for _, m := range []time.Month{time.June, time.July, time.August} {
		seasons[m] = summer
	}
	for _, m := range []time.Month{time.September, time.October, time.November} {
		seasons[m] = autumn
	}
}

// StoryWeather returns a stable weather for the calendar day of day, weighted by season
// Every call within the same local date returns the same value
func StoryWeather(day time.Time) library.Weather {
	table := seasons[day.Month()]
	total := 0
	for _, e := range table {
		total += e.n
	}

	h := fnv.New32a()
	h.Write([]byte(day.Format(time.DateOnly)))
	pick := int(h.Sum32() % uint32(total))

	for _, e := range table {
		if pick < e.n {
			return e.w
		}
		pick -= e.n
	}
	return library.Clear
}

// Forecast returns StoryWeather for n consecutive days starting at from
func Forecast(from time.Time, n int) []library.Weather {
	out := make([]library.Weather, n)
	for i := range out {
		out[i] = StoryWeather(from.AddDate(0, 0, i))
	}
	return out
}
