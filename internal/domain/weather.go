package domain

import "time"

// WeatherEffect is the display-only weather shown over the farm
type WeatherEffect string

const (
	WeatherSunny  WeatherEffect = "sunny"
	WeatherCloudy WeatherEffect = "cloudy"
	WeatherWindy  WeatherEffect = "windy"
)

// WeatherEffects is the set the cycle picks from
var WeatherEffects = []WeatherEffect{WeatherSunny, WeatherCloudy, WeatherWindy}

// WeatherState is the current cosmetic weather
type WeatherState struct {
	Effect    WeatherEffect `json:"effect"`
	Label     string        `json:"label"`
	ChangedAt time.Time     `json:"changed_at"`
}
