package weather

// CurrentRequest captures the payload accepted by the current weather endpoint.
type CurrentRequest struct {
	Lat      *float64 `json:"lat"`
	Lon      *float64 `json:"lon"`
	CityName string   `json:"city_name"`
}

// CurrentResponse is serialized back to API consumers.
type CurrentResponse struct {
	Temperature int     `json:"temperature"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	CityName    string  `json:"city_name"`
}

// ForecastRequest captures the payload accepted by the forecast endpoint.
type ForecastRequest struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// ForecastResponse wraps the ordered forecast entries.
type ForecastResponse struct {
	Forecast []ForecastItem `json:"forecast"`
}

// ForecastItem is one forecast step as exposed to the frontend.
type ForecastItem struct {
	Time        string `json:"time"`
	Temperature int    `json:"temperature"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Conditions is a provider snapshot of the current weather.
type Conditions struct {
	Temperature float64
	Humidity    int
	WindSpeed   float64
	Description string
	Icon        string
}

// ForecastPoint is a provider forecast step.
type ForecastPoint struct {
	Time        string
	Temperature float64
	Description string
	Icon        string
}

// Config wires runtime dependencies for the weather domain.
type Config struct {
	APIKey        string
	ForecastCount int
}
