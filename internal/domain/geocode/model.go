package geocode

// Request captures the payload accepted by the geocode endpoint.
type Request struct {
	Location string `json:"location"`
}

// Response is the resolved coordinate pair.
type Response struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Place is a normalized geocoding match.
type Place struct {
	Lat         float64
	Lon         float64
	DisplayName string
}

// Config wires runtime dependencies for the geocode domain.
type Config struct {
	CountrySuffix string
}
