package poi

// Request captures the payload accepted by the POI endpoint.
type Request struct {
	Lat    *float64 `json:"lat"`
	Lon    *float64 `json:"lon"`
	Radius int      `json:"radius"`
}

// Response wraps the normalized points of interest.
type Response struct {
	POIs []POI `json:"pois"`
}

// POI is a normalized point of interest.
type POI struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Type      string            `json:"type"`
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Address   string            `json:"address"`
	Tags      map[string]string `json:"tags"`
}

// Query describes a spatial search around a point.
type Query struct {
	Lat    float64
	Lon    float64
	Radius int
	Limit  int
}

// Element is a raw tagged map node as returned by the spatial provider.
type Element struct {
	ID   int64
	Lat  float64
	Lon  float64
	Tags map[string]string
}

// Config wires runtime dependencies for the POI domain.
type Config struct {
	DefaultRadius int
	Limit         int
}
