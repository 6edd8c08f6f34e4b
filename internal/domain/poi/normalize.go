package poi

import (
	"strconv"
	"strings"
)

const (
	placeholderName    = "Không có tên"
	placeholderType    = "place"
	placeholderAddress = "Địa chỉ không có sẵn"
)

var (
	nameKeys    = []string{"name:vi", "name"}
	typeKeys    = []string{"tourism", "historic", "amenity"}
	addressKeys = []string{"addr:street", "addr:city", "addr:district"}
)

func toPOI(el Element) POI {
	tags := el.Tags
	if tags == nil {
		tags = map[string]string{}
	}
	return POI{
		ID:        strconv.FormatInt(el.ID, 10),
		Name:      firstTag(tags, nameKeys, placeholderName),
		Type:      firstTag(tags, typeKeys, placeholderType),
		Latitude:  el.Lat,
		Longitude: el.Lon,
		Address:   formatAddress(tags),
		Tags:      tags,
	}
}

func firstTag(tags map[string]string, keys []string, fallback string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(tags[key]); v != "" {
			return v
		}
	}
	return fallback
}

func formatAddress(tags map[string]string) string {
	parts := make([]string, 0, len(addressKeys))
	for _, key := range addressKeys {
		if v := strings.TrimSpace(tags[key]); v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return placeholderAddress
	}
	return strings.Join(parts, ", ")
}
