package poi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToPOIPrefersLocalizedName(t *testing.T) {
	got := toPOI(Element{
		ID:  42,
		Lat: 21.0287,
		Lon: 105.8524,
		Tags: map[string]string{
			"name":          "Temple of Literature",
			"name:vi":       "Văn Miếu",
			"historic":      "monument",
			"amenity":       "place_of_worship",
			"addr:street":   "58 Quốc Tử Giám",
			"addr:district": "Đống Đa",
		},
	})

	require.Equal(t, "42", got.ID)
	require.Equal(t, "Văn Miếu", got.Name)
	require.Equal(t, "monument", got.Type)
	require.Equal(t, "58 Quốc Tử Giám, Đống Đa", got.Address)
	require.Equal(t, 21.0287, got.Latitude)
	require.Len(t, got.Tags, 6)
}

func TestToPOIFallbacks(t *testing.T) {
	got := toPOI(Element{ID: 7})

	require.Equal(t, placeholderName, got.Name)
	require.Equal(t, placeholderType, got.Type)
	require.Equal(t, placeholderAddress, got.Address)
	require.NotNil(t, got.Tags)
}

func TestToPOIGenericNameAndAmenityType(t *testing.T) {
	got := toPOI(Element{ID: 8, Tags: map[string]string{
		"name":      "Nhà hát Lớn",
		"name:vi":   " ",
		"amenity":   "theatre",
		"addr:city": "Hà Nội",
	}})

	require.Equal(t, "Nhà hát Lớn", got.Name)
	require.Equal(t, "theatre", got.Type)
	require.Equal(t, "Hà Nội", got.Address)
}
