package utils

// zipCodeData is a mock lookup table of zip codes to display locations.
// Real geocoding is an external concern; these cover the launch cities.
var zipCodeData = map[string]string{
	"10001": "New York, NY",
	"90210": "Beverly Hills, CA",
	"60606": "Chicago, IL",
	"77002": "Houston, TX",
	"85001": "Phoenix, AZ",
	"19102": "Philadelphia, PA",
	"78205": "San Antonio, TX",
	"92101": "San Diego, CA",
	"75201": "Dallas, TX",
	"95101": "San Jose, CA",
}

// ResolveLocation maps a 5-digit zip code to a human-readable place name.
// Unknown codes are a not-found result, never an error.
func ResolveLocation(zipCode string) (string, bool) {
	location, ok := zipCodeData[zipCode]
	return location, ok
}

// ResolveLocationOrNil returns a pointer suitable for JSON responses where
// an unknown zip code serializes as null.
func ResolveLocationOrNil(zipCode *string) *string {
	if zipCode == nil {
		return nil
	}
	if location, ok := zipCodeData[*zipCode]; ok {
		return &location
	}
	return nil
}
