package places

// Category is a Foursquare place category.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Location carries the address fields of a venue.
type Location struct {
	Address          string `json:"address,omitempty"`
	Locality         string `json:"locality,omitempty"`
	Region           string `json:"region,omitempty"`
	Postcode         string `json:"postcode,omitempty"`
	Country          string `json:"country,omitempty"`
	FormattedAddress string `json:"formatted_address"`
}

// Geocodes holds the main coordinate pair of a venue.
type Geocodes struct {
	Main struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"main"`
}

// Hours describes the venue's opening hours as reported upstream.
type Hours struct {
	OpenNow *bool  `json:"open_now,omitempty"`
	Display string `json:"display,omitempty"`
}

// Venue is a place record as returned by the Foursquare search API. It is
// read-only downstream of the client; a rating of 0 means "not rated".
type Venue struct {
	FsqID        string     `json:"fsq_id"`
	Name         string     `json:"name"`
	Categories   []Category `json:"categories"`
	Location     Location   `json:"location"`
	Geocodes     Geocodes   `json:"geocodes"`
	Distance     int        `json:"distance,omitempty"`
	Rating       float64    `json:"rating,omitempty"`
	Price        int        `json:"price,omitempty"`
	Hours        *Hours     `json:"hours,omitempty"`
	Website      string     `json:"website,omitempty"`
	Tel          string     `json:"tel,omitempty"`
	ClosedBucket string     `json:"closed_bucket,omitempty"`
}

type searchResponse struct {
	Results []Venue `json:"results"`
}
