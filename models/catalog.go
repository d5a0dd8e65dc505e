package models

// Destination is a marketing catalogue entry served to the public site.
type Destination struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Country          string   `json:"country"`
	Type             string   `json:"type"` // international | domestic
	Image            string   `json:"image"`
	ShortDescription string   `json:"shortDescription"`
	Description      string   `json:"description"`
	BestTime         string   `json:"bestTime"`
	Duration         string   `json:"duration"`
	Highlights       []string `json:"highlights"`
}

// PackageInclusions flags what a holiday package covers.
type PackageInclusions struct {
	Flight      bool   `json:"flight"`
	Hotel       bool   `json:"hotel"`
	Transfer    bool   `json:"transfer"`
	Sightseeing bool   `json:"sightseeing"`
	Meals       string `json:"meals,omitempty"`
}

// HolidayPackage is a priced itinerary for a destination.
type HolidayPackage struct {
	ID               string            `json:"id"`
	DestinationID    string            `json:"destinationId"`
	Title            string            `json:"title"`
	Price            int               `json:"price"`
	OriginalPrice    int               `json:"originalPrice,omitempty"`
	Nights           int               `json:"nights"`
	ShortDescription string            `json:"shortDescription"`
	Inclusions       PackageInclusions `json:"inclusions"`
	Highlights       []string          `json:"highlights"`
}

// InquiryDestinations is the list offered by the public inquiry form.
var InquiryDestinations = []string{
	"Paris, France", "London, UK", "New York, USA", "Tokyo, Japan", "Dubai, UAE",
	"Singapore", "Bali, Indonesia", "Thailand", "Switzerland", "Italy",
	"Goa, India", "Kerala, India", "Rajasthan, India", "Kashmir, India", "Himachal Pradesh, India",
	"Uttarakhand, India", "Tamil Nadu, India", "Karnataka, India", "Maharashtra, India", "Gujarat, India",
}
