package controllers

import (
	"github.com/WanderstayHolidays/crm_end/models"
	"github.com/WanderstayHolidays/crm_end/utils"

	"github.com/gin-gonic/gin"
)

// Marketing catalogue served to the public site. Static content maintained
// here; the CRM only reads it.
var destinations = []models.Destination{
	{
		ID: "bali", Name: "Bali", Country: "Indonesia", Type: "international",
		Image:            "/images/destinations/bali.jpg",
		ShortDescription: "Island of the Gods with beaches, temples and rice terraces.",
		Description:      "Bali blends volcanic scenery, Hindu temples and a laid-back beach culture. Ubud's rice terraces and Uluwatu's cliff temples anchor most itineraries.",
		BestTime:         "April to October", Duration: "5-7 nights",
		Highlights: []string{"Uluwatu Temple", "Ubud rice terraces", "Nusa Penida day trip"},
	},
	{
		ID: "dubai", Name: "Dubai", Country: "UAE", Type: "international",
		Image:            "/images/destinations/dubai.jpg",
		ShortDescription: "Desert luxury, record-breaking skylines and family attractions.",
		Description:      "Dubai packs the Burj Khalifa, desert safaris and beach resorts into a compact city break, with short flights from every Indian metro.",
		BestTime:         "November to March", Duration: "4-5 nights",
		Highlights: []string{"Burj Khalifa", "Desert safari", "Dubai Marina cruise"},
	},
	{
		ID: "switzerland", Name: "Switzerland", Country: "Switzerland", Type: "international",
		Image:            "/images/destinations/switzerland.jpg",
		ShortDescription: "Alpine trains, lakes and snow peaks.",
		Description:      "Interlaken, Lucerne and Zermatt connected by the world's most scenic rail network. A honeymoon staple.",
		BestTime:         "May to September", Duration: "6-8 nights",
		Highlights: []string{"Jungfraujoch", "Glacier Express", "Lake Lucerne"},
	},
	{
		ID: "goa", Name: "Goa", Country: "India", Type: "domestic",
		Image:            "/images/destinations/goa.jpg",
		ShortDescription: "Beaches, Portuguese heritage and nightlife.",
		Description:      "North Goa for the beach shacks and nightlife, South Goa for quiet sands and old churches.",
		BestTime:         "November to February", Duration: "3-5 nights",
		Highlights: []string{"Baga Beach", "Old Goa churches", "Dudhsagar Falls"},
	},
	{
		ID: "kerala", Name: "Kerala", Country: "India", Type: "domestic",
		Image:            "/images/destinations/kerala.jpg",
		ShortDescription: "Backwaters, houseboats and hill stations.",
		Description:      "Alleppey houseboats, Munnar tea gardens and Kovalam beaches in one loop. God's own country.",
		BestTime:         "September to March", Duration: "5-7 nights",
		Highlights: []string{"Alleppey houseboat", "Munnar tea gardens", "Fort Kochi"},
	},
	{
		ID: "kashmir", Name: "Kashmir", Country: "India", Type: "domestic",
		Image:            "/images/destinations/kashmir.jpg",
		ShortDescription: "Dal Lake shikaras, meadows and snow.",
		Description:      "Srinagar, Gulmarg and Pahalgam: houseboats on Dal Lake and gondola rides to the snowline.",
		BestTime:         "March to October", Duration: "5-6 nights",
		Highlights: []string{"Dal Lake shikara", "Gulmarg gondola", "Betaab Valley"},
	},
}

var holidayPackages = []models.HolidayPackage{
	{
		ID: "bali-honeymoon-6n", DestinationID: "bali", Title: "Bali Honeymoon Escape",
		Price: 89999, OriginalPrice: 104999, Nights: 6,
		ShortDescription: "Private pool villa stay with candlelight dinner and island tours.",
		Inclusions:       models.PackageInclusions{Flight: true, Hotel: true, Transfer: true, Sightseeing: true, Meals: "breakfast"},
		Highlights:       []string{"Private pool villa", "Nusa Penida tour", "Candlelight dinner"},
	},
	{
		ID: "dubai-family-5n", DestinationID: "dubai", Title: "Dubai Family Fun",
		Price: 74999, Nights: 5,
		ShortDescription: "City tour, desert safari and theme park entries for the whole family.",
		Inclusions:       models.PackageInclusions{Flight: true, Hotel: true, Transfer: true, Sightseeing: true, Meals: "breakfast"},
		Highlights:       []string{"Desert safari with BBQ", "Burj Khalifa tickets", "Aquaventure waterpark"},
	},
	{
		ID: "swiss-paris-8n", DestinationID: "switzerland", Title: "Swiss Alps and Paris",
		Price: 189999, OriginalPrice: 209999, Nights: 8,
		ShortDescription: "Two countries, one trip: alpine rail passes plus the city of lights.",
		Inclusions:       models.PackageInclusions{Flight: true, Hotel: true, Transfer: true, Sightseeing: true},
		Highlights:       []string{"Jungfraujoch excursion", "Seine river cruise", "Swiss Travel Pass"},
	},
	{
		ID: "kerala-backwaters-5n", DestinationID: "kerala", Title: "Kerala Backwater Trail",
		Price: 32999, Nights: 5,
		ShortDescription: "Houseboat night in Alleppey with Munnar and Kochi stays.",
		Inclusions:       models.PackageInclusions{Hotel: true, Transfer: true, Sightseeing: true, Meals: "breakfast and dinner"},
		Highlights:       []string{"Premium houseboat", "Tea museum visit", "Kathakali show"},
	},
	{
		ID: "kashmir-classic-5n", DestinationID: "kashmir", Title: "Classic Kashmir",
		Price: 28999, Nights: 5,
		ShortDescription: "Srinagar houseboat, Gulmarg and Pahalgam with all transfers.",
		Inclusions:       models.PackageInclusions{Hotel: true, Transfer: true, Sightseeing: true, Meals: "breakfast and dinner"},
		Highlights:       []string{"Dal Lake houseboat night", "Gulmarg gondola", "Mughal gardens"},
	},
}

// GetDestinations returns the marketing destination catalogue, optionally
// filtered by type (international or domestic).
func GetDestinations(c *gin.Context) {
	typeFilter := c.Query("type")
	if typeFilter == "" {
		utils.ListResponse(c, "destinations", destinations, len(destinations))
		return
	}

	filtered := make([]models.Destination, 0, len(destinations))
	for _, destination := range destinations {
		if destination.Type == typeFilter {
			filtered = append(filtered, destination)
		}
	}
	utils.ListResponse(c, "destinations", filtered, len(filtered))
}

// GetHolidayPackages returns priced packages, optionally filtered by
// destination.
func GetHolidayPackages(c *gin.Context) {
	destinationID := c.Query("destinationId")
	if destinationID == "" {
		utils.ListResponse(c, "packages", holidayPackages, len(holidayPackages))
		return
	}

	filtered := make([]models.HolidayPackage, 0, len(holidayPackages))
	for _, pkg := range holidayPackages {
		if pkg.DestinationID == destinationID {
			filtered = append(filtered, pkg)
		}
	}
	utils.ListResponse(c, "packages", filtered, len(filtered))
}

// GetDestinationDetail returns one catalogue destination by id.
func GetDestinationDetail(c *gin.Context) {
	id := c.Param("id")
	for _, destination := range destinations {
		if destination.ID == id {
			utils.SuccessResponse(c, destination, "")
			return
		}
	}
	utils.HandleError(c, utils.CreateNotFoundError("destination"))
}

// GetHolidayPackageDetail returns one package by id.
func GetHolidayPackageDetail(c *gin.Context) {
	id := c.Param("id")
	for _, pkg := range holidayPackages {
		if pkg.ID == id {
			utils.SuccessResponse(c, pkg, "")
			return
		}
	}
	utils.HandleError(c, utils.CreateNotFoundError("package"))
}

// GetInquiryDestinations returns the destination options offered by the
// public inquiry form.
func GetInquiryDestinations(c *gin.Context) {
	utils.ListResponse(c, "destinations", models.InquiryDestinations, len(models.InquiryDestinations))
}
