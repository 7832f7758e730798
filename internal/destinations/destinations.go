// Package destinations serves the browseable destination catalog. The data
// is a fixed in-process set — there is no destination CMS behind this.
package destinations

import (
	"strings"
)

type Destination struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Country         string   `json:"country"`
	Continent       string   `json:"continent"`
	Climate         string   `json:"climate"`
	Type            string   `json:"type"`
	Description     string   `json:"description"`
	Rating          float64  `json:"rating"`
	BestTimeToVisit string   `json:"best_time_to_visit"`
	Attractions     []string `json:"must_see_attractions"`
}

// Filter narrows the catalog. Empty fields match everything; Query matches
// name, country and description case-insensitively.
type Filter struct {
	Continent string
	Climate   string
	Type      string
	Query     string
}

var catalog = []Destination{
	{
		ID: 1, Name: "Paris", Country: "France", Continent: "Europe", Climate: "Temperate", Type: "City",
		Description:     "The City of Light offers iconic attractions like the Eiffel Tower and world-class cuisine.",
		Rating:          4.8,
		BestTimeToVisit: "April to June, September to November",
		Attractions:     []string{"Eiffel Tower", "Louvre Museum", "Notre-Dame Cathedral", "Montmartre", "Seine River Cruise"},
	},
	{
		ID: 2, Name: "Bali", Country: "Indonesia", Continent: "Asia", Climate: "Tropical", Type: "Beach",
		Description:     "A tropical paradise known for beautiful beaches, vibrant coral reefs, and spiritual retreats.",
		Rating:          4.7,
		BestTimeToVisit: "April to October",
		Attractions:     []string{"Ubud Monkey Forest", "Tanah Lot Temple", "Tegallalang Rice Terraces", "Uluwatu Temple", "Seminyak Beach"},
	},
	{
		ID: 3, Name: "Grand Canyon", Country: "United States", Continent: "North America", Climate: "Arid", Type: "Nature",
		Description:     "One of the world's natural wonders with breathtaking views and hiking trails.",
		Rating:          4.9,
		BestTimeToVisit: "March to May, September to November",
		Attractions:     []string{"South Rim", "Bright Angel Trail", "Desert View Watchtower", "Havasu Falls", "Colorado River Rafting"},
	},
	{
		ID: 4, Name: "Tokyo", Country: "Japan", Continent: "Asia", Climate: "Temperate", Type: "City",
		Description:     "A city where traditional culture and cutting-edge technology blend seamlessly.",
		Rating:          4.8,
		BestTimeToVisit: "March to May, September to November",
		Attractions:     []string{"Shibuya Crossing", "Senso-ji Temple", "Meiji Shrine", "Tokyo Skytree", "Tsukiji Outer Market"},
	},
	{
		ID: 5, Name: "Machu Picchu", Country: "Peru", Continent: "South America", Climate: "Highland", Type: "Mountain",
		Description:     "An ancient Incan citadel set against a breathtaking mountain backdrop.",
		Rating:          4.9,
		BestTimeToVisit: "May to September",
		Attractions:     []string{"Inca Trail", "Huayna Picchu", "Temple of the Sun", "Intihuatana Stone", "Sacred Valley"},
	},
	{
		ID: 6, Name: "Santorini", Country: "Greece", Continent: "Europe", Climate: "Mediterranean", Type: "Beach",
		Description:     "Famous for its stunning white buildings with blue domes overlooking the sea.",
		Rating:          4.8,
		BestTimeToVisit: "April to November",
		Attractions:     []string{"Oia Sunset", "Fira", "Red Beach", "Akrotiri Ruins", "Caldera Cruise"},
	},
	{
		ID: 7, Name: "Cape Town", Country: "South Africa", Continent: "Africa", Climate: "Mediterranean", Type: "City",
		Description:     "A beautiful coastal city with Table Mountain as its iconic backdrop.",
		Rating:          4.6,
		BestTimeToVisit: "October to April",
		Attractions:     []string{"Table Mountain", "Robben Island", "V&A Waterfront", "Cape Point", "Boulders Beach"},
	},
	{
		ID: 8, Name: "Great Barrier Reef", Country: "Australia", Continent: "Oceania", Climate: "Tropical", Type: "Nature",
		Description:     "The world's largest coral reef system, home to diverse marine life.",
		Rating:          4.9,
		BestTimeToVisit: "June to October",
		Attractions:     []string{"Whitsunday Islands", "Cairns Diving", "Heart Reef", "Lizard Island", "Green Island"},
	},
	{
		ID: 9, Name: "Venice", Country: "Italy", Continent: "Europe", Climate: "Temperate", Type: "City",
		Description:     "A unique city built on water with a rich history of art and architecture.",
		Rating:          4.7,
		BestTimeToVisit: "April to June, September to October",
		Attractions:     []string{"St. Mark's Basilica", "Grand Canal", "Rialto Bridge", "Doge's Palace", "Murano Island"},
	},
	{
		ID: 10, Name: "Kyoto", Country: "Japan", Continent: "Asia", Climate: "Temperate", Type: "City",
		Description:     "Japan's cultural capital with numerous temples, gardens and traditional wooden houses.",
		Rating:          4.8,
		BestTimeToVisit: "March to May, October to November",
		Attractions:     []string{"Fushimi Inari Shrine", "Kinkaku-ji (Golden Pavilion)", "Arashiyama Bamboo Grove", "Gion District", "Kiyomizu-dera Temple"},
	},
	{
		ID: 11, Name: "Serengeti", Country: "Tanzania", Continent: "Africa", Climate: "Tropical", Type: "Nature",
		Description:     "Famous for its annual migration of wildebeest and diverse wildlife.",
		Rating:          4.9,
		BestTimeToVisit: "June to October, January to February",
		Attractions:     []string{"Great Migration", "Grumeti River Crossing", "Seronera Valley", "Moru Kopjes", "Hot Air Balloon Safari"},
	},
	{
		ID: 12, Name: "Rio de Janeiro", Country: "Brazil", Continent: "South America", Climate: "Tropical", Type: "City",
		Description:     "Vibrant city known for its carnival, beaches, and the iconic Christ the Redeemer statue.",
		Rating:          4.6,
		BestTimeToVisit: "December to March",
		Attractions:     []string{"Christ the Redeemer", "Sugarloaf Mountain", "Copacabana Beach", "Ipanema", "Tijuca National Park"},
	},
}

// All returns the full catalog.
func All() []Destination {
	out := make([]Destination, len(catalog))
	copy(out, catalog)
	return out
}

// Get returns a destination by id.
func Get(id int) (Destination, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Destination{}, false
}

// Search applies the filter to the catalog.
func Search(f Filter) []Destination {
	q := strings.ToLower(f.Query)

	var out []Destination
	for _, d := range catalog {
		if f.Continent != "" && d.Continent != f.Continent {
			continue
		}
		if f.Climate != "" && d.Climate != f.Climate {
			continue
		}
		if f.Type != "" && d.Type != f.Type {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(d.Name), q) &&
			!strings.Contains(strings.ToLower(d.Country), q) &&
			!strings.Contains(strings.ToLower(d.Description), q) {
			continue
		}
		out = append(out, d)
	}
	return out
}
