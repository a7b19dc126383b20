// internal/domain/entity/search.go
package entity

// SearchType is the kind of travel search a record describes.
type SearchType string

const (
	SearchFlights SearchType = "flights"
	SearchHotels  SearchType = "hotels"
	SearchTrains  SearchType = "trains"
)

// SearchCollection is the collection search records are logged to.
const SearchCollection = "search"

// SearchQuery is a logged search. Field presence depends on Type:
// flights and trains carry Origin/Destination/Date, hotels carry City/Checkin/Checkout.
type SearchQuery struct {
	Type        SearchType `json:"type" bson:"type" binding:"required,oneof=flights hotels trains"`
	Origin      string     `json:"origin,omitempty" bson:"origin,omitempty"`
	Destination string     `json:"destination,omitempty" bson:"destination,omitempty"`
	Date        string     `json:"date,omitempty" bson:"date,omitempty"`
	City        string     `json:"city,omitempty" bson:"city,omitempty"`
	Checkin     string     `json:"checkin,omitempty" bson:"checkin,omitempty"`
	Checkout    string     `json:"checkout,omitempty" bson:"checkout,omitempty"`
}
