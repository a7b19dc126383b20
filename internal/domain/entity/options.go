package entity

// FlightOption is a single mock flight result.
type FlightOption struct {
	Airline      string  `json:"airline"`
	FlightNumber string  `json:"flight_number"`
	DepartTime   string  `json:"depart_time"`
	ArriveTime   string  `json:"arrive_time"`
	Duration     string  `json:"duration"`
	Price        float64 `json:"price"`
	Origin       string  `json:"origin"`
	Destination  string  `json:"destination"`
}

// HotelOption is a single mock hotel result.
type HotelOption struct {
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	Rating        float64 `json:"rating"`
	PricePerNight float64 `json:"price_per_night"`
	Image         *string `json:"image"`
}

// TrainOption is a single mock train result.
type TrainOption struct {
	TrainName   string  `json:"train_name"`
	TrainNumber string  `json:"train_number"`
	DepartTime  string  `json:"depart_time"`
	ArriveTime  string  `json:"arrive_time"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
}
