package inbound

type SearchRequest struct {
	Origin        string `json:"origin" validate:"required,min=2,max=64"`
	Destination   string `json:"destination" validate:"required,min=2,max=64"`
	DepartureDate string `json:"departureDate" validate:"required,datetime=2006-01-02"`
	ReturnDate    string `json:"returnDate" validate:"omitempty,datetime=2006-01-02"`
	Passengers    int    `json:"passengers" validate:"omitempty,min=1,max=9"`
}

// FilterPatchRequest updates only the fields present in the body.
type FilterPatchRequest struct {
	Stops         *[]int      `json:"stops"`
	Airlines      *[]string   `json:"airlines"`
	PriceRange    *[2]float64 `json:"priceRange"`
	DepartureTime *[2]int     `json:"departureTime"`
}

type FilterSpecRequest struct {
	Stops         *[]int      `json:"stops" validate:"required"`
	Airlines      *[]string   `json:"airlines" validate:"required"`
	PriceRange    *[2]float64 `json:"priceRange" validate:"required"`
	DepartureTime *[2]int     `json:"departureTime" validate:"required"`
}

type StateResponse struct {
	State          string            `json:"state"`
	Searching      bool              `json:"searching"`
	Query          *QueryResponse    `json:"query"`
	Source         string            `json:"source,omitempty"`
	FallbackReason string            `json:"fallbackReason,omitempty"`
	TotalResults   int               `json:"totalResults"`
	Airlines       []AirlineResponse `json:"airlines"`
	Filters        FiltersResponse   `json:"filters"`
}

type QueryResponse struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departureDate"`
	ReturnDate    *string `json:"returnDate,omitempty"`
	Passengers    int     `json:"passengers"`
}

type AirlineResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type FiltersResponse struct {
	Stops         []int      `json:"stops"`
	Airlines      []string   `json:"airlines"`
	PriceRange    [2]float64 `json:"priceRange"`
	DepartureTime [2]int     `json:"departureTime"`
}

type FlightsResponse struct {
	Total   int             `json:"total"`
	Flights []OfferResponse `json:"flights"`
}

type OfferResponse struct {
	ID               string  `json:"id"`
	DepartureTime    string  `json:"departureTime"`
	ArrivalTime      string  `json:"arrivalTime"`
	DepartureAirport string  `json:"departureAirport"`
	ArrivalAirport   string  `json:"arrivalAirport"`
	Duration         string  `json:"duration"`
	Stops            int     `json:"stops"`
	Airline          string  `json:"airline"`
	AirlineID        string  `json:"airlineId"`
	Price            float64 `json:"price"`
	Logo             string  `json:"logo"`
}

type PriceSeriesResponse struct {
	Points []PricePointResponse `json:"points"`
}

type PricePointResponse struct {
	Date  string  `json:"date"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}
