package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sappiah085/flight/internal/flightsearch/entity"
)

const (
	DefaultAmadeusBaseURL = "https://test.api.amadeus.com"
	offersPath            = "/v2/shopping/flight-offers"
	offersMax             = 20
)

type AmadeusConfig struct {
	BaseURL     string
	Credentials Credentials
	// RetryMax is the number of retries after the first attempt. Zero disables retries.
	RetryMax int
	// Timeout bounds each HTTP attempt. Zero leaves the transport default.
	Timeout time.Duration
}

// AmadeusClient searches the Amadeus flight-offers API. It only reports
// errors; falling back to generated data is the Adapter's job.
type AmadeusClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     *TokenSource
}

func NewAmadeusClient(cfg AmadeusConfig) *AmadeusClient {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultAmadeusBaseURL
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryMax
	retryClient.Logger = leveledLogger{l: log.Logger.With().Str("component", "amadeus").Logger()}
	retryClient.HTTPClient.Timeout = cfg.Timeout
	// hand the last response back so exhausted 5xx report their status
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	httpClient := retryClient.StandardClient()

	return &AmadeusClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		tokens:     NewTokenSource(httpClient, baseURL, cfg.Credentials, nil),
	}
}

func (a *AmadeusClient) Name() string {
	return "Amadeus"
}

func (a *AmadeusClient) Search(ctx context.Context, req SearchRequest) (Result, error) {
	token, err := a.tokens.Token(ctx)
	if err != nil {
		return Result{}, err
	}

	q := url.Values{}
	q.Set("originLocationCode", req.Origin)
	q.Set("destinationLocationCode", req.Destination)
	q.Set("departureDate", req.DepartureDate.Format(entity.DateLayout))
	q.Set("adults", "1")
	q.Set("nonStop", "false")
	q.Set("max", fmt.Sprint(offersMax))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+offersPath+"?"+q.Encode(), nil)
	if err != nil {
		return Result{}, fmt.Errorf("amadeus build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return Result{}, fmt.Errorf("amadeus offers request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		a.tokens.Invalidate()
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, fmt.Errorf("amadeus offers: %w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var body offersResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Result{}, fmt.Errorf("amadeus decode: %w: %w", ErrMalformedResponse, err)
	}

	return body.toResult()
}

type offersResponse struct {
	Data []struct {
		ID          string `json:"id"`
		Itineraries []struct {
			Duration string `json:"duration"`
			Segments []struct {
				Departure   segmentPoint `json:"departure"`
				Arrival     segmentPoint `json:"arrival"`
				CarrierCode string       `json:"carrierCode"`
			} `json:"segments"`
		} `json:"itineraries"`
		Price struct {
			Total    string `json:"total"`
			Currency string `json:"currency"`
		} `json:"price"`
	} `json:"data"`
	Dictionaries *struct {
		Carriers map[string]string `json:"carriers"`
	} `json:"dictionaries"`
}

type segmentPoint struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"`
}

func (r offersResponse) carriers() map[string]string {
	if r.Dictionaries == nil {
		return nil
	}
	return r.Dictionaries.Carriers
}

func (r offersResponse) toResult() (Result, error) {
	carriers := r.carriers()

	offers := make([]entity.Offer, 0, len(r.Data))
	for _, o := range r.Data {
		if len(o.Itineraries) == 0 || len(o.Itineraries[0].Segments) == 0 {
			return Result{}, fmt.Errorf("%w: offer %q has no segments", ErrMalformedResponse, o.ID)
		}
		itinerary := o.Itineraries[0]
		first := itinerary.Segments[0]
		last := itinerary.Segments[len(itinerary.Segments)-1]

		departAt, err := clockOf(first.Departure.At)
		if err != nil {
			return Result{}, err
		}
		arriveAt, err := clockOf(last.Arrival.At)
		if err != nil {
			return Result{}, err
		}
		duration, err := formatISODuration(itinerary.Duration)
		if err != nil {
			return Result{}, err
		}
		price, err := parsePrice(o.Price.Total)
		if err != nil {
			return Result{}, err
		}

		airline := entity.ResolveCarrier(first.CarrierCode, carriers[first.CarrierCode])
		offers = append(offers, entity.Offer{
			ID:               o.ID,
			DepartureTime:    departAt,
			ArrivalTime:      arriveAt,
			DepartureAirport: first.Departure.IATACode,
			ArrivalAirport:   last.Arrival.IATACode,
			Duration:         duration,
			Stops:            len(itinerary.Segments) - 1,
			Airline:          airline.Name,
			AirlineID:        airline.ID,
			Price:            price,
			Logo:             airline.Logo,
		})
	}

	return Result{
		Offers:   offers,
		Airlines: airlineRefs(carriers, offers),
		Source:   SourceRemote,
	}, nil
}

// airlineRefs lists the dictionary carriers, or the carriers seen in offers
// when the response has no dictionary. IDs go through the same roster
// resolution as the offers so filters match exactly.
func airlineRefs(carriers map[string]string, offers []entity.Offer) []entity.AirlineRef {
	if len(carriers) > 0 {
		codes := make([]string, 0, len(carriers))
		for code := range carriers {
			codes = append(codes, code)
		}
		sort.Strings(codes)

		refs := make([]entity.AirlineRef, 0, len(codes))
		for _, code := range codes {
			refs = append(refs, entity.ResolveCarrier(code, carriers[code]).Ref())
		}
		return refs
	}

	seen := make(map[string]bool, len(offers))
	refs := make([]entity.AirlineRef, 0)
	for _, o := range offers {
		if seen[o.AirlineID] {
			continue
		}
		seen[o.AirlineID] = true
		refs = append(refs, entity.AirlineRef{ID: o.AirlineID, Name: o.Airline})
	}
	return refs
}

// leveledLogger routes retryablehttp's logging into zerolog.
type leveledLogger struct {
	l zerolog.Logger
}

func (z leveledLogger) Error(msg string, kv ...interface{}) { z.l.Error().Fields(kv).Msg(msg) }
func (z leveledLogger) Info(msg string, kv ...interface{})  { z.l.Debug().Fields(kv).Msg(msg) }
func (z leveledLogger) Debug(msg string, kv ...interface{}) { z.l.Trace().Fields(kv).Msg(msg) }
func (z leveledLogger) Warn(msg string, kv ...interface{})  { z.l.Warn().Fields(kv).Msg(msg) }
