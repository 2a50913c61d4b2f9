package entity

import "strings"

type Airline struct {
	ID   string
	Name string
	Code string
	Logo string
}

// AirlineRef is the id/name pair offered to clients for airline filtering.
type AirlineRef struct {
	ID   string
	Name string
}

func (a Airline) Ref() AirlineRef {
	return AirlineRef{ID: a.ID, Name: a.Name}
}

const logoBaseURL = "https://content.r9cdn.net/rimg/provider-logos/airlines/v/"

func carrier(id, name, code string) Airline {
	return Airline{ID: id, Name: name, Code: code, Logo: logoBaseURL + code + ".png"}
}

var roster = []Airline{
	// North America
	carrier("united", "United Airlines", "UA"),
	carrier("delta", "Delta Air Lines", "DL"),
	carrier("american", "American Airlines", "AA"),
	carrier("alaska", "Alaska Airlines", "AS"),
	carrier("jetblue", "JetBlue Airways", "B6"),
	carrier("aircanada", "Air Canada", "AC"),
	carrier("westjet", "WestJet", "WS"),
	// Europe
	carrier("british", "British Airways", "BA"),
	carrier("lufthansa", "Lufthansa", "LH"),
	carrier("airfrance", "Air France", "AF"),
	carrier("klm", "KLM Royal Dutch Airlines", "KL"),
	carrier("iberia", "Iberia", "IB"),
	carrier("swiss", "Swiss International Air Lines", "LX"),
	carrier("turkish", "Turkish Airlines", "TK"),
	carrier("virgin", "Virgin Atlantic", "VS"),
	carrier("sas", "Scandinavian Airlines", "SK"),
	// Middle East
	carrier("emirates", "Emirates", "EK"),
	carrier("qatar", "Qatar Airways", "QR"),
	carrier("etihad", "Etihad Airways", "EY"),
	// Asia-Pacific
	carrier("singapore", "Singapore Airlines", "SQ"),
	carrier("cathay", "Cathay Pacific", "CX"),
	carrier("ana", "All Nippon Airways", "NH"),
	carrier("jal", "Japan Airlines", "JL"),
	carrier("koreanair", "Korean Air", "KE"),
	carrier("qantas", "Qantas", "QF"),
	carrier("airnewzealand", "Air New Zealand", "NZ"),
	carrier("airindia", "Air India", "AI"),
	carrier("garuda", "Garuda Indonesia", "GA"),
	// Latin America
	carrier("latam", "LATAM Airlines", "LA"),
	carrier("avianca", "Avianca", "AV"),
	carrier("aeromexico", "Aeromexico", "AM"),
	// Africa
	carrier("ethiopian", "Ethiopian Airlines", "ET"),
	carrier("kenya", "Kenya Airways", "KQ"),
	carrier("southafrican", "South African Airways", "SA"),
}

var rosterByCode = func() map[string]Airline {
	m := make(map[string]Airline, len(roster))
	for _, a := range roster {
		m[a.Code] = a
	}
	return m
}()

// Roster returns a copy of the fixed carrier roster.
func Roster() []Airline {
	return append([]Airline(nil), roster...)
}

func RosterRefs() []AirlineRef {
	refs := make([]AirlineRef, 0, len(roster))
	for _, a := range roster {
		refs = append(refs, a.Ref())
	}
	return refs
}

func RosterIDs() []string {
	ids := make([]string, 0, len(roster))
	for _, a := range roster {
		ids = append(ids, a.ID)
	}
	return ids
}

// AirlineByCode looks up a roster carrier by its two-character IATA code.
func AirlineByCode(code string) (Airline, bool) {
	a, ok := rosterByCode[strings.ToUpper(strings.TrimSpace(code))]
	return a, ok
}

// ResolveCarrier maps a carrier code to its roster entry, or synthesizes one
// whose id is the lower-cased code. name is used for unknown carriers when set.
func ResolveCarrier(code, name string) Airline {
	if a, ok := AirlineByCode(code); ok {
		return a
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if name == "" {
		name = code
	}
	return Airline{ID: CanonicalAirlineID(code), Name: name, Code: code}
}

func CanonicalAirlineID(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
