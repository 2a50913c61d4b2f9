package entity

import "strings"

var airports = map[string]string{
	"JFK": "New York (JFK)",
	"EWR": "Newark (EWR)",
	"LAX": "Los Angeles (LAX)",
	"SFO": "San Francisco (SFO)",
	"ORD": "Chicago (ORD)",
	"ATL": "Atlanta (ATL)",
	"MIA": "Miami (MIA)",
	"SEA": "Seattle (SEA)",
	"YYZ": "Toronto (YYZ)",
	"MEX": "Mexico City (MEX)",
	"GRU": "Sao Paulo (GRU)",
	"BOG": "Bogota (BOG)",
	"LHR": "London (LHR)",
	"CDG": "Paris (CDG)",
	"FRA": "Frankfurt (FRA)",
	"AMS": "Amsterdam (AMS)",
	"MAD": "Madrid (MAD)",
	"ZRH": "Zurich (ZRH)",
	"IST": "Istanbul (IST)",
	"DXB": "Dubai (DXB)",
	"DOH": "Doha (DOH)",
	"AUH": "Abu Dhabi (AUH)",
	"SIN": "Singapore (SIN)",
	"HKG": "Hong Kong (HKG)",
	"NRT": "Tokyo (NRT)",
	"HND": "Tokyo (HND)",
	"ICN": "Seoul (ICN)",
	"DEL": "Delhi (DEL)",
	"CGK": "Jakarta (CGK)",
	"SYD": "Sydney (SYD)",
	"AKL": "Auckland (AKL)",
	"ADD": "Addis Ababa (ADD)",
	"NBO": "Nairobi (NBO)",
	"JNB": "Johannesburg (JNB)",
}

// AirportDisplay substitutes the display name for known three-letter codes and
// passes anything else through unchanged.
func AirportDisplay(code string) string {
	if len(code) != 3 {
		return code
	}
	if name, ok := airports[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}
