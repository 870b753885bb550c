package address

import "strings"

// Amazon usually sends US administrative areas with their 2-digit code, but
// sometimes the full name comes through instead, e.g. NEW MEXICO instead of NM.
var usStates = map[string]string{
	"ALABAMA":                        "AL",
	"ALASKA":                         "AK",
	"AMERICAN SAMOA":                 "AS",
	"ARIZONA":                        "AZ",
	"ARKANSAS":                       "AR",
	"ARMED FORCES AMERICAS":          "AA",
	"ARMED FORCES EUROPE":            "AE",
	"ARMED FORCES PACIFIC":           "AP",
	"CALIFORNIA":                     "CA",
	"COLORADO":                       "CO",
	"CONNECTICUT":                    "CT",
	"DELAWARE":                       "DE",
	"DISTRICT OF COLUMBIA":           "DC",
	"FLORIDA":                        "FL",
	"GEORGIA":                        "GA",
	"GUAM":                           "GU",
	"HAWAII":                         "HI",
	"IDAHO":                          "ID",
	"ILLINOIS":                       "IL",
	"INDIANA":                        "IN",
	"IOWA":                           "IA",
	"KANSAS":                         "KS",
	"KENTUCKY":                       "KY",
	"LOUISIANA":                      "LA",
	"MAINE":                          "ME",
	"MARSHALL ISLANDS":               "MH",
	"MARYLAND":                       "MD",
	"MASSACHUSETTS":                  "MA",
	"MICHIGAN":                       "MI",
	"MICRONESIA":                     "FM",
	"MINNESOTA":                      "MN",
	"MISSISSIPPI":                    "MS",
	"MISSOURI":                       "MO",
	"MONTANA":                        "MT",
	"NEBRASKA":                       "NE",
	"NEVADA":                         "NV",
	"NEW HAMPSHIRE":                  "NH",
	"NEW JERSEY":                     "NJ",
	"NEW MEXICO":                     "NM",
	"NEW YORK":                       "NY",
	"NORTH CAROLINA":                 "NC",
	"NORTH DAKOTA":                   "ND",
	"NORTHERN MARIANA ISLANDS":       "MP",
	"OHIO":                           "OH",
	"OKLAHOMA":                       "OK",
	"OREGON":                         "OR",
	"PALAU":                          "PW",
	"PENNSYLVANIA":                   "PA",
	"PUERTO RICO":                    "PR",
	"RHODE ISLAND":                   "RI",
	"SOUTH CAROLINA":                 "SC",
	"SOUTH DAKOTA":                   "SD",
	"TENNESSEE":                      "TN",
	"TEXAS":                          "TX",
	"UTAH":                           "UT",
	"VERMONT":                        "VT",
	"VIRGIN ISLANDS":                 "VI",
	"VIRGINIA":                       "VA",
	"WASHINGTON":                     "WA",
	"WEST VIRGINIA":                  "WV",
	"WISCONSIN":                      "WI",
	"WYOMING":                        "WY",
	"UNITED STATES VIRGIN ISLANDS":   "VI",
	"U.S. VIRGIN ISLANDS":            "VI",
	"FEDERATED STATES OF MICRONESIA": "FM",
}

// StateCode returns the 2-digit code of a US state given by its full name.
// Matching ignores case and surrounding/repeated whitespace.
// Values that are already a known code are returned upper cased.
func StateCode(name string) (string, bool) {
	key := strings.ToUpper(strings.Join(strings.Fields(name), " "))
	if code, ok := usStates[key]; ok {
		return code, true
	}
	if len(key) == 2 {
		for _, code := range usStates {
			if code == key {
				return code, true
			}
		}
	}
	return "", false
}

// ConvertStates replaces a full US state name in the administrative area with
// its 2-digit code. Only US addresses are touched; unknown names are kept as
// they came through.
func (a Address) ConvertStates() Address {
	if !strings.EqualFold(a.CountryCode, "US") || a.AdministrativeArea == "" {
		return a
	}
	if code, ok := StateCode(a.AdministrativeArea); ok {
		a.AdministrativeArea = code
	}
	return a
}
