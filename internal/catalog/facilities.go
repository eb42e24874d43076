package catalog

import "strings"

// Facility types form a closed set.
const (
	FacilityHospital  = "hospital"
	FacilityPHC       = "phc"
	FacilityCHC       = "chc"
	FacilitySubCenter = "sub_center"
	FacilityASHA      = "asha_worker"
	FacilityAnganwadi = "anganwadi"
	FacilityPharmacy  = "pharmacy"
)

// Facility is a static reference entry. Distance and open state are indicative
// only; freshness of this dataset is not guaranteed.
type Facility struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Address  string   `json:"address"`
	Phone    string   `json:"phone"`
	Distance string   `json:"distance"`
	Services []string `json:"services"`
	IsOpen   bool     `json:"is_open"`
	Rating   float64  `json:"rating,omitempty"`
}

var facilities = []Facility{
	{
		Name: "District Civil Hospital", Type: FacilityHospital,
		Address: "Civil Lines, Nashik", Phone: "0253-2575701", Distance: "12 km",
		Services: []string{"Emergency", "Surgery", "Maternity", "Pediatrics", "Blood bank"},
		IsOpen:   true, Rating: 4.1,
	},
	{
		Name: "Primary Health Centre Deolali", Type: FacilityPHC,
		Address: "Deolali Gaon, Nashik", Phone: "0253-2491200", Distance: "4 km",
		Services: []string{"General OPD", "Vaccination", "Antenatal care", "Malaria testing"},
		IsOpen:   true, Rating: 3.8,
	},
	{
		Name: "Community Health Centre Sinnar", Type: FacilityCHC,
		Address: "Sinnar, Nashik", Phone: "02551-220304", Distance: "18 km",
		Services: []string{"General OPD", "Delivery", "Minor surgery", "X-ray", "Laboratory"},
		IsOpen:   true, Rating: 3.9,
	},
	{
		Name: "Health Sub-Centre Pimpri", Type: FacilitySubCenter,
		Address: "Pimpri village, Nashik", Phone: "9422001122", Distance: "1.5 km",
		Services: []string{"First aid", "Immunization", "Antenatal registration"},
		IsOpen:   true,
	},
	{
		Name: "ASHA Worker - Sunita Pawar", Type: FacilityASHA,
		Address: "Pimpri village, Nashik", Phone: "9850012345", Distance: "0.5 km",
		Services: []string{"Home visits", "Maternal counselling", "Referral support"},
		IsOpen:   true,
	},
	{
		Name: "Anganwadi Centre 14", Type: FacilityAnganwadi,
		Address: "Ward 14, Deolali Gaon, Nashik", Phone: "9850098765", Distance: "2 km",
		Services: []string{"Child nutrition", "Growth monitoring", "Preschool education", "Vaccination camps"},
		IsOpen:   true,
	},
	{
		Name: "Jan Aushadhi Kendra", Type: FacilityPharmacy,
		Address: "Main Road, Deolali Gaon, Nashik", Phone: "9922334455", Distance: "3 km",
		Services: []string{"Generic medicines", "Blood pressure check", "Sugar testing"},
		IsOpen:   true, Rating: 4.3,
	},
	{
		Name: "Rural Hospital Igatpuri", Type: FacilityHospital,
		Address: "Igatpuri, Nashik", Phone: "02553-244021", Distance: "30 km",
		Services: []string{"Emergency", "Maternity", "General OPD", "Snake bite treatment"},
		IsOpen:   true, Rating: 3.7,
	},
}

// FindFacilities filters the static list: case-insensitive substring on
// address for location, exact match on type, substring within any service
// name for specialty. Empty arguments match everything.
func FindFacilities(location, facilityType, specialty string) []Facility {
	location = strings.ToLower(strings.TrimSpace(location))
	specialty = strings.ToLower(strings.TrimSpace(specialty))

	matched := make([]Facility, 0, len(facilities))
	for _, f := range facilities {
		if location != "" && !strings.Contains(strings.ToLower(f.Address), location) {
			continue
		}
		if facilityType != "" && f.Type != facilityType {
			continue
		}
		if specialty != "" && !serviceMatches(f.Services, specialty) {
			continue
		}
		matched = append(matched, f)
	}
	return matched
}

func serviceMatches(services []string, specialty string) bool {
	for _, s := range services {
		if strings.Contains(strings.ToLower(s), specialty) {
			return true
		}
	}
	return false
}

// AllFacilityTypes returns the closed facility-type set.
func AllFacilityTypes() []string {
	return []string{
		FacilityHospital, FacilityPHC, FacilityCHC, FacilitySubCenter,
		FacilityASHA, FacilityAnganwadi, FacilityPharmacy,
	}
}
