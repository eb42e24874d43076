package catalog

import (
	"fmt"
	"strings"
)

// Eligibility is a scheme's predicate over user attributes. Zero values mean
// "no constraint".
type Eligibility struct {
	RequiresPregnant bool   `json:"requires_pregnant,omitempty"`
	RequiresChildren bool   `json:"requires_children,omitempty"`
	MaxIncomeTier    string `json:"max_income_tier,omitempty"` // "bpl", "low", "middle"
	MinAge           int    `json:"min_age,omitempty"`
	MaxAge           int    `json:"max_age,omitempty"`
}

// Scheme is a government health scheme reference entry.
type Scheme struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Categories   []string    `json:"categories"`
	Eligibility  Eligibility `json:"eligibility"`
	Benefits     []string    `json:"benefits"`
	HowToApply   string      `json:"how_to_apply"`
	DocumentsReq []string    `json:"documents_required"`
}

// incomeTierRank orders tiers so MaxIncomeTier can be compared.
var incomeTierRank = map[string]int{"bpl": 0, "low": 1, "middle": 2, "": 3}

var schemes = []Scheme{
	{
		ID: "jsy", Name: "Janani Suraksha Yojana",
		Categories:  []string{"maternal"},
		Eligibility: Eligibility{RequiresPregnant: true, MaxIncomeTier: "low"},
		Benefits: []string{
			"Cash assistance of Rs 1400 (rural) for institutional delivery",
			"Free delivery at government facilities",
			"ASHA worker support throughout pregnancy",
		},
		HowToApply:   "Register with your ASHA worker or at the nearest PHC during pregnancy.",
		DocumentsReq: []string{"Aadhaar card", "BPL card or income certificate", "Bank passbook", "MCP card"},
	},
	{
		ID: "pmmvy", Name: "Pradhan Mantri Matru Vandana Yojana",
		Categories:  []string{"maternal"},
		Eligibility: Eligibility{RequiresPregnant: true},
		Benefits: []string{
			"Rs 5000 in three installments for the first living child",
			"Direct bank transfer tied to antenatal checkups and vaccination",
		},
		HowToApply:   "Apply at the anganwadi centre with the MCP card after pregnancy registration.",
		DocumentsReq: []string{"Aadhaar card", "Bank passbook", "MCP card"},
	},
	{
		ID: "pmjay", Name: "Ayushman Bharat PM-JAY",
		Categories:  []string{"insurance", "general"},
		Eligibility: Eligibility{MaxIncomeTier: "low"},
		Benefits: []string{
			"Health cover of Rs 5 lakh per family per year",
			"Cashless treatment at empanelled hospitals",
		},
		HowToApply:   "Check eligibility at a Common Service Centre or empanelled hospital with your ration card.",
		DocumentsReq: []string{"Aadhaar card", "Ration card"},
	},
	{
		ID: "indradhanush", Name: "Mission Indradhanush",
		Categories:  []string{"child", "immunization"},
		Eligibility: Eligibility{RequiresChildren: true, MaxAge: 2},
		Benefits: []string{
			"Full immunization for children under two years",
			"Catch-up vaccination drives in low-coverage areas",
		},
		HowToApply:   "Visit the nearest anganwadi or sub-centre during immunization sessions.",
		DocumentsReq: []string{"MCP card"},
	},
	{
		ID: "poshan", Name: "Poshan Abhiyaan (ICDS)",
		Categories:  []string{"child", "nutrition", "maternal"},
		Eligibility: Eligibility{},
		Benefits: []string{
			"Supplementary nutrition for children under six, pregnant and lactating women",
			"Monthly growth monitoring at the anganwadi centre",
		},
		HowToApply:   "Register the child or mother at the local anganwadi centre.",
		DocumentsReq: []string{"Aadhaar card", "Birth certificate (for children)"},
	},
	{
		ID: "rbsk", Name: "Rashtriya Bal Swasthya Karyakram",
		Categories:  []string{"child"},
		Eligibility: Eligibility{RequiresChildren: true, MaxAge: 18},
		Benefits: []string{
			"Free health screening for children from birth to 18 years",
			"Free treatment for birth defects and childhood diseases",
		},
		HowToApply:   "Screenings happen at anganwadis and schools; referrals are free at district hospitals.",
		DocumentsReq: []string{"None for screening"},
	},
}

// UserAttributes is the input to scheme eligibility evaluation.
type UserAttributes struct {
	IsPregnant  bool   `json:"is_pregnant,omitempty"`
	HasChildren bool   `json:"has_children,omitempty"`
	IncomeTier  string `json:"income_tier,omitempty"` // "bpl", "low", "middle"
	Age         int    `json:"age,omitempty"`
}

// SchemeMatch annotates a scheme with the eligibility verdict for one user.
type SchemeMatch struct {
	Scheme     Scheme `json:"scheme"`
	IsEligible bool   `json:"is_eligible"`
	Reason     string `json:"reason"`
}

// SchemesByCategory returns every scheme whose category set contains the
// given category. "all" or empty passes everything.
func SchemesByCategory(category string) []Scheme {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" || category == "all" {
		out := make([]Scheme, len(schemes))
		copy(out, schemes)
		return out
	}
	matched := make([]Scheme, 0, len(schemes))
	for _, s := range schemes {
		for _, c := range s.Categories {
			if c == category {
				matched = append(matched, s)
				break
			}
		}
	}
	return matched
}

// Evaluate applies the scheme's eligibility predicate to the user attributes
// and produces a human-readable reason either way.
func (s Scheme) Evaluate(attrs UserAttributes) (bool, string) {
	e := s.Eligibility

	if e.RequiresPregnant && !attrs.IsPregnant {
		return false, fmt.Sprintf("%s is only for pregnant women.", s.Name)
	}
	if e.RequiresChildren && !attrs.HasChildren {
		return false, fmt.Sprintf("%s requires having children in the eligible age group.", s.Name)
	}
	if e.MaxIncomeTier != "" && attrs.IncomeTier != "" {
		if incomeTierRank[attrs.IncomeTier] > incomeTierRank[e.MaxIncomeTier] {
			return false, fmt.Sprintf("%s is limited to families in the %s income group or below.", s.Name, e.MaxIncomeTier)
		}
	}
	// Age bounds apply to the applicant; for child schemes the eligible age
	// refers to the child, which the RequiresChildren check already covers.
	if !e.RequiresChildren && attrs.Age > 0 {
		if e.MinAge > 0 && attrs.Age < e.MinAge {
			return false, fmt.Sprintf("%s requires a minimum age of %d.", s.Name, e.MinAge)
		}
		if e.MaxAge > 0 && attrs.Age > e.MaxAge {
			return false, fmt.Sprintf("%s is limited to ages up to %d.", s.Name, e.MaxAge)
		}
	}

	return true, fmt.Sprintf("You appear to meet the conditions for %s.", s.Name)
}
