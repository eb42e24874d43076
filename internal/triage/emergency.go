package triage

import (
	"strings"

	"swasthya-sahayak/internal/lang"
)

// EmergencyNumbers is the fixed national helpline map attached to every
// positive detection and every critical risk assessment.
var EmergencyNumbers = map[string]string{
	"ambulance":      "108",
	"emergency":      "112",
	"women_helpline": "1091",
	"child_helpline": "1098",
}

// emergencyKeywords holds per-language phrase tables. Matching is
// case-insensitive substring over the whole message. Every supported
// language must have a non-empty table.
var emergencyKeywords = map[string][]string{
	lang.English: {
		"heart attack", "chest pain", "not breathing", "difficulty breathing",
		"unconscious", "severe bleeding", "heavy bleeding", "stroke", "seizure",
		"suicide", "poison", "snake bite", "accident", "drowning", "severe burn",
	},
	lang.Hindi: {
		"दिल का दौरा", "सीने में दर्द", "सांस नहीं", "सांस लेने में तकलीफ",
		"बेहोश", "खून बह रहा", "लकवा", "दौरा पड़", "ज़हर", "जहर",
		"सांप ने काटा", "आत्महत्या", "दुर्घटना",
	},
	lang.Marathi: {
		"हृदयविकाराचा झटका", "छातीत दुखत", "श्वास घेता येत नाही", "बेशुद्ध",
		"रक्तस्त्राव", "फिट आली", "विष", "साप चावला", "आत्महत्या", "अपघात",
	},
	lang.Punjabi: {
		"ਦਿਲ ਦਾ ਦੌਰਾ", "ਛਾਤੀ ਵਿੱਚ ਦਰਦ", "ਸਾਹ ਨਹੀਂ", "ਬੇਹੋਸ਼",
		"ਖੂਨ ਵਗ", "ਦੌਰਾ", "ਜ਼ਹਿਰ", "ਸੱਪ ਨੇ ਡੰਗਿਆ", "ਖੁਦਕੁਸ਼ੀ", "ਹਾਦਸਾ",
	},
}

// keywordScanOrder fixes the table iteration order so detection output is
// deterministic.
var keywordScanOrder = []string{lang.English, lang.Hindi, lang.Marathi, lang.Punjabi}

// EmergencyResponse is the localized response bundle attached to a positive
// detection.
type EmergencyResponse struct {
	Alert   string            `json:"alert"`
	Action  string            `json:"action"`
	Numbers map[string]string `json:"numbers"`
}

// Detection is the emergency classification result.
type Detection struct {
	IsEmergency      bool               `json:"is_emergency"`
	DetectedKeywords []string           `json:"detected_keywords"`
	Language         string             `json:"language,omitempty"`
	Response         *EmergencyResponse `json:"response,omitempty"`
}

var emergencyAlerts = map[string]struct{ alert, action string }{
	lang.English: {
		alert:  "This sounds like a medical emergency.",
		action: "Call 108 for an ambulance now, or go to the nearest hospital immediately.",
	},
	lang.Hindi: {
		alert:  "यह एक मेडिकल इमरजेंसी लगती है।",
		action: "तुरंत 108 पर एम्बुलेंस बुलाएं या नजदीकी अस्पताल जाएं।",
	},
	lang.Marathi: {
		alert:  "ही वैद्यकीय आणीबाणी वाटते.",
		action: "ताबडतोब 108 वर रुग्णवाहिका बोलवा किंवा जवळच्या रुग्णालयात जा.",
	},
	lang.Punjabi: {
		alert:  "ਇਹ ਇੱਕ ਮੈਡੀਕਲ ਐਮਰਜੈਂਸੀ ਲੱਗਦੀ ਹੈ।",
		action: "ਤੁਰੰਤ 108 ਤੇ ਐਂਬੂਲੈਂਸ ਬੁਲਾਓ ਜਾਂ ਨੇੜਲੇ ਹਸਪਤਾਲ ਜਾਓ।",
	},
}

// DetectEmergency scans the message against every language's keyword table.
// DetectedKeywords collects all matches across all languages; Language is the
// language of the last matching table in scan order.
func DetectEmergency(message string) Detection {
	lowered := strings.ToLower(message)

	detection := Detection{DetectedKeywords: []string{}}
	for _, code := range keywordScanOrder {
		for _, keyword := range emergencyKeywords[code] {
			if strings.Contains(lowered, strings.ToLower(keyword)) {
				detection.IsEmergency = true
				detection.DetectedKeywords = append(detection.DetectedKeywords, keyword)
				detection.Language = code
			}
		}
	}

	if detection.IsEmergency {
		phrases := emergencyAlerts[detection.Language]
		detection.Response = &EmergencyResponse{
			Alert:   phrases.alert,
			Action:  phrases.action,
			Numbers: EmergencyNumbers,
		}
	}
	return detection
}
