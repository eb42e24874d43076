package knowledge

import (
	"context"
	"fmt"
)

// SeedDocuments is the multilingual health corpus loaded at startup. The
// corpus lives only for the process lifetime of the index.
func SeedDocuments() []Document {
	return []Document{
		{
			ID:      "kb-malaria-en",
			Content: "Malaria is spread by mosquito bites, mainly at night. Symptoms include fever with chills, sweating, headache and body ache. Sleep under insecticide-treated bed nets, remove standing water near the house, and visit the nearest health facility for a blood test if fever persists beyond two days.",
			Metadata: Metadata{Title: "Malaria prevention and symptoms", Category: "disease", Language: "en", Source: "NVBDCP guidelines", Tags: []string{"malaria", "mosquito", "fever"}},
		},
		{
			ID:      "kb-dengue-en",
			Content: "Dengue fever is caused by day-biting Aedes mosquitoes that breed in clean stagnant water. Watch for high fever, severe headache, pain behind the eyes, joint pain and rash. Danger signs are bleeding gums, vomiting and severe stomach pain. Do not take aspirin or ibuprofen; use paracetamol and drink plenty of fluids.",
			Metadata: Metadata{Title: "Dengue warning signs", Category: "disease", Language: "en", Source: "NVBDCP guidelines", Tags: []string{"dengue", "mosquito", "fever"}},
		},
		{
			ID:      "kb-vaccination-en",
			Content: "The universal immunization schedule protects children against tuberculosis, polio, diphtheria, pertussis, tetanus, hepatitis B and measles. BCG and the first hepatitis B dose are given at birth, pentavalent doses at 6, 10 and 14 weeks, and the measles-rubella vaccine at 9 months. Vaccinations are free at government facilities and anganwadi centers.",
			Metadata: Metadata{Title: "Child vaccination schedule", Category: "immunization", Language: "en", Source: "Universal Immunization Programme", Tags: []string{"vaccine", "children", "immunization"}},
		},
		{
			ID:      "kb-anc-en",
			Content: "Every pregnant woman needs at least four antenatal checkups. The first should happen within twelve weeks of pregnancy. Checkups include weight and blood pressure measurement, blood and urine tests, tetanus injection and iron-folic acid tablets. Institutional delivery is strongly advised and covered by government schemes.",
			Metadata: Metadata{Title: "Antenatal care basics", Category: "maternal", Language: "en", Source: "RCH programme", Tags: []string{"pregnancy", "anc", "checkup"}},
		},
		{
			ID:      "kb-diarrhea-en",
			Content: "For diarrhea in children, start oral rehydration solution immediately and continue feeding. Give zinc tablets for fourteen days. Take the child to a facility if there is blood in the stool, sunken eyes, lethargy, or the child cannot drink. Handwashing with soap prevents most episodes.",
			Metadata: Metadata{Title: "Managing childhood diarrhea", Category: "child-health", Language: "en", Source: "IMNCI guidelines", Tags: []string{"diarrhea", "ors", "children"}},
		},
		{
			ID:      "kb-nutrition-en",
			Content: "Children under five should be weighed monthly at the anganwadi center. A child who is not gaining weight needs supplementary nutrition and a health checkup. Exclusive breastfeeding is recommended for the first six months, with complementary feeding starting at six months alongside continued breastfeeding.",
			Metadata: Metadata{Title: "Child nutrition and growth monitoring", Category: "nutrition", Language: "en", Source: "ICDS guidelines", Tags: []string{"nutrition", "breastfeeding", "anganwadi"}},
		},
		{
			ID:      "kb-malaria-hi",
			Content: "मलेरिया मच्छर के काटने से फैलता है। बुखार, ठंड लगना, पसीना आना और सिरदर्द इसके लक्षण हैं। मच्छरदानी में सोएं, घर के पास पानी जमा न होने दें, और दो दिन से अधिक बुखार रहने पर नजदीकी स्वास्थ्य केंद्र पर खून की जांच कराएं।",
			Metadata: Metadata{Title: "मलेरिया से बचाव", Category: "disease", Language: "hi", Source: "NVBDCP guidelines", Tags: []string{"malaria", "mosquito", "fever"}},
		},
		{
			ID:      "kb-anc-hi",
			Content: "हर गर्भवती महिला को कम से कम चार प्रसव पूर्व जांच करानी चाहिए। पहली जांच गर्भावस्था के बारह सप्ताह के भीतर होनी चाहिए। जांच में वजन, रक्तचाप, खून और पेशाब की जांच, टिटनेस का टीका और आयरन की गोलियां शामिल हैं। संस्थागत प्रसव की सलाह दी जाती है।",
			Metadata: Metadata{Title: "गर्भावस्था में देखभाल", Category: "maternal", Language: "hi", Source: "RCH programme", Tags: []string{"pregnancy", "anc"}},
		},
		{
			ID:      "kb-vaccination-mr",
			Content: "लसीकरण वेळापत्रकानुसार बाळाला जन्मतः बीसीजी आणि हिपॅटायटीस बी ची पहिली मात्रा दिली जाते. सहा, दहा आणि चौदा आठवड्यांनी पेंटाव्हॅलेंट लस आणि नऊ महिन्यांनी गोवर-रुबेला लस दिली जाते. सरकारी दवाखान्यात आणि अंगणवाडीत लसीकरण मोफत आहे.",
			Metadata: Metadata{Title: "बाल लसीकरण वेळापत्रक", Category: "immunization", Language: "mr", Source: "Universal Immunization Programme", Tags: []string{"vaccine", "children"}},
		},
		{
			ID:      "kb-anc-pa",
			Content: "ਹਰ ਗਰਭਵਤੀ ਔਰਤ ਨੂੰ ਘੱਟੋ-ਘੱਟ ਚਾਰ ਜਣੇਪੇ ਤੋਂ ਪਹਿਲਾਂ ਜਾਂਚਾਂ ਕਰਵਾਉਣੀਆਂ ਚਾਹੀਦੀਆਂ ਹਨ। ਪਹਿਲੀ ਜਾਂਚ ਗਰਭ ਅਵਸਥਾ ਦੇ ਬਾਰਾਂ ਹਫ਼ਤਿਆਂ ਦੇ ਅੰਦਰ ਹੋਣੀ ਚਾਹੀਦੀ ਹੈ। ਜਾਂਚ ਵਿੱਚ ਭਾਰ, ਬਲੱਡ ਪ੍ਰੈਸ਼ਰ, ਖੂਨ ਅਤੇ ਪਿਸ਼ਾਬ ਦੀ ਜਾਂਚ ਸ਼ਾਮਲ ਹੈ।",
			Metadata: Metadata{Title: "ਗਰਭ ਅਵਸਥਾ ਦੀ ਦੇਖਭਾਲ", Category: "maternal", Language: "pa", Source: "RCH programme", Tags: []string{"pregnancy", "anc"}},
		},
		{
			ID:      "kb-heatstroke-en",
			Content: "During summer months avoid going out between noon and 3 pm, drink water frequently even without thirst, and wear light cotton clothing. Signs of heat stroke are very high body temperature, dry skin, confusion and fainting. Move the person to shade, cool with wet cloth, and rush to a hospital.",
			Metadata: Metadata{Title: "Heat stroke first aid", Category: "seasonal", Language: "en", Source: "NDMA heat action plan", Tags: []string{"summer", "heat", "first-aid"}},
		},
		{
			ID:      "kb-tb-en",
			Content: "A cough lasting more than two weeks, evening fever, night sweats and weight loss may indicate tuberculosis. Sputum testing is free at designated microscopy centers. TB treatment is free under the national programme and must be completed fully; stopping midway breeds drug resistance.",
			Metadata: Metadata{Title: "Tuberculosis symptoms and testing", Category: "disease", Language: "en", Source: "NTEP guidelines", Tags: []string{"tb", "cough", "fever"}},
		},
	}
}

// Seed embeds and loads the corpus in one batched call.
func Seed(ctx context.Context, idx *Index) error {
	docs := SeedDocuments()
	if err := idx.AddBatch(ctx, docs); err != nil {
		return fmt.Errorf("seed knowledge corpus: %w", err)
	}
	return nil
}
