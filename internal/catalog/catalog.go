// Package catalog holds the static medical lookup tables: the disease
// database, body-system symptom categories, the symptom phrase dictionary
// and the word lists used by text extraction. All tables are loaded once at
// startup and treated as read-only for the process lifetime. Phrase data is
// canonical Turkish regardless of the display language.
package catalog

// Severity tiers used by DiseaseEntry and extracted symptoms.
const (
	SeverityLow    = "düşük"
	SeverityMedium = "orta"
	SeverityHigh   = "yüksek"
)

// DiseaseEntry is one row of the disease database.
type DiseaseEntry struct {
	Key         string
	Symptoms    []string
	RiskFactors []string
	Severity    string
	ICD10       string
}

// SystemCategory maps a body system to its associated symptom phrases.
type SystemCategory struct {
	Name     string
	Symptoms []string
}

// Catalog bundles all lookup tables consumed by the engine and the text
// scanner. Diseases and Systems keep table order: tie-breaks in diagnosis
// and primary-system selection depend on it.
type Catalog struct {
	Diseases []DiseaseEntry
	Systems  []SystemCategory

	// SymptomDictionary maps a canonical symptom key to its phrase
	// variants, most specific first.
	SymptomDictionary map[string][]string
	// SymptomKeys preserves dictionary iteration order.
	SymptomKeys []string

	NegationWords     []string
	AnatomicalRegions []string
	SeverityWords     map[string][]string // mild / moderate / severe
	TimingWords       map[string][]string
	TimingOrder       []string
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c := &Catalog{
		Diseases:          defaultDiseases(),
		Systems:           defaultSystems(),
		SymptomDictionary: map[string][]string{},
		NegationWords:     []string{"değil", "yok", "hiç", "asla", "olmayan", "bulunmayan"},
		AnatomicalRegions: []string{
			"baş", "boyun", "göğüs", "karın", "sırt", "bel", "kol", "bacak",
			"kalp", "akciğer", "mide", "karaciğer", "böbrek", "beyin",
		},
		SeverityWords: map[string][]string{
			"mild":     {"hafif", "az", "biraz", "ufak", "küçük"},
			"moderate": {"orta", "normal", "standart", "tipik"},
			"severe":   {"şiddetli", "çok", "aşırı", "dayanılmaz", "korkunç", "berbat"},
		},
		TimingWords: map[string][]string{
			"morning":      {"sabah", "sabahları", "sabahleyin"},
			"evening":      {"akşam", "akşamları", "akşamleyin"},
			"night":        {"gece", "geceleri", "gece vakti"},
			"continuous":   {"sürekli", "her zaman", "devamlı", "hiç geçmiyor"},
			"intermittent": {"ara sıra", "bazen", "zaman zaman", "arada bir"},
			"recent":       {"son zamanlarda", "yakın zamanda", "geçenlerde"},
			"chronic":      {"uzun süredir", "aylar", "yıllar", "kronik"},
		},
		TimingOrder: []string{"morning", "evening", "night", "continuous", "intermittent", "recent", "chronic"},
	}
	c.loadSymptomDictionary()
	return c
}

func defaultDiseases() []DiseaseEntry {
	return []DiseaseEntry{
		{
			Key:         "diabetes",
			Symptoms:    []string{"yorgunluk", "susuzluk", "sık idrara çıkma", "bulanık görme", "yavaş iyileşen yaralar"},
			RiskFactors: []string{"obezite", "aile geçmişi", "yaş", "hareketsizlik"},
			Severity:    SeverityMedium,
			ICD10:       "E11",
		},
		{
			Key:         "hipertansiyon",
			Symptoms:    []string{"baş ağrısı", "baş dönmesi", "nefes darlığı", "göğüs ağrısı"},
			RiskFactors: []string{"yaş", "obezite", "tuz tüketimi", "stres", "sigara"},
			Severity:    SeverityMedium,
			ICD10:       "I10",
		},
		{
			Key:         "kalp_hastaligi",
			Symptoms:    []string{"göğüs ağrısı", "nefes darlığı", "yorgunluk", "çarpıntı", "bacak şişmesi"},
			RiskFactors: []string{"yaş", "sigara", "yüksek kolesterol", "hipertansiyon", "diabetes"},
			Severity:    SeverityHigh,
			ICD10:       "I25",
		},
		{
			Key:         "depresyon",
			Symptoms:    []string{"üzüntü", "umutsuzluk", "enerji eksikliği", "uyku bozukluğu", "iştahsızlık"},
			RiskFactors: []string{"stres", "aile geçmişi", "travma", "kronik hastalık"},
			Severity:    SeverityMedium,
			ICD10:       "F32",
		},
		{
			Key:         "migren",
			Symptoms:    []string{"şiddetli baş ağrısı", "bulantı", "ışık hassasiyeti", "ses hassasiyeti"},
			RiskFactors: []string{"stres", "hormonal değişiklik", "uyku bozukluğu", "aile geçmişi"},
			Severity:    SeverityLow,
			ICD10:       "G43",
		},
		{
			Key:         "anksiyete",
			Symptoms:    []string{"endişe", "huzursuzluk", "çarpıntı", "terleme", "nefes darlığı"},
			RiskFactors: []string{"stres", "travma", "aile geçmişi", "kafein"},
			Severity:    SeverityMedium,
			ICD10:       "F41",
		},
	}
}

func defaultSystems() []SystemCategory {
	return []SystemCategory{
		{Name: "kardiyovasküler", Symptoms: []string{"göğüs ağrısı", "nefes darlığı", "çarpıntı", "baş dönmesi", "yorgunluk"}},
		{Name: "metabolik", Symptoms: []string{"yorgunluk", "susuzluk", "kilo kaybı", "kilo alımı", "iştah değişikliği"}},
		{Name: "nörolojik", Symptoms: []string{"baş ağrısı", "baş dönmesi", "uyuşma", "karıncalanma", "koordinasyon bozukluğu"}},
		{Name: "psikiyatrik", Symptoms: []string{"üzüntü", "endişe", "uyku bozukluğu", "konsantrasyon sorunu", "ruh hali değişikliği"}},
		{Name: "gastrointestinal", Symptoms: []string{"karın ağrısı", "bulantı", "kusma", "ishal", "kabızlık"}},
		{Name: "solunum", Symptoms: []string{"nefes darlığı", "öksürük", "göğüs ağrısı", "hırıltı", "balgam"}},
	}
}

// Disease returns the entry for key, or nil when the key is unknown.
func (c *Catalog) Disease(key string) *DiseaseEntry {
	for i := range c.Diseases {
		if c.Diseases[i].Key == key {
			return &c.Diseases[i]
		}
	}
	return nil
}

func (c *Catalog) addSymptom(key string, variants ...string) {
	c.SymptomDictionary[key] = variants
	c.SymptomKeys = append(c.SymptomKeys, key)
}

func (c *Catalog) loadSymptomDictionary() {
	// Genel
	c.addSymptom("ateş", "ateş", "yüksek ateş", "humma", "sıcaklık")
	c.addSymptom("yorgunluk", "yorgunluk", "bitkinlik", "halsizlik", "güçsüzlük", "enerji eksikliği")
	c.addSymptom("baş_ağrısı", "baş ağrısı", "başım ağrıyor", "migren", "baş zonklaması")
	c.addSymptom("baş_dönmesi", "baş dönmesi", "sersemlik", "dengesizlik", "vertigo")

	// Kardiyovasküler
	c.addSymptom("göğüs_ağrısı", "göğüs ağrısı", "göğsümde ağrı", "kalp ağrısı", "angina")
	c.addSymptom("nefes_darlığı", "nefes darlığı", "nefes alamıyorum", "dispne", "soluk darlığı")
	c.addSymptom("çarpıntı", "çarpıntı", "kalp çarpıntısı", "taşikardi", "kalp hızlı atıyor")

	// Gastrointestinal
	c.addSymptom("karın_ağrısı", "karın ağrısı", "mide ağrısı", "karın krampları", "abdominal ağrı")
	c.addSymptom("bulantı", "bulantı", "mide bulantısı", "kusma hissi")
	c.addSymptom("kusma", "kusma", "kusmak", "istifra")
	c.addSymptom("ishal", "ishal", "diyare", "sulu dışkı")
	c.addSymptom("kabızlık", "kabızlık", "konstipasyon", "dışkı yapamama")

	// Nörolojik
	c.addSymptom("uyuşma", "uyuşma", "his kaybı", "parestezi", "karıncalanma")
	c.addSymptom("titreme", "titreme", "tremor", "sarsıntı")
	c.addSymptom("konvülsiyon", "konvülsiyon", "nöbet", "kasılma", "epilepsi")

	// Psikiyatrik
	c.addSymptom("depresyon", "depresyon", "üzüntü", "mutsuzluk", "çökkünlük", "melankolik")
	c.addSymptom("anksiyete", "anksiyete", "endişe", "kaygı", "gerginlik", "stres")
	c.addSymptom("uykusuzluk", "uykusuzluk", "insomnia", "uyuyamama", "uyku bozukluğu")

	// Solunum
	c.addSymptom("öksürük", "öksürük", "öksürme", "kuru öksürük", "balgamlı öksürük")
	c.addSymptom("balgam", "balgam", "köpük", "ekspektorasyon")
	c.addSymptom("hırıltı", "hırıltı", "wheezing", "ıslık sesi")

	// Kas-iskelet
	c.addSymptom("kas_ağrısı", "kas ağrısı", "miyalji", "kas krampları", "kas gerginliği")
	c.addSymptom("eklem_ağrısı", "eklem ağrısı", "artralji", "romatizma", "artrit")
	c.addSymptom("sırt_ağrısı", "sırt ağrısı", "bel ağrısı", "lombalji")

	// Deri
	c.addSymptom("kaşıntı", "kaşıntı", "kaşınma", "pruritus")
	c.addSymptom("döküntü", "döküntü", "kızarıklık", "rash", "egzama")
	c.addSymptom("şişlik", "şişlik", "ödem", "şişme", "büyüme")

	// Göz-kulak-burun-boğaz
	c.addSymptom("görme_bozukluğu", "görme bozukluğu", "bulanık görme", "çift görme")
	c.addSymptom("işitme_kaybı", "işitme kaybı", "sağırlık", "kulak tıkanıklığı")
	c.addSymptom("boğaz_ağrısı", "boğaz ağrısı", "yutma güçlüğü", "farenjit")
	c.addSymptom("burun_akıntısı", "burun akıntısı", "rinit", "nezle")

	// Ürogenital
	c.addSymptom("idrar_yakınması", "idrar yakınması", "dizüri", "yanma", "sistit")
	c.addSymptom("sık_idrara_çıkma", "sık idrara çıkma", "poliüri", "sık tuvalete gitme")

	// Metabolik
	c.addSymptom("susuzluk", "susuzluk", "ağız kuruluğu", "polidipsi")
	c.addSymptom("iştah_kaybı", "iştah kaybı", "anoreksiya", "yemek istememe")
	c.addSymptom("kilo_kaybı", "kilo kaybı", "zayıflama", "kilo verme")
	c.addSymptom("kilo_alımı", "kilo alımı", "şişmanlama", "kilo artışı")
}
