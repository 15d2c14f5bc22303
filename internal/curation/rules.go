package curation

import "github.com/placidasia/catalog-backend/internal/content"

// Context types accepted by the engine.
const (
	ContextCategory    = "category"
	ContextApplication = "application"
	ContextBrand       = "brand"
	ContextGuide       = "guide"
)

// relatedProductLimit caps the product strip on guide pages.
const relatedProductLimit = 6

// categoryExclusions lists category-name substrings that are never relevant
// to an application context, keyed by application slug.
var categoryExclusions = map[string][]string{
	"vibration-analysis":             {"microphones", "microphone accessories", "calibrators", "sound level meters", "environmental monitoring"},
	"environmental-noise-monitoring": {"vibration", "microphones", "calibrators"},
	"building-acoustics":             {"vibration", "environmental monitoring"},
}

// applicationPredicates holds the hand-authored per-application overrides.
// These encode merchandising decisions ("sonocat belongs on the sound source
// location page") that keyword matching cannot express.
var applicationPredicates = map[string]Predicate{
	"vibration-analysis": ForceExclude(AnyOf(
		CategoryContains("accessory", "cable", "case", "tripod"),
		TitleContains("cable", "case", "adaptor"),
	)),
	"sound-source-location": Chain(
		ForceExclude(SKUContains("origami", "pda5000", "pda-5000", "dlt-a", "pda3000", "pda-3000", "nor278")),
		ForceInclude(SKUContains("sonocat")),
	),
	"industrial-noise-control": ForceInclude(AnyOf(
		SKUContains("sl-02", "sl02"),
		AllOf(TitleContains("rion"), TitleContains("sound level")),
		TitleContains("angel"),
		TitleContains("dosimeter"),
	)),
	// Exhaustive allow-list: only these four products belong here.
	"material-testing": Only(SKUContains("nor1527", "nor1517a", "impedance-tube", "sonocat")),
	"room-field-acoustics": ForceInclude(AnyOf(
		SKUContains("i5", "i9", "i10"),
		AllOf(TitleContains("rion"), TitleContains("sound")),
		SKUContains("nor280", "nor282", "nor283"),
		SKUContains("origami"),
	)),
	"research-development": ForceInclude(AnyOf(
		AllOf(TitleContains("aps"), TitleContains("shaker")),
		TitleContains("noiseqc"),
		SKUContains("sonocat"),
	)),
	"quality-control": Chain(
		ForceExclude(SKUContains("acoustic-camera-to-measure-the-sound-intensity-dir")),
		ForceInclude(AnyOf(TitleContains("noiseqc"), SKUContains("nor848", "acam"))),
	),
	"construction-demolition": ForceInclude(TitleContains("spotnoise", "convergence", "norcloud", "noisecompass")),
	"secondary-acoustic-calibration": Chain(
		ForceInclude(AnyOf(
			SKUContains("nor1525", "nor-1525", "q-leap", "qleap"),
			TitleContains("nor1525", "q-leap", "secondary calibrat"),
		)),
		ForceInclude(AllOf(CategoryContains("calibrat"), TitleContains("acoustic", "sound"))),
	),
}

// applicationSorts: most application pages keep the accessor's title order;
// quality control promotes its flagship systems.
var applicationSorts = map[string]*SortSpec{
	"quality-control": {
		Priority: PriorityBuckets(
			TitleContains("noiseqc"),
			SKUContains("nor848"),
		),
		Tie: TieStable,
	},
}

// categoryRules are the bespoke per-category curations. Category pages come
// pre-scoped to one category, so these rules carry no keywords.
var categoryRules = map[string]Rule{
	"microphones": {
		Custom: Only(SupplierContains("placid")),
	},
	"calibrators": {
		// handheld calibrators only; the SPEKTRA systems live on the
		// secondary calibration application page
		Custom: ForceExclude(AllOf(
			SupplierContains("spektra"),
			TitleContains("system", "calibration set"),
		)),
	},
	"vibration-measurement": {
		Custom: Only(AnyOf(
			SupplierContains("mmf", "metra"),
			AllOf(SupplierContains("rion"), TitleContains("vibration")),
			SKUContains("cv-10", "cv10"),
			AllOf(
				SupplierContains("convergence"),
				AnyOf(TitleContains("vibration"), SKUContains("nsrt", "vsew")),
			),
		)),
	},
	"testing-equipment": {
		Custom: Only(AllOf(SupplierContains("aps"), TitleContains("shaker"))),
	},
	"sensors-data-acquisition": {
		Custom: Only(AnyOf(
			AllOf(
				SupplierContains("placid"),
				AnyOf(TitleContains("daq", "data acquisition"), SKUContains("pmp", "pnp", "pmnu")),
			),
			AllOf(SupplierContains("soundtec"), TitleContains("channel")),
		)),
	},
	"software": {
		Custom: ForceExclude(TitleContains("cadna", "insul", "navigation", "page not found")),
		Sort: &SortSpec{
			Priority: PriorityBuckets(
				TitleContains("soundplan"),
				TitleContains("sarooma"),
				TitleContains("dbsea"),
				TitleContains("sonarchitect"),
				TitleContains("norsonic"),
			),
			Tie: TieStable,
		},
	},
	"environmental-monitoring": {
		Custom: ForceExclude(SKUContains("noisedock")),
		Sort: &SortSpec{
			Priority: PriorityBuckets(
				SupplierContains("norsonic"),
				TitleContains("norcloud"),
				SupplierContains("spotnoise"),
				SupplierContains("convergence"),
			),
			Tie: TieTitle,
		},
	},
	"acoustic-cameras": {
		Custom: ForceExclude(SKUContains("pda-", "dlt-a")),
		Sort: &SortSpec{
			Priority: PriorityBuckets(
				SKUContains("nor848"),
				SKUContains("acam"),
				SKUContains("sonocat"),
			),
			Tie: TieTitle,
		},
	},
}

// brandRules order brand pages the way each manufacturer presents its own
// range: instruments before accessories, flagship lines first.
var brandRules = map[string]Rule{
	"norsonic": {
		Sort: &SortSpec{Priority: norsonicPriority, Tie: TieSKU},
	},
	"placid-instruments": {
		Sort: &SortSpec{Priority: placidPriority, Tie: TieStable},
	},
	"aps-dynamics": {
		Sort: &SortSpec{
			Priority: PriorityBuckets(TitleContains("shaker"), TitleContains("amplifier")),
			Tie:      TieSKU,
		},
	},
	"convergence-instruments": {
		Sort: &SortSpec{
			Priority: PriorityBuckets(SKUContains("acam"), SKUContains("nsrt"), SKUContains("vsew")),
			Tie:      TieSKU,
		},
	},
}

// norsonicPriority: instruments, then microphones/sensors, then software,
// accessories last. Unrecognized products rank with the microphones rather
// than the accessories.
func norsonicPriority(f Fields) int {
	switch {
	case CategoryContains("sound level", "measurement", "analyzer")(f):
		return 1
	case CategoryContains("microphone", "sensor")(f):
		return 2
	case CategoryContains("software")(f):
		return 3
	case CategoryContains("case", "cable", "tripod", "adaptor")(f) || TitleContains("cable", "case")(f):
		return 4
	default:
		return 2
	}
}

// placidPriority walks the Placid Instruments range from the impedance kit
// down to arrays.
func placidPriority(f Fields) int {
	switch {
	case TitleContains("impedance")(f):
		return 1
	case TitleContains("microphone")(f) && !TitleContains("set")(f):
		return 2
	case TitleContains("microphone")(f) && TitleContains("set")(f):
		return 3
	case TitleContains("sound power")(f):
		return 4
	case TitleContains("artificial head")(f):
		return 5
	case TitleContains("daq", "data acquisition")(f):
		return 6
	case TitleContains("iepe", "power supply")(f):
		return 7
	case TitleContains("array")(f):
		return 8
	default:
		return 9
	}
}

// buildRegistry assembles the full rule set from the static content tables.
// Called once at startup; the result is read-only.
func buildRegistry() map[string]Rule {
	rules := make(map[string]Rule)

	for _, app := range content.Applications {
		rules[ContextApplication+"/"+app.Slug] = Rule{
			Custom:             applicationPredicates[app.Slug],
			CategoryExclusions: categoryExclusions[app.Slug],
			Keywords:           app.Keywords,
			Sort:               applicationSorts[app.Slug],
		}
	}
	for slug, rule := range categoryRules {
		rules[ContextCategory+"/"+slug] = rule
	}
	for slug, rule := range brandRules {
		rules[ContextBrand+"/"+slug] = rule
	}
	for _, g := range content.Guides {
		rules[ContextGuide+"/"+g.Slug] = Rule{
			Keywords: g.RelatedKeywords,
			MatchAny: true,
			Limit:    relatedProductLimit,
		}
	}
	return rules
}
