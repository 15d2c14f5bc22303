package curation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placidasia/catalog-backend/internal/product"
)

func ptr(s string) *string { return &s }

func mk(sku, title, desc, category string) product.Product {
	return product.Product{
		SKU:           sku,
		TitleEN:       title,
		DescriptionEN: desc,
		Category:      ptr(category),
		Active:        true,
	}
}

func mkSupplier(sku, title, category, supplier string) product.Product {
	p := mk(sku, title, "", category)
	p.Supplier = ptr(supplier)
	return p
}

func skus(products []product.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.SKU
	}
	return out
}

func TestTieBreakIgnoresSKUCase(t *testing.T) {
	in := []product.Product{
		mk("NOR850", "Building Acoustics Server", "", "Software"),
		mk("nor145", "Nor145 Sound Analyser", "", "Sound Level Meters"),
		mk("Nor131", "Nor131 Sound Level Meter", "", "Sound Level Meters"),
	}
	spec := &SortSpec{Priority: func(Fields) int { return 0 }, Tie: TieSKU}
	sortProducts(in, spec)
	assert.Equal(t, []string{"Nor131", "nor145", "NOR850"}, skus(in))
}

func TestCurateIsDeterministic(t *testing.T) {
	e := NewEngine()
	in := []product.Product{
		mk("nor140", "Nor140 Sound Analyser", "precision sound insulation instrument for building acoustics", "Sound Level Meters"),
		mk("nor276", "Nor276 Tapping Machine", "impact sound source", "Sound Sources"),
		mk("vib-01", "Vibration Meter", "vibration", "Vibration"),
	}
	first := e.Curate(ContextApplication, "building-acoustics", in)
	for i := 0; i < 5; i++ {
		again := e.Curate(ContextApplication, "building-acoustics", in)
		require.Equal(t, skus(first), skus(again))
	}
}

func TestVibrationAnalysisDropsCablesAndCases(t *testing.T) {
	e := NewEngine()
	in := []product.Product{
		mk("CABLE-001", "Microphone Cable", "", "Accessories"),
		mk("vm-31", "Vibration Meter VM31", "human vibration exposure measurement with accelerometer support", "Vibration Meters"),
	}
	out := e.Curate(ContextApplication, "vibration-analysis", in)
	assert.NotContains(t, skus(out), "CABLE-001")
	assert.Contains(t, skus(out), "vm-31")
}

func TestSoundSourceLocationForceIncludesSonocat(t *testing.T) {
	e := NewEngine()
	in := []product.Product{
		mk("SONOCAT-X1", "Sonocat", "", "Uncategorized"),
		mk("pda5000", "PDA5000 Acoustic Camera", "acoustic camera with beamforming for sound source work", "Acoustic Cameras"),
	}
	out := e.Curate(ContextApplication, "sound-source-location", in)
	assert.Contains(t, skus(out), "SONOCAT-X1", "sonocat is force-included despite no keyword match")
	assert.NotContains(t, skus(out), "pda5000", "pda skus are excluded even when keywords match")
}

func TestMaterialTestingAllowListIsExhaustive(t *testing.T) {
	e := NewEngine()
	in := []product.Product{
		mk("NOR1527-A", "Nor1527 Building Acoustics System", "", "Systems"),
		mk("NOR848B", "Nor848B Acoustic Camera", "material testing with impedance tube and acoustic materials", "Acoustic Cameras"),
		mk("impedance-tube-50", "Impedance Tube Kit", "", "Material Testing"),
	}
	out := e.Curate(ContextApplication, "material-testing", in)
	assert.ElementsMatch(t, []string{"NOR1527-A", "impedance-tube-50"}, skus(out))
}

func TestForceIncludeBeatsCategoryExclusion(t *testing.T) {
	rule := Rule{
		Custom:             ForceInclude(SKUContains("keepme")),
		CategoryExclusions: []string{"vibration"},
		Keywords:           []string{"monitoring station"},
	}
	excludedCat := fieldsOf(mk("keepme-1", "Some Sensor", "", "Vibration Sensors"))
	assert.True(t, keep(rule, excludedCat), "force-include must override the category exclusion")

	droppedCat := fieldsOf(mk("other-1", "Monitoring Station", "", "Vibration Sensors"))
	assert.False(t, keep(rule, droppedCat), "without a force-include the exclusion applies")
}

func TestMatcherTierThresholds(t *testing.T) {
	// a keyword of length <=5 never triggers a STRONG category match
	f := fieldsOf(mk("x", "", "", "sound things"))
	assert.Equal(t, MatchNone, matchTier(f, []string{"sound"}))

	// length 17 keyword matches the category substring
	f = fieldsOf(mk("x", "", "", "Sound Level Meters"))
	assert.Equal(t, MatchStrong, matchTier(f, []string{"sound level meter"}))

	// a keyword of length <=6 never triggers a MEDIUM title match
	f = fieldsOf(mk("x", "Shaker Table", "", ""))
	assert.Equal(t, MatchNone, matchTier(f, []string{"shaker"}))
	f = fieldsOf(mk("x", "Vibration Shaker Table", "", ""))
	assert.Equal(t, MatchMedium, matchTier(f, []string{"vibration"}))

	// one description hit fails WEAK, two pass
	f = fieldsOf(mk("x", "", "supports reverberation analysis", ""))
	assert.Equal(t, MatchNone, matchTier(f, []string{"reverberation", "insulation"}))
	f = fieldsOf(mk("x", "", "supports reverberation and insulation analysis", ""))
	assert.Equal(t, MatchWeak, matchTier(f, []string{"reverberation", "insulation"}))
}

func TestEmptyCategoryNeverStrongMatches(t *testing.T) {
	p := mk("x", "", "", "")
	p.Category = nil
	assert.Equal(t, MatchNone, matchTier(fieldsOf(p), []string{"building acoustics"}))
}

func TestQualityControlPromotesNoiseQCThenNor848(t *testing.T) {
	e := NewEngine()
	in := []product.Product{
		mk("acam-64", "ACAM 64 Acoustic Camera", "", "Acoustic Cameras"),
		mk("nor848b", "Nor848B Acoustic Camera", "", "Acoustic Cameras"),
		mk("nqc-1", "NoiseQC Production Tester", "", "Systems"),
	}
	out := e.Curate(ContextApplication, "quality-control", in)
	require.Equal(t, []string{"nqc-1", "nor848b", "acam-64"}, skus(out))
}

func TestQualityControlDropsIntensityCamera(t *testing.T) {
	e := NewEngine()
	in := []product.Product{
		mk("acoustic-camera-to-measure-the-sound-intensity-dir", "Acoustic Camera", "", "Acoustic Cameras"),
	}
	out := e.Curate(ContextApplication, "quality-control", in)
	assert.Empty(t, out)
}

func TestSortIsIdempotent(t *testing.T) {
	e := NewEngine()
	in := []product.Product{
		mk("b-2", "Beta Analyzer", "quality control and production testing equipment", "Systems"),
		mk("a-1", "Alpha Analyzer", "quality control and production testing equipment", "Systems"),
	}
	once := e.Curate(ContextApplication, "quality-control", in)
	twice := e.Curate(ContextApplication, "quality-control", once)
	require.Equal(t, skus(once), skus(twice))
}

func TestEmptyResultIsValid(t *testing.T) {
	e := NewEngine()
	out := e.Curate(ContextApplication, "material-testing", []product.Product{
		mk("unrelated", "Unrelated Product", "", "Other"),
	})
	require.NotNil(t, out)
	assert.Len(t, out, 0)
}

func TestSoftwareCategoryOrderAndExclusions(t *testing.T) {
	e := NewEngine()
	in := []product.Product{
		mk("cadna-a", "CadnaA Noise Prediction", "", "Software"),
		mk("nor1051", "Norsonic Measurement Software", "", "Software"),
		mk("sonarch", "SONarchitect ISO", "", "Software"),
		mk("dbsea-1", "dBSea Underwater Noise", "", "Software"),
		mk("sarooma-1", "Sarooma Field App", "", "Software"),
		mk("splan-9", "SoundPLAN 9", "", "Software"),
		mk("err-1", "Page Not Found", "", "Software"),
	}
	out := e.Curate(ContextCategory, "software", in)
	require.Equal(t, []string{"splan-9", "sarooma-1", "dbsea-1", "sonarch", "nor1051"}, skus(out))
}

func TestAcousticCamerasCategoryRule(t *testing.T) {
	e := NewEngine()
	in := []product.Product{
		mk("pda-3000", "PDA3000", "", "Acoustic Cameras"),
		mk("sonocat-1", "Sonocat Probe", "", "Acoustic Cameras"),
		mk("acam-64", "ACAM 64", "", "Acoustic Cameras"),
		mk("nor848b", "Nor848B", "", "Acoustic Cameras"),
	}
	out := e.Curate(ContextCategory, "acoustic-cameras", in)
	require.Equal(t, []string{"nor848b", "acam-64", "sonocat-1"}, skus(out))
}

func TestMicrophonesCategoryKeepsOnlyPlacid(t *testing.T) {
	e := NewEngine()
	in := []product.Product{
		mkSupplier("pmp-40", "PMP40 Microphone", "Microphones", "Placid Instruments"),
		mkSupplier("nor1225", "Nor1225 Microphone", "Microphones", "Norsonic"),
	}
	out := e.Curate(ContextCategory, "microphones", in)
	require.Equal(t, []string{"pmp-40"}, skus(out))
}

func TestEnvironmentalMonitoringCategoryOrder(t *testing.T) {
	e := NewEngine()
	in := []product.Product{
		mkSupplier("nsrt-mk4", "NSRT mk4", "Environmental Monitoring", "Convergence Instruments"),
		mkSupplier("spot-1", "SpotNoise Monitor", "Environmental Monitoring", "SpotNoise"),
		mkSupplier("norcloud", "Norcloud Service", "Environmental Monitoring", "Placid Asia"),
		mkSupplier("noisedock-2", "NoiseDock", "Environmental Monitoring", "Norsonic"),
		mkSupplier("nor1545", "Nor1545 Outdoor Terminal", "Environmental Monitoring", "Norsonic"),
	}
	out := e.Curate(ContextCategory, "environmental-monitoring", in)
	require.Equal(t, []string{"nor1545", "norcloud", "spot-1", "nsrt-mk4"}, skus(out))
}

func TestNorsonicBrandSortBucketsInstrumentsFirst(t *testing.T) {
	e := NewEngine()
	in := []product.Product{
		mkSupplier("nor1290", "Microphone Cable 10m", "Cables", "Norsonic"),
		mkSupplier("nor1051", "Measurement Partner", "Software", "Norsonic"),
		mkSupplier("nor1225", "Nor1225 Microphone", "Microphones", "Norsonic"),
		mkSupplier("nor145", "Nor145 Analyser", "Sound Level Meters", "Norsonic"),
	}
	out := e.Curate(ContextBrand, "norsonic", in)
	require.Equal(t, []string{"nor145", "nor1225", "nor1051", "nor1290"}, skus(out))
}

func TestConvergenceBrandSortOrder(t *testing.T) {
	e := NewEngine()
	in := []product.Product{
		mkSupplier("vsew_mk2", "VSEW mk2 Vibration Sensor", "Vibration", "Convergence Instruments"),
		mkSupplier("nsrt_mk4", "NSRT mk4 Noise Sensor", "Environmental Monitoring", "Convergence Instruments"),
		mkSupplier("acam-64", "ACAM 64", "Acoustic Cameras", "Convergence Instruments"),
	}
	out := e.Curate(ContextBrand, "convergence-instruments", in)
	require.Equal(t, []string{"acam-64", "nsrt_mk4", "vsew_mk2"}, skus(out))
}

func TestPlacidBrandSortWalksTheRange(t *testing.T) {
	e := NewEngine()
	in := []product.Product{
		mkSupplier("pa-01", "Acoustic Array 16", "Arrays", "Placid Instruments"),
		mkSupplier("pd-01", "USB DAQ Module", "DAQ", "Placid Instruments"),
		mkSupplier("pm-set", "Microphone Set of 4", "Microphones", "Placid Instruments"),
		mkSupplier("pm-40", "Measurement Microphone", "Microphones", "Placid Instruments"),
		mkSupplier("pi-kit", "Impedance Tube Kit", "Material Testing", "Placid Instruments"),
	}
	out := e.Curate(ContextBrand, "placid-instruments", in)
	require.Equal(t, []string{"pi-kit", "pm-40", "pm-set", "pd-01", "pa-01"}, skus(out))
}

func TestGuideRuleMatchesAnywhereAndLimitsToSix(t *testing.T) {
	e := NewEngine()
	in := make([]product.Product, 0, 9)
	for _, sku := range []string{"g1", "g2", "g3", "g4", "g5", "g6", "g7", "g8"} {
		in = append(in, mk(sku, "Outdoor Noise Monitor "+sku, "", "Environmental"))
	}
	in = append(in, mk("unrelated", "Shaker", "", "Testing"))
	out := e.Curate(ContextGuide, "noise-monitoring-system", in)
	require.Len(t, out, 6)
	assert.NotContains(t, skus(out), "unrelated")
}

func TestUnknownContextPassesThroughWithDefaultSort(t *testing.T) {
	e := NewEngine()
	in := []product.Product{
		mk("z-9", "Zeta Meter", "", "Meters"),
		mk("a-1", "Alpha Meter", "", "Meters"),
	}
	out := e.Curate(ContextCategory, "some-ordinary-category", in)
	require.Equal(t, []string{"a-1", "z-9"}, skus(out))
}

func TestCurateDoesNotMutateInput(t *testing.T) {
	e := NewEngine()
	in := []product.Product{
		mk("b-2", "Beta", "", "Meters"),
		mk("a-1", "Alpha", "", "Meters"),
	}
	_ = e.Curate(ContextCategory, "some-ordinary-category", in)
	require.Equal(t, []string{"b-2", "a-1"}, skus(in))
}
