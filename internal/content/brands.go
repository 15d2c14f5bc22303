package content

import "strings"

// Brand is the editorial profile shown on a brand page.
type Brand struct {
	Slug             string `json:"slug"`
	DescriptionEN    string `json:"description_en"`
	DescriptionTH    string `json:"description_th"`
	Website          string `json:"website,omitempty"`
	SpecializationEN string `json:"specialization_en"`
	SpecializationTH string `json:"specialization_th"`
}

var Brands = map[string]Brand{
	"norsonic": {
		Slug:             "norsonic",
		DescriptionEN:    "World-leading manufacturer of precision sound and vibration measurement instruments.",
		DescriptionTH:    "ผู้ผลิตเครื่องมือวัดเสียงและการสั่นสะเทือนชั้นนำของโลก",
		Website:          "https://www.norsonic.com",
		SpecializationEN: "Sound Level Meters, Vibration Meters, Building Acoustics",
		SpecializationTH: "เครื่องวัดระดับเสียง เครื่องวัดการสั่นสะเทือน อะคูสติกอาคาร",
	},
	"soundtec": {
		Slug:             "soundtec",
		DescriptionEN:    "European leader in acoustic testing equipment and sound insulation measurement systems.",
		DescriptionTH:    "ผู้นำในยุโรปด้านอุปกรณ์ทดสอบอะคูสติกและระบบวัดฉนวนกันเสียง",
		Website:          "https://www.soundtec.eu",
		SpecializationEN: "Building Acoustics, Sound Insulation, Impact Sound Testing",
		SpecializationTH: "อะคูสติกอาคาร ฉนวนกันเสียง การทดสอบเสียงกระแทก",
	},
	"spektra-dresden": {
		Slug:             "spektra-dresden",
		DescriptionEN:    "German manufacturer of professional vibration measurement and modal analysis systems.",
		DescriptionTH:    "ผู้ผลิตเยอรมันของระบบวัดการสั่นสะเทือนและการวิเคราะห์โมดอลระดับมืออาชีพ",
		Website:          "https://www.spektra-dresden.com",
		SpecializationEN: "Vibration Analysis, Modal Testing, Structural Dynamics",
		SpecializationTH: "การวิเคราะห์การสั่นสะเทือน การทดสอบโมดอล พลศาสตร์โครงสร้าง",
	},
	"placid-instruments": {
		Slug:             "placid-instruments",
		DescriptionEN:    "Innovative developers of acoustic impedance tubes and sound testing equipment.",
		DescriptionTH:    "ผู้พัฒนาท่อวัดอิมพีแดนซ์อะคูสติกและอุปกรณ์ทดสอบเสียงที่เป็นนวัตกรรม",
		Website:          "https://www.placidinstruments.com",
		SpecializationEN: "Impedance Tubes, Material Testing, Absorption Measurement",
		SpecializationTH: "ท่อวัดอิมพีแดนซ์ การทดสอบวัสดุ การวัดการดูดซับเสียง",
	},
	"aps-dynamics": {
		Slug:             "aps-dynamics",
		DescriptionEN:    "Advanced provider of electro-dynamic shakers and vibration test systems.",
		DescriptionTH:    "ผู้ให้บริการขั้นสูงของเครื่องเขย่าแบบไฟฟ้าและระบบทดสอบการสั่นสะเทือน",
		Website:          "https://www.apsdynamics.com",
		SpecializationEN: "Vibration Shakers, Test Systems, Environmental Testing",
		SpecializationTH: "เครื่องเขย่าสั่นสะเทือน ระบบทดสอบ การทดสอบสิ่งแวดล้อม",
	},
	"profound": {
		Slug:             "profound",
		DescriptionEN:    "Dutch specialists in environmental noise monitoring and smart city solutions.",
		DescriptionTH:    "ผู้เชี่ยวชาญชาวดัตช์ในการตรวจสอบเสียงรบกวนสิ่งแวดล้อมและโซลูชันเมืองอัจฉริยะ",
		Website:          "https://www.profound.nl",
		SpecializationEN: "Noise Monitoring, Smart City, Environmental Compliance",
		SpecializationTH: "การตรวจสอบเสียงรบกวน เมืองอัจฉริยะ การปฏิบัติตามข้อกำหนดสิ่งแวดล้อม",
	},
	"convergence-instruments": {
		Slug:             "convergence-instruments",
		DescriptionEN:    "Canadian innovators in audio and acoustic testing instruments.",
		DescriptionTH:    "ผู้สร้างนวัตกรรมชาวแคนาดาในเครื่องมือทดสอบเสียงและอะคูสติก",
		Website:          "https://www.convergenceinstruments.com",
		SpecializationEN: "Audio Testing, Acoustic Measurement, Signal Analysis",
		SpecializationTH: "การทดสอบเสียง การวัดอะคูสติก การวิเคราะห์สัญญาณ",
	},
	"bedrock-elite": {
		Slug:             "bedrock-elite",
		DescriptionEN:    "Specialized manufacturers of precision acoustic and vibration sensors.",
		DescriptionTH:    "ผู้ผลิตเฉพาะทางของเซ็นเซอร์อะคูสติกและการสั่นสะเทือนที่แม่นยำ",
		Website:          "https://www.bedrock-elite.com",
		SpecializationEN: "Sensors, Transducers, Precision Measurement",
		SpecializationTH: "เซ็นเซอร์ ตัวแปลงสัญญาณ การวัดที่แม่นยำ",
	},
	"soundplan": {
		Slug:             "soundplan",
		DescriptionEN:    "Leading software developers for noise prediction and environmental acoustics.",
		DescriptionTH:    "ผู้พัฒนาซอฟต์แวร์ชั้นนำสำหรับการทำนายเสียงรบกวนและอะคูสติกสิ่งแวดล้อม",
		Website:          "https://www.soundplan.eu",
		SpecializationEN: "Noise Prediction, Mapping Software, Environmental Acoustics",
		SpecializationTH: "การทำนายเสียงรบกวน ซอฟต์แวร์แผนที่เสียง อะคูสติกสิ่งแวดล้อม",
	},
	"sarooma": {
		Slug:             "sarooma",
		DescriptionEN:    "UK-based specialists in portable acoustic testing equipment.",
		DescriptionTH:    "ผู้เชี่ยวชาญในสหราชอาณาจักรด้านอุปกรณ์ทดสอบอะคูสติกแบบพกพา",
		Website:          "https://www.sarooma.com",
		SpecializationEN: "Portable Equipment, Field Testing, Building Acoustics",
		SpecializationTH: "อุปกรณ์พกพา การทดสอบภาคสนาม อะคูสติกอาคาร",
	},
	"dbsea": {
		Slug:             "dbsea",
		DescriptionEN:    "Marine and underwater acoustic measurement specialists.",
		DescriptionTH:    "ผู้เชี่ยวชาญด้านการวัดเสียงใต้น้ำและทางทะเล",
		Website:          "https://www.dbsea.co.uk",
		SpecializationEN: "Underwater Acoustics, Marine Monitoring, Hydrophones",
		SpecializationTH: "อะคูสติกใต้น้ำ การตรวจสอบทางทะเล ไฮโดรโฟน",
	},
	"femtools": {
		Slug:             "femtools",
		DescriptionEN:    "Advanced finite element model correlation and updating software.",
		DescriptionTH:    "ซอฟต์แวร์ขั้นสูงสำหรับความสัมพันธ์และการอัปเดตแบบจำลองไฟไนต์เอลิเมนต์",
		Website:          "https://www.femtools.com",
		SpecializationEN: "FEM Analysis, Model Updating, Structural Simulation",
		SpecializationTH: "การวิเคราะห์ FEM การอัปเดตโมเดล การจำลองโครงสร้าง",
	},
	"soundinsight": {
		Slug:             "soundinsight",
		DescriptionEN:    "Acoustic consultancy and measurement service providers.",
		DescriptionTH:    "ผู้ให้บริการที่ปรึกษาและการวัดอะคูสติก",
		Website:          "https://www.soundinsight.nl",
		SpecializationEN: "Acoustic Consulting, Measurement Services, Analysis",
		SpecializationTH: "ที่ปรึกษาอะคูสติก บริการวัด การวิเคราะห์",
	},
	"sound-of-numbers": {
		Slug:             "sound-of-numbers",
		DescriptionEN:    "Innovative acoustic data analysis and visualization software.",
		DescriptionTH:    "ซอฟต์แวร์การวิเคราะห์และแสดงภาพข้อมูลอะคูสติกที่เป็นนวัตกรรม",
		Website:          "https://www.soundofnumbers.net",
		SpecializationEN: "Data Analysis, Visualization, Acoustic Software",
		SpecializationTH: "การวิเคราะห์ข้อมูล การแสดงภาพ ซอฟต์แวร์อะคูสติก",
	},
	"spotnoise": {
		Slug:             "spotnoise",
		DescriptionEN:    "Real-time noise monitoring and compliance tracking systems.",
		DescriptionTH:    "ระบบตรวจสอบเสียงรบกวนและติดตามการปฏิบัติตามแบบเรียลไทม์",
		Website:          "https://www.spotnoise.com",
		SpecializationEN: "Real-time Monitoring, Compliance, Noise Tracking",
		SpecializationTH: "การตรวจสอบแบบเรียลไทม์ การปฏิบัติตาม การติดตามเสียงรบกวน",
	},
}

// slugToSupplier maps brand URL slugs onto the exact supplier strings stored
// on product rows. Casing matters: products are filtered by equality on the
// supplier column.
var slugToSupplier = map[string]string{
	"norsonic":                "Norsonic",
	"soundtec":                "Soundtec",
	"spektra-dresden":         "SPEKTRA Dresden",
	"placid-instruments":      "Placid Instruments",
	"aps-dynamics":            "APS Dynamics",
	"profound":                "Profound",
	"convergence-instruments": "Convergence Instruments",
	"bedrock-elite":           "Bedrock Elite",
	"soundplan":               "SoundPLAN",
	"sarooma":                 "Sarooma",
	"dbsea":                   "dBSea",
	"femtools":                "FEMtools",
	"soundinsight":            "Soundinsight",
	"sound-of-numbers":        "Sound of Numbers",
	"spotnoise":               "SpotNoise",
}

// SupplierForSlug resolves a brand slug to its supplier name. Slugs outside
// the map fall back to title-casing each hyphenated word, so new suppliers
// get a working page without a code change.
func SupplierForSlug(slug string) string {
	if name, ok := slugToSupplier[slug]; ok {
		return name
	}
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Redirect payloads for brand slugs that are not really brands.
const (
	// BrandSlugSONarchitect is a product by Sound of Numbers, not a brand.
	BrandSlugSONarchitect    = "sonarchitect"
	BrandSlugSONarchitectAlt = "son-architect"
	// BrandSlugRion is requested often but not carried in the catalog.
	BrandSlugRion = "rion"
)
