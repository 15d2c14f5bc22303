package content

// Guide is one buyer-guide article. RelatedKeywords drives the "related
// products" strip on the guide page.
type Guide struct {
	Slug            string   `json:"slug"`
	Title           string   `json:"title"`
	TitleTH         string   `json:"title_th"`
	ReadTime        string   `json:"read_time"`
	Level           string   `json:"level"`
	LastUpdated     string   `json:"last_updated"`
	IntroEN         string   `json:"intro_en"`
	RelatedKeywords []string `json:"related_keywords"`
}

var Guides = []Guide{
	{
		Slug:            "building-acoustics-testing-kit",
		Title:           "Building Acoustics Testing Kit - Complete Buyer Guide",
		TitleTH:         "คู่มือการเลือกซื้อชุดทดสอบอะคูสติกอาคาร",
		ReadTime:        "10 min read",
		Level:           "Intermediate",
		LastUpdated:     "November 2025",
		IntroEN:         "Building acoustics testing is essential for verifying sound insulation performance, room acoustics quality, and compliance with building regulations. This comprehensive guide will help you select the right equipment for your building acoustics measurements.",
		RelatedKeywords: []string{"sound level meter", "building acoustics", "sound source", "tapping"},
	},
	{
		Slug:            "noise-monitoring-system",
		Title:           "Noise Monitoring System - Comprehensive Selection Guide",
		TitleTH:         "คู่มือการเลือกระบบตรวจสอบเสียงรบกวน",
		ReadTime:        "12 min read",
		Level:           "Beginner to Intermediate",
		LastUpdated:     "November 2025",
		IntroEN:         "Environmental noise monitoring is critical for ensuring compliance with regulations, protecting communities, and managing noise impact from construction, industrial, and transportation sources. This guide will help you select an appropriate noise monitoring system.",
		RelatedKeywords: []string{"noise monitor", "environmental", "outdoor", "terminal"},
	},
	{
		Slug:            "sound-intensity-measurement",
		Title:           "Sound Intensity Measurement - Complete Guide",
		TitleTH:         "คู่มือการวัดความเข้มเสียง",
		ReadTime:        "15 min read",
		Level:           "Advanced",
		LastUpdated:     "November 2025",
		IntroEN:         "Sound intensity measurement is a powerful technique that allows engineers and acousticians to measure both the magnitude and direction of sound energy flow. Unlike traditional sound pressure measurements, intensity probes can determine sound power in situ, identify noise sources in complex environments, and work effectively even in the presence of high background noise.",
		RelatedKeywords: []string{"intensity probe", "microphone", "analyzer", "vibration"},
	},
	{
		Slug:            "vibration-measurement-equipment",
		Title:           "Vibration Measurement Equipment - Expert Buyer Guide",
		TitleTH:         "คู่มือการเลือกซื้ออุปกรณ์วัดการสั่นสะเทือน",
		ReadTime:        "8 min read",
		Level:           "Intermediate",
		LastUpdated:     "November 2025",
		IntroEN:         "Vibration measurement is essential for machinery condition monitoring, structural analysis, and environmental compliance. This guide will help you select the right vibration measurement equipment for your specific needs.",
		RelatedKeywords: []string{"vibration", "mmf", "rion", "convergence"},
	},
	{
		Slug:            "sound-level-meter-selection",
		Title:           "Sound Level Meter Selection - Complete Guide",
		TitleTH:         "คู่มือการเลือกเครื่องวัดระดับเสียง",
		ReadTime:        "12 min read",
		Level:           "Beginner to Advanced",
		LastUpdated:     "November 2025",
		IntroEN:         "Choosing the right sound level meter is crucial for accurate acoustic measurements. This comprehensive guide covers everything from basic Class 2 meters to advanced Class 1 precision instruments, helping you make an informed decision based on your specific requirements.",
		RelatedKeywords: []string{"nor145", "nor150", "i9", "i10", "i5", "rion", "sl-02"},
	},
	{
		Slug:            "acoustic-camera-systems",
		Title:           "Acoustic Camera Systems - Buying Guide",
		TitleTH:         "คู่มือการซื้อระบบกล้องอะคูสติก",
		ReadTime:        "10 min read",
		Level:           "Advanced",
		LastUpdated:     "November 2025",
		IntroEN:         "Acoustic cameras visualize sound sources in real-time, making them invaluable for noise source identification, product development, and quality control. This guide will help you understand the technology and choose the right system for your applications.",
		RelatedKeywords: []string{"nor848", "acam", "sonocat"},
	},
	{
		Slug:            "material-testing-equipment",
		Title:           "Acoustic Material Testing Equipment - Selection Guide",
		TitleTH:         "คู่มือการเลือกอุปกรณ์ทดสอบวัสดุอะคูสติก",
		ReadTime:        "9 min read",
		Level:           "Intermediate to Advanced",
		LastUpdated:     "November 2025",
		IntroEN:         "Acoustic material testing equipment is essential for measuring sound absorption, transmission loss, and other acoustic properties of building materials. This guide covers the key equipment types, standards, and selection criteria for material characterization.",
		RelatedKeywords: []string{"nor1527", "nor1517", "impedance", "sonocat", "tube"},
	},
}

// GuideBySlug returns the guide for one slug.
func GuideBySlug(slug string) (Guide, bool) {
	for _, g := range Guides {
		if g.Slug == slug {
			return g, true
		}
	}
	return Guide{}, false
}
