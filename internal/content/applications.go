package content

// Application is the editorial metadata behind one application landing page.
// The keyword list doubles as the curation input for that page's product grid,
// so the lists here are product-visibility data, not just SEO copy.
type Application struct {
	Slug          string   `json:"slug"`
	TitleEN       string   `json:"title_en"`
	TitleTH       string   `json:"title_th"`
	DescriptionEN string   `json:"description_en"`
	DescriptionTH string   `json:"description_th"`
	Applications  []string `json:"applications"`
	Keywords      []string `json:"keywords"`
	Standards     []string `json:"standards"`
	Benefits      []string `json:"benefits"`
}

// Applications lists every application page in display order.
var Applications = []Application{
	{
		Slug:          "building-acoustics",
		TitleEN:       "Building Acoustics",
		TitleTH:       "อะคูสติกอาคาร",
		DescriptionEN: "Comprehensive building acoustics testing and consulting services for residential, commercial, and hospitality projects. Our expert team provides sound insulation measurements, room acoustics analysis, facade testing, and compliance verification to meet international standards. We help architects, developers, and contractors deliver acoustically comfortable spaces that exceed regulatory requirements.",
		DescriptionTH: "บริการทดสอบและให้คำปรึกษาด้านอะคูสติกอาคารอย่างครอบคลุมสำหรับโครงการที่พักอาศัย อาคารพาณิชย์ และอุตสาหกรรมการต้อนรับ ทีมผู้เชี่ยวชาญของเราให้บริการวัดฉนวนกันเสียง วิเคราะห์อะคูสติกห้อง ทดสอบผนังด้านหน้า และตรวจสอบความสอดคล้องเพื่อให้เป็นไปตามมาตรฐานสากล เราช่วยสถาปนิก นักพัฒนา และผู้รับเหมาส่งมอบพื้นที่ที่สะดวกสบายทางอะคูสติกซึ่งเกินข้อกำหนดด้านกฎระเบียบ",
		Applications: []string{
			"Airborne sound insulation testing (walls, floors, partitions)",
			"Impact sound insulation measurement (footfall noise)",
			"Facade sound insulation (traffic & aircraft noise)",
			"Reverberation time measurement (speech clarity)",
			"Room acoustics optimization",
		},
		Keywords: []string{"sound insulation", "building acoustics", "airborne noise", "impact sound", "reverberation", "facade testing", "acoustic compliance", "residential acoustics", "hotel acoustics", "apartment sound testing", "tapping machine", "dodecahedron", "sound source", "sound level meter", "building", "room acoustics", "construction"},
		Standards: []string{"ISO 16283-1/2/3", "ISO 3382-1/2/3", "ASTM E90", "ASTM E492", "ASTM E336", "BS 8233", "WHO Guidelines"},
		Benefits: []string{
			"Ensure full compliance with local and international building acoustics regulations",
			"Significantly improve occupant comfort, privacy, and wellbeing through optimized acoustic design",
			"Pre-completion testing verifies acoustic performance before handover, avoiding costly remediation",
			"Early identification and resolution of acoustic defects during construction",
			"Expert consulting supports acoustic design from concept to completion",
			"Detailed technical reports with remediation recommendations",
			"Protect property value and reduce complaints through superior acoustic quality",
		},
	},
	{
		Slug:          "environmental-noise-monitoring",
		TitleEN:       "Environmental Noise Monitoring",
		TitleTH:       "การตรวจสอบเสียงรบกวนสิ่งแวดล้อม",
		DescriptionEN: "Advanced continuous and long-term environmental noise monitoring solutions for airports, highways, construction sites, industrial facilities, and urban developments. Our automated monitoring systems provide 24/7 real-time noise data, compliance reporting, and early warning alerts to regulatory authorities and community stakeholders. Class 1 sound level meters with weather-resistant outdoor terminals ensure accurate measurements in all conditions.",
		DescriptionTH: "โซลูชันการตรวจสอบเสียงรบกวนสิ่งแวดล้อมแบบต่อเนื่องและระยะยาวขั้นสูงสำหรับสนามบิน ทางหลวง ไซต์ก่อสร้าง สถานประกอบการอุตสาหกรรม และการพัฒนาเมือง ระบบตรวจสอบอัตโนมัติของเราให้ข้อมูลเสียงแบบเรียลไทม์ตลอด 24/7 รายงานการปฏิบัติตามข้อกำหนด และการแจ้งเตือนล่วงหน้าแก่หน่วยงานกำกับดูแลและผู้มีส่วนได้ส่วนเสียในชุมชน เครื่องวัดระดับเสียง Class 1 พร้อมเทอร์มินัลกลางแจ้งที่ทนฝนทนแดดรับประกันการวัดที่แม่นยำในทุกสภาพ",
		Applications: []string{
			"Airport noise monitoring and flight path tracking",
			"Highway and traffic noise assessment",
			"Construction site noise compliance",
			"Industrial facility boundary monitoring",
			"Community noise complaint validation",
			"Wind farm noise assessment",
			"Railway noise monitoring",
		},
		Keywords: []string{"environmental noise", "noise monitoring", "traffic noise", "airport noise", "community noise", "continuous monitoring", "noise mapping", "long-term monitoring", "noise compliance", "automated monitoring", "sound level meter", "outdoor", "environmental", "terminal", "noise monitor", "weather", "monitoring station"},
		Standards: []string{"IEC 61672-1", "ISO 1996-1/2", "ISO 20906", "EU END Directive", "WHO Noise Guidelines", "Thai Pollution Control Department Standards"},
		Benefits: []string{
			"24/7 automated real-time noise level monitoring with web-based dashboard access",
			"Automated compliance reporting with customizable thresholds and instant email/SMS alerts",
			"Early warning system prevents exceedances and enables rapid response",
			"Long-term trend analysis identifies patterns and supports mitigation planning",
			"Weather-resistant outdoor terminals for year-round operation",
			"Integration with noise modeling software for predictive analysis",
			"Transparent data sharing builds community trust and demonstrates accountability",
		},
	},
	{
		Slug:          "vibration-analysis",
		TitleEN:       "Vibration Analysis & Testing",
		TitleTH:       "การวิเคราะห์และทดสอบการสั่นสะเทือน",
		DescriptionEN: "Complete vibration measurement, analysis, and testing services for structural dynamics, machinery diagnostics, and predictive maintenance programs. Our solutions include modal analysis, operating deflection shape (ODS) testing, machinery condition monitoring, and human exposure assessment. Advanced multi-channel data acquisition systems with high-precision accelerometers and sophisticated analysis software help engineers optimize designs, predict failures, and ensure safety compliance.",
		DescriptionTH: "บริการวัด วิเคราะห์ และทดสอบการสั่นสะเทือนที่สมบูรณ์สำหรับพลศาสตร์โครงสร้าง การวินิจฉัยเครื่องจักร และโปรแกรมการบำรุงรักษาเชิงป้องกัน โซลูชันของเรารวมถึงการวิเคราะห์โมดอล การทดสอบรูปร่างการเสียรูประหว่างการทำงาน (ODS) การตรวจสอบสภาพเครื่องจักร และการประเมินการสัมผัสของมนุษย์ ระบบรับข้อมูลหลายช่องขั้นสูงพร้อมเซ็นเซอร์วัดความเร่งความแม่นยำสูงและซอฟต์แวร์วิเคราะห์ที่ซับซ้อนช่วยให้วิศวกรเพิ่มประสิทธิภาพการออกแบบ คาดการณ์ความล้มเหลว และรับประกันการปฏิบัติตามความปลอดภัย",
		Applications: []string{
			"Modal testing and FRF measurements",
			"Operating deflection shapes (ODS) visualization",
			"Rotating machinery vibration diagnostics",
			"Structural health monitoring (SHM)",
			"Human whole-body vibration exposure",
			"Hand-arm vibration assessment",
			"Product vibration testing",
			"Seismic vibration monitoring",
		},
		Keywords: []string{"vibration", "modal analysis", "structural dynamics", "condition monitoring", "ODS", "machinery diagnostics", "predictive maintenance", "accelerometer", "frequency response", "resonance testing", "vibration meter", "analyzer", "shaker", "sensor", "transducer", "structural", "machinery"},
		Standards: []string{"ISO 2631-1/2", "ISO 5349-1/2", "ISO 10816-1 to 7", "ISO 7626", "ISO 20816", "VDI 2056", "DIN 4150-3"},
		Benefits: []string{
			"Predict equipment failures through early detection of abnormal vibration patterns",
			"Optimize preventive maintenance schedules based on actual machine condition",
			"Ensure worker safety compliance with whole-body and hand-arm vibration regulations",
			"Validate structural designs through experimental modal analysis and FEM correlation",
			"Identify resonance issues before they cause catastrophic failure",
			"Reduce unplanned downtime and extend equipment lifespan",
			"Comprehensive vibration analysis with frequency domain, time domain, and order tracking",
		},
	},
	{
		Slug:          "sound-source-location",
		TitleEN:       "Sound Source Location",
		TitleTH:       "การระบุตำแหน่งแหล่งกำเนิดเสียง",
		DescriptionEN: "Acoustic imaging and beamforming to identify and visualize noise sources in products, vehicles, and industrial environments.",
		DescriptionTH: "การถ่ายภาพอะคูสติกและบีมฟอร์มมิ่งเพื่อระบุและแสดงภาพแหล่งกำเนิดเสียงรบกวนในผลิตภัณฑ์ ยานพาหนะ และสภาพแวดล้อมอุตสาหกรรม",
		Applications:  []string{"Automotive NVH", "Product noise source identification", "HVAC noise analysis", "Machinery diagnostics", "Pass-by noise testing"},
		Keywords:      []string{"acoustic camera", "beamforming", "sound source", "NVH", "noise localization"},
		Standards:     []string{"ISO 3745", "ISO 9614", "SAE J1470"},
		Benefits:      []string{"Visualize noise sources", "Identify problem areas quickly", "Optimize noise reduction", "Validate acoustic designs"},
	},
	{
		Slug:          "industrial-noise-control",
		TitleEN:       "Industrial Noise Control",
		TitleTH:       "การควบคุมเสียงรบกวนในอุตสาหกรรม",
		DescriptionEN: "Workplace noise assessment, hearing conservation programs, and industrial noise reduction solutions.",
		DescriptionTH: "การประเมินเสียงรบกวนในสถานที่ทำงาน โปรแกรมการอนุรักษ์การได้ยิน และโซลูชันการลดเสียงรบกวนในอุตสาหกรรม",
		Applications:  []string{"Occupational noise exposure", "Hearing conservation", "Machine noise emission", "Noise mapping", "Engineering controls"},
		Keywords:      []string{"occupational noise", "workplace noise", "hearing protection", "noise dosimetry", "industrial hygiene"},
		Standards:     []string{"ISO 9612", "ISO 4871", "OSHA 1910.95", "NIOSH"},
		Benefits:      []string{"Protect worker hearing", "Comply with regulations", "Reduce liability", "Improve productivity"},
	},
	{
		Slug:          "material-testing",
		TitleEN:       "Material Testing & Characterization",
		TitleTH:       "การทดสอบและจำแนกลักษณะวัสดุ",
		DescriptionEN: "Acoustic material property measurement including absorption, transmission loss, and impedance testing.",
		DescriptionTH: "การวัดคุณสมบัติอะคูสติกของวัสดุรวมถึงการดูดซับ การสูญเสียการส่งผ่าน และการทดสอบอิมพีแดนซ์",
		Applications:  []string{"Sound absorption measurement", "Transmission loss testing", "Impedance tube testing", "Material characterization", "Product development"},
		Keywords:      []string{"material testing", "absorption coefficient", "transmission loss", "impedance tube", "acoustic materials"},
		Standards:     []string{"ISO 10534", "ISO 354", "ASTM C384", "ASTM E1050"},
		Benefits:      []string{"Characterize material properties", "Optimize product designs", "Verify supplier specifications", "Support R&D projects"},
	},
	{
		Slug:          "room-field-acoustics",
		TitleEN:       "Room & Field Acoustics",
		TitleTH:       "อะคูสติกห้องและภาคสนาม",
		DescriptionEN: "Concert hall acoustics, auditorium design verification, and outdoor sound propagation studies.",
		DescriptionTH: "อะคูสติกห้องแสดงคอนเสิร์ต การตรวจสอบการออกแบบห้องประชุม และการศึกษาการแพร่กระจายเสียงกลางแจ้ง",
		Applications:  []string{"Concert hall acoustics", "Auditorium design", "Speech intelligibility", "Outdoor sound propagation", "Architectural acoustics"},
		Keywords:      []string{"room acoustics", "reverberation", "speech intelligibility", "acoustic design", "sound propagation"},
		Standards:     []string{"ISO 3382", "IEC 60268-16", "ANSI S3.5"},
		Benefits:      []string{"Optimize acoustic performance", "Verify design predictions", "Ensure speech clarity", "Improve audience experience"},
	},
	{
		Slug:          "research-development",
		TitleEN:       "Research & Development",
		TitleTH:       "การวิจัยและพัฒนา",
		DescriptionEN: "Advanced acoustic research, product development, and specialized testing for academic and R&D applications.",
		DescriptionTH: "การวิจัยอะคูสติกขั้นสูง การพัฒนาผลิตภัณฑ์ และการทดสอบเฉพาะทางสำหรับการใช้งานทางวิชาการและการวิจัยและพัฒนา",
		Applications:  []string{"Acoustic research", "Psychoacoustics", "Signal processing", "Novel measurement techniques", "Academic research"},
		Keywords:      []string{"acoustic research", "psychoacoustics", "signal processing", "R&D", "innovation"},
		Standards:     []string{"Various research standards"},
		Benefits:      []string{"Access cutting-edge technology", "Flexible measurement solutions", "Expert technical support", "Customizable systems"},
	},
	{
		Slug:          "quality-control",
		TitleEN:       "Quality Control & Production",
		TitleTH:       "การควบคุมคุณภาพและการผลิต",
		DescriptionEN: "Production line testing, quality assurance, and automated noise and vibration testing for manufacturing.",
		DescriptionTH: "การทดสอบสายการผลิต การประกันคุณภาพ และการทดสอบเสียงและการสั่นสะเทือนอัตโนมัติสำหรับการผลิต",
		Applications:  []string{"Production line testing", "End-of-line testing", "Automated quality control", "Product certification", "Batch testing"},
		Keywords:      []string{"quality control", "production testing", "EOL testing", "automated testing", "manufacturing"},
		Standards:     []string{"ISO 9001", "Six Sigma", "Production standards"},
		Benefits:      []string{"Ensure product consistency", "Reduce defect rates", "Automate testing processes", "Improve efficiency"},
	},
	{
		Slug:          "construction-demolition",
		TitleEN:       "Construction & Demolition",
		TitleTH:       "การก่อสร้างและการรื้อถอน",
		DescriptionEN: "Construction noise and vibration monitoring to ensure compliance and minimize impact on surrounding areas.",
		DescriptionTH: "การตรวจสอบเสียงและการสั่นสะเทือนจากการก่อสร้างเพื่อให้มั่นใจในการปฏิบัติตามและลดผลกระทบต่อพื้นที่โดยรอบ",
		Applications:  []string{"Construction noise monitoring", "Vibration damage assessment", "Piling vibration", "Blasting monitoring", "Community impact assessment"},
		Keywords:      []string{"construction noise", "vibration monitoring", "piling", "blasting", "structural damage"},
		Standards:     []string{"DIN 4150", "BS 5228", "ISO 4866"},
		Benefits:      []string{"Prevent structural damage", "Minimize community complaints", "Ensure compliance", "Protect sensitive structures"},
	},
	{
		Slug:          "secondary-acoustic-calibration",
		TitleEN:       "Secondary Acoustic Calibration System",
		TitleTH:       "ระบบสอบเทียบอะคูสติกแบบรอง",
		DescriptionEN: "Professional secondary acoustic calibration systems and services for sound level meters, microphones, and acoustic measurement equipment. Our advanced calibration solutions ensure measurement accuracy, traceability to national and international standards, and compliance with ISO/IEC 17025 requirements. We provide both laboratory calibration services and on-site calibration equipment including the Norsonic NOR1525 Secondary Acoustic Calibrator and SPEKTRA Q-LEAP Calibration System for maintaining the highest measurement integrity across your acoustic testing infrastructure.",
		DescriptionTH: "ระบบและบริการสอบเทียบอะคูสติกแบบรองระดับมืออาชีพสำหรับเครื่องวัดระดับเสียง ไมโครโฟน และอุปกรณ์วัดอะคูสติก โซลูชันการสอบเทียบขั้นสูงของเราช่วยให้มั่นใจในความแม่นยำของการวัด การสืบย้อนกลับไปยังมาตรฐานระดับชาติและนานาชาติ และการปฏิบัติตามข้อกำหนด ISO/IEC 17025 เราให้บริการทั้งการสอบเทียบในห้องปฏิบัติการและอุปกรณ์สอบเทียบในสถานที่ รวมถึง Norsonic NOR1525 Secondary Acoustic Calibrator และ SPEKTRA Q-LEAP Calibration System เพื่อรักษาความสมบูรณ์ของการวัดในระดับสูงสุดในโครงสร้างการทดสอบอะคูสติกของคุณ",
		Applications: []string{
			"Secondary standard acoustic calibration (IEC 61094-5)",
			"Sound level meter field calibration and verification",
			"Measurement microphone calibration services",
			"Laboratory reference calibration (ISO/IEC 17025)",
			"Acoustic calibrator verification and validation",
			"Measurement traceability documentation",
			"Annual calibration programs for acoustic equipment",
			"On-site calibration for large facilities",
			"Calibration certificate generation and management",
		},
		Keywords: []string{
			"acoustic calibration",
			"secondary calibrator",
			"sound level meter calibration",
			"microphone calibration",
			"NOR1525",
			"Norsonic calibrator",
			"SPEKTRA Q-LEAP",
			"Q-LEAP system",
			"calibration system",
			"measurement traceability",
			"ISO/IEC 17025",
			"IEC 61094",
			"IEC 61672",
			"acoustic reference",
			"secondary standard",
			"calibration certificate",
			"laboratory calibration",
			"field calibration",
			"acoustic metrology",
			"measurement uncertainty",
			"calibration service",
			"acoustic accuracy",
			"instrument calibration",
		},
		Standards: []string{
			"IEC 61094-5 (Secondary method for microphone calibration)",
			"IEC 61672-3 (Sound level meter periodic testing)",
			"ISO/IEC 17025 (General requirements for testing and calibration laboratories)",
			"IEC 61672-1 (Sound level meter specifications)",
			"IEC 60942 (Electroacoustic sound calibrators)",
			"ISO 1996-1/2 (Environmental noise assessment)",
			"ANSI S1.40 (Sound level meter specifications)",
			"ANSI S1.15 (Measurement microphone calibration)",
		},
		Benefits: []string{
			"Ensure highest measurement accuracy with secondary standard calibration traceable to national metrology institutes",
			"Maintain compliance with ISO/IEC 17025 accreditation requirements for calibration laboratories",
			"Reduce measurement uncertainty through precise acoustic reference systems",
			"Enable on-site field calibration for large fleets of sound level meters without instrument downtime",
			"Automate calibration certificate generation and measurement traceability documentation",
			"Extend calibration intervals through reliable secondary calibration capabilities",
			"Reduce external calibration costs by establishing in-house secondary calibration laboratory",
			"Improve confidence in acoustic measurement results for critical applications",
			"Support audit compliance and regulatory inspections with complete calibration records",
			"Maintain consistent measurement standards across multiple testing locations",
			"Ensure quality assurance in acoustic testing and product certification programs",
		},
	},
}

// ApplicationBySlug returns the metadata for one application page.
func ApplicationBySlug(slug string) (Application, bool) {
	for _, a := range Applications {
		if a.Slug == slug {
			return a, true
		}
	}
	return Application{}, false
}
