// Package locale holds the UI language registry and static translation
// tables. These are presentation parameters, not architecture: the status
// vocabulary of verdicts is never translated.
package locale

// Language describes one selectable UI language.
type Language struct {
	Code string
	// Label is shown in the language selector.
	Label string
	// PromptName is the full language name passed to the remote prompts.
	PromptName string
	// RTL marks right-to-left scripts.
	RTL bool
}

// Strings is the translation table for the presentation layer.
type Strings struct {
	Tagline           string
	PitchPlaceholder  string
	UploadBtn         string
	RoastBtn          string
	SidebarTitle      string
	SidebarNew        string
	VsBtn             string
	VsModalTitle      string
	VsPlaceholder     string
	RustyTitle        string
	JulesTitle        string
	BarbTitle         string
	RustyName         string
	JulesName         string
	BarbName          string
	ClearRecords      string
	Decision          string
	EvidenceUpload    string
	ThePitch          string
	NegotiationWindow string
	JuryListening     string
	Plaintiff         string
	Jury              string
	Send              string
	Cancel            string
	CrossExamine      string
	CourtSession      string
	ReviewingEvidence string
	VerdictReached    string
}

var languages = []Language{
	{Code: "en", Label: "🇺🇸 English", PromptName: "English", RTL: false},
	{Code: "fr", Label: "🇫🇷 Français", PromptName: "French", RTL: false},
	{Code: "es", Label: "🇪🇸 Español", PromptName: "Spanish", RTL: false},
	{Code: "ar", Label: "🇸🇦 العربية", PromptName: "Arabic", RTL: true},
}

// Languages returns the selectable languages in display order.
func Languages() []Language {
	return languages
}

// Get returns the language and its translation table, falling back to
// English for unknown codes.
func Get(code string) (Language, Strings) {
	for _, language := range languages {
		if language.Code == code {
			return language, tables[code]
		}
	}
	return languages[0], tables["en"]
}

var tables = map[string]Strings{
	"en": {
		Tagline:           "Verdict First. Launch Second.",
		PitchPlaceholder:  "Paste your landing page copy, product manifesto, or startup idea here...",
		UploadBtn:         "UPLOAD IMAGE",
		RoastBtn:          "INITIATE ROAST",
		SidebarTitle:      "CASE FILES",
		SidebarNew:        "NEW CASE",
		VsBtn:             "VS",
		VsModalTitle:      "Who is the defendant?",
		VsPlaceholder:     "e.g. Slack, Linear...",
		RustyTitle:        "SENIOR ENGINEER",
		JulesTitle:        "TREND ANALYST",
		BarbTitle:         "THE BUDGET KEEPER",
		RustyName:         "RUSTY",
		JulesName:         "JULES",
		BarbName:          "BARB",
		ClearRecords:      "CLEAR RECORDS",
		Decision:          "DECISION",
		EvidenceUpload:    "Evidence (Screenshot)",
		ThePitch:          "The Pitch",
		NegotiationWindow: "Negotiation Window",
		JuryListening:     "The Jury is Listening",
		Plaintiff:         "PLAINTIFF (YOU)",
		Jury:              "THE JURY",
		Send:              "SEND",
		Cancel:            "CANCEL",
		CrossExamine:      "CROSS-EXAMINE",
		CourtSession:      "COURT IS IN SESSION. PRESENT YOUR CASE.",
		ReviewingEvidence: "RUSTY, JULES, AND BARB ARE REVIEWING THE EVIDENCE...",
		VerdictReached:    "THE VERDICT HAS BEEN REACHED.",
	},
	"fr": {
		Tagline:           "Verdict d'abord. Lancement ensuite.",
		PitchPlaceholder:  "Collez votre texte de vente ou idée de startup ici...",
		UploadBtn:         "TÉLÉCHARGER IMAGE",
		RoastBtn:          "LANCER LE PROCÈS",
		SidebarTitle:      "DOSSIERS",
		SidebarNew:        "NOUVEAU CAS",
		VsBtn:             "VS",
		VsModalTitle:      "Qui est l'accusé ?",
		VsPlaceholder:     "ex: Slack, Linear...",
		RustyTitle:        "INGÉNIEUR SENIOR",
		JulesTitle:        "ANALYSTE DE TENDANCES",
		BarbTitle:         "GARDIENNE DU BUDGET",
		RustyName:         "RUSTY",
		JulesName:         "JULES",
		BarbName:          "BARB",
		ClearRecords:      "EFFACER L'HISTORIQUE",
		Decision:          "DÉCISION",
		EvidenceUpload:    "Preuve (Capture d'écran)",
		ThePitch:          "Le Pitch",
		NegotiationWindow: "Fenêtre de Négociation",
		JuryListening:     "Le Jury Écoute",
		Plaintiff:         "PLAIGNANT (VOUS)",
		Jury:              "LE JURY",
		Send:              "ENVOYER",
		Cancel:            "ANNULER",
		CrossExamine:      "INTERROGER",
		CourtSession:      "LA SÉANCE EST OUVERTE. PRÉSENTEZ VOTRE CAS.",
		ReviewingEvidence: "RUSTY, JULES ET BARB EXAMINENT LES PREUVES...",
		VerdictReached:    "LE VERDICT EST TOMBÉ.",
	},
	"es": {
		Tagline:           "Veredicto primero. Lanzamiento después.",
		PitchPlaceholder:  "Pega tu texto de venta o idea de startup aquí...",
		UploadBtn:         "SUBIR IMAGEN",
		RoastBtn:          "INICIAR JUICIO",
		SidebarTitle:      "ARCHIVOS",
		SidebarNew:        "NUEVO CASO",
		VsBtn:             "VS",
		VsModalTitle:      "¿Quién es el acusado?",
		VsPlaceholder:     "ej: Slack, Linear...",
		RustyTitle:        "INGENIERO SENIOR",
		JulesTitle:        "ANALISTA DE TENDENCIAS",
		BarbTitle:         "GUARDIANA DEL PRESUPUESTO",
		RustyName:         "RUSTY",
		JulesName:         "JULES",
		BarbName:          "BARB",
		ClearRecords:      "BORRAR HISTORIAL",
		Decision:          "DECISIÓN",
		EvidenceUpload:    "Evidencia (Captura)",
		ThePitch:          "El Discurso",
		NegotiationWindow: "Ventana de Negociación",
		JuryListening:     "El Jurado Escucha",
		Plaintiff:         "DEMANDANTE (TÚ)",
		Jury:              "EL JURADO",
		Send:              "ENVIAR",
		Cancel:            "CANCELAR",
		CrossExamine:      "INTERROGAR",
		CourtSession:      "SE ABRE LA SESIÓN. PRESENTE SU CASO.",
		ReviewingEvidence: "RUSTY, JULES Y BARB ESTÁN REVISANDO LA EVIDENCIA...",
		VerdictReached:    "SE HA LLEGADO A UN VEREDICTO.",
	},
	"ar": {
		Tagline:           "الحكم أولاً. الإطلاق ثانياً.",
		PitchPlaceholder:  "الصق نص الصفحة المقصودة أو فكرة المشروع هنا...",
		UploadBtn:         "رفع صورة",
		RoastBtn:          "بدء المحاكمة",
		SidebarTitle:      "ملفات القضايا",
		SidebarNew:        "قضية جديدة",
		VsBtn:             "ضد",
		VsModalTitle:      "من هو المتهم؟",
		VsPlaceholder:     "مثلاً: Slack, Linear...",
		RustyTitle:        "كبير المهندسين",
		JulesTitle:        "محلل الصيحات",
		BarbTitle:         "حارسة الميزانية",
		RustyName:         "رستي",
		JulesName:         "جولز",
		BarbName:          "بارب",
		ClearRecords:      "مسح السجلات",
		Decision:          "القرار",
		EvidenceUpload:    "الأدلة (لقطة شاشة)",
		ThePitch:          "العرض التقديمي",
		NegotiationWindow: "نافذة التفاوض",
		JuryListening:     "لجنة التحكيم تستمع",
		Plaintiff:         "المدعي (أنت)",
		Jury:              "هيئة المحلفين",
		Send:              "إرسال",
		Cancel:            "إلغاء",
		CrossExamine:      "استجواب",
		CourtSession:      "المحكمة منعقدة. اعرض قضيتك.",
		ReviewingEvidence: "رستي، جولز وبارب يراجعون الأدلة...",
		VerdictReached:    "تم التوصل إلى الحكم.",
	},
}
