package speech

// Language identifies one of the supported voice-command languages.
type Language string

const (
	LanguageEnglish     Language = "en"
	LanguageFrench      Language = "fr"
	LanguageKinyarwanda Language = "rw"
	LanguageSpanish     Language = "es"
)

// ParseLanguage normalizes a client-supplied language tag. Unknown tags fall
// back to English rather than erroring so the voice UI always has feedback.
func ParseLanguage(raw string) Language {
	switch Language(raw) {
	case LanguageFrench, LanguageKinyarwanda, LanguageSpanish:
		return Language(raw)
	default:
		return LanguageEnglish
	}
}

// Languages lists every supported language in display order.
func Languages() []Language {
	return []Language{LanguageEnglish, LanguageFrench, LanguageKinyarwanda, LanguageSpanish}
}

// LanguageConfig carries the BCP-47 code and localized UI feedback for one
// language.
type LanguageConfig struct {
	Code                 string `json:"code"`
	Name                 string `json:"name"`
	Flag                 string `json:"flag"`
	Listening            string `json:"listening"`
	VoiceReady           string `json:"voiceReady"`
	CommandNotRecognized string `json:"commandNotRecognized"`
	NavigatingTo         string `json:"navigatingTo"`
	AvailableCommands    string `json:"availableCommands"`
	MicrophoneError      string `json:"microphoneError"`
	PermissionDenied     string `json:"permissionDenied"`
	NoSpeech             string `json:"noSpeech"`
	VoiceError           string `json:"voiceError"`
}

var languageConfigs = map[Language]LanguageConfig{
	LanguageEnglish: {
		Code:                 "en-US",
		Name:                 "English",
		Flag:                 "🇺🇸",
		Listening:            "Listening...",
		VoiceReady:           "Voice commands ready",
		CommandNotRecognized: "Command not recognized. Try saying 'help' for available commands.",
		NavigatingTo:         "Navigating to",
		AvailableCommands:    "Available commands:",
		MicrophoneError:      "Microphone not available",
		PermissionDenied:     "Microphone permission denied",
		NoSpeech:             "No speech detected. Try again.",
		VoiceError:           "Voice recognition error. Please try again.",
	},
	LanguageFrench: {
		Code:                 "fr-FR",
		Name:                 "Français",
		Flag:                 "🇫🇷",
		Listening:            "En écoute...",
		VoiceReady:           "Commandes vocales prêtes",
		CommandNotRecognized: "Commande non reconnue. Essayez de dire 'aide' pour les commandes disponibles.",
		NavigatingTo:         "Navigation vers",
		AvailableCommands:    "Commandes disponibles:",
		MicrophoneError:      "Microphone non disponible",
		PermissionDenied:     "Permission du microphone refusée",
		NoSpeech:             "Aucune parole détectée. Réessayez.",
		VoiceError:           "Erreur de reconnaissance vocale. Veuillez réessayer.",
	},
	LanguageKinyarwanda: {
		Code:                 "rw-RW",
		Name:                 "Kinyarwanda",
		Flag:                 "🇷🇼",
		Listening:            "Ntego...",
		VoiceReady:           "Amabwiriza y'ijwi yiteguye",
		CommandNotRecognized: "Ibwiriza ntabwo ryumvikana. Gerageza kuvuga 'ubufasha'.",
		NavigatingTo:         "Kujya kuri",
		AvailableCommands:    "Amabwiriza aboneka:",
		MicrophoneError:      "Mikoro ntiboneka",
		PermissionDenied:     "Uruhushya rwa mikoro rwahakanywe",
		NoSpeech:             "Nta magambo yamenyekanye. Ongera ugerageze.",
		VoiceError:           "Ikosa mu kumva ijwi. Nyamuneka ongera ugerageze.",
	},
	LanguageSpanish: {
		Code:                 "es-ES",
		Name:                 "Español",
		Flag:                 "🇪🇸",
		Listening:            "Escuchando...",
		VoiceReady:           "Comandos de voz listos",
		CommandNotRecognized: "Comando no reconocido. Intenta decir 'ayuda' para comandos disponibles.",
		NavigatingTo:         "Navegando a",
		AvailableCommands:    "Comandos disponibles:",
		MicrophoneError:      "Micrófono no disponible",
		PermissionDenied:     "Permiso de micrófono denegado",
		NoSpeech:             "No se detectó habla. Inténtalo de nuevo.",
		VoiceError:           "Error de reconocimiento de voz. Por favor, inténtalo de nuevo.",
	},
}

// Config returns the feedback table for lang, defaulting to English.
func Config(lang Language) LanguageConfig {
	if cfg, ok := languageConfigs[lang]; ok {
		return cfg
	}
	return languageConfigs[LanguageEnglish]
}
