package speech

// Command is a navigation command with trigger phrases per language.
type Command struct {
	Route       string                `json:"route"`
	Phrases     map[Language][]string `json:"phrases"`
	Description map[Language]string   `json:"description"`
}

// navigationCommands is matched in order; the first phrase contained in the
// transcript wins.
var navigationCommands = []Command{
	{
		Route: "/projects",
		Phrases: map[Language][]string{
			LanguageEnglish:     {"show me projects", "go to projects", "projects page", "view projects"},
			LanguageFrench:      {"montre-moi les projets", "aller aux projets", "page des projets", "voir les projets"},
			LanguageKinyarwanda: {"nyerekana imishinga", "jya ku mishinga", "urupapuro rw'imishinga"},
			LanguageSpanish:     {"muéstrame proyectos", "ir a proyectos", "página de proyectos", "ver proyectos"},
		},
		Description: map[Language]string{
			LanguageEnglish:     "Navigate to projects page",
			LanguageFrench:      "Aller à la page des projets",
			LanguageKinyarwanda: "Jya ku rupapuro rw'imishinga",
			LanguageSpanish:     "Ir a la página de proyectos",
		},
	},
	{
		Route: "/about",
		Phrases: map[Language][]string{
			LanguageEnglish:     {"go to about", "about page", "about me", "my story"},
			LanguageFrench:      {"à propos", "page à propos", "à propos de moi", "mon histoire"},
			LanguageKinyarwanda: {"kuvuga kuri njye", "urupapuro rwanjye", "inkuru yanjye"},
			LanguageSpanish:     {"acerca de", "página acerca de", "sobre mí", "mi historia"},
		},
		Description: map[Language]string{
			LanguageEnglish:     "Navigate to about page",
			LanguageFrench:      "Aller à la page à propos",
			LanguageKinyarwanda: "Jya ku rupapuro rw'amakuru yanjye",
			LanguageSpanish:     "Ir a la página acerca de",
		},
	},
	{
		Route: "/contact",
		Phrases: map[Language][]string{
			LanguageEnglish:     {"contact me", "go to contact", "contact page", "get in touch"},
			LanguageFrench:      {"contactez-moi", "aller au contact", "page de contact", "me contacter"},
			LanguageKinyarwanda: {"mwandikire", "jya ku rupapuro rwo kwandikira"},
			LanguageSpanish:     {"contáctame", "ir a contacto", "página de contacto", "ponte en contacto"},
		},
		Description: map[Language]string{
			LanguageEnglish:     "Navigate to contact page",
			LanguageFrench:      "Aller à la page de contact",
			LanguageKinyarwanda: "Jya ku rupapuro rwo kwandikira",
			LanguageSpanish:     "Ir a la página de contacto",
		},
	},
	{
		Route: "/",
		Phrases: map[Language][]string{
			LanguageEnglish:     {"go home", "home page", "homepage", "main page"},
			LanguageFrench:      {"accueil", "page d'accueil", "aller à l'accueil", "page principale"},
			LanguageKinyarwanda: {"itangiriro", "urupapuro rw'itangiriro", "jya ku ntangiriro"},
			LanguageSpanish:     {"inicio", "página de inicio", "ir a inicio", "página principal"},
		},
		Description: map[Language]string{
			LanguageEnglish:     "Navigate to home page",
			LanguageFrench:      "Aller à la page d'accueil",
			LanguageKinyarwanda: "Jya ku rupapuro rw'itangiriro",
			LanguageSpanish:     "Ir a la página de inicio",
		},
	},
}

var helpPhrases = map[Language][]string{
	LanguageEnglish:     {"help", "what can i say", "voice commands", "show commands"},
	LanguageFrench:      {"aide", "que puis-je dire", "commandes vocales", "montrer les commandes"},
	LanguageKinyarwanda: {"ubufasha", "icyo nshobora kuvuga", "amabwiriza y'ijwi"},
	LanguageSpanish:     {"ayuda", "qué puedo decir", "comandos de voz", "mostrar comandos"},
}

// Commands exposes the navigation table for the help endpoint.
func Commands() []Command {
	return navigationCommands
}
