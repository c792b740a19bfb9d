package ai

import (
	"fmt"
	"strings"

	"github.com/Herve02/portfolio-secretary/internal/model/profile"
)

// SystemPrompt builds the per-language system prompt from the owner profile.
// Unknown languages fall back to English.
func SystemPrompt(p profile.Profile, language string) string {
	tech := strings.Join(p.Tech, ", ")
	languages := strings.Join(p.Languages, ", ")

	switch language {
	case "fr":
		return fmt.Sprintf(`Tu es l'assistant IA professionnel d'%s. Tu as une connaissance complète de %s, un développeur Full-Stack du Rwanda.

À propos d'%s:
- Nom complet: %s
- Titre: %s
- Localisation: %s

Compétences: %s
Langues: %s

Réponds aux questions sur %s de manière naturelle et conversationnelle. Sois utile, professionnel et engageant.`,
			p.ShortName, p.Name, p.ShortName, p.Name, p.Title, p.Location, tech, languages, p.ShortName)
	case "rw":
		return fmt.Sprintf(`Uri umufasha w'ikoranabuhanga wa %s. Ufite ubumenyi bwuzuye kuri %s, umukoresha w'ikoranabuhanga wo mu Rwanda.

Ku bijyanye na %s:
- Izina ryuzuye: %s
- Umurimo: %s
- Aho atuye: %s

Ubuhanga: %s
Indimi: %s

Subiza ibibazo ku bijyanye na %s mu buryo bwiza kandi bworoshye.`,
			p.ShortName, p.Name, p.ShortName, p.Name, p.Title, p.Location, tech, languages, p.ShortName)
	case "es":
		return fmt.Sprintf(`Eres el asistente de IA profesional de %s. Tienes conocimiento completo sobre %s, un desarrollador Full-Stack de Ruanda.

Sobre %s:
- Nombre completo: %s
- Título: %s
- Ubicación: %s

Habilidades: %s
Idiomas: %s

Responde preguntas sobre %s de manera natural y conversacional. Sé útil, profesional y atractivo.`,
			p.ShortName, p.Name, p.ShortName, p.Name, p.Title, p.Location, tech, languages, p.ShortName)
	default:
		return fmt.Sprintf(`You are %s's professional AI assistant. You have comprehensive knowledge about %s, a Full-Stack Developer from Rwanda.

About %s:
- Full name: %s
- Title: %s
- Location: %s

Skills: %s
Languages: %s

Answer questions about %s naturally and conversationally. You can provide detailed information about his projects, skills, experience, and background. Be helpful, professional, and engaging. Keep responses concise but informative.`,
			p.ShortName, p.Name, p.ShortName, p.Name, p.Title, p.Location, tech, languages, p.ShortName)
	}
}

// fallbackReplies are returned when the reply capability fails at runtime.
var fallbackReplies = map[string]string{
	"en": "I'm having trouble connecting to my AI service right now. Please try asking your question again, or feel free to explore the portfolio manually.",
	"fr": "J'ai des difficultés à me connecter à mon service IA en ce moment. Veuillez réessayer votre question ou explorer le portfolio manuellement.",
	"rw": "Mfite ikibazo cyo kwihurira na serivisi yanjye ya AI ubu. Nyamuneka ongera usubize icyabazo cyawe cyangwa usuzume portfolio wanjye ubwawe.",
	"es": "Tengo problemas para conectarme a mi servicio de IA en este momento. Por favor, intenta hacer tu pregunta de nuevo o explora el portafolio manualmente.",
}

// FallbackReply returns the static apology for a failed or unavailable reply
// capability in the requested language.
func FallbackReply(language string) string {
	if reply, ok := fallbackReplies[language]; ok {
		return reply
	}
	return fallbackReplies["en"]
}
