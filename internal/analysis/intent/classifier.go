// Package intent maps a free-text utterance to one of a closed set of intents
// with an ordered keyword table. This is deliberately a heuristic, not NLP:
// the first rule whose keyword appears in the lowercased utterance wins, so
// table order is part of the contract. An utterance such as "project deadline
// meeting" matches ScheduleMeeting, not AskProjects, because the scheduling
// rule is checked first.
package intent

import "strings"

// Intent classifies the purpose of a user utterance.
type Intent string

const (
	ScheduleMeeting Intent = "schedule-meeting"
	LeaveMessage    Intent = "leave-message"
	AskAbout        Intent = "ask-about"
	AskProjects     Intent = "ask-projects"
	AskServices     Intent = "ask-services"
	AskItinerary    Intent = "ask-itinerary"
	Unknown         Intent = "unknown"
)

// TableVersion identifies the keyword table revision. Bump it whenever a rule
// or the rule order changes so behavior changes stay reviewable.
const TableVersion = 1

type rule struct {
	intent   Intent
	keywords []string
}

// Classifier resolves utterances against the ordered rule table. The owner's
// short name is folded into the AskAbout rule at construction time.
type Classifier struct {
	rules []rule
}

// New builds a classifier for the given owner short name.
func New(ownerShortName string) *Classifier {
	about := []string{"about", "who"}
	if name := strings.ToLower(strings.TrimSpace(ownerShortName)); name != "" {
		about = append(about, name)
	}
	return &Classifier{rules: []rule{
		{ScheduleMeeting, []string{"schedule", "meeting", "book", "appointment"}},
		{LeaveMessage, []string{"message", "contact", "reach out"}},
		{AskAbout, about},
		{AskProjects, []string{"project", "work", "portfolio"}},
		{AskServices, []string{"service", "offer", "help"}},
		// "schedule today" is shadowed by the scheduling rule above and kept
		// only to document the full source table.
		{AskItinerary, []string{"itinerary", "schedule today", "today"}},
	}}
}

// Classify returns the first intent whose keyword occurs in the utterance,
// or Unknown when nothing matches. Matching is case-insensitive substring.
func (c *Classifier) Classify(utterance string) Intent {
	normalized := strings.ToLower(strings.TrimSpace(utterance))
	if normalized == "" {
		return Unknown
	}
	for _, r := range c.rules {
		for _, keyword := range r.keywords {
			if strings.Contains(normalized, keyword) {
				return r.intent
			}
		}
	}
	return Unknown
}
