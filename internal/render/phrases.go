package render

import "github.com/Herve02/portfolio-secretary/internal/model/conversation"

// moodPhrases holds the greeting/closing variant for each mood. Factual
// response bodies are mood-independent; only these framing phrases change.
type moodPhrases struct {
	Greeting string
	Closing  string
}

var moodBank = map[conversation.Mood]moodPhrases{
	conversation.MoodProfessional: {
		Greeting: "Good day! How may I assist you with Herve's services today?",
		Closing:  "Thank you for your interest. Is there anything else I can help you with?",
	},
	conversation.MoodFriendly: {
		Greeting: "Hey there! 😊 What can I help you learn about Herve today?",
		Closing:  "Hope that helps! Feel free to ask me anything else!",
	},
	conversation.MoodEnergetic: {
		Greeting: "Hello! 🚀 I'm excited to tell you about Herve's amazing work!",
		Closing:  "Awesome! Let me know what else you'd like to explore!",
	},
	conversation.MoodCalm: {
		Greeting: "Hello, and welcome. I'm here to help you learn about Herve's work at your own pace.",
		Closing:  "I hope you found that helpful. Please don't hesitate to ask more questions.",
	},
}

// fallbackResponses are cycled through on unrecognized utterances so repeated
// misses do not read identically.
var fallbackResponses = []string{
	"I can help you with information about Herve's background, projects, and services. You can also schedule a meeting or leave a message!",
	"Feel free to ask about Herve's experience, view his projects, learn about his services, or book a consultation.",
	"I'm here to assist with any questions about Herve's work. Would you like to know about his projects, services, or schedule a meeting?",
}

func phrases(mood conversation.Mood) moodPhrases {
	if p, ok := moodBank[mood]; ok {
		return p
	}
	return moodBank[conversation.MoodProfessional]
}
