// Package render turns state-machine results into user-facing text. Every
// canned response has one fixed body per mood for the greeting/closing
// phrases and a mood-independent body for factual content.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/Herve02/portfolio-secretary/internal/model/conversation"
	"github.com/Herve02/portfolio-secretary/internal/model/profile"
)

// Meeting links handed out in booking confirmations. The spa-style booking
// backends these would come from are out of scope, so they are fixed.
const (
	googleMeetLink = "https://meet.google.com/abc-defg-hij"
	zoomLink       = "https://zoom.us/j/123456789"
)

// Renderer produces the assistant's canned responses from the owner profile.
// All methods are pure text functions; no I/O, no session mutation.
type Renderer struct {
	profile  profile.Profile
	timezone *time.Location
}

// New builds a renderer for the given owner and business timezone.
func New(p profile.Profile, timezone *time.Location) *Renderer {
	if timezone == nil {
		timezone = time.UTC
	}
	return &Renderer{profile: p, timezone: timezone}
}

// Greeting is the opening turn of every new session.
func (r *Renderer) Greeting() string {
	return fmt.Sprintf(
		"Hello! I'm %s's Portfolio Secretary. I can help you learn about his work, schedule a meeting, or take a message. What would you like to know?",
		r.profile.ShortName)
}

// MoodChanged acknowledges a mood switch using the new mood's greeting.
func (r *Renderer) MoodChanged(mood conversation.Mood) string {
	return fmt.Sprintf("Mood switched to %s. %s", mood, phrases(mood).Greeting)
}

// About renders the owner profile facts.
func (r *Renderer) About(mood conversation.Mood) string {
	p := r.profile
	return fmt.Sprintf(`**About %s**

📍 **Location:** %s

👨‍💼 **Profile:** %s

🎓 **Education:** %s

💻 **Technical Skills:** %s

🤝 **Soft Skills:** %s

%s`,
		p.Name, p.Location, p.Summary, p.Education,
		strings.Join(p.Tech, ", "), strings.Join(p.SoftSkills, ", "),
		phrases(mood).Closing)
}

// Projects renders the numbered project list.
func (r *Renderer) Projects(mood conversation.Mood) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s's Recent Projects:**\n\n", r.profile.ShortName)
	for i, project := range r.profile.Projects {
		fmt.Fprintf(&b, "%d. **%s**\n   %s\n\n", i+1, project.Name, project.Description)
	}
	b.WriteString(phrases(mood).Closing)
	return b.String()
}

// Services renders the bulleted services list.
func (r *Renderer) Services(mood conversation.Mood) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Services %s Offers:**\n\n", r.profile.ShortName)
	for _, service := range r.profile.Services {
		fmt.Fprintf(&b, "• %s\n", service)
	}
	b.WriteString("\n")
	b.WriteString(phrases(mood).Closing)
	return b.String()
}

// Itinerary renders the owner's canned daily itinerary for the given day.
func (r *Renderer) Itinerary(mood conversation.Mood, now time.Time) string {
	today := now.In(r.timezone).Format("2006-01-02")
	return fmt.Sprintf(`**Today's Itinerary (%s):**

🕘 **09:00 - 10:00** Client Call - Website Review
   📍 Google Meet

🕐 **10:30 - 11:30** Project Development - Harmony Spa
   📍 Office workspace

🕒 **14:00 - 15:00** SEO Consultation
   📍 Zoom Meeting

🕓 **16:00 - 17:00** Microsoft 365 Support Session
   📍 Phone call

✅ Itinerary has been sent to %s

%s`, today, r.profile.Email, phrases(mood).Closing)
}

// SchedulingPrompt opens the booking flow.
func (r *Renderer) SchedulingPrompt() string {
	return fmt.Sprintf(`I'd be happy to help you schedule a meeting with %s!

**Available Options:**
• Duration: 15, 30, or 60 minutes
• Meeting Types: Google Meet, Zoom, Phone, or In-person
• Business Hours: Mon-Fri, 9:00 AM - 6:00 PM (%s time)

Please fill out the form below to proceed:`, r.profile.ShortName, r.timezone)
}

// MessagingPrompt opens the message flow.
func (r *Renderer) MessagingPrompt() string {
	return fmt.Sprintf("I'll help you leave a message for %s. Please fill out the form below:", r.profile.ShortName)
}

// FormReminder nudges a user who keeps chatting while a form is open. Free
// text is intentionally not re-classified in that situation.
func (r *Renderer) FormReminder(state conversation.State) string {
	switch state {
	case conversation.StateScheduling:
		return "We're in the middle of booking a meeting. Please complete the form below, or cancel to ask me something else."
	case conversation.StateMessaging:
		return "We're in the middle of composing your message. Please complete the form below, or cancel to ask me something else."
	}
	return ""
}

// Fallback cycles through the canned fallback responses; n is the number of
// previous misses in this session.
func (r *Renderer) Fallback(mood conversation.Mood, n int) string {
	body := fallbackResponses[n%len(fallbackResponses)]
	return fmt.Sprintf("%s %s", body, phrases(mood).Closing)
}

// SchedulingCancelled acknowledges leaving the booking flow.
func (r *Renderer) SchedulingCancelled() string {
	return "Scheduling cancelled. Is there anything else I can help you with?"
}

// MessagingCancelled acknowledges leaving the message flow.
func (r *Renderer) MessagingCancelled() string {
	return "Message cancelled. Is there anything else I can help you with?"
}

// BookingConfirmed renders the confirmation turn from a snapshot of the form
// and the chosen slot taken at submission time.
func (r *Renderer) BookingConfirmed(form conversation.SchedulingForm, slot conversation.TimeSlot) string {
	var b strings.Builder
	fmt.Fprintf(&b, `✅ **Meeting Booked Successfully!**

📅 **Date & Time:** %s
👤 **Duration:** %d minutes
💼 **Purpose:** %s
📧 **Attendee:** %s`,
		slot.DisplayLabel, form.DurationMinutes, form.Purpose, form.Email)

	switch form.MeetingType {
	case conversation.MeetingGoogleMeet:
		fmt.Fprintf(&b, "\n🔗 **Meeting Link:** %s", googleMeetLink)
	case conversation.MeetingZoom:
		fmt.Fprintf(&b, "\n🔗 **Meeting Link:** %s", zoomLink)
	case conversation.MeetingPhone:
		fmt.Fprintf(&b, "\n📞 **%s will call you at your provided number**", r.profile.ShortName)
	case conversation.MeetingInPerson:
		b.WriteString("\n📍 **Location:** To be confirmed via email")
	}

	fmt.Fprintf(&b, "\n\n📧 Calendar invitation sent to %s!\n%s will also receive a notification about this booking.",
		form.Email, r.profile.ShortName)
	return b.String()
}

// BookingFailed renders a user-visible submission failure. The session stays
// in the scheduling state so the user can retry or cancel.
func (r *Renderer) BookingFailed(reason string) string {
	if reason == "" {
		reason = "the booking could not be delivered"
	}
	return fmt.Sprintf("❌ **Booking Failed**\n\nSorry, %s. Your details are still here — please try confirming again or cancel.", reason)
}

// MessageDelivered renders the delivery confirmation from a form snapshot.
func (r *Renderer) MessageDelivered(form conversation.MessageForm, mood conversation.Mood) string {
	return fmt.Sprintf(`✅ **Message Sent Successfully!**

📧 Your message has been delivered to %s
📝 **Topic:** %s
👤 **From:** %s

%s typically responds within 24 hours. Thank you for reaching out!

%s`, r.profile.ShortName, form.Topic, form.Name, r.profile.ShortName, phrases(mood).Closing)
}

// MessageFailed renders a user-visible delivery failure. The session stays in
// the messaging state so nothing typed is lost.
func (r *Renderer) MessageFailed(reason string) string {
	if reason == "" {
		reason = "your message could not be delivered"
	}
	return fmt.Sprintf("❌ **Message Not Sent**\n\nSorry, %s. Your draft is still here — please try again or cancel.", reason)
}
