package conversation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MeetingType enumerates how a booked meeting is held.
type MeetingType string

const (
	MeetingGoogleMeet MeetingType = "google-meet"
	MeetingZoom       MeetingType = "zoom"
	MeetingPhone      MeetingType = "phone"
	MeetingInPerson   MeetingType = "in-person"
)

// DurationOptions lists the selectable meeting lengths in minutes.
var DurationOptions = []int{15, 30, 60}

// MeetingTypes lists the selectable meeting formats.
var MeetingTypes = []MeetingType{MeetingGoogleMeet, MeetingZoom, MeetingPhone, MeetingInPerson}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// PreferredDateLayout is the calendar-date format accepted from clients.
const PreferredDateLayout = "2006-01-02"

// SchedulingForm accumulates the booking details collected across turns.
// Duration and meeting type carry defaults, so completeness depends only on
// the three free-text fields.
type SchedulingForm struct {
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Purpose         string      `json:"purpose"`
	DurationMinutes int         `json:"durationMinutes"`
	MeetingType     MeetingType `json:"meetingType"`
	PreferredDate   string      `json:"preferredDate,omitempty"`
}

// NewSchedulingForm returns an empty form with default duration and type.
func NewSchedulingForm() SchedulingForm {
	return SchedulingForm{DurationMinutes: 30, MeetingType: MeetingGoogleMeet}
}

// UpdateSchedulingField returns a copy of the form with one field replaced.
// It does not check completeness; callers gate on Complete when they need a
// submittable form.
func UpdateSchedulingField(form SchedulingForm, field, value string) (SchedulingForm, error) {
	switch field {
	case "name":
		form.Name = value
	case "email":
		form.Email = value
	case "purpose":
		form.Purpose = value
	case "durationMinutes":
		minutes, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return form, &ValidationError{Field: field, Reason: "duration must be a number"}
		}
		if minutes != 15 && minutes != 30 && minutes != 60 {
			return form, &ValidationError{Field: field, Reason: "duration must be 15, 30 or 60 minutes"}
		}
		form.DurationMinutes = minutes
	case "meetingType":
		switch MeetingType(value) {
		case MeetingGoogleMeet, MeetingZoom, MeetingPhone, MeetingInPerson:
			form.MeetingType = MeetingType(value)
		default:
			return form, &ValidationError{Field: field, Reason: "unknown meeting type"}
		}
	case "preferredDate":
		if value != "" {
			if _, err := time.Parse(PreferredDateLayout, value); err != nil {
				return form, &ValidationError{Field: field, Reason: "date must be YYYY-MM-DD"}
			}
		}
		form.PreferredDate = value
	default:
		return form, &ValidationError{Field: field, Reason: "unknown scheduling field"}
	}
	return form, nil
}

// Complete reports whether the required fields are filled. Slot selection is
// tracked separately on the session and does not influence form completeness.
func (f SchedulingForm) Complete() bool {
	return strings.TrimSpace(f.Name) != "" &&
		strings.TrimSpace(f.Email) != "" &&
		strings.TrimSpace(f.Purpose) != ""
}

// Validate reports the first problem that would block an availability check.
// The preferred date, when present, must not be in the past relative to now.
func (f SchedulingForm) Validate(now time.Time) error {
	if strings.TrimSpace(f.Name) == "" {
		return &ValidationError{Field: "name", Reason: "name is required"}
	}
	if strings.TrimSpace(f.Email) == "" {
		return &ValidationError{Field: "email", Reason: "email is required"}
	}
	if !emailPattern.MatchString(strings.TrimSpace(f.Email)) {
		return &ValidationError{Field: "email", Reason: "email address is invalid"}
	}
	if strings.TrimSpace(f.Purpose) == "" {
		return &ValidationError{Field: "purpose", Reason: "meeting purpose is required"}
	}
	if f.PreferredDate != "" {
		date, err := time.ParseInLocation(PreferredDateLayout, f.PreferredDate, now.Location())
		if err != nil {
			return &ValidationError{Field: "preferredDate", Reason: "date must be YYYY-MM-DD"}
		}
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if date.Before(today) {
			return &ValidationError{Field: "preferredDate", Reason: "preferred date must be today or later"}
		}
	}
	return nil
}

// MinMessageLength is the shortest message body accepted for delivery.
const MinMessageLength = 10

// MessageForm accumulates the details of a message left for the owner.
type MessageForm struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Topic        string `json:"topic"`
	Body         string `json:"body"`
	ConsentGiven bool   `json:"consentGiven"`
}

// UpdateMessageField returns a copy of the form with one field replaced.
func UpdateMessageField(form MessageForm, field, value string) (MessageForm, error) {
	switch field {
	case "name":
		form.Name = value
	case "email":
		form.Email = value
	case "topic":
		form.Topic = value
	case "body":
		form.Body = value
	case "consentGiven":
		consent, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return form, &ValidationError{Field: field, Reason: "consent must be true or false"}
		}
		form.ConsentGiven = consent
	default:
		return form, &ValidationError{Field: field, Reason: "unknown message field"}
	}
	return form, nil
}

// Complete reports whether every field is filled and consent was given.
func (f MessageForm) Complete() bool {
	return strings.TrimSpace(f.Name) != "" &&
		strings.TrimSpace(f.Email) != "" &&
		strings.TrimSpace(f.Topic) != "" &&
		len(strings.TrimSpace(f.Body)) >= MinMessageLength &&
		f.ConsentGiven
}

// Validate reports the first problem that would block submission.
func (f MessageForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return &ValidationError{Field: "name", Reason: "name is required"}
	}
	if strings.TrimSpace(f.Email) == "" {
		return &ValidationError{Field: "email", Reason: "email is required"}
	}
	if !emailPattern.MatchString(strings.TrimSpace(f.Email)) {
		return &ValidationError{Field: "email", Reason: "email address is invalid"}
	}
	if strings.TrimSpace(f.Topic) == "" {
		return &ValidationError{Field: "topic", Reason: "topic is required"}
	}
	if len(strings.TrimSpace(f.Body)) < MinMessageLength {
		return &ValidationError{Field: "body", Reason: "message must be at least 10 characters"}
	}
	if !f.ConsentGiven {
		return &ValidationError{Field: "consentGiven", Reason: "consent is required before sending"}
	}
	return nil
}
