// Package classifier provides the deterministic fallback for interpreting
// student messages: intent detection, complaint category inference and FAQ
// matching. It is pure string matching with no state, used whenever the
// triage service is unavailable or unconfigured.
package classifier

import (
	"regexp"
	"strings"

	"hostelhelper/backend/internal/models"
)

// Canned assistant replies. The wording is part of the product, not
// placeholder text; tests pin the intent routing, not the copy.
const (
	GreetingReply  = "Hi there! I'm your Hostel & Mess Assistant. How can I help you today? You can ask about facilities, submit a complaint, or check complaint status."
	ComplaintReply = "I understand you want to submit a complaint. Please tell me if it's related to hostel facilities, mess food, or something else. Then describe your issue in detail."
	StatusReply    = "To check your complaint status, please provide your ticket number. If you don't have one, you can view all your complaints from the dashboard."
	DefaultReply   = "I'm not sure I understand that. Could you rephrase your question? Or if you'd like to submit a complaint, just type 'new complaint'."
)

// Intent patterns, checked in order: greeting, complaint, status query.
// The order is load-bearing; "hello" must never reach the complaint branch.
var (
	greetingRe  = regexp.MustCompile(`\b(hi|hello|hey|greetings)\b`)
	complaintRe = regexp.MustCompile(`\b(complaint|complain|issue|problem|broken|not working|bad)\b`)
	statusRe    = regexp.MustCompile(`\b(status|track|ticket|complaint id)\b`)

	// intentRe is the looser pattern the triage adapter falls back to when
	// the external service fails mid-conversation.
	intentRe = regexp.MustCompile(`complaint|issue|problem|broken|not working`)
)

// Category keyword sets. Hostel is checked before mess; first match wins.
var (
	hostelKeywords = []string{"hostel", "room", "bathroom", "facility"}
	messKeywords   = []string{"mess", "food", "meal", "canteen"}
)

// Response is the classifier's answer for one message.
type Response struct {
	Text        string
	IsComplaint bool
}

// Classifier matches messages against intents and a FAQ catalogue.
type Classifier struct {
	faqs []models.FAQ
}

// New returns a classifier over the given FAQ catalogue.
func New(faqs []models.FAQ) *Classifier {
	return &Classifier{faqs: faqs}
}

// Process interprets a free-text message. Branches are evaluated in a fixed
// order (greeting, complaint intent, status query, FAQ, default) so the
// outcome is deterministic.
func (c *Classifier) Process(message string) Response {
	lower := strings.ToLower(message)

	if greetingRe.MatchString(lower) {
		return Response{Text: GreetingReply}
	}

	if complaintRe.MatchString(lower) {
		return Response{Text: ComplaintReply, IsComplaint: true}
	}

	if statusRe.MatchString(lower) {
		return Response{Text: StatusReply}
	}

	if faq := c.MatchFAQ(message); faq != nil {
		return Response{Text: faq.Answer}
	}

	return Response{Text: DefaultReply}
}

// MatchFAQ finds a FAQ for the query: an exact (case-insensitive) question
// match first, then the first FAQ with any keyword contained in the query.
func (c *Classifier) MatchFAQ(query string) *models.FAQ {
	lower := strings.ToLower(query)

	for i := range c.faqs {
		if strings.ToLower(c.faqs[i].Question) == lower {
			return &c.faqs[i]
		}
	}

	for i := range c.faqs {
		for _, keyword := range c.faqs[i].Keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				return &c.faqs[i]
			}
		}
	}

	return nil
}

// InferCategory derives the complaint category from the student's wording.
// Hostel keywords are checked before mess keywords; no match means "other".
func InferCategory(message string) string {
	lower := strings.ToLower(message)

	for _, keyword := range hostelKeywords {
		if strings.Contains(lower, keyword) {
			return models.CategoryHostel
		}
	}
	for _, keyword := range messKeywords {
		if strings.Contains(lower, keyword) {
			return models.CategoryMess
		}
	}
	return models.CategoryOther
}

// HasComplaintIntent applies the loose complaint pattern used as the triage
// adapter's degraded-mode signal.
func HasComplaintIntent(message string) bool {
	return intentRe.MatchString(strings.ToLower(message))
}
