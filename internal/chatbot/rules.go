package chatbot

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

type Intent string

const (
	IntentPrice    Intent = "price"
	IntentVisa     Intent = "visa"
	IntentPassport Intent = "passport"
	IntentTime     Intent = "time"
	IntentContact  Intent = "contact"
	IntentGreeting Intent = "greeting"
	IntentUnknown  Intent = "unknown"
)

const (
	InitialGreeting = "Hi! I'm here to help you with your visa and passport needs. How can I assist you today?"
	FallbackReply   = "I'd be happy to help you with that! For detailed information about our services, pricing, or to get personalized assistance, I recommend booking a free consultation with our visa experts. They can provide you with accurate information based on your specific needs. Would you like me to help you get in touch?"
	UnknownAction   = "I'm not sure how to help with that. Please choose one of the options below or type your question."
)

// Condition matches normalized message text. Operator is one of equals,
// contains, starts_with or regex; Value is compared lower-cased.
type Condition struct {
	Operator string
	Value    string
}

func contains(words ...string) []Condition {
	conds := make([]Condition, len(words))
	for i, w := range words {
		conds[i] = Condition{Operator: "contains", Value: w}
	}
	return conds
}

// anyMatch reports whether at least one condition matches.
func anyMatch(conds []Condition, message string) bool {
	message = strings.ToLower(strings.TrimSpace(message))
	for _, c := range conds {
		if matchKeyword(message, c.Operator, c.Value) {
			return true
		}
	}
	return false
}

func matchKeyword(message, operator, value string) bool {
	value = strings.ToLower(value)

	switch operator {
	case "equals":
		return message == value
	case "contains":
		return strings.Contains(message, value)
	case "starts_with":
		return strings.HasPrefix(message, value)
	case "regex":
		matched, err := regexp.MatchString(value, message)
		if err != nil {
			logrus.WithError(err).Warnf("[CHATBOT] bad rule pattern %q", value)
			return false
		}
		return matched
	default:
		return false
	}
}

// ReplyRule maps keywords to a canned reply.
type ReplyRule struct {
	Intent     Intent
	Conditions []Condition
	Reply      string
}

// ReplyRules is evaluated top to bottom and the first match wins. Pricing
// comes first so "visa price" questions get the pricing answer.
var ReplyRules = []ReplyRule{
	{
		Intent:     IntentPrice,
		Conditions: contains("price", "cost", "fee"),
		Reply:      "Our pricing varies based on the service type and processing time. For accurate pricing, I'd recommend booking a free consultation with our experts. Would you like me to help you schedule one?",
	},
	{
		Intent:     IntentVisa,
		Conditions: contains("visa", "tourist", "business"),
		Reply:      "Great! We offer comprehensive visa services for tourist, business, and other visa types. Our processing time is typically 3-21 days with a 95% success rate. Would you like to know more about any specific visa type?",
	},
	{
		Intent:     IntentPassport,
		Conditions: contains("passport"),
		Reply:      "We provide complete passport services including new applications, renewals, and urgent processing. Our team handles all the paperwork and ensures quick processing. What passport service do you need help with?",
	},
	{
		Intent:     IntentTime,
		Conditions: contains("time", "processing", "duration"),
		Reply:      "Processing times vary: Tourist visas typically take 3-7 days, business visas 5-14 days, and passports 7-21 days. We also offer express services for urgent applications. What type of application are you planning?",
	},
	{
		Intent:     IntentContact,
		Conditions: contains("contact", "call", "phone"),
		Reply:      "You can reach us through our Contact page or book a free consultation directly. We provide 24/7 assistance and have experts ready to help with your application. Would you like me to direct you to our contact form?",
	},
	{
		Intent:     IntentGreeting,
		Conditions: contains("hello", "hi", "hey"),
		Reply:      "Hello! Welcome to VisaCrony. I'm here to help you with all your visa and passport needs. What can I assist you with today?",
	},
}

// Classify returns the first reply rule matching text, or the fallback.
func Classify(text string) (Intent, string) {
	for _, r := range ReplyRules {
		if anyMatch(r.Conditions, text) {
			return r.Intent, r.Reply
		}
	}
	return IntentUnknown, FallbackReply
}

// ActionRule suggests buttons when any of its conditions match.
type ActionRule struct {
	Group      string
	Conditions []Condition
	Buttons    []Button
}

// ActionRules is evaluated independently of ReplyRules; every matching
// group contributes its buttons in table order.
var ActionRules = []ActionRule{
	{
		Group:      "form",
		Conditions: contains("apply", "application", "form", "enquiry", "enquire", "inquiry", "book", "consultation"),
		Buttons: []Button{
			button("Visa Enquiry Form", "file-text", Action{Kind: NavigateVisa}),
			button("Passport Application", "book-open", Action{Kind: NavigatePassport}),
		},
	},
	{
		Group:      "visa",
		Conditions: contains("visa", "country", "countries", "tourist", "business", "travel", "evisa", "e-visa", "sticker", "embassy", "arrival"),
		Buttons: []Button{
			button("Explore Visa Types", "globe", Action{Kind: ShowVisaTypes}),
			button("Visa Services", "plane", Action{Kind: NavigateVisa}),
		},
	},
	{
		Group:      "contact",
		Conditions: contains("contact", "call", "phone", "email", "mail", "whatsapp", "talk", "speak", "reach"),
		Buttons: []Button{
			button("Email Us", "mail", Action{Kind: ContactEmail}),
			button("Call Us", "phone", Action{Kind: ContactPhone}),
			button("WhatsApp", "message-circle", Action{Kind: ContactWhatsApp}),
		},
	},
	{
		Group:      "navigation",
		Conditions: contains("about", "company", "who are you", "testimonial", "review", "experience"),
		Buttons: []Button{
			button("About Us", "info", Action{Kind: NavigateAbout}),
			button("Testimonials", "star", Action{Kind: NavigateTestimonials}),
		},
	},
	{
		Group:      "follow-up",
		Conditions: contains("help", "more", "detail", "information", "info", "question", "assist"),
		Buttons: []Button{
			button("Contact Us", "phone", Action{Kind: NavigateContact}),
		},
	},
}

// SuggestActions collects the buttons of every matching action group,
// dropping repeats of an action already suggested.
func SuggestActions(text string) []Button {
	var out []Button
	seen := map[string]bool{}
	for _, r := range ActionRules {
		if !anyMatch(r.Conditions, text) {
			continue
		}
		for _, b := range r.Buttons {
			if seen[b.ID] {
				continue
			}
			seen[b.ID] = true
			out = append(out, b)
		}
	}
	return out
}
