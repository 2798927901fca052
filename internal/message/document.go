// Package message renders form submissions into the text that is handed to
// the mail and WhatsApp channels.
//
// Every submission is first turned into a Document. The Email and WhatsApp
// renderers walk the same Document, so both variants always carry the same
// fields and the same fallback text and only differ in formatting.
package message

import (
	"strings"
	"time"
)

const defaultBullet = "•"

// Line is one "Label: value" row.
type Line struct {
	Label    string
	Value    string
	Fallback string // rendered when Value is empty
	Bullet   string // defaults to "•"
	Optional bool   // omit the whole line when Value is empty
}

// Section is a titled group of lines.
type Section struct {
	Title string
	Lines []Line
}

// Document is the channel-neutral form of a submission.
type Document struct {
	Title        string
	Greeting     string // email only
	Sections     []Section
	Preference   string
	SubmittedAt  string
	EmailClosing string
	ChatClosing  string
}

// Email renders the document as a plain-text letter.
func Email(doc Document) string {
	var b strings.Builder
	b.WriteString(doc.Title)
	b.WriteString("\n\n")
	if doc.Greeting != "" {
		b.WriteString(doc.Greeting)
		b.WriteString("\n\n")
	}
	for _, s := range doc.Sections {
		b.WriteString(strings.ToUpper(s.Title))
		b.WriteString(":\n")
		writeLines(&b, s.Lines)
		b.WriteString("\n")
	}
	b.WriteString("COMMUNICATION PREFERENCE: ")
	b.WriteString(doc.Preference)
	b.WriteString("\n\nSubmitted on: ")
	b.WriteString(doc.SubmittedAt)
	if doc.EmailClosing != "" {
		b.WriteString("\n\n")
		b.WriteString(doc.EmailClosing)
	}
	return b.String()
}

// WhatsApp renders the document with Markdown-bold headings for chat surfaces.
func WhatsApp(doc Document) string {
	var b strings.Builder
	b.WriteString("**")
	b.WriteString(doc.Title)
	b.WriteString("**\n\n")
	for _, s := range doc.Sections {
		b.WriteString("**")
		b.WriteString(s.Title)
		b.WriteString(":**\n")
		writeLines(&b, s.Lines)
		b.WriteString("\n")
	}
	b.WriteString("**Communication Preference:** ")
	b.WriteString(doc.Preference)
	b.WriteString("\n\n**Submitted on:** ")
	b.WriteString(doc.SubmittedAt)
	if doc.ChatClosing != "" {
		b.WriteString("\n\n")
		b.WriteString(doc.ChatClosing)
	}
	return b.String()
}

func writeLines(b *strings.Builder, lines []Line) {
	for _, l := range lines {
		value := l.Value
		if value == "" {
			if l.Optional {
				continue
			}
			value = l.Fallback
		}
		bullet := l.Bullet
		if bullet == "" {
			bullet = defaultBullet
		}
		b.WriteString(bullet)
		b.WriteString(" ")
		b.WriteString(l.Label)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("\n")
	}
}

// Builder turns submission records into Documents. Dates and the submission
// timestamp are rendered in Location.
type Builder struct {
	Location *time.Location
	Team     string
}

// NewBuilder returns a Builder for the given time zone; nil means UTC.
func NewBuilder(loc *time.Location) *Builder {
	if loc == nil {
		loc = time.UTC
	}
	return &Builder{Location: loc, Team: "VisaCrony"}
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
