package chatbot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"visacrony-gateway/internal/channel"
	"visacrony-gateway/internal/sanitize"
)

var (
	ErrSessionNotFound = errors.New("chat session not found")
	ErrSessionClosed   = errors.New("chat session is closed")
	ErrEmptyMessage    = errors.New("message is empty")
)

type State string

const (
	StateIdle          State = "idle"
	StateListening     State = "listening"
	StateAwaitingReply State = "awaiting_reply"
)

// Flow tracks the guided visa browsing sub-flow.
type Flow string

const (
	FlowNone              Flow = ""
	FlowBrowsingVisaTypes Flow = "browsing_visa_types"
	FlowBrowsingCountries Flow = "browsing_countries"
	FlowCountrySelected   Flow = "country_selected"
)

type MessageKind string

const (
	KindText       MessageKind = "text"
	KindAction     MessageKind = "action"
	KindFormGuide  MessageKind = "form_guide"
	KindContact    MessageKind = "contact"
	KindNavigation MessageKind = "navigation"
)

// Message is immutable once appended to the log.
type Message struct {
	ID        string      `json:"id"`
	Text      string      `json:"text"`
	IsBot     bool        `json:"isBot"`
	Timestamp time.Time   `json:"timestamp"`
	IsError   bool        `json:"isError,omitempty"`
	Actions   []Button    `json:"actions,omitempty"`
	Kind      MessageKind `json:"kind"`
}

// Reply is what one Send or Dispatch appended, plus any side effects the
// front end should carry out.
type Reply struct {
	Messages []Message `json:"messages"`
	Effects  []Effect  `json:"effects,omitempty"`
}

type Options struct {
	Catalog   *Catalog
	Contact   ContactInfo
	Responder Responder            // nil means canned replies only
	Typing    func() time.Duration // nil means no artificial delay
	Now       func() time.Time
}

// Session owns one visitor's message log and guided-flow selection. Every
// operation holds the session lock until it has finished, so operations on
// a session never interleave.
type Session struct {
	ID string

	opts Options

	mu              sync.Mutex
	state           State
	flow            Flow
	selectedType    VisaTypeKey
	selectedCountry *Country
	messages        []Message
	hasError        bool

	lastActive atomic.Int64
}

func NewSession(id string, opts Options) *Session {
	if opts.Catalog == nil {
		opts.Catalog = NewCatalog()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Session{ID: id, opts: opts, state: StateListening}
	s.reset()
	s.touch()
	return s
}

// Snapshot is a copy of the session state safe to serialize.
type Snapshot struct {
	ID               string      `json:"id"`
	State            State       `json:"state"`
	Flow             Flow        `json:"flow,omitempty"`
	SelectedVisaType VisaTypeKey `json:"selectedVisaType,omitempty"`
	SelectedCountry  *Country    `json:"selectedCountry,omitempty"`
	HasError         bool        `json:"hasError"`
	Messages         []Message   `json:"messages"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:               s.ID,
		State:            s.state,
		Flow:             s.flow,
		SelectedVisaType: s.selectedType,
		HasError:         s.hasError,
		Messages:         append([]Message(nil), s.messages...),
	}
	if s.selectedCountry != nil {
		c := *s.selectedCountry
		snap.SelectedCountry = &c
	}
	return snap
}

// LastActive is readable without the session lock.
func (s *Session) LastActive() time.Time {
	return time.Unix(0, s.lastActive.Load())
}

func (s *Session) touch() {
	s.lastActive.Store(s.opts.Now().UnixNano())
}

// Open moves a closed widget back to listening.
func (s *Session) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateListening
	s.touch()
}

// Close moves the widget to idle. The log and selection are kept.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateIdle
	s.touch()
}

// Clear resets the log to the initial greeting and drops the selection.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	s.touch()
}

func (s *Session) reset() {
	s.messages = []Message{s.botMessage(InitialGreeting, KindAction, initialButtons())}
	s.hasError = false
	s.flow = FlowNone
	s.selectedType = ""
	s.selectedCountry = nil
}

func (s *Session) newMessage(text string, isBot bool, kind MessageKind, actions []Button) Message {
	return Message{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Text:      text,
		IsBot:     isBot,
		Timestamp: s.opts.Now(),
		Actions:   actions,
		Kind:      kind,
	}
}

func (s *Session) botMessage(text string, kind MessageKind, actions []Button) Message {
	return s.newMessage(text, true, kind, actions)
}

// Send appends the visitor's text and the bot's reply. The reply comes from
// the responder when one is configured and succeeds, otherwise from the
// reply rules. Suggested buttons always come from the visitor's own text.
func (s *Session) Send(ctx context.Context, text string) (Reply, error) {
	if strings.TrimSpace(text) == "" {
		return Reply{}, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateIdle {
		return Reply{}, ErrSessionClosed
	}
	s.touch()
	defer s.touch()

	history := append([]Message(nil), s.messages...)
	user := s.newMessage(text, false, KindText, nil)
	s.messages = append(s.messages, user)

	s.state = StateAwaitingReply
	defer func() { s.state = StateListening }()

	reply := s.generate(ctx, history, text)

	actions := SuggestActions(text)
	kind := KindText
	if len(actions) > 0 {
		kind = KindAction
	}
	bot := s.botMessage(reply, kind, actions)
	s.messages = append(s.messages, bot)

	return Reply{Messages: []Message{user, bot}}, nil
}

func (s *Session) generate(ctx context.Context, history []Message, text string) string {
	if s.opts.Responder != nil {
		prompt := BuildPrompt(s.opts.Catalog, s.opts.Contact, history, text)
		out, err := s.opts.Responder.Respond(ctx, prompt)
		if err == nil {
			if clean := sanitize.StrictHTML(out); clean != "" {
				return clean
			}
			err = errors.New("empty response")
		}
		logrus.WithError(err).WithField("session", s.ID).Warn("[CHATBOT] responder failed, using canned reply")
	}

	_, reply := Classify(text)
	s.wait(ctx)
	return reply
}

// wait simulates typing. Cancellation cuts the delay short but the reply
// is still appended so every visitor message gets an answer.
func (s *Session) wait(ctx context.Context) {
	if s.opts.Typing == nil {
		return
	}
	d := s.opts.Typing()
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Dispatch runs a clicked button's action and appends the bot's response.
func (s *Session) Dispatch(ctx context.Context, a Action) (Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateIdle {
		return Reply{}, ErrSessionClosed
	}
	s.touch()

	reply := s.route(a)
	s.messages = append(s.messages, reply.Messages...)
	for _, m := range reply.Messages {
		if m.IsError {
			s.hasError = true
		}
	}
	return reply, nil
}

func (s *Session) route(a Action) Reply {
	if nav, ok := navigation[a.Kind]; ok {
		return Reply{
			Messages: []Message{s.botMessage(fmt.Sprintf("Taking you to our %s page.", nav.page), KindNavigation, nil)},
			Effects:  []Effect{{Kind: EffectNavigate, Path: nav.path}},
		}
	}

	switch a.Kind {
	case ContactEmail:
		return s.openLink(
			channel.MailtoURL(s.opts.Contact.Email, "Visa and Passport Enquiry"),
			fmt.Sprintf("Opening your email app so you can write to us at %s.", s.opts.Contact.Email),
		)
	case ContactPhone:
		return s.openLink(
			channel.TelURL(s.opts.Contact.Phone),
			fmt.Sprintf("Calling our team at %s.", s.opts.Contact.Phone),
		)
	case ContactWhatsApp:
		return s.openLink(
			channel.WhatsAppURL(s.opts.Contact.WhatsApp, "Hi! I need help with visa and passport services."),
			"Opening WhatsApp so you can chat with our team directly.",
		)
	case ShowVisaTypes:
		return s.showVisaTypes()
	case SelectVisaType:
		return s.selectVisaType(a.VisaType)
	case SelectCountry:
		return s.selectCountry(a.VisaType, a.CountryID)
	case ApplyVisa, EnquiryVisa:
		return s.startVisaForm(a)
	case ContactAboutVisa:
		return s.contactAboutVisa(a)
	default:
		return Reply{Messages: []Message{s.botMessage(UnknownAction, KindText, initialButtons())}}
	}
}

func (s *Session) openLink(url, confirmation string) Reply {
	return Reply{
		Messages: []Message{s.botMessage(confirmation, KindContact, nil)},
		Effects:  []Effect{{Kind: EffectOpen, URL: url}},
	}
}

func (s *Session) showVisaTypes() Reply {
	s.flow = FlowBrowsingVisaTypes
	types := s.opts.Catalog.Types()
	buttons := make([]Button, 0, len(types))
	for _, t := range types {
		buttons = append(buttons, button(t.Title, "globe", Action{Kind: SelectVisaType, VisaType: t.Key}))
	}
	return Reply{Messages: []Message{s.botMessage("We offer the following visa types. Which one are you interested in?", KindAction, buttons)}}
}

func (s *Session) selectVisaType(key VisaTypeKey) Reply {
	t, err := s.opts.Catalog.Type(key)
	if err != nil {
		return s.errorReply("Sorry, I couldn't find that visa type. Please pick one of the options below.")
	}
	s.selectedType = t.Key
	s.selectedCountry = nil
	s.flow = FlowBrowsingCountries

	buttons := make([]Button, 0, len(t.Countries))
	for _, c := range t.Countries {
		buttons = append(buttons, button(c.Name, "map-pin", Action{Kind: SelectCountry, VisaType: t.Key, CountryID: c.ID}))
	}
	text := fmt.Sprintf("Here are the countries we handle for %s. Select a country to see processing time and fees.", t.Title)
	return Reply{Messages: []Message{s.botMessage(text, KindAction, buttons)}}
}

// selectCountry looks in the button's visa type, then the session's, then
// the whole catalog.
func (s *Session) selectCountry(key VisaTypeKey, id string) Reply {
	if key == "" {
		key = s.selectedType
	}
	c, ok := s.opts.Catalog.Country(key, id)
	if !ok {
		c, ok = s.opts.Catalog.Country("", id)
	}
	if !ok {
		return s.errorReply("Sorry, I couldn't find that country. Please pick a visa type to browse the available countries.")
	}

	s.selectedType = c.Category
	s.selectedCountry = &c
	s.flow = FlowCountrySelected

	return Reply{Messages: []Message{s.botMessage(CountryDetail(c), KindFormGuide, countryButtons(c))}}
}

// CountryDetail renders the detail card for a catalog entry.
func CountryDetail(c Country) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n\n", c.Name, c.VisaType)
	fmt.Fprintf(&b, "• Processing Time: %s\n", c.ProcessingDays)
	fmt.Fprintf(&b, "• Visa Fee: %s\n", c.VisaFees)
	fmt.Fprintf(&b, "• Service Fee: %s\n\n", c.ServiceFees)
	b.WriteString(c.Description)
	b.WriteString("\n\nWhat would you like to do next?")
	return b.String()
}

func countryButtons(c Country) []Button {
	payload := func(k ActionKind) Action {
		return Action{Kind: k, VisaType: c.Category, CountryID: c.ID}
	}
	return []Button{
		button("Apply Now", "check-circle", payload(ApplyVisa)),
		button("Send Enquiry", "file-text", payload(EnquiryVisa)),
		button("Talk to an Expert", "message-circle", payload(ContactAboutVisa)),
	}
}

// countryFor resolves the payload of a follow-up button, falling back to
// the current selection.
func (s *Session) countryFor(a Action) (Country, bool) {
	if a.CountryID != "" {
		if c, ok := s.opts.Catalog.Country(a.VisaType, a.CountryID); ok {
			return c, true
		}
	}
	if s.selectedCountry != nil {
		return *s.selectedCountry, true
	}
	return Country{}, false
}

func (s *Session) startVisaForm(a Action) Reply {
	mode, noun := "apply", "application"
	if a.Kind == EnquiryVisa {
		mode, noun = "enquiry", "enquiry"
	}

	effect := Effect{Kind: EffectNavigate, Path: "/visa-services"}
	text := fmt.Sprintf("Taking you to our visa services page to start your %s.", noun)

	if c, ok := s.countryFor(a); ok {
		effect.Params = map[string]string{
			"country":  c.ID,
			"visaType": string(c.Category),
			"mode":     mode,
		}
		text = fmt.Sprintf("Taking you to our visa services page to start your %s %s.", c.Name, noun)
	}

	return Reply{
		Messages: []Message{s.botMessage(text, KindNavigation, nil)},
		Effects:  []Effect{effect},
	}
}

func (s *Session) contactAboutVisa(a Action) Reply {
	text := "Hi! I'd like to talk to a visa expert."
	if c, ok := s.countryFor(a); ok {
		text = fmt.Sprintf("Hi! I'd like to know more about the %s visa (%s).", c.Name, c.VisaType)
	}
	return s.openLink(
		channel.WhatsAppURL(s.opts.Contact.WhatsApp, text),
		"Opening WhatsApp so you can talk to one of our visa experts.",
	)
}

func (s *Session) errorReply(text string) Reply {
	m := s.botMessage(text, KindText, []Button{button("Explore Visa Types", "globe", Action{Kind: ShowVisaTypes})})
	m.IsError = true
	return Reply{Messages: []Message{m}}
}
