package chatbot

type ActionKind string

const (
	NavigateHome         ActionKind = "navigate_home"
	NavigateVisa         ActionKind = "navigate_visa"
	NavigatePassport     ActionKind = "navigate_passport"
	NavigateContact      ActionKind = "navigate_contact"
	NavigateAbout        ActionKind = "navigate_about"
	NavigateTestimonials ActionKind = "navigate_testimonials"

	ContactEmail    ActionKind = "contact_email"
	ContactPhone    ActionKind = "contact_phone"
	ContactWhatsApp ActionKind = "contact_whatsapp"

	ShowVisaTypes    ActionKind = "visa_types"
	SelectVisaType   ActionKind = "select_visa_type"
	SelectCountry    ActionKind = "select_country"
	ApplyVisa        ActionKind = "apply_visa"
	EnquiryVisa      ActionKind = "enquiry_visa"
	ContactAboutVisa ActionKind = "contact"
)

// Action is what a button does when clicked. Payload fields are set only
// for the kinds that use them: VisaType for select_visa_type, and VisaType
// plus CountryID for select_country, apply_visa, enquiry_visa and contact.
type Action struct {
	Kind      ActionKind  `json:"kind"`
	VisaType  VisaTypeKey `json:"visa_type,omitempty"`
	CountryID string      `json:"country_id,omitempty"`
}

// Key identifies the action for de-duplication and button IDs.
func (a Action) Key() string {
	k := string(a.Kind)
	if a.VisaType != "" {
		k += ":" + string(a.VisaType)
	}
	if a.CountryID != "" {
		k += ":" + a.CountryID
	}
	return k
}

type Button struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Action Action `json:"action"`
	Icon   string `json:"icon,omitempty"`
}

func button(label, icon string, a Action) Button {
	return Button{ID: a.Key(), Label: label, Action: a, Icon: icon}
}

// EffectKind tells the front end what to do besides showing the reply.
type EffectKind string

const (
	EffectNavigate EffectKind = "navigate"
	EffectOpen     EffectKind = "open"
)

type Effect struct {
	Kind   EffectKind        `json:"kind"`
	Path   string            `json:"path,omitempty"`
	Params map[string]string `json:"params,omitempty"`
	URL    string            `json:"url,omitempty"`
}

var navigation = map[ActionKind]struct {
	path string
	page string
}{
	NavigateHome:         {"/", "home"},
	NavigateVisa:         {"/visa-services", "visa services"},
	NavigatePassport:     {"/passport-services", "passport services"},
	NavigateContact:      {"/contact", "contact"},
	NavigateAbout:        {"/about", "about us"},
	NavigateTestimonials: {"/testimonials", "testimonials"},
}

func initialButtons() []Button {
	return []Button{
		button("Explore Visa Types", "globe", Action{Kind: ShowVisaTypes}),
		button("Passport Services", "file-text", Action{Kind: NavigatePassport}),
		button("Contact Us", "phone", Action{Kind: NavigateContact}),
		button("Chat on WhatsApp", "message-circle", Action{Kind: ContactWhatsApp}),
	}
}
