package models

import "time"

// VisaEnquiry is the flat record submitted by the visa enquiry form.
// Dates are "2006-01-02" or RFC 3339 strings as sent by the browser.
type VisaEnquiry struct {
	// Personal Information
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	PassportNumber string `json:"passportNumber"`
	Nationality    string `json:"nationality"`
	DateOfBirth    string `json:"dateOfBirth"`
	Address        string `json:"address"`
	State          string `json:"state"`
	Country        string `json:"country"`
	PostalCode     string `json:"postalCode"`
	Gender         string `json:"gender"`

	// Travel Information
	PurposeOfVisit    string `json:"purposeOfVisit"`
	NumberOfTravelers string `json:"numberOfTravelers"`
	FromDate          string `json:"fromDate"`
	ToDate            string `json:"toDate"`
	Message           string `json:"message"`

	// Additional Information
	PreviousTravelHistory   string `json:"previousTravelHistory"`
	PreviousVisaApplication string `json:"previousVisaApplication"`

	PreferredContact string `json:"preferredContact"` // email, whatsapp, both

	// Carried over from a country picked on the visa services page or in chat
	SelectedCountry  string `json:"selectedCountry"`
	SelectedVisaType string `json:"selectedVisaType"`
	SelectedCategory string `json:"selectedCategory"`

	Timestamp time.Time `json:"timestamp"`
}

// GeneralEnquiry is the short enquiry form shown on the passport services page.
type GeneralEnquiry struct {
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Message          string    `json:"message"`
	PreferredContact string    `json:"preferredContact"` // email, whatsapp, both
	SelectedCountry  string    `json:"selectedCountry"`  // service name when reached from a service tile
	SelectedVisaType string    `json:"selectedVisaType"`
	SelectedCategory string    `json:"selectedCategory"`
	Timestamp        time.Time `json:"timestamp"`
}

// FreshPassport is a first-time passport application.
type FreshPassport struct {
	FirstName     string `json:"firstName"`
	MiddleName    string `json:"middleName"`
	LastName      string `json:"lastName"`
	DateOfBirth   string `json:"dateOfBirth"`
	PlaceOfBirth  string `json:"placeOfBirth"`
	Gender        string `json:"gender"`        // male, female, other
	MaritalStatus string `json:"maritalStatus"` // single, married, divorced, widowed

	Email          string `json:"email"`
	Phone          string `json:"phone"`
	AlternatePhone string `json:"alternatePhone"`

	CurrentAddress string `json:"currentAddress"`
	City           string `json:"city"`
	State          string `json:"state"`
	PostalCode     string `json:"postalCode"`
	Nationality    string `json:"nationality"`

	PassportType       string `json:"passportType"` // ordinary, official, diplomatic
	PurposeOfTravel    string `json:"purposeOfTravel"`
	IntendedTravelDate string `json:"intendedTravelDate"`

	// Document checklist
	HasBirthCertificate bool `json:"hasBirthCertificate"`
	HasIdentityProof    bool `json:"hasIdentityProof"`
	HasAddressProof     bool `json:"hasAddressProof"`
	HasPhoto            bool `json:"hasPhoto"`

	PreviousPassport       bool   `json:"previousPassport"`
	PreviousPassportNumber string `json:"previousPassportNumber"`
	CriminalRecord         bool   `json:"criminalRecord"`
	CriminalRecordDetails  string `json:"criminalRecordDetails"`

	PreferredContact  string `json:"preferredContact"` // email, whatsapp, phone
	AdditionalMessage string `json:"additionalMessage"`

	SubmissionMethod string    `json:"submissionMethod"` // whatsapp, gmail
	ServiceType      string    `json:"serviceType"`
	Timestamp        time.Time `json:"timestamp"`
}

// FullName joins first, middle and last name, skipping empty parts.
func (f FreshPassport) FullName() string {
	return joinName(f.FirstName, f.MiddleName, f.LastName)
}

// PassportRenewal is a renewal or reissue application.
type PassportRenewal struct {
	FirstName   string `json:"firstName"`
	MiddleName  string `json:"middleName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`

	CurrentPassportNumber       string `json:"currentPassportNumber"`
	CurrentPassportIssueDate    string `json:"currentPassportIssueDate"`
	CurrentPassportExpiryDate   string `json:"currentPassportExpiryDate"`
	CurrentPassportPlaceOfIssue string `json:"currentPassportPlaceOfIssue"`

	Email          string `json:"email"`
	Phone          string `json:"phone"`
	AlternatePhone string `json:"alternatePhone"`

	CurrentAddress string `json:"currentAddress"`
	City           string `json:"city"`
	State          string `json:"state"`
	PostalCode     string `json:"postalCode"`
	Nationality    string `json:"nationality"`

	RenewalReason string `json:"renewalReason"` // expired, expiring, damaged, lost, name_change, other
	OtherReason   string `json:"otherReason"`
	PassportType  string `json:"passportType"`
	PagesRequired string `json:"pagesRequired"` // 36, 60

	HasUpcomingTravel  bool   `json:"hasUpcomingTravel"`
	UpcomingTravelDate string `json:"upcomingTravelDate"`
	TravelDestination  string `json:"travelDestination"`
	PurposeOfTravel    string `json:"purposeOfTravel"`

	// Document checklist
	HasCurrentPassport    bool `json:"hasCurrentPassport"`
	HasOldPassport        bool `json:"hasOldPassport"`
	HasAddressProof       bool `json:"hasAddressProof"`
	HasPhoto              bool `json:"hasPhoto"`
	HasNameChangeDocument bool `json:"hasNameChangeDocument"`

	NameChange            bool   `json:"nameChange"`
	NameChangeDetails     string `json:"nameChangeDetails"`
	CriminalRecord        bool   `json:"criminalRecord"`
	CriminalRecordDetails string `json:"criminalRecordDetails"`

	PreferredContact  string `json:"preferredContact"`
	AdditionalMessage string `json:"additionalMessage"`

	SubmissionMethod string    `json:"submissionMethod"`
	ServiceType      string    `json:"serviceType"`
	Timestamp        time.Time `json:"timestamp"`
}

// FullName joins first, middle and last name, skipping empty parts.
func (r PassportRenewal) FullName() string {
	return joinName(r.FirstName, r.MiddleName, r.LastName)
}

func joinName(parts ...string) string {
	name := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if name != "" {
			name += " "
		}
		name += p
	}
	return name
}
