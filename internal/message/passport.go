package message

import (
	"visacrony-gateway/internal/sanitize"
	"visacrony-gateway/pkg/models"
)

func signOff(name string) string {
	return "I look forward to hearing from you soon.\n\nBest regards,\n" + name
}

func check(label string, v bool) Line {
	return Line{Label: label, Value: yesNo(v), Bullet: "✓"}
}

// FreshPassport builds the document for a first-time passport application.
func (b *Builder) FreshPassport(rec models.FreshPassport) Document {
	name := sanitize.Text(rec.FullName())

	return Document{
		Title:    "🛂 Fresh Passport Application",
		Greeting: "Dear " + b.Team + " Team,\n\nI would like to apply for a fresh passport. Please find my application details below:",
		Sections: []Section{
			{Title: "Personal Information", Lines: []Line{
				{Label: "Full Name", Value: name},
				{Label: "Date of Birth", Value: b.FormatDate(rec.DateOfBirth), Fallback: "Not specified"},
				{Label: "Place of Birth", Value: sanitize.Text(rec.PlaceOfBirth), Fallback: "Not provided"},
				{Label: "Gender", Value: sanitize.Text(rec.Gender), Fallback: "Not specified"},
				{Label: "Marital Status", Value: sanitize.Text(rec.MaritalStatus), Fallback: "Not specified"},
			}},
			{Title: "Contact Information", Lines: []Line{
				{Label: "Email", Value: sanitize.Email(rec.Email)},
				{Label: "Phone", Value: sanitize.Phone(rec.Phone)},
				{Label: "Alternate Phone", Value: sanitize.Phone(rec.AlternatePhone), Optional: true},
			}},
			{Title: "Address", Lines: []Line{
				{Label: "Street Address", Value: sanitize.Address(rec.CurrentAddress)},
				{Label: "City", Value: sanitize.Text(rec.City)},
				{Label: "State", Value: sanitize.Text(rec.State)},
				{Label: "Postal Code", Value: sanitize.Text(rec.PostalCode)},
				{Label: "Nationality", Value: sanitize.Text(rec.Nationality)},
			}},
			{Title: "Passport Details", Lines: []Line{
				{Label: "Passport Type", Value: sanitize.Text(rec.PassportType), Fallback: "Not specified"},
				{Label: "Purpose of Travel", Value: sanitize.Text(rec.PurposeOfTravel), Fallback: "Not specified"},
				{Label: "Intended Travel Date", Value: b.FormatDate(rec.IntendedTravelDate), Optional: true},
			}},
			{Title: "Documents Available", Lines: []Line{
				check("Birth Certificate", rec.HasBirthCertificate),
				check("Identity Proof", rec.HasIdentityProof),
				check("Address Proof", rec.HasAddressProof),
				check("Photo", rec.HasPhoto),
			}},
			{Title: "Additional Information", Lines: []Line{
				{Label: "Previous Passport", Value: yesNo(rec.PreviousPassport)},
				{Label: "Previous Passport Number", Value: sanitize.Text(rec.PreviousPassportNumber), Optional: true},
				{Label: "Criminal Record", Value: yesNo(rec.CriminalRecord)},
				{Label: "Criminal Record Details", Value: sanitize.Text(rec.CriminalRecordDetails), Optional: true},
				{Label: "Additional Message", Value: sanitize.Text(rec.AdditionalMessage), Optional: true},
			}},
		},
		Preference:   sanitize.Text(rec.PreferredContact),
		SubmittedAt:  b.FormatTimestamp(rec.Timestamp),
		EmailClosing: signOff(name),
	}
}

// PassportRenewal builds the document for a passport renewal application.
func (b *Builder) PassportRenewal(rec models.PassportRenewal) Document {
	name := sanitize.Text(rec.FullName())

	return Document{
		Title:    "🔄 Passport Renewal Application",
		Greeting: "Dear " + b.Team + " Team,\n\nI would like to renew my passport. Please find my application details below:",
		Sections: []Section{
			{Title: "Personal Information", Lines: []Line{
				{Label: "Full Name", Value: name},
				{Label: "Date of Birth", Value: b.FormatDate(rec.DateOfBirth), Fallback: "Not specified"},
			}},
			{Title: "Current Passport Details", Lines: []Line{
				{Label: "Passport Number", Value: sanitize.Text(rec.CurrentPassportNumber), Fallback: "Not provided"},
				{Label: "Issue Date", Value: b.FormatDate(rec.CurrentPassportIssueDate), Fallback: "Not specified"},
				{Label: "Expiry Date", Value: b.FormatDate(rec.CurrentPassportExpiryDate), Fallback: "Not specified"},
				{Label: "Place of Issue", Value: sanitize.Text(rec.CurrentPassportPlaceOfIssue), Fallback: "Not provided"},
			}},
			{Title: "Contact Information", Lines: []Line{
				{Label: "Email", Value: sanitize.Email(rec.Email)},
				{Label: "Phone", Value: sanitize.Phone(rec.Phone)},
				{Label: "Alternate Phone", Value: sanitize.Phone(rec.AlternatePhone), Optional: true},
			}},
			{Title: "Address", Lines: []Line{
				{Label: "Street Address", Value: sanitize.Address(rec.CurrentAddress)},
				{Label: "City", Value: sanitize.Text(rec.City)},
				{Label: "State", Value: sanitize.Text(rec.State)},
				{Label: "Postal Code", Value: sanitize.Text(rec.PostalCode)},
				{Label: "Nationality", Value: sanitize.Text(rec.Nationality)},
			}},
			{Title: "Renewal Details", Lines: []Line{
				{Label: "Reason", Value: sanitize.Text(rec.RenewalReason), Fallback: "Not specified"},
				{Label: "Other Reason", Value: sanitize.Text(rec.OtherReason), Optional: true},
				{Label: "Passport Type", Value: sanitize.Text(rec.PassportType), Fallback: "Not specified"},
				{Label: "Pages Required", Value: sanitize.Text(rec.PagesRequired), Fallback: "Not specified"},
			}},
			{Title: "Travel Information", Lines: []Line{
				{Label: "Upcoming Travel", Value: yesNo(rec.HasUpcomingTravel)},
				{Label: "Travel Date", Value: b.FormatDate(rec.UpcomingTravelDate), Optional: true},
				{Label: "Destination", Value: sanitize.Text(rec.TravelDestination), Optional: true},
				{Label: "Purpose", Value: sanitize.Text(rec.PurposeOfTravel), Optional: true},
			}},
			{Title: "Documents Available", Lines: []Line{
				check("Current Passport", rec.HasCurrentPassport),
				check("Old Passport", rec.HasOldPassport),
				check("Address Proof", rec.HasAddressProof),
				check("Photo", rec.HasPhoto),
				check("Name Change Document", rec.HasNameChangeDocument),
			}},
			{Title: "Additional Information", Lines: []Line{
				{Label: "Name Change", Value: yesNo(rec.NameChange)},
				{Label: "Name Change Details", Value: sanitize.Text(rec.NameChangeDetails), Optional: true},
				{Label: "Criminal Record", Value: yesNo(rec.CriminalRecord)},
				{Label: "Criminal Record Details", Value: sanitize.Text(rec.CriminalRecordDetails), Optional: true},
				{Label: "Additional Message", Value: sanitize.Text(rec.AdditionalMessage), Optional: true},
			}},
		},
		Preference:   sanitize.Text(rec.PreferredContact),
		SubmittedAt:  b.FormatTimestamp(rec.Timestamp),
		EmailClosing: signOff(name),
	}
}

// GeneralEnquiry builds the document for the short passport services enquiry.
func (b *Builder) GeneralEnquiry(rec models.GeneralEnquiry) Document {
	name := sanitize.Text(rec.Name)

	service := sanitize.Text(rec.SelectedCountry)
	if service == "" {
		service = "Passport Services"
	}
	category := sanitize.Text(rec.SelectedCategory)
	if category == "" {
		category = "General"
	}

	return Document{
		Title:    "Passport Services Enquiry",
		Greeting: "Dear " + b.Team + " Team,\n\nI am writing to enquire about " + service + ". Please find my details below:",
		Sections: []Section{
			{Title: "Personal Information", Lines: []Line{
				{Label: "Full Name", Value: name},
				{Label: "Email", Value: sanitize.Email(rec.Email)},
				{Label: "Phone", Value: sanitize.Phone(rec.Phone)},
				{Label: "Additional Message", Value: sanitize.Text(rec.Message), Fallback: "None"},
			}},
			{Title: "Service", Lines: []Line{
				{Label: "Selected Service", Value: service + " - " + category},
			}},
		},
		Preference:   sanitize.Text(rec.PreferredContact),
		SubmittedAt:  b.FormatTimestamp(rec.Timestamp),
		EmailClosing: signOff(name),
		ChatClosing:  enquiryThanks,
	}
}
