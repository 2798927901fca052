package message

import (
	"visacrony-gateway/internal/sanitize"
	"visacrony-gateway/pkg/models"
)

const enquiryThanks = "Thank you for your enquiry! We will get back to you soon."

// EmailSubject returns "Visa Enquiry - {country} - {name}". The country
// defaults to "Travel".
func EmailSubject(country, name string) string {
	c := sanitize.Text(country)
	if c == "" {
		c = "Travel"
	}
	return "Visa Enquiry - " + c + " - " + sanitize.Text(name)
}

// VisaEnquiry builds the document for a visa enquiry record.
func (b *Builder) VisaEnquiry(rec models.VisaEnquiry) Document {
	name := sanitize.Text(rec.Name)
	country := sanitize.Text(rec.SelectedCountry)

	destination := country
	if destination == "" {
		destination = "my travel destination"
	}

	return Document{
		Title: "Visa Enquiry Form Submission",
		Greeting: "Dear " + b.Team + " Team,\n\n" +
			"I am writing to inquire about visa services for " + destination + ". Please find my details below:",
		Sections: []Section{
			{Title: "Personal Information", Lines: []Line{
				{Label: "Full Name", Value: name},
				{Label: "Email", Value: sanitize.Email(rec.Email)},
				{Label: "Phone", Value: sanitize.Phone(rec.Phone)},
				{Label: "Passport Number", Value: sanitize.Text(rec.PassportNumber), Fallback: "Not provided"},
				{Label: "Nationality", Value: sanitize.Text(rec.Nationality)},
				{Label: "Date of Birth", Value: b.FormatDate(rec.DateOfBirth), Fallback: "Not specified"},
				{Label: "Gender", Value: sanitize.Text(rec.Gender), Fallback: "Not specified"},
			}},
			{Title: "Address", Lines: []Line{
				{Label: "Street Address", Value: sanitize.Address(rec.Address)},
				{Label: "State/Province", Value: sanitize.Text(rec.State)},
				{Label: "Country", Value: sanitize.Text(rec.Country)},
				{Label: "Postal Code", Value: sanitize.Text(rec.PostalCode)},
			}},
			{Title: "Travel Information", Lines: []Line{
				{Label: "Selected Country", Value: country},
				{Label: "Visa Type", Value: sanitize.Text(rec.SelectedVisaType)},
				{Label: "Category", Value: sanitize.Text(rec.SelectedCategory)},
				{Label: "Purpose of Visit", Value: sanitize.Text(rec.PurposeOfVisit)},
				{Label: "Number of Travelers", Value: sanitize.Text(rec.NumberOfTravelers)},
				{Label: "Travel Dates", Value: b.TravelDates(rec.FromDate, rec.ToDate), Fallback: "Not specified"},
				{Label: "Additional Message", Value: sanitize.Text(rec.Message), Fallback: "None"},
			}},
			{Title: "Additional Information", Lines: []Line{
				{Label: "Previous Travel History", Value: sanitize.Text(rec.PreviousTravelHistory), Fallback: "None provided"},
				{Label: "Previous Visa Application", Value: sanitize.Text(rec.PreviousVisaApplication), Fallback: "Not specified"},
			}},
		},
		Preference:   sanitize.Text(rec.PreferredContact),
		SubmittedAt:  b.FormatTimestamp(rec.Timestamp),
		EmailClosing: "I look forward to hearing from you soon.\n\nBest regards,\n" + name,
		ChatClosing:  enquiryThanks,
	}
}

// EmailBody renders a visa enquiry as a plain-text letter.
func (b *Builder) EmailBody(rec models.VisaEnquiry) string {
	return Email(b.VisaEnquiry(rec))
}

// WhatsAppMessage renders a visa enquiry for a chat surface.
func (b *Builder) WhatsAppMessage(rec models.VisaEnquiry) string {
	return WhatsApp(b.VisaEnquiry(rec))
}
