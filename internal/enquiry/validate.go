package enquiry

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"visacrony-gateway/internal/message"
	"visacrony-gateway/pkg/models"
)

var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

// ValidationError carries one message per failing field, keyed by the
// field's JSON name.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}
	fields := make(map[string]string, len(errs))
	for k, e := range errs {
		if e != nil {
			fields[k] = e.Error()
		}
	}
	return &ValidationError{Fields: fields}
}

// minLen rejects empty values too, with the same message.
func minLen(n int, msg string) []validation.Rule {
	return []validation.Rule{
		validation.Required.Error(msg),
		validation.By(func(v interface{}) error {
			s, _ := v.(string)
			if len([]rune(strings.TrimSpace(s))) < n {
				return errors.New(msg)
			}
			return nil
		}),
	}
}

func required(msg string) validation.Rule {
	return validation.Required.Error(msg)
}

func oneOf(msg string, values ...string) []validation.Rule {
	in := make([]interface{}, len(values))
	for i, v := range values {
		in[i] = v
	}
	return []validation.Rule{validation.Required.Error(msg), validation.In(in...).Error(msg)}
}

var validDate = validation.By(func(v interface{}) error {
	s, _ := v.(string)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, _, ok := message.ParseDate(s); !ok {
		return errors.New("Please enter a valid date")
	}
	return nil
})

func ValidateVisaEnquiry(ctx context.Context, r *models.VisaEnquiry) error {
	return toValidationError(validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Name, required("Full name is required")),
		validation.Field(&r.Email, required("Email is required"), validation.Match(emailPattern).Error("Invalid email address")),
		validation.Field(&r.Phone, required("Phone number is required")),
		validation.Field(&r.DateOfBirth, required("Date of birth is required"), validDate),
		validation.Field(&r.Address, required("Address is required")),
		validation.Field(&r.State, required("State is required")),
		validation.Field(&r.Country, required("Country is required")),
		validation.Field(&r.PostalCode, required("Postal code is required")),
		validation.Field(&r.FromDate, validDate),
		validation.Field(&r.ToDate, validDate),
		validation.Field(&r.PreferredContact, oneOf("Please select your preferred contact method", "email", "whatsapp", "both")...),
	))
}

func ValidateGeneralEnquiry(ctx context.Context, r *models.GeneralEnquiry) error {
	return toValidationError(validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Name, required("Full name is required")),
		validation.Field(&r.Email, required("Email is required"), validation.Match(emailPattern).Error("Invalid email address")),
		validation.Field(&r.Phone, required("Phone number is required")),
		validation.Field(&r.PreferredContact, oneOf("Please select your preferred contact method", "email", "whatsapp", "both")...),
	))
}

func ValidateFreshPassport(ctx context.Context, r *models.FreshPassport) error {
	return toValidationError(validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.FirstName, minLen(2, "First name must be at least 2 characters")...),
		validation.Field(&r.LastName, minLen(2, "Last name must be at least 2 characters")...),
		validation.Field(&r.DateOfBirth, required("Date of birth is required"), validDate),
		validation.Field(&r.PlaceOfBirth, minLen(2, "Place of birth is required")...),
		validation.Field(&r.Gender, oneOf("Please select your gender", "male", "female", "other")...),
		validation.Field(&r.MaritalStatus, oneOf("Please select your marital status", "single", "married", "divorced", "widowed")...),
		validation.Field(&r.Email, required("Please enter a valid email address"), is.EmailFormat.Error("Please enter a valid email address")),
		validation.Field(&r.Phone, minLen(10, "Phone number must be at least 10 digits")...),
		validation.Field(&r.CurrentAddress, minLen(10, "Current address is required")...),
		validation.Field(&r.City, minLen(2, "City is required")...),
		validation.Field(&r.State, minLen(2, "State is required")...),
		validation.Field(&r.PostalCode, minLen(5, "Postal code is required")...),
		validation.Field(&r.Nationality, minLen(2, "Nationality is required")...),
		validation.Field(&r.PassportType, oneOf("Please select passport type", "ordinary", "official", "diplomatic")...),
		validation.Field(&r.PurposeOfTravel, minLen(5, "Purpose of travel is required")...),
		validation.Field(&r.IntendedTravelDate, validDate),
		validation.Field(&r.PreferredContact, oneOf("Please select your preferred contact method", "email", "whatsapp", "phone")...),
		validation.Field(&r.SubmissionMethod, validation.In("whatsapp", "gmail").Error("Please select a submission method")),
	))
}

func ValidatePassportRenewal(ctx context.Context, r *models.PassportRenewal) error {
	return toValidationError(validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.FirstName, minLen(2, "First name must be at least 2 characters")...),
		validation.Field(&r.LastName, minLen(2, "Last name must be at least 2 characters")...),
		validation.Field(&r.DateOfBirth, required("Date of birth is required"), validDate),
		validation.Field(&r.CurrentPassportNumber, minLen(8, "Current passport number is required")...),
		validation.Field(&r.CurrentPassportIssueDate, required("Issue date is required"), validDate),
		validation.Field(&r.CurrentPassportExpiryDate, required("Expiry date is required"), validDate),
		validation.Field(&r.CurrentPassportPlaceOfIssue, minLen(2, "Place of issue is required")...),
		validation.Field(&r.Email, required("Please enter a valid email address"), is.EmailFormat.Error("Please enter a valid email address")),
		validation.Field(&r.Phone, minLen(10, "Phone number must be at least 10 digits")...),
		validation.Field(&r.CurrentAddress, minLen(10, "Current address is required")...),
		validation.Field(&r.City, minLen(2, "City is required")...),
		validation.Field(&r.State, minLen(2, "State is required")...),
		validation.Field(&r.PostalCode, minLen(5, "Postal code is required")...),
		validation.Field(&r.Nationality, minLen(2, "Nationality is required")...),
		validation.Field(&r.RenewalReason, oneOf("Please select renewal reason", "expired", "expiring", "damaged", "lost", "name_change", "other")...),
		validation.Field(&r.PassportType, oneOf("Please select passport type", "ordinary", "official", "diplomatic")...),
		validation.Field(&r.PagesRequired, oneOf("Please select number of pages", "36", "60")...),
		validation.Field(&r.UpcomingTravelDate, validDate),
		validation.Field(&r.PreferredContact, oneOf("Please select your preferred contact method", "email", "whatsapp", "phone")...),
		validation.Field(&r.SubmissionMethod, validation.In("whatsapp", "gmail").Error("Please select a submission method")),
	))
}
