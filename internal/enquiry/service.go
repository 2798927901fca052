// Package enquiry runs the form pipeline: validate, stamp, record, render and
// hand the rendered submission to the channels picked by the visitor.
package enquiry

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"visacrony-gateway/internal/channel"
	"visacrony-gateway/internal/message"
	ledger "visacrony-gateway/internal/models"
	"visacrony-gateway/pkg/models"
)

const (
	FormVisaEnquiry     = "visa_enquiry"
	FormGeneralEnquiry  = "general_enquiry"
	FormFreshPassport   = "fresh_passport"
	FormPassportRenewal = "passport_renewal"
)

const (
	ServiceFreshPassport   = "Fresh Passport Application"
	ServicePassportRenewal = "Passport Renewal"
)

// Ledger stores submissions and their per-channel deliveries.
type Ledger interface {
	RecordSubmission(ctx context.Context, sub *ledger.Submission) error
	RecordDeliveries(ctx context.Context, submissionID uint, deliveries []ledger.Delivery) error
}

// Routes are the business addresses submissions are sent to.
type Routes struct {
	EnquiryMailTo    string
	PassportMailTo   string
	EnquiryWhatsApp  string
	PassportWhatsApp string
}

// Notice is the toast shown to the visitor after a submission.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant,omitempty"`
}

var failedNotice = Notice{
	Title:       "Submission Failed",
	Description: "Please try again or contact us directly.",
	Variant:     "destructive",
}

type Result struct {
	Reference string          `json:"reference"`
	Form      string          `json:"form"`
	Notice    Notice          `json:"notice"`
	Outcome   channel.Outcome `json:"outcome"`
	OK        bool            `json:"ok"`
}

type Service struct {
	Builder    *message.Builder
	Dispatcher *channel.Dispatcher
	Submitter  *channel.Submitter
	Notifier   *channel.Notifier
	Ledger     Ledger
	Routes     Routes
	Now        func() time.Time
}

func NewService(b *message.Builder, d *channel.Dispatcher, s *channel.Submitter, n *channel.Notifier, l Ledger, r Routes) *Service {
	return &Service{
		Builder:    b,
		Dispatcher: d,
		Submitter:  s,
		Notifier:   n,
		Ledger:     l,
		Routes:     r,
		Now:        time.Now,
	}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

// submission is one form run through the shared pipeline.
type submission struct {
	form   string
	record interface{}
	row    ledger.Submission
	plan   channel.Plan
	mirror string
	notice Notice
}

func (s *Service) SubmitVisaEnquiry(ctx context.Context, o channel.Opener, rec models.VisaEnquiry) (*Result, error) {
	if rec.PreferredContact == "" {
		rec.PreferredContact = "email"
	}
	if rec.NumberOfTravelers == "" {
		rec.NumberOfTravelers = "1"
	}
	if err := ValidateVisaEnquiry(ctx, &rec); err != nil {
		return nil, err
	}
	rec.Timestamp = s.now()

	pref := rec.PreferredContact
	var plan channel.Plan
	if pref == "whatsapp" || pref == "both" {
		plan.WhatsApp = &channel.WhatsAppMessage{Phone: s.Routes.EnquiryWhatsApp, Text: s.Builder.WhatsAppMessage(rec)}
	}
	if pref == "email" || pref == "both" {
		plan.Mail = &channel.MailMessage{
			To:      s.Routes.EnquiryMailTo,
			Subject: message.EmailSubject(rec.SelectedCountry, rec.Name),
			Body:    s.Builder.EmailBody(rec),
		}
	}

	return s.process(ctx, o, submission{
		form:   FormVisaEnquiry,
		record: rec,
		row: ledger.Submission{
			ServiceType:      "Visa Enquiry",
			Name:             rec.Name,
			Email:            rec.Email,
			Phone:            rec.Phone,
			SelectedCountry:  rec.SelectedCountry,
			PreferredContact: pref,
		},
		plan:   plan,
		mirror: s.Builder.WhatsAppMessage(rec),
		notice: enquiryNotice(rec.SelectedCountry, "visa", pref),
	})
}

func (s *Service) SubmitGeneralEnquiry(ctx context.Context, o channel.Opener, rec models.GeneralEnquiry) (*Result, error) {
	if rec.PreferredContact == "" {
		rec.PreferredContact = "email"
	}
	if err := ValidateGeneralEnquiry(ctx, &rec); err != nil {
		return nil, err
	}
	rec.Timestamp = s.now()

	doc := s.Builder.GeneralEnquiry(rec)
	pref := rec.PreferredContact
	var plan channel.Plan
	if pref == "whatsapp" || pref == "both" {
		plan.WhatsApp = &channel.WhatsAppMessage{Phone: s.Routes.PassportWhatsApp, Text: message.WhatsApp(doc)}
	}
	if pref == "email" || pref == "both" {
		plan.Mail = &channel.MailMessage{
			To:      s.Routes.PassportMailTo,
			Subject: message.EmailSubject(rec.SelectedCountry, rec.Name),
			Body:    message.Email(doc),
		}
	}

	return s.process(ctx, o, submission{
		form:   FormGeneralEnquiry,
		record: rec,
		row: ledger.Submission{
			ServiceType:      "Passport Services Enquiry",
			Name:             rec.Name,
			Email:            rec.Email,
			Phone:            rec.Phone,
			SelectedCountry:  rec.SelectedCountry,
			PreferredContact: pref,
		},
		plan:   plan,
		mirror: message.WhatsApp(doc),
		notice: enquiryNotice(rec.SelectedCountry, "passport", pref),
	})
}

func (s *Service) SubmitFreshPassport(ctx context.Context, o channel.Opener, rec models.FreshPassport) (*Result, error) {
	if rec.SubmissionMethod == "" {
		rec.SubmissionMethod = "whatsapp"
	}
	if err := ValidateFreshPassport(ctx, &rec); err != nil {
		return nil, err
	}
	rec.ServiceType = ServiceFreshPassport
	rec.Timestamp = s.now()

	doc := s.Builder.FreshPassport(rec)
	return s.process(ctx, o, submission{
		form:   FormFreshPassport,
		record: rec,
		row: ledger.Submission{
			ServiceType:      rec.ServiceType,
			Name:             rec.FullName(),
			Email:            rec.Email,
			Phone:            rec.Phone,
			PreferredContact: rec.PreferredContact,
		},
		plan:   s.passportPlan(rec.SubmissionMethod, ServiceFreshPassport, rec.FirstName+" "+rec.LastName, doc),
		mirror: message.WhatsApp(doc),
		notice: Notice{
			Title:       "Fresh Passport Application Submitted!",
			Description: "Your fresh passport application has been submitted! " + methodText(rec.SubmissionMethod),
		},
	})
}

func (s *Service) SubmitPassportRenewal(ctx context.Context, o channel.Opener, rec models.PassportRenewal) (*Result, error) {
	if rec.SubmissionMethod == "" {
		rec.SubmissionMethod = "whatsapp"
	}
	if rec.PagesRequired == "" {
		rec.PagesRequired = "36"
	}
	if rec.RenewalReason == "" {
		rec.RenewalReason = "expired"
	}
	if err := ValidatePassportRenewal(ctx, &rec); err != nil {
		return nil, err
	}
	rec.ServiceType = ServicePassportRenewal
	rec.Timestamp = s.now()

	doc := s.Builder.PassportRenewal(rec)
	return s.process(ctx, o, submission{
		form:   FormPassportRenewal,
		record: rec,
		row: ledger.Submission{
			ServiceType:      rec.ServiceType,
			Name:             rec.FullName(),
			Email:            rec.Email,
			Phone:            rec.Phone,
			PreferredContact: rec.PreferredContact,
		},
		plan:   s.passportPlan(rec.SubmissionMethod, ServicePassportRenewal, rec.FirstName+" "+rec.LastName, doc),
		mirror: message.WhatsApp(doc),
		notice: Notice{
			Title:       "Passport Renewal Application Submitted!",
			Description: "Your passport renewal application has been submitted! " + methodText(rec.SubmissionMethod),
		},
	})
}

// passportPlan sends passport forms to exactly one channel.
func (s *Service) passportPlan(method, service, name string, doc message.Document) channel.Plan {
	if method == "gmail" {
		return channel.Plan{Mail: &channel.MailMessage{
			To:      s.Routes.PassportMailTo,
			Subject: message.EmailSubject(service, name),
			Body:    message.Email(doc),
		}}
	}
	return channel.Plan{WhatsApp: &channel.WhatsAppMessage{Phone: s.Routes.PassportWhatsApp, Text: message.WhatsApp(doc)}}
}

func (s *Service) process(ctx context.Context, o channel.Opener, sub submission) (*Result, error) {
	row := sub.row
	row.Reference = uuid.NewString()
	row.Form = sub.form
	if payload, err := json.Marshal(sub.record); err == nil {
		row.Payload = string(payload)
	}

	log := logrus.WithFields(logrus.Fields{"form": sub.form, "reference": row.Reference})

	recorded := false
	if s.Ledger != nil {
		if err := s.Ledger.RecordSubmission(ctx, &row); err != nil {
			log.WithError(err).Warn("[ENQUIRY] failed to record submission")
		} else {
			recorded = true
		}
	}

	var deliveries []ledger.Delivery

	if err := s.Submitter.Submit(ctx, sub.record); err != nil {
		if !errors.Is(err, channel.ErrEndpointNotConfigured) {
			log.WithError(err).Warn("[ENQUIRY] submission endpoint failed")
			deliveries = append(deliveries, delivery(channel.ChannelEndpoint, s.Submitter.URL, err))
		}
	} else {
		deliveries = append(deliveries, delivery(channel.ChannelEndpoint, s.Submitter.URL, nil))
	}

	outcome := s.Dispatcher.Deliver(ctx, o, sub.plan)
	if outcome.WhatsAppAttempted {
		d := delivery(channel.ChannelWhatsApp, sub.plan.WhatsApp.Phone, nil)
		d.OK = outcome.WhatsAppOK
		deliveries = append(deliveries, d)
	}
	if outcome.MailAttempted {
		d := delivery(channel.ChannelMail, sub.plan.Mail.To, nil)
		d.OK = outcome.MailOK
		deliveries = append(deliveries, d)
	}

	if s.Notifier.Enabled() {
		err := s.Notifier.Notify(ctx, sub.mirror)
		if err != nil {
			log.WithError(err).Warn("[ENQUIRY] whatsapp mirror failed")
		}
		deliveries = append(deliveries, delivery(channel.ChannelNotify, s.Notifier.To, err))
	}

	if recorded {
		if err := s.Ledger.RecordDeliveries(ctx, row.ID, deliveries); err != nil {
			log.WithError(err).Warn("[ENQUIRY] failed to record deliveries")
		}
	}

	res := &Result{
		Reference: row.Reference,
		Form:      sub.form,
		Outcome:   outcome,
		OK:        outcome.OK(),
		Notice:    sub.notice,
	}
	if !res.OK {
		res.Notice = failedNotice
	}
	log.WithField("ok", res.OK).Info("[ENQUIRY] submission handled")
	return res, nil
}

func delivery(ch, target string, err error) ledger.Delivery {
	d := ledger.Delivery{Channel: ch, Target: target, OK: err == nil}
	if err != nil {
		d.Error = err.Error()
	}
	return d
}

func enquiryNotice(selected, fallback, pref string) Notice {
	subject := selected
	if subject == "" {
		subject = fallback
	}
	return Notice{
		Title:       "Enquiry Submitted Successfully!",
		Description: "Your " + subject + " enquiry has been submitted! " + preferenceText(pref),
	}
}

func preferenceText(pref string) string {
	switch pref {
	case "whatsapp":
		return "WhatsApp chat has been opened."
	case "email":
		return "Gmail compose window has been opened with your enquiry details ready to send."
	case "both":
		return "Gmail compose window and WhatsApp have been opened with your enquiry details."
	}
	return "Please select a communication preference."
}

func methodText(method string) string {
	switch method {
	case "gmail":
		return "Gmail compose window has been opened with your application details ready to send."
	case "whatsapp":
		return "WhatsApp chat has been opened with your application details ready to send."
	}
	return "Please select a submission method."
}
