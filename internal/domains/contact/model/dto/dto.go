package dto

import (
	"strings"

	"salonbooking/internal/domains/contact/model"
)

type ContactRequest struct {
	FirstName             string `json:"first_name"              validate:"required,min=2,personname"`
	LastName              string `json:"last_name"               validate:"required,min=2,personname"`
	PhonePrefix           string `json:"phone_prefix"            validate:"required,phoneprefix"`
	PhoneNumber           string `json:"phone_number"            validate:"required,numeric,len=10"`
	Birthdate             string `json:"birthdate"               validate:"omitempty,isodate,pastdate"`
	SMSConsent            bool   `json:"sms_consent"`
	EmailMarketingConsent bool   `json:"email_marketing_consent"`
}

// Normalize trims the free-text fields in place so validation sees what will be sent.
func (r *ContactRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.PhonePrefix = strings.TrimSpace(r.PhonePrefix)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	r.Birthdate = strings.TrimSpace(r.Birthdate)
}

func (r ContactRequest) ToModel() model.Draft {
	return model.Draft{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhonePrefix: r.PhonePrefix,
		PhoneNumber: r.PhoneNumber,
		Birthdate:   r.Birthdate,
		Consent: model.ConsentState{
			SMSTransactional: r.SMSConsent,
			EmailMarketing:   r.EmailMarketingConsent,
		},
	}
}

// SavedContactResponse pre-fills the contact form.
type SavedContactResponse struct {
	ContactID             string `json:"contact_id,omitempty"`
	FirstName             string `json:"first_name"`
	LastName              string `json:"last_name"`
	PhonePrefix           string `json:"phone_prefix"`
	PhoneNumber           string `json:"phone_number"`
	Birthdate             string `json:"birthdate"`
	SMSConsent            bool   `json:"sms_consent"`
	EmailMarketingConsent bool   `json:"email_marketing_consent"`
	ProfileBirthdate      string `json:"profile_birthdate,omitempty"`
}

func (r *SavedContactResponse) FromModel(c model.Contact, consent model.ConsentState, profile model.Profile, defaultPrefix string) {
	r.ContactID = c.ID
	r.FirstName = c.FirstName
	r.LastName = c.LastName
	r.PhonePrefix = c.PhonePrefix
	r.PhoneNumber = c.PhoneNumberRaw
	r.Birthdate = c.Birthdate
	r.SMSConsent = consent.SMSTransactional
	r.EmailMarketingConsent = consent.EmailMarketing
	r.ProfileBirthdate = profile.Birthdate

	if r.PhonePrefix == "" {
		r.PhonePrefix = defaultPrefix
	}

	if r.Birthdate == "" {
		r.Birthdate = profile.Birthdate
	}
}
