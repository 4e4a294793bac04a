package model

const (
	TableContacts = "contacts"
	TableConsents = "contact_consents"
	TableProfiles = "profiles"

	FieldID          = "id"
	FieldProfileID   = "profile_id"
	FieldBusinessID  = "business_id"
	FieldContactID   = "contact_id"
	FieldChannelType = "channel_type"
	FieldConsentType = "consent_type"
	FieldBirthdate   = "birthdate"

	ContactColumns = "id,profile_id,business_id,first_name,last_name,phone_prefix,phone_number_raw,phone_number_e164,birthdate"
	ConsentColumns = "channel_type,consent_type,consent_status"

	ChannelSMS           = "sms"
	ChannelEmail         = "email"
	ConsentTransactional = "transactional"
	ConsentMarketing     = "marketing"
)

// Contact is the customer record of one profile at one business.
type Contact struct {
	ID              string `json:"id"`
	ProfileID       string `json:"profile_id"`
	BusinessID      string `json:"business_id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	PhonePrefix     string `json:"phone_prefix"`
	PhoneNumberRaw  string `json:"phone_number_raw"`
	PhoneNumberE164 string `json:"phone_number_e164"`
	Birthdate       string `json:"birthdate"`
}

type ConsentRow struct {
	ChannelType   string `json:"channel_type"`
	ConsentType   string `json:"consent_type"`
	ConsentStatus string `json:"consent_status"`
}

// ConsentState mirrors the two consent rows the booking form shows.
type ConsentState struct {
	SMSTransactional bool `json:"sms_transactional"`
	EmailMarketing   bool `json:"email_marketing"`
}

// ConsentFromRows sets a flag for every matching row present.
func ConsentFromRows(rows []ConsentRow) ConsentState {
	var state ConsentState

	for _, row := range rows {
		switch {
		case row.ChannelType == ChannelSMS && row.ConsentType == ConsentTransactional:
			state.SMSTransactional = true
		case row.ChannelType == ChannelEmail && row.ConsentType == ConsentMarketing:
			state.EmailMarketing = true
		}
	}

	return state
}

type Profile struct {
	ID        string `json:"id"`
	Birthdate string `json:"birthdate"`
}

// Draft is the contact data entered on the slot step, already trimmed.
type Draft struct {
	FirstName   string
	LastName    string
	PhonePrefix string
	PhoneNumber string
	Birthdate   string
	Consent     ConsentState
}

// FullName is the name shown on the confirmation step.
func (d Draft) FullName() string {
	switch {
	case d.FirstName == "":
		return d.LastName
	case d.LastName == "":
		return d.FirstName
	default:
		return d.FirstName + " " + d.LastName
	}
}

// CheckRequest is the body of the contact-check function.
type CheckRequest struct {
	BusinessID            string  `json:"business_id"`
	ProfileID             string  `json:"profile_id"`
	Email                 string  `json:"email"`
	FirstName             string  `json:"first_name"`
	LastName              string  `json:"last_name"`
	PhonePrefix           string  `json:"phone_prefix"`
	PhoneNumberRaw        string  `json:"phone_number_raw"`
	Birthdate             *string `json:"birthdate"`
	SMSTransactionalOptIn bool    `json:"sms_transactional_opt_in"`
	EmailMarketingOptIn   bool    `json:"email_marketing_opt_in"`
}

func (d Draft) ToCheckRequest(businessID, profileID, email string) CheckRequest {
	req := CheckRequest{
		BusinessID:            businessID,
		ProfileID:             profileID,
		Email:                 email,
		FirstName:             d.FirstName,
		LastName:              d.LastName,
		PhonePrefix:           d.PhonePrefix,
		PhoneNumberRaw:        d.PhoneNumber,
		SMSTransactionalOptIn: d.Consent.SMSTransactional,
		EmailMarketingOptIn:   d.Consent.EmailMarketing,
	}

	if d.Birthdate != "" {
		birthdate := d.Birthdate
		req.Birthdate = &birthdate
	}

	return req
}

type CheckResponse struct {
	ContactID string `json:"contact_id"`
}
