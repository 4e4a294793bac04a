// Package message holds the short user-facing texts returned by the booking flow.
package message

import (
	"context"
	"strings"

	"salonbooking/shared/constant"
)

type Key string

const (
	SlotsUnavailable        Key = "slots_unavailable"
	SlotNoLongerAvailable   Key = "slot_no_longer_available"
	SlotNotOffered          Key = "slot_not_offered"
	ContactError            Key = "contact_error"
	ConversionError         Key = "conversion_error"
	CreationError           Key = "creation_error"
	InvalidContact          Key = "invalid_contact"
	SelectServiceFirst      Key = "select_service_first"
	SelectStaffFirst        Key = "select_staff_first"
	SelectSlotFirst         Key = "select_slot_first"
	LoginRequired           Key = "login_required"
	SubmissionInProgress    Key = "submission_in_progress"
	ServiceNotFound         Key = "service_not_found"
	StaffNotFound           Key = "staff_not_found"
	NoAvailability          Key = "no_availability"
	NoAlternativeStaff      Key = "no_alternative_staff"
	AppointmentNotFound     Key = "appointment_not_found"
	RescheduleError         Key = "reschedule_error"
	CancelError             Key = "cancel_error"
	CatalogUnavailable      Key = "catalog_unavailable"
	NoConfirmation          Key = "no_confirmation"
	AppointmentsUnavailable Key = "appointments_unavailable"
)

var messages = map[string]map[Key]string{
	constant.LanguageItalian: {
		SlotsUnavailable:        "Impossibile caricare gli orari disponibili. Riprova più tardi.",
		SlotNoLongerAvailable:   "L'orario selezionato non è più disponibile. Scegline un altro.",
		SlotNotOffered:          "L'orario selezionato non è tra quelli disponibili.",
		ContactError:            "Non è stato possibile salvare i tuoi dati di contatto.",
		ConversionError:         "Data o orario non validi per la prenotazione.",
		CreationError:           "Non è stato possibile completare la prenotazione.",
		InvalidContact:          "Controlla i dati di contatto inseriti.",
		SelectServiceFirst:      "Seleziona almeno un servizio.",
		SelectStaffFirst:        "Seleziona un barbiere.",
		SelectSlotFirst:         "Seleziona un orario.",
		LoginRequired:           "Accedi per completare la prenotazione.",
		SubmissionInProgress:    "Prenotazione già in corso.",
		ServiceNotFound:         "Servizio non disponibile.",
		StaffNotFound:           "Barbiere non disponibile.",
		NoAvailability:          "Nessuna disponibilità nei prossimi giorni.",
		NoAlternativeStaff:      "Nessun altro barbiere disponibile per questa data.",
		AppointmentNotFound:     "Appuntamento non trovato.",
		RescheduleError:         "Non è stato possibile spostare l'appuntamento.",
		CancelError:             "Non è stato possibile annullare l'appuntamento.",
		CatalogUnavailable:      "Impossibile caricare i servizi.",
		NoConfirmation:          "Nessuna prenotazione da confermare.",
		AppointmentsUnavailable: "Impossibile caricare i tuoi appuntamenti.",
	},
	constant.LanguageEnglish: {
		SlotsUnavailable:        "Unable to load available times. Please try again later.",
		SlotNoLongerAvailable:   "The selected time is no longer available. Please pick another one.",
		SlotNotOffered:          "The selected time is not among the available ones.",
		ContactError:            "We could not save your contact details.",
		ConversionError:         "Invalid date or time for this booking.",
		CreationError:           "We could not complete your booking.",
		InvalidContact:          "Please check your contact details.",
		SelectServiceFirst:      "Please select at least one service.",
		SelectStaffFirst:        "Please select a barber.",
		SelectSlotFirst:         "Please select a time.",
		LoginRequired:           "Please sign in to complete your booking.",
		SubmissionInProgress:    "A booking is already being submitted.",
		ServiceNotFound:         "Service not available.",
		StaffNotFound:           "Barber not available.",
		NoAvailability:          "No availability in the coming days.",
		NoAlternativeStaff:      "No other barber is available on this date.",
		AppointmentNotFound:     "Appointment not found.",
		RescheduleError:         "We could not reschedule the appointment.",
		CancelError:             "We could not cancel the appointment.",
		CatalogUnavailable:      "Unable to load services.",
		NoConfirmation:          "There is no booking to confirm.",
		AppointmentsUnavailable: "Unable to load your appointments.",
	},
}

var defaultLanguage = constant.LanguageItalian

// SetDefault changes the language used when none can be negotiated.
func SetDefault(lang string) {
	if _, ok := messages[lang]; ok {
		defaultLanguage = lang
	}
}

// Get returns the text for key in lang, falling back to the default language.
func Get(lang string, key Key) string {
	if texts, ok := messages[lang]; ok {
		if text, ok := texts[key]; ok {
			return text
		}
	}

	return messages[defaultLanguage][key]
}

// Negotiate picks the first supported language from an Accept-Language header.
func Negotiate(acceptLanguage string) string {
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		primary := strings.ToLower(strings.SplitN(tag, "-", 2)[0])

		if _, ok := messages[primary]; ok {
			return primary
		}
	}

	return defaultLanguage
}

// WithLanguage stores the negotiated language on ctx.
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, constant.ContextKeyLanguage, lang)
}

// Language returns the language stored on ctx or the default one.
func Language(ctx context.Context) string {
	if lang, ok := ctx.Value(constant.ContextKeyLanguage).(string); ok && lang != "" {
		return lang
	}

	return defaultLanguage
}

// From resolves key in the language carried by ctx.
func From(ctx context.Context, key Key) string {
	return Get(Language(ctx), key)
}
