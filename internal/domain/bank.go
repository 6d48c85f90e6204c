package domain

// BankContact holds the fraud-reporting contact points for one bank.
// Static reference data; the display variants carry human formatting while
// the bare numbers are used for tel:/sms: deep links.
type BankContact struct {
	Name                 string `json:"name"`
	FraudHelpline        string `json:"fraudHelpline"`
	FraudHelplineDisplay string `json:"fraudHelplineDisplay"`
	SMSNumber            string `json:"smsNumber"`
	SMSNumberDisplay     string `json:"smsNumberDisplay"`
	Email                string `json:"email"`
	Website              string `json:"website,omitempty"`
}
