// Package bank holds the fraud-reporting contact directory for major Indian
// banks. The data is static reference material: helpline numbers, SMS
// reporting numbers, and fraud-team email addresses, with display variants
// for human-readable formatting.
package bank

import (
	"sort"

	"github.com/upi-kavach/kavach/internal/domain"
)

// contacts is keyed by bank name. Common abbreviations (SBI, PNB) alias the
// full entry so lookups with either form succeed.
var contacts = map[string]domain.BankContact{
	"HDFC Bank": {
		Name:                 "HDFC Bank",
		FraudHelpline:        "18002586161",
		FraudHelplineDisplay: "1800-258-6161",
		SMSNumber:            "5676712",
		SMSNumberDisplay:     "5676712",
		Email:                "phishing@hdfcbank.com",
		Website:              "https://www.hdfcbank.com",
	},
	"State Bank of India": {
		Name:                 "State Bank of India",
		FraudHelpline:        "18004253800",
		FraudHelplineDisplay: "1800-425-3800",
		SMSNumber:            "09223588888",
		SMSNumberDisplay:     "09223-588-888",
		Email:                "complaint@sbi.co.in",
		Website:              "https://www.onlinesbi.com",
	},
	"SBI": {
		Name:                 "State Bank of India",
		FraudHelpline:        "18004253800",
		FraudHelplineDisplay: "1800-425-3800",
		SMSNumber:            "09223588888",
		SMSNumberDisplay:     "09223-588-888",
		Email:                "complaint@sbi.co.in",
		Website:              "https://www.onlinesbi.com",
	},
	"ICICI Bank": {
		Name:                 "ICICI Bank",
		FraudHelpline:        "18002662",
		FraudHelplineDisplay: "1800-200-2662",
		SMSNumber:            "5676766",
		SMSNumberDisplay:     "5676766",
		Email:                "customer.care@icicibank.com",
		Website:              "https://www.icicibank.com",
	},
	"Axis Bank": {
		Name:                 "Axis Bank",
		FraudHelpline:        "18004195959",
		FraudHelplineDisplay: "1800-419-5959",
		SMSNumber:            "5676788",
		SMSNumberDisplay:     "5676788",
		Email:                "customer.care@axisbank.com",
		Website:              "https://www.axisbank.com",
	},
	"Kotak Mahindra Bank": {
		Name:                 "Kotak Mahindra Bank",
		FraudHelpline:        "18002090000",
		FraudHelplineDisplay: "1800-209-0000",
		SMSNumber:            "5676788",
		SMSNumberDisplay:     "5676788",
		Email:                "customer.care@kotak.com",
		Website:              "https://www.kotak.com",
	},
	"Punjab National Bank": {
		Name:                 "Punjab National Bank",
		FraudHelpline:        "18001802222",
		FraudHelplineDisplay: "1800-180-2222",
		SMSNumber:            "5607040",
		SMSNumberDisplay:     "5607040",
		Email:                "complaint@pnb.co.in",
		Website:              "https://www.pnbindia.in",
	},
	"PNB": {
		Name:                 "Punjab National Bank",
		FraudHelpline:        "18001802222",
		FraudHelplineDisplay: "1800-180-2222",
		SMSNumber:            "5607040",
		SMSNumberDisplay:     "5607040",
		Email:                "complaint@pnb.co.in",
		Website:              "https://www.pnbindia.in",
	},
	"Bank of Baroda": {
		Name:                 "Bank of Baroda",
		FraudHelpline:        "18001024455",
		FraudHelplineDisplay: "1800-102-4455",
		SMSNumber:            "8468001111",
		SMSNumberDisplay:     "8468-001-111",
		Email:                "complaint@bankofbaroda.com",
		Website:              "https://www.bankofbaroda.in",
	},
	"Canara Bank": {
		Name:                 "Canara Bank",
		FraudHelpline:        "18004250018",
		FraudHelplineDisplay: "1800-425-0018",
		SMSNumber:            "09015483483",
		SMSNumberDisplay:     "09015-483-483",
		Email:                "complaints@canarabank.com",
		Website:              "https://www.canarabank.com",
	},
	"Union Bank of India": {
		Name:                 "Union Bank of India",
		FraudHelpline:        "18002082244",
		FraudHelplineDisplay: "1800-208-2244",
		SMSNumber:            "09278792787",
		SMSNumberDisplay:     "09278-792-787",
		Email:                "complaint@unionbankofindia.co.in",
		Website:              "https://www.unionbankofindia.co.in",
	},
	"Bank of India": {
		Name:                 "Bank of India",
		FraudHelpline:        "18001031906",
		FraudHelplineDisplay: "1800-103-1906",
		SMSNumber:            "09015135135",
		SMSNumberDisplay:     "09015-135-135",
		Email:                "customercare@bankofindia.co.in",
		Website:              "https://www.bankofindia.co.in",
	},
	"IDBI Bank": {
		Name:                 "IDBI Bank",
		FraudHelpline:        "18002094324",
		FraudHelplineDisplay: "1800-209-4324",
		SMSNumber:            "5676720",
		SMSNumberDisplay:     "5676720",
		Email:                "customer.care@idbibank.co.in",
		Website:              "https://www.idbibank.in",
	},
	"Yes Bank": {
		Name:                 "Yes Bank",
		FraudHelpline:        "18001200",
		FraudHelplineDisplay: "1800-1200",
		SMSNumber:            "09840909000",
		SMSNumberDisplay:     "09840-909-000",
		Email:                "customercare@yesbank.in",
		Website:              "https://www.yesbank.in",
	},
	"IndusInd Bank": {
		Name:                 "IndusInd Bank",
		FraudHelpline:        "18002094030",
		FraudHelplineDisplay: "1800-209-4030",
		SMSNumber:            "5676777",
		SMSNumberDisplay:     "5676777",
		Email:                "customer.care@indusind.com",
		Website:              "https://www.indusind.com",
	},
	"IDFC First Bank": {
		Name:                 "IDFC First Bank",
		FraudHelpline:        "18002700720",
		FraudHelplineDisplay: "1800-270-0720",
		SMSNumber:            "08062688888",
		SMSNumberDisplay:     "08062-688-888",
		Email:                "customer.care@idfcfirstbank.com",
		Website:              "https://www.idfcfirstbank.com",
	},
	"Paytm Payments Bank": {
		Name:                 "Paytm Payments Bank",
		FraudHelpline:        "18001800120",
		FraudHelplineDisplay: "1800-180-0120",
		SMSNumber:            "7738101111",
		SMSNumberDisplay:     "7738-101-111",
		Email:                "care@paytm.com",
		Website:              "https://www.paytm.com",
	},
}

// Contacts returns the contact record for a bank by exact name. Unknown
// banks get a generic placeholder record pointing the user at their bank's
// website, never an error.
func Contacts(bankName string) domain.BankContact {
	if c, ok := contacts[bankName]; ok {
		return c
	}

	name := bankName
	if name == "" {
		name = "Your Bank"
	}
	return domain.BankContact{
		Name:                 name,
		FraudHelpline:        "1800XXXXX",
		FraudHelplineDisplay: "1800-XXXXX (Check your bank's website)",
		SMSNumber:            "XXXXX",
		SMSNumberDisplay:     "XXXXX (Check your bank's website)",
		Email:                "fraud@yourbank.com",
	}
}

// SupportedBanks returns the directory's bank names, aliases included,
// sorted alphabetically.
func SupportedBanks() []string {
	names := make([]string, 0, len(contacts))
	for name := range contacts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsSupported reports whether the bank has a directory entry.
func IsSupported(bankName string) bool {
	_, ok := contacts[bankName]
	return ok
}
