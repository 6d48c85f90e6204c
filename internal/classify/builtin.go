package classify

import "github.com/upi-kavach/kavach/internal/domain"

// BuiltinRules returns the built-in scenario rule set in evaluation order.
// Rules are grouped by questionnaire branch; within a group each rule keys
// on the branch-defining answer plus the terminal option value. The answer
// lookups are guarded with `in` so a rule over a branch the user never
// visited evaluates to false instead of erroring.
func BuiltinRules() []*domain.ScenarioRule {
	return []*domain.ScenarioRule{
		// UPI QR code scams
		{
			ID:         "upi-qr-amount-manipulation",
			Name:       "UPI QR Code Amount Manipulation",
			Category:   "UPI",
			Expression: `"Q4_UPI_ACTIVITY" in answers && answers["Q4_UPI_ACTIVITY"] == "scanning-qr" && endpoint == "wrong-amount"`,
		},
		{
			ID:         "upi-qr-duplicate-charging",
			Name:       "UPI QR Code Duplicate Charging",
			Category:   "UPI",
			Expression: `"Q4_UPI_ACTIVITY" in answers && answers["Q4_UPI_ACTIVITY"] == "scanning-qr" && endpoint == "multiple-charges"`,
		},
		{
			ID:         "upi-qr-fake-merchant",
			Name:       "Fake Merchant QR Code Scam",
			Category:   "UPI",
			Expression: `"Q4_UPI_ACTIVITY" in answers && answers["Q4_UPI_ACTIVITY"] == "scanning-qr" && endpoint == "fake-merchant"`,
		},

		// UPI transfer scams
		{
			ID:         "upi-account-takeover-friend",
			Name:       "Account Takeover (Friend/Family)",
			Category:   "UPI",
			Expression: `"Q4_UPI_ACTIVITY" in answers && answers["Q4_UPI_ACTIVITY"] == "sending-money" && endpoint == "friend-family-compromised"`,
		},
		{
			ID:         "upi-ecommerce-fraud",
			Name:       "E-commerce Fraud (UPI Payment)",
			Category:   "UPI",
			Expression: `"Q4_UPI_ACTIVITY" in answers && answers["Q4_UPI_ACTIVITY"] == "sending-money" && endpoint == "online-seller"`,
		},
		{
			ID:         "upi-impersonation",
			Name:       "Impersonation Scam",
			Category:   "UPI",
			Expression: `"Q4_UPI_ACTIVITY" in answers && answers["Q4_UPI_ACTIVITY"] == "sending-money" && endpoint == "contacted-me"`,
		},
		{
			ID:         "upi-investment-job-fraud",
			Name:       "Investment/Job Fraud",
			Category:   "UPI",
			Expression: `"Q4_UPI_ACTIVITY" in answers && answers["Q4_UPI_ACTIVITY"] == "sending-money" && endpoint == "investment-job"`,
		},

		// UPI collect request scams
		{
			ID:         "upi-random-collect",
			Name:       "Random UPI Collect Scam",
			Category:   "UPI",
			Expression: `"Q4_UPI_ACTIVITY" in answers && answers["Q4_UPI_ACTIVITY"] == "received-request" && endpoint == "unknown-number"`,
		},
		{
			ID:         "upi-phishing-collect",
			Name:       "Phishing UPI Collect Request",
			Category:   "UPI",
			Expression: `"Q4_UPI_ACTIVITY" in answers && answers["Q4_UPI_ACTIVITY"] == "received-request" && endpoint == "looked-like-bank"`,
		},

		// Malicious apps
		{
			ID:         "upi-loan-app-fraud",
			Name:       "Predatory Loan App Fraud",
			Category:   "UPI",
			Expression: `"Q4_UPI_ACTIVITY" in answers && answers["Q4_UPI_ACTIVITY"] == "using-app" && endpoint == "loan-app"`,
		},
		{
			ID:         "upi-fake-trading-app",
			Name:       "Fake Trading/Investment App",
			Category:   "UPI",
			Expression: `"Q4_UPI_ACTIVITY" in answers && answers["Q4_UPI_ACTIVITY"] == "using-app" && endpoint == "trading-app"`,
		},
		{
			ID:         "upi-remote-access-scam",
			Name:       "Remote Access Scam",
			Category:   "UPI",
			Expression: `"Q4_UPI_ACTIVITY" in answers && answers["Q4_UPI_ACTIVITY"] == "using-app" && endpoint == "screen-share"`,
		},

		// Card fraud at physical stores
		{
			ID:         "card-pos-manipulation",
			Name:       "POS Manipulation Fraud",
			Category:   "Card",
			Expression: `"Q4_CARD_WHERE" in answers && answers["Q4_CARD_WHERE"] == "physical-store" && endpoint == "extra-charges"`,
		},
		{
			ID:         "card-trapping",
			Name:       "Card Trapping Scam",
			Category:   "Card",
			Expression: `"Q4_CARD_WHERE" in answers && answers["Q4_CARD_WHERE"] == "physical-store" && endpoint == "card-stuck"`,
		},
		{
			ID:         "card-skimming",
			Name:       "Card Skimming",
			Category:   "Card",
			Expression: `"Q4_CARD_WHERE" in answers && answers["Q4_CARD_WHERE"] == "physical-store" && endpoint == "taken-away"`,
		},

		// Card fraud at ATMs
		{
			ID:         "card-atm-skimming-device",
			Name:       "ATM Skimming Device",
			Category:   "Card",
			Expression: `"Q4_CARD_WHERE" in answers && answers["Q4_CARD_WHERE"] == "atm" && endpoint == "looked-suspicious"`,
		},
		{
			ID:         "card-fake-atm",
			Name:       "Fake/Compromised ATM",
			Category:   "Card",
			Expression: `"Q4_CARD_WHERE" in answers && answers["Q4_CARD_WHERE"] == "atm" && endpoint == "pin-multiple-times"`,
		},
		{
			ID:         "card-atm-capture",
			Name:       "ATM Card Capture Scam",
			Category:   "Card",
			Expression: `"Q4_CARD_WHERE" in answers && answers["Q4_CARD_WHERE"] == "atm" && endpoint == "card-captured"`,
		},

		// Card fraud online
		{
			ID:         "card-fake-website",
			Name:       "Fake Website Fraud",
			Category:   "Card",
			Expression: `"Q4_CARD_WHERE" in answers && answers["Q4_CARD_WHERE"] == "online" && endpoint == "site-suspicious"`,
		},
		{
			ID:         "card-ecommerce-fraud",
			Name:       "E-commerce Fraud (Card Payment)",
			Category:   "Card",
			Expression: `"Q4_CARD_WHERE" in answers && answers["Q4_CARD_WHERE"] == "online" && endpoint == "no-product"`,
		},
		{
			ID:         "card-data-breach",
			Name:       "Card Data Breach",
			Category:   "Card",
			Expression: `"Q4_CARD_WHERE" in answers && answers["Q4_CARD_WHERE"] == "online" && endpoint == "international-charge"`,
		},
		{
			ID:         "card-cloning",
			Name:       "Card Cloning",
			Category:   "Card",
			Expression: `"Q4_CARD_WHERE" in answers && answers["Q4_CARD_WHERE"] == "online" && endpoint == "multiple-unauthorized"`,
		},

		// Lost or stolen cards
		{
			ID:         "card-stolen",
			Name:       "Stolen Card Fraud",
			Category:   "Card",
			Expression: `"Q4_CARD_WHERE" in answers && answers["Q4_CARD_WHERE"] == "didnt-use" && endpoint == "recently"`,
		},
		{
			ID:         "card-online-data-theft",
			Name:       "Online Card Data Theft",
			Category:   "Card",
			Expression: `"Q4_CARD_WHERE" in answers && answers["Q4_CARD_WHERE"] == "didnt-use" && endpoint == "never-lost"`,
		},

		// Net banking phishing
		{
			ID:         "netbanking-sms-phishing",
			Name:       "SMS/WhatsApp Phishing",
			Category:   "NetBanking",
			Expression: `"Q4_NETBANK_ACCESS" in answers && answers["Q4_NETBANK_ACCESS"] == "clicked-link" && endpoint == "sms-whatsapp"`,
		},
		{
			ID:         "netbanking-email-phishing",
			Name:       "Email Phishing",
			Category:   "NetBanking",
			Expression: `"Q4_NETBANK_ACCESS" in answers && answers["Q4_NETBANK_ACCESS"] == "clicked-link" && endpoint == "email"`,
		},
		{
			ID:         "netbanking-social-phishing",
			Name:       "Social Media Phishing",
			Category:   "NetBanking",
			Expression: `"Q4_NETBANK_ACCESS" in answers && answers["Q4_NETBANK_ACCESS"] == "clicked-link" && endpoint == "social-media"`,
		},

		// Vishing and social engineering
		{
			ID:         "netbanking-vishing",
			Name:       "Vishing (Voice Phishing)",
			Category:   "NetBanking",
			Expression: `"Q4_NETBANK_ACCESS" in answers && answers["Q4_NETBANK_ACCESS"] == "shared-otp" && endpoint == "caller-bank"`,
		},
		{
			ID:         "netbanking-fake-customer-care",
			Name:       "Fake Customer Care Fraud",
			Category:   "NetBanking",
			Expression: `"Q4_NETBANK_ACCESS" in answers && answers["Q4_NETBANK_ACCESS"] == "shared-otp" && endpoint == "customer-care"`,
		},
		{
			ID:         "netbanking-tech-support",
			Name:       "Tech Support Scam",
			Category:   "NetBanking",
			Expression: `"Q4_NETBANK_ACCESS" in answers && answers["Q4_NETBANK_ACCESS"] == "shared-otp" && endpoint == "tech-support"`,
		},

		// Device compromise
		{
			ID:         "netbanking-remote-access",
			Name:       "Remote Access Scam",
			Category:   "NetBanking",
			Expression: `"Q4_NETBANK_ACCESS" in answers && answers["Q4_NETBANK_ACCESS"] == "device-access" && endpoint == "remote-app"`,
		},

		// Breach of unknown origin
		{
			ID:         "netbanking-breach-testing",
			Name:       "Data Breach (Testing Phase)",
			Category:   "NetBanking",
			Expression: `"Q4_NETBANK_ACCESS" in answers && answers["Q4_NETBANK_ACCESS"] == "dont-know" && endpoint == "small-test-txn"`,
		},
		{
			ID:         "netbanking-account-takeover",
			Name:       "Account Takeover",
			Category:   "NetBanking",
			Expression: `"Q4_NETBANK_ACCESS" in answers && answers["Q4_NETBANK_ACCESS"] == "dont-know" && endpoint == "large-transfers"`,
		},

		// Prevented attempts
		{
			ID:         "prevented-phishing-attempt",
			Name:       "Phishing Attempt (Prevented)",
			Category:   "Prevention",
			Expression: `"Q2_MONEY_STATUS" in answers && answers["Q2_MONEY_STATUS"] == "prevented" && endpoint == "otp-details"`,
		},
		{
			ID:         "prevented-failed-attempt",
			Name:       "Failed Fraud Attempt",
			Category:   "Prevention",
			Expression: `"Q2_MONEY_STATUS" in answers && answers["Q2_MONEY_STATUS"] == "prevented" && endpoint == "transaction-failed"`,
		},

		// Check branch
		{
			ID:         "check-no-fraud",
			Name:       "False Alarm / No Fraud Detected",
			Category:   "Prevention",
			Expression: `"Q3_CHECK" in answers && answers["Q3_CHECK"] == "checking-now" && endpoint == "no-suspicious"`,
		},
		{
			ID:         "check-password-changed",
			Name:       "Account Takeover (Password Changed)",
			Category:   "NetBanking",
			Expression: `"Q4_ACCESS_ISSUE" in answers && endpoint == "password-not-working"`,
		},
	}
}
