package graph

import "github.com/upi-kavach/kavach/internal/domain"

// RootQuestionID is the entry point of the builtin questionnaire. The first
// answer also fixes the urgency level for the rest of the session.
const RootQuestionID = "Q1_TIME"

// Builtin returns the built-in triage questionnaire, already validated.
// The graph starts with time and money-status assessment, then branches by
// payment instrument. Most leaf options are endpoints; the check branch can
// loop back into the loss branch when unauthorized transactions are found.
func Builtin() (*Graph, error) {
	return New(RootQuestionID, builtinQuestions(), BuiltinResolvers())
}

// BuiltinResolvers returns the resolver registry for the builtin graph.
// Exposed so a YAML-defined graph can reference the same resolvers by name.
func BuiltinResolvers() map[string]Resolver {
	return map[string]Resolver{
		// A user who started on the "not sure" branch and then found
		// unauthorized transactions joins the loss branch. Urgency and
		// collected answers carry over unchanged.
		"loss-path": func(answers domain.AnswerMap) string {
			return "Q3_PAYMENT_METHOD"
		},
	}
}

func builtinQuestions() []*domain.Question {
	return []*domain.Question{
		{
			ID:       "Q1_TIME",
			Text:     "When did this happen?",
			Subtitle: "This determines how urgently we need to act",
			Icon:     "clock",
			Options: []domain.Option{
				{Value: "just-now", Label: "Just now (less than 30 minutes ago)", Icon: "🔥", Next: "Q2_MONEY_STATUS"},
				{Value: "recent", Label: "30 minutes to 4 hours ago", Icon: "⚡", Next: "Q2_MONEY_STATUS"},
				{Value: "today", Label: "4 to 24 hours ago (today)", Icon: "⚠️", Next: "Q2_MONEY_STATUS"},
				{Value: "older", Label: "More than 24 hours ago", Icon: "📅", Next: "Q2_MONEY_STATUS"},
			},
		},
		{
			ID:       "Q2_MONEY_STATUS",
			Text:     "Has money already left your account?",
			Subtitle: "This helps us determine if we're recovering money or preventing loss",
			Icon:     "alert",
			Options: []domain.Option{
				{Value: "yes-lost", Label: "Yes, money has been debited/transferred", Icon: "💸", Next: "Q3_PAYMENT_METHOD"},
				{Value: "prevented", Label: "No, I stopped it or it failed", Icon: "✋", Next: "Q3_PREVENTED"},
				{Value: "not-sure", Label: "I'm not sure, need to check", Icon: "❓", Next: "Q3_CHECK"},
			},
		},

		// Loss branch
		{
			ID:       "Q3_PAYMENT_METHOD",
			Text:     "How did the payment happen?",
			Subtitle: "This identifies which accounts and services we need to secure",
			Icon:     "card",
			Options: []domain.Option{
				{Value: "upi", Label: "UPI (PhonePe, Google Pay, Paytm, etc.)", Icon: "📱", Next: "Q4_UPI_ACTIVITY"},
				{Value: "card", Label: "Debit or Credit card", Icon: "💳", Next: "Q4_CARD_WHERE"},
				{Value: "netbanking", Label: "Net banking / Internet banking", Icon: "🌐", Next: "Q4_NETBANK_ACCESS"},
				{Value: "atm", Label: "ATM / Cash withdrawal", Icon: "🏧", Next: "Q4_ATM_ISSUE"},
				{Value: "transfer", Label: "Bank transfer (NEFT/RTGS/IMPS)", Icon: "🏦", Next: "Q4_TRANSFER_TYPE"},
			},
		},

		// UPI branch
		{
			ID:       "Q4_UPI_ACTIVITY",
			Text:     "What were you doing when this happened?",
			Subtitle: "Understanding the activity helps us identify the exact scam type",
			Icon:     "alert",
			Options: []domain.Option{
				{Value: "scanning-qr", Label: "Scanning a QR code at a shop or location", Icon: "📷", Next: "Q5_QR_ISSUE"},
				{Value: "sending-money", Label: "Sending money to someone", Icon: "💸", Next: "Q5_SENDING_WHO"},
				{Value: "received-request", Label: "Received a payment request (collect request)", Icon: "📥", Next: "Q5_REQUEST_FROM"},
				{Value: "using-app", Label: "Installing or using an app", Icon: "📱", Next: "Q5_APP_TYPE"},
			},
		},
		{
			ID:       "Q5_QR_ISSUE",
			Text:     "What went wrong with the QR code payment?",
			Subtitle: "This pinpoints the exact manipulation technique used",
			Icon:     "alert",
			Options: []domain.Option{
				{Value: "wrong-amount", Label: "Wrong amount was deducted (more than expected)", Icon: "💰", Endpoint: true},
				{Value: "multiple-charges", Label: "I was charged multiple times", Icon: "🔄", Endpoint: true},
				{Value: "fake-merchant", Label: "The merchant/shop was fake or suspicious", Icon: "🎭", Endpoint: true},
				{Value: "different-recipient", Label: "Money went to different recipient than expected", Icon: "👤", Endpoint: true},
			},
		},
		{
			ID:       "Q5_SENDING_WHO",
			Text:     "Who were you sending money to?",
			Subtitle: "This helps identify if it's impersonation, e-commerce fraud, or other types",
			Icon:     "alert",
			Options: []domain.Option{
				{Value: "friend-family-compromised", Label: "Friend or family member (but their account may be compromised)", Icon: "👥", Endpoint: true},
				{Value: "online-seller", Label: "Online seller or marketplace vendor", Icon: "🛒", Endpoint: true},
				{Value: "contacted-me", Label: "Someone who contacted me (call/SMS/social media)", Icon: "📞", Endpoint: true},
				{Value: "investment-job", Label: "Investment opportunity or job offer", Icon: "💼", Endpoint: true},
			},
		},
		{
			ID:       "Q5_REQUEST_FROM",
			Text:     "Who sent you the payment request?",
			Subtitle: "Payment request scams often impersonate trusted entities",
			Icon:     "alert",
			Options: []domain.Option{
				{Value: "unknown-number", Label: "Unknown number or contact", Icon: "❓", Endpoint: true},
				{Value: "looked-like-bank", Label: "Looked like my bank, app, or official service", Icon: "🏦", Endpoint: true},
				{Value: "friend-suspicious", Label: "Friend's account but request seemed suspicious", Icon: "👤", Endpoint: true},
			},
		},
		{
			ID:       "Q5_APP_TYPE",
			Text:     "What type of app was this?",
			Subtitle: "Malicious apps come in different forms with different risks",
			Icon:     "alert",
			Options: []domain.Option{
				{Value: "loan-app", Label: "Loan or credit app", Icon: "💰", Endpoint: true},
				{Value: "trading-app", Label: "Investment or trading app", Icon: "📈", Endpoint: true},
				{Value: "game-reward", Label: "Game, rewards, or earning app", Icon: "🎮", Endpoint: true},
				{Value: "screen-share", Label: "Screen sharing or remote access app", Icon: "📺", Endpoint: true},
			},
		},

		// Card branch
		{
			ID:       "Q4_CARD_WHERE",
			Text:     "Where did you use your card?",
			Subtitle: "The location helps identify skimming, fake websites, or other card fraud",
			Icon:     "card",
			Options: []domain.Option{
				{Value: "physical-store", Label: "Physical store or POS machine", Icon: "🏪", Next: "Q5_CARD_PHYSICAL_ISSUE"},
				{Value: "atm", Label: "ATM machine", Icon: "🏧", Next: "Q5_ATM_SUSPICIOUS"},
				{Value: "online", Label: "Online purchase or payment", Icon: "🌐", Next: "Q5_CARD_ONLINE_ISSUE"},
				{Value: "didnt-use", Label: "Didn't use it / Lost or stolen card", Icon: "❌", Next: "Q5_CARD_LOST_WHEN"},
			},
		},
		{
			ID:       "Q5_CARD_PHYSICAL_ISSUE",
			Text:     "What happened at the store?",
			Subtitle: "Physical card fraud often involves skimming or manipulation",
			Icon:     "alert",
			Options: []domain.Option{
				{Value: "extra-charges", Label: "Extra or higher charges appeared later", Icon: "💰", Endpoint: true},
				{Value: "card-stuck", Label: "Card got stuck or retained by machine", Icon: "🚫", Endpoint: true},
				{Value: "taken-away", Label: "Cashier took card away from my sight", Icon: "👀", Endpoint: true},
			},
		},
		{
			ID:       "Q5_ATM_SUSPICIOUS",
			Text:     "What seemed wrong at the ATM?",
			Subtitle: "ATM fraud includes skimming devices and fake ATMs",
			Icon:     "alert",
			Options: []domain.Option{
				{Value: "looked-suspicious", Label: "ATM had loose parts or looked tampered", Icon: "🔧", Endpoint: true},
				{Value: "pin-multiple-times", Label: "Asked for PIN multiple times or seemed slow", Icon: "🔑", Endpoint: true},
				{Value: "card-captured", Label: "Card was captured or not returned", Icon: "🎯", Endpoint: true},
				{Value: "wrong-amount", Label: "Wrong amount dispensed or debited", Icon: "💸", Endpoint: true},
			},
		},
		{
			ID:       "Q5_CARD_ONLINE_ISSUE",
			Text:     "What went wrong with the online purchase?",
			Subtitle: "Online card fraud includes fake websites and data breaches",
			Icon:     "alert",
			Options: []domain.Option{
				{Value: "site-suspicious", Label: "Website looked suspicious or unprofessional", Icon: "⚠️", Endpoint: true},
				{Value: "no-product", Label: "No product was delivered", Icon: "📦", Endpoint: true},
				{Value: "international-charge", Label: "Unexpected international transaction appeared", Icon: "🌍", Endpoint: true},
				{Value: "multiple-unauthorized", Label: "Multiple unauthorized charges from different places", Icon: "🔄", Endpoint: true},
			},
		},
		{
			ID:       "Q5_CARD_LOST_WHEN",
			Text:     "When did you lose the card?",
			Subtitle: "Timeline helps determine if it's physical theft or data breach",
			Icon:     "alert",
			Options: []domain.Option{
				{Value: "recently", Label: "Lost or stolen recently (last few days)", Icon: "🕐", Endpoint: true},
				{Value: "long-ago", Label: "Lost it weeks or months ago", Icon: "📅", Endpoint: true},
				{Value: "never-lost", Label: "Never lost it, still have the card", Icon: "✋", Endpoint: true},
			},
		},

		// Net banking branch
		{
			ID:       "Q4_NETBANK_ACCESS",
			Text:     "How did the fraudster get access?",
			Subtitle: "Understanding the attack method helps secure your account properly",
			Icon:     "shield",
			Options: []domain.Option{
				{Value: "clicked-link", Label: "I clicked on a link", Icon: "🔗", Next: "Q5_LINK_SOURCE"},
				{Value: "shared-otp", Label: "I shared OTP, password, or bank details", Icon: "🔐", Next: "Q5_SHARED_WITH"},
				{Value: "device-access", Label: "Someone accessed my device or computer", Icon: "💻", Next: "Q5_DEVICE_HOW"},
				{Value: "dont-know", Label: "I don't know how they got access", Icon: "❓", Next: "Q5_BREACH_NOTICE"},
			},
		},
		{
			ID:       "Q5_LINK_SOURCE",
			Text:     "Where did the link come from?",
			Subtitle: "Phishing links arrive through various channels",
			Icon:     "alert",
			Options: []domain.Option{
				{Value: "sms-whatsapp", Label: "SMS or WhatsApp message", Icon: "💬", Endpoint: true},
				{Value: "email", Label: "Email", Icon: "📧", Endpoint: true},
				{Value: "social-media", Label: "Social media post or ad", Icon: "📱", Endpoint: true},
			},
		},
		{
			ID:       "Q5_SHARED_WITH",
			Text:     "Who did you share your details with?",
			Subtitle: "Identifying the impersonation helps in reporting",
			Icon:     "alert",
			Options: []domain.Option{
				{Value: "caller-bank", Label: "Caller claiming to be from my bank", Icon: "📞", Endpoint: true},
				{Value: "customer-care", Label: "Customer care number I found online", Icon: "🎧", Endpoint: true},
				{Value: "tech-support", Label: "Tech support or IT helpdesk", Icon: "💻", Endpoint: true},
			},
		},
		{
			ID:       "Q5_DEVICE_HOW",
			Text:     "How did they access your device?",
			Subtitle: "Device compromise can happen in multiple ways",
			Icon:     "alert",
			Options: []domain.Option{
				{Value: "remote-app", Label: "I installed a remote access app (AnyDesk, TeamViewer, etc.)", Icon: "📺", Endpoint: true},
				{Value: "physical", Label: "Someone physically used my device", Icon: "👤", Endpoint: true},
				{Value: "public-wifi", Label: "I used public WiFi", Icon: "📶", Endpoint: true},
			},
		},
		{
			ID:       "Q5_BREACH_NOTICE",
			Text:     "What made you notice the unauthorized access?",
			Subtitle: "The symptoms help identify the type of breach",
			Icon:     "alert",
			Options: []domain.Option{
				{Value: "small-test-txn", Label: "Small test transactions (₹1, ₹2, etc.)", Icon: "💰", Endpoint: true},
				{Value: "large-transfers", Label: "Large unauthorized transfers", Icon: "💸", Endpoint: true},
				{Value: "account-changes", Label: "Account details were changed", Icon: "⚙️", Endpoint: true},
			},
		},

		// ATM branch
		{
			ID:       "Q4_ATM_ISSUE",
			Text:     "What happened at the ATM?",
			Subtitle: "ATM fraud includes various manipulation techniques",
			Icon:     "alert",
			Options: []domain.Option{
				{Value: "card-trapped", Label: "Card got stuck or trapped", Icon: "🎯", Endpoint: true},
				{Value: "wrong-amount-atm", Label: "Wrong amount was dispensed or debited", Icon: "💰", Endpoint: true},
				{Value: "unauthorized-withdrawal", Label: "Unauthorized withdrawals appeared", Icon: "🔄", Endpoint: true},
			},
		},

		// Transfer branch
		{
			ID:       "Q4_TRANSFER_TYPE",
			Text:     "What type of transfer was this?",
			Subtitle: "Understanding the context helps determine the fraud type",
			Icon:     "alert",
			Options: []domain.Option{
				{Value: "job-payment", Label: "Payment for job, business, or investment opportunity", Icon: "💼", Endpoint: true},
				{Value: "online-purchase-transfer", Label: "Payment for online purchase", Icon: "🛒", Endpoint: true},
				{Value: "authorized-by-someone", Label: "Someone authorized the transfer (but not me)", Icon: "👤", Endpoint: true},
			},
		},

		// Prevented branch
		{
			ID:       "Q3_PREVENTED",
			Text:     "What made you realize something was wrong?",
			Subtitle: "Good catch! Let's secure your account and prevent future attempts",
			Icon:     "check",
			Options: []domain.Option{
				{Value: "suspicious-message", Label: "Received suspicious message or call", Icon: "📞", Next: "Q4_PREVENTED_ASKED"},
				{Value: "transaction-failed", Label: "Transaction failed or was declined", Icon: "❌", Endpoint: true},
				{Value: "access-attempt-alert", Label: "Got alert about access attempt", Icon: "🔔", Endpoint: true},
				{Value: "warning-received", Label: "Saw warning or someone alerted me", Icon: "⚠️", Endpoint: true},
			},
		},
		{
			ID:       "Q4_PREVENTED_ASKED",
			Text:     "What did they ask you for?",
			Subtitle: "Knowing their tactics helps us report and prevent",
			Icon:     "alert",
			Options: []domain.Option{
				{Value: "otp-details", Label: "Bank details, OTP, or password", Icon: "🔐", Endpoint: true},
				{Value: "click-link-prevented", Label: "To click a link", Icon: "🔗", Endpoint: true},
				{Value: "download-app-prevented", Label: "To download or install an app", Icon: "📱", Endpoint: true},
				{Value: "transfer-money-prevented", Label: "To transfer money", Icon: "💸", Endpoint: true},
			},
		},

		// Check branch
		{
			ID:       "Q3_CHECK",
			Text:     "Can you check your bank account right now?",
			Subtitle: "Let's verify together if any money was lost",
			Icon:     "alert",
			Options: []domain.Option{
				{Value: "checking-now", Label: "Yes, let me check now", Icon: "👀", Next: "Q4_CHECK_RESULT"},
				{Value: "cannot-access", Label: "I can't access my account", Icon: "🔒", Next: "Q4_ACCESS_ISSUE"},
				{Value: "check-later", Label: "I'll check later", Icon: "⏰", Endpoint: true},
			},
		},
		{
			ID:       "Q4_CHECK_RESULT",
			Text:     "What do you see in your account?",
			Subtitle: "This determines our next steps",
			Icon:     "alert",
			Options: []domain.Option{
				{Value: "unauthorized-found", Label: "Yes, there are unauthorized transactions", Icon: "❌", Resolver: "loss-path"},
				{Value: "no-suspicious", Label: "No suspicious activity", Icon: "✅", Endpoint: true},
				{Value: "account-locked", Label: "Account is locked or frozen", Icon: "🔒", Endpoint: true},
			},
		},
		{
			ID:       "Q4_ACCESS_ISSUE",
			Text:     "Why can't you access your account?",
			Subtitle: "Account access issues can indicate compromise",
			Icon:     "alert",
			Options: []domain.Option{
				{Value: "password-not-working", Label: "Password not working / OTP not coming", Icon: "🔐", Endpoint: true},
				{Value: "app-not-working", Label: "App or website not working", Icon: "📱", Endpoint: true},
				{Value: "shows-locked", Label: "Account shows as locked or suspended", Icon: "🔒", Endpoint: true},
			},
		},
	}
}
