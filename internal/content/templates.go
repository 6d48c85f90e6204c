package content

import (
	"fmt"
	"strings"

	"github.com/upi-kavach/kavach/internal/domain"
)

func (g *Generator) qrAmountManipulation(d domain.CaseDetails) domain.ScenarioContent {
	amount := orElse(d.Amount, "₹_____")
	txnID := orElse(d.TransactionID, "[From UPI app]")
	recipient := orElse(d.RecipientUPI, "[Merchant UPI ID]")
	name := orElse(d.Name, "[Your name]")
	mobile := orElse(d.Mobile, "[Your number]")

	callScript := fmt.Sprintf(`Hello, I'm calling to report an URGENT UPI QR code fraud.

INCIDENT DETAILS:
• Fraud Type: QR Code Amount Manipulation
• What Happened: I scanned a QR code to pay a small amount, but a much larger amount was deducted
• Expected Amount: [Original amount]
• Actual Debited: %s
• Transaction ID: %s
• Date & Time: %s
• Merchant/Recipient: %s
• My UPI App: [PhonePe/GPay/Paytm/Other]

URGENT REQUESTS:
1. Report this merchant UPI ID for fraud investigation
2. Request transaction reversal or chargeback for the excess amount
3. Block my UPI/card to prevent further unauthorized transactions
4. Provide me with a complaint reference number
5. Send email confirmation of this complaint

TIME CRITICAL: This happened within the last hour. Please act immediately to freeze the recipient account and recover funds.

My Details:
• Name: %s
• Mobile: %s
• Account Number: %s

Can you help me RIGHT NOW?`,
		amount, txnID, orElse(d.DateTime, "Just now"), recipient,
		name, mobile, orElse(d.AccountNumber, "[Your account]"))

	sms := fmt.Sprintf(`URGENT: QR Code fraud reported. Transaction ID: %s. Amount %s debited via manipulated QR code. Request IMMEDIATE account freeze of recipient %s and chargeback. Complaint ref: [REF from call]. %s, %s`,
		orElse(d.TransactionID, "___"), orElse(d.Amount, "₹___"),
		orElse(d.RecipientUPI, "___"), orElse(d.Name, "[Name]"), orElse(d.Mobile, "[Mobile]"))

	email := fmt.Sprintf(`Subject: URGENT: QR Code Amount Manipulation - Transaction ID %s

Dear %s Fraud Team,

I am writing to report an URGENT fraudulent transaction involving QR code amount manipulation.

INCIDENT SUMMARY:
I scanned a UPI QR code at a merchant location to make a small payment. However, the QR code was manipulated to deduct a significantly higher amount from my account without my knowledge or consent.

TRANSACTION DETAILS:
• Transaction ID: %s
• Date & Time: %s
• Expected Amount: [Small amount, e.g., ₹50-500]
• Amount Actually Debited: %s
• Excess Amount: [Calculate difference]
• Recipient UPI ID: %s
• UPI App Used: [PhonePe/Google Pay/Paytm]
• Merchant Location: [If known]

HOW THIS HAPPENED:
The merchant displayed a QR code for payment. I scanned it expecting to pay a small amount, but the QR code was pre-configured with a much higher amount. I was not shown the amount before the payment was processed, or it was processed too quickly for me to verify.

IMMEDIATE ACTIONS TAKEN:
• Called bank fraud helpline: %s
• Complaint Reference: [From call]
• Filed cybercrime complaint: [If done]
• Disabled UPI on all apps: [Yes/No]

URGENT REQUESTS:
1. Report this merchant UPI ID (%s) for fraud investigation and blacklisting
2. Initiate chargeback for the full fraudulent amount of %s
3. Investigate this merchant for QR code manipulation
4. Block my UPI and cards to prevent further unauthorized transactions
5. Provide written acknowledgment of this complaint
6. Share the investigation timeline and expected resolution date
7. Assist in recovering the fraudulent amount

EVIDENCE ATTACHED:
• UPI transaction confirmation screenshot
• QR code photograph (if available)
• Merchant location details
• Payment app transaction history

LEGAL REFERENCE:
As per RBI guidelines on unauthorized digital transactions and the IT Act provisions on cyber fraud, I request immediate action within the stipulated timeline. This is a clear case of fraud through QR code manipulation.

CONTACT DETAILS:
Name: %s
Account Number: %s
Mobile: %s
Email: %s

This is an extremely time-sensitive matter. The golden window for fund recovery is very short. I expect immediate action and a response within 24 hours.

Thank you for your urgent attention.

Sincerely,
%s`,
		orElse(d.TransactionID, "___"), orElse(d.Bank, "Bank"),
		txnID, orElse(d.DateTime, "[Date/Time]"), amount, orElse(d.RecipientUPI, "[Merchant UPI]"),
		g.helplineCalledAt(),
		orElse(d.RecipientUPI, "___"), orElse(d.Amount, "₹___"),
		orElse(d.Name, "[Your Name]"), orElse(d.AccountNumber, "[Account]"), mobile, orElse(d.Email, "[Email]"),
		orElse(d.Name, "[Your Name]"))

	return domain.ScenarioContent{
		CallScript:  callScript,
		SMSTemplate: sms,
		EmailBody:   email,
		ImmediateActions: []string{
			"Call bank fraud helpline - report QR code manipulation",
			"Request immediate freeze of merchant/recipient account",
			"Disable UPI on all your apps (PhonePe, GPay, Paytm)",
			"Take photo of the QR code if still at location",
			"Note down merchant details (name, location, contact)",
		},
		UrgentKeywords: []string{
			"QR code manipulation", "wrong amount deducted",
			"merchant account freeze", "immediate chargeback",
		},
	}
}

func (g *Generator) accountTakeover(scenario string, d domain.CaseDetails) domain.ScenarioContent {
	happened := "Unauthorized access to my account"
	if strings.Contains(scenario, "friend") {
		happened = "My friend's/family member's account was used to defraud me"
	}
	access := "Yes, but suspicious activity"
	accessEmail := "I can still access but see unauthorized activity"
	if d.CanAccess != nil && !*d.CanAccess {
		access = "No, locked out"
		accessEmail = "Locked out of account"
	}
	how := "Unknown - possibly through phishing or data breach"
	howEmail := "Unknown - possibly phishing/data breach"
	if strings.Contains(scenario, "otp") {
		how = "I was tricked into sharing OTP/password"
		howEmail = "OTP/Password sharing (social engineering)"
	}
	passwordStatus := "Unknown"
	if d.PasswordChanged != "" {
		passwordStatus = "Changed by fraudster"
	}

	callScript := fmt.Sprintf(`Hello, this is an EMERGENCY. My account has been compromised and taken over.

CRITICAL SITUATION:
• Fraud Type: Account Takeover
• What Happened: %s
• Unauthorized Transactions: Yes
• Can Access Account: %s
• Password Changed: %s

IMMEDIATE ACTIONS NEEDED:
1. FREEZE my account IMMEDIATELY - no transactions in or out
2. Block all cards linked to this account
3. Disable all UPI apps linked to this account
4. Change my mobile number registration if compromised
5. Reset all passwords and PINs

UNAUTHORIZED TRANSACTIONS:
• Transaction ID: %s
• Amount: %s
• Date/Time: %s
• Recipient: %s

HOW IT HAPPENED:
%s

I need you to:
1. Freeze account NOW
2. Reverse all unauthorized transactions
3. Secure my account
4. Provide complaint reference
5. Guide me on next steps

My Details:
• Name: %s
• Account: %s
• Mobile: %s

This is CRITICAL - please act IMMEDIATELY!`,
		happened, access, orElse(d.PasswordChanged, "Unknown"),
		orElse(d.TransactionID, "[Multiple]"), orElse(d.Amount, "₹_____"),
		orElse(d.DateTime, "[Multiple times]"), orElse(d.RecipientUPI, "[Unknown]"),
		how,
		orElse(d.Name, "[Your name]"), orElse(d.AccountNumber, "[Account]"), orElse(d.Mobile, "[Mobile]"))

	sms := fmt.Sprintf(`EMERGENCY: Account takeover. Unauthorized transactions detected. Request IMMEDIATE account freeze. Amount: %s. Transaction ID: %s. Block all cards and UPI. Complaint ref: [REF]. %s`,
		orElse(d.Amount, "₹___"), orElse(d.TransactionID, "Multiple"), orElse(d.Name, "[Name]"))

	txnLine := "• Multiple unauthorized transactions"
	if d.TransactionID != "" {
		txnLine = "• Transaction ID: " + d.TransactionID
	}

	email := fmt.Sprintf(`Subject: EMERGENCY: Account Takeover - Immediate Freeze Required

Dear %s Security Team,

This is an EMERGENCY. My account has been compromised and taken over by fraudsters.

CRITICAL INCIDENT:
Unauthorized individuals have gained access to my account and are making fraudulent transactions. Immediate action is required to prevent further loss.

UNAUTHORIZED ACCESS DETAILS:
• How Compromised: %s
• First Detected: %s
• Current Status: %s
• Password Status: %s

UNAUTHORIZED TRANSACTIONS:
%s
• Total Amount: %s
• Recipients: %s
• Transaction Method: %s

IMMEDIATE EMERGENCY REQUESTS:
1. ⚠️ FREEZE account immediately - block all transactions
2. ⚠️ Block all cards (debit and credit) linked to this account
3. ⚠️ Disable all UPI apps linked to this account
4. ⚠️ Reverse all unauthorized transactions
5. ⚠️ Reset all authentication credentials
6. ⚠️ Change mobile number registration if compromised
7. ⚠️ Enable enhanced security monitoring

ACTIONS I'VE TAKEN:
• Called fraud helpline: %s
• Changed passwords on accessible accounts
• Disabled UPI apps where possible
• Filed cybercrime complaint: [If done]
• Blocked cards through app/website

EVIDENCE:
• Screenshots of unauthorized transactions
• Call/SMS logs from fraudsters (if applicable)
• Timeline of suspicious activities
• Device/IP logs showing unauthorized access

CONTACT DETAILS:
Name: %s
Account: %s
Mobile: %s
Email: %s

This requires IMMEDIATE action. Every minute of delay increases my financial loss.

Urgently,
%s`,
		orElse(d.Bank, "Bank"), howEmail, orElse(d.DateTime, "[Date/Time]"), accessEmail, passwordStatus,
		txnLine, orElse(d.Amount, "₹_____"), orElse(d.RecipientUPI, "Multiple unknown accounts"),
		orElse(d.PaymentMethod, "UPI/Net Banking"),
		g.helplineCalledAt(),
		orElse(d.Name, "[Your Name]"), orElse(d.AccountNumber, "[Account]"),
		orElse(d.Mobile, "[Registered Mobile]"), orElse(d.Email, "[Email]"),
		orElse(d.Name, "[Your Name]"))

	return domain.ScenarioContent{
		CallScript:  callScript,
		SMSTemplate: sms,
		EmailBody:   email,
		ImmediateActions: []string{
			"Call bank IMMEDIATELY - report account takeover",
			"Request complete account freeze",
			"Block all cards linked to account",
			"Change all passwords (banking, email, linked services)",
			"Enable 2-factor authentication everywhere",
		},
		UrgentKeywords: []string{
			"account takeover", "unauthorized access", "freeze account",
			"block cards", "password compromised",
		},
	}
}

func (g *Generator) cardCompromise(scenario string, d domain.CaseDetails) domain.ScenarioContent {
	kind := "Cloning"
	kindVerb := "cloned"
	if strings.Contains(scenario, "skimming") {
		kind = "Skimming"
		kindVerb = "skimmed"
	}
	atATM := strings.Contains(scenario, "atm")
	where := "Point of Sale (POS)"
	whereShort := "merchant"
	happened := "My card was swiped at a store, now seeing unauthorized charges."
	signs := "• Cashier took card away from my sight\n• Multiple swipes for one transaction\n• Delay in returning card"
	if atATM {
		where = "ATM machine"
		whereShort = "ATM"
		happened = "I used an ATM that looked tampered/suspicious. Now seeing unauthorized transactions."
		signs = "• ATM had loose card slot / strange attachments\n• PIN pad felt unusual\n• Card took long to be returned"
	}
	last4 := orElse(d.CardLast4, "XXXX")

	callScript := fmt.Sprintf(`Hello, I'm reporting card fraud - my card has been skimmed/cloned.

INCIDENT:
• Fraud Type: Card %s
• Where: %s
• When: %s
• Suspicious Location: [ATM/Store address if known]

WHAT HAPPENED:
%s

UNAUTHORIZED TRANSACTIONS:
• Card Number: ****%s
• Amount Lost: %s
• Transaction Locations: %s
• Transaction IDs: %s

IMMEDIATE ACTIONS NEEDED:
1. BLOCK this card immediately (****%s)
2. Issue new card with DIFFERENT number
3. Dispute all unauthorized transactions
4. Check if other cards are compromised
5. Investigate the %s location

SUSPICIOUS SIGNS:
%s

My Details:
• Name: %s
• Card: ****%s
• Mobile: %s

Please block card NOW and start investigation.`,
		kind, where, orElse(d.DateTime, "[Date/Time]"),
		happened,
		last4, orElse(d.Amount, "₹_____"), orElse(d.TxnLocations, "[Multiple/International]"),
		orElse(d.TransactionID, "[Multiple]"),
		last4, whereShort, signs,
		orElse(d.Name, "[Your name]"), last4, orElse(d.Mobile, "[Mobile]"))

	sms := fmt.Sprintf(`URGENT: Card fraud. Card ****%s %s. Unauthorized transactions %s. Request IMMEDIATE card block & new card issuance. Complaint ref: [REF]. %s`,
		last4, kindVerb, orElse(d.Amount, "₹___"), orElse(d.Name, "[Name]"))

	compromiseDetail := `My card was used at a merchant where skimming likely occurred:
• Cashier took card out of my sight
• Card was swiped multiple times
• Unusual delay in transaction
• No chip reader used (magnetic strip)

Merchant Details:
• Store Name: [Merchant]
• Location: [Address]
• Date/Time: [Date/Time]`
	if atATM {
		compromiseDetail = `I used an ATM that appeared to have skimming devices:
• Card slot had loose or unusual attachments
• PIN pad felt different or had overlay
• Card took unusually long to be returned
• ATM behavior was suspicious

ATM Details:
• Bank: [ATM Bank Name]
• Location: [Exact Address]
• ATM ID: [If visible]
• Date/Time Used: [Date/Time]`
	}

	email := fmt.Sprintf(`Subject: URGENT: Card %s - Block Card & Dispute Transactions

Dear %s Card Fraud Team,

I am reporting card fraud. My card has been %s and unauthorized transactions are being made.

INCIDENT DETAILS:
• Card Number: ****%s
• Card Type: %s
• Fraud Type: Card %s
• Location of Skimming: %s
• Date of Original Transaction: %s
• Location: %s

UNAUTHORIZED TRANSACTIONS:
• First Detected: %s
• Total Amount: %s
• Number of Transactions: %s
• Transaction Locations: %s
• Transaction IDs: %s

HOW CARD WAS COMPROMISED:
%s

IMMEDIATE ACTIONS REQUESTED:
1. ⚠️ BLOCK card ****%s immediately
2. ⚠️ Issue new card with DIFFERENT card number
3. ⚠️ Dispute and reverse ALL unauthorized transactions
4. ⚠️ Investigate the %s location for skimming devices
5. ⚠️ Check if my other cards are compromised
6. ⚠️ Enable enhanced fraud monitoring
7. ⚠️ Compensate for fraudulent charges as per bank policy

ACTIONS TAKEN:
• Blocked card via mobile app: [Yes/No]
• Called fraud helpline: %s
• Filed cybercrime complaint: [If done]
• Checked other cards: [Status]

EVIDENCE:
• Transaction receipts (original vs fraudulent)
• Card usage timeline showing impossible transactions
• Photos of suspicious %s (if available)
• Bank statements highlighting unauthorized transactions

CONTACT:
Name: %s
Customer ID: %s
Mobile: %s
Email: %s

I request immediate action and zero liability for these fraudulent transactions as per RBI guidelines.

Sincerely,
%s`,
		kind, orElse(d.Bank, "Bank"), kindVerb,
		last4, orElse(d.CardType, "[Debit/Credit]"), kind, whereShort,
		orElse(d.DateTime, "[Date]"), orElse(d.Location, "[ATM/Store address]"),
		orElse(d.DateTime, "[Date/Time]"), orElse(d.Amount, "₹_____"), orElse(d.TxnCount, "[Count]"),
		orElse(d.TxnLocations, "[Multiple locations/countries]"), orElse(d.TransactionID, "[List all IDs]"),
		compromiseDetail,
		last4, whereShort,
		g.helplineCalledAt(),
		whereShort+" terminal",
		orElse(d.Name, "[Your Name]"), orElse(d.CustomerID, "[Customer ID]"),
		orElse(d.Mobile, "[Mobile]"), orElse(d.Email, "[Email]"),
		orElse(d.Name, "[Your Name]"))

	return domain.ScenarioContent{
		CallScript:  callScript,
		SMSTemplate: sms,
		EmailBody:   email,
		ImmediateActions: []string{
			fmt.Sprintf("Block card ****%s immediately", last4),
			"Request new card with different number",
			"Dispute all unauthorized transactions",
			"Check all other cards for unauthorized activity",
			fmt.Sprintf("Report %s location to bank", whereShort),
		},
		UrgentKeywords: []string{
			"card skimming", "card cloning", "block card",
			"dispute transactions", "ATM fraud",
		},
	}
}

func (g *Generator) phishing(scenario string, d domain.CaseDetails) domain.ScenarioContent {
	var attackType, vector, contactMethod string
	switch {
	case strings.Contains(scenario, "email"):
		attackType = "Email Phishing"
		vector = "Email"
		contactMethod = "Email address: " + orElse(d.FraudsterEmail, "[Email]")
	case strings.Contains(scenario, "sms"):
		attackType = "SMS Phishing"
		vector = "SMS/WhatsApp"
		contactMethod = "Phone number: " + orElse(d.FraudsterPhone, "[Number]")
	default:
		attackType = "Voice Phishing (Vishing)"
		vector = "Phone Call"
		contactMethod = "Caller ID: " + orElse(d.FraudsterPhone, "[Number]")
	}

	received := "phone call"
	if strings.Contains(scenario, "email") {
		received = "convincing email"
	} else if strings.Contains(scenario, "sms") {
		received = "text message"
	}

	tricked := "providing my account details"
	if strings.Contains(strings.ToLower(d.SharedInfo), "otp") {
		tricked = "sharing my OTP"
	}

	bank := orElse(d.Bank, "my bank")

	callScript := fmt.Sprintf(`Hello, I'm reporting a phishing attack where I was tricked into sharing my details.

INCIDENT:
• Fraud Type: %s
• How Contacted: %s
• When: %s
• What I Shared: %s

WHAT HAPPENED:
I received a %s that looked like it was from %s. I was tricked into %s.

DAMAGE ASSESSMENT:
• Money Lost: %s
• Information Shared: %s
• Fraudster Details: %s

IMMEDIATE ACTIONS NEEDED:
1. Freeze my account/block cards immediately
2. Reset all passwords and PINs
3. Reverse any unauthorized transactions
4. Enable enhanced security (2FA)
5. Monitor account for suspicious activity

FRAUDSTER INFORMATION:
• Contact Method: %s
• Message/Call Content: [What they said]
• Link Clicked: %s

My Details:
• Name: %s
• Account: %s
• Mobile: %s

Please secure my account immediately and reverse any fraudulent transactions.`,
		attackType, vector, orElse(d.DateTime, "[Date/Time]"),
		orElse(d.SharedInfo, "[OTP/Password/Card Details]"),
		received, bank, tricked,
		orElse(d.Amount, "₹_____ / Checking"),
		orElse(d.SharedInfo, "[OTP/Password/Card/Account details]"),
		orElse(d.FraudsterContact, "[Phone/Email/Link]"),
		contactMethod, orElse(d.LinkClicked, "[If any]"),
		orElse(d.Name, "[Your name]"), orElse(d.AccountNumber, "[Account]"), orElse(d.Mobile, "[Mobile]"))

	sms := fmt.Sprintf(`URGENT: Phishing attack. Shared %s with fraudster. Request immediate account freeze, password reset. Loss: %s. Fraudster: %s. Complaint ref: [REF]. %s`,
		orElse(d.SharedInfo, "credentials"), orElse(d.Amount, "Checking"),
		orElse(d.FraudsterContact, "___"), orElse(d.Name, "[Name]"))

	var attackDetail string
	switch {
	case strings.Contains(scenario, "email"):
		attackDetail = fmt.Sprintf(`I received an email that appeared to be from %s. The email:
• Had official-looking branding and logos
• Claimed there was an issue with my account
• Provided a link to "verify" my details
• Email address: %s
• Link clicked: %s`,
			orElse(d.Bank, "the bank"), orElse(d.FraudsterEmail, "[Fraudster email]"), orElse(d.LinkClicked, "[If clicked]"))
	case strings.Contains(scenario, "sms"):
		attackDetail = fmt.Sprintf(`I received a text message claiming to be from %s:
• Message appeared official with sender ID mimicking bank
• Claimed urgent action needed on account
• Provided link or asked to call a number
• Sender: %s
• Message content: [Copy message text]`,
			orElse(d.Bank, "the bank"), orElse(d.FraudsterPhone, "[Sender ID/Number]"))
	default:
		attackDetail = fmt.Sprintf(`I received a phone call from someone claiming to be %s staff:
• Caller ID: %s
• Caller claimed to be from fraud department
• Used official-sounding language and procedures
• Created sense of urgency`,
			orElse(d.Bank, "bank"), orElse(d.FraudsterPhone, "[Spoofed number]"))
	}

	compromised := compromisedLines(d)

	txnStatus := "Checking"
	if d.TransactionID != "" {
		txnStatus = "Yes"
	}

	email := fmt.Sprintf(`Subject: URGENT: Phishing Attack - Account Security Breach

Dear %s Security Team,

I am reporting a phishing attack where I was socially engineered into sharing sensitive information.

PHISHING ATTACK DETAILS:
• Attack Type: %s
• Attack Vector: %s
• Date/Time: %s
• Fraudster Impersonated: %s / Official

HOW THE ATTACK HAPPENED:
%s

INFORMATION COMPROMISED:
%s

FINANCIAL IMPACT:
• Unauthorized Transactions: %s
• Amount Lost: %s
• Transaction Details: %s

IMMEDIATE ACTIONS REQUESTED:
1. ⚠️ FREEZE account immediately
2. ⚠️ Block all cards
3. ⚠️ Reset passwords and PINs
4. ⚠️ Reverse unauthorized transactions
5. ⚠️ Enable 2-factor authentication
6. ⚠️ Add fraud alerts on account
7. ⚠️ Investigate and block fraudster contact details

ACTIONS I'VE TAKEN:
• Changed passwords on all accessible accounts
• Disabled UPI and mobile banking
• Called fraud helpline: %s
• Filed cybercrime complaint: [If done]
• Preserved evidence (screenshots, call logs, messages)

EVIDENCE ATTACHED:
• Screenshots and logs of the fraudulent contact
• Timeline of events
• Any transaction confirmations

FRAUDSTER DETAILS:
• %s

CONTACT:
Name: %s
Account: %s
Mobile: %s
Email: %s

Please take immediate action to secure my account and prevent further unauthorized access.

Urgently,
%s`,
		orElse(d.Bank, "Bank"), attackType, vector, orElse(d.DateTime, "[Date/Time]"), orElse(d.Bank, "Bank"),
		attackDetail, compromised,
		txnStatus, orElse(d.Amount, "Under investigation"), orElse(d.TransactionID, "[Checking statement]"),
		g.helplineCalledAt(),
		contactMethod,
		orElse(d.Name, "[Your Name]"), orElse(d.AccountNumber, "[Account]"),
		orElse(d.Mobile, "[Mobile]"), orElse(d.Email, "[Email]"),
		orElse(d.Name, "[Your Name]"))

	return domain.ScenarioContent{
		CallScript:  callScript,
		SMSTemplate: sms,
		EmailBody:   email,
		ImmediateActions: []string{
			"Freeze account / Block all cards immediately",
			"Change all passwords (banking, email, linked services)",
			"Enable 2-factor authentication",
			"Check for unauthorized transactions",
			"Report fraudster contact details to bank",
		},
		UrgentKeywords: []string{
			"phishing attack", "shared OTP", "freeze account",
			"password compromise", "unauthorized access",
		},
	}
}

// compromisedLines builds the checklist of information the user shared with
// the fraudster, from the free-form shared-info field.
func compromisedLines(d domain.CaseDetails) string {
	shared := strings.ToLower(d.SharedInfo)
	var lines []string
	if strings.Contains(shared, "otp") {
		lines = append(lines, "• ✓ OTP/PIN")
	}
	if strings.Contains(shared, "password") {
		lines = append(lines, "• ✓ Password")
	}
	if strings.Contains(shared, "card") {
		lines = append(lines, "• ✓ Card details (number, CVV, expiry)")
	}
	if strings.Contains(shared, "account") {
		lines = append(lines, "• ✓ Account number")
	}
	lines = append(lines, "• Other: "+orElse(d.OtherInfo, "[List any other info]"))
	return strings.Join(lines, "\n")
}

func (g *Generator) ecommerce(d domain.CaseDetails) domain.ScenarioContent {
	issue := "received fake/wrong product"
	issueEmail := "Received counterfeit/wrong product"
	if d.Issue == "not-delivered" {
		issue = "never received it"
		issueEmail = "Product not delivered despite payment"
	}

	callScript := fmt.Sprintf(`Hello, I'm reporting e-commerce fraud.

INCIDENT:
• Fraud Type: E-commerce / Online Shopping Fraud
• Platform: %s
• Seller: %s
• Order ID: %s

WHAT HAPPENED:
I paid for a product online but %s.

TRANSACTION DETAILS:
• Amount Paid: %s
• Payment Method: %s
• Transaction ID: %s
• Date of Payment: %s
• Expected Delivery: %s

SELLER DETAILS:
• Seller Name: %s
• Contact: %s
• Website/App: %s
• Product: %s

REQUESTS:
1. Initiate chargeback for %s
2. Help me get refund from platform
3. Report fraudulent seller
4. Provide complaint reference

My Details:
• Name: %s
• Payment from: %s
• Mobile: %s

I need chargeback initiated immediately.`,
		orElse(d.Platform, "[Website/App name]"), orElse(d.Seller, "[Seller name]"), orElse(d.OrderID, "[Order number]"),
		issue,
		orElse(d.Amount, "₹_____"), orElse(d.PaymentMethod, "UPI/Card"), orElse(d.TransactionID, "[Transaction ID]"),
		orElse(d.DateTime, "[Date]"), orElse(d.ExpectedDelivery, "[Date]"),
		orElse(d.Seller, "[Name]"), orElse(d.SellerContact, "[Phone/Email]"),
		orElse(d.Platform, "[Platform]"), orElse(d.Product, "[Product description]"),
		orElse(d.Amount, "₹___"),
		orElse(d.Name, "[Your name]"), orElse(d.PaymentMethod, "[UPI/Card]"), orElse(d.Mobile, "[Mobile]"))

	sms := fmt.Sprintf(`E-commerce fraud report. Paid %s to %s, no product received. Order: %s. Transaction: %s. Request chargeback. Ref: [REF]. %s`,
		orElse(d.Amount, "₹___"), orElse(d.Seller, "seller"), orElse(d.OrderID, "___"),
		orElse(d.TransactionID, "___"), orElse(d.Name, "[Name]"))

	email := fmt.Sprintf(`Subject: Chargeback Request - E-commerce Fraud

Dear %s Team,

I request a chargeback for an e-commerce fraud transaction.

TRANSACTION DETAILS:
• Amount: %s
• Transaction ID: %s
• Date: %s
• Payment Method: %s
• Merchant: %s

FRAUD DETAILS:
Platform: %s
Order ID: %s
Product: %s
Issue: %s

SELLER DETAILS:
Name: %s
Contact: %s
Status: Not responding / Disappeared

ATTEMPTS TO RESOLVE:
• Contacted seller: %s
• Contacted platform: %s
• Platform response: %s

CHARGEBACK REQUEST:
I request immediate chargeback of %s as per consumer protection guidelines.

EVIDENCE:
• Order confirmation
• Payment receipt
• Communication with seller/platform
• Delivery tracking (if any)
• Platform complaint ID

Contact:
%s
%s

Please process chargeback urgently.

Sincerely,
%s`,
		orElse(d.Bank, "Bank"),
		orElse(d.Amount, "₹_____"), orElse(d.TransactionID, "[ID]"), orElse(d.DateTime, "[Date]"),
		orElse(d.PaymentMethod, "UPI/Card"), orElse(d.Seller, "[Seller]"),
		orElse(d.Platform, "[Platform]"), orElse(d.OrderID, "[Order ID]"), orElse(d.Product, "[Product]"), issueEmail,
		orElse(d.Seller, "[Seller name]"), orElse(d.SellerContact, "[Contact]"),
		orElse(d.SellerAttempts, "Multiple times, no response"),
		orElse(d.PlatformAttempt, "Yes, on [date]"),
		orElse(d.PlatformResponse, "Not resolved"),
		orElse(d.Amount, "₹___"),
		orElse(d.Name, "[Your Name]"), orElse(d.Mobile, "[Mobile]"),
		orElse(d.Name, "[Your Name]"))

	return domain.ScenarioContent{
		CallScript:  callScript,
		SMSTemplate: sms,
		EmailBody:   email,
		ImmediateActions: []string{
			"Contact seller - document all attempts",
			"Initiate chargeback via bank/payment app",
			"File complaint on platform",
			"File consumer complaint (consumer.gov.in)",
			"Report seller to platform",
		},
		UrgentKeywords: []string{
			"e-commerce fraud", "chargeback request",
			"product not delivered", "fraudulent seller",
		},
	}
}

func (g *Generator) generic(scenarioName string, d domain.CaseDetails) domain.ScenarioContent {
	callScript := fmt.Sprintf(`Hello, I'm calling to report fraud on my account.

INCIDENT DETAILS:
• Fraud Type: %s
• Date/Time: %s
• Amount: %s

WHAT HAPPENED:
%s

TRANSACTION DETAILS:
• Transaction ID: %s
• Recipient/Merchant: %s
• Payment Method: %s

URGENT REQUESTS:
1. Report the recipient account for fraud investigation
2. Block my cards and freeze my account if needed to prevent further loss
3. Initiate transaction reversal or chargeback if possible
4. Provide complaint reference number
5. Guide me on next steps

MY DETAILS:
• Name: %s
• Account/Card: %s
• Mobile: %s

Please help me recover my money and secure my account.`,
		scenarioName, orElse(d.DateTime, "[When it happened]"), orElse(d.Amount, "₹_____"),
		orElse(d.Description, "[Describe the fraud]"),
		orElse(d.TransactionID, "[ID from app/SMS]"), orElse(d.RecipientUPI, "[Where money went]"),
		orElse(d.PaymentMethod, "UPI/Card/Net Banking"),
		orElse(d.Name, "[Your name]"), orElse(d.AccountNumber, "[Account/Card]"), orElse(d.Mobile, "[Your number]"))

	sms := fmt.Sprintf(`URGENT: Fraud reported. Type: %s. Amount: %s. Transaction: %s. Request immediate action. Complaint ref: [REF from call]. %s, %s`,
		scenarioName, orElse(d.Amount, "₹___"), orElse(d.TransactionID, "___"),
		orElse(d.Name, "[Name]"), orElse(d.Mobile, "[Mobile]"))

	email := fmt.Sprintf(`Subject: Fraud Report - %s

Dear %s Fraud Team,

I am reporting a fraudulent transaction on my account.

FRAUD TYPE: %s

INCIDENT DETAILS:
• Date/Time: %s
• Amount: %s
• Transaction ID: %s
• Recipient: %s

DESCRIPTION:
%s

ACTIONS TAKEN:
• Called fraud helpline: %s
• Complaint reference: [From call]
• Filed cybercrime complaint: [If done]

REQUESTS:
1. Report recipient account for fraud investigation
2. Request reversal of the fraudulent transaction if possible
3. Block my cards/UPI and secure my account
4. Investigate this fraud and track the recipient
5. Provide written acknowledgment

CONTACT:
Name: %s
Mobile: %s
Email: %s

Please take immediate action to recover the funds.

Sincerely,
%s`,
		scenarioName, orElse(d.Bank, "Bank"), scenarioName,
		orElse(d.DateTime, "[Date/Time]"), orElse(d.Amount, "₹_____"),
		orElse(d.TransactionID, "[Transaction ID]"), orElse(d.RecipientUPI, "[Recipient details]"),
		orElse(d.Description, "[Detailed description of what happened]"),
		g.helplineCalledAt(),
		orElse(d.Name, "[Your Name]"), orElse(d.Mobile, "[Mobile]"), orElse(d.Email, "[Email]"),
		orElse(d.Name, "[Your Name]"))

	return domain.ScenarioContent{
		CallScript:  callScript,
		SMSTemplate: sms,
		EmailBody:   email,
		ImmediateActions: []string{
			"Call bank fraud helpline immediately",
			"Request account/card freeze if needed",
			"File cybercrime complaint",
			"Collect all evidence (screenshots, receipts)",
			"Note down all reference numbers",
		},
		UrgentKeywords: []string{
			"fraud report", "unauthorized transaction",
			"immediate action", "chargeback",
		},
	}
}
