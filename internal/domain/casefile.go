package domain

// CaseDetails is the single case record shared by the triage result, the
// details-collection flow, and the content generator. Every field is
// optional: the content generator substitutes a bracketed human-readable
// placeholder for anything left empty, so a partially filled record always
// produces usable output.
type CaseDetails struct {
	// Identity and contact
	Name          string `json:"name,omitempty"`
	Mobile        string `json:"mobile,omitempty"`
	Email         string `json:"email,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	CustomerID    string `json:"customerId,omitempty"`
	Bank          string `json:"bank,omitempty"`

	// Transaction
	TransactionID string `json:"transactionId,omitempty"`
	Amount        string `json:"amount,omitempty"` // formatted, e.g. "₹4,999"
	DateTime      string `json:"dateTime,omitempty"`
	RecipientUPI  string `json:"recipientUpi,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
	Description   string `json:"description,omitempty"`

	// Card fraud
	CardLast4    string `json:"cardLast4,omitempty"`
	CardType     string `json:"cardType,omitempty"`
	TxnCount     string `json:"txnCount,omitempty"`
	TxnLocations string `json:"txnLocations,omitempty"`
	Location     string `json:"location,omitempty"`

	// Account takeover / phishing
	CanAccess        *bool  `json:"canAccess,omitempty"`
	PasswordChanged  string `json:"passwordChanged,omitempty"`
	SharedInfo       string `json:"sharedInfo,omitempty"` // e.g. "otp", "password", "card"
	FraudsterPhone   string `json:"fraudsterPhone,omitempty"`
	FraudsterEmail   string `json:"fraudsterEmail,omitempty"`
	FraudsterContact string `json:"fraudsterContact,omitempty"`
	LinkClicked      string `json:"linkClicked,omitempty"`
	OtherInfo        string `json:"otherInfo,omitempty"`

	// E-commerce
	Platform         string `json:"platform,omitempty"`
	Seller           string `json:"seller,omitempty"`
	SellerContact    string `json:"sellerContact,omitempty"`
	OrderID          string `json:"orderId,omitempty"`
	Product          string `json:"product,omitempty"`
	Issue            string `json:"issue,omitempty"` // "not-delivered" or "wrong-product"
	ExpectedDelivery string `json:"expectedDelivery,omitempty"`
	SellerAttempts   string `json:"sellerAttempts,omitempty"`
	PlatformAttempt  string `json:"platformAttempt,omitempty"`
	PlatformResponse string `json:"platformResponse,omitempty"`
}

// ScenarioContent holds the generated call script, SMS, and email for a
// classified scenario. It is derived and stateless: regenerated on each
// request, never cached or mutated.
type ScenarioContent struct {
	CallScript       string   `json:"callScript"`
	SMSTemplate      string   `json:"smsTemplate"`
	EmailBody        string   `json:"emailBody"`
	ImmediateActions []string `json:"immediateActions"`
	UrgentKeywords   []string `json:"urgentKeywords"`
}
