package bank

import (
	"sort"
	"strings"
	"testing"
)

func TestContacts(t *testing.T) {
	t.Run("known bank", func(t *testing.T) {
		got := Contacts("HDFC Bank")
		if got.Name != "HDFC Bank" {
			t.Errorf("name = %q, want HDFC Bank", got.Name)
		}
		if got.FraudHelpline != "18002586161" {
			t.Errorf("helpline = %q, want 18002586161", got.FraudHelpline)
		}
		if got.Email != "phishing@hdfcbank.com" {
			t.Errorf("email = %q, want phishing@hdfcbank.com", got.Email)
		}
	})

	t.Run("alias resolves to full entry", func(t *testing.T) {
		alias := Contacts("SBI")
		full := Contacts("State Bank of India")
		if alias != full {
			t.Errorf("SBI = %+v, want same record as State Bank of India", alias)
		}
		if alias.Name != "State Bank of India" {
			t.Errorf("alias name = %q, want State Bank of India", alias.Name)
		}

		if pnb := Contacts("PNB"); pnb.Name != "Punjab National Bank" {
			t.Errorf("PNB name = %q, want Punjab National Bank", pnb.Name)
		}
	})

	t.Run("unknown bank gets generic record", func(t *testing.T) {
		got := Contacts("Nonexistent Bank")
		if got.Name != "Nonexistent Bank" {
			t.Errorf("name = %q, want the requested name", got.Name)
		}
		if got.FraudHelpline != "1800XXXXX" {
			t.Errorf("helpline = %q, want placeholder", got.FraudHelpline)
		}
		if !strings.Contains(got.FraudHelplineDisplay, "Check your bank's website") {
			t.Errorf("helpline display = %q, want website hint", got.FraudHelplineDisplay)
		}
	})

	t.Run("empty name gets generic record", func(t *testing.T) {
		got := Contacts("")
		if got.Name != "Your Bank" {
			t.Errorf("name = %q, want Your Bank", got.Name)
		}
	})
}

func TestSupportedBanks(t *testing.T) {
	banks := SupportedBanks()
	if len(banks) != 17 {
		t.Errorf("bank count = %d, want 17", len(banks))
	}
	if !sort.StringsAreSorted(banks) {
		t.Errorf("bank list not sorted: %v", banks)
	}
	for _, name := range banks {
		if !IsSupported(name) {
			t.Errorf("IsSupported(%q) = false for a listed bank", name)
		}
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported("HDFC Bank") {
		t.Error("IsSupported(HDFC Bank) = false")
	}
	if IsSupported("Nonexistent Bank") {
		t.Error("IsSupported(Nonexistent Bank) = true")
	}
	// Lookups are exact match, not case-insensitive.
	if IsSupported("hdfc bank") {
		t.Error("IsSupported is unexpectedly case-insensitive")
	}
}
