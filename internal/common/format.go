package common

import "fmt"

// NotAvailable is the neutral placeholder for absent display values.
const NotAvailable = "N/A"

// FormatMoney formats a dollar amount for display
func FormatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// FormatOptMoney formats an optional dollar amount, N/A when absent
func FormatOptMoney(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return FormatMoney(*v)
}

// FormatOptNumber formats an optional number to two decimals, N/A when absent
func FormatOptNumber(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f", *v)
}

// FormatOptPct formats an optional fraction as a percentage, N/A when absent.
// Dividend yield arrives as a 0-1 fraction and is displayed x100.
func FormatOptPct(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f", *v*100)
}

// FormatOptString returns the string or N/A when absent
func FormatOptString(v *string) string {
	if v == nil || *v == "" {
		return NotAvailable
	}
	return *v
}
