package formatting

import "fmt"

// FormatPrice formats a price in cents as US dollars.
func FormatPrice(priceInCents int) string {
	return fmt.Sprintf("$%.2f", float64(priceInCents)/100)
}

// FormatPriceShort drops the cents when they are zero.
func FormatPriceShort(priceInCents int) string {
	if priceInCents%100 == 0 {
		return fmt.Sprintf("$%.0f", float64(priceInCents)/100)
	}
	return FormatPrice(priceInCents)
}
