// Package billing demonstrates spying on a real function and process-wide
// cleanup between test cases.
package billing

//go:generate go run github.com/toejough/mockfn/shimgen taxRate --namespace billing

// taxRate is the original lookup behavior.
func taxRate(region string) int {
	if region == "eu" {
		return 20
	}

	return 10
}

// Total prices an order for a region, tax included.
func Total(region string, subtotal int) int {
	return subtotal + subtotal*TaxRate(region)/100
}
