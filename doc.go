// Package comgate is a client for the Comgate payment gateway HTTP API
// (v2.0): create payment, payment status, cancel payment, transfer list and
// single transfer detail.
//
// Credentials and defaults come from the environment (COMGATE_MERCHANT_ID,
// COMGATE_SECRET, COMGATE_BASE_URL, COMGATE_TEST, COMGATE_METHODS) via the
// process-wide Configuration, and can be overridden per client:
//
//	client, err := comgate.NewClient(
//		comgate.WithMerchantID("merchant-1"),
//		comgate.WithSecret("secret-1"),
//	)
//	if err != nil {
//		// missing credentials
//	}
//
//	response, err := client.CreatePayment(ctx, map[string]any{
//		"price":  1000,
//		"curr":   "CZK",
//		"label":  "Product",
//		"ref_id": "order-1",
//		"email":  "payer@example.com",
//	})
//
// Attribute maps use conventional snake_case names; the library translates
// them to the gateway's wire naming and validates them before any request
// goes out. Errors are typed: ConfigurationError, requests.ValidationError,
// HTTPError and ResponseValidationError.
package comgate
