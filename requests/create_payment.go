package requests

import (
	"strings"

	"github.com/alovak/comgate-go/internal/fieldtypes"
)

// conventionalToWire maps caller-facing snake_case attribute names to the
// gateway's mixed-case spelling. Attributes not listed are already in wire
// form and pass through as given.
var conventionalToWire = map[string]string{
	"ref_id":                       "refId",
	"full_name":                    "fullName",
	"billing_addr_city":            "billingAddrCity",
	"billing_addr_street":          "billingAddrStreet",
	"billing_addr_postal_code":     "billingAddrPostalCode",
	"billing_addr_country":         "billingAddrCountry",
	"home_delivery_city":           "homeDeliveryCity",
	"home_delivery_street":         "homeDeliveryStreet",
	"home_delivery_postal_code":    "homeDeliveryPostalCode",
	"home_delivery_country":        "homeDeliveryCountry",
	"init_recurring":               "initRecurring",
	"expiration_time":              "expirationTime",
	"dynamic_expiration":           "dynamicExpiration",
	"charge_unregulated_card_fees": "chargeUnregulatedCardFees",
	"enable_apple_pay_google_pay":  "enableApplePayGooglePay",
}

// CreatePayment models POST /v2.0/payment.json. Required fields are plain
// values; optional fields are pointers so an absent field never reaches the
// wire, not even as null.
type CreatePayment struct {
	Price int
	Curr  string
	Label string
	RefID string

	// Contact: at least one of Email and Phone must be set.
	Email    *string
	Phone    *string
	FullName *string

	Test    *bool
	Method  *string
	Account *string
	Country *string

	BillingAddrCity       *string
	BillingAddrStreet     *string
	BillingAddrPostalCode *string
	BillingAddrCountry    *string

	Delivery               *string
	HomeDeliveryCity       *string
	HomeDeliveryStreet     *string
	HomeDeliveryPostalCode *string
	HomeDeliveryCountry    *string

	Category *string
	Name     *string
	Lang     *string

	Preauth       *bool
	InitRecurring *bool
	Verification  *bool

	ExpirationTime    *string
	DynamicExpiration *bool

	// Callback URLs keep their snake_case spelling on the wire.
	URLPaid      *string
	URLCancelled *string
	URLPending   *string

	ChargeUnregulatedCardFees *bool
	EnableApplePayGooglePay   *bool
}

// NewCreatePayment builds the model from conventional snake_case attributes.
// Field constraints (minimum price, label length) are enforced here, at
// construction; cross-field rules are left to Validate.
func NewCreatePayment(attrs map[string]any) (*CreatePayment, error) {
	p := &CreatePayment{}
	seen := map[string]bool{}

	for key, value := range attrs {
		if value == nil {
			continue
		}
		wire := key
		if w, ok := conventionalToWire[key]; ok {
			wire = w
		}
		seen[wire] = true

		var err error
		switch wire {
		case "price":
			p.Price, err = fieldtypes.MinPrice(value)
		case "curr":
			p.Curr, err = fieldtypes.CoerceString(value)
		case "label":
			p.Label, err = fieldtypes.Label(value)
		case "refId":
			p.RefID, err = fieldtypes.CoerceString(value)
		case "email":
			err = setString(&p.Email, key, value)
		case "phone":
			err = setString(&p.Phone, key, value)
		case "fullName":
			err = setString(&p.FullName, key, value)
		case "test":
			err = setBool(&p.Test, key, value)
		case "method":
			err = setString(&p.Method, key, value)
		case "account":
			err = setString(&p.Account, key, value)
		case "country":
			err = setString(&p.Country, key, value)
		case "billingAddrCity":
			err = setString(&p.BillingAddrCity, key, value)
		case "billingAddrStreet":
			err = setString(&p.BillingAddrStreet, key, value)
		case "billingAddrPostalCode":
			err = setString(&p.BillingAddrPostalCode, key, value)
		case "billingAddrCountry":
			err = setString(&p.BillingAddrCountry, key, value)
		case "delivery":
			err = setString(&p.Delivery, key, value)
		case "homeDeliveryCity":
			err = setString(&p.HomeDeliveryCity, key, value)
		case "homeDeliveryStreet":
			err = setString(&p.HomeDeliveryStreet, key, value)
		case "homeDeliveryPostalCode":
			err = setString(&p.HomeDeliveryPostalCode, key, value)
		case "homeDeliveryCountry":
			err = setString(&p.HomeDeliveryCountry, key, value)
		case "category":
			err = setString(&p.Category, key, value)
		case "name":
			err = setString(&p.Name, key, value)
		case "lang":
			err = setString(&p.Lang, key, value)
		case "preauth":
			err = setBool(&p.Preauth, key, value)
		case "initRecurring":
			err = setBool(&p.InitRecurring, key, value)
		case "verification":
			err = setBool(&p.Verification, key, value)
		case "expirationTime":
			err = setString(&p.ExpirationTime, key, value)
		case "dynamicExpiration":
			err = setBool(&p.DynamicExpiration, key, value)
		case "url_paid":
			err = setString(&p.URLPaid, key, value)
		case "url_cancelled":
			err = setString(&p.URLCancelled, key, value)
		case "url_pending":
			err = setString(&p.URLPending, key, value)
		case "chargeUnregulatedCardFees":
			err = setBool(&p.ChargeUnregulatedCardFees, key, value)
		case "enableApplePayGooglePay":
			err = setBool(&p.EnableApplePayGooglePay, key, value)
		default:
			return nil, validationErrorf("unknown attribute %q", key)
		}
		if err != nil {
			if verr, ok := err.(*ValidationError); ok {
				return nil, verr
			}
			return nil, validationErrorf("%s %s", key, err)
		}
	}

	var missing []string
	for _, required := range []string{"price", "curr", "label", "refId"} {
		if !seen[required] {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, validationErrorf("missing attributes: %s", strings.Join(missing, ", "))
	}
	return p, nil
}

// Validate re-checks field constraints, then the cross-field rules in fixed
// order. The first failing rule wins.
func (p *CreatePayment) Validate() error {
	if _, err := fieldtypes.MinPrice(p.Price); err != nil {
		return validationErrorf("price %s", err)
	}
	if _, err := fieldtypes.Label(p.Label); err != nil {
		return validationErrorf("label %s", err)
	}

	if p.Email == nil && p.Phone == nil {
		return &ValidationError{Reason: "either email or phone must be provided"}
	}

	if p.Delivery != nil && *p.Delivery == "HOME_DELIVERY" {
		var missing []string
		if blank(p.HomeDeliveryCity) {
			missing = append(missing, "home_delivery_city")
		}
		if blank(p.HomeDeliveryStreet) {
			missing = append(missing, "home_delivery_street")
		}
		if blank(p.HomeDeliveryPostalCode) {
			missing = append(missing, "home_delivery_postal_code")
		}
		if blank(p.HomeDeliveryCountry) {
			missing = append(missing, "home_delivery_country")
		}
		if len(missing) > 0 {
			return validationErrorf("HOME_DELIVERY requires: %s", strings.Join(missing, ", "))
		}
	}

	if p.ExpirationTime != nil {
		if err := fieldtypes.ExpirationTime(*p.ExpirationTime); err != nil {
			return validationErrorf("expirationTime %s", err)
		}
	}
	return nil
}

// Payload returns the wire-keyed JSON body. Absent optionals are omitted.
func (p *CreatePayment) Payload() map[string]any {
	payload := map[string]any{
		"price": p.Price,
		"curr":  p.Curr,
		"label": p.Label,
		"refId": p.RefID,
	}
	putString(payload, "email", p.Email)
	putString(payload, "phone", p.Phone)
	putString(payload, "fullName", p.FullName)
	putBool(payload, "test", p.Test)
	putString(payload, "method", p.Method)
	putString(payload, "account", p.Account)
	putString(payload, "country", p.Country)
	putString(payload, "billingAddrCity", p.BillingAddrCity)
	putString(payload, "billingAddrStreet", p.BillingAddrStreet)
	putString(payload, "billingAddrPostalCode", p.BillingAddrPostalCode)
	putString(payload, "billingAddrCountry", p.BillingAddrCountry)
	putString(payload, "delivery", p.Delivery)
	putString(payload, "homeDeliveryCity", p.HomeDeliveryCity)
	putString(payload, "homeDeliveryStreet", p.HomeDeliveryStreet)
	putString(payload, "homeDeliveryPostalCode", p.HomeDeliveryPostalCode)
	putString(payload, "homeDeliveryCountry", p.HomeDeliveryCountry)
	putString(payload, "category", p.Category)
	putString(payload, "name", p.Name)
	putString(payload, "lang", p.Lang)
	putBool(payload, "preauth", p.Preauth)
	putBool(payload, "initRecurring", p.InitRecurring)
	putBool(payload, "verification", p.Verification)
	putString(payload, "expirationTime", p.ExpirationTime)
	putBool(payload, "dynamicExpiration", p.DynamicExpiration)
	putString(payload, "url_paid", p.URLPaid)
	putString(payload, "url_cancelled", p.URLCancelled)
	putString(payload, "url_pending", p.URLPending)
	putBool(payload, "chargeUnregulatedCardFees", p.ChargeUnregulatedCardFees)
	putBool(payload, "enableApplePayGooglePay", p.EnableApplePayGooglePay)
	return payload
}
