package requests_test

import (
	"strings"
	"testing"

	"github.com/alovak/comgate-go/requests"
	"github.com/stretchr/testify/require"
)

func validCreateAttrs() map[string]any {
	return map[string]any{
		"price":  1000,
		"curr":   "CZK",
		"label":  "Product",
		"ref_id": "order-1",
		"email":  "payer@example.com",
	}
}

func TestNewCreatePayment_TranslatesConventionalNames(t *testing.T) {
	attrs := validCreateAttrs()
	attrs["full_name"] = "Jan Novak"
	attrs["billing_addr_city"] = "Praha"
	attrs["init_recurring"] = true

	p, err := requests.NewCreatePayment(attrs)
	require.NoError(t, err)

	payload := p.Payload()
	require.Equal(t, "order-1", payload["refId"])
	require.Equal(t, "Jan Novak", payload["fullName"])
	require.Equal(t, "Praha", payload["billingAddrCity"])
	require.Equal(t, true, payload["initRecurring"])

	for key := range payload {
		require.NotContains(t, key, "_id", "conventional names must not leak to the wire")
	}
	require.NotContains(t, payload, "ref_id")
	require.NotContains(t, payload, "full_name")
}

func TestNewCreatePayment_PriceMinimum(t *testing.T) {
	attrs := validCreateAttrs()
	attrs["price"] = 50
	_, err := requests.NewCreatePayment(attrs)
	require.Error(t, err)
	var verr *requests.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Reason, "price")

	attrs["price"] = 100
	_, err = requests.NewCreatePayment(attrs)
	require.NoError(t, err)
}

func TestNewCreatePayment_CoercesPriceString(t *testing.T) {
	attrs := validCreateAttrs()
	attrs["price"] = "250"
	p, err := requests.NewCreatePayment(attrs)
	require.NoError(t, err)
	require.Equal(t, 250, p.Price)
}

func TestNewCreatePayment_LabelBounds(t *testing.T) {
	for _, label := range []string{"x", strings.Repeat("a", 16)} {
		attrs := validCreateAttrs()
		attrs["label"] = label
		_, err := requests.NewCreatePayment(attrs)
		require.NoError(t, err, "label %q", label)
	}
	for _, label := range []string{"", strings.Repeat("a", 17)} {
		attrs := validCreateAttrs()
		attrs["label"] = label
		_, err := requests.NewCreatePayment(attrs)
		require.Error(t, err, "label %q", label)
		require.Contains(t, err.Error(), "label")
	}
}

func TestNewCreatePayment_MissingRequired(t *testing.T) {
	_, err := requests.NewCreatePayment(map[string]any{"email": "payer@example.com"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing attributes")
	require.Contains(t, err.Error(), "price")
	require.Contains(t, err.Error(), "curr")
	require.Contains(t, err.Error(), "label")
	require.Contains(t, err.Error(), "refId")
}

func TestNewCreatePayment_UnknownAttribute(t *testing.T) {
	attrs := validCreateAttrs()
	attrs["nonsense"] = "value"
	_, err := requests.NewCreatePayment(attrs)
	require.Error(t, err)
	require.Contains(t, err.Error(), "nonsense")
}

func TestValidate_ContactRequired(t *testing.T) {
	attrs := validCreateAttrs()
	delete(attrs, "email")
	p, err := requests.NewCreatePayment(attrs)
	require.NoError(t, err)

	err = p.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "either email or phone")
}

func TestValidate_PhoneAloneSatisfiesContact(t *testing.T) {
	attrs := validCreateAttrs()
	delete(attrs, "email")
	attrs["phone"] = "+420123456789"
	p, err := requests.NewCreatePayment(attrs)
	require.NoError(t, err)
	require.NoError(t, p.Validate())
}

func TestValidate_BothContactsAllowed(t *testing.T) {
	attrs := validCreateAttrs()
	attrs["phone"] = "+420123456789"
	p, err := requests.NewCreatePayment(attrs)
	require.NoError(t, err)
	require.NoError(t, p.Validate())
}

func TestValidate_HomeDeliveryRequiresAddress(t *testing.T) {
	attrs := validCreateAttrs()
	attrs["delivery"] = "HOME_DELIVERY"
	attrs["home_delivery_city"] = "Praha"
	attrs["home_delivery_street"] = "  " // blank counts as missing

	p, err := requests.NewCreatePayment(attrs)
	require.NoError(t, err)

	err = p.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "home_delivery_street")
	require.Contains(t, err.Error(), "home_delivery_postal_code")
	require.Contains(t, err.Error(), "home_delivery_country")
	require.NotContains(t, err.Error(), "home_delivery_city")
}

func TestValidate_HomeDeliveryComplete(t *testing.T) {
	attrs := validCreateAttrs()
	attrs["delivery"] = "HOME_DELIVERY"
	attrs["home_delivery_city"] = "Praha"
	attrs["home_delivery_street"] = "Dlouha 1"
	attrs["home_delivery_postal_code"] = "11000"
	attrs["home_delivery_country"] = "CZ"

	p, err := requests.NewCreatePayment(attrs)
	require.NoError(t, err)
	require.NoError(t, p.Validate())
}

func TestValidate_OtherDeliverySkipsAddressCheck(t *testing.T) {
	attrs := validCreateAttrs()
	attrs["delivery"] = "PICKUP"
	p, err := requests.NewCreatePayment(attrs)
	require.NoError(t, err)
	require.NoError(t, p.Validate())
}

func TestValidate_ExpirationTimeFormat(t *testing.T) {
	for _, in := range []string{"30m", "10h", "2d"} {
		attrs := validCreateAttrs()
		attrs["expiration_time"] = in
		p, err := requests.NewCreatePayment(attrs)
		require.NoError(t, err)
		require.NoError(t, p.Validate(), "expiration_time %q", in)
	}

	attrs := validCreateAttrs()
	attrs["expiration_time"] = "30x"
	p, err := requests.NewCreatePayment(attrs)
	require.NoError(t, err)
	err = p.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "expirationTime")
}

func TestPayload_OmitsAbsentFields(t *testing.T) {
	p, err := requests.NewCreatePayment(validCreateAttrs())
	require.NoError(t, err)

	payload := p.Payload()
	require.Len(t, payload, 5)
	require.Equal(t, 1000, payload["price"])
	require.Equal(t, "CZK", payload["curr"])
	require.Equal(t, "Product", payload["label"])
	require.Equal(t, "order-1", payload["refId"])
	require.Equal(t, "payer@example.com", payload["email"])
}

func TestPayload_KeepsExplicitFalse(t *testing.T) {
	attrs := validCreateAttrs()
	attrs["test"] = false
	attrs["preauth"] = false

	p, err := requests.NewCreatePayment(attrs)
	require.NoError(t, err)

	payload := p.Payload()
	require.Equal(t, false, payload["test"])
	require.Equal(t, false, payload["preauth"])
}

func TestNewCreatePayment_BoolFieldsAreStrict(t *testing.T) {
	attrs := validCreateAttrs()
	attrs["test"] = "true"
	_, err := requests.NewCreatePayment(attrs)
	require.Error(t, err)
	require.Contains(t, err.Error(), "test")
}

func TestValidate_DirectConstruction(t *testing.T) {
	p := &requests.CreatePayment{
		Price: 1000,
		Curr:  "CZK",
		RefID: "order-1",
		Email: requests.String("payer@example.com"),
	}
	err := p.Validate()
	require.Error(t, err, "empty label fails even without the map constructor")
	require.Contains(t, err.Error(), "label")

	p.Label = "Product"
	p.Test = requests.Bool(true)
	require.NoError(t, p.Validate())
	require.Equal(t, true, p.Payload()["test"])
}

func TestNewCreatePayment_NilValueMeansAbsent(t *testing.T) {
	attrs := validCreateAttrs()
	attrs["phone"] = nil
	p, err := requests.NewCreatePayment(attrs)
	require.NoError(t, err)
	require.Nil(t, p.Phone)
	require.NotContains(t, p.Payload(), "phone")
}
