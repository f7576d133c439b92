package comgate

import (
	"fmt"
	"strconv"
	"strings"
)

var requiredCreateKeys = []string{"code", "message", "transId", "redirect"}

// ValidateCreatePaymentResponse checks a decoded create-payment response:
// all required keys must be present, and the gateway's code must be zero.
// A non-zero code is a gateway-reported business error, not a transport
// error. Responses of the other operations are not validated beyond JSON
// decodability.
func ValidateCreatePaymentResponse(data map[string]any) error {
	var missing []string
	for _, key := range requiredCreateKeys {
		if _, ok := data[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &ResponseValidationError{Message: "missing response keys: " + strings.Join(missing, ", ")}
	}

	code, err := responseCode(data["code"])
	if err != nil {
		return &ResponseValidationError{Message: err.Error()}
	}
	if code != 0 {
		return &ResponseValidationError{Message: fmt.Sprintf("API error: %d %v", code, data["message"])}
	}
	return nil
}

func responseCode(v any) (int, error) {
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("unexpected response code %q", n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("unexpected response code type %T", v)
	}
}
