package requests

import (
	"strings"

	"github.com/alovak/comgate-go/internal/fieldtypes"
)

// PaymentStatus models GET /v2.0/payment/transId/{transId}.json.
type PaymentStatus struct {
	TransID string
}

// NewPaymentStatus builds the model from conventional attributes. Only
// trans_id is read; other keys are ignored.
func NewPaymentStatus(attrs map[string]any) (*PaymentStatus, error) {
	r := &PaymentStatus{}
	if raw, ok := attrs["trans_id"]; ok && raw != nil {
		s, err := fieldtypes.CoerceString(raw)
		if err != nil {
			return nil, validationErrorf("trans_id %s", err)
		}
		r.TransID = s
	}
	return r, nil
}

// Validate requires a non-blank transaction ID.
func (r *PaymentStatus) Validate() error {
	if strings.TrimSpace(r.TransID) == "" {
		return &ValidationError{Reason: "trans_id is required"}
	}
	return nil
}

// Params returns the request parameters; only trans_id is ever sent.
func (r *PaymentStatus) Params() map[string]any {
	return map[string]any{"trans_id": r.TransID}
}
