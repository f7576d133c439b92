package requests

import (
	"strings"

	"github.com/alovak/comgate-go/internal/fieldtypes"
)

// CancelPayment models DELETE /v2.0/payment/transId/{transId}.json.
type CancelPayment struct {
	TransID string
}

// NewCancelPayment builds the model from conventional attributes. Only
// trans_id is read; other keys are ignored.
func NewCancelPayment(attrs map[string]any) (*CancelPayment, error) {
	r := &CancelPayment{}
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
func (r *CancelPayment) Validate() error {
	if strings.TrimSpace(r.TransID) == "" {
		return &ValidationError{Reason: "trans_id is required"}
	}
	return nil
}

// Params returns the request parameters; only trans_id is ever sent.
func (r *CancelPayment) Params() map[string]any {
	return map[string]any{"trans_id": r.TransID}
}
