package requests

import (
	"strings"

	"github.com/alovak/comgate-go/internal/fieldtypes"
)

// SingleTransfer models GET /v2.0/singleTransfer/transferId/{id}.json.
type SingleTransfer struct {
	TransferID string
	Test       *bool
}

// NewSingleTransfer builds the model from conventional attributes. Only
// transfer_id and test are read; other keys are ignored.
func NewSingleTransfer(attrs map[string]any) (*SingleTransfer, error) {
	r := &SingleTransfer{}
	if raw, ok := attrs["transfer_id"]; ok && raw != nil {
		s, err := fieldtypes.CoerceString(raw)
		if err != nil {
			return nil, validationErrorf("transfer_id %s", err)
		}
		r.TransferID = s
	}
	if raw, ok := attrs["test"]; ok && raw != nil {
		if err := setBool(&r.Test, "test", raw); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Validate requires a non-blank transfer ID.
func (r *SingleTransfer) Validate() error {
	if strings.TrimSpace(r.TransferID) == "" {
		return &ValidationError{Reason: "transfer_id is required"}
	}
	return nil
}

// Params returns the request parameters with an absent test flag omitted.
func (r *SingleTransfer) Params() map[string]any {
	params := map[string]any{"transfer_id": r.TransferID}
	putBool(params, "test", r.Test)
	return params
}
