package requests

import (
	"strings"
	"time"

	"github.com/alovak/comgate-go/internal/fieldtypes"
)

// TransferList models GET /v2.0/transferList/date/{date}.json.
type TransferList struct {
	Date string
	Test *bool
}

// NewTransferList builds the model from conventional attributes.
func NewTransferList(attrs map[string]any) (*TransferList, error) {
	r := &TransferList{}
	for key, value := range attrs {
		if value == nil {
			continue
		}
		var err error
		switch key {
		case "date":
			r.Date, err = fieldtypes.CoerceString(value)
		case "test":
			err = setBool(&r.Test, key, value)
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
	return r, nil
}

// Validate checks presence, then format, then calendar validity, in that
// order. A date like 2026-13-40 passes the format check but fails here.
func (r *TransferList) Validate() error {
	if strings.TrimSpace(r.Date) == "" {
		return &ValidationError{Reason: "date is required"}
	}
	if err := fieldtypes.DateString(r.Date); err != nil {
		return validationErrorf("date %s", err)
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return &ValidationError{Reason: `date must be a valid date (e.g. "2026-02-10")`}
	}
	return nil
}

// Params returns the request parameters with an absent test flag omitted.
func (r *TransferList) Params() map[string]any {
	params := map[string]any{"date": r.Date}
	putBool(params, "test", r.Test)
	return params
}
