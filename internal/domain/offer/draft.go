package offer

import (
	"time"
)

// Field error codes returned by Draft.Validate.
const (
	CodeRequired    = "required"
	CodeInvalid     = "invalid"
	CodeMinOne      = "min_one"
	CodeBeforeToday = "before_today"
)

// FieldError is a field-scoped validation failure. It blocks submission but
// never further editing.
type FieldError struct {
	Field   string
	Code    string
	Message string
}

// Accepted layouts for the expiry input, most specific first.
var expiryLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"02 Jan 2006",
}

// Draft is the client-side, not-yet-submitted representation of an offer.
// Fields mirror what the form collects; Expired stays raw until validation
// coerces it into a calendar date.
type Draft struct {
	PlanType  string
	Additions []string
	User      SelectedUser
	Expired   string
	Price     *float64
}

// NewDraft returns a draft at form defaults: nothing chosen, expiry preset
// to the given day.
func NewDraft(today time.Time) Draft {
	return Draft{
		Additions: []string{},
		Expired:   today.Format("2006-01-02"),
	}
}

// Validated carries the coerced values of a draft that passed validation.
type Validated struct {
	PlanType  PlanType
	Additions []Addition
	User      SelectedUser
	Expired   time.Time
	Price     float64
}

// Validate checks every field and collects all failures rather than stopping
// at the first. The date comparison is date-only: both sides compare as
// calendar days, so an expiry of today always passes regardless of the
// current hour.
func (d Draft) Validate(now time.Time) (*Validated, []FieldError) {
	var fieldErrs []FieldError
	v := &Validated{User: d.User}

	planType, err := NewPlanType(d.PlanType)
	if err != nil {
		if d.PlanType == "" {
			fieldErrs = append(fieldErrs, FieldError{Field: "plan_type", Code: CodeRequired, Message: "Plan type is required"})
		} else {
			fieldErrs = append(fieldErrs, FieldError{Field: "plan_type", Code: CodeInvalid, Message: "Plan type must be monthly, yearly or pay_as_you_go"})
		}
	} else {
		v.PlanType = planType
	}

	if len(d.Additions) == 0 {
		fieldErrs = append(fieldErrs, FieldError{Field: "additions", Code: CodeMinOne, Message: "At least one addition is required"})
	} else {
		for _, raw := range d.Additions {
			addition, err := NewAddition(raw)
			if err != nil {
				fieldErrs = append(fieldErrs, FieldError{Field: "additions", Code: CodeInvalid, Message: "Addition must be refundable, on_demand or negotiable"})
				continue
			}
			v.Additions = append(v.Additions, addition)
		}
	}

	if !d.User.IsSelected() {
		fieldErrs = append(fieldErrs, FieldError{Field: "user", Code: CodeRequired, Message: "User is required"})
	}

	expired, err := parseExpiry(d.Expired)
	switch {
	case err != nil:
		fieldErrs = append(fieldErrs, FieldError{Field: "expired", Code: CodeInvalid, Message: "Invalid date provided"})
	case dayOrdinal(expired) < dayOrdinal(now):
		fieldErrs = append(fieldErrs, FieldError{Field: "expired", Code: CodeBeforeToday, Message: "Expired date should not be before today"})
	default:
		v.Expired = expired
	}

	if d.Price == nil {
		fieldErrs = append(fieldErrs, FieldError{Field: "price", Code: CodeRequired, Message: "Price is required"})
	} else {
		v.Price = *d.Price
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	return v, nil
}

func parseExpiry(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range expiryLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// dayOrdinal collapses a timestamp to its calendar date in the timestamp's
// own location, so a parsed UTC date and a local wall clock compare as days
// rather than instants.
func dayOrdinal(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
