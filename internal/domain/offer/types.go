package offer

import "errors"

var (
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidPlanType = errors.New("invalid plan type")
	ErrInvalidAddition = errors.New("invalid addition")
)

type Status string

const (
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusPending  Status = "pending"
)

func NewStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusAccepted, StatusRejected, StatusPending:
		return Status(value), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

type PlanType string

const (
	PlanMonthly    PlanType = "monthly"
	PlanYearly     PlanType = "yearly"
	PlanPayAsYouGo PlanType = "pay_as_you_go"
)

func NewPlanType(value string) (PlanType, error) {
	switch PlanType(value) {
	case PlanMonthly, PlanYearly, PlanPayAsYouGo:
		return PlanType(value), nil
	default:
		return "", ErrInvalidPlanType
	}
}

func (p PlanType) String() string {
	return string(p)
}

type Addition string

const (
	AdditionRefundable Addition = "refundable"
	AdditionOnDemand   Addition = "on_demand"
	AdditionNegotiable Addition = "negotiable"
)

func NewAddition(value string) (Addition, error) {
	switch Addition(value) {
	case AdditionRefundable, AdditionOnDemand, AdditionNegotiable:
		return Addition(value), nil
	default:
		return "", ErrInvalidAddition
	}
}

func (a Addition) String() string {
	return string(a)
}

// SelectedUser is the autocomplete pick feeding a draft. A zero ID means
// nothing has been selected; free text in the search box never becomes a
// selection by itself.
type SelectedUser struct {
	ID    int64
	Name  string
	Email string
}

func (u SelectedUser) IsSelected() bool {
	return u.ID != 0
}
