//go:build unit

package builder

import (
	"time"

	domoffer "offer-console/internal/domain/offer"
	"offer-console/internal/infra/api"
)

type OfferBuilder struct {
	ID       int64
	UserName string
	Email    string
	Phone    string
	Company  string
	JobTitle string
	Status   string
	Type     string
	Price    float64
}

func NewOfferBuilder() *OfferBuilder {
	return &OfferBuilder{
		ID:       1,
		UserName: "Jamie Rivera",
		Email:    "jamie@example.com",
		Phone:    "+8801712345678",
		Company:  "hiublue",
		JobTitle: "Account Manager",
		Status:   "pending",
		Type:     "monthly",
		Price:    120,
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) BuildRow() api.Offer {
	return api.Offer{
		ID:       b.ID,
		UserName: b.UserName,
		Email:    b.Email,
		Phone:    b.Phone,
		Company:  b.Company,
		JobTitle: b.JobTitle,
		Status:   b.Status,
		Type:     b.Type,
		Price:    b.Price,
	}
}

// BuildPage assembles a server page from row mutations, with the given
// server-reported total.
func BuildPage(total int, mutations ...func(*OfferBuilder)) *api.OfferPage {
	rows := make([]api.Offer, 0, len(mutations))
	for i, mutate := range mutations {
		b := NewOfferBuilder()
		b.ID = int64(i + 1)
		mutate(b)
		rows = append(rows, b.BuildRow())
	}
	return &api.OfferPage{
		Data: rows,
		Meta: api.PageMeta{Total: total},
	}
}

type DraftBuilder struct {
	PlanType  string
	Additions []string
	User      domoffer.SelectedUser
	Expired   string
	Price     *float64
}

func NewDraftBuilder(today time.Time) *DraftBuilder {
	price := 99.0
	return &DraftBuilder{
		PlanType:  "monthly",
		Additions: []string{"refundable"},
		User:      domoffer.SelectedUser{ID: 7, Name: "Jamie Rivera", Email: "jamie@example.com"},
		Expired:   today.AddDate(0, 0, 7).Format("2006-01-02"),
		Price:     &price,
	}
}

func (b *DraftBuilder) With(mutate func(*DraftBuilder)) *DraftBuilder {
	mutate(b)
	return b
}

func (b *DraftBuilder) BuildDraft() domoffer.Draft {
	return domoffer.Draft{
		PlanType:  b.PlanType,
		Additions: b.Additions,
		User:      b.User,
		Expired:   b.Expired,
		Price:     b.Price,
	}
}
