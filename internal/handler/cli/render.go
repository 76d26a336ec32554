package cli

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"offer-console/internal/infra/api"
	"offer-console/internal/pkg/errs"
	"offer-console/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// OfferRow is the flat row the table renderer consumes.
type OfferRow struct {
	ID       int64
	UserName string
	Email    string
	Phone    string
	Company  string
	JobTitle string
	Type     string
	Status   string
	Price    float64
}

func toOfferRows(offers []api.Offer) ([]OfferRow, error) {
	rows := make([]OfferRow, 0, len(offers))
	if err := copier.Copy(&rows, &offers); err != nil {
		return nil, errs.Wrap(err, "failed to map offer rows")
	}
	return rows, nil
}

func renderOffers(w io.Writer, snap queries.OfferListSnapshot) error {
	if snap.Phase == queries.PhaseError {
		fmt.Fprintf(w, "error: %s\n", snap.ErrorMessage)
		return nil
	}

	rows, err := toOfferRows(snap.Rows)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(w, "No offers found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE\tCOMPANY\tJOB TITLE\tTYPE\tSTATUS\tPRICE")
	for _, row := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%.2f\n",
			row.ID, row.UserName, row.Email, row.Phone, row.Company, row.JobTitle, row.Type, row.Status, row.Price)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "page %d, %d per page, %d total\n", snap.Page+1, snap.PageSize, snap.DisplayedCount)
	return nil
}

func renderSummaryCards(w io.Writer, cards []queries.SummaryCard) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, card := range cards {
		fmt.Fprintf(tw, "%s\t%.1fk\t%+d%% previous period\n", card.Title, card.CountK, card.Percentage)
	}
	return tw.Flush()
}

// Weekday order for the stat tables; unknown keys fall back to lexicographic.
var weekdayOrder = map[string]int{
	"monday": 0, "tuesday": 1, "wednesday": 2, "thursday": 3,
	"friday": 4, "saturday": 5, "sunday": 6,
	"mon": 0, "tue": 1, "wed": 2, "thu": 3, "fri": 4, "sat": 5, "sun": 6,
}

func sortedDays(keys []string) []string {
	sort.Slice(keys, func(i, j int) bool {
		oi, iok := weekdayOrder[keys[i]]
		oj, jok := weekdayOrder[keys[j]]
		if iok && jok {
			return oi < oj
		}
		if iok != jok {
			return iok
		}
		return keys[i] < keys[j]
	})
	return keys
}

func renderWeeklyStat(w io.Writer, stat *api.DashboardStat) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "DAY\tDESKTOP\tMOBILE\tOFFERS SENT")
	days := make([]string, 0, len(stat.WebsiteVisits))
	for day := range stat.WebsiteVisits {
		days = append(days, day)
	}
	for _, day := range sortedDays(days) {
		visits := stat.WebsiteVisits[day]
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", day, visits.Desktop, visits.Mobile, stat.OffersSent[day])
	}
	return tw.Flush()
}

func renderUsers(w io.Writer, users []api.User) error {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users found.")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL")
	for _, user := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", user.ID, user.Name, user.Email)
	}
	return tw.Flush()
}
