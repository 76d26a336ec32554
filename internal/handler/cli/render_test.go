//go:build unit

package cli

import (
	"bytes"
	"testing"

	"offer-console/internal/infra/api"
	"offer-console/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToOfferRows(t *testing.T) {
	offers := []api.Offer{
		{ID: 11, UserName: "Jamie Rivera", Email: "jamie@example.com", Phone: "+880171",
			Company: "hiublue", JobTitle: "AM", Status: "accepted", Type: "monthly", Price: 120.5},
	}

	rows, err := toOfferRows(offers)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, OfferRow{
		ID: 11, UserName: "Jamie Rivera", Email: "jamie@example.com", Phone: "+880171",
		Company: "hiublue", JobTitle: "AM", Status: "accepted", Type: "monthly", Price: 120.5,
	}, rows[0])
}

func TestRenderOffers(t *testing.T) {
	t.Run("error phase prints the message and nothing else", func(t *testing.T) {
		var buf bytes.Buffer
		snap := queries.OfferListSnapshot{Phase: queries.PhaseError, ErrorMessage: "Server Error"}
		require.NoError(t, renderOffers(&buf, snap))
		assert.Equal(t, "error: Server Error\n", buf.String())
	})

	t.Run("empty result", func(t *testing.T) {
		var buf bytes.Buffer
		snap := queries.OfferListSnapshot{Phase: queries.PhaseSuccess}
		require.NoError(t, renderOffers(&buf, snap))
		assert.Equal(t, "No offers found.\n", buf.String())
	})

	t.Run("footer reports one-based page and displayed count", func(t *testing.T) {
		var buf bytes.Buffer
		snap := queries.OfferListSnapshot{
			Phase:          queries.PhaseSuccess,
			Rows:           []api.Offer{{ID: 1, UserName: "Jamie Rivera", Status: "pending", Type: "monthly"}},
			Page:           1,
			PageSize:       5,
			DisplayedCount: 42,
		}
		require.NoError(t, renderOffers(&buf, snap))
		assert.Contains(t, buf.String(), "Jamie Rivera")
		assert.Contains(t, buf.String(), "page 2, 5 per page, 42 total")
	})
}

func TestSortedDays(t *testing.T) {
	days := []string{"sunday", "wednesday", "monday", "someday"}
	assert.Equal(t, []string{"monday", "wednesday", "sunday", "someday"}, sortedDays(days))
}
