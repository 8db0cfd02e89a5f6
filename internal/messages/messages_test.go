package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubgate/clubgate-bot/internal/plans"
)

func TestAdminReviewNamesClaimDetails(t *testing.T) {
	p, ok := plans.ByID(plans.TwoWeeks)
	require.True(t, ok)

	text := AdminReview("alice", p, "0xabc123", "claim-1")
	assert.Contains(t, text, "@alice")
	assert.Contains(t, text, "14 дней")
	assert.Contains(t, text, "30$")
	assert.Contains(t, text, "0xabc123")
	assert.Contains(t, text, "claim-1")
}

func TestAdminReviewEscapesUserInput(t *testing.T) {
	p, _ := plans.ByID(plans.OneMonth)

	text := AdminReview("alice", p, "<script>", "claim-1")
	assert.NotContains(t, text, "<script>")
	assert.Contains(t, text, "&lt;script&gt;")
}

func TestPaymentDetailsListsAddresses(t *testing.T) {
	p, _ := plans.ByID(plans.ThreeMonths)

	text := PaymentDetails(p)
	assert.Contains(t, text, "90 дней")
	assert.Contains(t, text, "100$")
	assert.Contains(t, text, AddressERC20)
	assert.Contains(t, text, AddressTRC20)
	assert.Contains(t, text, AddressSOL)
}

func TestPlanButton(t *testing.T) {
	p, _ := plans.ByID(plans.TwoWeeks)
	assert.Equal(t, "2 недели - 30$", PlanButton(p))
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "a &amp; b", Escape("  a & b "))
	assert.Equal(t, "&lt;b&gt;", Escape("<b>"))
}
