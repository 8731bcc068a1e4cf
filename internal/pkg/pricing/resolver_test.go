package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zakerai/zaker-web/app/models"
)

func TestTiersForPlan(t *testing.T) {
	tiers := models.FallbackTiers()

	got := TiersForPlan(tiers, 1)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)

	got = TiersForPlan(tiers, 2)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(4), got[1].ID)
}

func TestTiersForPlanUnknownPlanIsEmpty(t *testing.T) {
	for _, planID := range []int64{0, -1, 3, 999} {
		got := TiersForPlan(models.FallbackTiers(), planID)
		assert.NotNil(t, got)
		assert.Empty(t, got, "plan %d", planID)
	}
	assert.Empty(t, TiersForPlan(nil, 1))
}

func TestDefaultTier(t *testing.T) {
	tier, ok := DefaultTier(models.FallbackTiers(), 2)
	require.True(t, ok)
	assert.Equal(t, int64(3), tier.ID)

	_, ok = DefaultTier(models.FallbackTiers(), 42)
	assert.False(t, ok)
}

func TestEffectivePriceIsExact(t *testing.T) {
	for _, tier := range models.FallbackTiers() {
		monthly, err := EffectivePrice(tier, models.BILLING_MONTHLY)
		require.NoError(t, err)
		assert.Equal(t, tier.MonthlyPrice, monthly.String())

		yearly, err := EffectivePrice(tier, models.BILLING_YEARLY)
		require.NoError(t, err)
		assert.Equal(t, tier.YearlyPrice, yearly.String())
	}

	tier := models.Tier{ID: 9, MonthlyPrice: "99.95", YearlyPrice: "1000.10"}
	got, err := EffectivePrice(tier, models.BILLING_YEARLY)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("1000.10")))
}

func TestMonthlyEquivalent(t *testing.T) {
	for _, tier := range models.FallbackTiers() {
		got, err := MonthlyEquivalent(tier, models.BILLING_MONTHLY)
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.RequireFromString(tier.MonthlyPrice)))

		got, err = MonthlyEquivalent(tier, models.BILLING_YEARLY)
		require.NoError(t, err)
		want := decimal.RequireFromString(tier.YearlyPrice).Div(decimal.NewFromInt(12))
		assert.True(t, got.Equal(want), "tier %d: got %s want %s", tier.ID, got, want)
	}

	basic, _ := models.FallbackCatalog().Tier(1)
	got, err := MonthlyEquivalent(basic, models.BILLING_YEARLY)
	require.NoError(t, err)
	assert.Equal(t, "720", got.String())
}

func TestMalformedPricePropagates(t *testing.T) {
	tier := models.Tier{ID: 7, MonthlyPrice: "free", YearlyPrice: "12"}

	_, err := EffectivePrice(tier, models.BILLING_MONTHLY)
	assert.ErrorIs(t, err, ErrMalformedPrice)

	_, err = MonthlyEquivalent(tier, models.BILLING_MONTHLY)
	assert.Error(t, err)

	_, err = MonthlyEquivalent(tier, models.BILLING_YEARLY)
	assert.NoError(t, err)
}

func TestPlanCards(t *testing.T) {
	catalog := models.FallbackCatalog()
	catalog.Plans = append(catalog.Plans, models.Plan{ID: 3, Name: "Districts", IsActive: true})

	cards, err := PlanCards(catalog, models.BILLING_YEARLY)
	require.NoError(t, err)
	require.Len(t, cards, 3)

	assert.Equal(t, "teachers", cards[0].Plan.Key())
	require.NotNil(t, cards[0].PrimaryTier)
	assert.Equal(t, int64(1), cards[0].PrimaryTier.ID)
	assert.Equal(t, "8640", cards[0].Price.String())
	assert.Equal(t, "720", cards[0].MonthlyEquivalent.String())

	assert.Equal(t, "38400", cards[1].Price.String())
	assert.Equal(t, "3200", cards[1].MonthlyEquivalent.String())

	assert.Nil(t, cards[2].PrimaryTier)
	assert.Empty(t, cards[2].Tiers)
	assert.True(t, cards[2].Price.IsZero())
}
