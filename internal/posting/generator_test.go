package posting

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clifftonowen/Prepayment-Amortization-Automation-Script/internal/model"
	"github.com/clifftonowen/Prepayment-Amortization-Automation-Script/internal/period"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// oneItem builds a single-record schedule covering Jan-24.
func oneItem(item string, ref model.Reference, jan string) *model.Schedule {
	return &model.Schedule{
		Months: []model.MonthColumn{"Jan-24"},
		Records: []model.ScheduleRecord{{
			Item:      item,
			Reference: ref,
			Monthly: map[model.MonthColumn]decimal.Decimal{
				"Jan-24": dec(jan),
			},
		}},
	}
}

func TestGenerate_InsuranceScenario(t *testing.T) {
	sched := oneItem("Insurance", model.NewReference(1001), "-100.00")

	entries, err := Generate(sched, "2024-01", DefaultAccounts())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	debit := entries[0]
	assert.Equal(t, date(2024, 1, 31), debit.Date)
	assert.Equal(t, "Prepayment amortisation for Insurance", debit.Description)
	assert.Equal(t, "1001", debit.Reference)
	assert.Equal(t, DefaultExpenseAccount, debit.Account)
	assert.Equal(t, "100.00", debit.Amount.StringFixed(2))

	credit := entries[1]
	assert.Equal(t, debit.Date, credit.Date)
	assert.Equal(t, debit.Description, credit.Description)
	assert.Equal(t, debit.Reference, credit.Reference)
	assert.Equal(t, DefaultPrepaymentAccount, credit.Account)
	assert.Equal(t, "-100.00", credit.Amount.StringFixed(2))
}

func TestGenerate_MalformedPeriod(t *testing.T) {
	sched := oneItem("Insurance", model.NewReference(1001), "-100.00")

	for _, p := range []string{"2024/05", "May-2024", "", "202401"} {
		entries, err := Generate(sched, p, DefaultAccounts())
		require.Error(t, err, "period %q", p)
		assert.True(t, errors.Is(err, period.ErrFormat), "period %q", p)
		assert.Nil(t, entries)
	}
}

func TestGenerate_PeriodNotInSchedule(t *testing.T) {
	sched := oneItem("Insurance", model.NewReference(1001), "-100.00")

	// A well-formed period the schedule does not cover is a valid
	// nothing-to-post outcome, not a failure.
	entries, err := Generate(sched, "2030-01", DefaultAccounts())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerate_ThresholdSuppression(t *testing.T) {
	sched := &model.Schedule{
		Months: []model.MonthColumn{"Jan-24"},
		Records: []model.ScheduleRecord{
			{Item: "noise", Monthly: map[model.MonthColumn]decimal.Decimal{"Jan-24": dec("0.003")}},
			{Item: "edge", Monthly: map[model.MonthColumn]decimal.Decimal{"Jan-24": dec("-0.005")}},
			{Item: "real", Monthly: map[model.MonthColumn]decimal.Decimal{"Jan-24": dec("0.006")}},
		},
	}

	entries, err := Generate(sched, "2024-01", DefaultAccounts())
	require.NoError(t, err)

	// 0.003 and 0.005 are noise; 0.006 posts and rounds to 0.01.
	require.Len(t, entries, 2)
	assert.Contains(t, entries[0].Description, "real")
	assert.Equal(t, "0.01", entries[0].Amount.StringFixed(2))
	assert.Equal(t, "-0.01", entries[1].Amount.StringFixed(2))
}

func TestGenerate_ZeroAmountSkipped(t *testing.T) {
	sched := oneItem("Insurance", model.NewReference(1001), "0")

	entries, err := Generate(sched, "2024-01", DefaultAccounts())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerate_SignNormalized(t *testing.T) {
	// Positive source amounts debit the same as negative ones.
	sched := oneItem("Rent", model.NewReference(1002), "250.75")

	entries, err := Generate(sched, "2024-01", DefaultAccounts())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "250.75", entries[0].Amount.StringFixed(2))
	assert.Equal(t, "-250.75", entries[1].Amount.StringFixed(2))
}

func TestGenerate_RoundsToTwoPlaces(t *testing.T) {
	sched := oneItem("Licence", model.NewReference(46248), "-66.666")

	entries, err := Generate(sched, "2024-01", DefaultAccounts())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "66.67", entries[0].Amount.StringFixed(2))
	assert.Equal(t, "-66.67", entries[1].Amount.StringFixed(2))
}

func TestGenerate_MissingReference(t *testing.T) {
	sched := oneItem("Insurance", model.Reference{}, "-100.00")

	entries, err := Generate(sched, "2024-01", DefaultAccounts())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, model.MissingReference, entries[0].Reference)
	assert.Equal(t, model.MissingReference, entries[1].Reference)
}

func TestGenerate_RecordOrder(t *testing.T) {
	sched := &model.Schedule{
		Months: []model.MonthColumn{"Jan-24"},
		Records: []model.ScheduleRecord{
			{Item: "first", Monthly: map[model.MonthColumn]decimal.Decimal{"Jan-24": dec("-10")}},
			{Item: "skipped", Monthly: map[model.MonthColumn]decimal.Decimal{"Jan-24": decimal.Zero}},
			{Item: "second", Monthly: map[model.MonthColumn]decimal.Decimal{"Jan-24": dec("-20")}},
		},
	}

	entries, err := Generate(sched, "2024-01", DefaultAccounts())
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Contains(t, entries[0].Description, "first")
	assert.Contains(t, entries[1].Description, "first")
	assert.Contains(t, entries[2].Description, "second")
	assert.Contains(t, entries[3].Description, "second")
}

func TestGenerate_CustomAccounts(t *testing.T) {
	sched := oneItem("Insurance", model.NewReference(1001), "-100.00")
	accounts := Accounts{Expense: "6000", Prepayment: "1400"}

	entries, err := Generate(sched, "2024-01", accounts)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "6000", entries[0].Account)
	assert.Equal(t, "1400", entries[1].Account)
}

func TestGenerate_LastDayOfMonth(t *testing.T) {
	sched := &model.Schedule{
		Months: []model.MonthColumn{"Feb-24", "Feb-23", "Apr-24"},
		Records: []model.ScheduleRecord{{
			Item: "Insurance",
			Monthly: map[model.MonthColumn]decimal.Decimal{
				"Feb-24": dec("-10"),
				"Feb-23": dec("-10"),
				"Apr-24": dec("-10"),
			},
		}},
	}

	for _, tc := range []struct {
		targetPeriod string
		want         time.Time
	}{
		{"2024-02", date(2024, 2, 29)},
		{"2023-02", date(2023, 2, 28)},
		{"2024-04", date(2024, 4, 30)},
	} {
		entries, err := Generate(sched, tc.targetPeriod, DefaultAccounts())
		require.NoError(t, err)
		require.Len(t, entries, 2, "period %s", tc.targetPeriod)
		assert.Equal(t, tc.want, entries[0].Date, "period %s", tc.targetPeriod)
	}
}

func TestGenerate_PairsBalanceExactly(t *testing.T) {
	sched := &model.Schedule{
		Months: []model.MonthColumn{"Jan-24"},
		Records: []model.ScheduleRecord{
			{Item: "a", Monthly: map[model.MonthColumn]decimal.Decimal{"Jan-24": dec("-33.335")}},
			{Item: "b", Monthly: map[model.MonthColumn]decimal.Decimal{"Jan-24": dec("-0.011")}},
			{Item: "c", Monthly: map[model.MonthColumn]decimal.Decimal{"Jan-24": dec("1234.567")}},
		},
	}

	entries, err := Generate(sched, "2024-01", DefaultAccounts())
	require.NoError(t, err)
	require.Len(t, entries, 6)

	for i := 0; i < len(entries); i += 2 {
		sum := entries[i].Amount.Add(entries[i+1].Amount)
		assert.True(t, sum.IsZero(), "pair %d sums to %s", i/2, sum)
		assert.NotEqual(t, entries[i].Account, entries[i+1].Account)
	}
}
