package seeder

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/budgetledger/internal/usecase/ledger"
)

// fixedSource replays preset draws
type fixedSource struct {
	ints   []int
	floats []float64
}

func (f *fixedSource) IntN(n int) int {
	v := f.ints[0] % n
	f.ints = f.ints[1:]
	return v
}

func (f *fixedSource) Float64() float64 {
	v := f.floats[0]
	f.floats = f.floats[1:]
	return v
}

// MockExpenseRecorder is a mock implementation of ExpenseRecorder for testing
type MockExpenseRecorder struct {
	mock.Mock
}

func (m *MockExpenseRecorder) Categories() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockExpenseRecorder) RecordExpense(category string, amount decimal.Decimal) error {
	args := m.Called(category, amount)
	return args.Error(0)
}

func amountEq(s string) interface{} {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(got decimal.Decimal) bool { return got.Equal(want) })
}

func TestSeed_Deterministic(t *testing.T) {
	recorder := new(MockExpenseRecorder)
	recorder.On("Categories").Return([]string{"Food", "Rent"})
	recorder.On("RecordExpense", "Rent", amountEq("5")).Return(nil).Once()
	recorder.On("RecordExpense", "Food", amountEq("52.5")).Return(nil).Once()
	recorder.On("RecordExpense", "Rent", amountEq("99.99")).Return(nil).Once()

	src := &fixedSource{
		ints:   []int{1, 0, 3},
		floats: []float64{0, 0.5, 0.99999999},
	}

	err := NewExpenseSeeder(src).Seed(recorder, 3)

	require.NoError(t, err)
	recorder.AssertExpectations(t)
}

func TestSeed_PropagatesRecorderError(t *testing.T) {
	recorder := new(MockExpenseRecorder)
	recorder.On("Categories").Return([]string{"Food"})
	recorder.On("RecordExpense", "Food", mock.Anything).Return(errors.New("boom"))

	src := &fixedSource{ints: []int{0}, floats: []float64{0.1}}

	err := NewExpenseSeeder(src).Seed(recorder, 5)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to record expense 1: boom")
	recorder.AssertNumberOfCalls(t, "RecordExpense", 1)
}

func TestSeed_InvalidInput(t *testing.T) {
	recorder := new(MockExpenseRecorder)
	recorder.On("Categories").Return([]string{})

	seeder := NewExpenseSeeder(&fixedSource{})

	assert.EqualError(t, seeder.Seed(recorder, -1), "expense count cannot be negative")
	assert.EqualError(t, seeder.Seed(recorder, 1), "recorder has no categories")
	recorder.AssertNotCalled(t, "RecordExpense")
}

func TestSeed_DemoLedger(t *testing.T) {
	l, err := ledger.New(DemoBudget())
	require.NoError(t, err)

	err = NewExpenseSeeder(rand.New(rand.NewPCG(42, 42))).Seed(l, DefaultExpenseCount)
	require.NoError(t, err)

	assert.Equal(t, DefaultExpenseCount, l.Len())
	for _, e := range l.Expenses() {
		assert.True(t, e.Amount.GreaterThanOrEqual(minAmount), "amount %s", e.Amount)
		assert.True(t, e.Amount.LessThan(maxAmount), "amount %s", e.Amount)
		assert.True(t, e.Amount.Equal(e.Amount.Round(2)), "amount %s has sub-cent digits", e.Amount)
	}

	// Same seed, same history
	again, err := ledger.New(DemoBudget())
	require.NoError(t, err)
	require.NoError(t, NewExpenseSeeder(rand.New(rand.NewPCG(42, 42))).Seed(again, DefaultExpenseCount))

	first, second := l.Expenses(), again.Expenses()
	for i := range first {
		assert.Equal(t, first[i].Category, second[i].Category)
		assert.True(t, first[i].Amount.Equal(second[i].Amount))
	}
}
