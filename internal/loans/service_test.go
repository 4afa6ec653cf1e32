package loans

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workwealth/workwealth/internal/ledger"
	"github.com/workwealth/workwealth/internal/model"
	"github.com/workwealth/workwealth/internal/notify"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestService(t *testing.T) (*Service, *ledger.Service, *notify.Center) {
	t.Helper()
	led := ledger.NewService(ledger.NewMemoryStore(dec("0")))
	center := notify.NewCenter(notify.NewMemoryStore())
	return NewService(t.TempDir(), led, center), led, center
}

func TestApply(t *testing.T) {
	svc, _, _ := newTestService(t)

	app, err := svc.Apply(dec("50000"), 6, "sewing machine")
	require.NoError(t, err)
	assert.Equal(t, model.LoanPending, app.Status)

	apps, err := svc.List()
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, app.ID, apps[0].ID)
	assert.True(t, apps[0].Amount.Equal(dec("50000")))
}

func TestApply_Validation(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Apply(dec("0"), 6, "anything")
	require.Error(t, err)
	_, err = svc.Apply(dec("1000"), 0, "anything")
	require.Error(t, err)
	_, err = svc.Apply(dec("1000"), 36, "anything")
	require.Error(t, err)
	_, err = svc.Apply(dec("1000"), 6, "")
	require.Error(t, err)

	apps, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestList_MostRecentFirst(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Apply(dec("1000"), 3, "first")
	require.NoError(t, err)
	_, err = svc.Apply(dec("2000"), 3, "second")
	require.NoError(t, err)

	apps, err := svc.List()
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "second", apps[0].Purpose)
}

func TestApprove_DisbursesPrincipal(t *testing.T) {
	svc, led, center := newTestService(t)
	app, err := svc.Apply(dec("50000"), 6, "sewing machine")
	require.NoError(t, err)

	approved, err := svc.Approve(app.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LoanApproved, approved.Status)

	balance, err := led.Balance()
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec("50000")))

	txs, err := led.Transactions()
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, model.CategoryLoan, txs[0].Category)
	assert.Equal(t, model.TypeCredit, txs[0].Type)

	all, err := center.All()
	require.NoError(t, err)
	require.NotEmpty(t, all)
	assert.Equal(t, model.NotificationLoan, all[0].Type)
}

func TestApprove_Errors(t *testing.T) {
	svc, _, _ := newTestService(t)
	app, err := svc.Apply(dec("1000"), 3, "stock")
	require.NoError(t, err)

	_, err = svc.Approve("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Approve(app.ID)
	require.NoError(t, err)
	_, err = svc.Approve(app.ID)
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestReject(t *testing.T) {
	svc, led, _ := newTestService(t)
	app, err := svc.Apply(dec("1000"), 3, "stock")
	require.NoError(t, err)

	rejected, err := svc.Reject(app.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LoanRejected, rejected.Status)

	balance, err := led.Balance()
	require.NoError(t, err)
	assert.True(t, balance.IsZero(), "rejection disburses nothing")
}
