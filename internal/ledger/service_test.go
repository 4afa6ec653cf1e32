package ledger

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workwealth/workwealth/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestService(balance string) *Service {
	return NewService(NewMemoryStore(dec(balance)))
}

func TestDeposit(t *testing.T) {
	svc := newTestService("125000")

	tx, err := svc.Deposit(dec("25000"), "")
	require.NoError(t, err)

	balance, err := svc.Balance()
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec("150000")), "balance = %s", balance)

	assert.Equal(t, model.TypeCredit, tx.Type)
	assert.Equal(t, model.CategoryDeposit, tx.Category)
	assert.Equal(t, model.StatusCompleted, tx.Status)
	assert.True(t, tx.Amount.Equal(dec("25000")))
	assert.Equal(t, "DEP", tx.Reference[:3])

	txs, err := svc.Transactions()
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, tx.ID, txs[0].ID)
}

func TestDeposit_InvalidAmount(t *testing.T) {
	svc := newTestService("1000")

	for _, amount := range []string{"0", "-50"} {
		_, err := svc.Deposit(dec(amount), "")
		assert.ErrorIs(t, err, ErrInvalidAmount, "amount: %s", amount)
	}

	txs, err := svc.Transactions()
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestWithdraw(t *testing.T) {
	svc := newTestService("125000")

	tx, err := svc.Withdraw(dec("5000"), "ATM withdrawal")
	require.NoError(t, err)

	balance, err := svc.Balance()
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec("120000")))

	assert.Equal(t, model.TypeDebit, tx.Type)
	assert.Equal(t, model.CategoryWithdrawal, tx.Category)
	assert.Equal(t, "WTH", tx.Reference[:3])
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	svc := newTestService("125000")

	_, err := svc.Withdraw(dec("150000"), "")
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// No partial state change on rejection.
	balance, err := svc.Balance()
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec("125000")))

	txs, err := svc.Transactions()
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestWithdraw_ExactBalance(t *testing.T) {
	svc := newTestService("500")

	_, err := svc.Withdraw(dec("500"), "")
	require.NoError(t, err)

	balance, err := svc.Balance()
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestTransfer(t *testing.T) {
	svc := newTestService("125000")

	tx, err := svc.Transfer(dec("15000"), "Abayomi")
	require.NoError(t, err)

	balance, err := svc.Balance()
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec("110000")))

	assert.Equal(t, "Abayomi", tx.Recipient)
	assert.Equal(t, model.CategoryTransfer, tx.Category)
	assert.Equal(t, "Transfer to Abayomi", tx.Description)
	assert.Equal(t, "TRF", tx.Reference[:3])
}

func TestTransfer_RequiresRecipient(t *testing.T) {
	svc := newTestService("1000")

	_, err := svc.Transfer(dec("100"), "  ")
	require.Error(t, err)
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	svc := newTestService("100")

	_, err := svc.Transfer(dec("101"), "Abayomi")
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestPayBill(t *testing.T) {
	svc := newTestService("10000")

	tx, err := svc.PayBill(dec("2500"), "Electricity prepaid token")
	require.NoError(t, err)

	assert.Equal(t, model.CategoryBills, tx.Category)
	assert.Equal(t, "Electricity", tx.Recipient, "recipient is first word of description")
	assert.Equal(t, "BIL", tx.Reference[:3])

	balance, err := svc.Balance()
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec("7500")))
}

func TestPayBill_InsufficientFunds(t *testing.T) {
	svc := newTestService("1000")

	_, err := svc.PayBill(dec("2500"), "Water bill")
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	txs, err := svc.Transactions()
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestTransactions_MostRecentFirst(t *testing.T) {
	svc := newTestService("100000")

	_, err := svc.Deposit(dec("1000"), "first")
	require.NoError(t, err)
	_, err = svc.Withdraw(dec("200"), "second")
	require.NoError(t, err)
	_, err = svc.Transfer(dec("300"), "Ngozi")
	require.NoError(t, err)

	txs, err := svc.Transactions()
	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, model.CategoryTransfer, txs[0].Category)
	assert.Equal(t, model.CategoryWithdrawal, txs[1].Category)
	assert.Equal(t, model.CategoryDeposit, txs[2].Category)
}

func TestTransactions_DefensiveCopy(t *testing.T) {
	svc := newTestService("1000")
	_, err := svc.Deposit(dec("100"), "")
	require.NoError(t, err)

	txs, err := svc.Transactions()
	require.NoError(t, err)
	txs[0].Description = "mutated by caller"

	fresh, err := svc.Transactions()
	require.NoError(t, err)
	assert.NotEqual(t, "mutated by caller", fresh[0].Description)
}

func TestTransactionsByCategory(t *testing.T) {
	svc := newTestService("100000")
	_, err := svc.Deposit(dec("1000"), "")
	require.NoError(t, err)
	_, err = svc.Withdraw(dec("500"), "")
	require.NoError(t, err)
	_, err = svc.Deposit(dec("2000"), "")
	require.NoError(t, err)

	deposits, err := svc.TransactionsByCategory(model.CategoryDeposit)
	require.NoError(t, err)
	require.Len(t, deposits, 2)
	assert.True(t, deposits[0].Amount.Equal(dec("2000")), "most recent first")
}

func TestReset(t *testing.T) {
	svc := newTestService("1000")
	_, err := svc.Deposit(dec("100"), "")
	require.NoError(t, err)

	require.NoError(t, svc.Reset(dec("50000")))

	balance, err := svc.Balance()
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec("50000")))

	txs, err := svc.Transactions()
	require.NoError(t, err)
	assert.Empty(t, txs)

	require.Error(t, svc.Reset(dec("-1")))
}

func TestConcurrentDebits_NoOverdraft(t *testing.T) {
	// 50 concurrent withdrawals of 100 against a 1000 balance: exactly
	// 10 may succeed, and the balance must end at zero, never negative.
	svc := newTestService("1000")

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0

	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Withdraw(dec("100"), ""); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, succeeded)

	balance, err := svc.Balance()
	require.NoError(t, err)
	assert.True(t, balance.IsZero(), "balance = %s", balance)

	txs, err := svc.Transactions()
	require.NoError(t, err)
	assert.Len(t, txs, 10)
}

type recordingNotifier struct {
	mu    sync.Mutex
	posts []model.Transaction
}

func (r *recordingNotifier) TransactionPosted(tx model.Transaction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts = append(r.posts, tx)
}

func TestNotifierReceivesPosts(t *testing.T) {
	n := &recordingNotifier{}
	svc := NewService(NewMemoryStore(dec("1000")), WithNotifier(n))

	_, err := svc.Deposit(dec("100"), "")
	require.NoError(t, err)
	_, err = svc.Withdraw(dec("5000"), "")
	require.Error(t, err)

	require.Len(t, n.posts, 1, "failed mutations are not announced")
	assert.Equal(t, model.CategoryDeposit, n.posts[0].Category)
}
