package transaction_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/account"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/transaction"
	appErrors "github.com/sergioleandroramirez97/contaduria-familiar/internal/errors"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/pkg"
)

var errNotFound = appErrors.ErrRecordNotFound

// fakeAccountRepository keeps balances in memory so the reconciliation math
// can be asserted end to end.
type fakeAccountRepository struct {
	accounts map[ulid.ULID]*account.Account

	balanceTxErr error
	commits      int
	rollbacks    int
}

func newFakeAccountRepository(accounts ...*account.Account) *fakeAccountRepository {
	repo := &fakeAccountRepository{accounts: make(map[ulid.ULID]*account.Account)}
	for _, a := range accounts {
		repo.accounts[a.Id] = a
	}
	return repo
}

func (f *fakeAccountRepository) Create(ctx context.Context, a *account.Account) error {
	f.accounts[a.Id] = a
	return nil
}

func (f *fakeAccountRepository) Update(ctx context.Context, a *account.Account) error {
	f.accounts[a.Id] = a
	return nil
}

func (f *fakeAccountRepository) Delete(ctx context.Context, accountID ulid.ULID, ownerID uuid.UUID) error {
	delete(f.accounts, accountID)
	return nil
}

func (f *fakeAccountRepository) GetById(ctx context.Context, accountID ulid.ULID, ownerID uuid.UUID) (*account.Account, error) {
	a, ok := f.accounts[accountID]
	if !ok {
		return nil, errNotFound
	}
	return a, nil
}

func (f *fakeAccountRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID, pagination *pkg.PaginationParams) ([]*account.Account, int64, error) {
	var out []*account.Account
	for _, a := range f.accounts {
		if a.OwnerId == ownerID {
			out = append(out, a)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeAccountRepository) GetTotalBalance(ctx context.Context, ownerID uuid.UUID) (float64, error) {
	var total float64
	for _, a := range f.accounts {
		if a.OwnerId == ownerID {
			total += a.Balance
		}
	}
	return total, nil
}

func (f *fakeAccountRepository) UpdateBalance(ctx context.Context, accountID ulid.ULID, delta float64) error {
	a, ok := f.accounts[accountID]
	if !ok {
		return errNotFound
	}
	a.Balance += delta
	return nil
}

func (f *fakeAccountRepository) UpdateBalanceWithTx(ctx context.Context, tx interface{}, accountID ulid.ULID, delta float64) error {
	if f.balanceTxErr != nil {
		return f.balanceTxErr
	}
	return f.UpdateBalance(ctx, accountID, delta)
}

func (f *fakeAccountRepository) BeginTx(ctx context.Context) (interface{}, error) {
	return struct{}{}, nil
}

func (f *fakeAccountRepository) CommitTx(tx interface{}) error {
	f.commits++
	return nil
}

func (f *fakeAccountRepository) RollbackTx(tx interface{}) error {
	f.rollbacks++
	return nil
}

type fakeTransactionRepository struct {
	rows map[ulid.ULID]*transaction.Transaction

	createErr error
	deleteErr error
	lookupErr error
	creates   int
}

func newFakeTransactionRepository() *fakeTransactionRepository {
	return &fakeTransactionRepository{rows: make(map[ulid.ULID]*transaction.Transaction)}
}

func (f *fakeTransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.creates++
	stored := *t
	f.rows[t.Id] = &stored
	return nil
}

func (f *fakeTransactionRepository) CreateWithTx(ctx context.Context, tx interface{}, t *transaction.Transaction) error {
	return f.Create(ctx, t)
}

func (f *fakeTransactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	stored := *t
	f.rows[t.Id] = &stored
	return nil
}

func (f *fakeTransactionRepository) UpdateWithTx(ctx context.Context, tx interface{}, t *transaction.Transaction) error {
	return f.Update(ctx, t)
}

func (f *fakeTransactionRepository) Delete(ctx context.Context, transactionID ulid.ULID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.rows, transactionID)
	return nil
}

func (f *fakeTransactionRepository) GetByIDAndOwner(ctx context.Context, transactionID ulid.ULID, ownerID uuid.UUID) (*transaction.Transaction, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	t, ok := f.rows[transactionID]
	if !ok || t.OwnerId != ownerID {
		return nil, errNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTransactionRepository) GetAll(ctx context.Context, ownerID uuid.UUID, accountID *ulid.ULID, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	var out []*transaction.Transaction
	for _, t := range f.rows {
		if t.OwnerId != ownerID {
			continue
		}
		if accountID != nil && t.AccountId != *accountID {
			continue
		}
		copied := *t
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (f *fakeTransactionRepository) ClearCategory(ctx context.Context, categoryID ulid.ULID, ownerID uuid.UUID) error {
	for _, t := range f.rows {
		if t.OwnerId == ownerID && t.CategoryId != nil && *t.CategoryId == categoryID {
			t.CategoryId = nil
		}
	}
	return nil
}

func newLedger(accounts ...*account.Account) (*transaction.Service, *fakeAccountRepository, *fakeTransactionRepository) {
	accountRepo := newFakeAccountRepository(accounts...)
	transactionRepo := newFakeTransactionRepository()
	svc := transaction.NewService(transactionRepo, account.NewService(accountRepo), nil)
	return svc, accountRepo, transactionRepo
}

func testAccount(ownerID uuid.UUID, balance float64) *account.Account {
	return &account.Account{
		Id:      pkg.NewULID(),
		OwnerId: ownerID,
		Name:    "Cuenta",
		Type:    account.TypeCash,
		Balance: balance,
	}
}

func TestPostTransactionAppliesSignedAmount(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	acc := testAccount(ownerID, 100)
	svc, _, repo := newLedger(acc)
	ctx := context.Background()

	income := &transaction.Transaction{
		OwnerId:   ownerID,
		AccountId: acc.Id,
		Label:     "Sueldo",
		Amount:    50,
		Type:      transaction.Income,
	}
	if err := svc.PostTransaction(ctx, income); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acc.Balance != 150 {
		t.Fatalf("expected balance 150 after income, got %v", acc.Balance)
	}

	expense := &transaction.Transaction{
		OwnerId:   ownerID,
		AccountId: acc.Id,
		Label:     "Supermercado",
		Amount:    30,
		Type:      transaction.Expense,
	}
	if err := svc.PostTransaction(ctx, expense); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acc.Balance != 120 {
		t.Fatalf("expected balance 120 after expense, got %v", acc.Balance)
	}

	if repo.creates != 2 {
		t.Fatalf("expected 2 persisted rows, got %d", repo.creates)
	}
}

func TestPostTransactionRejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	acc := testAccount(ownerID, 100)
	svc, _, repo := newLedger(acc)
	ctx := context.Background()

	for _, amount := range []float64{0, -25} {
		err := svc.PostTransaction(ctx, &transaction.Transaction{
			OwnerId:   ownerID,
			AccountId: acc.Id,
			Label:     "Inválida",
			Amount:    amount,
			Type:      transaction.Expense,
		})
		if err == nil {
			t.Fatalf("expected error for amount %v", amount)
		}
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected VALIDATION_ERROR for amount %v, got %v", amount, err)
		}
	}

	if repo.creates != 0 {
		t.Fatalf("expected no persisted rows, got %d", repo.creates)
	}
	if acc.Balance != 100 {
		t.Fatalf("expected untouched balance, got %v", acc.Balance)
	}
}

func TestPostTransactionRejectsTransferType(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	acc := testAccount(ownerID, 100)
	svc, _, _ := newLedger(acc)

	err := svc.PostTransaction(context.Background(), &transaction.Transaction{
		OwnerId:   ownerID,
		AccountId: acc.Id,
		Label:     "Movimiento",
		Amount:    10,
		Type:      transaction.Transfer,
	})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestPostTransactionMissingAccount(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	svc, _, repo := newLedger()

	err := svc.PostTransaction(context.Background(), &transaction.Transaction{
		OwnerId:   ownerID,
		AccountId: pkg.NewULID(),
		Label:     "Huérfana",
		Amount:    10,
		Type:      transaction.Income,
	})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrAccountNotFound.Code {
		t.Fatalf("expected %s, got %v", appErrors.ErrAccountNotFound.Code, err)
	}

	if repo.creates != 0 {
		t.Fatalf("expected zero persisted writes, got %d", repo.creates)
	}
}

func TestRetractRestoresBalance(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	acc := testAccount(ownerID, 100)
	svc, _, repo := newLedger(acc)
	ctx := context.Background()

	tx := &transaction.Transaction{
		OwnerId:   ownerID,
		AccountId: acc.Id,
		Label:     "Cena",
		Amount:    40,
		Type:      transaction.Expense,
	}
	if err := svc.PostTransaction(ctx, tx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acc.Balance != 60 {
		t.Fatalf("expected balance 60, got %v", acc.Balance)
	}

	if err := svc.RetractTransaction(ctx, tx.Id, ownerID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acc.Balance != 100 {
		t.Fatalf("expected balance restored to 100, got %v", acc.Balance)
	}
	if len(repo.rows) != 0 {
		t.Fatalf("expected row removed, got %d rows", len(repo.rows))
	}
}

func TestRetractAbsentTransactionIsNoOp(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	acc := testAccount(ownerID, 100)
	svc, _, _ := newLedger(acc)

	if err := svc.RetractTransaction(context.Background(), pkg.NewULID(), ownerID); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
	if acc.Balance != 100 {
		t.Fatalf("expected untouched balance, got %v", acc.Balance)
	}
}

func TestRetractCompensatesFailedDelete(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	acc := testAccount(ownerID, 100)
	svc, _, repo := newLedger(acc)
	ctx := context.Background()

	tx := &transaction.Transaction{
		OwnerId:   ownerID,
		AccountId: acc.Id,
		Label:     "Cena",
		Amount:    40,
		Type:      transaction.Expense,
	}
	if err := svc.PostTransaction(ctx, tx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.deleteErr = errors.New("delete failed")
	if err := svc.RetractTransaction(ctx, tx.Id, ownerID); err == nil {
		t.Fatalf("expected error")
	}

	// The reversal was re-applied, so the balance still matches the row.
	if acc.Balance != 60 {
		t.Fatalf("expected balance 60 after compensation, got %v", acc.Balance)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected row preserved, got %d rows", len(repo.rows))
	}
}

func TestRetractSurfacesLookupFailure(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	acc := testAccount(ownerID, 100)
	svc, _, repo := newLedger(acc)
	ctx := context.Background()

	tx := &transaction.Transaction{
		OwnerId:   ownerID,
		AccountId: acc.Id,
		Label:     "Farmacia",
		Amount:    40,
		Type:      transaction.Expense,
	}
	if err := svc.PostTransaction(ctx, tx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A failing store must not be mistaken for an absent row.
	repo.lookupErr = errors.New("connection refused")
	err := svc.RetractTransaction(ctx, tx.Id, ownerID)
	if err == nil {
		t.Fatalf("expected error, got success")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "STORE_WRITE_FAILURE" {
		t.Fatalf("expected STORE_WRITE_FAILURE, got %v", err)
	}
	if acc.Balance != 60 {
		t.Fatalf("expected untouched balance 60, got %v", acc.Balance)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected row preserved, got %d rows", len(repo.rows))
	}
}

func TestReviseSurfacesLookupFailure(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	acc := testAccount(ownerID, 100)
	svc, _, repo := newLedger(acc)

	repo.lookupErr = errors.New("connection refused")
	amount := 10.0
	err := svc.ReviseTransaction(context.Background(), pkg.NewULID(), ownerID, &transaction.Changes{Amount: &amount})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "STORE_WRITE_FAILURE" {
		t.Fatalf("expected STORE_WRITE_FAILURE, got %v", err)
	}
	if acc.Balance != 100 {
		t.Fatalf("expected untouched balance, got %v", acc.Balance)
	}
}

func TestPostRollsBackWhenBalanceWriteFails(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	acc := testAccount(ownerID, 100)
	svc, accountRepo, _ := newLedger(acc)

	accountRepo.balanceTxErr = errors.New("connection reset")
	err := svc.PostTransaction(context.Background(), &transaction.Transaction{
		OwnerId:   ownerID,
		AccountId: acc.Id,
		Label:     "Luz",
		Amount:    35,
		Type:      transaction.Expense,
	})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "STORE_WRITE_FAILURE" {
		t.Fatalf("expected STORE_WRITE_FAILURE, got %v", err)
	}
	if accountRepo.rollbacks != 1 {
		t.Fatalf("expected 1 rollback, got %d", accountRepo.rollbacks)
	}
	if accountRepo.commits != 0 {
		t.Fatalf("expected no commit, got %d", accountRepo.commits)
	}
	if acc.Balance != 100 {
		t.Fatalf("expected untouched balance, got %v", acc.Balance)
	}
}

func TestReviseNoOpKeepsBalances(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	acc := testAccount(ownerID, 100)
	svc, _, _ := newLedger(acc)
	ctx := context.Background()

	tx := &transaction.Transaction{
		OwnerId:   ownerID,
		AccountId: acc.Id,
		Label:     "Gimnasio",
		Amount:    25,
		Type:      transaction.Expense,
	}
	if err := svc.PostTransaction(ctx, tx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sameAmount := 25.0
	sameType := transaction.Expense
	sameAccount := acc.Id
	err := svc.ReviseTransaction(ctx, tx.Id, ownerID, &transaction.Changes{
		Amount:    &sameAmount,
		Type:      &sameType,
		AccountId: &sameAccount,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acc.Balance != 75 {
		t.Fatalf("expected balance 75 after no-op revise, got %v", acc.Balance)
	}
}

func TestReviseMovesBetweenAccounts(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	x := testAccount(ownerID, 130)
	y := testAccount(ownerID, 50)
	svc, _, _ := newLedger(x, y)
	ctx := context.Background()

	tx := &transaction.Transaction{
		OwnerId:   ownerID,
		AccountId: x.Id,
		Label:     "Compra",
		Amount:    30,
		Type:      transaction.Expense,
	}
	if err := svc.PostTransaction(ctx, tx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if x.Balance != 100 {
		t.Fatalf("expected X at 100 after posting, got %v", x.Balance)
	}

	err := svc.ReviseTransaction(ctx, tx.Id, ownerID, &transaction.Changes{AccountId: &y.Id})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if x.Balance != 130 {
		t.Fatalf("expected X restored to 130, got %v", x.Balance)
	}
	if y.Balance != 20 {
		t.Fatalf("expected Y at 20, got %v", y.Balance)
	}
}

func TestReviseTypeFlip(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	z := testAccount(ownerID, 200)
	svc, _, _ := newLedger(z)
	ctx := context.Background()

	tx := &transaction.Transaction{
		OwnerId:   ownerID,
		AccountId: z.Id,
		Label:     "Ajuste",
		Amount:    20,
		Type:      transaction.Expense,
	}
	if err := svc.PostTransaction(ctx, tx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if z.Balance != 180 {
		t.Fatalf("expected Z at 180 after posting, got %v", z.Balance)
	}

	flipped := transaction.Income
	err := svc.ReviseTransaction(ctx, tx.Id, ownerID, &transaction.Changes{Type: &flipped})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if z.Balance != 220 {
		t.Fatalf("expected Z at 220 after type flip, got %v", z.Balance)
	}
}

func TestReviseUnknownTransaction(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	svc, _, _ := newLedger(testAccount(ownerID, 100))

	err := svc.ReviseTransaction(context.Background(), pkg.NewULID(), ownerID, &transaction.Changes{})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrTransactionNotFound.Code {
		t.Fatalf("expected %s, got %v", appErrors.ErrTransactionNotFound.Code, err)
	}
}

func TestOpenAccountBootstrap(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	svc, accountRepo, repo := newLedger()
	ctx := context.Background()

	acc, err := svc.OpenAccount(ctx, &account.CreateAccountRequest{
		OwnerId:        ownerID,
		Name:           "Test",
		Type:           account.TypeCash,
		OpeningBalance: 500,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Exactly one addition: the balance is seeded once and the opening row
	// records it without passing through reconciliation again.
	if acc.Balance != 500 {
		t.Fatalf("expected balance 500, got %v", acc.Balance)
	}
	if got := accountRepo.accounts[acc.Id].Balance; got != 500 {
		t.Fatalf("expected stored balance 500, got %v", got)
	}

	if len(repo.rows) != 1 {
		t.Fatalf("expected exactly one opening row, got %d", len(repo.rows))
	}
	for _, row := range repo.rows {
		if row.Type != transaction.Income || row.Amount != 500 {
			t.Fatalf("expected income of 500, got %s %v", row.Type, row.Amount)
		}
		if row.AccountId != acc.Id {
			t.Fatalf("opening row points at wrong account")
		}
	}
}

func TestOpenAccountZeroBalanceSkipsOpeningRow(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	svc, _, repo := newLedger()

	acc, err := svc.OpenAccount(context.Background(), &account.CreateAccountRequest{
		OwnerId: ownerID,
		Name:    "Vacía",
		Type:    account.TypeSavings,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acc.Balance != 0 {
		t.Fatalf("expected balance 0, got %v", acc.Balance)
	}
	if len(repo.rows) != 0 {
		t.Fatalf("expected no opening row, got %d", len(repo.rows))
	}
}

func TestOpenAccountRejectsNegativeBalance(t *testing.T) {
	t.Parallel()

	svc, _, _ := newLedger()

	_, err := svc.OpenAccount(context.Background(), &account.CreateAccountRequest{
		OwnerId:        uuid.New(),
		Name:           "Negativa",
		Type:           account.TypeCash,
		OpeningBalance: -10,
	})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestManualDepositPostsIncome(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	acc := testAccount(ownerID, 10)
	svc, _, _ := newLedger(acc)

	tx, err := svc.ManualDeposit(context.Background(), acc.Id, ownerID, 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.Type != transaction.Income {
		t.Fatalf("expected income, got %s", tx.Type)
	}
	if acc.Balance != 100 {
		t.Fatalf("expected balance 100, got %v", acc.Balance)
	}
}

// Invariant check across a mixed sequence: the cached balance always equals
// the opening balance plus the signed sum of the surviving rows.
func TestBalanceInvariantAcrossSequence(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	acc := testAccount(ownerID, 1000)
	svc, _, repo := newLedger(acc)
	ctx := context.Background()

	post := func(amount float64, typ transaction.Types) *transaction.Transaction {
		t.Helper()
		tx := &transaction.Transaction{
			OwnerId:   ownerID,
			AccountId: acc.Id,
			Label:     "Movimiento",
			Amount:    amount,
			Type:      typ,
		}
		if err := svc.PostTransaction(ctx, tx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return tx
	}

	a := post(200, transaction.Income)
	b := post(75, transaction.Expense)
	post(50, transaction.Expense)

	newAmount := 120.0
	if err := svc.ReviseTransaction(ctx, a.Id, ownerID, &transaction.Changes{Amount: &newAmount}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.RetractTransaction(ctx, b.Id, ownerID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var signedSum float64
	for _, row := range repo.rows {
		signedSum += row.SignedAmount()
	}
	if want := 1000 + signedSum; acc.Balance != want {
		t.Fatalf("invariant broken: balance %v, opening+signed sum %v", acc.Balance, want)
	}
	// 1000 + 120 - 50 = 1070.
	if acc.Balance != 1070 {
		t.Fatalf("expected 1070, got %v", acc.Balance)
	}
}
