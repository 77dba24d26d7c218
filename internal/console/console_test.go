package console_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/amirasaad/bankdesk/infra/repository/memory"
	"github.com/amirasaad/bankdesk/internal/console"
	"github.com/amirasaad/bankdesk/pkg/domain/account"
	"github.com/amirasaad/bankdesk/pkg/service/bank"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func seeded(t *testing.T) *bank.Service {
	t.Helper()
	svc := bank.New(memory.NewClientRepository(), memory.NewAccountRepository(), quiet)
	require.NoError(t, bank.Seed(svc))
	return svc
}

func run(t *testing.T, svc *bank.Service, script ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(script, "\n") + "\n")
	c := console.New(svc, in, &out, console.WithLogger(quiet))
	require.NoError(t, c.Run())
	return out.String()
}

type fakeTerminal struct {
	clears  int
	waits   int
	waitErr error
}

func (f *fakeTerminal) Clear() { f.clears++ }

func (f *fakeTerminal) WaitKey(r io.ByteReader) error {
	f.waits++
	if f.waitErr != nil {
		return f.waitErr
	}
	_, err := r.ReadByte()
	return err
}

func TestMainMenu(t *testing.T) {
	t.Parallel()
	svc := seeded(t)

	t.Run("exit", func(t *testing.T) {
		out := run(t, svc, "0")
		assert.Contains(t, out, "BANK - Account Management")
		assert.Contains(t, out, "4) Client listing")
		assert.Contains(t, out, "Choose an option: ")
	})

	t.Run("invalid option", func(t *testing.T) {
		out := run(t, svc, "9", "0")
		assert.Contains(t, out, "Invalid option")
		assert.Equal(t, 2, strings.Count(out, "0) Exit"))
	})
}

func TestEndOfInputExitsCleanly(t *testing.T) {
	t.Parallel()
	svc := seeded(t)

	var out bytes.Buffer
	require.NoError(t, console.New(svc, strings.NewReader(""), &out, console.WithLogger(quiet)).Run())

	// input ends in the middle of a form
	out.Reset()
	in := strings.NewReader("1\n1\n50000000\nHalf")
	require.NoError(t, console.New(svc, in, &out, console.WithLogger(quiet)).Run())
	_, ok := svc.FindClientByID("50000000")
	assert.False(t, ok)
}

func TestReadFailureIsReturned(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	c := console.New(seeded(t), iotest.ErrReader(errors.New("boom")), &out, console.WithLogger(quiet))
	assert.ErrorContains(t, c.Run(), "boom")
}

func TestAddClient(t *testing.T) {
	t.Parallel()
	svc := seeded(t)

	out := run(t, svc, "1", "1", "", "40111222", "Carla Díaz", "351-5550003", "carla@correo.com", "2001-03-07", "7/3/2001", "0")
	assert.Contains(t, out, "* Required field")
	assert.Contains(t, out, "* Invalid format. Example: 25/08/2001")
	assert.Contains(t, out, "Client added.")

	c, ok := svc.FindClientByID("40111222")
	require.True(t, ok)
	assert.Equal(t, "Carla Díaz", c.FullName())
	y, m, d := c.BirthDate().Date()
	assert.Equal(t, []int{2001, 3, 7}, []int{y, int(m), d})
}

func TestAddClientErrors(t *testing.T) {
	t.Parallel()
	svc := seeded(t)

	out := run(t, svc, "1", "1", "30111222", "Dup", "1", "d@d.com", "01/01/2000", "0")
	assert.Contains(t, out, `ERROR: duplicate key: client "30111222" already exists`)

	out = run(t, svc, "1", "1", "40000001", "Eve", "1", "not-an-email", "01/01/2000", "0")
	assert.Contains(t, out, "ERROR: invalid argument: email must be a valid email address")
	_, ok := svc.FindClientByID("40000001")
	assert.False(t, ok)

	future := time.Now().AddDate(2, 0, 0).Format("02/01/2006")
	out = run(t, svc, "1", "1", "40000002", "Fay", "1", "f@f.com", future, "0")
	assert.Contains(t, out, "ERROR: invalid argument: birth date cannot be in the future")
}

func TestModifyClient(t *testing.T) {
	t.Parallel()
	svc := seeded(t)

	out := run(t, svc, "1", "2", "30111222", "Ana G. Gómez", "351-0000000", "ana@nuevo.com", "10/05/1993", "0")
	assert.Contains(t, out, "Editing: Ana Gómez (ID: 30111222)")
	assert.Contains(t, out, "Client updated.")
	c, _ := svc.FindClientByID("30111222")
	assert.Equal(t, "ana@nuevo.com", c.Email())

	out = run(t, svc, "1", "2", "999", "0")
	assert.Contains(t, out, `ERROR: not found: client "999"`)
}

func TestRemoveClient(t *testing.T) {
	t.Parallel()
	svc := seeded(t)

	out := run(t, svc, "1", "3", "30111222", "0")
	assert.Contains(t, out, "ERROR: conflict: client 30111222 still owns 1 account(s)")

	out = run(t, svc, "1", "1", "40111222", "Carla", "1", "c@c.com", "1/1/2000", "1", "3", "40111222", "0")
	assert.Contains(t, out, "Client removed.")
	_, ok := svc.FindClientByID("40111222")
	assert.False(t, ok)
}

func TestFindClients(t *testing.T) {
	t.Parallel()
	svc := seeded(t)

	out := run(t, svc, "1", "4", "33123456", "1", "4", "000", "0")
	assert.Contains(t, out, "Bruno Pérez (ID: 33123456) - Tel: 351-5550002 - Email: bruno@correo.com")
	assert.Contains(t, out, "Not found")

	out = run(t, svc, "1", "5", "", "0")
	ana := strings.Index(out, "Ana Gómez (ID")
	bruno := strings.Index(out, "Bruno Pérez (ID")
	require.True(t, ana >= 0 && bruno >= 0)
	assert.Less(t, ana, bruno)

	out = run(t, svc, "1", "5", "PÉREZ", "1", "5", "zzz", "0")
	assert.Contains(t, out, "Bruno Pérez (ID")
	assert.Contains(t, out, "No results")
}

func TestListClients(t *testing.T) {
	t.Parallel()
	svc := seeded(t)

	out := run(t, svc, "1", "1", "1000", "Zoe", "1", "z@z.com", "1/1/2000", "4", "0")
	assert.Contains(t, out, "=== CLIENT LISTING ===")
	assert.Contains(t, out, "    - Savings #CA-0001 | Owner: 30111222 | Balance: $ 120,000.00 | Withdrawal cap: $ 50,000.00")
	assert.Contains(t, out, "    - Checking #CC-1001 | Owner: 33123456 | Balance: $ 30,000.00 | Overdraft: $ 20,000.00")
	assert.Contains(t, out, "Zoe (ID: 1000)")
	assert.Contains(t, out, "    (no accounts)")
}

func TestAddAccount(t *testing.T) {
	t.Parallel()
	svc := seeded(t)

	out := run(t, svc, "2", "1", "1", "CA-0002", "30111222", "abc", "1,500.555", "0")
	assert.Contains(t, out, "* Enter a number greater than 0")
	assert.Contains(t, out, "Account created.")
	acc, ok := svc.FindAccountByCode("CA-0002")
	require.True(t, ok)
	assert.Equal(t, account.KindSavings, acc.Kind())
	assert.True(t, acc.Policy().WithdrawalCap.Equal(decimal.RequireFromString("1500.56")))

	out = run(t, svc, "2", "1", "2", "CC-0002", "33123456", "-5", "0", "0")
	assert.Contains(t, out, "* Enter a number greater than or equal to 0")
	acc, ok = svc.FindAccountByCode("CC-0002")
	require.True(t, ok)
	assert.Equal(t, account.KindChecking, acc.Kind())
	assert.True(t, acc.Policy().OverdraftLimit.IsZero())
}

func TestAddAccountErrors(t *testing.T) {
	t.Parallel()
	svc := seeded(t)

	out := run(t, svc, "2", "1", "3", "X-1", "30111222", "0")
	assert.Contains(t, out, `ERROR: invalid argument: unknown account type "3"`)

	out = run(t, svc, "2", "1", "2", "CC-9", "nobody", "0", "0")
	assert.Contains(t, out, `ERROR: conflict: owner "nobody" is not a registered client`)

	out = run(t, svc, "2", "1", "1", "ca-0001", "30111222", "10", "0")
	assert.Contains(t, out, "ERROR: duplicate key")
	assert.Len(t, svc.Accounts(), 2)
}

func TestChangeOwnerAndRemoveAccount(t *testing.T) {
	t.Parallel()
	svc := seeded(t)

	out := run(t, svc, "2", "2", "CA-0001", "33123456", "2", "4", "33123456", "2", "4", "30111222", "0")
	assert.Contains(t, out, "Owner updated.")
	assert.Contains(t, out, "Savings #CA-0001 | Owner: 33123456")
	assert.Contains(t, out, "No accounts")

	out = run(t, svc, "2", "2", "CA-0001", "ghost", "0")
	assert.Contains(t, out, `ERROR: not found: client "ghost"`)

	out = run(t, svc, "2", "3", "CC-1001", "0")
	assert.Contains(t, out, "ERROR: conflict: account CC-1001 has a non-zero balance")

	out = run(t, svc, "3", "2", "CC-1001", "30000", "2", "3", "CC-1001", "0")
	assert.Contains(t, out, "Withdrawal done.")
	assert.Contains(t, out, "Account removed.")
	_, ok := svc.FindAccountByCode("CC-1001")
	assert.False(t, ok)
}

func TestOperations(t *testing.T) {
	t.Parallel()
	svc := seeded(t)

	out := run(t, svc, "3", "1", "CC-1001", "0", "1,000.50", "0")
	assert.Contains(t, out, "* Enter a number greater than 0")
	assert.Contains(t, out, "Deposit done.")
	cc, _ := svc.FindAccountByCode("CC-1001")
	assert.True(t, cc.Balance().Equal(decimal.RequireFromString("31000.50")))

	out = run(t, svc, "3", "2", "CA-0001", "50001", "0")
	assert.Contains(t, out, "ERROR: policy violation: withdrawal not allowed by the account terms")

	out = run(t, svc, "3", "1", "NOPE", "5", "0")
	assert.Contains(t, out, `ERROR: not found: account "NOPE"`)
}

func TestAmountInput(t *testing.T) {
	t.Parallel()
	svc := seeded(t)

	out := run(t, svc, "3", "1", "CC-1001", "1e99999999", "0.125", "0")
	assert.Equal(t, 1, strings.Count(out, "* Enter a number greater than 0"))
	assert.Contains(t, out, "Deposit done.")
	cc, _ := svc.FindAccountByCode("CC-1001")
	assert.True(t, cc.Balance().Equal(decimal.RequireFromString("30000.12")), "balance %s", cc.Balance())
}

func TestShowMovements(t *testing.T) {
	t.Parallel()
	svc := seeded(t)
	require.NoError(t, svc.Withdraw("CA-0001", decimal.NewFromInt(250)))

	out := run(t, svc, "3", "3", "ca-0001", "0")
	assert.Contains(t, out, "Savings #CA-0001 | Owner: 30111222 | Balance: $ 119,750.00")
	withdrawal := strings.Index(out, "] Withdrawal - $ 250.00")
	deposit := strings.Index(out, "] Deposit - $ 120,000.00")
	require.True(t, withdrawal >= 0 && deposit >= 0)
	assert.Less(t, withdrawal, deposit)

	out = run(t, svc, "2", "1", "2", "CC-7", "30111222", "0", "3", "3", "CC-7", "3", "3", "nope", "0")
	assert.Contains(t, out, "(no movements)")
	assert.Contains(t, out, `ERROR: not found: account "nope"`)
}

func TestTerminal(t *testing.T) {
	t.Parallel()

	term := &fakeTerminal{}
	var out bytes.Buffer
	c := console.New(seeded(t), strings.NewReader("9\nk0\n"), &out,
		console.WithLogger(quiet), console.WithTerminal(term))
	require.NoError(t, c.Run())
	assert.Equal(t, 2, term.clears)
	assert.Equal(t, 1, term.waits)
	assert.Contains(t, out.String(), "Press any key to continue...")
	// the key pressed at the pause is not read back as a menu choice
	assert.Equal(t, 1, strings.Count(out.String(), "Invalid option"))

	closed := &fakeTerminal{waitErr: io.EOF}
	c = console.New(seeded(t), strings.NewReader("9\n9\n"), &out,
		console.WithLogger(quiet), console.WithTerminal(closed))
	require.NoError(t, c.Run())
	assert.Equal(t, 1, closed.waits)
}

func TestColor(t *testing.T) {
	t.Parallel()
	svc := seeded(t)

	var plain, colored bytes.Buffer
	require.NoError(t, console.New(svc, strings.NewReader("0\n"), &plain, console.WithLogger(quiet)).Run())
	require.NoError(t, console.New(svc, strings.NewReader("0\n"), &colored,
		console.WithLogger(quiet), console.WithColor(true)).Run())

	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, colored.String(), "\x1b[")
}
