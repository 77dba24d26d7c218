package catalog_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/bankdesk/pkg/domain"
	"github.com/amirasaad/bankdesk/pkg/domain/product"
	"github.com/amirasaad/bankdesk/pkg/service/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	products []product.Product
	listErr  error
	pingErr  error
}

func (r *stubRepo) Ping(context.Context) error { return r.pingErr }

func (r *stubRepo) List(context.Context) ([]product.Product, error) {
	return r.products, r.listErr
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestList(t *testing.T) {
	t.Parallel()
	repo := &stubRepo{products: []product.Product{{ID: 1, Name: "Keyboard", Price: 4500}}}
	svc := catalog.New(repo, quietLogger())

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, repo.products, got)
	assert.Equal(t, "1\tKeyboard\t4500", got[0].String())
}

func TestListWrapsErrors(t *testing.T) {
	t.Parallel()
	cause := errors.New("timeout")
	svc := catalog.New(&stubRepo{listErr: cause}, quietLogger())

	got, err := svc.List(context.Background())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "catalog database error: timeout")

	svc = catalog.New(&stubRepo{listErr: domain.ErrNotFound}, quietLogger())
	_, err = svc.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPing(t *testing.T) {
	t.Parallel()
	require.NoError(t, catalog.New(&stubRepo{}, nil).Ping(context.Background()))

	err := catalog.New(&stubRepo{pingErr: errors.New("refused")}, quietLogger()).Ping(context.Background())
	assert.EqualError(t, err, "catalog database error: refused")
}
