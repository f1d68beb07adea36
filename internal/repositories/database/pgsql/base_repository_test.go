package pgsql

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"github.com/wisnuad/internship_mgmt_app/internal/apperrors"
)

// stubTx overrides Rollback only; the embedded interface covers the rest.
type stubTx struct {
	pgx.Tx
	rollbackErr error
}

func (t *stubTx) Rollback(ctx context.Context) error {
	return t.rollbackErr
}

func TestRollbackAfterCommitIsNotAnError(t *testing.T) {
	r := &BaseRepository{}

	// Deferred rollback after a successful commit: pgx reports the
	// transaction closed, which must be swallowed.
	err := r.Rollback(context.Background(), &stubTx{rollbackErr: pgx.ErrTxClosed})
	assert.NoError(t, err)

	err = r.Rollback(context.Background(), &stubTx{rollbackErr: nil})
	assert.NoError(t, err)
}

func TestRollbackSurfacesRealFailures(t *testing.T) {
	r := &BaseRepository{}
	cause := errors.New("connection reset")

	err := r.Rollback(context.Background(), &stubTx{rollbackErr: cause})

	assert.Error(t, err)
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.ErrorIs(t, err, cause)
}
