package dbmetrics

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/FarrierBookingService/pkg/metrics"
)

type fakeTx struct {
	DBExecutor
}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

func TestGetExecutor(t *testing.T) {
	def := &DB{}
	ctx := context.Background()

	assert.Same(t, def, GetExecutor(ctx, def))
	assert.False(t, IsInTransaction(ctx))

	tx := &fakeTx{}
	txCtx := WithTx(ctx, tx)

	assert.Same(t, tx, GetExecutor(txCtx, def))
	assert.True(t, IsInTransaction(txCtx))
}

func TestOperationName(t *testing.T) {
	assert.Equal(t, "select", operationName("SELECT id FROM horses"))
	assert.Equal(t, "insert", operationName("\n  INSERT INTO bookings (id) VALUES ($1)"))
	assert.Equal(t, "unknown", operationName("   "))
}

func TestObserve_NilMetrics(t *testing.T) {
	d := &DB{}
	assert.NotPanics(t, func() {
		d.observe("SELECT 1", time.Now(), sql.ErrConnDone)
	})
}

func TestObserve_CountsErrorsExceptNoRows(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), "test")
	d := &DB{metrics: m}

	d.observe("SELECT 1", time.Now(), sql.ErrNoRows)
	d.observe("UPDATE bookings SET status = $1", time.Now(), sql.ErrConnDone)

	assert.Equal(t, 0.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("select")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("update")))
}
