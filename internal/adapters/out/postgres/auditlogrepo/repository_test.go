package auditlogrepo_test

import (
	"context"
	"testing"

	"github.com/kleberrossi/Procman/internal/adapters/out/postgres/auditlogrepo"
	"github.com/kleberrossi/Procman/internal/adapters/out/postgres/pgtest"
	"github.com/kleberrossi/Procman/internal/core/domain/model/auditlog"
	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormAuditLogRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("should list entries of one order in append order", func(t *testing.T) {
		// Given
		repo := auditlogrepo.NewGormAuditLogRepository(pgtest.OpenSQLite(t))
		orderID := kernel.NewUUID()
		userID := kernel.NewUUID()
		user, err := kernel.NewUserActor(userID)
		require.NoError(t, err)

		created, err := auditlog.NewEntry(orderID, auditlog.ActionCreated, user, auditlog.Detail{"numero": "PED-000007"})
		require.NoError(t, err)
		recalc, err := auditlog.NewEntry(orderID, auditlog.ActionRecalcTotal, kernel.SystemActor(), auditlog.Detail{
			"from": nil, "to": "12.50", "reason": "order_created",
		})
		require.NoError(t, err)
		other, err := auditlog.NewEntry(kernel.NewUUID(), auditlog.ActionCreated, user, nil)
		require.NoError(t, err)

		// When
		require.NoError(t, repo.Append(ctx, created, recalc, other))
		entries, err := repo.ListByOrder(ctx, orderID)

		// Then
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, auditlog.ActionCreated, entries[0].Action())
		assert.Equal(t, userID, *entries[0].Actor().UserID())
		assert.Equal(t, "PED-000007", entries[0].Detail()["numero"])
		assert.NotZero(t, entries[0].CreatedAt())

		assert.Equal(t, auditlog.ActionRecalcTotal, entries[1].Action())
		assert.True(t, entries[1].Actor().IsSystem())
		assert.Nil(t, entries[1].Detail()["from"])
		assert.Equal(t, "12.50", entries[1].Detail()["to"])
		assert.Greater(t, entries[1].ID(), entries[0].ID())
	})

	t.Run("should accept an empty append", func(t *testing.T) {
		repo := auditlogrepo.NewGormAuditLogRepository(pgtest.OpenSQLite(t))

		require.NoError(t, repo.Append(ctx))
	})

	t.Run("should reject entries not built by the constructor", func(t *testing.T) {
		repo := auditlogrepo.NewGormAuditLogRepository(pgtest.OpenSQLite(t))

		require.Error(t, repo.Append(ctx, auditlog.Entry{}))
	})
}
