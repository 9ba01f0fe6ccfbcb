package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapi/internal/auth"
	"todoapi/internal/testutil"
	"todoapi/internal/todo"
)

func TestAutoMigrateAndIndexes(t *testing.T) {
	gdb := testutil.NewDB(t)

	require.NoError(t, AutoMigrateAndIndexes(gdb))
	// idempotent across restarts
	require.NoError(t, AutoMigrateAndIndexes(gdb))

	m := gdb.Migrator()
	assert.True(t, m.HasTable(&auth.User{}))
	assert.True(t, m.HasTable(&todo.Todo{}))
	assert.True(t, m.HasColumn(&auth.User{}, "password"))
	assert.True(t, m.HasIndex(&todo.Todo{}, "idx_todos_user_created"))
}
