package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"learnloop-backend/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.Topic{},
		&model.Concept{},
		&model.Problem{},
		&model.UserProgress{},
		&model.Profile{},
	)
	require.NoError(t, err)
	return db
}

// fakeCompletionClient returns a canned reply and counts calls.
type fakeCompletionClient struct {
	reply string
	err   error
	calls int
}

func (f *fakeCompletionClient) Complete(_ context.Context, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}
