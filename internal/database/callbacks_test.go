package database

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"coboard-api/internal/domain"
)

// mockMetricsRecorder captures what the callbacks report
type mockMetricsRecorder struct {
	queries   []queryRecord
	dbStats   []sql.DBStats
	statsCall int
}

type queryRecord struct {
	operation string
	table     string
	duration  time.Duration
	err       error
}

func (m *mockMetricsRecorder) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.queries = append(m.queries, queryRecord{
		operation: operation,
		table:     table,
		duration:  duration,
		err:       err,
	})
}

func (m *mockMetricsRecorder) UpdateDBStats(stats interface{}) {
	if dbStats, ok := stats.(sql.DBStats); ok {
		m.dbStats = append(m.dbStats, dbStats)
		m.statsCall++
	}
}

func setupCallbackDB(t *testing.T) (*gorm.DB, *mockMetricsRecorder) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "Failed to open test database")
	require.NoError(t, db.AutoMigrate(&domain.Tag{}), "Failed to migrate tag table")

	recorder := &mockMetricsRecorder{}
	RegisterMetricsCallbacks(db, recorder)
	return db, recorder
}

func TestRegisterMetricsCallbacks_Operations(t *testing.T) {
	db, recorder := setupCallbackDB(t)

	tag := domain.Tag{TagText: "golang", Board: "coboard"}
	require.NoError(t, db.Create(&tag).Error)

	var found domain.Tag
	require.NoError(t, db.First(&found, tag.TagID).Error)

	require.NoError(t, db.Model(&tag).Update("tag_text", "go").Error)
	require.NoError(t, db.Delete(&tag).Error)

	require.Len(t, recorder.queries, 4)
	operations := []string{"insert", "select", "update", "delete"}
	for i, want := range operations {
		assert.Equal(t, want, recorder.queries[i].operation)
		assert.Equal(t, "tag", recorder.queries[i].table)
		assert.Greater(t, recorder.queries[i].duration, time.Duration(0))
		assert.NoError(t, recorder.queries[i].err)
	}
}

func TestRegisterMetricsCallbacks_QueryError(t *testing.T) {
	db, recorder := setupCallbackDB(t)

	var tag domain.Tag
	err := db.First(&tag, 999).Error
	require.Error(t, err)

	require.Len(t, recorder.queries, 1)
	assert.Equal(t, "select", recorder.queries[0].operation)
	assert.Equal(t, "tag", recorder.queries[0].table)
	assert.Error(t, recorder.queries[0].err)
}

func TestRegisterMetricsCallbacks_CreateError(t *testing.T) {
	db, recorder := setupCallbackDB(t)

	tag := domain.Tag{TagID: 1, TagText: "golang", Board: "coboard"}
	require.NoError(t, db.Create(&tag).Error)

	recorder.queries = nil

	dup := domain.Tag{TagID: 1, TagText: "other", Board: "coboard"}
	require.Error(t, db.Create(&dup).Error, "Expected duplicate key to fail")

	require.Len(t, recorder.queries, 1)
	assert.Equal(t, "insert", recorder.queries[0].operation)
	assert.Error(t, recorder.queries[0].err)
}

func TestRegisterMetricsCallbacks_TransactionRollback(t *testing.T) {
	db, recorder := setupCallbackDB(t)

	err := db.Transaction(func(tx *gorm.DB) error {
		tag := domain.Tag{TagText: "doomed", Board: "coboard"}
		if err := tx.Create(&tag).Error; err != nil {
			return err
		}
		return errors.New("forced rollback")
	})
	require.Error(t, err)

	// The insert inside the transaction is still reported
	assert.GreaterOrEqual(t, len(recorder.queries), 1)
}

func TestStartDBStatsCollector(t *testing.T) {
	db, recorder := setupCallbackDB(t)

	done := StartDBStatsCollector(db, recorder)
	defer close(done)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	recorder.UpdateDBStats(sqlDB.Stats())

	assert.Greater(t, recorder.statsCall, 0)
	if len(recorder.dbStats) > 0 {
		last := recorder.dbStats[len(recorder.dbStats)-1]
		assert.GreaterOrEqual(t, last.OpenConnections, 0)
		assert.GreaterOrEqual(t, last.InUse, 0)
	}
}

func TestStartDBStatsCollector_Shutdown(t *testing.T) {
	db, recorder := setupCallbackDB(t)

	done := StartDBStatsCollector(db, recorder)
	time.Sleep(20 * time.Millisecond)
	close(done)
	time.Sleep(20 * time.Millisecond)
	// Passes if the collector goroutine exits without panic or deadlock
}
