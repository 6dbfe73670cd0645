package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"coboard-api/internal/domain"
)

// modelInfo pairs a domain model with its table name for logging
type modelInfo struct {
	model     interface{}
	tableName string
}

// migrationModels lists every table in dependency order: users first, then
// content, then the join/marker tables that reference them.
func migrationModels() []modelInfo {
	return []modelInfo{
		{&domain.SEUser{}, "se_user"},
		{&domain.AnonymousUser{}, "anonymous_user"},
		{&domain.Forum{}, "forum"},
		{&domain.Topic{}, "topic"},
		{&domain.Post{}, "post"},
		{&domain.Comment{}, "comment"},
		{&domain.Tag{}, "tag"},
		{&domain.ForumTopic{}, "forum_topic"},
		{&domain.TopicPost{}, "topic_post"},
		{&domain.PostComment{}, "post_comment"},
		{&domain.ForumTag{}, "forum_tag"},
		{&domain.SBookmark{}, "sbookmark"},
		{&domain.ABookmark{}, "abookmark"},
		{&domain.Access{}, "access"},
		{&domain.File{}, "file"},
	}
}

// AutoMigrate runs GORM auto-migration for all domain models
func AutoMigrate(db *gorm.DB) error {
	models := migrationModels()
	targets := make([]interface{}, len(models))
	for i, m := range models {
		targets[i] = m.model
	}
	if err := db.AutoMigrate(targets...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}

// SafeAutoMigrate migrates table by table, logging whether each table was
// created or only updated. Useful against databases that predate this
// service.
func SafeAutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()
	models := migrationModels()

	logger.Info("Starting safe auto-migration", zap.Int("total_models", len(models)))

	for _, m := range models {
		tableExists := migrator.HasTable(m.model)

		if err := db.AutoMigrate(m.model); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", m.tableName),
				zap.Bool("table_existed", tableExists),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", m.tableName, err)
		}

		logger.Info("Migrated table",
			zap.String("table", m.tableName),
			zap.Bool("was_existing", tableExists),
		)
	}

	logger.Info("Safe auto-migration completed", zap.Int("tables_migrated", len(models)))
	return nil
}
