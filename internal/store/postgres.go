package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/glowstudio/landing-builder/internal/models"
)

// PostgresBackend stores documents as jsonb rows and users in a plain table.
type PostgresBackend struct {
	db *gorm.DB
}

func NewPostgresBackend(dsn string) (*PostgresBackend, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.StoredDocument{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &PostgresBackend{db: db}, nil
}

func (b *PostgresBackend) LoadDocument(ctx context.Context, userID string) (*models.LandingPageData, bool, error) {
	var row models.StoredDocument
	if err := b.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&row).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var doc models.LandingPageData
	if err := json.Unmarshal([]byte(row.Payload), &doc); err != nil {
		return nil, false, fmt.Errorf("decode document for %s: %w", userID, err)
	}
	return &doc, true, nil
}

func (b *PostgresBackend) SaveDocument(ctx context.Context, userID string, doc *models.LandingPageData) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document for %s: %w", userID, err)
	}

	row := models.StoredDocument{
		UserID:  userID,
		Payload: string(payload),
	}

	return b.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&row).Error
}

func (b *PostgresBackend) LoadUserByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	var user models.User
	if err := b.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &user, true, nil
}

func (b *PostgresBackend) LoadUserByID(ctx context.Context, id string) (*models.User, bool, error) {
	var user models.User
	if err := b.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &user, true, nil
}

func (b *PostgresBackend) SaveUser(ctx context.Context, user *models.User) error {
	return b.db.WithContext(ctx).Create(user).Error
}
