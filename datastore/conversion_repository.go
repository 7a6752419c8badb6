package datastore

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/color-game/colorimetry/models"
)

type ConversionRepository interface {
	Create(conversion models.Conversion) (models.Conversion, error)
	GetByID(id string) (models.Conversion, error)
	GetRecent(limit int) ([]models.Conversion, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type ConversionDatabase struct {
	database *sql.DB
}

func NewConversionDatabase(db *sql.DB) (ConversionDatabase, error) {
	if db == nil {
		return ConversionDatabase{}, fmt.Errorf("conversion database needs a connection")
	}
	return ConversionDatabase{database: db}, nil
}

// Create inserts a conversion record
func (cdb ConversionDatabase) Create(conversion models.Conversion) (models.Conversion, error) {
	db := cdb.database

	sqlStatement := `
		INSERT INTO conversions (id, input, source_format, target_format, output, succeeded, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := db.Exec(
		sqlStatement,
		conversion.ID,
		conversion.Input,
		conversion.SourceFormat,
		conversion.TargetFormat,
		conversion.Output,
		conversion.Succeeded,
		conversion.Error,
		conversion.CreatedAt,
	)
	if err != nil {
		return models.Conversion{}, fmt.Errorf("failed to create conversion: %w", err)
	}

	return conversion, nil
}

// GetByID retrieves a single conversion record
func (cdb ConversionDatabase) GetByID(id string) (models.Conversion, error) {
	db := cdb.database

	sqlStatement := `
		SELECT id, input, source_format, target_format, output, succeeded, error, created_at
		FROM conversions
		WHERE id = $1`

	conversion, scanErr := scanConversion(db.QueryRow(sqlStatement, id))
	switch {
	case errors.Is(scanErr, sql.ErrNoRows):
		return models.Conversion{}, NoRowsError{true, scanErr}
	case scanErr != nil:
		return models.Conversion{}, fmt.Errorf("failed to get conversion %s: %w", id, scanErr)
	default:
		return conversion, nil
	}
}

// GetRecent returns the newest records first
func (cdb ConversionDatabase) GetRecent(limit int) ([]models.Conversion, error) {
	db := cdb.database

	sqlStatement := `
		SELECT id, input, source_format, target_format, output, succeeded, error, created_at
		FROM conversions
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := db.Query(sqlStatement, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent conversions: %w", err)
	}
	defer rows.Close()

	conversions := []models.Conversion{}
	for rows.Next() {
		conversion, err := scanConversion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conversion: %w", err)
		}
		conversions = append(conversions, conversion)
	}

	return conversions, rows.Err()
}

// DeleteOlderThan removes records created before cutoff and reports how many went
func (cdb ConversionDatabase) DeleteOlderThan(cutoff time.Time) (int64, error) {
	db := cdb.database

	result, err := db.Exec(`DELETE FROM conversions WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete conversions: %w", err)
	}

	return result.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConversion(row rowScanner) (models.Conversion, error) {
	var conversion models.Conversion
	err := row.Scan(
		&conversion.ID,
		&conversion.Input,
		&conversion.SourceFormat,
		&conversion.TargetFormat,
		&conversion.Output,
		&conversion.Succeeded,
		&conversion.Error,
		&conversion.CreatedAt,
	)
	return conversion, err
}
