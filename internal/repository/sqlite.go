package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-pass-autofill/models"
	_ "github.com/mattn/go-sqlite3" // sqlite driver
)

const vaultEntriesTable = "vault_entries"

var vaultEntryColumns = []string{
	"id", "website", "username", "password",
	"password_salt", "password_iv", "password_tag", "is_decrypted",
}

// sqliteVaultRepository reads vault entries from the application's local
// SQLite database.
type sqliteVaultRepository struct {
	db *sql.DB
}

// NewSQLiteVaultRepository constructs a [VaultRepository] over an opened
// database handle. The caller owns the handle and runs migrations before
// passing it in.
func NewSQLiteVaultRepository(db *sql.DB) VaultRepository {
	return &sqliteVaultRepository{db: db}
}

// OpenVaultDB opens the SQLite vault database at path and verifies the
// connection.
func OpenVaultDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open vault db: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("ping vault db: %w", err)
	}
	return db, nil
}

// FindByID implements [VaultRepository].
func (r *sqliteVaultRepository) FindByID(ctx context.Context, id string) (models.VaultEntry, error) {
	query, args, err := sq.Select(vaultEntryColumns...).
		From(vaultEntriesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("build find-by-id query: %w", err)
	}

	entry, err := scanVaultEntry(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultEntry{}, ErrEntryNotFound
	}
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("query vault entry %s: %w", id, err)
	}

	return entry, nil
}

// FindAll implements [VaultRepository].
func (r *sqliteVaultRepository) FindAll(ctx context.Context) ([]models.VaultEntry, error) {
	query, args, err := sq.Select(vaultEntryColumns...).
		From(vaultEntriesTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find-all query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query vault entries: %w", err)
	}
	defer rows.Close()

	var entries []models.VaultEntry
	for rows.Next() {
		entry, err := scanVaultEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vault entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vault entries: %w", err)
	}

	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVaultEntry(row rowScanner) (models.VaultEntry, error) {
	var (
		entry         models.VaultEntry
		salt, iv, tag sql.NullString
	)
	err := row.Scan(
		&entry.ID, &entry.Website, &entry.Username, &entry.Password,
		&salt, &iv, &tag, &entry.IsDecrypted,
	)
	if err != nil {
		return models.VaultEntry{}, err
	}

	entry.PasswordSalt = salt.String
	entry.PasswordIV = iv.String
	entry.PasswordTag = tag.String

	return entry, nil
}
