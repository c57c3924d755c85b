package dbstorage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/andrewyi/pyparser/src/dbstorage/schema"
)

// SQLiteDBStorage 将缓存保存在单个sqlite文件中
type SQLiteDBStorage struct {
	db     *sql.DB
	dbPath string
}

func NewSQLiteDBStorage(dbPath string) (*SQLiteDBStorage, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	// sqlite只支持单个writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &SQLiteDBStorage{db: db, dbPath: dbPath}
	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return s, nil
}

func (s *SQLiteDBStorage) createTables() error {
	_, err := s.db.ExecContext(context.Background(), `
		CREATE TABLE IF NOT EXISTS responses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			url TEXT NOT NULL UNIQUE,
			status_code INTEGER NOT NULL DEFAULT 0,
			content BLOB,
			fetched_at INTEGER NOT NULL,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		)`)
	return err
}

func (s *SQLiteDBStorage) GetResponse(url string) (*schema.Response, error) {
	var (
		resp                            = &schema.Response{}
		fetchedAt, createdAt, updatedAt int64
	)
	err := s.db.QueryRowContext(context.Background(),
		`SELECT id, url, status_code, content, fetched_at, created_at, updated_at
		 FROM responses WHERE url = ?`, url,
	).Scan(&resp.ID, &resp.URL, &resp.StatusCode, &resp.Content, &fetchedAt, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDataNotExist
	}
	if err != nil {
		return nil, err
	}
	resp.FetchedAt = time.Unix(0, fetchedAt)
	resp.CreatedAt = time.Unix(0, createdAt)
	resp.UpdatedAt = time.Unix(0, updatedAt)
	return resp, nil
}

func (s *SQLiteDBStorage) SaveResponse(resp *schema.Response) error {
	now := time.Now()
	if resp.FetchedAt.IsZero() {
		resp.FetchedAt = now
	}
	_, err := s.db.ExecContext(context.Background(), `
		INSERT INTO responses (url, status_code, content, fetched_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			status_code = excluded.status_code,
			content = excluded.content,
			fetched_at = excluded.fetched_at,
			updated_at = excluded.updated_at`,
		resp.URL, resp.StatusCode, resp.Content,
		resp.FetchedAt.UnixNano(), now.UnixNano(), now.UnixNano(),
	)
	return err
}

func (s *SQLiteDBStorage) Clear() error {
	_, err := s.db.ExecContext(context.Background(), "DELETE FROM responses")
	return err
}

func (s *SQLiteDBStorage) Close() error {
	return s.db.Close()
}
