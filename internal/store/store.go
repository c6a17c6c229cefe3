package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"draftsmith/internal/core"
)

// Store persists generation sessions in a SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// Session is a row-level summary of a saved generation run.
type Session struct {
	ID          string
	CreatedAt   time.Time
	SourceChars int
	Duration    time.Duration
	Articles    int
}

// NewStore opens (creating if needed) the database under dataDir.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "draftsmith.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{
		db:   db,
		path: dbPath,
	}

	if err := store.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return store, nil
}

// initialize creates the necessary tables
func (s *Store) initialize() error {
	sessionsTable := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		created_at DATETIME,
		source_chars INTEGER,
		duration_ms INTEGER,
		topics_json TEXT
	);`

	articlesTable := `
	CREATE TABLE IF NOT EXISTS articles (
		id TEXT PRIMARY KEY,
		session_id TEXT,
		position INTEGER,
		title TEXT,
		format TEXT,
		content TEXT,
		word_count INTEGER,
		quality_score REAL,
		FOREIGN KEY (session_id) REFERENCES sessions (id)
	);`

	tables := []string{sessionsTable, articlesTable}
	for _, table := range tables {
		if _, err := s.db.Exec(table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveResult stores a generation run and its articles.
func (s *Store) SaveResult(result core.GenerationResult) error {
	topicsJSON, err := json.Marshal(result.Topics)
	if err != nil {
		return fmt.Errorf("failed to encode topics: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
	INSERT OR REPLACE INTO sessions (id, created_at, source_chars, duration_ms, topics_json)
	VALUES (?, ?, ?, ?, ?)`,
		result.ID,
		result.CreatedAt,
		len(result.SourceText),
		result.Duration.Milliseconds(),
		string(topicsJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	for i, article := range result.Articles {
		_, err = tx.Exec(`
		INSERT OR REPLACE INTO articles (id, session_id, position, title, format, content, word_count, quality_score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			article.ID,
			result.ID,
			i,
			article.Title,
			string(article.Format),
			article.Content,
			article.WordCount,
			article.QualityScore,
		)
		if err != nil {
			return fmt.Errorf("failed to save article %s: %w", article.ID, err)
		}
	}

	return tx.Commit()
}

// ListSessions returns saved sessions, newest first.
func (s *Store) ListSessions() ([]Session, error) {
	rows, err := s.db.Query(`
	SELECT s.id, s.created_at, s.source_chars, s.duration_ms, COUNT(a.id)
	FROM sessions s
	LEFT JOIN articles a ON a.session_id = s.id
	GROUP BY s.id
	ORDER BY s.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var durationMs int64
		if err := rows.Scan(&sess.ID, &sess.CreatedAt, &sess.SourceChars, &durationMs, &sess.Articles); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sess.Duration = time.Duration(durationMs) * time.Millisecond
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// GetResult loads a saved session and its articles by ID.
func (s *Store) GetResult(id string) (*core.GenerationResult, error) {
	var result core.GenerationResult
	var durationMs int64
	var sourceChars int
	var topicsJSON string

	err := s.db.QueryRow(`
	SELECT id, created_at, source_chars, duration_ms, topics_json
	FROM sessions WHERE id = ?`, id).
		Scan(&result.ID, &result.CreatedAt, &sourceChars, &durationMs, &topicsJSON)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	result.Duration = time.Duration(durationMs) * time.Millisecond

	if topicsJSON != "" && topicsJSON != "null" {
		var topics core.TopicAnalysis
		if err := json.Unmarshal([]byte(topicsJSON), &topics); err != nil {
			return nil, fmt.Errorf("failed to decode topics: %w", err)
		}
		result.Topics = &topics
	}

	rows, err := s.db.Query(`
	SELECT id, title, format, content, word_count, quality_score
	FROM articles WHERE session_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a core.Article
		var format string
		if err := rows.Scan(&a.ID, &a.Title, &format, &a.Content, &a.WordCount, &a.QualityScore); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		a.Format = core.Format(format)
		a.CreatedAt = result.CreatedAt
		result.Articles = append(result.Articles, a)
	}
	return &result, rows.Err()
}
