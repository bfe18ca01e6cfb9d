package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/tkonduri/LegalAPI/internal/config"
	"github.com/tkonduri/LegalAPI/internal/domain/docModel"
	"github.com/tkonduri/LegalAPI/pkg/logger_i"
)

// Fixed-width timestamp layout so lexicographic ORDER BY matches
// chronological order.
const dateLayout = "2006-01-02T15:04:05.000000000Z"

const historySchema = `
CREATE TABLE IF NOT EXISTS analysis_history (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	document_name TEXT NOT NULL,
	analysis_date TEXT NOT NULL,
	document_type TEXT,
	word_count INTEGER,
	original_language TEXT,
	target_language TEXT,
	summary TEXT
);
CREATE INDEX IF NOT EXISTS idx_history_user ON analysis_history (user_id, analysis_date DESC);
`

// SQLiteHistoryStore persists one row per completed analysis. Entries are
// write-once; there is no update path.
type SQLiteHistoryStore struct {
	db     *sql.DB
	logger *logger_i.Logger
}

// NewSQLiteHistoryStore opens (or creates) the history database under dataDir.
// WAL mode keeps concurrent per-user inserts from blocking reads.
func NewSQLiteHistoryStore(dataDir string) (*SQLiteHistoryStore, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "legal_analyzer.db")
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}

	return &SQLiteHistoryStore{
		db:     db,
		logger: logger_i.NewLogger("HistoryStore"),
	}, nil
}

func (s *SQLiteHistoryStore) SaveEntry(ctx context.Context, entry docModel.HistoryEntry) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "entry Id", entry.Id)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO analysis_history
			(id, user_id, document_name, analysis_date, document_type,
			 word_count, original_language, target_language, summary)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.Id,
		entry.UserId,
		entry.DocumentName,
		entry.AnalysisDate.UTC().Format(dateLayout),
		entry.DocumentType,
		entry.WordCount,
		entry.OriginalLanguage,
		entry.TargetLanguage,
		entry.Summary,
	)
	if err != nil {
		return fmt.Errorf("saving history entry: %w", err)
	}
	log.Debug("Saved history entry")
	return nil
}

func (s *SQLiteHistoryStore) ListRecent(ctx context.Context, userId string, limit int) ([]docModel.HistoryEntry, error) {
	if limit <= 0 {
		limit = config.HistoryListLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, document_name, analysis_date, document_type,
		       word_count, original_language, target_language, summary
		FROM analysis_history
		WHERE user_id = ?
		ORDER BY analysis_date DESC
		LIMIT ?`,
		userId, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	entries := []docModel.HistoryEntry{}
	for rows.Next() {
		var entry docModel.HistoryEntry
		var rawDate string
		if err := rows.Scan(
			&entry.Id,
			&entry.UserId,
			&entry.DocumentName,
			&rawDate,
			&entry.DocumentType,
			&entry.WordCount,
			&entry.OriginalLanguage,
			&entry.TargetLanguage,
			&entry.Summary,
		); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		entry.AnalysisDate, _ = time.Parse(dateLayout, rawDate)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *SQLiteHistoryStore) Close() error {
	return s.db.Close()
}
