// Package stats aggregates the CSV history logs with DuckDB.
package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
)

const (
	resultsRelation  = "exam_results"
	questionRelation = "question_history"
)

const resultsColumns = `{'Date': 'VARCHAR', 'Correct': 'INTEGER', 'Total': 'INTEGER', 'Score': 'INTEGER', 'Result': 'VARCHAR'}`

const questionColumns = `{'date': 'VARCHAR', 'exam_id': 'VARCHAR', 'qid': 'VARCHAR', 'question': 'VARCHAR', 'your_answer': 'VARCHAR', 'correct_answer': 'VARCHAR', 'is_correct': 'INTEGER'}`

const emptyResultsDDL = `CREATE TABLE exam_results (Date VARCHAR, Correct INTEGER, Total INTEGER, Score INTEGER, Result VARCHAR)`

const emptyQuestionDDL = `CREATE TABLE question_history (date VARCHAR, exam_id VARCHAR, qid VARCHAR, question VARCHAR, your_answer VARCHAR, correct_answer VARCHAR, is_correct INTEGER)`

// Store is an in-memory DuckDB database with views over the history logs.
type Store struct {
	db *sql.DB
}

// Open creates a store exposing the summary and detail logs as relations.
// Missing or empty logs are exposed as empty tables.
func Open(ctx context.Context, summaryPath, detailPath string) (*Store, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping duckdb: %w", err)
	}
	store := &Store{db: db}
	if err := store.attach(ctx, resultsRelation, summaryPath, resultsColumns, emptyResultsDDL); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := store.attach(ctx, questionRelation, detailPath, questionColumns, emptyQuestionDDL); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) attach(ctx context.Context, name, path, columns, emptyDDL string) error {
	present, err := hasData(path)
	if err != nil {
		return err
	}
	statement := emptyDDL
	if present {
		statement = fmt.Sprintf(
			"CREATE VIEW %s AS SELECT * FROM read_csv(%s, header = true, quote = '\"', escape = '\"', columns = %s)",
			name, quoteLiteral(path), columns,
		)
	}
	if _, err := s.db.ExecContext(ctx, statement); err != nil {
		return fmt.Errorf("attach %s: %w", name, err)
	}
	return nil
}

// hasData reports whether path exists and is non-empty.
func hasData(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s is a directory", path)
	}
	return info.Size() > 0, nil
}

// quoteLiteral renders s as a SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
