package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/govalues/decimal"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/peter-kozarec/stationarity/pkg/common"
	"github.com/peter-kozarec/stationarity/pkg/utility"
)

const (
	sourceName = "data.duckdb"

	// DefaultRelation reads bars from one table per symbol.
	DefaultRelation = "%s_bars"
)

var symbolPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

type Reader struct {
	dataSourceName string
	relation       string
	db             *sql.DB
}

// NewReader creates a reader over dataSourceName ("" for in-memory). Every %s in
// relation is replaced by the symbol, e.g. "%s_bars" or
// "read_csv_auto('data/%s.csv')". The relation must expose ts and close columns.
func NewReader(dataSourceName, relation string) *Reader {
	if relation == "" {
		relation = DefaultRelation
	}
	return &Reader{
		dataSourceName: dataSourceName,
		relation:       relation,
	}
}

func (r *Reader) Connect() error {
	db, err := sql.Open("duckdb", r.dataSourceName)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	r.db = db
	return nil
}

func (r *Reader) Close() {
	if r.db != nil {
		_ = r.db.Close()
	}
}

func (r *Reader) query(symbol string) (string, error) {
	if !symbolPattern.MatchString(symbol) {
		return "", fmt.Errorf("invalid symbol %q", symbol)
	}
	relation := strings.ReplaceAll(r.relation, "%s", symbol)
	return fmt.Sprintf(`SELECT ts::TIMESTAMP, close::DOUBLE FROM %s WHERE ts BETWEEN ? AND ? ORDER BY ts`, relation), nil
}

// LoadSamples passes the closes of symbol within [from, to] to handler, oldest first.
func (r *Reader) LoadSamples(ctx context.Context, symbol string, from, to time.Time, handler func(common.Sample) error) error {
	query, err := r.query(symbol)
	if err != nil {
		return err
	}

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return fmt.Errorf("error preparing query: %w", err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	for rows.Next() {
		var ts time.Time
		var closePrice float64
		if err := rows.Scan(&ts, &closePrice); err != nil {
			return fmt.Errorf("error scanning row: %w", err)
		}

		value, err := decimal.NewFromFloat64(closePrice)
		if err != nil {
			return fmt.Errorf("error converting close %v: %w", closePrice, err)
		}

		sample := common.Sample{
			Source:      sourceName,
			Symbol:      symbol,
			ExecutionId: utility.GetExecutionID(),
			TimeStamp:   ts,
			Value:       value,
		}
		if err := handler(sample); err != nil {
			return fmt.Errorf("error processing sample: %w", err)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error scanning rows: %w", err)
	}

	return nil
}
