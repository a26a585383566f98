package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"seed-manager/core/database"
	"seed-manager/core/ingest"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrTableNotFound is returned when the target table has no columns.
	ErrTableNotFound = errors.New("table not found")
	// ErrUnknownColumns is returned when records carry keys the table lacks.
	ErrUnknownColumns = errors.New("records contain unknown columns")
)

// Plan describes what Seed would do.
type Plan struct {
	Table   string   `json:"table"`
	Rows    int      `json:"rows"`
	Batches int      `json:"batches"`
	Columns []string `json:"columns"`
	Unknown []string `json:"unknown,omitempty"`
}

// ProgressFunc is called after every inserted batch with the number of rows
// inserted so far.
type ProgressFunc func(inserted int)

// Service inserts record sets into database tables.
type Service struct {
	db     *gorm.DB
	cfg    Config
	logger *zap.Logger
}

// NewService creates a new seed service.
func NewService(db *gorm.DB, cfg Config, logger *zap.Logger) *Service {
	return &Service{db: db, cfg: cfg, logger: logger}
}

// Plan compares the record keys with the columns of table.
func (s *Service) Plan(ctx context.Context, table string, records ingest.RecordSet) (*Plan, error) {
	columns, err := database.GetTableColumns(s.db.WithContext(ctx), table)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%s: %w", table, ErrTableNotFound)
	}

	known := database.ColumnSet(columns)
	plan := &Plan{
		Table:   table,
		Rows:    len(records),
		Batches: (len(records) + s.cfg.batchSize() - 1) / s.cfg.batchSize(),
	}
	for _, key := range records.Keys() {
		if _, ok := known[strings.ToLower(key)]; ok {
			plan.Columns = append(plan.Columns, key)
		} else {
			plan.Unknown = append(plan.Unknown, key)
		}
	}
	return plan, nil
}

// Seed inserts records into table in one transaction, BatchSize rows per
// statement. Nothing is inserted when any batch fails. It returns the number
// of rows inserted.
func (s *Service) Seed(ctx context.Context, table string, records ingest.RecordSet, progress ProgressFunc) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	plan, err := s.Plan(ctx, table, records)
	if err != nil {
		return 0, err
	}
	if len(plan.Unknown) > 0 {
		if !s.cfg.AllowUnknownColumns {
			return 0, fmt.Errorf("%w: %s", ErrUnknownColumns, strings.Join(plan.Unknown, ", "))
		}
		s.logger.Warn("Dropping unknown columns", zap.String("table", table), zap.Strings("columns", plan.Unknown))
	}

	rows := records.Maps()
	for _, row := range rows {
		for _, key := range plan.Unknown {
			delete(row, key)
		}
	}

	batch := s.cfg.batchSize()
	inserted := 0
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for start := 0; start < len(rows); start += batch {
			end := min(start+batch, len(rows))
			if err := tx.Table(table).Create(rows[start:end]).Error; err != nil {
				return fmt.Errorf("insert rows %d-%d: %w", start+1, end, err)
			}
			inserted = end
			if progress != nil {
				progress(inserted)
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to seed %s: %w", table, err)
	}

	s.logger.Info("Seeded table", zap.String("table", table), zap.Int("rows", inserted), zap.Int("batches", plan.Batches))
	return inserted, nil
}
