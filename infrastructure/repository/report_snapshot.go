package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Kyosue/vetra/infrastructure/database/postgres"
	"github.com/Kyosue/vetra/internal/domain"
	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const reportSnapshotsTable = "report_snapshots"

type ReportSnapshotRepository interface {
	GetByDate(date time.Time) (*domain.ReportSnapshotEntry, error)
	SaveOrUpdate(entry *domain.ReportSnapshotEntry) error
	DeleteOlderThan(days int) (int64, error)
}

type reportSnapshotRepository struct {
	conn *postgres.Connection
}

func NewReportSnapshotRepository(conn *postgres.Connection) ReportSnapshotRepository {
	return &reportSnapshotRepository{
		conn: conn,
	}
}

func (r *reportSnapshotRepository) GetByDate(date time.Time) (*domain.ReportSnapshotEntry, error) {
	query, args, err := squirrel.
		Select("id", "date", "aggregate", "created_at", "updated_at").
		From(reportSnapshotsTable).
		Where(squirrel.Eq{"date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var entry domain.ReportSnapshotEntry
	var aggregateJSON []byte

	err = r.conn.QueryRow(query, args...).Scan(
		&entry.ID,
		&entry.Date,
		&aggregateJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar snapshot: %w", err)
	}

	if len(aggregateJSON) > 0 {
		entry.Aggregate = &domain.ReportAggregate{}
		if err := json.Unmarshal(aggregateJSON, entry.Aggregate); err != nil {
			return nil, fmt.Errorf("erro ao desserializar agregado do snapshot: %w", err)
		}
	}

	return &entry, nil
}

func (r *reportSnapshotRepository) SaveOrUpdate(entry *domain.ReportSnapshotEntry) error {
	var aggregateJSON []byte
	var err error

	if entry.Aggregate != nil {
		aggregateJSON, err = json.Marshal(entry.Aggregate)
		if err != nil {
			return fmt.Errorf("erro ao serializar agregado para JSON: %w", err)
		}
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(reportSnapshotsTable).
		Columns("date", "aggregate").
		Values(entry.Date.Format(time.DateOnly), aggregateJSON).
		Suffix(`
			ON CONFLICT (date) DO UPDATE SET
				aggregate = EXCLUDED.aggregate,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao salvar snapshot: %w", err)
	}

	return nil
}

func (r *reportSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	query, args, err := squirrel.
		Delete(reportSnapshotsTable).
		Where(squirrel.Expr("date < NOW() - (? || ' days')::interval", days)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover snapshots antigos: %w", err)
	}

	return result.RowsAffected()
}
