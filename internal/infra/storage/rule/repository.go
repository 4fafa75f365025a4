package rule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueService/pkg/psqlbuilder"
)

var ruleColumns = []string{
	"id",
	"name",
	"kind",
	"calculation",
	"value",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога налогов и сборов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое правило в каталоге
func (r *Repository) Create(ctx context.Context, rule *domain.Rule) (*domain.Rule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("pricing_rules").
		Columns("name", "kind", "calculation", "value").
		Values(rule.Name, rule.Kind, rule.Calculation, rule.Value).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rule.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// GetByIDs получает правила каталога по набору идентификаторов
// Отсутствующие в каталоге id просто не попадают в результат - это не ошибка:
// правило могли удалить после того, как на него сослались в пакете или услуге.
// Результат упорядочен по id (порядок каталога).
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Rule, error) {
	if len(ids) == 0 {
		return []*domain.Rule{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("pricing_rules").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRules(rows)
}

// List получает все правила каталога, опционально фильтруя по виду (tax/fee)
func (r *Repository) List(ctx context.Context, kind *domain.RuleKind) ([]*domain.Rule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(ruleColumns...).
		From("pricing_rules").
		OrderBy("id ASC")

	if kind != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"kind": *kind})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRules(rows)
}

// Delete удаляет правило из каталога
// Ссылки на удалённое правило остаются в пакетах и услугах - калькулятор их игнорирует
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("pricing_rules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

func (r *Repository) scanRules(rows *sql.Rows) ([]*domain.Rule, error) {
	rules := make([]*domain.Rule, 0)

	for rows.Next() {
		var rule domain.Rule
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.ID,
			&rule.Name,
			&rule.Kind,
			&rule.Calculation,
			&rule.Value,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scan rule row: %v", ErrScanRow, err)
		}

		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time
		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rule rows: %v", ErrScanRow, err)
	}

	return rules, nil
}
