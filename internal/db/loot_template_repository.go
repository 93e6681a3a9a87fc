package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/lootcore/internal/loot"
)

// ErrUnknownTable is returned for a table name outside loot.StoreNames.
var ErrUnknownTable = errors.New("unknown loot table")

var lootColumns = []string{
	"entry", "item", "chanceorquestchance", "groupid", "mincountorref",
	"maxcount", "freeforall", "lootcondition", "condition_value1", "condition_value2",
}

// LootTemplateRepository reads and writes *_loot_template tables.
type LootTemplateRepository struct {
	pool *pgxpool.Pool
}

// NewLootTemplateRepository creates a new loot template repository.
func NewLootTemplateRepository(pool *pgxpool.Pool) *LootTemplateRepository {
	return &LootTemplateRepository{pool: pool}
}

func checkTable(table string) error {
	if !slices.Contains(loot.StoreNames, table) {
		return fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
	return nil
}

// LoadRows returns every row of table ordered by entry, then insertion order.
func (r *LootTemplateRepository) LoadRows(ctx context.Context, table string) ([]loot.Row, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}

	// Имя таблицы из whitelist, безопасно подставлять
	query := `SELECT entry, item, chanceorquestchance::float8, groupid, mincountorref,
	                 maxcount, freeforall, lootcondition, condition_value1, condition_value2
	          FROM ` + pgx.Identifier{table}.Sanitize() + `
	          ORDER BY entry, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()

	var result []loot.Row
	for rows.Next() {
		var (
			row                         loot.Row
			group, maxCount, conditionK int16
		)
		if err := rows.Scan(
			&row.Entry, &row.Item, &row.ChanceOrQuestChance, &group, &row.MinCountOrRef,
			&maxCount, &row.FreeForAll, &conditionK, &row.ConditionValue1, &row.ConditionValue2,
		); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", table, err)
		}
		row.Group = uint8(group)
		row.MaxCount = uint8(maxCount)
		row.Condition = uint8(conditionK)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s rows: %w", table, err)
	}

	slog.Debug("loaded loot rows", "table", table, "rows", len(result))
	return result, nil
}

// InsertRows bulk-inserts rows into table using COPY.
func (r *LootTemplateRepository) InsertRows(ctx context.Context, table string, rows []loot.Row) error {
	if err := checkTable(table); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	data := make([][]any, 0, len(rows))
	for _, row := range rows {
		data = append(data, []any{
			row.Entry, row.Item, float32(row.ChanceOrQuestChance), int16(row.Group), row.MinCountOrRef,
			int16(row.MaxCount), row.FreeForAll, int16(row.Condition), row.ConditionValue1, row.ConditionValue2,
		})
	}

	_, err := r.pool.CopyFrom(ctx, pgx.Identifier{table}, lootColumns, pgx.CopyFromRows(data))
	if err != nil {
		return fmt.Errorf("copying rows into %s: %w", table, err)
	}
	return nil
}

// Truncate removes every row of table.
func (r *LootTemplateRepository) Truncate(ctx context.Context, table string) error {
	if err := checkTable(table); err != nil {
		return err
	}
	if _, err := r.pool.Exec(ctx, "TRUNCATE "+pgx.Identifier{table}.Sanitize()); err != nil {
		return fmt.Errorf("truncating %s: %w", table, err)
	}
	return nil
}
