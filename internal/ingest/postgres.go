package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/chrisdamba/dispatchlens/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderRepository loads and stores raw order exports in Postgres, for teams
// that land courier exports in a warehouse table instead of passing CSV
// files around.
type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// ConnString assembles a pgx connection string from database settings.
func ConnString(cfg models.DatabaseConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, cfg.SSLMode,
	)
}

func (r *OrderRepository) BulkCreate(ctx context.Context, orders []models.OrderRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	stmt := `
        INSERT INTO order_exports (
            order_number, customer, delivery_hub, picked_on,
            first_attempted_on, delivered_on, latest_out_for_delivery_on,
            last_attempted_on
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	for _, o := range orders {
		_, err = tx.Exec(ctx, stmt,
			o.OrderNumber,
			o.Customer,
			o.DeliveryHub,
			o.PickedOn,
			o.FirstAttemptedOn,
			o.DeliveredOn,
			o.LatestOutForDeliveryOn,
			o.LastAttemptedOn,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetAll returns every export row. The analysis needs rows outside the
// selected range too (the next-day pickup window starts a day earlier), so
// the usual load path is the whole table.
func (r *OrderRepository) GetAll(ctx context.Context) (*LoadResult, error) {
	return r.query(ctx, `
        SELECT
            order_number, customer, COALESCE(delivery_hub, ''), picked_on,
            first_attempted_on, delivered_on, latest_out_for_delivery_on,
            last_attempted_on
        FROM order_exports`)
}

// GetByPickupRange returns rows picked up between from and to, inclusive.
func (r *OrderRepository) GetByPickupRange(ctx context.Context, from, to time.Time) (*LoadResult, error) {
	return r.query(ctx, `
        SELECT
            order_number, customer, COALESCE(delivery_hub, ''), picked_on,
            first_attempted_on, delivered_on, latest_out_for_delivery_on,
            last_attempted_on
        FROM order_exports
        WHERE picked_on >= $1 AND picked_on < $2`,
		from, to.AddDate(0, 0, 1))
}

func (r *OrderRepository) query(ctx context.Context, sql string, args ...any) (*LoadResult, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := &LoadResult{}
	for rows.Next() {
		var o models.OrderRecord
		err := rows.Scan(
			&o.OrderNumber,
			&o.Customer,
			&o.DeliveryHub,
			&o.PickedOn,
			&o.FirstAttemptedOn,
			&o.DeliveredOn,
			&o.LatestOutForDeliveryOn,
			&o.LastAttemptedOn,
		)
		if err != nil {
			return nil, err
		}
		result.Orders = append(result.Orders, o)
		result.observePickup(o.PickedOn)
	}
	return result, rows.Err()
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM order_exports").Scan(&count)
	return count, err
}

func (r *OrderRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE order_exports")
	return err
}
