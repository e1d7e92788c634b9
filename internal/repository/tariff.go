package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"delivery-fee-service/internal/domain"
	"delivery-fee-service/internal/ports/tarifftx"
)

// NUMERIC and TIME columns are selected as text: decimal.Decimal scans text,
// and stored windows stay in their textual form until the engine parses them.

// TariffRepo stores distance tiers, weight tiers, time windows and settings.
type TariffRepo struct {
	db *pgxpool.Pool
}

// NewTariffRepo creates a new TariffRepo.
func NewTariffRepo(db *pgxpool.Pool) *TariffRepo {
	return &TariffRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *TariffRepo) WithTx(ctx context.Context, fn func(tx tarifftx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&TariffTx{tx: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// ListDistanceTiers returns all distance tiers ordered by start.
func (r *TariffRepo) ListDistanceTiers(ctx context.Context) ([]domain.DistanceTier, error) {
	return listDistanceTiers(ctx, r.db)
}

// ListWeightTiers returns all weight tiers ordered by lower bound.
func (r *TariffRepo) ListWeightTiers(ctx context.Context) ([]domain.WeightTier, error) {
	return listWeightTiers(ctx, r.db)
}

// ListWindows returns all windows of kind ordered by start time.
func (r *TariffRepo) ListWindows(ctx context.Context, kind domain.WindowKind) ([]domain.TimeWindow, error) {
	return listWindows(ctx, r.db, kind)
}

// DeleteDistanceTier deletes a tier and reports whether it existed.
func (r *TariffRepo) DeleteDistanceTier(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, tarifftx.TableDistanceTiers, id)
}

// DeleteWeightTier deletes a tier and reports whether it existed.
func (r *TariffRepo) DeleteWeightTier(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, tarifftx.TableWeightTiers, id)
}

// DeleteWindow deletes a window and reports whether it existed.
func (r *TariffRepo) DeleteWindow(ctx context.Context, kind domain.WindowKind, id int64) (bool, error) {
	table, ok := tarifftx.WindowTable(kind)
	if !ok {
		return false, fmt.Errorf("unknown window kind %q", kind)
	}
	return deleteByID(ctx, r.db, table, id)
}

// LatestSettings returns the most recent settings row, or nil when there is none.
func (r *TariffRepo) LatestSettings(ctx context.Context) (*domain.DeliverySettings, error) {
	return latestSettings(ctx, r.db)
}

// InsertSettings appends a settings row; it becomes the current one.
func (r *TariffRepo) InsertSettings(ctx context.Context, s *domain.DeliverySettings) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO delivery_settings (minimum_fee, weather_fee, priority_percentage)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `, s.MinimumFee, s.WeatherFee, s.PriorityPercentage).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert settings: %w", err)
	}
	return nil
}

// LoadSnapshot reads the whole configuration in one read-only repeatable-read
// transaction, so a quote never mixes rows from two admin writes.
func (r *TariffRepo) LoadSnapshot(ctx context.Context) (domain.TariffSnapshot, error) {
	var snap domain.TariffSnapshot

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return snap, fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	settings, err := latestSettings(ctx, tx)
	if err != nil {
		return snap, err
	}
	snap.Settings = domain.DefaultSettings()
	if settings != nil {
		snap.Settings = *settings
	}
	if snap.DistanceTiers, err = listDistanceTiers(ctx, tx); err != nil {
		return snap, err
	}
	if snap.WeightTiers, err = listWeightTiers(ctx, tx); err != nil {
		return snap, err
	}
	if snap.PeakWindows, err = listWindows(ctx, tx, domain.WindowPeak); err != nil {
		return snap, err
	}
	if snap.NightWindows, err = listWindows(ctx, tx, domain.WindowNight); err != nil {
		return snap, err
	}

	if err := tx.Commit(ctx); err != nil {
		return snap, fmt.Errorf("commit snapshot tx: %w", err)
	}
	return snap, nil
}

// TariffTx is the tariff store bound to one write transaction.
type TariffTx struct {
	tx pgx.Tx
}

// Lock takes a table lock that conflicts with other writers but not with readers.
func (t *TariffTx) Lock(ctx context.Context, table tarifftx.Table) error {
	if !knownTable(table) {
		return fmt.Errorf("lock: unknown table %q", table)
	}
	if _, err := t.tx.Exec(ctx, fmt.Sprintf(`LOCK TABLE %s IN SHARE ROW EXCLUSIVE MODE`, table)); err != nil {
		return fmt.Errorf("lock %s: %w", table, err)
	}
	return nil
}

// ListDistanceTiers lists distance tiers inside the transaction.
func (t *TariffTx) ListDistanceTiers(ctx context.Context) ([]domain.DistanceTier, error) {
	return listDistanceTiers(ctx, t.tx)
}

// InsertDistanceTier inserts a tier and sets its ID.
func (t *TariffTx) InsertDistanceTier(ctx context.Context, d *domain.DistanceTier) error {
	err := t.tx.QueryRow(ctx, `
        INSERT INTO distance_tiers (start_km, end_km, price_per_km)
        VALUES ($1, $2, $3)
        RETURNING id
    `, d.StartKm, d.EndKm, d.PricePerKm).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("insert distance tier: %w", err)
	}
	return nil
}

// UpdateDistanceTier updates a tier and reports whether it existed.
func (t *TariffTx) UpdateDistanceTier(ctx context.Context, d domain.DistanceTier) (bool, error) {
	ct, err := t.tx.Exec(ctx, `
        UPDATE distance_tiers
        SET start_km = $2, end_km = $3, price_per_km = $4, updated_at = now()
        WHERE id = $1
    `, d.ID, d.StartKm, d.EndKm, d.PricePerKm)
	if err != nil {
		return false, fmt.Errorf("update distance tier %d: %w", d.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// ListWeightTiers lists weight tiers inside the transaction.
func (t *TariffTx) ListWeightTiers(ctx context.Context) ([]domain.WeightTier, error) {
	return listWeightTiers(ctx, t.tx)
}

// InsertWeightTier inserts a tier and sets its ID.
func (t *TariffTx) InsertWeightTier(ctx context.Context, w *domain.WeightTier) error {
	err := t.tx.QueryRow(ctx, `
        INSERT INTO weight_tiers (min_kg, max_kg, fee_amount)
        VALUES ($1, $2, $3)
        RETURNING id
    `, w.MinKg, w.MaxKg, w.FeeAmount).Scan(&w.ID)
	if err != nil {
		return fmt.Errorf("insert weight tier: %w", err)
	}
	return nil
}

// UpdateWeightTier updates a tier and reports whether it existed.
func (t *TariffTx) UpdateWeightTier(ctx context.Context, w domain.WeightTier) (bool, error) {
	ct, err := t.tx.Exec(ctx, `
        UPDATE weight_tiers
        SET min_kg = $2, max_kg = $3, fee_amount = $4, updated_at = now()
        WHERE id = $1
    `, w.ID, w.MinKg, w.MaxKg, w.FeeAmount)
	if err != nil {
		return false, fmt.Errorf("update weight tier %d: %w", w.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// ListWindows lists windows of kind inside the transaction.
func (t *TariffTx) ListWindows(ctx context.Context, kind domain.WindowKind) ([]domain.TimeWindow, error) {
	return listWindows(ctx, t.tx, kind)
}

// InsertWindow inserts a window into its kind's table and sets its ID.
func (t *TariffTx) InsertWindow(ctx context.Context, w *domain.TimeWindow) error {
	table, ok := tarifftx.WindowTable(w.Kind)
	if !ok {
		return fmt.Errorf("insert window: unknown kind %q", w.Kind)
	}
	err := t.tx.QueryRow(ctx, fmt.Sprintf(`
        INSERT INTO %s (start_time, end_time, percentage)
        VALUES ($1::time, $2::time, $3)
        RETURNING id
    `, table), w.Start, w.End, w.Percentage).Scan(&w.ID)
	if err != nil {
		return fmt.Errorf("insert %s window: %w", w.Kind, err)
	}
	return nil
}

// UpdateWindow updates a window and reports whether it existed.
func (t *TariffTx) UpdateWindow(ctx context.Context, w domain.TimeWindow) (bool, error) {
	table, ok := tarifftx.WindowTable(w.Kind)
	if !ok {
		return false, fmt.Errorf("update window: unknown kind %q", w.Kind)
	}
	ct, err := t.tx.Exec(ctx, fmt.Sprintf(`
        UPDATE %s
        SET start_time = $2::time, end_time = $3::time, percentage = $4, updated_at = now()
        WHERE id = $1
    `, table), w.ID, w.Start, w.End, w.Percentage)
	if err != nil {
		return false, fmt.Errorf("update %s window %d: %w", w.Kind, w.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

func knownTable(t tarifftx.Table) bool {
	switch t {
	case tarifftx.TableDistanceTiers, tarifftx.TableWeightTiers, tarifftx.TablePeakHours, tarifftx.TableNightHours:
		return true
	}
	return false
}

func listDistanceTiers(ctx context.Context, q querier) ([]domain.DistanceTier, error) {
	rows, err := q.Query(ctx, `
        SELECT id, start_km::text, end_km::text, price_per_km::text
        FROM distance_tiers
        ORDER BY start_km, id
    `)
	if err != nil {
		return nil, fmt.Errorf("list distance tiers: %w", err)
	}
	defer rows.Close()

	var out []domain.DistanceTier
	for rows.Next() {
		var d domain.DistanceTier
		if err := rows.Scan(&d.ID, &d.StartKm, &d.EndKm, &d.PricePerKm); err != nil {
			return nil, fmt.Errorf("scan distance tier: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func listWeightTiers(ctx context.Context, q querier) ([]domain.WeightTier, error) {
	rows, err := q.Query(ctx, `
        SELECT id, min_kg::text, max_kg::text, fee_amount::text
        FROM weight_tiers
        ORDER BY min_kg, id
    `)
	if err != nil {
		return nil, fmt.Errorf("list weight tiers: %w", err)
	}
	defer rows.Close()

	var out []domain.WeightTier
	for rows.Next() {
		var w domain.WeightTier
		if err := rows.Scan(&w.ID, &w.MinKg, &w.MaxKg, &w.FeeAmount); err != nil {
			return nil, fmt.Errorf("scan weight tier: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func listWindows(ctx context.Context, q querier, kind domain.WindowKind) ([]domain.TimeWindow, error) {
	table, ok := tarifftx.WindowTable(kind)
	if !ok {
		return nil, fmt.Errorf("list windows: unknown kind %q", kind)
	}
	rows, err := q.Query(ctx, fmt.Sprintf(`
        SELECT id, start_time::text, end_time::text, percentage::text
        FROM %s
        ORDER BY start_time, id
    `, table))
	if err != nil {
		return nil, fmt.Errorf("list %s windows: %w", kind, err)
	}
	defer rows.Close()

	var out []domain.TimeWindow
	for rows.Next() {
		w := domain.TimeWindow{Kind: kind}
		if err := rows.Scan(&w.ID, &w.Start, &w.End, &w.Percentage); err != nil {
			return nil, fmt.Errorf("scan %s window: %w", kind, err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func latestSettings(ctx context.Context, q querier) (*domain.DeliverySettings, error) {
	var s domain.DeliverySettings
	err := q.QueryRow(ctx, `
        SELECT id, minimum_fee, weather_fee::text, priority_percentage::text, created_at
        FROM delivery_settings
        ORDER BY id DESC
        LIMIT 1
    `).Scan(&s.ID, &s.MinimumFee, &s.WeatherFee, &s.PriorityPercentage, &s.CreatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest settings: %w", err)
	}
	return &s, nil
}

func deleteByID(ctx context.Context, q querier, table tarifftx.Table, id int64) (bool, error) {
	if !knownTable(table) {
		return false, fmt.Errorf("delete: unknown table %q", table)
	}
	ct, err := q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return false, fmt.Errorf("delete from %s %d: %w", table, id, err)
	}
	return ct.RowsAffected() > 0, nil
}
