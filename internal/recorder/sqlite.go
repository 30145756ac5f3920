package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"BurnLab/internal/model"
)

// SQLiteRecorder persists finished runs to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so a dashboard can read while a watch-mode run writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id                 TEXT PRIMARY KEY,
			scenario           TEXT,
			variant            TEXT,
			status             TEXT,
			months             INTEGER,
			final_price        REAL,
			cumulative_burned  REAL,
			primary_treasury   REAL,
			secondary_treasury REAL,
			total_staked       REAL,
			started_at         INTEGER,
			finished_at        INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_scenario ON runs(scenario)`,

		`CREATE TABLE IF NOT EXISTS monthly_history (
			run_id                 TEXT NOT NULL,
			month                  INTEGER NOT NULL,
			spot_price             REAL,
			total_supply           REAL,
			circulating_supply     REAL,
			cumulative_burned      REAL,
			primary_treasury       REAL,
			secondary_treasury     REAL,
			total_staked           REAL,
			tokens_burned          REAL,
			purchase_tokens        REAL,
			cash_to_stakers        REAL,
			buy_pressure_usd       REAL,
			swap_fees              REAL,
			perp_fees              REAL,
			affiliate_fees         REAL,
			staker_fees            REAL,
			treasury_fees          REAL,
			buyback_fees           REAL,
			secondary_staker_fees  REAL,
			secondary_treasury_usd REAL,
			permanent_impact       REAL,
			temporary_impact       REAL,
			market_cap             REAL,
			burn_value_usd         REAL,
			runway_months          REAL,
			PRIMARY KEY (run_id, month)
		)`,

		`CREATE TABLE IF NOT EXISTS annual_ratios (
			run_id               TEXT NOT NULL,
			year                 INTEGER NOT NULL,
			variant              TEXT,
			pv                   REAL,
			pv_defined           INTEGER,
			cash_flow            REAL,
			cash_flow_defined    INTEGER,
			market_value         REAL,
			market_value_defined INTEGER,
			PRIMARY KEY (run_id, year)
		)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(run *RunSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO runs
		(id, scenario, variant, status, months, final_price, cumulative_burned,
		 primary_treasury, secondary_treasury, total_staked, started_at, finished_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		run.ID, run.Scenario, string(run.Variant), string(run.Status), run.Months,
		run.FinalPrice, run.CumulativeBurned,
		run.PrimaryTreasury, run.SecondaryTreasury, run.TotalStaked,
		run.StartedAt.Unix(), run.FinishedAt.Unix(),
	)
	return err
}

func (r *SQLiteRecorder) RecordHistory(runID string, history []model.HistoryRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO monthly_history
		(run_id, month, spot_price, total_supply, circulating_supply, cumulative_burned,
		 primary_treasury, secondary_treasury, total_staked,
		 tokens_burned, purchase_tokens, cash_to_stakers, buy_pressure_usd,
		 swap_fees, perp_fees, affiliate_fees, staker_fees, treasury_fees, buyback_fees,
		 secondary_staker_fees, secondary_treasury_usd,
		 permanent_impact, temporary_impact, market_cap, burn_value_usd, runway_months)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, rec := range history {
		if _, err := stmt.Exec(
			runID, rec.Month, rec.SpotPrice, rec.TotalSupply, rec.CirculatingSupply, rec.CumulativeBurned,
			rec.PrimaryTreasury, rec.SecondaryTreasury, rec.TotalStaked,
			rec.TokensBurned, rec.PurchaseTokens, rec.CashToStakers, rec.BuyPressureUSD,
			rec.SwapFees, rec.PerpFees, rec.AffiliateFees, rec.StakerFees, rec.TreasuryFees, rec.BuybackFees,
			rec.SecondaryStakerFees, rec.SecondaryTreasuryUSD,
			rec.PermanentImpact, rec.TemporaryImpact, rec.MarketCap, rec.BurnValueUSD, rec.RunwayMonths,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert month %d: %w", rec.Month, err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) RecordAnnual(runID string, ratios map[int]model.AnnualRatio) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for year, ratio := range ratios {
		if _, err := r.db.Exec(`INSERT INTO annual_ratios
			(run_id, year, variant, pv, pv_defined, cash_flow, cash_flow_defined,
			 market_value, market_value_defined)
			VALUES (?,?,?,?,?,?,?,?,?)`,
			runID, year, string(ratio.Variant),
			ratio.PV, boolInt(ratio.PVDefined),
			ratio.CashFlow, boolInt(ratio.CashFlowDefined),
			ratio.MarketValue, boolInt(ratio.MarketValueDefined),
		); err != nil {
			return fmt.Errorf("insert year %d: %w", year, err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
