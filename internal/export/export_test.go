package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"BurnLab/internal/model"
)

func sampleSnapshot() model.Snapshot {
	return model.Snapshot{
		State: model.SimState{
			Month:  2,
			Status: model.StatusCompleted,
			Supply: model.SupplyPool{TotalSupply: 2_399_000_000, CirculatingSupply: 1_908_000_000},
			Price:  model.PriceState{SpotPrice: 0.066},
		},
		History: []model.HistoryRecord{
			{Month: 1, SpotPrice: 0.0655, TokensBurned: 500_000},
			{Month: 2, SpotPrice: 0.066, TokensBurned: 480_000},
		},
		Annual: map[int]model.AnnualRatio{},
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	if err := WriteCSV(path, sampleSnapshot()); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "month" || rows[0][1] != "spot_price" {
		t.Errorf("unexpected header start: %v", rows[0][:2])
	}
	if rows[1][0] != "1" || rows[2][0] != "2" {
		t.Errorf("rows out of order: %v, %v", rows[1][0], rows[2][0])
	}
	if len(rows[1]) != len(csvHeader) {
		t.Errorf("row width %d does not match header width %d", len(rows[1]), len(csvHeader))
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	snap := sampleSnapshot()
	if err := WriteJSON(path, snap); err != nil {
		t.Fatalf("write json: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var got model.Snapshot
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.State.Month != snap.State.Month {
		t.Errorf("month: expected %d, got %d", snap.State.Month, got.State.Month)
	}
	if len(got.History) != len(snap.History) {
		t.Errorf("history length: expected %d, got %d", len(snap.History), len(got.History))
	}
	if got.History[0].TokensBurned != snap.History[0].TokensBurned {
		t.Errorf("tokens burned: expected %v, got %v", snap.History[0].TokensBurned, got.History[0].TokensBurned)
	}
}
