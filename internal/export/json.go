package export

import (
	"encoding/json"
	"fmt"
	"os"

	"BurnLab/internal/model"
)

// WriteJSON serializes the final state, the full history and the annual
// ratios to a JSON file.
func WriteJSON(path string, snap model.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
