package report

import (
	"encoding/json"
	"io"

	"github.com/ironsheep/colorbench/internal/metrics"
)

// WriteJSON writes the reports as an indented JSON array.
func WriteJSON(w io.Writer, reports []metrics.Report) error {
	if reports == nil {
		reports = []metrics.Report{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}
