package reffile

import (
	"encoding/csv"
	"fmt"
	"io"

	enc "github.com/hgmendoza/recaudo/internal/encoding"
)

func parseCSV(r io.Reader) (*Dataset, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return fromRows(rows)
}
