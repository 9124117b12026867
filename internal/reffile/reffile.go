// Package reffile parses uploaded reference datasets (.csv or .xlsx) into
// a validated, column-mapped form ready for either bulk loader variant.
package reffile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Upload header names as produced by the business export.
const (
	colClientID        = "CLIENTE_UNICO"
	colName            = "NOMBRE_CTE"
	colManagementUnit  = "GERENCIA"
	colProduct         = "PRODUCTO"
	colPaymentChannel  = "FIDIAPAGO"
	colCollectionNotes = "GESTION_DESC"
)

var requiredCols = []string{
	colClientID, colName, colManagementUnit,
	colProduct, colPaymentChannel, colCollectionNotes,
}

// Row is one reference row as read from the upload. Values are raw cell
// contents; key normalization happens in the loaders.
type Row struct {
	ClientID        string
	Name            string
	ManagementUnit  string
	Product         string
	PaymentChannel  string
	CollectionNotes string
}

// Dataset is a parsed upload. Malformed counts data rows that could not be
// read at all; the loaders report them as skipped.
type Dataset struct {
	Rows      []Row
	Malformed int
}

// TotalRows is the number of input rows excluding the header.
func (d *Dataset) TotalRows() int { return len(d.Rows) + d.Malformed }

// MissingColumnsError is raised before any database work when the upload
// header lacks required columns.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing columns: %s", strings.Join(e.Columns, ", "))
}

// Parse reads an upload into a Dataset. The format is chosen by file
// extension: .xlsx goes through the spreadsheet reader, everything else is
// treated as CSV with charset detection.
func Parse(filename string, r io.Reader) (*Dataset, error) {
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		return parseXLSX(r)
	}

	return parseCSV(r)
}

// ParseFile is Parse over a file on disk.
func ParseFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening upload: %w", err)
	}
	defer f.Close()

	return Parse(path, f)
}

// fromRows builds a Dataset out of raw sheet rows. The first non-empty row
// must be the header; header names are matched upper-cased and trimmed.
func fromRows(rows [][]string) (*Dataset, error) {
	headerIdx := -1

	var cols map[string]int

	for i, row := range rows {
		if rowEmpty(row) {
			continue
		}

		cols = make(map[string]int, len(row))

		for j, cell := range row {
			name := strings.ToUpper(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = j
			}
		}

		headerIdx = i

		break
	}

	if headerIdx == -1 {
		return nil, &MissingColumnsError{Columns: append([]string(nil), requiredCols...)}
	}

	var missing []string

	for _, name := range requiredCols {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingColumnsError{Columns: missing}
	}

	ds := &Dataset{}

	for _, row := range rows[headerIdx+1:] {
		if rowEmpty(row) {
			continue
		}

		if len(row) <= cols[colClientID] {
			// Too short to even carry the key column.
			ds.Malformed++
			continue
		}

		ds.Rows = append(ds.Rows, Row{
			ClientID:        cell(row, cols[colClientID]),
			Name:            cell(row, cols[colName]),
			ManagementUnit:  cell(row, cols[colManagementUnit]),
			Product:         cell(row, cols[colProduct]),
			PaymentChannel:  cell(row, cols[colPaymentChannel]),
			CollectionNotes: cell(row, cols[colCollectionNotes]),
		})
	}

	return ds, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return row[idx]
}

func rowEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
