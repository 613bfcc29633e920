// Package ingest loads the optional genetic, medical and family datasets
// from delimited text, spreadsheets and structured markup, and normalizes
// them to the common column-name convention the risk scorer expects.
package ingest

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"healthscreen/internal/engine"
)

// Distinct ingestion failures. Both abort only the load operation that hit
// them, never a whole run.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrEmptyDataset      = errors.New("file contains no data")
)

// Kind selects the per-dataset normalization applied after parsing.
type Kind string

const (
	KindGenetic Kind = "genetic"
	KindMedical Kind = "medical"
	KindFamily  Kind = "family"
)

// Load reads path according to its extension and returns the normalized
// dataset.
func Load(path string, kind Kind) (*engine.Dataset, error) {
	var (
		ds  *engine.Dataset
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		ds, err = loadCSV(path)
	case ".xlsx":
		ds, err = loadXLSX(path)
	case ".json":
		ds, err = loadJSON(path)
	case ".xml":
		ds, err = loadXML(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}
	if ds.Empty() {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyDataset)
	}
	normalize(ds, kind)
	return ds, nil
}

func loadCSV(path string) (*engine.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	// Turkish exports are commonly Windows-1254; fall back to it when the
	// bytes are not valid UTF-8.
	if !utf8.Valid(raw) {
		decoded, decErr := charmap.Windows1254.NewDecoder().Bytes(raw)
		if decErr != nil {
			return nil, fmt.Errorf("decode csv: %w", decErr)
		}
		raw = decoded
	}

	records, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return fromRecords(records), nil
}

func loadJSON(path string) (*engine.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}

	var rows []map[string]any
	if err := json.Unmarshal(raw, &rows); err != nil {
		// A single object loads as a one-row dataset.
		var single map[string]any
		if err2 := json.Unmarshal(raw, &single); err2 != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		rows = []map[string]any{single}
	}

	ds := &engine.Dataset{}
	seen := map[string]bool{}
	for _, obj := range rows {
		row := map[string]string{}
		for k, v := range obj {
			if !seen[k] {
				seen[k] = true
				ds.Columns = append(ds.Columns, k)
			}
			row[k] = stringify(v)
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}

func fromRecords(records [][]string) *engine.Dataset {
	if len(records) == 0 {
		return &engine.Dataset{}
	}
	ds := &engine.Dataset{Columns: records[0]}
	for _, rec := range records[1:] {
		row := map[string]string{}
		empty := true
		for i, col := range ds.Columns {
			if i < len(rec) {
				row[col] = rec[i]
				if strings.TrimSpace(rec[i]) != "" {
					empty = false
				}
			}
		}
		if !empty {
			ds.Rows = append(ds.Rows, row)
		}
	}
	return ds
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// normalize lowercases column names, replaces spaces with underscores and
// applies per-kind column aliases so downstream code can rely on the
// canonical names.
func normalize(ds *engine.Dataset, kind Kind) {
	rename := map[string]string{}
	for i, col := range ds.Columns {
		normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(col)), " ", "_")
		rename[col] = normalized
		ds.Columns[i] = normalized
	}
	for _, row := range ds.Rows {
		for old, now := range rename {
			if old == now {
				continue
			}
			if v, ok := row[old]; ok {
				row[now] = v
				delete(row, old)
			}
		}
	}

	if kind == KindGenetic {
		applyAliases(ds, geneticAliases)
	}
	if kind == KindFamily {
		translateRelationships(ds)
	}
}

// Alternative column names seen in the wild for genetic exports.
var geneticAliases = map[string][]string{
	"snp_id":      {"snp", "rs_id", "marker_id", "id"},
	"chromosome":  {"chr", "chrom", "chromosome_number"},
	"position":    {"pos", "bp_position", "base_position"},
	"genotype":    {"gt", "alleles", "variant"},
	"risk_allele": {"risk", "risk_variant", "pathogenic"},
}

func applyAliases(ds *engine.Dataset, aliases map[string][]string) {
	for canonical, alts := range aliases {
		if ds.HasColumn(canonical) {
			continue
		}
		for _, alt := range alts {
			if !ds.HasColumn(alt) {
				continue
			}
			for i, col := range ds.Columns {
				if col == alt {
					ds.Columns[i] = canonical
				}
			}
			for _, row := range ds.Rows {
				if v, ok := row[alt]; ok {
					row[canonical] = v
					delete(row, alt)
				}
			}
			break
		}
	}
}

var relationshipNames = map[string]string{
	"mother":      "anne",
	"father":      "baba",
	"sister":      "kız_kardeş",
	"brother":     "erkek_kardeş",
	"grandmother": "büyükanne",
	"grandfather": "büyükbaba",
}

func translateRelationships(ds *engine.Dataset) {
	if !ds.HasColumn("relationship") {
		return
	}
	for _, row := range ds.Rows {
		if tr, ok := relationshipNames[strings.ToLower(strings.TrimSpace(row["relationship"]))]; ok {
			row["relationship"] = tr
		}
	}
}
