package ingest

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"healthscreen/internal/engine"
)

// loadXLSX reads the first sheet of a workbook.
func loadXLSX(path string) (*engine.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &engine.Dataset{}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read xlsx sheet %q: %w", sheets[0], err)
	}
	return fromRecords(rows), nil
}

// loadXML flattens <root><record><field>value</field>...</record>...</root>
// documents: every child of the root element becomes a row, every child of
// a record becomes a column.
func loadXML(path string) (*engine.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open xml: %w", err)
	}
	defer f.Close()

	dec := xml.NewDecoder(f)
	ds := &engine.Dataset{}
	seen := map[string]bool{}
	depth := 0
	var row map[string]string
	var field string

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch depth {
			case 2:
				row = map[string]string{}
			case 3:
				field = t.Name.Local
				if !seen[field] {
					seen[field] = true
					ds.Columns = append(ds.Columns, field)
				}
			}
		case xml.CharData:
			if depth == 3 && row != nil && field != "" {
				row[field] += string(t)
			}
		case xml.EndElement:
			switch depth {
			case 2:
				if len(row) > 0 {
					ds.Rows = append(ds.Rows, row)
				}
				row = nil
			case 3:
				field = ""
			}
			depth--
		}
	}
	return ds, nil
}
