package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Column aliases merged during header mapping; first non-empty value wins
// when a row fills both spellings.
var columnAliases = map[string]string{
	"birthdate":  "birth_date",
	"deathdate":  "death_date",
	"birthplace": "birth_place",
	"deathplace": "death_place",
}

// NormalizeCSV maps a header-first CSV into PersonRecords. Rows are split on
// a literal comma with no quoting support: fields containing commas corrupt
// column alignment. Known limitation, kept deliberately.
func NormalizeCSV(r io.Reader) ([]PersonRecord, []SkippedRow) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var records []PersonRecord
	var skipped []SkippedRow

	// Header: lowercased, trimmed, alias-collapsed. First column index wins
	// so the canonical spelling takes precedence over its alias.
	if !sc.Scan() {
		return nil, nil
	}
	header := strings.TrimPrefix(sc.Text(), "\ufeff")
	col := map[string][]int{}
	for i, h := range strings.Split(header, ",") {
		name := strings.ToLower(strings.TrimSpace(h))
		if canon, ok := columnAliases[name]; ok {
			name = canon
		}
		col[name] = append(col[name], i)
	}

	row := 0
	for sc.Scan() {
		row++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := strings.Split(line, ",")

		get := func(name string) string {
			for _, i := range col[name] {
				if i < len(values) {
					if v := strings.TrimSpace(values[i]); v != "" {
						return v
					}
				}
			}
			return ""
		}

		name := get("name")
		if name == "" {
			skipped = append(skipped, SkippedRow{Number: row, Reason: "empty name"})
			continue
		}

		rec := PersonRecord{
			ID:         fmt.Sprintf("row-%d", row),
			Name:       name,
			BirthDate:  get("birth_date"),
			BirthPlace: get("birth_place"),
			DeathDate:  get("death_date"),
			DeathPlace: get("death_place"),
			Notes:      get("notes"),
		}
		rec.Precursors = synthesizePrecursors(rec)
		records = append(records, rec)
	}

	return records, skipped
}

// synthesizePrecursors adds a birth and/or death precursor when either the
// role's date or its place is present.
func synthesizePrecursors(rec PersonRecord) []EventPrecursor {
	var out []EventPrecursor
	if rec.BirthDate != "" || rec.BirthPlace != "" {
		out = append(out, EventPrecursor{Role: "birth", Date: rec.BirthDate, Place: rec.BirthPlace})
	}
	if rec.DeathDate != "" || rec.DeathPlace != "" {
		out = append(out, EventPrecursor{Role: "death", Date: rec.DeathDate, Place: rec.DeathPlace})
	}
	return out
}
