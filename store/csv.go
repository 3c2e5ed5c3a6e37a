// Package store persists label records as a flat CSV file with the
// columns Category, ShortCode, StartYear, Subcategories, Format.
package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/larsOhne/beautiful-LEITZ/label"
)

var header = []string{"Category", "ShortCode", "StartYear", "Subcategories", "Format"}

// Load reads all label records from a CSV file. Column order is taken
// from the header row; matching is case-insensitive.
func Load(path string) ([]label.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open labels %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse labels %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("labels %s: missing header row", path)
	}

	columns := map[string]int{}
	for i, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"category", "shortcode", "startyear"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("labels %s: missing column %q", path, required)
		}
	}

	records := make([]label.Record, 0, len(rows)-1)
	for n, row := range rows[1:] {
		cell := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}
		year, err := strconv.Atoi(cell("startyear"))
		if err != nil {
			return nil, fmt.Errorf("labels %s row %d: invalid StartYear %q", path, n+2, cell("startyear"))
		}
		records = append(records, label.Record{
			Category:      cell("category"),
			ShortCode:     cell("shortcode"),
			StartYear:     year,
			Subcategories: label.SplitSubcategories(cell("subcategories")),
			Format:        cell("format"),
		})
	}
	return records, nil
}

// Save writes records back in the canonical column order, creating
// parent directories as needed.
func Save(path string, records []label.Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create labels dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create labels %s: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write labels %s: %w", path, err)
	}
	for _, rec := range records {
		row := []string{
			rec.Category,
			rec.ShortCode,
			strconv.Itoa(rec.StartYear),
			label.JoinSubcategories(rec.Subcategories),
			rec.Format,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write labels %s: %w", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("write labels %s: %w", path, err)
	}
	return nil
}

// Sample returns the starter record set written on first run.
func Sample() []label.Record {
	return []label.Record{
		{Category: "Finance", ShortCode: "FIN", StartYear: 2012, Subcategories: []string{"Taxes", "Payroll", "Bank"}, Format: "schmal"},
		{Category: "Insurance", ShortCode: "INS", StartYear: 2004, Subcategories: []string{"Liability", "Home", "Car"}, Format: "breit"},
		{Category: "Notfall", ShortCode: "ICE", StartYear: 2020, Subcategories: []string{"Passports", "Certificates", "Insurance IDs"}, Format: "schmal"},
		{Category: "Projects", ShortCode: "PRJ", StartYear: 1999, Subcategories: []string{"Building permit", "Offers", "Invoices"}, Format: "extra"},
	}
}

// Ensure loads path, seeding it with the sample set if it doesn't exist.
func Ensure(path string) ([]label.Record, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		sample := Sample()
		if err := Save(path, sample); err != nil {
			return nil, err
		}
		return sample, nil
	}
	return Load(path)
}
