package source

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/janekbaraniewski/openchart/internal/core"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  bool
	}{
		{"data.csv", FormatCSV, false},
		{"DATA.TSV", FormatCSV, false},
		{"book.xlsx", FormatXLSX, false},
		{"usage.sqlite3", FormatSQLite, false},
		{"usage.db", FormatSQLite, false},
		{"notes.txt", "", true},
		{"noext", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if tt.err {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("format = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadCSV(t *testing.T) {
	in := "\ufeffregion,sales,when,,sales\n" +
		"North,\"1,200\",2024-01-05,x,1\n" +
		",,,,\n" +
		"South,300,2024-02-01\n"

	tab, err := ReadCSV(strings.NewReader(in), ',')
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	wantCols := []string{"region", "sales", "when", "column_4", "sales_2"}
	if !reflect.DeepEqual(tab.Columns, wantCols) {
		t.Fatalf("columns = %v, want %v", tab.Columns, wantCols)
	}
	if len(tab.Rows) != 2 {
		t.Fatalf("rows = %d, want 2 (blank record skipped)", len(tab.Rows))
	}
	if got := tab.Rows[0]["sales"]; got != "1,200" {
		t.Errorf("sales cell = %v, want raw text", got)
	}
	if got := tab.Rows[1]["sales_2"]; got != nil {
		t.Errorf("short record cell = %v, want nil", got)
	}

	wantTypes := map[string]core.ColumnType{
		"region":   core.ColumnCategorical,
		"sales":    core.ColumnNumeric,
		"when":     core.ColumnDatetime,
		"column_4": core.ColumnCategorical,
		"sales_2":  core.ColumnNumeric,
	}
	if !reflect.DeepEqual(tab.Types, wantTypes) {
		t.Errorf("types = %v, want %v", tab.Types, wantTypes)
	}

	label, value := tab.DefaultColumns()
	if label != "region" || value != "sales" {
		t.Errorf("default columns = %q/%q, want region/sales", label, value)
	}
}

func TestReadCSV_Empty(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader(""), ','); !errors.Is(err, ErrNoColumns) {
		t.Fatalf("err = %v, want ErrNoColumns", err)
	}
}

func TestInferTypes(t *testing.T) {
	rows := []core.Row{
		{"n": 1, "f": "2.5", "b": true, "d": "2024-03-01", "blank": "", "mixed": "3"},
		{"n": int64(4), "f": nil, "b": false, "d": "2024-03-02T10:00:00Z", "blank": nil, "mixed": "three"},
	}
	got := InferTypes([]string{"n", "f", "b", "d", "blank", "mixed"}, rows)
	want := map[string]core.ColumnType{
		"n":     core.ColumnNumeric,
		"f":     core.ColumnNumeric,
		"b":     core.ColumnCategorical,
		"d":     core.ColumnDatetime,
		"blank": core.ColumnCategorical,
		"mixed": core.ColumnCategorical,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("InferTypes = %v, want %v", got, want)
	}
}

func TestLoad_CSVAndTSV(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "data.csv")
	tsvPath := filepath.Join(dir, "data.tsv")
	if err := os.WriteFile(csvPath, []byte("k,v\na,1\nb,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(tsvPath, []byte("k\tv\na\t1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tab, err := Load(context.Background(), csvPath, Options{})
	if err != nil {
		t.Fatalf("Load csv: %v", err)
	}
	if len(tab.Rows) != 2 || tab.Types["v"] != core.ColumnNumeric {
		t.Errorf("csv table = %+v", tab)
	}

	tab, err = Load(context.Background(), tsvPath, Options{})
	if err != nil {
		t.Fatalf("Load tsv: %v", err)
	}
	if !reflect.DeepEqual(tab.Columns, []string{"k", "v"}) {
		t.Errorf("tsv columns = %v", tab.Columns)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(context.Background(), filepath.Join(dir, "x.json"), Options{}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("json err = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := Load(context.Background(), filepath.Join(dir, "missing.csv"), Options{}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing err = %v, want not exist", err)
	}
}

func TestLoad_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	stmts := []string{
		`CREATE TABLE sales (region TEXT, amount REAL, units INTEGER)`,
		`INSERT INTO sales VALUES ('North', 120.5, 3), ('South', 80, 2), ('North', 10, 1)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("exec %q: %v", s, err)
		}
	}
	db.Close()

	ctx := context.Background()
	tab, err := Load(ctx, path, Options{})
	if err != nil {
		t.Fatalf("Load sole table: %v", err)
	}
	if !reflect.DeepEqual(tab.Columns, []string{"region", "amount", "units"}) {
		t.Errorf("columns = %v", tab.Columns)
	}
	if len(tab.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(tab.Rows))
	}
	if got := tab.Rows[0]["region"]; got != "North" {
		t.Errorf("region = %#v, want string North", got)
	}
	if tab.Types["amount"] != core.ColumnNumeric || tab.Types["units"] != core.ColumnNumeric {
		t.Errorf("types = %v", tab.Types)
	}

	tab, err = Load(ctx, path, Options{Query: "SELECT region, SUM(amount) AS total FROM sales GROUP BY region ORDER BY region"})
	if err != nil {
		t.Fatalf("Load query: %v", err)
	}
	if len(tab.Rows) != 2 || tab.Rows[1]["region"] != "South" {
		t.Errorf("query rows = %v", tab.Rows)
	}

	db, err = sql.Open("sqlite3", path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`CREATE TABLE other (x INTEGER)`); err != nil {
		t.Fatal(err)
	}
	db.Close()

	if _, err := Load(ctx, path, Options{}); err == nil || !strings.Contains(err.Error(), "--table") {
		t.Errorf("ambiguous db err = %v, want table hint", err)
	}
	tab, err = Load(ctx, path, Options{Table: "sales"})
	if err != nil || len(tab.Rows) != 3 {
		t.Errorf("Load table = %d rows, err %v", len(tab.Rows), err)
	}
}

func TestLoad_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")
	f := excelize.NewFile()
	if _, err := f.NewSheet("Q2"); err != nil {
		t.Fatal(err)
	}
	rows := map[string][][]any{
		"Sheet1": {{"team", "score"}, {"red", 3}, {"blue", 5}},
		"Q2":     {{"team", "score", "note"}, {"green", 7, "ok"}},
	}
	for sheet, data := range rows {
		for i, r := range data {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			if err := f.SetSheetRow(sheet, cell, &r); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	tab, err := Load(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("Load first sheet: %v", err)
	}
	if len(tab.Rows) != 2 || tab.Rows[1]["score"] != "5" || tab.Types["score"] != core.ColumnNumeric {
		t.Errorf("Sheet1 table = %+v", tab)
	}

	tab, err = Load(context.Background(), path, Options{Sheet: "Q2"})
	if err != nil {
		t.Fatalf("Load Q2: %v", err)
	}
	if !reflect.DeepEqual(tab.Columns, []string{"team", "score", "note"}) {
		t.Errorf("Q2 columns = %v", tab.Columns)
	}

	if _, err := Load(context.Background(), path, Options{Sheet: "nope"}); err == nil {
		t.Error("missing sheet: want error")
	}
}
