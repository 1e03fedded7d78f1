package goclub

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/ukaji3/goclub-go/pkg/goclub/models"
	"github.com/ukaji3/goclub-go/pkg/goclub/parser"
	"github.com/ukaji3/goclub-go/pkg/goclub/source"
	"github.com/xuri/excelize/v2"
)

var testLayout = parser.Layout{Sheet: "Pelitulokset", Columns: []int{2, 3, 4, 5, 6, 7, 8, 9}, SkipRows: 3}

// writeSeason saves a season workbook with the given data rows under dir.
func writeSeason(t *testing.T, dir, name string, rows ...[]interface{}) string {
	t.Helper()
	return writeSeasonDated(t, dir, name, false, rows...)
}

// writeSeasonDated is writeSeason with a choice of workbook date system.
func writeSeasonDated(t *testing.T, dir, name string, date1904 bool, rows ...[]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetWorkbookProps(&excelize.WorkbookPropsOptions{Date1904: &date1904}); err != nil {
		t.Fatalf("Failed to set workbook props: %v", err)
	}

	sheet := testLayout.Sheet
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		t.Fatalf("Failed to rename sheet: %v", err)
	}
	f.SetCellValue(sheet, "B1", "Go club results")
	f.SetSheetRow(sheet, "B4", &[]interface{}{"Vahvempi", "Heikompi", "Tasoitus", "Voittaja", "Pvm", "Rating 1", "Rating 2", "Todennäköisyys"})
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(2, 5+i)
		f.SetSheetRow(sheet, cell, &row)
	}

	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	s1 := writeSeason(t, dir, "s1.xlsx",
		[]interface{}{"Bob", "Cid", 0, "Bob", "2.1.2024", 1450, 1300, "0,65"},
		[]interface{}{"Ann", "Bob", 0, "Ann", "1.1.2024", 1500, 1400, 0.6},
		[]interface{}{"Ann", "", 0, "Ann", "1.1.2024", 1500, 1400, 0.6},
	)
	s2 := writeSeason(t, dir, "s2.xlsx",
		[]interface{}{"Ann", "Cid", 1, "Cid", "3.1.2024", 1550, 1350, 0.55},
	)

	ds, err := Load(context.Background(), Options{Sources: []source.Source{
		{Season: 1, Name: "Season 1", LocalPath: s1, Layout: testLayout},
		{Season: 2, Name: "Season 2", LocalPath: s2, Layout: testLayout},
	}})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(ds.Seasons) != 2 {
		t.Fatalf("Expected 2 seasons, got %d", len(ds.Seasons))
	}
	if ds.Seasons[0].Dropped != 1 || len(ds.Seasons[0].Records) != 2 {
		t.Errorf("Season 1: %d records, %d dropped", len(ds.Seasons[0].Records), ds.Seasons[0].Dropped)
	}
	if ds.Seasons[1].Origin != models.OriginLocal {
		t.Errorf("Expected origin local, got %s", ds.Seasons[1].Origin)
	}
	if len(ds.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", ds.Warnings)
	}

	expected := []string{"Ann", "Bob", "Ann"}
	if len(ds.Games) != len(expected) {
		t.Fatalf("Expected %d games, got %d", len(expected), len(ds.Games))
	}
	for i, stronger := range expected {
		if ds.Games[i].StrongerPlayer != stronger || !ds.Games[i].Date.Equal(day(i+1)) {
			t.Errorf("Game %d = %+v", i, ds.Games[i])
		}
	}
	if ds.Games[1].StrongerWinProbability != 0.65 {
		t.Errorf("Expected 0.65, got %v", ds.Games[1].StrongerWinProbability)
	}
}

func TestLoadDateCells(t *testing.T) {
	dir := t.TempDir()
	s1 := writeSeasonDated(t, dir, "s1.xlsx", false,
		[]interface{}{"Ann", "Bob", 0, "Ann", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), 1500, 1400, 0.6},
	)
	s2 := writeSeasonDated(t, dir, "s2.xlsx", true,
		[]interface{}{"Ann", "Cid", 0, "Cid", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 1500, 1350, 0.7},
		[]interface{}{"Bob", "Cid", 0, "Bob", time.Date(2024, 3, 5, 18, 30, 0, 0, time.UTC), 1450, 1350, 0.6},
	)

	ds, err := Load(context.Background(), Options{Sources: []source.Source{
		{Season: 1, Name: "Season 1", LocalPath: s1, Layout: testLayout},
		{Season: 2, Name: "Season 2", LocalPath: s2, Layout: testLayout},
	}})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	expected := []struct {
		date     time.Time
		stronger string
		season   int
	}{
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "Ann", 2},
		{time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), "Ann", 1},
		{time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "Bob", 2},
	}
	if len(ds.Games) != len(expected) {
		t.Fatalf("Expected %d games, got %d", len(expected), len(ds.Games))
	}
	for i, e := range expected {
		g := ds.Games[i]
		if !g.Date.Equal(e.date) || g.StrongerPlayer != e.stronger || g.Season != e.season {
			t.Errorf("Game %d = %s %s season %d, expected %+v", i, g.Date.Format(time.DateOnly), g.StrongerPlayer, g.Season, e)
		}
	}
}

func TestLoadDegradesFailedSeason(t *testing.T) {
	dir := t.TempDir()
	s2 := writeSeason(t, dir, "s2.xlsx",
		[]interface{}{"Ann", "Bob", 0, "Ann", "1.1.2024", 1500, 1400, 0.6},
	)

	ds, err := Load(context.Background(), Options{Sources: []source.Source{
		{Season: 1, Name: "Season 1", LocalPath: filepath.Join(dir, "missing.xlsx"), Layout: testLayout},
		{Season: 2, Name: "Season 2", LocalPath: s2, Layout: testLayout},
	}})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if ds.Seasons[0].Origin != models.OriginNone || len(ds.Seasons[0].Records) != 0 {
		t.Errorf("Expected empty unavailable season, got %+v", ds.Seasons[0])
	}
	if len(ds.Games) != 1 {
		t.Errorf("Expected 1 game, got %d", len(ds.Games))
	}

	last := ds.Warnings[len(ds.Warnings)-1]
	if last.Stage != source.StageUnavailable || last.Season != 1 {
		t.Errorf("Expected unavailable warning for season 1, got %v", last)
	}
	var srcErr *source.SourceError
	if !errors.As(last.Err, &srcErr) {
		t.Errorf("Expected *source.SourceError, got %T", last.Err)
	}
}

func TestLoadNoData(t *testing.T) {
	dir := t.TempDir()
	empty := writeSeason(t, dir, "empty.xlsx")

	ds, err := Load(context.Background(), Options{Sources: []source.Source{
		{Season: 1, Name: "Season 1", LocalPath: empty, Layout: testLayout},
	}})
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("Expected ErrNoData, got %v", err)
	}
	if ds == nil || len(ds.Seasons) != 1 {
		t.Errorf("Expected the dataset to be returned with ErrNoData")
	}
}

func TestLoadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, Options{Sources: []source.Source{{Season: 1, Layout: testLayout}}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
