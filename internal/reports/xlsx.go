package reports

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/mathcoach/internal/attempt"
	"github.com/abhisek/mathcoach/internal/grading"
)

const (
	summarySheet     = "Summary"
	summaryHeaderRow = 3
)

// maxSheetName is the spreadsheet limit on sheet name length.
const maxSheetName = 31

// WriteXLSX writes r as a workbook: a summary sheet plus one sheet per task
// with its attempt table.
func WriteXLSX(w io.Writer, r *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", summarySheet)

	if err := setRow(f, summarySheet, 1, []any{"Student", r.StudentName}); err != nil {
		return err
	}
	header := []any{"Task", "Questions", "Attempts", "Best %", "Pass %", "Good %", "Master %", "Active"}
	if err := setRow(f, summarySheet, summaryHeaderRow, header); err != nil {
		return err
	}

	used := map[string]bool{strings.ToLower(summarySheet): true}
	for i, t := range r.Tasks {
		bestCell := any("")
		if best := t.Best(); best >= 0 {
			bestCell = best
		}
		row := []any{t.Title, t.Total, len(t.Attempts), bestCell, t.PassPct, t.GoodPct, t.MasterPct, t.Active}
		if err := setRow(f, summarySheet, summaryHeaderRow+1+i, row); err != nil {
			return err
		}

		name := sheetName(t.Title, i+1, used)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %q: %w", name, err)
		}
		if err := writeTaskSheet(f, name, t); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeTaskSheet(f *excelize.File, sheet string, t TaskReport) error {
	header := []any{"#", "Date", "Mode", "Time", "Score", "Score %", "Grade"}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, a := range t.Attempts {
		row := []any{
			i + 1,
			a.StartedAt.Format("2006-01-02 15:04"),
			a.Mode,
			attempt.FormatDuration(a.TimeTaken),
			fmt.Sprintf("%d / %d", a.Score, t.Total),
			grading.Percent(a.Score, t.Total),
			a.Grade.Label(),
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

// sheetName makes a unique, valid sheet name from a task title.
func sheetName(title string, n int, used map[string]bool) string {
	clean := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return ' '
		}
		return r
	}, strings.TrimSpace(title))
	if clean == "" {
		clean = "Task"
	}

	suffix := fmt.Sprintf(" (%d)", n)
	runes := []rune(clean)
	if len(runes)+len(suffix) > maxSheetName {
		runes = runes[:maxSheetName-len(suffix)]
	}
	name := strings.TrimSpace(string(runes)) + suffix
	for used[strings.ToLower(name)] {
		n++
		name = fmt.Sprintf("Task (%d)", n)
	}
	used[strings.ToLower(name)] = true
	return name
}
