package rendering

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/kyrec/backend/internal/domain/briefing"
	"github.com/kyrec/backend/internal/domain/shared"
)

// writeTestTemplate builds a minimal template asset with the literal label
// texts in their fixed positions, the way the printed sheet carries them.
func writeTestTemplate(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for _, layout := range checklistLayouts {
		for label, cell := range layout.cells {
			text := label
			if label == layout.otherLabel {
				text = "その他（　）"
			}
			require.NoError(t, f.SetCellStr(sheet, cell, text))
		}
	}

	path := filepath.Join(t.TempDir(), "template.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func testRecord(t *testing.T) *briefing.Record {
	t.Helper()
	record, err := briefing.NewRecord("acme", briefing.Form{
		SubmitterName: "Taro",
		WorkTitle:     "配電盤点検",
		WorkCompany:   "Acme Corp",
		Phone:         "03-1234-5678",
		WorkDate:      "2026-08-30",
		StartTime:     "09:00",
		EndTime:       "17:00",
		Location:      "B1 電気室",
		PeopleCount:   "3",
		WorkContent:   "Line1\nLine2\nLine3",
		Hazards:       briefing.Checklist{Selected: []string{"火災"}},
	})
	require.NoError(t, err)
	return record
}

func openRendered(t *testing.T, data []byte) (*excelize.File, string) {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f, f.GetSheetName(0)
}

func cellValue(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	value, err := f.GetCellValue(sheet, cell)
	require.NoError(t, err)
	return value
}

func TestTemplateRenderer_Render(t *testing.T) {
	path := writeTestTemplate(t)
	renderer := NewTemplateRenderer(path, zap.NewNop())

	record := testRecord(t)
	data, err := renderer.Render(record)
	require.NoError(t, err)

	f, sheet := openRendered(t, data)

	t.Run("scalar fields land on their fixed positions", func(t *testing.T) {
		assert.Equal(t, "配電盤点検", cellValue(t, f, sheet, cellWorkTitle))
		assert.Equal(t, "Acme Corp", cellValue(t, f, sheet, cellWorkCompany))
		assert.Equal(t, "03-1234-5678", cellValue(t, f, sheet, cellPhone))
		assert.Equal(t, "2026-08-30", cellValue(t, f, sheet, cellWorkDate))
		assert.Equal(t, "09:00", cellValue(t, f, sheet, cellStartTime))
		assert.Equal(t, "17:00", cellValue(t, f, sheet, cellEndTime))
		assert.Equal(t, "B1 電気室", cellValue(t, f, sheet, cellLocation))
		assert.Equal(t, "3", cellValue(t, f, sheet, cellPeopleCount))
	})

	t.Run("work content splits across primary and secondary positions", func(t *testing.T) {
		assert.Equal(t, "Line1", cellValue(t, f, sheet, cellWorkContent1))
		assert.Equal(t, "Line2\nLine3", cellValue(t, f, sheet, cellWorkContent2))
	})

	t.Run("focus cell carries the submitter trailer", func(t *testing.T) {
		assert.Equal(t, "【入力者】Taro", cellValue(t, f, sheet, cellFocus))
	})

	t.Run("selected hazard is marked, the rest are not", func(t *testing.T) {
		assert.Equal(t, "✔火災", cellValue(t, f, sheet, hazardCells["火災"]))
		for label, cell := range hazardCells {
			if label == "火災" || label == otherHazardLabel {
				continue
			}
			assert.Equal(t, label, cellValue(t, f, sheet, cell), "cell %s", cell)
		}
		assert.Equal(t, "その他（　）", cellValue(t, f, sheet, hazardCells[otherHazardLabel]))
	})
}

func TestTemplateRenderer_FocusInstructions(t *testing.T) {
	path := writeTestTemplate(t)
	renderer := NewTemplateRenderer(path, zap.NewNop())

	record := testRecord(t)
	record.FocusInstructions = "活線に注意"

	data, err := renderer.Render(record)
	require.NoError(t, err)
	f, sheet := openRendered(t, data)

	assert.Equal(t, "活線に注意\n【入力者】Taro", cellValue(t, f, sheet, cellFocus))
}

func TestTemplateRenderer_OtherElaboration(t *testing.T) {
	path := writeTestTemplate(t)
	renderer := NewTemplateRenderer(path, zap.NewNop())

	t.Run("non-empty elaboration is injected and marked", func(t *testing.T) {
		record := testRecord(t)
		record.Hazards.Other = "粉塵"

		data, err := renderer.Render(record)
		require.NoError(t, err)
		f, sheet := openRendered(t, data)

		assert.Equal(t, "✔その他（粉塵）", cellValue(t, f, sheet, hazardCells[otherHazardLabel]))
	})

	t.Run("empty elaboration leaves the literal unmarked", func(t *testing.T) {
		record := testRecord(t)

		data, err := renderer.Render(record)
		require.NoError(t, err)
		f, sheet := openRendered(t, data)

		assert.Equal(t, "その他（　）", cellValue(t, f, sheet, hazardCells[otherHazardLabel]))
	})
}

func TestTemplateRenderer_Deterministic(t *testing.T) {
	path := writeTestTemplate(t)
	renderer := NewTemplateRenderer(path, zap.NewNop())
	record := testRecord(t)
	record.Avoidance.Other = "夜間作業"

	first, err := renderer.Render(record)
	require.NoError(t, err)

	// Re-render from the same on-disk template: the first render must not
	// have mutated it.
	second, err := renderer.Render(record)
	require.NoError(t, err)

	fa, sheetA := openRendered(t, first)
	fb, sheetB := openRendered(t, second)
	for _, layout := range checklistLayouts {
		for _, cell := range layout.cells {
			assert.Equal(t,
				cellValue(t, fa, sheetA, cell),
				cellValue(t, fb, sheetB, cell))
		}
	}

	tmpl, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer tmpl.Close()
	sheet := tmpl.GetSheetName(0)
	assert.Equal(t, "その他（　）", cellValue(t, tmpl, sheet, avoidanceCells[otherAvoidanceLabel]))
	assert.Equal(t, "火災", cellValue(t, tmpl, sheet, hazardCells["火災"]))
}

func TestTemplateRenderer_TemplateMissing(t *testing.T) {
	renderer := NewTemplateRenderer(filepath.Join(t.TempDir(), "missing.xlsx"), zap.NewNop())

	_, err := renderer.Render(testRecord(t))
	assert.ErrorIs(t, err, shared.ErrTemplateMissing)
}
