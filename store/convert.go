package store

import (
	"database/sql"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/stsysd/projects/db"
	"github.com/stsysd/projects/model"
)

// rowID はアプリケーションのIDをテーブルの列型(INT)に変換します。
// 範囲外のIDに対応する行は存在し得ないため、その場合はfalseを返します。
func rowID(id int64) (int32, bool) {
	if id <= 0 || id > math.MaxInt32 {
		return 0, false
	}
	return int32(id), true
}

// withScaledHours は時間を小数点以下2桁に丸めたコピーを返します。
// SQLiteのDECIMAL列は丸めを行わないため、どのドライバでも同じ値を保存するようにここで揃えます。
func withScaledHours(project *model.Project) model.Project {
	p := *project
	p.EstimatedHours = roundHours(p.EstimatedHours)
	p.ActualHours = roundHours(p.ActualHours)
	return p
}

func roundHours(v *decimal.Decimal) *decimal.Decimal {
	if v == nil {
		return nil
	}
	h := model.RoundHours(*v)
	return &h
}

func nullDecimal(v *decimal.Decimal) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *v, Valid: true}
}

func nullInt32(v *int) (sql.NullInt32, error) {
	if v == nil {
		return sql.NullInt32{}, nil
	}
	if *v < math.MinInt32 || *v > math.MaxInt32 {
		return sql.NullInt32{}, fmt.Errorf("value %d out of range for INT column", *v)
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}, nil
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func decimalPtr(v decimal.NullDecimal) *decimal.Decimal {
	if !v.Valid {
		return nil
	}
	d := v.Decimal
	return &d
}

func intPtr(v sql.NullInt32) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int32)
	return &i
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

// toModelProject はDBの行をモデルに変換します。子コレクションは空で初期化されます。
func toModelProject(row db.Project) *model.Project {
	p := model.NewProject(row.ProjectName)
	p.ID = int64(row.ProjectID)
	p.EstimatedHours = decimalPtr(row.EstimatedHours)
	p.ActualHours = decimalPtr(row.ActualHours)
	p.Difficulty = intPtr(row.Difficulty)
	p.Notes = stringPtr(row.Notes)
	return p
}

func toModelMaterials(rows []db.Material) []model.Material {
	materials := make([]model.Material, 0, len(rows))
	for _, r := range rows {
		materials = append(materials, model.Material{
			ID:          int64(r.MaterialID),
			ProjectID:   int64(r.ProjectID),
			Name:        r.MaterialName,
			NumRequired: intPtr(r.NumRequired),
			Cost:        decimalPtr(r.Cost),
		})
	}
	return materials
}

func toModelSteps(rows []db.Step) []model.Step {
	steps := make([]model.Step, 0, len(rows))
	for _, r := range rows {
		steps = append(steps, model.Step{
			ID:        int64(r.StepID),
			ProjectID: int64(r.ProjectID),
			Text:      r.StepText,
			Order:     int(r.StepOrder),
		})
	}
	return steps
}

func toModelCategories(rows []db.Category) []model.Category {
	categories := make([]model.Category, 0, len(rows))
	for _, r := range rows {
		categories = append(categories, model.Category{
			ID:   int64(r.CategoryID),
			Name: r.CategoryName,
		})
	}
	return categories
}
