// Package model は、アプリケーションのデータモデル定義を提供します。
package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Project はDIYプロジェクトを表すモデルです。
type Project struct {
	ID             int64            `json:"project_id"`      // DBのAUTO_INCREMENTで採番、未保存の間は0
	Name           string           `json:"project_name"`    // プロジェクト名
	EstimatedHours *decimal.Decimal `json:"estimated_hours"` // 見積時間（小数点以下2桁）
	ActualHours    *decimal.Decimal `json:"actual_hours"`    // 実績時間（小数点以下2桁）
	Difficulty     *int             `json:"difficulty"`      // 難易度 (1-5)
	Notes          *string          `json:"notes"`           // メモ

	// 以下はIDで取得したときのみ設定される
	Materials  []Material `json:"materials"`
	Steps      []Step     `json:"steps"`
	Categories []Category `json:"categories"`
}

// NewProject は未保存のProjectインスタンスを作成します。
func NewProject(name string) *Project {
	return &Project{
		Name:       name,
		Materials:  []Material{},
		Steps:      []Step{},
		Categories: []Category{},
	}
}

// IsPersisted はプロジェクトがDBに保存済み（IDが採番済み）かどうかを返します。
func (p *Project) IsPersisted() bool {
	return p.ID > 0
}

// String はコンソール表示用の文字列を返します。
func (p *Project) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n   ID=%d", p.ID)
	fmt.Fprintf(&b, "\n   name=%s", p.Name)
	fmt.Fprintf(&b, "\n   estimatedHours=%s", FormatHours(p.EstimatedHours))
	fmt.Fprintf(&b, "\n   actualHours=%s", FormatHours(p.ActualHours))
	fmt.Fprintf(&b, "\n   difficulty=%s", formatInt(p.Difficulty))
	fmt.Fprintf(&b, "\n   notes=%s", formatText(p.Notes))

	b.WriteString("\n   Materials:")
	for _, m := range p.Materials {
		fmt.Fprintf(&b, "\n      %s", m)
	}

	b.WriteString("\n   Steps:")
	for _, s := range p.Steps {
		fmt.Fprintf(&b, "\n      %s", s)
	}

	b.WriteString("\n   Categories:")
	for _, c := range p.Categories {
		fmt.Fprintf(&b, "\n      %s", c)
	}

	return b.String()
}

// ProjectPatch はプロジェクト更新時の差分を表します。
// Presentなフィールドのみが既存の値を上書きします。
type ProjectPatch struct {
	Name           Optional[string]
	EstimatedHours Optional[decimal.Decimal]
	ActualHours    Optional[decimal.Decimal]
	Difficulty     Optional[int]
	Notes          Optional[string]
}

// IsEmpty は上書きするフィールドがひとつもない場合にtrueを返します。
func (p ProjectPatch) IsEmpty() bool {
	return !p.Name.Present &&
		!p.EstimatedHours.Present &&
		!p.ActualHours.Present &&
		!p.Difficulty.Present &&
		!p.Notes.Present
}

// Apply はbaseに差分を適用した新しいProjectを返します。baseは変更しません。
func (p ProjectPatch) Apply(base *Project) *Project {
	updated := *base
	if p.Name.Present {
		updated.Name = p.Name.Value
	}
	if p.EstimatedHours.Present {
		updated.EstimatedHours = p.EstimatedHours.Ptr()
	}
	if p.ActualHours.Present {
		updated.ActualHours = p.ActualHours.Ptr()
	}
	if p.Difficulty.Present {
		updated.Difficulty = p.Difficulty.Ptr()
	}
	if p.Notes.Present {
		updated.Notes = p.Notes.Ptr()
	}
	return &updated
}

// FormatHours は時間を小数点以下2桁で整形します。未設定の場合は"null"を返します。
func FormatHours(h *decimal.Decimal) string {
	return formatDecimal(h)
}

func formatDecimal(v *decimal.Decimal) string {
	if v == nil {
		return "null"
	}
	return v.StringFixed(HoursScale)
}

func formatInt(v *int) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%d", *v)
}

func formatText(v *string) string {
	if v == nil {
		return "null"
	}
	return *v
}
