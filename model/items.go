// Package model は、アプリケーションのデータモデル定義を提供します。
package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Material はプロジェクトに必要な材料を表すモデルです。
type Material struct {
	ID          int64            `json:"material_id"`
	ProjectID   int64            `json:"project_id"`
	Name        string           `json:"material_name"`
	NumRequired *int             `json:"num_required"` // 必要数
	Cost        *decimal.Decimal `json:"cost"`         // 単価
}

func (m Material) String() string {
	return fmt.Sprintf("ID=%d, name=%s, numRequired=%s, cost=%s",
		m.ID, m.Name, formatInt(m.NumRequired), formatDecimal(m.Cost))
}

// Step はプロジェクトの作業手順を表すモデルです。
type Step struct {
	ID        int64  `json:"step_id"`
	ProjectID int64  `json:"project_id"`
	Text      string `json:"step_text"`
	Order     int    `json:"step_order"` // 手順の並び順
}

func (s Step) String() string {
	return fmt.Sprintf("ID=%d, order=%d, text=%s", s.ID, s.Order, s.Text)
}

// Category はプロジェクトの分類を表すモデルです。
// プロジェクトとはproject_categoryテーブルを介して多対多で関連します。
type Category struct {
	ID   int64  `json:"category_id"`
	Name string `json:"category_name"`
}

func (c Category) String() string {
	return fmt.Sprintf("ID=%d, name=%s", c.ID, c.Name)
}
