// Package store は、データの永続化機能を提供します。
package store

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/stsysd/projects/db"
	"github.com/stsysd/projects/model"
)

// ProjectStore はプロジェクトの保存と取得を行うインターフェースです。
type ProjectStore interface {
	// ExecuteBatch は複数のSQL文を1つのトランザクションで実行します。
	ExecuteBatch(ctx context.Context, statements []string) error
	// InsertProject は新しいプロジェクトを作成し、IDが採番されたプロジェクトを返します。
	InsertProject(ctx context.Context, project *model.Project) (*model.Project, error)
	// ListProjects はすべてのプロジェクトをID順に取得します（子コレクションは含みません）。
	ListProjects(ctx context.Context) ([]*model.Project, error)
	// FetchProject は指定されたIDのプロジェクトを材料・手順・カテゴリ付きで取得します。
	// 存在しない場合は (nil, nil) を返します。
	FetchProject(ctx context.Context, id int64) (*model.Project, error)
	// UpdateProject はプロジェクトを更新し、1行だけ更新された場合にtrueを返します。
	UpdateProject(ctx context.Context, project *model.Project) (bool, error)
	// DeleteProject はプロジェクトとカテゴリの関連を削除し、プロジェクトが削除された場合にtrueを返します。
	DeleteProject(ctx context.Context, project *model.Project) (bool, error)
}

// Connector は操作ごとの接続を払い出します。
type Connector interface {
	Acquire(ctx context.Context) (*sql.Conn, error)
}

// SQLStore はdatabase/sqlを使用したProjectStoreの実装です。
// 呼び出しをまたいで状態を持たず、操作ごとに接続とトランザクションを開きます。
type SQLStore struct {
	conns  Connector
	logger *slog.Logger
}

var _ ProjectStore = (*SQLStore)(nil)

// NewSQLStore は新しいSQLStoreを作成します。
func NewSQLStore(conns Connector, logger *slog.Logger) *SQLStore {
	return &SQLStore{conns: conns, logger: logger}
}

// ExecuteBatch は文を順に実行し、すべて成功した場合のみコミットします。
// MySQLではDDLが暗黙にコミットされるため、全体の取り消しが保証されるのはDMLのみです。
func (s *SQLStore) ExecuteBatch(ctx context.Context, statements []string) error {
	return s.withTx(ctx, "execute batch", func(tx *sql.Tx, _ *db.Queries) error {
		for i, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				s.logger.Error("statement failed", "index", i, "statement", stmt, "error", err)
				return err
			}
		}
		s.logger.Info("batch executed", "statements", len(statements))
		return nil
	})
}

// InsertProject はプロジェクトを挿入し、採番されたIDを設定したコピーを返します。
func (s *SQLStore) InsertProject(ctx context.Context, project *model.Project) (*model.Project, error) {
	var inserted *model.Project
	p := withScaledHours(project)

	err := s.withTx(ctx, "insert project", func(_ *sql.Tx, q *db.Queries) error {
		difficulty, err := nullInt32(p.Difficulty)
		if err != nil {
			return err
		}

		result, err := q.CreateProject(ctx, db.CreateProjectParams{
			ProjectName:    p.Name,
			EstimatedHours: nullDecimal(p.EstimatedHours),
			ActualHours:    nullDecimal(p.ActualHours),
			Difficulty:     difficulty,
			Notes:          nullString(p.Notes),
		})
		if err != nil {
			return err
		}

		// 同じ接続・トランザクション内で採番されたID
		id, err := result.LastInsertId()
		if err != nil {
			return err
		}

		p.ID = id
		if p.Materials == nil {
			p.Materials = []model.Material{}
		}
		if p.Steps == nil {
			p.Steps = []model.Step{}
		}
		if p.Categories == nil {
			p.Categories = []model.Category{}
		}
		inserted = &p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("project inserted", "project_id", inserted.ID, "project_name", inserted.Name)
	return inserted, nil
}

// ListProjects はすべてのプロジェクトをID昇順で返します。
func (s *SQLStore) ListProjects(ctx context.Context) ([]*model.Project, error) {
	var projects []*model.Project

	err := s.withTx(ctx, "list projects", func(_ *sql.Tx, q *db.Queries) error {
		rows, err := q.ListProjects(ctx)
		if err != nil {
			return err
		}
		projects = make([]*model.Project, 0, len(rows))
		for _, row := range rows {
			projects = append(projects, toModelProject(row))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// FetchProject はIDでプロジェクトを取得し、材料・手順・カテゴリを付与して返します。
func (s *SQLStore) FetchProject(ctx context.Context, id int64) (*model.Project, error) {
	projectID, ok := rowID(id)
	if !ok {
		return nil, nil
	}

	var project *model.Project

	err := s.withTx(ctx, "fetch project", func(_ *sql.Tx, q *db.Queries) error {
		row, err := q.GetProject(ctx, projectID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		p := toModelProject(row)

		materials, err := q.ListMaterialsByProject(ctx, projectID)
		if err != nil {
			return err
		}
		steps, err := q.ListStepsByProject(ctx, projectID)
		if err != nil {
			return err
		}
		categories, err := q.ListCategoriesByProject(ctx, projectID)
		if err != nil {
			return err
		}

		p.Materials = toModelMaterials(materials)
		p.Steps = toModelSteps(steps)
		p.Categories = toModelCategories(categories)
		project = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

// UpdateProject は5つの項目をすべて上書きします。
// 該当する行がない場合はエラーではなくfalseを返します。
func (s *SQLStore) UpdateProject(ctx context.Context, project *model.Project) (bool, error) {
	projectID, ok := rowID(project.ID)
	if !ok {
		return false, nil
	}

	var updated bool
	p := withScaledHours(project)

	err := s.withTx(ctx, "update project", func(_ *sql.Tx, q *db.Queries) error {
		difficulty, err := nullInt32(p.Difficulty)
		if err != nil {
			return err
		}

		result, err := q.UpdateProject(ctx, db.UpdateProjectParams{
			ProjectName:    p.Name,
			EstimatedHours: nullDecimal(p.EstimatedHours),
			ActualHours:    nullDecimal(p.ActualHours),
			Difficulty:     difficulty,
			Notes:          nullString(p.Notes),
			ProjectID:      projectID,
		})
		if err != nil {
			return err
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		updated = rowsAffected == 1
		return nil
	})
	if err != nil {
		return false, err
	}

	s.logger.Info("project updated", "project_id", project.ID, "updated", updated)
	return updated, nil
}

// DeleteProject はカテゴリの関連とプロジェクトを同じトランザクションで削除します。
// 関連は0件以上、プロジェクトはちょうど1件削除された場合のみコミットし、
// それ以外はロールバックしてfalseを返します。
func (s *SQLStore) DeleteProject(ctx context.Context, project *model.Project) (bool, error) {
	projectID, ok := rowID(project.ID)
	if !ok {
		return false, nil
	}

	err := s.withTx(ctx, "delete project", func(_ *sql.Tx, q *db.Queries) error {
		// project_category には外部キーのカスケードがないため明示的に削除する
		result, err := q.DeleteProjectCategories(ctx, projectID)
		if err != nil {
			return err
		}
		links, err := result.RowsAffected()
		if err != nil {
			return err
		}

		result, err = q.DeleteProject(ctx, projectID)
		if err != nil {
			return err
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return err
		}

		s.logger.Debug("delete statements executed", "project_id", project.ID, "category_links", links, "projects", rowsAffected)
		if rowsAffected != 1 {
			return errRollback
		}
		return nil
	})
	if errors.Is(err, errRollback) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	s.logger.Info("project deleted", "project_id", project.ID)
	return true, nil
}
