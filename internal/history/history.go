package history

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"time"

	"github.com/shouni/go-recipe-seo-kit/pkg/domain"

	"github.com/google/uuid"
)

// Reader は履歴ファイルの入力元の契約です。remote-io の InputReader が
// これを満たします。
type Reader interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// Writer は履歴ファイルの出力先の契約です。remote-io の OutputWriter が
// これを満たします。
type Writer interface {
	Write(ctx context.Context, path string, data io.Reader, mimeType string) error
}

// Store は生成済み記事の履歴をJSONファイルとして永続化します。
// ローカルパスと gs:// の両方に対応します（remote-io 経由）。
type Store struct {
	reader Reader
	writer Writer
	path   string
}

// NewStore は Store を初期化します。
func NewStore(reader Reader, writer Writer, path string) *Store {
	return &Store{
		reader: reader,
		writer: writer,
		path:   path,
	}
}

// Load は履歴ファイルを読み込みます。ファイルが存在しない場合は
// 空の履歴を返します（初回実行）。
func (s *Store) Load(ctx context.Context) ([]domain.SavedArticle, error) {
	rc, err := s.reader.Open(ctx, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("履歴ファイル '%s' を開けませんでした: %w", s.path, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("履歴ファイルの読み込みに失敗しました: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var articles []domain.SavedArticle
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("履歴ファイルのデコードに失敗しました: %w", err)
	}
	return articles, nil
}

// Append は記事を履歴の先頭に追加して保存し、採番されたIDを返します。
// IDとタイムスタンプが未設定の場合はここで補われます。
func (s *Store) Append(ctx context.Context, article domain.SavedArticle) (string, error) {
	if article.ID == "" {
		article.ID = uuid.NewString()
	}
	if article.Timestamp == 0 {
		article.Timestamp = time.Now().UnixMilli()
	}

	articles, err := s.Load(ctx)
	if err != nil {
		return "", err
	}
	articles = append([]domain.SavedArticle{article}, articles...)

	if err := s.save(ctx, articles); err != nil {
		return "", err
	}
	slog.Info("記事を履歴に保存しました", "id", article.ID, "title", article.Title)
	return article.ID, nil
}

// Find はIDに一致する履歴エントリを返します。
func (s *Store) Find(ctx context.Context, id string) (domain.SavedArticle, error) {
	articles, err := s.Load(ctx)
	if err != nil {
		return domain.SavedArticle{}, err
	}
	for _, a := range articles {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.SavedArticle{}, fmt.Errorf("履歴にID '%s' の記事が見つかりません", id)
}

// Update はIDに一致するエントリへ変更を適用して保存します。後続の工程で
// 生成されたアセットや台本を、元の記事エントリに追記するために使います。
func (s *Store) Update(ctx context.Context, id string, mutate func(*domain.SavedArticle)) error {
	articles, err := s.Load(ctx)
	if err != nil {
		return err
	}
	for i := range articles {
		if articles[i].ID == id {
			mutate(&articles[i])
			return s.save(ctx, articles)
		}
	}
	return fmt.Errorf("履歴にID '%s' の記事が見つかりません", id)
}

// Delete はIDに一致するエントリを削除します。
func (s *Store) Delete(ctx context.Context, id string) error {
	articles, err := s.Load(ctx)
	if err != nil {
		return err
	}

	kept := articles[:0]
	for _, a := range articles {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(articles) {
		return fmt.Errorf("履歴にID '%s' の記事が見つかりません", id)
	}
	return s.save(ctx, kept)
}

func (s *Store) save(ctx context.Context, articles []domain.SavedArticle) error {
	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return fmt.Errorf("履歴のエンコードに失敗しました: %w", err)
	}
	if err := s.writer.Write(ctx, s.path, bytes.NewReader(data), "application/json"); err != nil {
		return fmt.Errorf("履歴ファイルの保存に失敗しました: %w", err)
	}
	return nil
}
