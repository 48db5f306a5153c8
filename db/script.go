package db

import (
	"os"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// scriptLexer はSQLスクリプトを文単位に分割するためのトークナイザです。
// 文字列リテラルと引用符付き識別子は1トークンとして扱うため、
// その中の ";" や "-- " で分割されることはありません。
var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `-- [^\n]*`},
	{Name: "String", Pattern: `'(?:''|\\.|[^'\\])*'`},
	{Name: "QuotedIdent", Pattern: "`[^`]*`|\"[^\"]*\""},
	{Name: "Semicolon", Pattern: `;`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Text", Pattern: "[^;'\"`\\s-]+|-|['\"`]"},
})

var (
	commentToken    = scriptLexer.Symbols()["Comment"]
	semicolonToken  = scriptLexer.Symbols()["Semicolon"]
	whitespaceToken = scriptLexer.Symbols()["Whitespace"]
)

// SplitStatements はSQLスクリプトを個々の文に分割します。
//
//   - "-- " から行末までのコメントを取り除く（最終行のコメントも含む）
//   - 連続する空白・改行は1つの空白にまとめる（リテラル内は保持）
//   - ";" で分割し、前後の空白を取り除く
//   - 空の文は捨て、末尾の ";" がない最後の文も1文として扱う
func SplitStatements(script string) ([]string, error) {
	lex, err := scriptLexer.LexString("", script)
	if err != nil {
		return nil, errors.Wrap(err, "failed to tokenize script")
	}

	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, errors.Wrap(err, "failed to tokenize script")
	}

	var (
		statements []string
		current    strings.Builder
		gap        bool
	)

	flush := func() {
		if stmt := strings.TrimSpace(current.String()); stmt != "" {
			statements = append(statements, stmt)
		}
		current.Reset()
		gap = false
	}

	for _, tok := range tokens {
		switch tok.Type {
		case lexer.EOF:
		case commentToken, whitespaceToken:
			gap = true
		case semicolonToken:
			flush()
		default:
			if gap && current.Len() > 0 {
				current.WriteByte(' ')
			}
			gap = false
			current.WriteString(tok.Value)
		}
	}
	flush()

	return statements, nil
}

// ReadScript はSQLスクリプトファイルを読み込みます。
func ReadScript(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read schema file %s", path)
	}
	return string(content), nil
}
