package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type queryStartKey struct{}

type queryStart struct {
	sql     string
	startAt time.Time
}

// QueryLogger は pgx のクエリ実行を zap に記録する pgx.QueryTracer です。
// 成功したクエリは debug、失敗したクエリは warn で出力します。
type QueryLogger struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewQueryLogger は QueryLogger を生成します。
func NewQueryLogger(logger *zap.Logger) *QueryLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueryLogger{logger: logger.Named("pgx"), now: time.Now}
}

// TraceQueryStart はクエリ開始時刻をコンテキストへ保存します。
func (l *QueryLogger) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, queryStartKey{}, queryStart{sql: data.SQL, startAt: l.now()})
}

// TraceQueryEnd はクエリの結果をログへ出力します。
func (l *QueryLogger) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(queryStartKey{}).(queryStart)
	if !ok {
		return
	}

	fields := []zap.Field{
		zap.String("sql", start.sql),
		zap.Duration("duration", l.now().Sub(start.startAt)),
	}

	if data.Err != nil {
		if errors.Is(data.Err, pgx.ErrNoRows) {
			l.logger.Debug("query returned no rows", fields...)
			return
		}
		l.logger.Warn("query failed", append(fields, zap.Error(data.Err))...)
		return
	}

	l.logger.Debug("query", append(fields, zap.Int64("rows", data.CommandTag.RowsAffected()))...)
}
