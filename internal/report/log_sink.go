// internal/report/log_sink.go
package report

import (
	"github.com/rs/zerolog"
)

// LogSink 把报告写成结构化日志
type LogSink struct {
	log zerolog.Logger
}

// NewLogSink 创建一个基于 zerolog 的 Sink
func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log.With().Str("component", "report").Logger()}
}

// Publish 实现了 Sink 接口
func (s *LogSink) Publish(r Report) error {
	event := s.log.Info().
		Str("observer", r.Observer).
		Str("observer_id", r.ObserverID.String()).
		Str("kind", string(r.Kind))

	switch r.Kind {
	case KindTotal:
		event.Float64("total", r.Total).Msg("📊 total")
	case KindRender:
		event.Int("bars", len(r.Values)).Msg("🖼️ rendering")
		if r.Chart != "" {
			s.log.Debug().Msg("\n" + r.Chart)
		}
	case KindArchive:
		event.Str("object_key", r.ObjectKey).Msg("📦 archived")
	default:
		event.Msg("report")
	}
	return nil
}
