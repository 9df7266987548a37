// main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Slade66/reactive-sheet/internal/logging"
	"github.com/Slade66/reactive-sheet/internal/report"
	"github.com/Slade66/reactive-sheet/internal/sheet"
	"github.com/Slade66/reactive-sheet/pkg/feed"
	"github.com/Slade66/reactive-sheet/pkg/update"
)

func main() {
	// 1. 参数解析
	valuesStr := flag.String("values", "1,2,3,4", "逗号分隔的初始数值")
	urlStr := flag.String("url", "", "从该 URL 拉取 JSON 数组作为初始数值 (优先于 -values)")
	logLevel := flag.String("log-level", "debug", "日志级别")
	flag.Parse()

	log := logging.NewConsole(*logLevel)

	// 2. 获取初始数值
	var values []float64
	var err error
	if *urlStr != "" {
		log.Info().Str("url", *urlStr).Msg("🔎 正在拉取数据...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		values, err = feed.Fetch(ctx, *urlStr)
		cancel()
	} else {
		values, err = feed.ParseList(*valuesStr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "错误:", err)
		flag.Usage()
		os.Exit(1)
	}

	// 3. 创建数据源和观察者
	s := sheet.New(report.NewLogSink(log), sheet.WithLogger(log))

	// 4. 替换数值，柱状图和求和观察者都会收到通知
	if err := s.Apply(update.New(values, "cli")); err != nil {
		log.Fatal().Err(err).Msg("❌ 更新失败")
	}

	// 5. 移除柱状图后再次更新，只有求和观察者会收到通知
	log.Info().Msg("removing bar chart")
	if err := s.DetachChart(); err != nil {
		log.Fatal().Err(err).Msg("❌ 移除观察者失败")
	}
	if err := s.Apply(update.New([]float64{10, 1}, "cli")); err != nil {
		log.Fatal().Err(err).Msg("❌ 更新失败")
	}
	log.Info().Float64("total", s.Total()).Msg("🏁 完成")
}
