// =============================================================================
// PoseVal 主入口
// =============================================================================
// 命令行评估入口，包含套件配置加载、批次处理、JSON 报告输出
//
// 使用方法:
//
//	poseval run --samples samples.json                       # 默认套件
//	poseval run --config suite.yaml --samples samples.json   # 指定套件
//	poseval run --samples samples.json --output report.json  # 输出到文件
//	poseval version                                          # 显示版本信息
// =============================================================================

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/BaSui01/poseval/config"
	"github.com/BaSui01/poseval/internal/telemetry"
	"github.com/BaSui01/poseval/types"
)

// =============================================================================
// 📦 版本信息（构建时注入）
// =============================================================================

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// =============================================================================
// 🎯 主函数
// =============================================================================

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "run":
		runEvaluate(os.Args[2:])
	case "version":
		printVersion()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// =============================================================================
// 🏃 run 命令
// =============================================================================

func runEvaluate(args []string) {
	// 解析命令行参数
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to suite config file (YAML)")
	samplesPath := fs.String("samples", "", "Path to samples file (JSON)")
	outputPath := fs.String("output", "", "Path to write the report (default stdout)")
	batchSize := fs.Int("batch-size", 0, "Samples per Process call (0 = single batch)")
	logLevel := fs.String("log-level", "info", "Log level: debug, info, warn, error")
	logFormat := fs.String("log-format", "console", "Log format: console or json")
	fs.Parse(args)

	if *samplesPath == "" {
		fmt.Fprintln(os.Stderr, "Missing required flag: --samples")
		os.Exit(1)
	}

	// 初始化日志
	logger := initLogger(*logLevel, *logFormat)
	defer logger.Sync()

	logger.Info("Starting PoseVal",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("git_commit", GitCommit),
	)

	// 加载套件配置
	loader := config.NewLoader()
	if *configPath != "" {
		loader = loader.WithConfigPath(*configPath)
	}

	cfg, err := loader.Load()
	if err != nil {
		logger.Error("Failed to load suite config", zap.Error(err))
		os.Exit(1)
	}

	// 读取样本
	samples, err := loadSamples(*samplesPath)
	if err != nil {
		logger.Error("Failed to load samples", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("Samples loaded",
		zap.String("path", *samplesPath),
		zap.Int("count", len(samples)),
	)

	// 构建运行器并挂载 Prometheus 采集器
	runner, err := cfg.BuildRunner(logger)
	if err != nil {
		logger.Error("Failed to build runner", zap.Error(err))
		os.Exit(1)
	}
	runner.AddObserver(telemetry.NewCollector("poseval", nil, logger))

	// 按批次处理
	for _, batch := range splitBatches(samples, *batchSize) {
		if err := runner.Process(batch); err != nil {
			logger.Error("Failed to process batch", zap.Error(err))
			os.Exit(1)
		}
	}

	// 评估并输出报告
	report, err := runner.Evaluate()
	if err != nil {
		logger.Error("Evaluation failed", zap.Error(err))
		os.Exit(1)
	}

	if err := writeReport(report, *outputPath); err != nil {
		logger.Error("Failed to write report", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Evaluation finished",
		zap.String("dataset", report.Dataset),
		zap.Int("samples", report.SampleCount),
		zap.Duration("duration", report.Duration),
	)
}

// loadSamples 读取并解码 JSON 样本文件，逐条校验形状。
func loadSamples(path string) ([]types.Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read samples file: %w", err)
	}

	var samples []types.Sample
	if err := json.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("decode samples file: %w", err)
	}

	for i := range samples {
		if err := samples[i].Validate(); err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
	}
	return samples, nil
}

// splitBatches 将样本切成固定大小的批次。size <= 0 时返回单批。
func splitBatches(samples []types.Sample, size int) [][]types.Sample {
	if len(samples) == 0 {
		return nil
	}
	if size <= 0 || size >= len(samples) {
		return [][]types.Sample{samples}
	}

	batches := make([][]types.Sample, 0, (len(samples)+size-1)/size)
	for start := 0; start < len(samples); start += size {
		end := start + size
		if end > len(samples) {
			end = len(samples)
		}
		batches = append(batches, samples[start:end])
	}
	return batches
}

// writeReport 将报告序列化为 JSON，写入文件或标准输出。
func writeReport(report interface{}, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// =============================================================================
// 📋 版本和帮助
// =============================================================================

func printVersion() {
	fmt.Printf("PoseVal %s\n", Version)
	fmt.Printf("  Build Time: %s\n", BuildTime)
	fmt.Printf("  Git Commit: %s\n", GitCommit)
}

func printUsage() {
	fmt.Println(`PoseVal - 2D Keypoint Evaluation Engine

Usage:
  poseval <command> [options]

Commands:
  run       Run an evaluation suite over a samples file
  version   Show version information
  help      Show this help message

Options for 'run':
  --config <path>     Path to suite configuration file (YAML)
  --samples <path>    Path to samples file (JSON, required)
  --output <path>     Write the JSON report to a file instead of stdout
  --batch-size <n>    Samples per Process call (0 = single batch)
  --log-level <lvl>   debug, info, warn, error (default info)
  --log-format <fmt>  console or json (default console)

Examples:
  poseval run --samples samples.json
  poseval run --config suite.yaml --samples samples.json
  poseval run --samples samples.json --output report.json
  poseval version`)
}

// =============================================================================
// 🔧 日志初始化
// =============================================================================

func initLogger(levelName, format string) *zap.Logger {
	// 解析日志级别
	var level zapcore.Level
	switch levelName {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	// 配置编码器
	var encoderConfig zapcore.EncoderConfig
	if format == "console" {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encoderConfig = zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	encoding := "json"
	if format == "console" {
		encoding = "console"
	}

	// 报告走 stdout，日志发往 stderr
	zapConfig := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      format == "console",
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := zapConfig.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		// 回退到基本 logger
		logger, _ = zap.NewProduction()
	}

	return logger
}
