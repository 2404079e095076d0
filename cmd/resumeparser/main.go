package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/parser"
)

// 命令行参数定义
var (
	configPath = pflag.StringP("config", "c", "", "配置文件路径（YAML），缺省使用内置默认配置")
	outputPath = pflag.StringP("output", "o", "", "输出JSON文件路径，缺省打印到标准输出")
	anonymize  = pflag.Bool("anonymize", false, "输出脱敏后的记录（移除姓名/邮箱/电话/原文）")
	pretty     = pflag.Bool("pretty", true, "JSON缩进输出")
	timeout    = pflag.Duration("timeout", 60*time.Second, "单个文件的解析超时")
)

func main() {
	pflag.Parse()
	files := pflag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "用法: resumeparser [flags] <简历文件>...")
		pflag.Usage()
		os.Exit(1)
	}

	// .env 可选，不存在时静默忽略
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logger)

	p, err := parser.NewResumeParser(context.Background(), &cfg.Parser)
	if err != nil {
		logger.Fatal().Err(err).Msg("初始化解析器失败")
	}

	exitCode := 0
	var results []json.RawMessage
	for _, file := range files {
		record, err := parseOne(p, file)
		if err != nil {
			logger.Error().Err(err).Str("file", file).Msg("解析失败")
			exitCode = 1
			continue
		}
		results = append(results, record)
	}

	if len(results) > 0 {
		if err := writeOutput(results); err != nil {
			logger.Error().Err(err).Msg("写出结果失败")
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

// parseOne 解析单个文件并序列化为JSON
func parseOne(p *parser.ResumeParser, file string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	record, err := p.ParseFile(ctx, file)
	if err != nil {
		return nil, err
	}
	if *anonymize {
		record = record.Anonymize()
	}

	if *pretty {
		return json.MarshalIndent(record, "", "  ")
	}
	return json.Marshal(record)
}

// writeOutput 单文件时输出对象，多文件时输出数组
func writeOutput(results []json.RawMessage) error {
	var out []byte
	if len(results) == 1 {
		out = results[0]
	} else {
		var err error
		if *pretty {
			out, err = json.MarshalIndent(results, "", "  ")
		} else {
			out, err = json.Marshal(results)
		}
		if err != nil {
			return err
		}
	}
	out = append(out, '\n')

	if *outputPath == "" {
		_, err := os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(*outputPath, out, 0o644)
}
