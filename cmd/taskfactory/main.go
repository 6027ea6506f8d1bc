package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"go.uber.org/zap"

	"task-factory/internal/config"
	"task-factory/internal/logger"
	"task-factory/internal/service"
)

const usage = "usage: taskfactory <id> <description> <YYYY-MM-DD>"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	baseLogger := logger.Build(cfg)
	code := run(os.Args[1:], os.Stdout, baseLogger)
	_ = baseLogger.Sync()
	os.Exit(code)
}

func run(args []string, stdout io.Writer, baseLogger *zap.Logger) int {
	if len(args) != 3 {
		baseLogger.Error(usage, zap.Int("args", len(args)))
		return 2
	}

	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		baseLogger.Error("invalid task id", zap.String("id", args[0]), zap.Error(err))
		return 2
	}

	factory := service.NewTaskFactory(baseLogger.Named("factory"))
	task := factory.Create(id, args[1], args[2])
	baseLogger.Debug("task created", zap.Uint64("id", task.ID), zap.Int64("deadline", task.Deadline))

	if _, err := fmt.Fprintln(stdout, task.String()); err != nil {
		baseLogger.Error("write task", zap.Error(err))
		return 1
	}
	return 0
}
