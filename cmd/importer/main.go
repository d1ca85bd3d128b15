package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"yoga-marketplace/internal/config"
	"yoga-marketplace/internal/importer"
	"yoga-marketplace/internal/logging"
	classsvc "yoga-marketplace/internal/service/class"
	"yoga-marketplace/internal/store"

	"go.uber.org/zap"
)

func main() {
	var (
		filePath   string
		instructor string
	)
	flag.StringVar(&filePath, "file", "", "Path to class listings CSV")
	flag.StringVar(&instructor, "instructor", "", "Instructor email for rows without one")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, _ := config.Load()
	logger, err := logging.New("importer", cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()
	st, err := store.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}
	defer st.Close(ctx) //nolint:errcheck

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatal("open file", zap.Error(err))
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, classsvc.New(st.Classes, false))
	imp.DefaultInstructor = instructor

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatal("import failed", zap.Int("imported", count), zap.Error(err))
	}

	fmt.Printf("Imported %d classes in %s\n", count, time.Since(start).Truncate(time.Millisecond))
}
