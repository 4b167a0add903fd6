package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/ivlev/animconv/internal/config"
	"github.com/ivlev/animconv/internal/engine"
	"github.com/ivlev/animconv/internal/output"
	"github.com/ivlev/animconv/internal/scene"
	"github.com/ivlev/animconv/internal/source"
	"github.com/ivlev/animconv/internal/system"
)

var buildVersion = "dev"

func main() {
	// Создаем нужные директории, если их нет
	dirs := []string{"input/recordings", "output"}
	for _, d := range dirs {
		os.MkdirAll(d, 0755)
	}

	configPtr := flag.String("config", "", "Путь к TOML-конфигу")
	inputPtr := flag.String("input", "", "Путь к записи YAML (по умолчанию: самый свежий файл в input/recordings/)")
	outputPtr := flag.String("output", "", "Путь к результату (если пусто, генерируется автоматически в output/)")
	recordingFPSPtr := flag.Float64("recording-fps", 0, "FPS записи (0 - взять из файла, иначе 1000)")
	targetFPSPtr := flag.Float64("target-fps", 30, "FPS анимации Blender")
	startFramePtr := flag.Int("start-frame", 0, "Номер первого кадра")
	noDownsamplePtr := flag.Bool("no-downsample", false, "Не пересэмплировать ключи, только пересчитать кадры")
	workersPtr := flag.Int("workers", 0, "Потоки (0 - по числу CPU)")
	statsPtr := flag.Bool("stats", false, "Показать сводную таблицу")

	flag.Parse()

	cfg, err := config.Load(*configPtr)
	if err != nil {
		log.Fatalf("[-] Ошибка конфигурации: %v", err)
	}
	cfg.BuildVersion = buildVersion

	// Флаги перекрывают конфиг, только если заданы явно
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.InputPath = *inputPtr
		case "output":
			cfg.OutputPath = *outputPtr
		case "recording-fps":
			cfg.RecordingFPS = *recordingFPSPtr
		case "target-fps":
			cfg.TargetFPS = *targetFPSPtr
		case "start-frame":
			cfg.StartFrame = *startFramePtr
		case "no-downsample":
			cfg.Downsample = !*noDownsamplePtr
		case "workers":
			cfg.Workers = *workersPtr
		case "stats":
			cfg.ShowStats = *statsPtr
		}
	})
	if cfg.Workers == 0 {
		cfg.Workers = system.DefaultWorkers()
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("[-] Ошибка конфигурации: %v", err)
	}

	if cfg.InputPath == "" {
		latest, err := scene.FindLatestRecording("input/recordings")
		if err != nil {
			log.Fatalf("[-] Ошибка: %v. Положите запись в input/recordings/", err)
		}
		cfg.InputPath = latest
		fmt.Printf("[*] Выбран файл: %s\n", cfg.InputPath)
	}

	if cfg.OutputPath == "" {
		cfg.OutputPath = defaultOutputPath(cfg.InputPath, time.Now())
	}

	src, err := source.NewFileSource(cfg.InputPath)
	if err != nil {
		log.Fatalf("[-] Ошибка инициализации источника: %v", err)
	}
	defer src.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	project := engine.NewProject(cfg, src, &output.YAMLWriter{Path: cfg.OutputPath})
	report, err := project.Run(ctx)
	if err != nil {
		stop()
		src.Close()
		log.Fatalf("[-] Ошибка проекта: %v", err)
	}

	if cfg.ShowStats {
		fmt.Println(renderReport(report, cfg.BuildVersion))
	}

	fmt.Printf("[+++] Успех! Кадры %d-%d, результат: %s\n", report.FrameStart, report.FrameEnd, cfg.OutputPath)
}

func defaultOutputPath(inputPath string, now time.Time) string {
	baseName := filepath.Base(inputPath)
	ext := filepath.Ext(baseName)
	nameOnly := strings.TrimSuffix(baseName, ext)
	cleanName := strings.ReplaceAll(nameOnly, " ", "_")
	timestamp := now.Format("2006-01-02_15-04-05")
	return filepath.Join("output", fmt.Sprintf("%s_%s.yaml", cleanName, timestamp))
}
