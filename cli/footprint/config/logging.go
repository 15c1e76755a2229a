package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ConfigureLogging логи пишутся в консоль (stderr, stdout занят отчетом)
// и, если задан log_file_path, в файл с ротацией
func ConfigureLogging(s Settings, console io.Writer) error {
	log.SetLevel(s.GetLogLevel())

	consoleFmt := &log.TextFormatter{ForceColors: true, FullTimestamp: false}
	log.SetFormatter(consoleFmt)
	log.SetOutput(console)

	if s.LogFilePath == "" {
		return nil
	}

	logDir := filepath.Dir(s.LogFilePath)
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
			return fmt.Errorf("не получилось создать директорию для логов: %w", err)
		}
	}

	log.AddHook(newFileHook(s))
	return nil
}

func newFileHook(s Settings) *lfshook.LfsHook {
	lumberjackLogger := &lumberjack.Logger{
		Filename:   s.LogFilePath,
		MaxSize:    10,
		MaxBackups: 30,
		MaxAge:     s.LogMaxAgeDays,
		Compress:   true,
	}

	fileFmt := &log.TextFormatter{DisableColors: true, FullTimestamp: true}
	return lfshook.NewHook(lfshook.WriterMap{
		log.PanicLevel: lumberjackLogger,
		log.FatalLevel: lumberjackLogger,
		log.ErrorLevel: lumberjackLogger,
		log.WarnLevel:  lumberjackLogger,
		log.InfoLevel:  lumberjackLogger,
		log.DebugLevel: lumberjackLogger,
		log.TraceLevel: lumberjackLogger,
	}, fileFmt)
}
