package server

import (
	"context"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/andrewyi/pyparser/src/config"
	"github.com/andrewyi/pyparser/src/controller"
	"github.com/andrewyi/pyparser/src/dbstorage"
	"github.com/andrewyi/pyparser/src/downloader"
	"github.com/andrewyi/pyparser/src/enum"
	"github.com/andrewyi/pyparser/src/filestorage"
	"github.com/andrewyi/pyparser/src/output"
	"github.com/andrewyi/pyparser/src/util"
)

type Server struct {
	ctx    context.Context
	cancel context.CancelFunc
	logger *log.Logger
	config *config.Config

	stdout io.Writer
	stderr io.Writer

	logFile *os.File
	cache   dbstorage.DBStorage
}

func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		ctx:    ctx,
		cancel: cancel,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// 日志输出到stderr，stdout只用于结果
func (s *Server) initLog() error {
	var logger = log.New()
	logger.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	var out = s.stderr
	if s.config.Log.File != "" {
		f, err := os.OpenFile(s.config.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("fail to open log file, err: %w", err)
		}
		s.logFile = f
		out = io.MultiWriter(s.stderr, f)
	}
	logger.SetOutput(out)

	if s.config.Log.Context {
		logger.SetReportCaller(true)
	}

	if logLevel, err := log.ParseLevel(s.config.Log.Level); err != nil {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(logLevel)
	}
	s.logger = logger
	return nil
}

func (s *Server) Start(ctx *cli.Context) error {
	var err error

	mode, err := enum.ParseMode(ctx.Args().First())
	if err != nil {
		return err
	}
	format, err := enum.ParseOutputFormat(ctx.String("output"))
	if err != nil {
		return err
	}

	configPath := ctx.String("config")
	var cfg = &config.Config{}
	if err = util.ReadConfig(configPath, config.Defaults(), cfg); err != nil {
		return fmt.Errorf("fail to load config, err: %w", err)
	}
	s.config = cfg

	if err = s.initLog(); err != nil {
		return err
	}
	defer s.Stop()

	s.logger.Info("parser started")
	s.logger.WithFields(log.Fields{
		"mode":        mode,
		"output":      format,
		"clear_cache": ctx.Bool("clear-cache"),
		"config":      configPath,
	}).Info("command line arguments")

	return s.Run(mode, format, ctx.Bool("clear-cache"))
}

// Run 执行一次解析，配置与日志需已初始化
func (s *Server) Run(mode enum.Mode, format enum.OutputFormat, clearCache bool) error {
	cfg := s.config

	cache, err := dbstorage.NewDBStorage(cfg.Cache.Driver, cfg.Cache.URL)
	if err != nil {
		return fmt.Errorf("fail to open cache, err: %w", err)
	}
	s.cache = cache

	if clearCache && cache != nil {
		if err := cache.Clear(); err != nil {
			return fmt.Errorf("fail to clear cache, err: %w", err)
		}
		s.logger.Info("cache cleared")
	}

	d := downloader.NewSimpleDownloader(s.ctx, downloader.Options{
		Timeout:     cfg.Downloader.Timeout,
		UserAgent:   cfg.Downloader.UserAgent,
		ExpireAfter: cfg.Cache.ExpireAfter,
	}, cache, s.logger)

	var progress io.Writer
	if cfg.Progress.Enabled {
		progress = s.stderr
	}

	c := controller.NewSimpleController(
		cfg, d, filestorage.NewSimpleFileStorage(cfg.Storage.DownloadsDir), progress, s.logger)

	results, err := c.Process(mode)
	if err != nil {
		return err
	}
	if results != nil {
		o := output.NewOutput(s.stdout, filestorage.NewSimpleFileStorage(cfg.Storage.ResultsDir),
			cfg.Storage.DatetimeFormat, s.logger)
		if err := o.Control(results, format, mode); err != nil {
			return err
		}
	}

	s.logger.Info("parser finished")
	return nil
}

func (s *Server) Stop() {
	s.cancel()
	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			s.logger.WithError(err).Warn("fail to close cache")
		}
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}
