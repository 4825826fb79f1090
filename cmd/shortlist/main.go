// Package main is the shortlist CLI entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/shortlist-hq/shortlist/internal/cli"
	"github.com/shortlist-hq/shortlist/internal/config"
	"github.com/shortlist-hq/shortlist/internal/embedding"
	"github.com/shortlist-hq/shortlist/internal/extract"
	"github.com/shortlist-hq/shortlist/internal/models"
	"github.com/shortlist-hq/shortlist/internal/pipeline"
	"github.com/shortlist-hq/shortlist/internal/scoring"
	"github.com/shortlist-hq/shortlist/internal/server"
	"github.com/shortlist-hq/shortlist/pkg/utils"
	"go.uber.org/zap"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/shortlist/config.yaml"

// resumeExtensions are the upload formats accepted when scoring a directory.
var resumeExtensions = []string{".pdf", ".docx", ".xlsx", ".txt", ".md"}

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used instead. A missing default config is not an error; defaults apply.
func loadConfig(path string) (*config.Config, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				return config.Load(fallback)
			}
		}
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			cfg := &config.Config{}
			config.ApplyDefaults(cfg)
			return cfg, nil
		}
	}
	return config.Load(path)
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "server":
		runServer()
	case "score":
		runScore()
	case "version", "--version", "-v":
		fmt.Printf("shortlist version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// newEmbedder builds the ONNX embedder, falling back to the deterministic
// bag-of-words embedder when the model cannot be loaded (e.g. no model file
// or built without CGO).
func newEmbedder(cfg *config.EmbeddingConfig, logger *zap.Logger) embedding.Embedder {
	onnxEmbedder, err := embedding.NewONNXEmbedder(
		cfg.ModelPath, cfg.Dimensions, cfg.MaxTokens, cfg.CacheSize)
	if err != nil {
		logger.Warn("ONNX model unavailable, using deterministic fallback embedder",
			zap.String("model_path", cfg.ModelPath),
			zap.Error(err))
		return embedding.NewMockEmbedder(cfg.Dimensions)
	}
	logger.Info("ONNX embedder loaded",
		zap.String("model_path", cfg.ModelPath),
		zap.Int("dimensions", cfg.Dimensions))
	return onnxEmbedder
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	embedder := newEmbedder(&cfg.Embedding, logger)
	defer embedder.Close()

	p := pipeline.New(scoring.NewScorer(embedder), logger)
	srv := server.NewServer(p, extract.NewExtractor(), &cfg.Server, logger)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runScore() {
	fs := flag.NewFlagSet("score", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	keywords := fs.String("keywords", "", "comma-separated required keywords")
	outputFormat := fs.String("output", "text", "output format: text or json")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: shortlist score [flags] <job-description-file> <resume-file-or-dir>...\n\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 2 {
		fs.Usage()
		os.Exit(1)
	}

	format := cli.OutputText
	switch *outputFormat {
	case "json":
		format = cli.OutputJSON
	case "text":
	default:
		fmt.Printf("Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	extractor := extract.NewExtractor()
	jdText, err := extractor.Extract(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read job description: %v\n", err)
		os.Exit(1)
	}

	candidates := collectCandidates(fs.Args()[1:], extractor, logger)

	embedder := newEmbedder(&cfg.Embedding, logger)
	defer embedder.Close()

	p := pipeline.New(scoring.NewScorer(embedder), logger)
	records, err := p.Run(context.Background(), models.Reference{Text: jdText}, candidates, models.ParseTerms(*keywords))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Scoring failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteScoreResults(os.Stdout, records, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

// collectCandidates reads each path (files directly, directories one level
// deep filtered by resume extensions) and extracts text. Unreadable files
// become empty-text candidates, which the pipeline drops.
func collectCandidates(paths []string, extractor *extract.Extractor, logger *zap.Logger) []models.Candidate {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			logger.Warn("skipping path", zap.String("path", path), zap.Error(err))
			continue
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			logger.Warn("skipping directory", zap.String("path", path), zap.Error(err))
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if hasResumeExtension(entry.Name()) {
				files = append(files, filepath.Join(path, entry.Name()))
			}
		}
	}
	sort.Strings(files)

	candidates := make([]models.Candidate, 0, len(files))
	for _, file := range files {
		text, err := extractor.Extract(file)
		if err != nil {
			logger.Warn("extraction failed", zap.String("path", file), zap.Error(err))
			text = ""
		}
		candidates = append(candidates, models.Candidate{Name: filepath.Base(file), Text: text})
	}
	return candidates
}

func hasResumeExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range resumeExtensions {
		if ext == want {
			return true
		}
	}
	return false
}

func printUsage() {
	fmt.Println(`shortlist - Rank resumes against a job description

Usage:
  shortlist server [flags]                       Start the HTTP server
  shortlist score [flags] <jd-file> <resumes>    Score resumes from the command line
  shortlist version                              Show version
  shortlist help                                 Show this help

Server Flags:
  --config string    Config file path (default: /usr/local/etc/shortlist/config.yaml)
  --debug            Enable debug logging

Score Flags:
  --config string    Config file path
  --keywords string  Comma-separated required keywords
  --output string    Output format: text or json (default: text)

Examples:
  shortlist server
  shortlist score jd.txt resumes/
  shortlist score --keywords "python,sql" --output json jd.txt alice.pdf bob.docx`)
}
