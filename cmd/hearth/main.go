package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/hearth-web/hearth"
	"github.com/hearth-web/hearth/config"
	"github.com/hearth-web/hearth/internal/seed"
)

// fileConfig is the subset of settings adjustable via hearth.yaml.
type fileConfig struct {
	Host string `yaml:"host"`
	Port uint16 `yaml:"port"`
	Root string `yaml:"root"`
}

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	var (
		configPath = flag.String("config", "hearth.yaml", "path to an optional yaml config file")
		host       = flag.String("host", "", "host to bind (overrides config and env)")
		port       = flag.Int("port", 0, "port to bind (overrides config and env)")
		root       = flag.String("root", "", "document root (overrides config and env)")
		populate   = flag.Bool("seed", true, "populate the document root with sample files")
	)
	flag.Parse()

	// precedence, lowest to highest: defaults, yaml file, .env/environment, flags
	cfg := config.Default()
	if err := applyFile(cfg, *configPath); err != nil {
		log.Fatalf("reading %s: %s", *configPath, err)
	}
	applyEnv(cfg)
	applyFlags(cfg, *host, *port, *root)

	if *populate {
		if err := seed.Populate(cfg.Root); err != nil {
			log.Fatalf("populating %s: %s", cfg.Root, err)
		}
	}

	app := hearth.New(cfg).
		AccessLog(os.Stdout).
		OnStart(func() { banner(cfg) })

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		color.Yellow("shutting down, draining connections...")
		app.Stop()
	}()

	switch err := app.Serve(); {
	case errors.Is(err, syscall.EADDRINUSE):
		log.Fatalf("port %d is already in use, pick another one via -port", cfg.Port)
	case err != nil:
		log.Fatal(err)
	}
}

func applyFile(cfg *config.Config, path string) error {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return err
	}

	if fc.Host != "" {
		cfg.Host = fc.Host
	}
	if fc.Port != 0 {
		cfg.Port = fc.Port
	}
	if fc.Root != "" {
		cfg.Root = fc.Root
	}

	return nil
}

func applyEnv(cfg *config.Config) {
	// a missing .env file is fine, the environment itself still applies
	_ = godotenv.Load()

	if host := os.Getenv("HEARTH_HOST"); host != "" {
		cfg.Host = host
	}
	if port := os.Getenv("HEARTH_PORT"); port != "" {
		p, err := strconv.ParseUint(port, 10, 16)
		if err != nil {
			log.Fatalf("HEARTH_PORT: %s", err)
		}
		cfg.Port = uint16(p)
	}
	if root := os.Getenv("HEARTH_ROOT"); root != "" {
		cfg.Root = root
	}
}

func applyFlags(cfg *config.Config, host string, port int, root string) {
	if host != "" {
		cfg.Host = host
	}
	if port != 0 {
		cfg.Port = uint16(port)
	}
	if root != "" {
		cfg.Root = root
	}
}

func banner(cfg *config.Config) {
	abs, err := filepath.Abs(cfg.Root)
	if err != nil {
		abs = cfg.Root
	}

	color.Green("hearth is listening on http://%s", cfg.Addr())
	color.Green("serving files from %s", abs)
	color.Green("one goroutine per connection, GET and HEAD only")
}
