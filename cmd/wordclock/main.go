package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/extra/devices/screen"
	"periph.io/x/host/v3"

	"github.com/coreman2200/funtimes-wordclock/internal/animation"
	"github.com/coreman2200/funtimes-wordclock/internal/config"
	"github.com/coreman2200/funtimes-wordclock/internal/font"
	"github.com/coreman2200/funtimes-wordclock/internal/layout"
	"github.com/coreman2200/funtimes-wordclock/internal/preview"
	"github.com/coreman2200/funtimes-wordclock/internal/render"
	"github.com/coreman2200/funtimes-wordclock/internal/sensor"
	"github.com/coreman2200/funtimes-wordclock/internal/settings"
	"github.com/coreman2200/funtimes-wordclock/internal/strip"
)

func main() {
	// ---- Flags (config.yaml overrides them) ----
	var (
		driver       = flag.String("driver", "sim", "driver: spi | sim")
		face         = flag.String("face", "", "clock face model; empty uses the stored one")
		settingsPath = flag.String("settings", "settings.bin", "path to the persisted settings image")
		flush        = flag.String("flush", "change", "flush policy: always | change")
		fps          = flag.Int("fps", 4, "render ticks per second")
		addr         = flag.String("addr", ":8080", "preview HTTP listen address")
		spiPort      = flag.String("spi", "", "SPI port; empty picks the first one")
		ldrBus       = flag.String("ldr-bus", "", "I2C bus of the ADS1115 light sensor; empty disables it")
		ambient      = flag.Float64("ambient", 100, "fixed ambient level when no sensor is used")
		budget       = flag.Float64("budget-ma", 0, "strip current budget in mA; 0 disables limiting")
		rotate       = flag.Bool("rotate", false, "face is mounted upside down")
		logLevel     = flag.String("log-level", "info", "zerolog level")
		configPath   = flag.String("config", "config.yaml", "path to config.yaml")
		saveConfig   = flag.Bool("save-config", false, "write the effective config back to -config")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	// ---- Load config.yaml (optional) ----
	cfg := &config.Config{
		Driver: *driver, Face: *face, SettingsPath: *settingsPath, Flush: *flush,
		FPS: *fps, Addr: *addr, LogLevel: *logLevel,
		SPI:   config.SPI{Port: *spiPort},
		LDR:   config.LDR{Bus: *ldrBus, MaxVolts: 3.3, Fixed: *ambient},
		Power: config.Power{BudgetmA: *budget},
	}
	cfg = loadConfig(*configPath, cfg, *saveConfig)

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := run(cfg, *rotate); err != nil {
		log.Fatal().Err(err).Msg("wordclock stopped")
	}
}

func run(cfg *config.Config, rotate bool) error {
	if _, err := host.Init(); err != nil {
		log.Warn().Err(err).Msg("periph host init failed")
	}

	// ---- Settings ----
	f, err := os.OpenFile(cfg.SettingsPath, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("open settings: %w", err)
	}
	defer f.Close()
	s, err := settings.Load(f)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if cfg.Face != "" && cfg.Face != s.Face() {
		s.SetFace(cfg.Face)
		if err := settings.Save(f, s); err != nil {
			log.Warn().Err(err).Msg("settings save failed")
		}
	}

	// ---- Face ----
	fc, err := layout.Lookup(s.Face())
	if err != nil {
		return fmt.Errorf("face: %w (known: %v)", err, layout.Names())
	}

	// ---- Strip sinks ----
	hub := preview.NewHub(fc.Name(), fc.Rows(), fc.Cols())
	var out strip.Sink
	switch cfg.Driver {
	case "spi":
		out, _ = strip.Open(cfg.SPI.Port, fc.Pixels(), s.ColorType)
	case "sim":
		out = strip.NewDrawerSink(screen.New(fc.Pixels()))
	default:
		log.Warn().Str("driver", cfg.Driver).Msg("unknown driver; using SIM")
		out = strip.NewDrawerSink(screen.New(fc.Pixels()))
	}
	st := strip.New(fc.Pixels(), s.ColorType, out, hub)
	defer st.Close()
	if cfg.Power.BudgetmA > 0 {
		st.Limit = strip.NewLimiter(cfg.Power.BudgetmA)
		if cfg.Power.ChannelmA > 0 {
			st.Limit.ChannelmA = cfg.Power.ChannelmA
		}
	}

	// ---- Ambient light ----
	amb, closeAmb := openAmbient(cfg, s)
	defer closeAmb()

	r := render.New(s, fc, st, animation.ByName(cfg.Flush), amb)

	// ---- HTTP preview ----
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      hub.Routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		log.Info().Str("addr", cfg.Addr).Str("driver", cfg.Driver).Str("face", fc.Name()).Msg("preview server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("preview server crashed")
		}
	}()
	defer srv.Close()

	// ---- Graceful shutdown ----
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if s.BootLedSweep {
		if err := r.Sweep(ctx, 20*time.Millisecond); err != nil && ctx.Err() == nil {
			log.Warn().Err(err).Msg("boot sweep failed")
		}
	}

	if s.BootLedBlink {
		if err := r.ShowIcon(font.IconCheck, 100); err != nil {
			log.Warn().Err(err).Msg("boot icon failed")
		}
		select {
		case <-ctx.Done():
		case <-time.After(time.Second):
		}
	}

	c := &clock{r: r, rotate: rotate}
	err = c.run(ctx, tickEvery(cfg.FPS))
	log.Info().Msg("shutting down")
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// loadConfig layers config.yaml over the flag values in flags. With save set,
// the result is written back so later runs start from it.
func loadConfig(path string, flags *config.Config, save bool) *config.Config {
	if c, err := config.Load(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("config load failed; proceeding with flags")
	} else {
		merge(flags, c)
	}
	if save {
		if err := config.Save(path, flags); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("config save failed")
		} else {
			log.Info().Str("path", path).Msg("config saved")
		}
	}
	return flags
}

// openAmbient returns the light sensor on cfg.LDR.Bus, or the fixed level
// when no bus is configured or the sensor cannot be opened.
func openAmbient(cfg *config.Config, s *settings.Settings) (render.Ambient, func() error) {
	fixed := sensor.Fixed(cfg.LDR.Fixed)
	nop := func() error { return nil }
	if cfg.LDR.Bus == "" {
		return fixed, nop
	}
	maxV := physic.ElectricPotential(cfg.LDR.MaxVolts * float64(physic.Volt))
	pin, closePin, err := sensor.OpenADS1115(cfg.LDR.Bus, maxV)
	if err != nil {
		log.Warn().Err(err).Msg("light sensor unavailable; using fixed level")
		return fixed, nop
	}
	ldr := sensor.NewLDR(pin, sensor.ADS1115FullScale, s.AutoLdrDark, s.AutoLdrBright)
	ldr.Cal = int8(s.LdrCal)
	return ldr, closePin
}

// merge copies every non-zero field of c onto dst.
func merge(dst, c *config.Config) {
	if c.Driver != "" {
		dst.Driver = c.Driver
	}
	if c.Face != "" {
		dst.Face = c.Face
	}
	if c.SettingsPath != "" {
		dst.SettingsPath = c.SettingsPath
	}
	if c.Flush != "" {
		dst.Flush = c.Flush
	}
	if c.FPS > 0 {
		dst.FPS = c.FPS
	}
	if c.Addr != "" {
		dst.Addr = c.Addr
	}
	if c.LogLevel != "" {
		dst.LogLevel = c.LogLevel
	}
	if c.SPI.Port != "" {
		dst.SPI.Port = c.SPI.Port
	}
	if c.LDR.Bus != "" {
		dst.LDR.Bus = c.LDR.Bus
	}
	if c.LDR.MaxVolts > 0 {
		dst.LDR.MaxVolts = c.LDR.MaxVolts
	}
	if c.LDR.Fixed > 0 {
		dst.LDR.Fixed = c.LDR.Fixed
	}
	if c.Power.BudgetmA > 0 {
		dst.Power.BudgetmA = c.Power.BudgetmA
	}
	if c.Power.ChannelmA > 0 {
		dst.Power.ChannelmA = c.Power.ChannelmA
	}
}

func tickEvery(fps int) time.Duration {
	if fps <= 0 {
		fps = 1
	}
	return time.Second / time.Duration(fps)
}
