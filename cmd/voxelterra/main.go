package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"

	"voxelterra/internal/config"
	"voxelterra/internal/expansion"
	"voxelterra/internal/preview"
	"voxelterra/internal/profiling"
	"voxelterra/internal/world"
)

type options struct {
	configPath string
	steps      int
	speed      float64
	frame      time.Duration
	river      bool
	previewOut string
	scale      int
	verbose    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "path to a YAML settings file")
	flag.Int("radius", config.GetZoneRadius(), "visible zone radius")
	flag.Int("workers", config.GetWorkers(), "worker pool size")
	flag.Bool("caves", config.GetCaves(), "carve caves and lava below the stone line")
	flag.IntVar(&opts.steps, "steps", 200, "number of simulated frames")
	flag.Float64Var(&opts.speed, "speed", 4, "focus speed in blocks per frame along +X")
	flag.DurationVar(&opts.frame, "frame", 50*time.Millisecond, "simulated frame duration")
	flag.BoolVar(&opts.river, "river", false, "carve a river at the spawn point after bootstrap")
	flag.StringVar(&opts.previewOut, "preview", "", "write a top-down PNG of the final ring to this path")
	flag.IntVar(&opts.scale, "scale", 2, "preview upscale factor")
	flag.BoolVar(&opts.verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if err := loadSettings(opts.configPath); err != nil {
		log.Error("load settings", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	closer.Bind(func() {
		cancel()
		<-done
	})

	go func() {
		err := run(ctx, opts, log)
		close(done)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			log.Error("run failed", "error", err)
			closer.Exit(1)
		}
		closer.Close()
	}()
	closer.Hold()
}

// loadSettings applies the YAML file first, then any flag given explicitly
// on the command line.
func loadSettings(path string) error {
	if path != "" {
		f, err := config.Load(path)
		if err != nil {
			return err
		}
		f.Apply()
	}
	flag.Visit(func(f *flag.Flag) {
		get := f.Value.(flag.Getter).Get()
		switch f.Name {
		case "radius":
			config.SetZoneRadius(get.(int))
		case "workers":
			config.SetWorkers(get.(int))
		case "caves":
			config.SetCaves(get.(bool))
		}
	})
	return nil
}

func run(ctx context.Context, opts options, log *slog.Logger) error {
	settings := config.Snapshot()
	log.Info("starting",
		"zone_radius", settings.ZoneRadius,
		"workers", settings.Workers,
		"drain_interval", settings.DrainInterval,
		"caves", settings.Caves,
	)

	sched := expansion.New(world.NewIndex(), expansion.Options{Settings: settings, Logger: log})
	defer sched.Close()

	pos := mgl32.Vec3{0, 150, 0}
	sched.Bootstrap(pos)
	if opts.river {
		keys := sched.CarveRiver(0, 0, 0, time.Now().UnixNano())
		log.Info("river carved", "chunks", len(keys))
	}

	prev := pos
	for i := 0; i < opts.steps; i++ {
		if ctx.Err() != nil {
			log.Info("interrupted", "step", i)
			return nil
		}
		pos = prev.Add(mgl32.Vec3{float32(opts.speed), 0, 0})
		if sched.Tick(pos, prev, opts.frame) {
			st := sched.Stats()
			log.Debug("tick",
				"step", i,
				"x", pos.X(),
				"zones_visible", st.ZonesVisible,
				"zones_in_flight", st.ZonesInFlight,
				"chunks_ready", st.ChunksReady,
				"tasks_waiting", st.TasksWaiting,
			)
		}
		prev = pos
		time.Sleep(opts.frame)
	}
	sched.Settle()

	st := sched.Stats()
	log.Info("walk complete",
		"x", pos.X(),
		"zones_generated", st.ZonesGenerated,
		"zones_visible", st.ZonesVisible,
		"chunks", st.Chunks,
		"chunks_ready", st.ChunksReady,
		"meshes_built", st.MeshesBuilt,
	)
	log.Info("profile", "top", profiling.TopN(6))

	if opts.previewOut == "" {
		return nil
	}
	x, _, z := world.BlockCoords(pos)
	zx, zz := world.ZoneCorner(x, z)
	r := settings.ZoneRadius * world.ZoneSize
	img := preview.Render(sched.Index(), zx-r, zz-r, config.GetVisibleChunkSpan())
	if err := preview.Save(preview.Upscale(img, opts.scale), opts.previewOut); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	log.Info("preview written", "path", opts.previewOut)
	return nil
}
