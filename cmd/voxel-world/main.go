package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"voxel-world/internal/config"
	"voxel-world/internal/world"
)

func init() {
	// GLFW and GL calls must stay on the main thread
	runtime.LockOSThread()
}

type options struct {
	configPath   string
	seed         int64
	seedSet      bool
	headless     bool
	verify       bool
	preview      string
	previewScale int
	places       placeList
	removes      posList
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("voxel-world", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "YAML world config (defaults when empty)")
	fs.Int64Var(&opts.seed, "seed", 0, "world seed (random when not set)")
	fs.BoolVar(&opts.headless, "headless", false, "generate and exit without opening a window")
	fs.BoolVar(&opts.verify, "verify", false, "check visibility and slot invariants after edits")
	fs.StringVar(&opts.preview, "preview", "", "write a top-down PNG of the world to this path")
	fs.IntVar(&opts.previewScale, "preview-scale", 4, "pixels per column in the preview")
	fs.Var(&opts.places, "place", "place a block: x,y,z,type (repeatable)")
	fs.Var(&opts.removes, "remove", "remove a block: x,y,z (repeatable)")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seedSet = true
		}
	})
	if opts.seedSet && (opts.seed < -1<<31 || opts.seed > 1<<31-1) {
		return opts, fmt.Errorf("seed %d does not fit in 32 bits", opts.seed)
	}
	if opts.previewScale < 1 {
		return opts, fmt.Errorf("preview-scale must be at least 1, got %d", opts.previewScale)
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("flags: %v", err)
	}

	cfg := config.Default()
	if opts.configPath != "" {
		if cfg, err = config.Load(opts.configPath); err != nil {
			log.Fatalf("config: %v", err)
		}
	}

	w, err := world.New(cfg, nil)
	if err != nil {
		log.Fatalf("world: %v", err)
	}

	seed := int32(time.Now().UnixNano())
	if opts.seedSet {
		seed = int32(opts.seed)
	}
	log.Printf("world seed: %d", seed)
	if err := w.Generate(seed); err != nil {
		log.Fatalf("generate: %v", err)
	}

	if err := applyEdits(w, opts.places, opts.removes); err != nil {
		log.Printf("edits: %v", err)
	}
	if opts.verify {
		if err := w.CheckInvariants(); err != nil {
			log.Fatalf("verify: %v", err)
		}
		log.Printf("verify: ok")
	}
	if opts.preview != "" {
		if err := writePreview(w, opts.preview, opts.previewScale); err != nil {
			log.Fatalf("preview: %v", err)
		}
		log.Printf("preview written to %s", opts.preview)
	}

	st := w.Stats()
	log.Printf("visible=%d live=%d free=%d high-water=%d/%d vertices=%d",
		st.Visible, st.LiveSlots, st.FreeSlots, st.HighWater, st.Capacity, w.VertexCount())

	if opts.headless {
		return
	}
	if err := runViewer(w); err != nil {
		log.Fatalf("viewer: %v", err)
	}
}
