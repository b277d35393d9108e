package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/tmpim/knitter"
	"github.com/tmpim/knitter/config"
)

var (
	outputPath = flag.String("o", "", "set location of output pattern (single input only, default <input>.txt)")
	configPath = flag.String("config", "", "load settings from this TOML file instead of the default locations")
	workers    = flag.Int("j", runtime.NumCPU(), "number of images converted concurrently")
)

// defineConversionFlags registers the flags that override config values.
func defineConversionFlags(fs *flag.FlagSet) {
	fs.Bool("dual", false, "duplicate every row to the rear bed")
	fs.Bool("pad", false, "add spacer rows for increase and decrease edits")
	fs.Int("inc", 0, "spacer rows after an increase (default from config)")
	fs.Int("dec", 0, "spacer rows after a decrease (default from config)")
	fs.Int("width", 0, "resize images to this many stitches per row (0 = keep, default from config)")
}

func main() {
	defineConversionFlags(flag.CommandLine)
	flag.Parse()
	log.SetFlags(0)

	if flag.NArg() == 0 {
		log.Println("Usage: knitter [options] input_image...")
		log.Println("")
		log.Println("knitter converts PNG, GIF or BMP images into knitting machine patterns.")
		log.Println("Every pixel becomes the symbol of its nearest palette color.")
		log.Println("")
		log.Println("Options:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *outputPath != "" && flag.NArg() > 1 {
		log.Println("-o can only be used with a single input image.")
		os.Exit(1)
	}

	if *workers < 1 {
		log.Println("-j cannot be less than 1.")
		os.Exit(1)
	}

	opts, maxPixels, err := loadOptions()
	if err != nil {
		log.Println("Failed to load configuration:", err)
		os.Exit(1)
	}

	start := time.Now()

	var g errgroup.Group
	g.SetLimit(*workers)

	for _, input := range flag.Args() {
		input := input
		output := *outputPath
		if output == "" {
			output = strings.TrimSuffix(input, filepath.Ext(input)) + ".txt"
		}

		g.Go(func() error {
			return convert(input, output, opts, maxPixels)
		})
	}

	if err := g.Wait(); err != nil {
		log.Println(err)
		os.Exit(1)
	}

	log.Println("Done! That took " + time.Since(start).String() + ".")
}

// loadOptions loads the configuration and applies the flags given on the
// command line on top of it.
func loadOptions() (knitter.Options, int, error) {
	var paths []string
	if *configPath != "" {
		paths = []string{*configPath}
	}

	cfg, err := config.Load(paths...)
	if err != nil {
		return knitter.Options{}, 0, err
	}

	applyFlags(cfg, flag.CommandLine)

	opts, err := cfg.Options()
	return opts, cfg.MaxPixels, err
}

// applyFlags copies the conversion flags that were set explicitly in fs onto
// cfg. Flags left at their defaults keep the configured values.
func applyFlags(cfg *config.Config, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		v := f.Value.(flag.Getter).Get()
		switch f.Name {
		case "dual":
			cfg.DualBed = v.(bool)
		case "pad":
			cfg.AddPadding = v.(bool)
		case "inc":
			cfg.Padding.Increase = v.(int)
		case "dec":
			cfg.Padding.Decrease = v.(int)
		case "width":
			cfg.Width = v.(int)
		}
	})
}

// convert writes the pattern for one image. Each call owns its own quantizer
// and pattern, so calls run concurrently without coordination.
func convert(input, output string, opts knitter.Options, maxPixels int) error {
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := knitter.DecodeLimit(f, maxPixels)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", input, err)
	}

	pattern, err := knitter.ConvertImage(img, opts)
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", input, err)
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	n, err := pattern.WriteTo(out)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	log.Printf("%s (%s) -> %s: %d rows, %s", input, format, output,
		len(pattern), humanize.Bytes(uint64(n)))

	return nil
}
