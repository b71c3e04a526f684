package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/RacoonMediaServer/rms-gallery/internal/gallery"
	"github.com/RacoonMediaServer/rms-gallery/internal/manifest"
	"github.com/RacoonMediaServer/rms-gallery/internal/model"
	"github.com/RacoonMediaServer/rms-gallery/internal/storage"
	"github.com/apex/log"
	logcli "github.com/apex/log/handlers/cli"
	"github.com/urfave/cli/v2"
)

type options struct {
	manifest string
	dir      string
	policy   string
	priority []string
	base     []string
	seed     int64
	json     bool
}

type dumpItem struct {
	Index int             `json:"index"`
	Kind  model.MediaKind `json:"kind"`
	Path  string          `json:"path"`
	Label string          `json:"label"`
}

func main() {
	log.SetHandler(logcli.New(os.Stderr))

	app := &cli.App{
		Name:      "gallery-dump",
		Usage:     "print gallery items in the order they are shown",
		ArgsUsage: "[files...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "manifest", Aliases: []string{"m"}, Usage: "YAML manifest with lists"},
			&cli.StringFlag{Name: "dir", Aliases: []string{"d"}, Usage: "directory with media files, appended to the base list"},
			&cli.StringFlag{Name: "policy", Usage: "priority-first or interleaved, overrides manifest"},
			&cli.StringSliceFlag{Name: "priority", Aliases: []string{"p"}, Usage: "priority file, can be repeated"},
			&cli.Int64Flag{Name: "seed", Usage: "random seed for interleaved ordering, time based when zero"},
			&cli.BoolFlag{Name: "json", Usage: "print JSON instead of text"},
			&cli.BoolFlag{Name: "verbose", Usage: "debug log level"},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("verbose") {
				log.SetLevel(log.DebugLevel)
			}
			return dump(os.Stdout, options{
				manifest: c.String("manifest"),
				dir:      c.String("dir"),
				policy:   c.String("policy"),
				priority: c.StringSlice("priority"),
				base:     c.Args().Slice(),
				seed:     c.Int64("seed"),
				json:     c.Bool("json"),
			})
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("Dump failed")
	}
}

func dump(w io.Writer, opts options) error {
	in := gallery.Input{
		Priority: opts.priority,
		Base:     opts.base,
		Policy:   model.PolicyInterleaved,
	}

	if opts.manifest != "" {
		c, hasPolicy, err := manifest.Load(opts.manifest)
		if err != nil {
			return err
		}
		in.Priority = append(c.Priority, in.Priority...)
		in.Base = append(c.Base, in.Base...)
		if hasPolicy {
			in.Policy = c.Policy
		}
		log.WithFields(log.Fields{
			"manifest": opts.manifest,
			"priority": len(c.Priority),
			"base":     len(c.Base),
		}).Debug("Manifest loaded")
	}

	if opts.dir != "" {
		if _, err := os.Stat(opts.dir); err != nil {
			return err
		}
		dir, err := storage.NewManager(opts.dir)
		if err != nil {
			return err
		}
		files, err := dir.List()
		if err != nil {
			return err
		}
		in.Base = append(in.Base, files...)
		log.WithField("dir", dir.Directory()).Debugf("%d media files found", len(files))
	}

	if opts.policy != "" {
		p, err := model.ParsePolicy(opts.policy)
		if err != nil {
			return err
		}
		in.Policy = p
	}

	var rnd gallery.RandomSource
	if opts.seed != 0 {
		rnd = gallery.NewSeededSource(opts.seed)
	}
	items := gallery.Build(in, rnd)
	log.WithField("policy", in.Policy.String()).Infof("%d items ordered", len(items))

	result := make([]dumpItem, len(items))
	for i, m := range items {
		result[i] = dumpItem{Index: i, Kind: m.Kind(), Path: m.Path(), Label: m.Label()}
	}

	if opts.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	for _, item := range result {
		if _, err := fmt.Fprintf(w, "%3d  %-5s  %s  (%s)\n", item.Index, item.Kind, item.Path, item.Label); err != nil {
			return err
		}
	}
	return nil
}
