package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	png2vhdl "github.com/annoyedmilk/PNG2VHDL"
	"github.com/annoyedmilk/PNG2VHDL/vhdl"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) (*zap.Logger, error) {
	if c.Bool("verbose") {
		return zap.NewDevelopment()
	}
	return zap.NewNop(), nil
}

func convert(c *cli.Context) error {
	logger, err := newLogger(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer logger.Sync()

	bar := progressbar.Default(-1, "converting")

	opts := []png2vhdl.Option{
		png2vhdl.WithWorkers(c.Int("jobs")),
		png2vhdl.WithForce(c.Bool("force")),
		png2vhdl.WithProgress(func(png2vhdl.Result) {
			bar.Add(1)
		}),
	}

	if file := c.String("manifest"); file != "" {
		manifest, err := png2vhdl.OpenManifest(file)
		if err != nil {
			return cli.Exit(err, 1)
		}
		defer manifest.Close()
		opts = append(opts, png2vhdl.WithManifest(manifest))
	}

	conv := png2vhdl.New(logger, opts...)

	results, err := conv.ConvertDir(context.Background(), c.String("input"), c.String("output"))
	bar.Finish()
	if err != nil {
		return cli.Exit(err, 1)
	}

	failed := lo.Filter(results, func(r png2vhdl.Result, _ int) bool { return r.Err != nil })
	skipped := lo.CountBy(results, func(r png2vhdl.Result) bool { return r.Skipped })

	fmt.Printf("%d converted, %d up to date, %d failed\n", len(results)-len(failed)-skipped, skipped, len(failed))

	for _, r := range failed {
		fmt.Fprintf(os.Stderr, "%s: %v\n", r.Source, r.Err)
	}
	if len(failed) > 0 {
		return cli.Exit("some images failed to convert", 1)
	}

	return nil
}

func info(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowSubcommandHelpAndExit(c, 1)
	}

	f, err := os.Open(c.Args().First())
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer f.Close()

	cfg, err := vhdl.DecodeConfig(f)
	if err != nil {
		return cli.Exit(err, 1)
	}

	fmt.Printf("%s: %d x %d\n", c.Args().First(), cfg.Width, cfg.Height)

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "png2vhdl"
	app.Usage = "convert PNG images to VHDL graphic packages"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "manifest",
			EnvVars: []string{"PNG2VHDL_MANIFEST"},
			Usage:   "path to the conversion manifest; empty converts everything",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:  "convert",
			Usage: "Convert every PNG under the input directory",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "input",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "directory containing source images",
				},
				&cli.StringFlag{
					Name:     "output",
					Aliases:  []string{"o"},
					Required: true,
					Usage:    "directory to write VHDL packages to",
				},
				&cli.IntFlag{
					Name:    "jobs",
					Aliases: []string{"j"},
					Value:   4,
					Usage:   "number of concurrent conversions",
				},
				&cli.BoolFlag{
					Name:  "force",
					Usage: "convert even if the manifest says a file is unchanged",
				},
			},
			Action: convert,
		},
		{
			Name:      "info",
			Usage:     "Print the dimensions of a generated VHDL package",
			ArgsUsage: "FILE",
			Action:    info,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
