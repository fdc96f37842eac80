package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/VasquezPonte/Create-EXIF-Renamed-Image-File/internal/app"
)

func main() {
	var cliApp = &cli.App{
		Name:                   app.AppName,
		Usage:                  "Creates ISO-8601 renamed copies of media files, based on their capture date metadata.",
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Value:   "",
				Aliases: []string{"i"},
				Usage:   "Source directory to scan recursively for media files.",
			},
			&cli.StringFlag{
				Name:    "output",
				Value:   "",
				Aliases: []string{"o"},
				Usage:   "Destination directory. If omitted, renamed copies are created next to the originals and the originals are kept with a " + app.BackupSuffix + " suffix.",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Value:   false,
				Aliases: []string{"v"},
				Usage:   "Print per-file progress and metadata field values.",
			},
		},
		Action: run,
	}

	err := cliApp.Run(os.Args)
	app.HandleError(err)
}

func run(c *cli.Context) error {
	input := c.String("input")
	if input == "" {
		return cli.ShowAppHelp(c)
	}

	ctx := app.Context{
		CurrentTime: time.Now(),
		Verbose:     c.Bool("verbose"),
	}

	srcDir, err := filepath.Abs(input)
	if app.IsError(err) {
		return err
	}
	ctx.SrcDir, err = app.ValidateDir(srcDir)
	if app.IsError(err) {
		return err
	}

	if output := c.String("output"); output != "" {
		destDir, err := filepath.Abs(output)
		if app.IsError(err) {
			return err
		}
		ctx.DestDir, err = app.ValidateDir(destDir)
		if app.IsError(err) {
			return err
		}
	}

	reader, err := NewExifToolReader()
	if app.IsError(err) {
		return err
	}
	defer reader.Close()

	renamer := Renamer{Ctx: ctx, Meta: reader}
	stats, err := renamer.Run()
	if app.IsError(err) {
		return err
	}

	app.PrintLn("%d files found, %d renamed, %d without a usable date, %d already present, %s copied in %s",
		stats.TotalFiles, stats.RenamedFiles, stats.SkippedFiles, stats.DuplicatedFiles,
		app.TotalBytesToString(stats.TotalSize, false),
		time.Since(ctx.CurrentTime).Round(time.Millisecond))

	return nil
}
