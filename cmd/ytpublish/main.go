// Command ytpublish prepares and uploads an episode video to YouTube. It
// pulls the episode title and show notes from the podcast RSS feed, converts
// the notes to a plain-text description and uploads the rendered video as a
// private draft.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/nodesignal/boostwatch/pkg/feed"
	"github.com/nodesignal/boostwatch/pkg/media"
)

// Opts with all CLI options
type Opts struct {
	FeedURL string        `long:"feed" env:"FEED_URL" required:"true" description:"podcast RSS feed URL"`
	Episode int           `short:"e" long:"episode" default:"1" description:"1-based episode position in the feed, 1 is the newest"`
	Title   string        `short:"t" long:"title" description:"episode title query, overrides position lookup"`
	Video   string        `long:"video" description:"video file to upload, omit for a description-only dry run"`
	Secrets string        `long:"secrets" env:"CLIENT_SECRETS" default:"client_secrets.json" description:"OAuth client secrets file"`
	Token   string        `long:"token" env:"OAUTH_TOKEN" default:"token.json" description:"OAuth token file"`
	Tags    string        `long:"tags" default:"Nodesignal,Podcast,Bitcoin,Deutsch" description:"comma-separated video tags"`
	Footer  string        `long:"footer" env:"DESCRIPTION_FOOTER" description:"text appended to every description"`
	Timeout time.Duration `long:"timeout" default:"30s" description:"feed fetch timeout"`

	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	color.NoColor = opts.NoColor
	setupLog(opts.Debug)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts Opts) error {
	parser := feed.NewParser(opts.Timeout, "boostwatch-ytpublish/"+revision)

	item, err := lookupEpisode(ctx, parser, opts)
	if err != nil {
		return err
	}
	log.Printf("[INFO] found episode %q", item.Title)

	description, err := media.CleanDescription(item.Description)
	if err != nil {
		return fmt.Errorf("clean description: %w", err)
	}
	if opts.Footer != "" {
		description = description + "\n\n" + opts.Footer
	}

	if opts.Video == "" {
		// dry run, print the prepared description
		fmt.Println(description)
		return nil
	}

	tags := strings.Split(opts.Tags, ",")
	for i := range tags {
		tags[i] = strings.TrimSpace(tags[i])
	}

	uploader, err := media.NewUploader(ctx, opts.Secrets, opts.Token, tags)
	if err != nil {
		return fmt.Errorf("create uploader: %w", err)
	}

	log.Printf("[INFO] uploading %s...", opts.Video)
	videoID, err := uploader.Upload(ctx, opts.Video, item.Title, description)
	if err != nil {
		return fmt.Errorf("upload video: %w", err)
	}

	log.Printf("[INFO] video uploaded: https://youtu.be/%s", videoID)
	return nil
}

func lookupEpisode(ctx context.Context, parser *feed.Parser, opts Opts) (*feed.Item, error) {
	if opts.Title != "" {
		item, err := parser.FindByTitle(ctx, opts.FeedURL, opts.Title)
		if err != nil {
			return nil, fmt.Errorf("lookup episode by title: %w", err)
		}
		return item, nil
	}
	item, err := parser.Episode(ctx, opts.FeedURL, opts.Episode)
	if err != nil {
		return nil, fmt.Errorf("lookup episode %d: %w", opts.Episode, err)
	}
	return item, nil
}

func setupLog(dbg bool) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces}
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
