package main

import (
	"context"
	"errors"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/writer"
	"github.com/snowzach/rotatefilehook"
	"github.com/vancomm/minesweeper-term/internal/config"
	"github.com/vancomm/minesweeper-term/internal/mines"
	"golang.org/x/sync/errgroup"
)

var log = mines.Log

// setupLogging keeps the terminal for the board: errors still reach stderr,
// everything else goes to MINES_LOG_FILE when it is set.
func setupLogging() error {
	logLevel := logrus.InfoLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	log.SetOutput(io.Discard)

	log.AddHook(&writer.Hook{
		Writer: os.Stderr,
		LogLevels: []logrus.Level{
			logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel,
		},
	})

	logFile := config.LogFile()
	if logFile == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logFile,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logLevel,
		Formatter:  &logrus.TextFormatter{DisableColors: true},
	})
	if err != nil {
		return err
	}
	log.AddHook(hook)
	return nil
}

func createRand() (*rand.Rand, error) {
	seed, ok, err := config.Seed()
	if err != nil {
		return nil, err
	}
	if ok {
		log.WithField("seed", seed).Debug("using fixed seed")
		return rand.New(rand.NewPCG(seed, seed)), nil
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	)), nil
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := setupLogging(); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}

	r, err := createRand()
	if err != nil {
		log.Fatal("unable to seed the board: ", err)
	}

	game, err := mines.NewGame(config.Params(), r)
	if err != nil {
		log.Fatal("unable to start a game: ", err)
	}

	app := &application{
		log:  log,
		in:   newLineReader(os.Stdin),
		out:  os.Stdout,
		game: game,
	}

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		defer stop()
		return app.Run(gCtx)
	})
	g.Go(func() error {
		<-gCtx.Done()
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("interrupted")
			return
		}
		log.Fatal("exit reason: ", err)
	}
}
