package main

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-term/internal/mines"
)

type application struct {
	log  *logrus.Logger
	in   *lineReader
	out  io.Writer
	game *mines.GameState
}

func (app *application) println(a ...any) {
	fmt.Fprintln(app.out, a...)
}

func (app *application) readPoint(ctx context.Context) (point, error) {
	app.println(promptRow)
	row, err := app.in.readLine(ctx)
	if err != nil {
		return point{}, err
	}
	app.println(promptCol)
	col, err := app.in.readLine(ctx)
	if err != nil {
		return point{}, err
	}
	return decodePoint(map[string][]string{
		"row": {row},
		"col": {col},
	})
}

// Run plays the game until the player quits, wins or loses. Malformed input
// and end of input end the game with an error.
func (app *application) Run(ctx context.Context) error {
	if err := app.game.Render(app.out); err != nil {
		return err
	}

	for {
		app.println(promptCommand)
		n, err := app.in.readUint(ctx)
		if err != nil {
			return err
		}

		cmd := parseCommand(n)
		switch cmd {
		case cmdQuit:
			app.log.WithField("game_id", app.game.Id.String()).Info("player quit")
			return nil
		case cmdNone:
			continue
		}

		pt, err := app.readPoint(ctx)
		if err != nil {
			return err
		}
		p := pt.toMines()
		if err := app.game.ValidatePoint(p); err != nil {
			app.log.WithError(err).Debug("rejected move")
			fmt.Fprintf(app.out,
				"Coordinates out of range (rows 0-%d, columns 0-%d)\n",
				app.game.Height-1, app.game.Width-1,
			)
			continue
		}

		if cmd == cmdFlag {
			err = app.game.FlagCell(p)
		} else {
			err = app.game.OpenCell(p)
		}
		if err != nil {
			return err
		}

		if err := app.game.Render(app.out); err != nil {
			return err
		}

		switch app.game.Status {
		case mines.Won:
			app.println("You win!")
			return nil
		case mines.Lost:
			app.println("Game over")
			return nil
		}
	}
}
