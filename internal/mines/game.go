package mines

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type GameStatus int

const (
	On GameStatus = iota
	Won
	Lost
)

func (s GameStatus) String() string {
	switch s {
	case On:
		return "on"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("GameStatus(%d)", int(s))
	}
}

type GameState struct {
	Id         uuid.UUID
	Status     GameStatus
	Grid       Grid           /* real mine points and counts */
	Visibility VisibilityGrid /* player knowledge */
	GameParams
}

func NewGame(params GameParams, r *rand.Rand) (*GameState, error) {
	grid, vis, err := Generate(params, r)
	if err != nil {
		return nil, fmt.Errorf("unable to generate grid: %w", err)
	}
	state := &GameState{
		Id:         uuid.New(),
		Status:     On,
		Grid:       grid,
		Visibility: vis,
		GameParams: params,
	}
	state.log().Info("new game")
	return state, nil
}

func (s *GameState) log() *logrus.Entry {
	return Log.WithFields(logrus.Fields{
		"game_id": s.Id.String(),
		"params":  s.GameParams.String(),
	})
}

func (s *GameState) ValidatePoint(p Point) error {
	if !s.Grid.InBounds(p) {
		return fmt.Errorf("%w: %d:%d on a %dx%d board",
			ErrOutOfBounds, p.Row, p.Col, s.Width, s.Height)
	}
	return nil
}

func (s *GameState) checkMove(p Point) error {
	if s.Over() {
		return ErrGameOver
	}
	return s.ValidatePoint(p)
}

func (s *GameState) Over() bool {
	return s.Status != On
}

// FlagCell toggles the flag on a covered cell. Opened cells are left alone.
func (s *GameState) FlagCell(p Point) error {
	if err := s.checkMove(p); err != nil {
		return err
	}
	switch s.Visibility.At(p) {
	case Hidden:
		s.Visibility.set(p, Flagged)
	case Flagged:
		s.Visibility.set(p, Hidden)
	}
	s.log().WithFields(logrus.Fields{
		"row": p.Row, "col": p.Col, "state": s.Visibility.At(p),
	}).Debug("flag")

	if IsWin(s.Grid, s.Visibility) {
		s.finish(Won)
	}
	return nil
}

// OpenCell reveals p. Opening a mine loses the game.
func (s *GameState) OpenCell(p Point) error {
	if err := s.checkMove(p); err != nil {
		return err
	}
	Reveal(s.Grid, s.Visibility, p)
	s.log().WithFields(logrus.Fields{"row": p.Row, "col": p.Col}).Debug("open")

	if s.Grid.At(p).IsMine() {
		s.finish(Lost)
	} else if IsWin(s.Grid, s.Visibility) {
		s.finish(Won)
	}
	return nil
}

func (s *GameState) finish(status GameStatus) {
	s.Status = status
	s.log().WithField("status", status.String()).Info("game over")
}

// Render prints the board, uncovering everything once the game is over.
func (s *GameState) Render(w io.Writer) error {
	return Render(w, s.Grid, s.Visibility, s.Over())
}
