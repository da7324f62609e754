package main

import (
	"fmt"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper-term/internal/mines"
)

type point struct {
	Row uint `schema:"row,required"`
	Col uint `schema:"col,required"`
}

func (p point) toMines() mines.Point {
	return mines.Point{Row: int(p.Row), Col: int(p.Col)}
}

func decodePoint(src map[string][]string) (point, error) {
	pointDecoder := schema.NewDecoder()
	pointDecoder.IgnoreUnknownKeys(true)
	var p point
	if err := pointDecoder.Decode(&p, src); err != nil {
		return p, fmt.Errorf("%w: %w", errMalformedInput, err)
	}
	return p, nil
}
