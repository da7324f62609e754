package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errMalformedInput = errors.New("malformed input")

// lineReader reads lines on its own goroutine so that a blocked read can be
// abandoned when the context is done.
type lineReader struct {
	lines chan string
	err   error // valid once lines is closed
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{lines: make(chan string)}
	go func() {
		s := bufio.NewScanner(r)
		for s.Scan() {
			lr.lines <- s.Text()
		}
		lr.err = s.Err()
		if lr.err == nil {
			lr.err = io.EOF
		}
		close(lr.lines)
	}()
	return lr
}

func (lr *lineReader) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if !ok {
			return "", lr.err
		}
		return strings.TrimSpace(line), nil
	}
}

func (lr *lineReader) readUint(ctx context.Context) (uint64, error) {
	line, err := lr.readLine(ctx)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(line, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a non-negative integer", errMalformedInput, line)
	}
	return n, nil
}
