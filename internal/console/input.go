package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"
)

// errInterrupted is returned by readLine when an interrupt arrives first.
var errInterrupted = errors.New("interrupted")

// lineReader delivers lines from an io.Reader over a channel.
type lineReader struct {
	lines <-chan string
	errc  <-chan error
}

// newLineReader starts the goroutine that reads r until EOF or an error.
// Lines may be of any length. The goroutine exits once r is exhausted;
// when the loop ends early it stays blocked in Read until the process
// exits.
func newLineReader(r io.Reader) *lineReader {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if line != "" {
				lines <- strings.TrimRight(line, "\r\n")
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					errc <- err
				}
				return
			}
		}
	}()

	return &lineReader{lines: lines, errc: errc}
}

// readLine waits for the next line, an interrupt or ctx to end.
// It returns io.EOF once the input is exhausted.
func (lr *lineReader) readLine(ctx context.Context, interrupts <-chan os.Signal) (string, error) {
	select {
	case line, ok := <-lr.lines:
		if !ok {
			select {
			case err := <-lr.errc:
				return "", err
			default:
				return "", io.EOF
			}
		}
		return line, nil
	case <-interrupts:
		return "", errInterrupted
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
