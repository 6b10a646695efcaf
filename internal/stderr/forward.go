package stderr

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
)

// scan sends the non-blank lines of r to out until EOF, then closes both.
// Lines are dropped while out is full.
func scan(r io.ReadCloser, out chan<- string) {
	defer close(out)
	defer r.Close()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case out <- line:
		default:
		}
	}
}

func logLine(line string) {
	slog.Warn("stderr", "line", line)
}

func forward(ctx context.Context, in <-chan string, log func(string)) {
	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-in:
			if !ok {
				return
			}
			log(line)
		}
	}
}
