package parser

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"git.lost.host/meutraa/vsrg/internal/game"
)

type DefaultParser struct {
	Log *log.Logger
}

func (p *DefaultParser) logf(format string, v ...interface{}) {
	l := p.Log
	if nil == l {
		l = log.Default()
	}
	l.Printf(format, v...)
}

func (p *DefaultParser) Parse(name string, r io.Reader) (*game.Map, error) {
	const (
		initialBufSize = 10000
		maxBufSize     = 1000000
	)
	scanner := bufio.NewScanner(r)
	buf := make([]byte, initialBufSize)
	scanner.Buffer(buf, maxBufSize)

	b := newBuilder(name)
	state := sectionNone
	versioned := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !versioned {
			if line != VersionMarker {
				return nil, reject(name, fmt.Sprintf("expected %q as the first line, got %q", VersionMarker, line))
			}
			versioned = true
			continue
		}
		if strings.HasPrefix(line, "//") {
			continue
		}
		if s, ok := headers[line]; ok {
			state = s
			continue
		}

		out := handlers[state](b, line)
		switch out.kind {
		case warn:
			p.logf("%v: %v", name, out.reason)
		case rejected:
			return nil, reject(name, out.reason)
		}
	}
	if err := scanner.Err(); nil != err {
		return nil, fmt.Errorf("unable to read chart %v: %w", name, err)
	}
	if !versioned {
		return nil, reject(name, fmt.Sprintf("chart is empty, expected %q", VersionMarker))
	}

	return b.build(p.logf)
}
