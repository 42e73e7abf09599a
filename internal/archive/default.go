package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"git.lost.host/meutraa/vsrg/internal/game"
	"git.lost.host/meutraa/vsrg/internal/parser"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type DefaultExtractor struct {
	Parser parser.Parser
	Log    *log.Logger
}

func (x *DefaultExtractor) logf(format string, v ...interface{}) {
	l := x.Log
	if nil == l {
		l = log.Default()
	}
	l.Printf(format, v...)
}

func (x *DefaultExtractor) parser() parser.Parser {
	if nil == x.Parser {
		return &parser.DefaultParser{Log: x.Log}
	}
	return x.Parser
}

func IsChart(name string) bool {
	return strings.ToLower(path.Ext(name)) == ChartExt
}

func (x *DefaultExtractor) Extract(name string, r io.ReaderAt, size int64) (*game.Set, error) {
	zr, err := zip.NewReader(r, size)
	if nil != err {
		return nil, &Error{Archive: name, Err: err}
	}

	maps := []*game.Map{}
	files := map[string][]byte{}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		data, err := readEntry(f)
		if nil != err {
			return nil, &Error{Archive: name, Entry: f.Name, Err: err}
		}

		if !IsChart(f.Name) {
			x.logf("Reading file %v", f.Name)
			files[f.Name] = data
			continue
		}

		x.logf("Parsing %v as an osu map", f.Name)
		m, err := x.parser().Parse(f.Name, decodeUTF8(data))
		if nil != err {
			var rejection *parser.RejectError
			if errors.As(err, &rejection) {
				x.logf("%v, ignoring", rejection)
				continue
			}
			return nil, &Error{Archive: name, Entry: f.Name, Err: err}
		}
		maps = append(maps, m)
	}

	return game.NewSet(name, maps, files), nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if nil != err {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// decodeUTF8 drops a leading byte order mark, charts exported on Windows
// usually start with one.
func decodeUTF8(data []byte) io.Reader {
	return transform.NewReader(bytes.NewReader(data), unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// Open extracts the archive at p.
func (x *DefaultExtractor) Open(p string) (*game.Set, error) {
	f, err := os.Open(p)
	if nil != err {
		return nil, &Error{Archive: p, Err: err}
	}
	defer f.Close()
	info, err := f.Stat()
	if nil != err {
		return nil, &Error{Archive: p, Err: err}
	}
	return x.Extract(p, f, info.Size())
}

// LoadDirectory opens every .osz file directly inside dir, in name order.
func (x *DefaultExtractor) LoadDirectory(dir string) ([]*game.Set, error) {
	entries, err := os.ReadDir(dir)
	if nil != err {
		return nil, fmt.Errorf("unable to read map directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	sets := []*game.Set{}
	for _, entry := range entries {
		if entry.IsDir() || strings.ToLower(filepath.Ext(entry.Name())) != ".osz" {
			continue
		}
		set, err := x.Open(filepath.Join(dir, entry.Name()))
		if nil != err {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}
