package parser

import (
	"fmt"
	"strconv"
	"strings"
)

type section int

const (
	sectionNone section = iota
	sectionGeneral
	sectionEditor
	sectionMetadata
	sectionDifficulty
	sectionEvents
	sectionTimingPoints
	sectionColours
	sectionHitObjects
)

var headers = map[string]section{
	"[General]":      sectionGeneral,
	"[Editor]":       sectionEditor,
	"[Metadata]":     sectionMetadata,
	"[Difficulty]":   sectionDifficulty,
	"[Events]":       sectionEvents,
	"[TimingPoints]": sectionTimingPoints,
	"[Colours]":      sectionColours,
	"[HitObjects]":   sectionHitObjects,
}

type outcomeKind int

const (
	proceed outcomeKind = iota
	warn
	rejected
)

// outcome is what a section handler decided about a single line.
type outcome struct {
	kind   outcomeKind
	reason string
}

func ok() outcome {
	return outcome{kind: proceed}
}

func warnf(format string, v ...interface{}) outcome {
	return outcome{kind: warn, reason: fmt.Sprintf(format, v...)}
}

func rejectf(format string, v ...interface{}) outcome {
	return outcome{kind: rejected, reason: fmt.Sprintf(format, v...)}
}

type handler func(b *builder, line string) outcome

var handlers = [...]handler{
	sectionNone:         handleNone,
	sectionGeneral:      handleGeneral,
	sectionEditor:       handleEditor,
	sectionMetadata:     handleMetadata,
	sectionDifficulty:   handleDifficulty,
	sectionEvents:       discard,
	sectionTimingPoints: discard,
	sectionColours:      discard,
	sectionHitObjects:   handleHitObject,
}

// Keys that are well formed but have no effect on play.
var (
	ignoredGeneral = set(
		"AudioHash",
		"PreviewTime",
		"Countdown",
		"SampleSet",
		"StackLeniency",
		"LetterboxInBreaks",
		"StoryFireInFront",
		"UseSkipSprites",
		"AlwaysShowPlayfield",
		"OverlayPosition",
		"SkinPreference",
		"EpilepsyWarning",
		"CountdownOffset",
		"WidescreenStoryboard",
		"SampleMatchPlaybackRate",
	)
	ignoredEditor = set(
		"Bookmarks",
		"DistanceSpacing",
		"BeatDivisor",
		"GridSize",
		"TimelineZoom",
	)
	ignoredMetadata = set(
		"Title",
		"Artist",
		"ArtistUnicode",
		"Creator",
		"Source",
		"Tags",
		"BeatmapID",
		"BeatmapSetID",
	)
	ignoredDifficulty = set(
		"HPDrainRate",
		"OverallDifficulty",
		"ApproachRate",
		"SliderMultiplier",
		"SliderTickRate",
	)
)

func set(keys ...string) map[string]bool {
	m := make(map[string]bool, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return m
}

// parseNonNegative parses s as an unsigned integer of at most bits bits.
func parseNonNegative(s string, bits int) (int64, error) {
	n, err := strconv.ParseUint(s, 10, bits)
	if nil != err {
		return 0, err
	}
	return int64(n), nil
}

func handleNone(b *builder, line string) outcome {
	return rejectf("unknown tag outside of any section: %v", line)
}

func discard(b *builder, line string) outcome {
	return ok()
}

func handleGeneral(b *builder, line string) outcome {
	parts := strings.Split(line, ": ")
	if len(parts) != 2 {
		return rejectf("lines in General section must consist of exactly 2 parts: %q", line)
	}
	key, value := parts[0], parts[1]

	switch key {
	case "AudioFilename":
		b.audioFileName, b.hasAudio = value, true
	case "AudioLeadIn":
		leadIn, err := parseNonNegative(value, 63)
		if nil != err {
			return rejectf("AudioLeadIn must be a non-negative integer, got %q", value)
		}
		b.audioLeadIn = leadIn
	case "Mode":
		if value != "3" {
			return rejectf("only osu!mania maps (mode 3) are supported, got mode %v", value)
		}
		b.mode = true
	case "SpecialStyle":
		if value != "0" {
			return rejectf("only non-special style is supported, got %v", value)
		}
	default:
		if !ignoredGeneral[key] {
			return warnf("unrecognized key in General section: %v", key)
		}
	}
	return ok()
}

func handleEditor(b *builder, line string) outcome {
	key, _, found := strings.Cut(line, ": ")
	if !found {
		return rejectf("lines in Editor section must consist of exactly 2 parts: %q", line)
	}
	if !ignoredEditor[key] {
		return warnf("unrecognized key in Editor section: %v", key)
	}
	return ok()
}

func handleMetadata(b *builder, line string) outcome {
	key, value, found := strings.Cut(line, ":")
	if !found {
		return rejectf("lines in Metadata section must consist of exactly 2 parts: %q", line)
	}
	switch key {
	case "TitleUnicode":
		b.title, b.hasTitle = value, true
	case "Version":
		b.version, b.hasVersion = value, true
	default:
		if !ignoredMetadata[key] {
			return warnf("unrecognized key in Metadata section: %v", key)
		}
	}
	return ok()
}

func handleDifficulty(b *builder, line string) outcome {
	parts := strings.Split(line, ":")
	if len(parts) != 2 {
		return rejectf("lines in Difficulty section must consist of exactly 2 parts: %q", line)
	}
	key, value := parts[0], parts[1]

	switch key {
	case "CircleSize":
		if value != "4" {
			return rejectf("only 4k is supported, got CircleSize %v", value)
		}
		b.columnCount = 4
	default:
		if !ignoredDifficulty[key] {
			return warnf("unrecognized key in Difficulty section: %v", key)
		}
	}
	return ok()
}

// handleHitObject reads x,y,time,type[,...]. Only the first four fields
// are looked at and a bad record only drops that record.
func handleHitObject(b *builder, line string) outcome {
	fields := strings.Split(line, ",")

	// Positions and times are stored as int32 by the editor
	x, err := parseNonNegative(fields[0], 31)
	if nil != err {
		return warnf("hit object does not have a valid x value, ignoring: %q", line)
	}
	if len(fields) < 3 {
		return warnf("hit object does not have a time value, ignoring: %q", line)
	}
	t, err := parseNonNegative(fields[2], 31)
	if nil != err {
		return warnf("hit object does not have a time value, ignoring: %q", line)
	}
	if len(fields) > 3 && fields[3] != "1" {
		return warnf("only hit objects of type hit circle (1) are supported, ignoring: %q", line)
	}

	b.hitObjects = append(b.hitObjects, hitObject{x: x, time: t})
	return ok()
}
