package score

import (
	"git.lost.host/meutraa/vsrg/internal/game"
)

type column struct {
	cursor    int
	lastInput int64
	pressed   bool // false until the first press, lastInput is "long ago"
}

func (c *column) ready(now int64) bool {
	return !c.pressed || now-c.lastInput >= Debounce
}

type DefaultScorer struct {
	// OnJudge is called for every hit and miss
	OnJudge func(game.Event)

	notes   game.Notes
	lanes   [game.Columns]Lane
	clock   Clock
	columns [game.Columns]column
	score   Score
}

func NewScorer(m *game.Map, lanes [game.Columns]Lane, clock Clock) *DefaultScorer {
	return &DefaultScorer{
		notes: m.Notes,
		lanes: lanes,
		clock: clock,
	}
}

func (s *DefaultScorer) Score() Score {
	return s.score
}

func (s *DefaultScorer) Run() Score {
	for !s.Tick(s.clock.Milliseconds()) {
	}
	return s.score
}

func (s *DefaultScorer) Tick(now int64) bool {
	done := true
	for i := range s.columns {
		if s.judgeColumn(i, now) {
			done = false
		}
	}
	return done
}

// judgeColumn advances column i to now. It returns false when the column
// had no notes left.
func (s *DefaultScorer) judgeColumn(i int, now int64) bool {
	col := &s.columns[i]
	notes := s.notes[i]
	lane := s.lanes[i]
	// Sampled on every pass, a press outside the window is consumed and lost
	pressed := lane.Button.Pressed()
	if col.cursor >= len(notes) {
		return false
	}

	for col.cursor < len(notes) {
		diff := notes[col.cursor] - now
		switch {
		case diff > -HitRange && diff < HitRange:
			lane.Indicator.Set(true)
			if pressed {
				if col.ready(now) {
					lane.Indicator.Set(false)
					s.judge(i, game.Hit, now)
				}
				col.lastInput = now
				col.pressed = true
			}
			return true
		case diff <= -HitRange:
			// Several notes may expire in one pass
			lane.Indicator.Set(false)
			s.judge(i, game.Miss, now)
		default:
			return true
		}
	}
	return true
}

func (s *DefaultScorer) judge(i int, j game.Judgement, now int64) {
	col := &s.columns[i]
	ev := game.Event{Column: i, Judgement: j, Note: s.notes[i][col.cursor], At: now}
	col.cursor++
	if j == game.Hit {
		s.score.Hits++
	} else {
		s.score.Misses++
	}
	if nil != s.OnJudge {
		s.OnJudge(ev)
	}
}
