package render

import (
	"fmt"

	"git.lost.host/meutraa/vsrg/internal/game"
)

type Renderer interface {
	Listing(sets []*game.Set)
	Prompt()
	Starting(m *game.Map)
	Judgement(ev game.Event)
	Accuracy(score fmt.Stringer)
}
