package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Selection addresses one map inside the loaded sets.
type Selection struct {
	Set, Map int
}

// ParseSelection reads "{set},{map}" as typed at the prompt.
func ParseSelection(input string) (Selection, error) {
	parts := strings.Split(strings.TrimSpace(input), ",")
	if len(parts) != 2 {
		return Selection{}, fmt.Errorf("incorrect formatting %q, example: 0,1", input)
	}
	set, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 31)
	if nil != err {
		return Selection{}, fmt.Errorf("unable to parse set id: %w", err)
	}
	m, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 31)
	if nil != err {
		return Selection{}, fmt.Errorf("unable to parse map id: %w", err)
	}
	return Selection{Set: int(set), Map: int(m)}, nil
}

func (s Selection) Resolve(sets []*Set) (*Set, *Map, error) {
	if s.Set >= len(sets) {
		return nil, nil, fmt.Errorf("no set with id %v", s.Set)
	}
	set := sets[s.Set]
	if s.Map >= len(set.Maps) {
		return nil, nil, fmt.Errorf("no map with id %v in set %v", s.Map, s.Set)
	}
	return set, set.Maps[s.Map], nil
}
