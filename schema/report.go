package schema

import "fmt"

type Level int

const (
	LevelError Level = iota
	LevelWarning
)

func (l Level) String() string {
	if l == LevelWarning {
		return "Warning"
	}
	return "Error"
}

// Item is one validation finding.
type Item struct {
	Level   Level
	Path    string
	Message string
}

func (it Item) String() string {
	return fmt.Sprintf("[%s at %s] %s", it.Level, it.Path, it.Message)
}

// Report accumulates findings; validation never stops at the first
// one.
type Report []Item

func (r Report) Errors() Report {
	return r.filter(LevelError)
}

func (r Report) Warnings() Report {
	return r.filter(LevelWarning)
}

func (r Report) filter(lvl Level) Report {
	var res Report
	for _, it := range r {
		if it.Level == lvl {
			res = append(res, it)
		}
	}
	return res
}
