package store

import (
	"log"

	"github.com/lixenwraith/waterfall/constants"
)

// Prefs persists user preferences other than the rock layout
type Prefs struct {
	kv KV
}

func NewPrefs(kv KV) *Prefs {
	return &Prefs{kv: kv}
}

// SpeedLevel returns the stored speed level, or the default when out of range
func (p *Prefs) SpeedLevel(def, lo, hi int) int {
	level := Load(p.kv, constants.KeySpeedLevel, def)
	if level < lo || level > hi {
		log.Printf("store: speed level %d out of range, using %d", level, def)
		return def
	}
	return level
}

func (p *Prefs) SetSpeedLevel(level int) {
	if err := Save(p.kv, constants.KeySpeedLevel, level); err != nil {
		log.Printf("store: %v", err)
	}
}

// TextSource returns the stored source name, or def when unset
func (p *Prefs) TextSource(def string) string {
	return Load(p.kv, constants.KeyTextSource, def)
}

func (p *Prefs) SetTextSource(name string) {
	if err := Save(p.kv, constants.KeyTextSource, name); err != nil {
		log.Printf("store: %v", err)
	}
}
