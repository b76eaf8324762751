package animations

import (
	cfg "github.com/automoto/brawler/config"
)

// Section is a named frame range inside a montage.
type Section struct {
	Name      string
	First     int
	Last      int
	Speed     float32 // ticks per frame at rate 1
	Notifies  []cfg.NotifyDef
	EndNotify string
}

// Montage plays one section at a time and reports notifies as frames are
// reached. When a section runs past its last frame the end notify fires and
// playback stops holding the last frame.
type Montage struct {
	Name     string
	Sections map[string]*Section

	current      *Section
	rate         float32
	frameCounter float32
	frame        int
	playing      bool
	frozen       bool
}

func NewMontage(name string, defs map[string]cfg.SectionDef) *Montage {
	m := &Montage{
		Name:     name,
		Sections: make(map[string]*Section, len(defs)),
	}
	for sectionName, def := range defs {
		speed := def.Speed
		if speed <= 0 {
			speed = 1
		}
		m.Sections[sectionName] = &Section{
			Name:      sectionName,
			First:     def.First,
			Last:      def.Last,
			Speed:     speed,
			Notifies:  def.Notifies,
			EndNotify: def.EndNotify,
		}
	}
	return m
}

// Play starts playback at the given rate from the earliest section.
func (m *Montage) Play(rate float32) bool {
	if len(m.Sections) == 0 || rate <= 0 {
		return false
	}
	var first *Section
	for _, s := range m.Sections {
		if first == nil || s.First < first.First {
			first = s
		}
	}
	m.rate = rate
	m.frozen = false
	m.playing = true
	m.enter(first)
	return true
}

// JumpToSection moves the playhead to the start of a section. It only has an
// effect while the montage is playing.
func (m *Montage) JumpToSection(name string) bool {
	if !m.playing {
		return false
	}
	s, ok := m.Sections[name]
	if !ok {
		return false
	}
	m.enter(s)
	return true
}

func (m *Montage) enter(s *Section) {
	m.current = s
	m.frame = s.First
	m.frameCounter = s.Speed
}

// Update advances playback by one tick and returns the notifies reached.
func (m *Montage) Update() []string {
	if !m.playing || m.frozen || m.current == nil {
		return nil
	}

	var fired []string
	m.frameCounter -= m.rate
	for m.frameCounter < 0 {
		m.frameCounter += m.current.Speed
		m.frame++
		if m.frame > m.current.Last {
			m.frame = m.current.Last
			m.playing = false
			if m.current.EndNotify != "" {
				fired = append(fired, m.current.EndNotify)
			}
			return fired
		}
		for _, n := range m.current.Notifies {
			if n.Frame == m.frame {
				fired = append(fired, n.Name)
			}
		}
	}
	return fired
}

// Freeze holds the current pose; further updates are ignored until Play.
func (m *Montage) Freeze() {
	m.frozen = true
}

func (m *Montage) Stop() {
	m.playing = false
}

func (m *Montage) Frame() int {
	return m.frame
}

func (m *Montage) Rate() float32 {
	return m.rate
}

func (m *Montage) IsPlaying() bool {
	return m.playing
}

func (m *Montage) IsFrozen() bool {
	return m.frozen
}

// CurrentSection returns the active section name, or "" before the first Play.
func (m *Montage) CurrentSection() string {
	if m.current == nil {
		return ""
	}
	return m.current.Name
}
