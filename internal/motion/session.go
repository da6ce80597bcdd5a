package motion

// Event types sent by the page script.
const (
	EventIntersect = "intersect"
	EventScroll    = "scroll"
)

// Update types sent back to the page.
const (
	UpdateReveal   = "reveal"
	UpdateProgress = "progress"
)

// TimelineSection is the section whose items reveal individually and whose
// geometry drives the progress line.
const TimelineSection = "experience"

// Event is one observation reported by the browser.
type Event struct {
	Type     string  `json:"type"`
	Section  string  `json:"section,omitempty"`
	Item     int     `json:"item,omitempty"`
	Ratio    float64 `json:"ratio,omitempty"`
	ScrollY  float64 `json:"scrollY,omitempty"`
	Top      float64 `json:"top,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Viewport float64 `json:"viewport,omitempty"`
}

// Update is an instruction for the page.
type Update struct {
	Type     string  `json:"type"`
	Section  string  `json:"section,omitempty"`
	Item     int     `json:"item,omitempty"`
	Progress float64 `json:"progress"`
	Scrolled bool    `json:"scrolled"`
}

// Session holds the entrance latches and timeline state of one page view.
// It is created when the page connects and discarded when it goes away.
// The latch maps are fixed at construction, so Handle may be called from
// several goroutines.
type Session struct {
	sections map[string]*Latch
	items    map[int]*Latch
	timeline Timeline
}

// NewSession creates a session for the given section ids and timeline
// item ids. Ids not registered here are ignored by Handle.
func NewSession(sections []string, timelineItems []int) *Session {
	s := &Session{
		sections: make(map[string]*Latch, len(sections)),
		items:    make(map[int]*Latch, len(timelineItems)),
	}
	for _, id := range sections {
		s.sections[id] = NewLatch(SectionThreshold)
	}
	for _, id := range timelineItems {
		s.items[id] = NewLatch(ItemThreshold)
	}
	return s
}

// Handle applies one event and returns the updates it produced, if any.
// Reveals are produced at most once per section or item.
func (s *Session) Handle(ev Event) []Update {
	switch ev.Type {
	case EventIntersect:
		latch := s.latchFor(ev)
		if latch == nil || !latch.Observe(ev.Ratio) {
			return nil
		}
		return []Update{{Type: UpdateReveal, Section: ev.Section, Item: ev.Item}}

	case EventScroll:
		progress := s.timeline.Update(Rect{Top: ev.Top, Height: ev.Height}, ev.Viewport)
		return []Update{{
			Type:     UpdateProgress,
			Section:  TimelineSection,
			Progress: progress,
			Scrolled: NavScrolled(ev.ScrollY),
		}}
	}
	return nil
}

func (s *Session) latchFor(ev Event) *Latch {
	if ev.Section == TimelineSection && ev.Item != 0 {
		return s.items[ev.Item]
	}
	return s.sections[ev.Section]
}

// Visible reports whether a section has been revealed.
func (s *Session) Visible(section string) bool {
	latch := s.sections[section]
	return latch != nil && latch.Visible()
}

// ItemVisible reports whether a timeline item has been revealed.
func (s *Session) ItemVisible(id int) bool {
	latch := s.items[id]
	return latch != nil && latch.Visible()
}

func (s *Session) Progress() float64 {
	return s.timeline.Progress()
}
