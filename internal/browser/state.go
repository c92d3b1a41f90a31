package browser

// View identifies which screen the browser is showing.
type View int

const (
	ViewList View = iota
	ViewDetail
	ViewLogs
)

// Action is the outcome of feeding one event to the state machine.
type Action int

const (
	// ActionNone keeps the loop running.
	ActionNone Action = iota
	// ActionQuit ends the loop with no follow-up.
	ActionQuit
	// ActionResume ends the loop and resumes the selected session.
	ActionResume
	// ActionFork ends the loop and forks the selected session.
	ActionFork
)

// Command characters understood in addition to the decoded special keys.
const (
	charView   = 'v'
	charLogs   = 'l'
	charBack   = 'b'
	charNext   = 'n'
	charPrev   = 'p'
	charResume = 'r'
	charFork   = 'f'
	charQuit   = 'q'

	// In raw mode Ctrl-C arrives as a byte, not a signal.
	charCtrlC = 0x03
)

// State is the browser's mutable view state. It is owned exclusively by the
// browse loop; selection is clamped to the session count and the scroll
// offset is re-clamped against the displayed content after every transition.
type State struct {
	View     View
	Selected int
	Offset   int

	count int // number of sessions, fixed for the life of the browse
}

// NewState starts at the list view with the first session selected.
func NewState(sessionCount int) *State {
	return &State{View: ViewList, count: sessionCount}
}

// Handle applies one event to the state using the transition rules and
// reports the resulting action. height is the current viewport height, used
// as the page-step size.
func (s *State) Handle(ev Event, height int) Action {
	switch ev.Key {
	case KeyUp:
		s.up()
	case KeyDown:
		s.down()
	case KeyPageUp:
		if s.View != ViewList {
			s.Offset -= height
			if s.Offset < 0 {
				s.Offset = 0
			}
		}
	case KeyPageDown:
		if s.View != ViewList {
			s.Offset += height
		}
	case KeyEnter:
		s.toggleDetail()
	case KeyChar:
		return s.handleChar(ev.Ch)
	case KeyEscape:
		// no-op
	}
	return ActionNone
}

func (s *State) handleChar(ch byte) Action {
	switch ch {
	case charQuit, charCtrlC:
		return ActionQuit
	case charResume:
		return ActionResume
	case charFork:
		return ActionFork
	case charView:
		s.toggleDetail()
	case charLogs:
		if s.View == ViewDetail {
			s.enter(ViewLogs)
		}
	case charBack:
		if s.View != ViewList {
			s.enter(ViewList)
		}
	case charNext:
		if s.View != ViewList {
			s.selectNext()
			s.Offset = 0
		}
	case charPrev:
		if s.View != ViewList {
			s.selectPrev()
			s.Offset = 0
		}
	}
	return ActionNone
}

func (s *State) up() {
	if s.View == ViewList {
		s.selectPrev()
		return
	}
	if s.Offset > 0 {
		s.Offset--
	}
}

func (s *State) down() {
	if s.View == ViewList {
		s.selectNext()
		return
	}
	s.Offset++
}

// toggleDetail implements Enter/"view": list opens the detail view, any
// other view returns to the list.
func (s *State) toggleDetail() {
	if s.View == ViewList {
		s.enter(ViewDetail)
	} else {
		s.enter(ViewList)
	}
}

func (s *State) enter(v View) {
	s.View = v
	s.Offset = 0
}

func (s *State) selectNext() {
	if s.Selected < s.count-1 {
		s.Selected++
	}
}

func (s *State) selectPrev() {
	if s.Selected > 0 {
		s.Selected--
	}
}

// ClampOffset folds the paginator's effective offset for the currently
// displayed content back into the state before the next redraw.
func (s *State) ClampOffset(content string, height int) {
	s.Offset = Paginate(content, s.Offset, height).Offset
}
