package interaction

// ViewMode selects how much of the calendar is rendered at once.
type ViewMode string

// View modes.
const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// Command is a side effect a key press asks the owner to perform.
type Command int

// Keyboard commands.
const (
	CommandNone Command = iota
	// CommandNewAppointment opens the creation flow with no pre-filled cell.
	CommandNewAppointment
)

// Key names as delivered by the input layer.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Navigator holds the calendar navigation state driven by global keyboard
// shortcuts. Shortcuts are independent idempotent toggles; the latest key
// event wins and no queuing or debouncing is needed.
type Navigator struct {
	mode ViewMode
	// offset shifts the visible week or month relative to today.
	offset      int
	selectedDay int
	showHelp    bool
	// inputFocused suppresses shortcuts while a text input has focus.
	inputFocused bool
}

// NewNavigator creates a navigator in week view at the current week.
func NewNavigator() *Navigator {
	return &Navigator{mode: ViewWeek}
}

// Mode returns the current view mode.
func (n *Navigator) Mode() ViewMode { return n.mode }

// Offset returns the week/month offset relative to today.
func (n *Navigator) Offset() int { return n.offset }

// SelectedDay returns the day shown in day view.
func (n *Navigator) SelectedDay() int { return n.selectedDay }

// HelpVisible reports whether the shortcuts overlay is open.
func (n *Navigator) HelpVisible() bool { return n.showHelp }

// SetInputFocused marks whether a text input currently has focus.
func (n *Navigator) SetInputFocused(focused bool) { n.inputFocused = focused }

// SelectDay sets the day shown in day view.
func (n *Navigator) SelectDay(day int) {
	if day >= 0 && day <= 6 {
		n.selectedDay = day
	}
}

// SetMode switches the view mode directly, as the view toggle does.
func (n *Navigator) SetMode(mode ViewMode) {
	switch mode {
	case ViewDay, ViewWeek, ViewMonth:
		n.mode = mode
	}
}

// CloseHelp dismisses the shortcuts overlay.
func (n *Navigator) CloseHelp() { n.showHelp = false }

// HandleKey dispatches a global key press. mod reports whether the platform
// modifier (Cmd/Ctrl) was held. Shortcuts are ignored while a text input has
// focus.
func (n *Navigator) HandleKey(key string, mod bool) Command {
	if n.inputFocused {
		return CommandNone
	}

	if mod {
		if key == "n" {
			return CommandNewAppointment
		}
		return CommandNone
	}

	switch key {
	case KeyArrowLeft:
		n.offset--
	case KeyArrowRight:
		n.offset++
	case "t":
		n.offset = 0
	case "d":
		n.mode = ViewDay
	case "w":
		n.mode = ViewWeek
	case "m":
		n.mode = ViewMonth
	case "?":
		n.showHelp = true
	}
	return CommandNone
}
