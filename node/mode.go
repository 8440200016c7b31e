package node

// Mode is a small bit-flag tracking the engine's xml/html mode: one bit
// records which mode is active, a second records whether the mode has
// been pinned (by the caller or by auto-detection) or is still open to
// auto-detection.
type Mode uint8

const (
	// ModeXML is set when the engine is operating in XML mode rather
	// than HTML mode.
	ModeXML Mode = 1 << iota
	// ModePinned is set once the mode is no longer open to
	// auto-detection: either the caller called SetXML, or a qualifying
	// processing instruction already latched it once.
	ModePinned
)

func (m *Mode) Set(n Mode) {
	*m = *m | n
}

func (m *Mode) Clear(n Mode) {
	*m = *m &^ n
}

func (m Mode) IsSet(n Mode) bool {
	return m&n != 0
}

// IsXML reports whether the engine is currently in XML mode.
func (m Mode) IsXML() bool {
	return m.IsSet(ModeXML)
}

// IsPinned reports whether the mode is no longer open to auto-detection.
func (m Mode) IsPinned() bool {
	return m.IsSet(ModePinned)
}

// SetXML pins the mode explicitly to XML (v=true) or HTML (v=false).
func (m *Mode) SetXML(v bool) {
	if v {
		m.Set(ModeXML)
	} else {
		m.Clear(ModeXML)
	}
	m.Set(ModePinned)
}

// Unset reverts the mode to auto-detect.
func (m *Mode) Unset() {
	*m = 0
}

// AutoDetectXML latches the mode to XML the first time a qualifying
// processing instruction is seen. It is a one-shot: once the mode has
// been pinned, by the caller or by a prior auto-detection, this is a
// no-op.
func (m *Mode) AutoDetectXML() {
	if m.IsPinned() {
		return
	}
	m.Set(ModeXML)
	m.Set(ModePinned)
}
