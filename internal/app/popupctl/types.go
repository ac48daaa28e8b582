package popupctl

// Type identifies a popup.
type Type int

const (
	None Type = iota
	Help
	Jump
)

// Priority defines which popup takes the keyboard (highest priority first).
var Priority = []Type{Help, Jump}

// RenderOrder defines the order popups are drawn (bottom to top).
var RenderOrder = []Type{Jump, Help}
