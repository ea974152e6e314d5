package format

// ScriptEvent is a reserved integer that stands for a value the client fills
// in when a script event fires, rather than literal data.
type ScriptEvent int32

const (
	MouseX            ScriptEvent = -2147483647
	MouseY            ScriptEvent = -2147483646
	WidgetID          ScriptEvent = -2147483645
	MenuOp            ScriptEvent = -2147483644
	WidgetIndex       ScriptEvent = -2147483643
	WidgetTargetID    ScriptEvent = -2147483642
	WidgetTargetIndex ScriptEvent = -2147483641
	KeyCode           ScriptEvent = -2147483640
	KeyChar           ScriptEvent = -2147483639
)

var scriptEventNames = map[ScriptEvent]string{
	MouseX:            "MOUSE_X",
	MouseY:            "MOUSE_Y",
	WidgetID:          "WIDGET_ID",
	MenuOp:            "MENU_OP",
	WidgetIndex:       "WIDGET_INDEX",
	WidgetTargetID:    "WIDGET_TARGET_ID",
	WidgetTargetIndex: "WIDGET_TARGET_INDEX",
	KeyCode:           "KEY_CODE",
	KeyChar:           "KEY_CHAR",
}

// LookupScriptEvent returns the sentinel v equals exactly, if any.
func LookupScriptEvent(v int64) (ScriptEvent, bool) {
	if v != int64(int32(v)) {
		return 0, false
	}
	e := ScriptEvent(v)
	_, ok := scriptEventNames[e]
	return e, ok
}

// String renders the sentinel as "^NAME".
func (e ScriptEvent) String() string {
	if name, ok := scriptEventNames[e]; ok {
		return "^" + name
	}
	return "^UNKNOWN"
}
