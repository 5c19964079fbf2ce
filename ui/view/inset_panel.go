package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/insetcrop/domain/crop"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// InsetPanel encapsulates the numeric inset and offset fields.
type InsetPanel interface {
	Build(startRow int) (endRow int) // constructs widgets starting at startRow, returns next free row
	SetInsets(in crop.Insets)
	SetMaxOffsets(h, v int)
	SetEditable(enabled bool)
}

type insetPanel struct {
	logger       *slog.Logger
	onInsets     func(crop.Insets)
	onOffsets    func(h, v int)
	widgets      map[string]*TextWidget // keyed by field id
	hLabel       *LabelWidget
	vLabel       *LabelWidget
	applyBtn     *ButtonWidget
	applyOffsBtn *ButtonWidget
}

// NewInsetPanel creates the panel. onInsets receives typed insets and
// onOffsets typed offsets; both may be nil.
func NewInsetPanel(onInsets func(crop.Insets), onOffsets func(h, v int), logger *slog.Logger) InsetPanel {
	return &insetPanel{logger: logger, onInsets: onInsets, onOffsets: onOffsets, widgets: make(map[string]*TextWidget)}
}

func (v *insetPanel) Build(startRow int) (row int) {
	row = startRow
	makeRow := func(id, label string) *LabelWidget {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(10))
		Grid(w, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", "0")
		v.widgets[id] = w
		row++
		return lbl
	}
	makeRow("left", "Left")
	makeRow("right", "Right")
	makeRow("top", "Top")
	makeRow("bottom", "Bottom")
	v.applyBtn = Button(Txt("Apply Insets"), Command(v.applyInsets))
	Grid(v.applyBtn, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	v.hLabel = makeRow("h_offset", "H Offset (0-0)")
	v.vLabel = makeRow("v_offset", "V Offset (0-0)")
	v.applyOffsBtn = Button(Txt("Apply Offsets"), Command(v.applyOffsets))
	Grid(v.applyOffsBtn, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	for _, id := range []string{"left", "right", "top", "bottom"} {
		Bind(v.widgets[id], "<Return>", Command(func() { v.applyInsets() }))
	}
	for _, id := range []string{"h_offset", "v_offset"} {
		Bind(v.widgets[id], "<Return>", Command(func() { v.applyOffsets() }))
	}
	return row
}

func (v *insetPanel) SetInsets(in crop.Insets) {
	v.setField("left", in.Left)
	v.setField("right", in.Right)
	v.setField("top", in.Top)
	v.setField("bottom", in.Bottom)
	v.setField("h_offset", in.Left)
	v.setField("v_offset", in.Top)
}

func (v *insetPanel) SetMaxOffsets(h, vv int) {
	if v.hLabel != nil {
		v.hLabel.Configure(Txt(fmt.Sprintf("H Offset (0-%d)", h)))
	}
	if v.vLabel != nil {
		v.vLabel.Configure(Txt(fmt.Sprintf("V Offset (0-%d)", vv)))
	}
}

func (v *insetPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	for _, b := range []*ButtonWidget{v.applyBtn, v.applyOffsBtn} {
		if b != nil {
			b.Configure(State(state))
		}
	}
}

func (v *insetPanel) setField(id string, n int) {
	w := v.widgets[id]
	if w == nil {
		return
	}
	w.Delete("1.0", END)
	w.Insert("1.0", strconv.Itoa(n))
}

func (v *insetPanel) text(id string) string {
	w := v.widgets[id]
	if w == nil {
		return ""
	}
	return trimText(w.Get("1.0", END))
}

// field parses an integer field; unparsable text yields ok=false.
func (v *insetPanel) field(id string) (int, bool) {
	return parseIntField(v.text(id))
}

func (v *insetPanel) applyInsets() {
	if v.onInsets == nil {
		return
	}
	var in crop.Insets
	for id, dst := range map[string]*int{"left": &in.Left, "right": &in.Right, "top": &in.Top, "bottom": &in.Bottom} {
		n, ok := v.field(id)
		if !ok {
			if v.logger != nil {
				v.logger.Warn("inset field not a number", "field", id, "text", v.text(id))
			}
			return
		}
		*dst = n
	}
	v.onInsets(in)
}

func (v *insetPanel) applyOffsets() {
	if v.onOffsets == nil {
		return
	}
	h, okH := v.field("h_offset")
	vv, okV := v.field("v_offset")
	if !okH || !okV {
		if v.logger != nil {
			v.logger.Warn("offset field not a number")
		}
		return
	}
	v.onOffsets(h, vv)
}

// parsing helpers (unexported)
func parseIntField(s string) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return i, true
}
