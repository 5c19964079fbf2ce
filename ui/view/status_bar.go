package view

import (
	"github.com/soocke/insetcrop/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StatusBar shows the crop summary line and the reference field.
type StatusBar interface {
	SetInfo(text string)
	SetReference(text string)
	Reference() string
}

type statusBar struct {
	infoLbl *TLabelWidget
	refText *TextWidget
}

// NewStatusBar creates the info label at (row, startCol) and the reference
// row below it with a Pick button.
func NewStatusBar(row, startCol int, onPick func(), onRefEdited func(string)) StatusBar {
	s := &statusBar{infoLbl: TLabel(Txt("No image"), Anchor("w"), Style(theme.StyleInfoLabel))}
	refLbl := Label(Txt("Reference"), Anchor("w"))
	s.refText = Text(Height(1), Width(24))
	pick := TButton(Txt("Pick..."), Style(theme.StylePrimaryButton), Command(func() {
		if onPick != nil {
			onPick()
		}
	}))
	Grid(s.infoLbl, Row(row), Column(startCol), Columnspan(5), Sticky("we"), Padx("0.2m"))
	Grid(refLbl, Row(row+1), Column(startCol), Sticky("w"), Padx("0.2m"))
	Grid(s.refText, Row(row+1), Column(startCol+1), Columnspan(3), Sticky("we"), Padx("0.2m"))
	Grid(pick, Row(row+1), Column(startCol+4), Sticky("we"), Padx("0.2m"))
	if onRefEdited != nil {
		Bind(s.refText, "<KeyRelease>", Command(func() { onRefEdited(s.Reference()) }))
	}
	return s
}

// SetInfo updates the summary line.
func (s *statusBar) SetInfo(text string) {
	if s == nil || s.infoLbl == nil {
		return
	}
	if text == "" {
		text = "No image"
	}
	s.infoLbl.Configure(Txt(text))
}

// SetReference replaces the reference field text.
func (s *statusBar) SetReference(text string) {
	if s == nil || s.refText == nil {
		return
	}
	s.refText.Delete("1.0", END)
	s.refText.Insert("1.0", text)
}

// Reference returns the reference field text.
func (s *statusBar) Reference() string {
	if s == nil || s.refText == nil {
		return ""
	}
	return trimText(s.refText.Get("1.0", END))
}
