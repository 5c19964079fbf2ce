package presenter

import "github.com/soocke/insetcrop/domain/crop"

// PointerHandler receives pointer events from the preview canvas. Each
// method reports whether the event was consumed.
type PointerHandler interface {
	PointerDown(p crop.Point) bool
	PointerMove(p crop.Point, held bool) bool
	PointerUp(p crop.Point) bool
}

// PointerChain offers each event to its handlers in order until one
// consumes it. Handlers earlier in the chain take precedence; a modal
// picker goes first so it can swallow input meant for the editor.
type PointerChain []PointerHandler

func (c PointerChain) PointerDown(p crop.Point) bool {
	for _, h := range c {
		if h != nil && h.PointerDown(p) {
			return true
		}
	}
	return false
}

func (c PointerChain) PointerMove(p crop.Point, held bool) bool {
	for _, h := range c {
		if h != nil && h.PointerMove(p, held) {
			return true
		}
	}
	return false
}

func (c PointerChain) PointerUp(p crop.Point) bool {
	for _, h := range c {
		if h != nil && h.PointerUp(p) {
			return true
		}
	}
	return false
}
