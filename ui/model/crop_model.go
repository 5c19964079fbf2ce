package model

import (
	"image"

	"github.com/soocke/insetcrop/domain/crop"
)

// CropModel holds the loaded preview image, its crop state and the last
// insets that were valid for an image. The zero value is ready to use.
//
// When a load fails the image and state are dropped but LastInsets keeps
// the numbers so the panel can keep showing them.
type CropModel struct {
	path  string
	img   image.Image
	state *crop.State
	last  crop.Insets
	err   error
	onNew []func(*crop.State)
}

// NewCropModel returns a pointer to a ready-to-use CropModel.
func NewCropModel() *CropModel { return &CropModel{} }

// OnStateChanged registers fn to run whenever a new state replaces the old
// one. fn receives nil when the image is cleared.
func (m *CropModel) OnStateChanged(fn func(*crop.State)) {
	if m == nil || fn == nil {
		return
	}
	m.onNew = append(m.onNew, fn)
}

// SetImage installs img for path with fresh zero insets. A nil or empty
// image is recorded as a failed load and reported as crop.ErrInvalidSize.
func (m *CropModel) SetImage(path string, img image.Image) (*crop.State, error) {
	if m == nil {
		return nil, crop.ErrInvalidSize
	}
	if img == nil {
		m.Fail(path, crop.ErrInvalidSize)
		return nil, crop.ErrInvalidSize
	}
	b := img.Bounds()
	st, err := crop.NewState(b.Dx(), b.Dy())
	if err != nil {
		m.Fail(path, err)
		return nil, err
	}
	st.AddListener(func(in crop.Insets) {
		if m.state == st {
			m.last = in
		}
	})
	m.path, m.img, m.state, m.err = path, img, st, nil
	m.last = st.Insets()
	m.notify()
	return st, nil
}

// Fail records a failed load of path. The last valid insets are kept.
func (m *CropModel) Fail(path string, err error) {
	if m == nil {
		return
	}
	m.path, m.img, m.state, m.err = path, nil, nil, err
	m.notify()
}

// Clear drops the image without recording an error.
func (m *CropModel) Clear() {
	if m == nil {
		return
	}
	m.path, m.img, m.state, m.err = "", nil, nil, nil
	m.notify()
}

func (m *CropModel) notify() {
	for _, fn := range m.onNew {
		fn(m.state)
	}
}

// Path returns the identifier of the current or last failed image.
func (m *CropModel) Path() string {
	if m == nil {
		return ""
	}
	return m.path
}

// Image returns the loaded image or nil.
func (m *CropModel) Image() image.Image {
	if m == nil {
		return nil
	}
	return m.img
}

// State returns the crop state of the loaded image or nil.
func (m *CropModel) State() *crop.State {
	if m == nil {
		return nil
	}
	return m.state
}

// LastInsets returns the most recent insets of any loaded image.
func (m *CropModel) LastInsets() crop.Insets {
	if m == nil {
		return crop.Insets{}
	}
	return m.last
}

// Err returns the error of the last failed load, if the model is in that
// state.
func (m *CropModel) Err() error {
	if m == nil {
		return nil
	}
	return m.err
}
