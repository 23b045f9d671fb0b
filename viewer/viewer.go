package viewer

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jmigpin/scrollpanel/util/fontutil"
	"github.com/jmigpin/scrollpanel/util/fswatcher"
	"github.com/jmigpin/scrollpanel/util/uiutil"
	"github.com/jmigpin/scrollpanel/util/uiutil/widget"
)

// Shows a text file in a scroll panel, reloading it when it changes on disk.
type Viewer struct {
	opt      *Options
	filename string // absolute, empty for the sample text
	events   chan interface{}
	ui       *uiutil.BasicUI
	view     *View
	watcher  fswatcher.Watcher
}

func NewViewer(opt *Options) (*Viewer, error) {
	v := &Viewer{opt: opt, events: make(chan interface{}, 64)}

	pal, err := opt.palette()
	if err != nil {
		return nil, err
	}

	ttf, err := fontutil.ReadFontBytes(opt.FontFilename)
	if err != nil {
		return nil, err
	}
	face, err := fontutil.NewFace(ttf, opt.FontSize, opt.DPI)
	if err != nil {
		return nil, err
	}

	sp := widget.NewScrollPanel(opt.MomentumScroll)
	sp.Palette = pal
	content := NewTextContent(face, sp.PaletteColor("fg"))
	v.view = NewView(sp, content)

	if opt.Filename != "" {
		abs, err := filepath.Abs(opt.Filename)
		if err != nil {
			return nil, fmt.Errorf("viewer: %w", err)
		}
		v.filename = abs
	}
	if err := v.load(); err != nil {
		return nil, err
	}

	if v.filename != "" {
		w, err := v.watch()
		if err != nil {
			return nil, err
		}
		v.watcher = w
	}

	ui, err := uiutil.NewBasicUI(v.events, v.windowName(), opt.WindowSize, opt.FPS)
	if err != nil {
		v.closeWatcher()
		return nil, err
	}
	ui.Root = v.view
	v.ui = ui

	return v, nil
}

func (v *Viewer) windowName() string {
	if v.filename == "" {
		return "scrollpanel"
	}
	return "scrollpanel: " + filepath.Base(v.filename)
}

//----------

// Runs the ui loop until the window is closed.
func (v *Viewer) Run() error {
	defer v.close()

	var watchEvents <-chan interface{}
	if v.watcher != nil {
		watchEvents = v.watcher.Events()
	}
	for {
		select {
		case ev := <-v.events:
			if v.ui.HandleEvent(ev) {
				return nil
			}
		case ev, ok := <-watchEvents:
			if !ok {
				watchEvents = nil
				continue
			}
			v.handleWatchEvent(ev)
		}
	}
}

func (v *Viewer) close() {
	v.closeWatcher()
	v.ui.Close()
}

func (v *Viewer) closeWatcher() {
	if v.watcher != nil {
		if err := v.watcher.Close(); err != nil {
			log.Println(err)
		}
	}
}

//----------

// Watches the directory: editors often save by replacing the file.
func (v *Viewer) watch() (fswatcher.Watcher, error) {
	w, err := fswatcher.NewFsnWatcher()
	if err != nil {
		return nil, fmt.Errorf("viewer: watcher: %w", err)
	}
	*w.OpMask() = fswatcher.Create | fswatcher.Modify
	if err := w.Add(filepath.Dir(v.filename)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("viewer: watch: %w", err)
	}
	return w, nil
}

func (v *Viewer) handleWatchEvent(ev interface{}) {
	switch t := ev.(type) {
	case error:
		log.Println(t)
	case *fswatcher.Event:
		if !isFileEvent(t, v.filename) {
			return
		}
		if err := v.load(); err != nil {
			log.Println(err)
		}
	}
}

func isFileEvent(ev *fswatcher.Event, filename string) bool {
	return ev.Op.HasAny(fswatcher.Create|fswatcher.Modify) && ev.JoinNames() == filename
}

// The next tick picks up the new content size.
func (v *Viewer) load() error {
	if v.filename == "" {
		v.view.Content.SetText(sampleText)
		return nil
	}
	b, err := os.ReadFile(v.filename)
	if err != nil {
		return fmt.Errorf("viewer: load: %w", err)
	}
	v.view.Content.SetText(string(b))
	return nil
}
