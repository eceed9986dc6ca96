package widgets

import (
	"context"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// LoadingDots is a three-dot activity indicator shown while
// the portfolio is loading.
type LoadingDots struct {
	widget.BaseWidget

	running    atomic.Bool
	animCancel context.CancelFunc

	dots      [3]minSizeCircle
	animPos   int
	container *fyne.Container
}

func NewLoadingDots() *LoadingDots {
	l := &LoadingDots{}
	for i := range l.dots {
		l.dots[i].ExtendBaseWidget(&l.dots[i])
	}
	l.ExtendBaseWidget(l)
	l.Hide()
	return l
}

func (l *LoadingDots) Running() bool {
	return l.running.Load()
}

func (l *LoadingDots) Start() {
	if !l.running.CompareAndSwap(false, true) {
		return // already started
	}
	for i := range l.dots {
		l.dots[i].active = false
	}
	l.animPos = 0
	l.Show()
	var ctx context.Context
	ctx, l.animCancel = context.WithCancel(context.Background())
	go l.animate(ctx)
}

func (l *LoadingDots) Stop() {
	if !l.running.CompareAndSwap(true, false) {
		return
	}
	l.animCancel()
	l.Hide()
}

func (l *LoadingDots) animate(ctx context.Context) {
	fyne.Do(l.doTick)
	ticker := time.NewTicker(333 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fyne.Do(func() {
				if ctx.Err() == nil {
					l.doTick()
				}
			})
		}
	}
}

func (l *LoadingDots) doTick() {
	oldDot := l.animPos - 1
	if oldDot == -1 {
		oldDot = len(l.dots) - 1
	}
	l.dots[l.animPos].active = true
	l.dots[oldDot].active = false
	l.Refresh()
	l.animPos += 1
	if l.animPos >= len(l.dots) {
		l.animPos = 0
	}
}

func (l *LoadingDots) Refresh() {
	for i := range l.dots {
		l.dots[i].Refresh()
	}
}

func (l *LoadingDots) CreateRenderer() fyne.WidgetRenderer {
	if l.container == nil {
		layout := layout.NewCustomPaddedLayout(0, 0, 3, 3)
		l.container = container.NewHBox(
			container.New(layout, &l.dots[0]),
			container.New(layout, &l.dots[1]),
			container.New(layout, &l.dots[2]),
		)
	}
	return widget.NewSimpleRenderer(l.container)
}

type minSizeCircle struct {
	widget.BaseWidget

	active bool
	circle canvas.Circle
}

func (m *minSizeCircle) Refresh() {
	name := theme.ColorNameDisabled
	if m.active {
		name = theme.ColorNamePrimary
	}
	m.circle.FillColor = m.Theme().Color(name, fyne.CurrentApp().Settings().ThemeVariant())
	m.circle.Refresh()
}

func (m *minSizeCircle) CreateRenderer() fyne.WidgetRenderer {
	m.Refresh()
	return widget.NewSimpleRenderer(&m.circle)
}

func (m *minSizeCircle) MinSize() fyne.Size {
	return fyne.NewSquareSize(theme.IconInlineSize() / 2)
}
