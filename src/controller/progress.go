package controller

import (
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
)

// 逐项处理时的进度条，只用于展示
type tracker struct {
	pw       progress.Writer
	tracker  *progress.Tracker
	rendered chan struct{} // Render返回后关闭
}

// out为nil时不展示
func newTracker(out io.Writer, message string, total int) *tracker {
	if out == nil {
		return &tracker{}
	}

	pw := progress.NewWriter()
	pw.SetOutputWriter(out)
	pw.SetUpdateFrequency(100 * time.Millisecond)
	pw.SetTrackerPosition(progress.PositionRight)
	pw.Style().Visibility.ETA = true

	t := &progress.Tracker{Message: message, Total: int64(total), Units: progress.UnitsDefault}
	pw.AppendTracker(t)

	rendered := make(chan struct{})
	go func() {
		defer close(rendered)
		pw.Render()
	}()

	return &tracker{pw: pw, tracker: t, rendered: rendered}
}

func (t *tracker) Increment() {
	if t.tracker != nil {
		t.tracker.Increment(1)
	}
}

// Done 结束进度条，返回时Render已退出
func (t *tracker) Done() {
	if t.pw == nil {
		return
	}
	t.tracker.MarkAsDone()

	// Render尚未开始时Stop不生效，需等到其开始后再停止
	for !t.pw.IsRenderInProgress() {
		time.Sleep(time.Millisecond)
	}
	t.pw.Stop()
	<-t.rendered
}
