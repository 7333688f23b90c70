package notification

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"time"

	"github.com/machinebox/progress"
	"github.com/randomfusion/sdk/emitter"
	"github.com/randomfusion/sdk/utils"
)

type ProgressMessage struct {
	Title        string
	Progress     int
	BytesWritten int64
	ExpectedSize int64
	Remaining    time.Duration
	Completed    bool
}

// UIProgressEvent forwards progress payloads onto a channel a UI can drain.
type UIProgressEvent struct {
	name         string
	progressChan chan ProgressMessage
}

func NewUIProgressEvent(name string, progressChan chan ProgressMessage) UIProgressEvent {
	return UIProgressEvent{
		name:         name,
		progressChan: progressChan,
	}
}

func (m UIProgressEvent) Emit(c context.Context, message emitter.EventMessage, p any) error {
	pyld, ok := p.(ProgressMessage)
	if !ok {
		return errors.New(utils.ErrorNotProgress)
	}
	m.progressChan <- pyld
	return nil
}

// CopyWithProgress copies src into dst through a counting writer, emitting
// emitter.ProgressMessage events until the expected size has been written.
// size must be the exact number of bytes src will deliver, otherwise the
// ticker never completes.
func CopyWithProgress(ctx context.Context, dst io.Writer, src io.Reader, size int64, title string, em emitter.Emitter, logger *log.Logger) error {
	w := progress.NewWriter(dst)
	ticker := progress.NewTicker(ctx, w, size, 50*time.Millisecond)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for p := range ticker {
			msg := ProgressMessage{
				Title:        title,
				Progress:     int(p.Percent()),
				BytesWritten: p.N(),
				ExpectedSize: p.Size(),
				Remaining:    p.Remaining().Round(250 * time.Millisecond),
				Completed:    p.Complete(),
			}
			if err := em.Emit(ctx, emitter.ProgressMessage, msg); err != nil {
				logger.Println(utils.GetCurrentFunctionName(), " error emitting progress ", err)
				return
			}
		}
	}()

	_, err := io.Copy(w, src)
	wg.Wait()
	return err
}
