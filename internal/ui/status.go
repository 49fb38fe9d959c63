package ui

import (
	"fmt"
	"time"

	"explorer/internal/fileinfo"
	"explorer/internal/jobs"
)

// StatusText builds the status bar line for view from the job manager's
// snapshots (active jobs first, then history newest first). A running
// listing wins over the item count.
func StatusText(snaps []jobs.JobSnapshot, view string, shown, total int) string {
	var lastList *jobs.JobSnapshot
	for i := range snaps {
		s := &snaps[i]
		if s.View != view || s.Type != jobs.TypeList {
			continue
		}
		if !s.Status.Done() {
			return fmt.Sprintf("Loading %s... %s", fileinfo.BaseName(s.Target), formatElapsed(s.Elapsed()))
		}
		if lastList == nil {
			lastList = s
		}
	}

	text := fmt.Sprintf("%d items", total)
	if shown != total {
		text = fmt.Sprintf("%d of %d items", shown, total)
	}
	if lastList != nil && lastList.Status == jobs.StatusCompleted {
		text += ", listed in " + formatElapsed(lastList.Elapsed())
	}
	return text
}

func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
