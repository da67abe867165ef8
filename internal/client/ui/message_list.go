package ui

import "strings"

// messageList tracks scroll position and selection over the rendered log
type messageList struct {
	scrollBack int // lines scrolled up from the newest message, 0 follows the tail
	selected   int // index into the log, -1 when nothing is selected
}

func newMessageList() messageList {
	return messageList{selected: -1}
}

// follow pins the view to the newest message
func (l *messageList) follow() {
	l.scrollBack = 0
	l.selected = -1
}

// layout joins rendered bubbles into lines and records where each bubble starts
func layout(bubbles []string) (lines []string, starts []int) {
	starts = make([]int, len(bubbles))
	for i, b := range bubbles {
		starts[i] = len(lines)
		lines = append(lines, strings.Split(b, "\n")...)
		lines = append(lines, "") // gap between bubbles
	}
	return lines, starts
}

// clamp keeps scrollBack inside the scrollable range
func (l *messageList) clamp(total, height int) {
	maxBack := total - height
	if maxBack < 0 {
		maxBack = 0
	}
	if l.scrollBack > maxBack {
		l.scrollBack = maxBack
	}
	if l.scrollBack < 0 {
		l.scrollBack = 0
	}
}

// window returns the visible slice of lines
func (l messageList) window(lines []string, height int) []string {
	l.clamp(len(lines), height)
	end := len(lines) - l.scrollBack
	start := end - height
	if start < 0 {
		start = 0
	}
	return lines[start:end]
}

// reveal scrolls so that lines [start, end) are visible
func (l *messageList) reveal(start, end, total, height int) {
	bottom := total - l.scrollBack
	top := bottom - height
	switch {
	case start < top:
		l.scrollBack = total - (start + height)
	case end > bottom:
		l.scrollBack = total - end
	}
	l.clamp(total, height)
}

// move shifts the selection by delta; moving past the newest message clears it
func (l *messageList) move(delta, count int) {
	if count == 0 {
		l.selected = -1
		return
	}
	if l.selected < 0 {
		if delta < 0 {
			l.selected = count - 1
		}
		return
	}
	l.selected += delta
	if l.selected < 0 {
		l.selected = 0
	}
	if l.selected >= count {
		l.follow()
	}
}
