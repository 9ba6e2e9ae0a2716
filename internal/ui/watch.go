package ui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/Kamisorara/ImageViewer/internal/log"
)

// datasetChangedNotice is shown when the dataset file changes on disk. The
// mapping is read once at start-up, so a restart is needed to see it.
const datasetChangedNotice = "数据集文件已更改，重启后生效"

type fileEventMsg struct {
	path string
	op   fsnotify.Op
}

type fileWatchErrMsg struct {
	err error
}

func (m *Model) startWatching(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	path = filepath.Clean(path)
	if err := m.ensureWatcher(); err != nil {
		m.err = err
		return nil
	}

	dir := filepath.Dir(path)
	if dir != m.watchDir {
		if m.watchDir != "" {
			_ = m.watcher.Remove(m.watchDir)
		}
		if err := m.watcher.Add(dir); err != nil {
			m.err = err
			return nil
		}
		m.watchDir = dir
	}

	m.watchedFile = path
	return m.waitForFileEvent()
}

func (m *Model) ensureWatcher() error {
	if m.watcher != nil {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	m.watcher = watcher
	m.watchChan = make(chan tea.Msg, 10)

	go watchLoop(watcher, m.watchChan)
	return nil
}

// watchLoop forwards watcher events until the watcher is closed, then
// closes out. Events arriving while out is full are dropped.
func watchLoop(watcher *fsnotify.Watcher, out chan<- tea.Msg) {
	defer close(out)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			post(out, fileEventMsg{path: event.Name, op: event.Op})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			post(out, fileWatchErrMsg{err: err})
		}
	}
}

func post(out chan<- tea.Msg, msg tea.Msg) {
	select {
	case out <- msg:
	default:
	}
}

func (m *Model) waitForFileEvent() tea.Cmd {
	if m.watchChan == nil || m.watcher == nil {
		return nil
	}
	ch := m.watchChan
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

func (m *Model) handleFileEvent(msg fileEventMsg) tea.Cmd {
	if m.watchedFile == "" || filepath.Clean(msg.path) != m.watchedFile {
		return m.waitForFileEvent()
	}
	log.Printf("dataset: %s changed (%s)", msg.path, msg.op)
	m.status = datasetChangedNotice
	return m.waitForFileEvent()
}

func (m *Model) closeWatcher() {
	if m.watcher == nil {
		return
	}
	_ = m.watcher.Close()
	m.watcher = nil
	m.watchChan = nil
	m.watchDir = ""
	m.watchedFile = ""
}
