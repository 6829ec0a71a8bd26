package golatex

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/boergens/golatex/syntax"
)

// Logger is used to report file-watching problems when using the
// WatchFiles feature.
var Logger = log.New(os.Stderr, "[golatex] ", 0)

type workspaceFile struct{ name, content string }

// Workspace is a collection of LaTeX files. It acts as input for batch
// parsing and checking, and can optionally watch its files for changes.
// Errors encountered while adding files latch and surface at Parse or
// Check.
type Workspace struct {
	files   []workspaceFile
	err     error
	watcher *fsnotify.Watcher
}

// NewWorkspace creates an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// WatchFiles tells the workspace to watch any files added to it. It
// should be called once, before adding any files.
func (w *Workspace) WatchFiles(watch bool) *Workspace {
	if watch && w.err == nil && w.watcher == nil {
		w.watcher, w.err = fsnotify.NewWatcher()
	}
	return w
}

// AddDir adds all *.tex files found within the given directory
// (including sub-directories) to the workspace.
func (w *Workspace) AddDir(root string) *Workspace {
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".tex") {
			return nil
		}
		w.AddFile(path)
		return nil
	})
	if err != nil {
		w.err = err
	}
	return w
}

// AddFile adds the given file to the workspace.
func (w *Workspace) AddFile(path string) *Workspace {
	content, err := os.ReadFile(path)
	if err != nil {
		w.err = err
	}
	if w.err == nil && w.watcher != nil {
		w.err = w.watcher.Add(path)
	}
	return w.AddString(path, string(content))
}

// AddString adds the given text to the workspace under a name.
func (w *Workspace) AddString(name, text string) *Workspace {
	w.files = append(w.files, workspaceFile{name, text})
	return w
}

// Parse parses every file in the workspace.
func (w *Workspace) Parse() (map[string]*syntax.Source, error) {
	if w.err != nil {
		return nil, w.err
	}
	sources := make(map[string]*syntax.Source, len(w.files))
	for _, file := range w.files {
		sources[file.name] = syntax.NewSource(file.name, file.content)
	}
	return sources, nil
}

// FileDiagnostic is a diagnostic together with the file it was found in.
type FileDiagnostic struct {
	File string
	syntax.Diagnostic
}

// Check parses every file and returns the aggregated diagnostics,
// ordered by file name and offset.
func (w *Workspace) Check() ([]FileDiagnostic, error) {
	sources, err := w.Parse()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)

	var diags []FileDiagnostic
	for _, name := range names {
		for _, d := range syntax.Diagnose(sources[name]) {
			diags = append(diags, FileDiagnostic{File: name, Diagnostic: d})
		}
	}
	return diags, nil
}

// Watch blocks and re-checks a file whenever it changes, invoking the
// callback with the file's fresh diagnostics. WatchFiles(true) must
// have been set before files were added.
func (w *Workspace) Watch(onChange func(path string, diags []syntax.Diagnostic)) error {
	if w.err != nil {
		return w.err
	}
	if w.watcher == nil {
		return fmt.Errorf("golatex: workspace is not watching; call WatchFiles(true) before adding files")
	}

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				// Renames, removals and attribute changes are skipped;
				// no watch is re-added for a renamed or removed file.
				continue
			}
			content, err := os.ReadFile(event.Name)
			if err != nil {
				Logger.Printf("reload %s: %v", event.Name, err)
				continue
			}
			w.replace(event.Name, string(content))
			src := syntax.NewSource(event.Name, string(content))
			onChange(event.Name, syntax.Diagnose(src))
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			Logger.Printf("watch: %v", err)
		}
	}
}

// Close releases the watcher, if any.
func (w *Workspace) Close() error {
	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}

func (w *Workspace) replace(name, content string) {
	for i := range w.files {
		if w.files[i].name == name {
			w.files[i].content = content
			return
		}
	}
	w.files = append(w.files, workspaceFile{name, content})
}
