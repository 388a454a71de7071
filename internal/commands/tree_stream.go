package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/temirov/sdir/internal/types"
	"github.com/temirov/sdir/internal/utils"
	"github.com/temirov/sdir/internal/walker"
)

const (
	ConnectorMiddle = "├──"
	ConnectorLast   = "└──"

	PaddingContinue = "│   "
	PaddingBlank    = "    "

	errorNilHandlerMessage = "tree stream handler is nil"
	errorStatRootFormat    = "inspecting %s: %w"
	errorRootNotDirFormat  = "%s is not a directory: %w"
)

type TreeEventKind int

const (
	TreeEventEnterDir TreeEventKind = iota
	TreeEventFile
	TreeEventLeaveDir
)

// TreeEntryLayout carries what a line-oriented renderer needs to draw one entry.
type TreeEntryLayout struct {
	// Prefix is the accumulated continuation padding of all ancestors.
	Prefix string
	IsLast bool
}

// Connector returns the branch glyph for the entry.
func (layout TreeEntryLayout) Connector() string {
	if layout.IsLast {
		return ConnectorLast
	}
	return ConnectorMiddle
}

// ChildPrefix returns the prefix used by the entry's own children.
func (layout TreeEntryLayout) ChildPrefix() string {
	if layout.IsLast {
		return layout.Prefix + PaddingBlank
	}
	return layout.Prefix + PaddingContinue
}

type TreeDirectoryEvent struct {
	Path     string
	Name     string
	Depth    int
	IsRoot   bool
	IsEmpty  bool
	Expanded bool
	Layout   TreeEntryLayout
}

type TreeFileEvent struct {
	Path       string
	Name       string
	Depth      int
	Layout     TreeEntryLayout
	Content    string
	HasContent bool
}

type TreeEvent struct {
	Kind      TreeEventKind
	Directory *TreeDirectoryEvent
	File      *TreeFileEvent
}

// Walk emits EnterDir/File/LeaveDir events for root in display order.
// Children of a directory are listed one level at a time, filtered, and sorted by full path.
// Unreadable directories and files are logged and skipped.
func (treeBuilder *TreeBuilder) Walk(root string, handler func(TreeEvent) error) error {
	if handler == nil {
		return errors.New(errorNilHandlerMessage)
	}

	info, statError := os.Stat(root)
	if statError != nil {
		return fmt.Errorf(errorStatRootFormat, root, statError)
	}
	if !info.IsDir() {
		return fmt.Errorf(errorRootNotDirFormat, root, types.ErrInputNotFileOrDir)
	}

	rootEvent := TreeDirectoryEvent{
		Path:     root,
		Name:     filepath.Base(root),
		Depth:    0,
		IsRoot:   true,
		IsEmpty:  treeBuilder.classifier.IsEffectivelyEmpty(root),
		Expanded: treeBuilder.config.DepthAllowsExpansion(0),
		Layout:   TreeEntryLayout{IsLast: true},
	}
	if err := handler(TreeEvent{Kind: TreeEventEnterDir, Directory: &rootEvent}); err != nil {
		return err
	}
	if rootEvent.Expanded {
		if err := treeBuilder.walkChildren(root, "", 1, handler); err != nil {
			return err
		}
	}
	leaveEvent := rootEvent
	return handler(TreeEvent{Kind: TreeEventLeaveDir, Directory: &leaveEvent})
}

type visibleEntry struct {
	entry   walker.Entry
	isEmpty bool
}

func (treeBuilder *TreeBuilder) walkChildren(directory string, prefix string, depth int, handler func(TreeEvent) error) error {
	children := treeBuilder.visibleChildren(directory)
	for index, child := range children {
		layout := TreeEntryLayout{Prefix: prefix, IsLast: index == len(children)-1}

		if child.entry.IsDir {
			directoryEvent := TreeDirectoryEvent{
				Path:     child.entry.Path,
				Name:     child.entry.Name,
				Depth:    depth,
				IsEmpty:  child.isEmpty,
				Expanded: treeBuilder.config.DepthAllowsExpansion(depth),
				Layout:   layout,
			}
			if err := handler(TreeEvent{Kind: TreeEventEnterDir, Directory: &directoryEvent}); err != nil {
				return err
			}
			if directoryEvent.Expanded {
				if err := treeBuilder.walkChildren(child.entry.Path, layout.ChildPrefix(), depth+1, handler); err != nil {
					return err
				}
			}
			leaveEvent := directoryEvent
			if err := handler(TreeEvent{Kind: TreeEventLeaveDir, Directory: &leaveEvent}); err != nil {
				return err
			}
			continue
		}

		fileEvent := TreeFileEvent{
			Path:   child.entry.Path,
			Name:   child.entry.Name,
			Depth:  depth,
			Layout: layout,
		}
		if treeBuilder.config.CollectContents {
			content, isText, readError := utils.ReadTextFile(child.entry.Path)
			switch {
			case readError != nil:
				treeBuilder.logger.Debug("skipping unreadable file content", zap.String("path", child.entry.Path), zap.Error(readError))
			case !isText:
				treeBuilder.logger.Debug("skipping non-text file content", zap.String("path", child.entry.Path))
			default:
				fileEvent.Content = content
				fileEvent.HasContent = true
			}
		}
		if err := handler(TreeEvent{Kind: TreeEventFile, File: &fileEvent}); err != nil {
			return err
		}
	}
	return nil
}

// visibleChildren returns the admitted children of directory sorted by full path.
// Under an include pattern, effectively empty directories are dropped so that
// last-sibling detection only considers entries that will be drawn.
func (treeBuilder *TreeBuilder) visibleChildren(directory string) []visibleEntry {
	entries, listError := treeBuilder.lister.List(directory)
	if listError != nil {
		treeBuilder.logger.Warn("skipping unreadable directory", zap.String("path", directory), zap.Error(listError))
		return nil
	}

	visible := make([]visibleEntry, 0, len(entries))
	for _, entry := range entries {
		if !treeBuilder.filter.Admit(entry, directory) {
			continue
		}
		candidate := visibleEntry{entry: entry}
		if entry.IsDir {
			candidate.isEmpty = treeBuilder.classifier.IsEffectivelyEmpty(entry.Path)
			if candidate.isEmpty && treeBuilder.config.HasIncludePattern() {
				continue
			}
		}
		visible = append(visible, candidate)
	}

	sort.SliceStable(visible, func(left, right int) bool {
		return visible[left].entry.Path < visible[right].entry.Path
	})
	return visible
}
