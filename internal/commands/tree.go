// Package commands contains the traversal core: entry filtering, emptiness
// classification, tree building and file mode.
package commands

import (
	"errors"

	"github.com/temirov/sdir/internal/types"
)

const errorUnbalancedTreeMessage = "tree events are unbalanced"

// TreeAssembler builds a TreeNode hierarchy from a stream of tree events using a directory stack.
type TreeAssembler struct {
	stack []*types.TreeNode
	root  *types.TreeNode
}

// Handle consumes one event. It is suitable as a TreeBuilder.Walk handler.
func (assembler *TreeAssembler) Handle(event TreeEvent) error {
	switch event.Kind {
	case TreeEventEnterDir:
		directory := event.Directory
		node := &types.TreeNode{
			Name:    directory.Name,
			Path:    directory.Path,
			IsDir:   true,
			IsEmpty: directory.IsEmpty,
		}
		if directory.Expanded {
			children := []*types.TreeNode{}
			node.Children = &children
		}
		if err := assembler.attach(node); err != nil {
			return err
		}
		assembler.stack = append(assembler.stack, node)
	case TreeEventFile:
		file := event.File
		return assembler.attach(&types.TreeNode{Name: file.Name, Path: file.Path})
	case TreeEventLeaveDir:
		if len(assembler.stack) == 0 {
			return errors.New(errorUnbalancedTreeMessage)
		}
		assembler.stack = assembler.stack[:len(assembler.stack)-1]
	}
	return nil
}

func (assembler *TreeAssembler) attach(node *types.TreeNode) error {
	if len(assembler.stack) == 0 {
		if assembler.root != nil {
			return errors.New(errorUnbalancedTreeMessage)
		}
		assembler.root = node
		return nil
	}
	parent := assembler.stack[len(assembler.stack)-1]
	if parent.Children == nil {
		return errors.New(errorUnbalancedTreeMessage)
	}
	*parent.Children = append(*parent.Children, node)
	return nil
}

// Root returns the assembled root, or nil when no events were handled.
func (assembler *TreeAssembler) Root() *types.TreeNode {
	return assembler.root
}

// BuildTree walks root and returns the resulting node hierarchy.
func (treeBuilder *TreeBuilder) BuildTree(root string) (*types.TreeNode, error) {
	assembler := &TreeAssembler{}
	if err := treeBuilder.Walk(root, assembler.Handle); err != nil {
		return nil, err
	}
	return assembler.Root(), nil
}
