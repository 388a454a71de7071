// Package types defines every cross‑package data structure used by the sdir CLI.
package types

const (
	FormatText = "text"
	FormatJSON = "json"

	// LockFileName is excluded from listings unless lock files are requested.
	LockFileName = "Cargo.lock"

	DirectoryIcon = "📁"
	FileIcon      = "📄"
)

// ValidatedPath is an input path that already passed existence checks.
// RawPath keeps the spelling the user provided; it is what gets displayed.
type ValidatedPath struct {
	RawPath      string
	AbsolutePath string
	IsDir        bool
}

// TreeNode represents one rendered filesystem entry.
// Children is nil when the node was not expanded because of the depth
// cutoff and points to a (possibly empty) slice otherwise.
type TreeNode struct {
	Name     string       `json:"name"`
	Path     string       `json:"path"`
	IsDir    bool         `json:"is_dir"`
	IsEmpty  bool         `json:"is_empty"`
	Children *[]*TreeNode `json:"children,omitempty"`
}

// ChildNodes returns the expanded children or nil.
func (node *TreeNode) ChildNodes() []*TreeNode {
	if node == nil || node.Children == nil {
		return nil
	}
	return *node.Children
}

// IsExpanded reports whether the node carries a children listing.
func (node *TreeNode) IsExpanded() bool {
	return node != nil && node.Children != nil
}

// TraversalConfig holds the immutable settings for one traversal.
// A nil MaxDepth means unlimited depth.
type TraversalConfig struct {
	MaxDepth        *int
	DirsOnly        bool
	IncludeLocks    bool
	IncludePattern  string
	CollectContents bool
}

// DepthAllowsExpansion reports whether a directory at depth may list its children.
func (config *TraversalConfig) DepthAllowsExpansion(depth int) bool {
	if config == nil || config.MaxDepth == nil {
		return true
	}
	return depth < *config.MaxDepth
}

// HasIncludePattern reports whether the glob inclusion rule is active.
func (config *TraversalConfig) HasIncludePattern() bool {
	return config != nil && config.IncludePattern != ""
}

// WalkOptions configures the ignore-aware directory lister.
type WalkOptions struct {
	UseGitignore  bool
	UseIgnoreFile bool
	IncludeGit    bool
	ShowHidden    bool
}

// FileContent is one collected (path, content) pair.
type FileContent struct {
	Path    string
	Content string
}
