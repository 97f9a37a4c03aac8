package ast

// NodeType represents the type of the AST node
type NodeType uint8

// Node types
const (
	NodeTypeLeaf  NodeType = iota + 1 // Wraps a single non-parenthesis token
	NodeTypeGroup                     // One matched pair of parentheses
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeLeaf:  "leaf",
	NodeTypeGroup: "group",
}
