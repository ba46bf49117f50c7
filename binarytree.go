package lookuptables

import (
	"fmt"
	"github.com/gostonefire/lookuptables/crt"
	"github.com/gostonefire/lookuptables/internal/model"
	"go.uber.org/zap"
	"strings"
)

// Entry - A key/value pair held by a look-up table
type Entry = model.Entry

// treeNode - A node of the binary search tree, it owns its left and right subtrees
type treeNode struct {
	entry model.Entry
	left  *treeNode
	right *treeNode
}

// BinaryTreeLUT - An unbounded look-up table mapping string keys to any value, stored in a binary search tree.
//
// Keys are compared lexicographically. A node's left subtree holds the keys greater than the node's key and the
// right subtree the keys less than it, hence an in-order traversal yields keys in descending order.
// The tree is never rebalanced, its shape is a function of insertion order.
type BinaryTreeLUT struct {
	root   *treeNode
	size   int
	logger *zap.Logger
}

// NewBinaryTreeLUT - Returns a pointer to a new empty BinaryTreeLUT
//   - logger receives diagnostics, nil gives a no-op logger
func NewBinaryTreeLUT(logger *zap.Logger) *BinaryTreeLUT {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &BinaryTreeLUT{logger: logger}
}

// Insert - Maps key to value. If the key is already present its value is replaced.
func (B *BinaryTreeLUT) Insert(key string, value any) {
	B.root = B.addToTree(B.root, key, value)
}

// Retrieve - Gets the value mapped to key.
//
// It returns:
//   - value is the value of the matching entry if found, if not found an error of type crt.KeyNotFound is also returned.
//   - err is of type crt.KeyNotFound if key is not present
func (B *BinaryTreeLUT) Retrieve(key string) (value any, err error) {
	node, err := getFromTree(B.root, key)
	if err != nil {
		return
	}

	value = node.entry.Value

	return
}

// Update - Replaces the value mapped to an existing key.
//
// It returns:
//   - err is of type crt.KeyNotFound if key is not present, nothing is inserted in that case
func (B *BinaryTreeLUT) Update(key string, value any) (err error) {
	node, err := getFromTree(B.root, key)
	if err != nil {
		return
	}

	node.entry.Value = value

	return
}

// Remove - Removes the mapping for key. A node with two subtrees takes over the entry of the rightmost node of its
// left subtree, which is then spliced out.
//
// It returns:
//   - err is of type crt.KeyNotFound if key is not present, the tree is unchanged in that case
func (B *BinaryTreeLUT) Remove(key string) (err error) {
	B.root, err = B.removeFromTree(B.root, key)
	if err != nil {
		return
	}

	B.size--

	return
}

// Clear - Removes all entries
func (B *BinaryTreeLUT) Clear() {
	B.root = nil
	B.size = 0
}

// Len - Returns the number of entries
func (B *BinaryTreeLUT) Len() int {
	return B.size
}

// Entries - Returns all entries in in-order traversal, that is in descending key order
func (B *BinaryTreeLUT) Entries() (entries []Entry) {
	entries = make([]Entry, 0, B.size)
	walkInOrder(B.root, func(entry model.Entry) {
		entries = append(entries, entry)
	})

	return
}

// String - Returns all entries in in-order traversal as "<key>:<value>, " items
func (B *BinaryTreeLUT) String() string {
	var sb strings.Builder
	walkInOrder(B.root, func(entry model.Entry) {
		_, _ = fmt.Fprintf(&sb, "%s:%v, ", entry.Key, entry.Value)
	})

	return sb.String()
}

// addToTree - Adds key and value to the tree rooted at node and returns the new root of that tree
func (B *BinaryTreeLUT) addToTree(node *treeNode, key string, value any) *treeNode {
	if node == nil {
		B.size++
		return &treeNode{entry: model.Entry{Key: key, Value: value}}
	}

	switch {
	case node.entry.Key == key:
		node.entry.Value = value
	case node.entry.Key < key:
		node.left = B.addToTree(node.left, key, value)
	default:
		node.right = B.addToTree(node.right, key, value)
	}

	return node
}

// removeFromTree - Removes key from the tree rooted at node and returns the new root of that tree
func (B *BinaryTreeLUT) removeFromTree(node *treeNode, key string) (root *treeNode, err error) {
	if node == nil {
		err = crt.KeyNotFound{}
		return
	}

	switch {
	case node.entry.Key == key:
		root = B.lrMerge(node)
		return
	case node.entry.Key < key:
		node.left, err = B.removeFromTree(node.left, key)
	default:
		node.right, err = B.removeFromTree(node.right, key)
	}

	root = node

	return
}

// lrMerge - Merges the two subtrees of a node to be removed and returns what replaces the node
func (B *BinaryTreeLUT) lrMerge(node *treeNode) *treeNode {
	if node.left == nil {
		return node.right
	}
	if node.right == nil {
		return node.left
	}

	var rightmost model.Entry
	node.left, rightmost = removeRightmost(node.left)

	B.logger.Debug("merged subtrees of removed node",
		zap.String("key", node.entry.Key),
		zap.String("replacement", rightmost.Key))

	node.entry = rightmost

	return node
}

// removeRightmost - Splices out the rightmost node of the tree rooted at node. It returns the new root of that
// tree and the entry of the removed node.
func removeRightmost(node *treeNode) (root *treeNode, entry model.Entry) {
	if node.right == nil {
		return node.left, node.entry
	}

	node.right, entry = removeRightmost(node.right)

	return node, entry
}

// getFromTree - Returns the node holding key in the tree rooted at node
func getFromTree(node *treeNode, key string) (*treeNode, error) {
	for node != nil {
		switch {
		case node.entry.Key == key:
			return node, nil
		case node.entry.Key < key:
			node = node.left
		default:
			node = node.right
		}
	}

	return nil, crt.KeyNotFound{}
}

// walkInOrder - Visits left subtree, node and right subtree
func walkInOrder(node *treeNode, visit func(entry model.Entry)) {
	if node == nil {
		return
	}

	walkInOrder(node.left, visit)
	visit(node.entry)
	walkInOrder(node.right, visit)
}
