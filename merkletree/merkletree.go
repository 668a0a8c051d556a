// Package merkletree commits a list of leaves to a single root hash and
// produces inclusion paths that can be checked against that root.
package merkletree

import (
	"bytes"
	"crypto/sha256"
	"errors"

	"github.com/cbergoon/merkletree"
)

var ErrEmptyTree = errors.New("cannot build merkle tree without leaves")
var ErrLeafNotFound = errors.New("leaf is not in merkle tree")

type RootPath [][]byte
type RootHash []byte

type Tree struct {
	tree *merkletree.MerkleTree
}

func New(leaves []Leaf) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyTree
	}

	contents := make([]merkletree.Content, 0, len(leaves))
	for _, leaf := range leaves {
		contents = append(contents, leaf)
	}

	t, err := merkletree.NewTree(contents)
	if err != nil {
		return nil, err
	}
	return &Tree{tree: t}, nil
}

func (t *Tree) Root() RootHash {
	return t.tree.MerkleRoot()
}

// Path returns sibling hashes from leaf to root. index[i] is 1 when the
// sibling at level i sits on the right, 0 when it sits on the left.
func (t *Tree) Path(leaf Leaf) (RootPath, []int64, error) {
	path, index, err := t.tree.GetMerklePath(leaf)
	if err != nil {
		return nil, nil, err
	}
	if path == nil {
		return nil, nil, ErrLeafNotFound
	}
	return path, index, nil
}

// Leaf is a hashed block of data
type Leaf []byte

func NewLeaf(data []byte) Leaf {
	return Leaf(data)
}

func (l Leaf) CalculateHash() ([]byte, error) {
	h := sha256.New()
	if _, err := h.Write(l); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

func (l Leaf) Equals(other merkletree.Content) (bool, error) {
	o, ok := other.(Leaf)
	if !ok {
		return false, nil
	}
	return bytes.Equal(l, o), nil
}

// ValidatePath recomputes the root from leaf and path and compares it with root.
func ValidatePath(leaf Leaf, root RootHash, path RootPath, index []int64) bool {
	if len(path) != len(index) {
		return false
	}

	branch, err := leaf.CalculateHash()
	if err != nil {
		return false
	}

	node := make(Leaf, 0, 2*sha256.Size)
	for i, sibling := range path {
		node = node[:0]
		switch index[i] {
		case 0:
			node = append(node, sibling...)
			node = append(node, branch...)
		case 1:
			node = append(node, branch...)
			node = append(node, sibling...)
		default:
			return false
		}

		branch, err = node.CalculateHash()
		if err != nil {
			return false
		}
	}

	return bytes.Equal(root, branch)
}
