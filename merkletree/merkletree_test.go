package merkletree

import (
	"strconv"
	"testing"
)

func setUpLeaves(n int) []Leaf {
	var leaves []Leaf

	for idx := 0; idx < n; idx++ {
		leaves = append(leaves, NewLeaf([]byte(strconv.Itoa(idx))))
	}

	return leaves
}

func TestLeaf_CalculateHash(t *testing.T) {
	leaf := NewLeaf([]byte("1:boris,maria"))

	hash, err := leaf.CalculateHash()
	if err != nil {
		t.Fatalf("error in sha256 hashing : %s", err.Error())
	}

	if len(hash) != 32 {
		t.Fatalf("error in hash size - expected=32, got=%d", len(hash))
	}
}

func TestLeaf_Equals(t *testing.T) {
	leaf := NewLeaf([]byte("1:boris,maria"))
	cpyLeaf := NewLeaf([]byte("1:boris,maria"))

	ok, err := leaf.Equals(cpyLeaf)
	if err != nil {
		t.Fatalf("error in bytes equals : %s", err.Error())
	}
	if !ok {
		t.Fatalf("not equal leaf - expected=%x, got=%x", leaf, cpyLeaf)
	}

	ok, _ = leaf.Equals(NewLeaf([]byte("2:boris")))
	if ok {
		t.Fatalf("different leaves must not be equal")
	}
}

func TestNew_empty(t *testing.T) {
	if _, err := New(nil); err != ErrEmptyTree {
		t.Fatalf("expected ErrEmptyTree, but got %v", err)
	}
}

func TestNew_rootIsDeterministic(t *testing.T) {
	t1, err := New(setUpLeaves(5))
	if err != nil {
		t.Fatalf("error in make merkle tree : %s", err.Error())
	}
	t2, err := New(setUpLeaves(5))
	if err != nil {
		t.Fatalf("error in make merkle tree : %s", err.Error())
	}

	if string(t1.Root()) != string(t2.Root()) {
		t.Fatalf("same leaves must produce same root - got=%x, %x", t1.Root(), t2.Root())
	}
}

func TestValidatePath(t *testing.T) {
	for _, n := range []int{1, 2, 4, 5, 7} {
		leaves := setUpLeaves(n)
		tree, err := New(leaves)
		if err != nil {
			t.Fatalf("error in New : %s", err.Error())
		}

		for _, leaf := range leaves {
			path, index, err := tree.Path(leaf)
			if err != nil {
				t.Fatalf("error in Path : %s", err.Error())
			}
			if !ValidatePath(leaf, tree.Root(), path, index) {
				t.Fatalf("test[%d leaves] failed - path of %s is invalid", n, string(leaf))
			}
		}
	}
}

func TestValidatePath_tampered(t *testing.T) {
	leaves := setUpLeaves(4)
	tree, err := New(leaves)
	if err != nil {
		t.Fatalf("error in New : %s", err.Error())
	}

	path, index, err := tree.Path(leaves[2])
	if err != nil {
		t.Fatalf("error in Path : %s", err.Error())
	}

	if ValidatePath(NewLeaf([]byte("forged")), tree.Root(), path, index) {
		t.Fatalf("forged leaf must not validate")
	}
	if ValidatePath(leaves[2], tree.Root(), path, index[:1]) {
		t.Fatalf("path and index of different length must not validate")
	}
}

func TestTree_Path_notFound(t *testing.T) {
	tree, err := New(setUpLeaves(3))
	if err != nil {
		t.Fatalf("error in New : %s", err.Error())
	}

	if _, _, err := tree.Path(NewLeaf([]byte("missing"))); err != ErrLeafNotFound {
		t.Fatalf("expected ErrLeafNotFound, but got %v", err)
	}
}
