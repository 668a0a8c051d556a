package billing

import (
	"fmt"
	"strings"

	"github.com/DE-labtory/billing/merkletree"
)

// Digest commits to the whole coin store, holders included.
type Digest struct {
	Root  merkletree.RootHash
	Coins int
}

// Proof shows that Coin, with its current provenance, is part of the coin
// store committed to by Root.
type Proof struct {
	Coin  Coin
	Root  merkletree.RootHash
	Path  merkletree.RootPath
	Index []int64
}

func (p Proof) Verify() bool {
	return merkletree.ValidatePath(coinLeaf(p.Coin), p.Root, p.Path, p.Index)
}

func coinLeaf(c Coin) merkletree.Leaf {
	return merkletree.NewLeaf([]byte(fmt.Sprintf("%d:%s", c.ID, strings.Join(c.Provenance, ","))))
}

func (l *Ledger) Digest() (Digest, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	tree, err := l.tree()
	if err != nil {
		return Digest{}, err
	}
	return Digest{Root: tree.Root(), Coins: len(l.coins)}, nil
}

func (l *Ledger) Proof(id int64) (Proof, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	c, err := l.coin(id)
	if err != nil {
		return Proof{}, err
	}

	tree, err := l.tree()
	if err != nil {
		return Proof{}, err
	}

	coin := c.copy()
	path, index, err := tree.Path(coinLeaf(coin))
	if err != nil {
		return Proof{}, err
	}

	return Proof{
		Coin:  coin,
		Root:  tree.Root(),
		Path:  path,
		Index: index,
	}, nil
}

func (l *Ledger) tree() (*merkletree.Tree, error) {
	if len(l.coins) == 0 {
		return nil, ErrEmptyLedger
	}

	leaves := make([]merkletree.Leaf, 0, len(l.coins))
	for _, c := range l.coins {
		leaves = append(leaves, coinLeaf(*c))
	}
	return merkletree.New(leaves)
}
