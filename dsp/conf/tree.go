package conf

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Leaf is a value a [Tree] can encode and decode as a whole.
// [*Setting] implements it.
type Leaf interface {
	json.Marshaler
	json.Unmarshaler
}

// Tree maps paths to leaves. It is safe for concurrent use.
type Tree struct {
	mu     sync.RWMutex
	leaves map[string]Leaf
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{leaves: make(map[string]Leaf)}
}

// Register adds leaf at path.
func (t *Tree) Register(path string, leaf Leaf) error {
	p, err := cleanPath(path)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.leaves[p]; ok {
		return fmt.Errorf("conf: %q: %w", p, ErrDuplicate)
	}

	t.leaves[p] = leaf

	return nil
}

// Set decodes data into the leaf at path.
func (t *Tree) Set(path string, data []byte) error {
	leaf, p, err := t.lookup(path)
	if err != nil {
		return err
	}

	if err := leaf.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("conf: set %q: %w", p, err)
	}

	return nil
}

// Get encodes the leaf at path.
func (t *Tree) Get(path string) ([]byte, error) {
	leaf, p, err := t.lookup(path)
	if err != nil {
		return nil, err
	}

	data, err := leaf.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("conf: get %q: %w", p, err)
	}

	return data, nil
}

// Paths returns the registered paths in sorted order.
func (t *Tree) Paths() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	paths := make([]string, 0, len(t.leaves))
	for p := range t.leaves {
		paths = append(paths, p)
	}

	slices.Sort(paths)

	return paths
}

// Dump encodes every leaf as one JSON object keyed by path.
func (t *Tree) Dump() ([]byte, error) {
	out := make(map[string]json.RawMessage)
	for _, p := range t.Paths() {
		data, err := t.Get(p)
		if err != nil {
			return nil, err
		}

		out[p] = data
	}

	return json.Marshal(out)
}

func (t *Tree) lookup(path string) (Leaf, string, error) {
	p, err := cleanPath(path)
	if err != nil {
		return nil, "", err
	}

	t.mu.RLock()
	leaf, ok := t.leaves[p]
	t.mu.RUnlock()

	if !ok {
		return nil, p, fmt.Errorf("conf: %q: %w", p, ErrNotFound)
	}

	return leaf, p, nil
}

// cleanPath strips one leading and trailing '/' and rejects empty
// segments.
func cleanPath(path string) (string, error) {
	p := strings.TrimSuffix(strings.TrimPrefix(path, "/"), "/")
	if p == "" {
		return "", fmt.Errorf("conf: %q: %w", path, ErrPath)
	}

	for seg := range strings.SplitSeq(p, "/") {
		if seg == "" {
			return "", fmt.Errorf("conf: %q: %w", path, ErrPath)
		}
	}

	return p, nil
}
