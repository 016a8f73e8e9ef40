package estimator

import "fmt"

// Node is one entry of a flattened regression tree. Leaves have both
// children set to -1.
type Node struct {
	Feature   int     `json:"feature" yaml:"feature"`
	Threshold float64 `json:"threshold" yaml:"threshold"`
	Left      int     `json:"left" yaml:"left"`
	Right     int     `json:"right" yaml:"right"`
	Value     float64 `json:"value" yaml:"value"`
}

func (n Node) IsLeaf() bool {
	return n.Left < 0 && n.Right < 0
}

type Tree struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
}

// validate checks that every split references a known feature and that
// children always come after their parent, so traversal terminates.
func (t Tree) validate(featureCount int) error {
	if len(t.Nodes) == 0 {
		return fmt.Errorf("%w: no nodes", ErrInvalidTree)
	}
	for i, node := range t.Nodes {
		if node.IsLeaf() {
			continue
		}
		if node.Feature < 0 || node.Feature >= featureCount {
			return fmt.Errorf("%w: node %d splits on feature %d of %d", ErrInvalidTree, i, node.Feature, featureCount)
		}
		if node.Left <= i || node.Left >= len(t.Nodes) || node.Right <= i || node.Right >= len(t.Nodes) {
			return fmt.Errorf("%w: node %d has children %d/%d", ErrInvalidTree, i, node.Left, node.Right)
		}
	}
	return nil
}

// predict walks the tree for one row. Feature values are compared in
// float32 precision, matching the exporter's split thresholds.
func (t Tree) predict(row []float64) float64 {
	idx := 0
	for {
		node := t.Nodes[idx]
		if node.IsLeaf() {
			return node.Value
		}
		if float64(float32(row[node.Feature])) <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
	}
}

// Forest averages the outputs of its trees. A decision tree is a forest of
// one.
type Forest struct {
	info  Info
	trees []Tree
}

func newForest(info Info, trees []Tree) (*Forest, error) {
	if len(trees) == 0 {
		return nil, fmt.Errorf("%w: no trees", ErrInvalidTree)
	}
	if info.Type == TypeDecisionTree && len(trees) != 1 {
		return nil, fmt.Errorf("%w: decision_tree needs exactly one tree, got %d", ErrInvalidTree, len(trees))
	}
	for i, tree := range trees {
		if err := tree.validate(len(info.FeatureNames)); err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
	}
	info.Trees = len(trees)
	return &Forest{info: info, trees: trees}, nil
}

func (f *Forest) Predict(frame Frame) ([]float64, error) {
	rows, err := frame.matrix(f.info.FeatureNames)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(rows))
	for i, row := range rows {
		var sum float64
		for _, tree := range f.trees {
			sum += tree.predict(row)
		}
		out[i] = sum / float64(len(f.trees))
	}
	return out, nil
}

func (f *Forest) Info() Info {
	info := f.info
	info.FeatureNames = append([]string(nil), f.info.FeatureNames...)
	return info
}
