package mecab

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rupor-github/kmorph/morphemes"
)

// Node is a single element of mecab lattice path, sentence begin and end included.
type Node struct {
	Surface string
	Feature string
	Next    *Node
}

// Output formats making mecab print every node on the path including BOS and EOS ones. Mecab unescapes \t and \n.
var nodeFormatArgs = []string{
	`--node-format=%m\t%H\n`,
	`--unk-format=%m\t%H\n`,
	`--bos-format=\tBOS/EOS,*,*,*,*,*,*,*,*\n`,
	`--eos-format=\tBOS/EOS,*,*,*,*,*,*,*,*\n`,
}

// NodeTagger is for mecab builds (mecab-ko-msvc on Windows) which are only usable through node traversal. Pos walks
// nodes the way native bindings do and presents result in common shape.
type NodeTagger struct {
	log  *zap.Logger
	run  runner
	path string
}

func newNodeTagger(run runner, path string, log *zap.Logger) *NodeTagger {
	return &NodeTagger{log: log, run: run, path: path}
}

// ParseToNode analyzes text and returns first node of the path.
func (t *NodeTagger) ParseToNode(text string) (*Node, error) {
	out, err := t.run(text, t.path, nodeFormatArgs...)
	if err != nil {
		return nil, err
	}
	return parseNodes(out)
}

// Pos implements morphemes.Analyzer.
func (t *NodeTagger) Pos(text string) ([]morphemes.Token, error) {

	start := time.Now()
	node, err := t.ParseToNode(text)
	if err != nil {
		return nil, err
	}

	outputs := []morphemes.Token{}
	nodes := 0
	for ; node != nil; node = node.Next {
		nodes++
		tag := firstField(node.Feature)
		if !strings.Contains(tag, "BOS") && !strings.Contains(tag, "EOS") {
			outputs = append(outputs, morphemes.Token{Surface: node.Surface, Tag: tag})
		}
	}
	t.log.Debug("Nodes traversed",
		zap.String("program", t.path),
		zap.Int("nodes", nodes),
		zap.Int("tokens", len(outputs)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return outputs, nil
}

// Morphs implements morphemes.Analyzer.
func (t *NodeTagger) Morphs(text string) ([]string, error) {
	tokens, err := t.Pos(text)
	if err != nil {
		return nil, err
	}
	return morphemes.Surfaces(tokens), nil
}

// parseNodes links nodes printed with nodeFormatArgs into list.
func parseNodes(out []byte) (*Node, error) {

	var head, tail *Node

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if len(line) == 0 {
			continue
		}
		surface, feature, ok := cutTab(line)
		if !ok {
			return nil, fmt.Errorf("unexpected mecab node at line %d: %q", n, line)
		}
		node := &Node{Surface: surface, Feature: feature}
		if head == nil {
			head = node
		} else {
			tail.Next = node
		}
		tail = node
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read mecab nodes: %w", err)
	}
	return head, nil
}
