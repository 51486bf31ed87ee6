package ropes

import (
	"fmt"
	"io"
	"strings"
)

type nodeids struct {
	idTable map[*node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*node]int),
		max:     1,
	}
}

func (ids nodeids) find(n *node) int {
	return ids.idTable[n]
}

func (ids *nodeids) alloc(n *node) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Rope2Dot outputs the internal structure of a Rope in Graphviz DOT format
// (for debugging purposes).
func Rope2Dot(text *Rope, w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable()
	if text.IsVoid() {
		nodelist.WriteString(fmt.Sprintf("\"%d\" %s;\n", 0, emptyNode()))
	}
	err := traverse(text.Root().n, 0, 0, func(n *node, pos int, depth int) error {
		id := ids.alloc(n)
		styles := nodeDotStyles(n.isLeaf())
		if n.isLeaf() {
			label := fmt.Sprintf("%d @%d\\n“%s”", n.weight, pos, dotEscape(strstart(n.text)))
			nodelist.WriteString(fmt.Sprintf("\"%d\" [label=\"%s\"%s];\n", id, label, styles))
			return nil
		}
		edgelist.WriteString(fmt.Sprintf("\"%d\" -> \"%d\";\n", id, ids.alloc(n.left)))
		edgelist.WriteString(fmt.Sprintf("\"%d\" -> \"%d\";\n", id, ids.alloc(n.right)))
		nodelist.WriteString(fmt.Sprintf("\"%d\" [label=%d%s];\n", id, n.weight, styles))
		return nil
	})
	if err != nil {
		tracer().Errorf("rope DOT: %s", err.Error())
		return err
	}
	for _, s := range []string{
		"strict digraph {\n",
		"\tnode [fontname=Arial,fontsize=12];\n",
		nodelist.String(),
		edgelist.String(),
		"}\n",
	} {
		if _, err = io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`).Replace(s)
}

// strstart shortens a fragment for display.
func strstart(s string) string {
	if len(s) > 8 {
		return s[:7] + "…"
	}
	return s
}
