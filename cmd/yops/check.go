package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"github.com/signadot/yamlops/ir"
	"github.com/signadot/yamlops/irops"
	"github.com/signadot/yamlops/yamlnode"
	"gopkg.in/yaml.v3"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	ye := yamlEngine(cfg.MainConfig)
	yOps := yamlnode.New()
	irOps := irops.New()
	colored := cfg.useColor(cc.Out)
	differ := 0
	err = eachDocs(cc, ye, args, func(file string, docs []*yaml.Node) error {
		mid, err := convertSafe[*yaml.Node, *ir.Node](yOps, irOps, docs)
		if err != nil {
			return err
		}
		back, err := convertSafe[*ir.Node, *yaml.Node](irOps, yOps, mid)
		if err != nil {
			return err
		}
		for i := range docs {
			a, err := yOps.DumpString(docs[i])
			if err != nil {
				return err
			}
			b, err := yOps.DumpString(back[i])
			if err != nil {
				return err
			}
			if a == b {
				continue
			}
			differ++
			theLog.Info("round trip differs", "file", file, "doc", i)
			if _, err := fmt.Fprint(cc.Out, lineDiff(a, b, colored)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if differ > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// lineDiff renders the line by line difference from a to b, with removed
// lines prefixed by "-" and added ones by "+".
func lineDiff(a, b string, colored bool) string {
	var lines []string
	ids := map[string]rune{}
	toRunes := func(s string) []rune {
		var res []rune
		for _, line := range strings.SplitAfter(s, "\n") {
			if line == "" {
				continue
			}
			r, ok := ids[line]
			if !ok {
				r = lineRune(len(lines))
				ids[line] = r
				lines = append(lines, line)
			}
			res = append(res, r)
		}
		return res
	}
	aRunes, bRunes := toRunes(a), toRunes(b)
	diffs := diffpatch.New().DiffMainRunes(aRunes, bRunes, false)

	del, ins := color.New(color.FgRed), color.New(color.FgGreen)
	if !colored {
		del.DisableColor()
		ins.DisableColor()
	}
	buf := &strings.Builder{}
	for _, d := range diffs {
		for _, r := range d.Text {
			line := lines[lineIndex(r)]
			if !strings.HasSuffix(line, "\n") {
				line += "\n"
			}
			switch d.Type {
			case diffpatch.DiffDelete:
				del.Fprint(buf, "-"+line)
			case diffpatch.DiffInsert:
				ins.Fprint(buf, "+"+line)
			case diffpatch.DiffEqual:
				buf.WriteString(" " + line)
			}
		}
	}
	return buf.String()
}

// surrogate code points do not survive conversion to strings.
const surrogateLo, surrogateN = 0xD800, 0x800

func lineRune(i int) rune {
	r := rune(i)
	if r >= surrogateLo {
		r += surrogateN
	}
	return r
}

func lineIndex(r rune) int {
	if r >= surrogateLo+surrogateN {
		r -= surrogateN
	}
	return int(r)
}
