package model

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// WriteLP writes the model in CPLEX LP text format for inspection with
// external tools. Variables and rows appear in declaration order, so output
// is deterministic. This package only writes the format; reading model files
// is the solver's job.
func (m *Model) WriteLP(w io.Writer) error {
	if err := m.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "\\ Problem: %s\n", m.name)

	if m.obj.sense == Max {
		fmt.Fprintln(bw, "Maximize")
	} else {
		fmt.Fprintln(bw, "Minimize")
	}
	if c := m.obj.expr.Constant(); c != 0 {
		// LP format has no objective constant; solvers fold it separately.
		fmt.Fprintf(bw, "\\ objective constant: %s\n", fmtNum(c))
	}
	fmt.Fprintf(bw, " obj: %s\n", lpTerms(m.obj.expr))

	fmt.Fprintln(bw, "Subject To")
	for _, c := range m.cons {
		rhs := c.rhs - c.expr.Constant()
		fmt.Fprintf(bw, " %s: %s %s %s\n", c.name, lpTerms(c.expr), c.rel, fmtNum(rhs))
	}

	fmt.Fprintln(bw, "Bounds")
	for _, v := range m.vars {
		if line, ok := boundLine(v); ok {
			fmt.Fprintf(bw, " %s\n", line)
		}
	}

	writeDomainSection(bw, "General", m.vars, Integer)
	writeDomainSection(bw, "Binary", m.vars, Binary)

	fmt.Fprintln(bw, "End")

	return bw.Flush()
}

// ExportLP writes the model to an LP file at path.
func (m *Model) ExportLP(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("lp export: %w", err)
	}
	if err := m.WriteLP(f); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// lpTerms renders the variable terms of an expression without its constant.
func lpTerms(e *Expr) string {
	var b strings.Builder
	wrote := false
	e.Visit(func(v *Var, coef float64) {
		writeTerm(&b, coef, v.name, !wrote)
		wrote = true
	})
	if !wrote {
		b.WriteString("0")
	}

	return b.String()
}

// boundLine renders the Bounds entry for a variable, with ok=false when the
// LP default [0, +inf) already covers it. Binary variables are declared in
// the Binary section instead.
func boundLine(v *Var) (string, bool) {
	if v.dom == Binary {
		return "", false
	}

	loInf := math.IsInf(v.lb, -1)
	upInf := math.IsInf(v.ub, 1)
	switch {
	case loInf && upInf:
		return v.name + " free", true
	case loInf:
		return fmt.Sprintf("-infinity <= %s <= %s", v.name, fmtNum(v.ub)), true
	case upInf:
		if v.lb == 0 {
			return "", false
		}

		return fmt.Sprintf("%s >= %s", v.name, fmtNum(v.lb)), true
	default:
		if v.lb == v.ub {
			return fmt.Sprintf("%s = %s", v.name, fmtNum(v.lb)), true
		}

		return fmt.Sprintf("%s <= %s <= %s", fmtNum(v.lb), v.name, fmtNum(v.ub)), true
	}
}

// writeDomainSection lists the variables of one integral domain, omitting
// the section when empty.
func writeDomainSection(w io.Writer, header string, vars []*Var, dom Domain) {
	wrote := false
	for _, v := range vars {
		if v.dom != dom {
			continue
		}
		if !wrote {
			fmt.Fprintln(w, header)
			wrote = true
		}
		fmt.Fprintf(w, " %s\n", v.name)
	}
}

func fmtNum(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
