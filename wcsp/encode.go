package wcsp

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// xcspDoc mirrors the subset of the XCSP 2.1 WCSP schema spec.md §6.4
// requires: one shared {0,1} domain, one variable per conflict edge,
// one soft relation/constraint pair per conflict path.
type xcspDoc struct {
	XMLName     xml.Name     `xml:"instance"`
	Type        string       `xml:"type,attr"`
	Domains     xcspDomains  `xml:"domains"`
	Variables   xcspVars     `xml:"variables"`
	Relations   xcspRels     `xml:"relations"`
	Constraints xcspCons     `xml:"constraints"`
	MaximalCost int          `xml:"presentation>maximalCost"`
}

type xcspDomains struct {
	Domain []xcspDomain `xml:"domain"`
}

type xcspDomain struct {
	Name   string `xml:"name,attr"`
	NbVal  int    `xml:"nbValues,attr"`
	Values string `xml:",chardata"`
}

type xcspVars struct {
	Variable []xcspVar `xml:"variable"`
}

type xcspVar struct {
	Name   string `xml:"name,attr"`
	Domain string `xml:"domain,attr"`
}

type xcspRels struct {
	Relation []xcspRel `xml:"relation"`
}

type xcspRel struct {
	Name        string `xml:"name,attr"`
	Arity       int    `xml:"arity,attr"`
	NbTuples    int    `xml:"nbTuples,attr"`
	Semantics   string `xml:"semantics,attr"`
	DefaultCost int    `xml:"defaultCost,attr"`
	Tuples      string `xml:",chardata"`
}

type xcspCons struct {
	Constraint []xcspCon `xml:"constraint"`
}

type xcspCon struct {
	Name     string `xml:"name,attr"`
	Arity    int    `xml:"arity,attr"`
	Scope    string `xml:"scope,attr"`
	Relation string `xml:"reference,attr"`
}

// domainName is the shared {0,1} domain every variable references.
const domainName = "D0"

// WriteInstance serializes inst as an XCSP 2.1 WCSP instance
// (spec.md §6.4). Returns ErrEmptyInstance if inst has no variables,
// or ErrZeroArity if any relation has arity 0 (spec.md §7 "a path
// reports arity 0 when treated as a conflict path").
func WriteInstance(w io.Writer, inst Instance) error {
	if len(inst.Variables) == 0 {
		return ErrEmptyInstance
	}
	for _, r := range inst.Relations {
		if r.Arity == 0 {
			return ErrZeroArity
		}
	}

	doc := xcspDoc{
		Type:        "WCSP",
		MaximalCost: inst.MaximalCost,
		Domains: xcspDomains{Domain: []xcspDomain{
			{Name: domainName, NbVal: 2, Values: "0 1"},
		}},
	}
	for _, v := range inst.Variables {
		doc.Variables.Variable = append(doc.Variables.Variable, xcspVar{Name: v.Name, Domain: domainName})
	}
	for _, r := range inst.Relations {
		tokens := make([]string, len(r.Tuple))
		for i, t := range r.Tuple {
			tokens[i] = fmt.Sprintf("%d", t)
		}
		doc.Relations.Relation = append(doc.Relations.Relation, xcspRel{
			Name:        r.Name,
			Arity:       r.Arity,
			NbTuples:    1,
			Semantics:   "soft",
			DefaultCost: r.DefaultCost,
			Tuples:      strings.Join(tokens, " "),
		})
	}
	for _, c := range inst.Constraints {
		doc.Constraints.Constraint = append(doc.Constraints.Constraint, xcspCon{
			Name:     c.Name,
			Arity:    len(c.VarNames),
			Scope:    strings.Join(c.VarNames, " "),
			Relation: c.RelationName,
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	return enc.Encode(doc)
}
