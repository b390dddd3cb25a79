// SPDX-License-Identifier: MIT

package input

import (
	"fmt"

	"github.com/katalvlaran/matcalc/matrix"
)

// Source numbers as presented to the user.
const (
	SourceConsole = iota + 1
	SourceRandom
	SourceFile
)

// SourceTitle and SourceItems describe the source menu.
var (
	SourceTitle = "Choose how to enter the matrix (type the number):"
	SourceItems = []string{"Console input", "Random values", "Read from file"}
)

// Chooser picks one of items and returns its 1-based position.
// *Prompter is the plain-text implementation.
type Chooser interface {
	Choose(title string, items []string) (int, error)
}

// Provider asks for a source and delegates to it.
type Provider struct {
	chooser Chooser
	sources map[int]Source
}

// NewProvider wires the three sources; chooser may be nil to use p itself.
func NewProvider(p *Prompter, random *Random, chooser Chooser) *Provider {
	if chooser == nil {
		chooser = p
	}

	return &Provider{
		chooser: chooser,
		sources: map[int]Source{
			SourceConsole: NewConsole(p),
			SourceRandom:  random,
			SourceFile:    NewFileSource(p),
		},
	}
}

// Matrix asks which source to use and returns the rows×cols matrix it yields.
func (pv *Provider) Matrix(rows, cols int) (*matrix.Dense, error) {
	choice, err := pv.chooser.Choose(SourceTitle, SourceItems)
	if err != nil {
		return nil, err
	}
	src, ok := pv.sources[choice]
	if !ok {
		return nil, fmt.Errorf("source %d: %w", choice, ErrChoice)
	}

	return src.Matrix(rows, cols)
}
