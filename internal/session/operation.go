// SPDX-License-Identifier: MIT

package session

// Operation is a menu entry; values match the numbers shown to the user.
type Operation int

const (
	OpTrace Operation = iota + 1
	OpTranspose
	OpAdd
	OpSub
	OpMul
	OpScale
	OpDeterminant
	OpSolve
)

// Operations lists the menu in display order.
var Operations = []Operation{
	OpTrace, OpTranspose, OpAdd, OpSub, OpMul, OpScale, OpDeterminant, OpSolve,
}

// String returns the menu label.
func (o Operation) String() string {
	switch o {
	case OpTrace:
		return "Matrix trace"
	case OpTranspose:
		return "Matrix transpose"
	case OpAdd:
		return "Sum of two matrices"
	case OpSub:
		return "Difference of two matrices"
	case OpMul:
		return "Product of two matrices"
	case OpScale:
		return "Matrix times a number"
	case OpDeterminant:
		return "Matrix determinant"
	case OpSolve:
		return "Solve a system of linear equations"
	default:
		return "unknown"
	}
}

// Slug is the short name used in logs.
func (o Operation) Slug() string {
	switch o {
	case OpTrace:
		return "trace"
	case OpTranspose:
		return "transpose"
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpScale:
		return "scale"
	case OpDeterminant:
		return "det"
	case OpSolve:
		return "solve"
	default:
		return "unknown"
	}
}

func menuItems() []string {
	items := make([]string, len(Operations))
	for i, op := range Operations {
		items[i] = op.String()
	}

	return items
}
