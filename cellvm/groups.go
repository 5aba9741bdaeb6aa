package cellvm

import (
	"fmt"

	"github.com/cellmeshos/go-cellmesh/cellvm/core"
	"github.com/cellmeshos/go-cellmesh/common/types"
)

type groupKind uint8

const (
	lockKind groupKind = iota
	typeKind
)

// String implements the stringer interface.
func (k groupKind) String() string {
	if k == lockKind {
		return "lock"
	}
	return "type"
}

// scriptGroup is one execution unit: a script shared byte for byte by a set
// of cells, together with the absolute indices of those cells. Two scripts
// that differ anywhere in their serialization form two groups.
type scriptGroup struct {
	script  *types.Script
	kind    groupKind
	inputs  []int
	outputs []int
}

// buildGroups partitions the transaction into script groups: one lock group
// per distinct lock among the inputs, one type group per distinct type over
// inputs and outputs. Groups come out in first appearance order, lock
// groups before type groups, so runs are deterministic.
func buildGroups(view *core.TxView) []*scriptGroup {
	var groups []*scriptGroup
	lockGroups := map[string]*scriptGroup{}
	for i := range view.Tx.Inputs {
		key := string(view.Inputs.Locks[i])
		group := lockGroups[key]
		if group == nil {
			group = &scriptGroup{script: &view.Tx.Inputs[i].Output.Lock, kind: lockKind}
			lockGroups[key] = group
			groups = append(groups, group)
		}
		group.inputs = append(group.inputs, i)
	}
	typeGroups := map[string]*scriptGroup{}
	for i := range view.Tx.Inputs {
		if view.Inputs.Types[i] == nil {
			continue
		}
		key := string(view.Inputs.Types[i])
		group := typeGroups[key]
		if group == nil {
			group = &scriptGroup{script: view.Tx.Inputs[i].Output.Type, kind: typeKind}
			typeGroups[key] = group
			groups = append(groups, group)
		}
		group.inputs = append(group.inputs, i)
	}
	for i := range view.Tx.Outputs {
		if view.Outputs.Types[i] == nil {
			continue
		}
		key := string(view.Outputs.Types[i])
		group := typeGroups[key]
		if group == nil {
			group = &scriptGroup{script: view.Tx.Outputs[i].Output.Type, kind: typeKind}
			typeGroups[key] = group
			groups = append(groups, group)
		}
		group.outputs = append(group.outputs, i)
	}
	return groups
}

// GroupInfo describes one script group of a transaction.
type GroupInfo struct {
	Kind       string
	CodeHash   types.Hash32
	ScriptHash types.Hash32
	Inputs     []int
	Outputs    []int
}

// Inspect partitions tx into script groups without running any guard.
func (vm *VM) Inspect(tx *types.Transaction) ([]GroupInfo, error) {
	if err := tx.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrMalformed, err)
	}
	view := core.NewTxView(tx, vm.hashScript)
	groups := buildGroups(view)
	infos := make([]GroupInfo, len(groups))
	for i, group := range groups {
		infos[i] = GroupInfo{
			Kind:       group.kind.String(),
			CodeHash:   group.script.CodeHash,
			ScriptHash: vm.hashScript(group.script.Bytes()),
			Inputs:     group.inputs,
			Outputs:    group.outputs,
		}
	}
	return infos, nil
}
