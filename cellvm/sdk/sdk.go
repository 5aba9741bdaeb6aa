// Package sdk builds well formed cell transactions for tests and tooling.
package sdk

import (
	"bytes"

	"github.com/holiman/uint256"
	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/cellmeshos/go-cellmesh/cellvm/templates/alwayssuccess"
	"github.com/cellmeshos/go-cellmesh/cellvm/templates/p2pk"
	"github.com/cellmeshos/go-cellmesh/cellvm/templates/sudt"
	"github.com/cellmeshos/go-cellmesh/cellvm/templates/tokensale"
	"github.com/cellmeshos/go-cellmesh/common/types"
)

// Keygen derives a deterministic ed25519 key pair from seed.
func Keygen(seed [ed25519.SeedSize]byte) (ed25519.PublicKey, ed25519.PrivateKey) {
	priv := ed25519.NewKeyFromSeed(seed[:])
	return priv.Public().(ed25519.PublicKey), priv
}

// P2PKScript locks a cell to an ed25519 public key.
func P2PKScript(pub ed25519.PublicKey) types.Script {
	return types.Script{CodeHash: p2pk.CodeHash, Args: bytes.Clone(pub)}
}

// AlwaysSuccessScript is an unconditional lock. id keeps distinct capacity
// pools in distinct script groups.
func AlwaysSuccessScript(id byte) types.Script {
	return types.Script{CodeHash: alwayssuccess.CodeHash, Args: []byte{id}}
}

// TokenScript is the token type of the kind controlled by owner.
func TokenScript(owner types.Hash32) types.Script {
	return types.Script{CodeHash: sudt.CodeHash, Args: owner.Bytes()}
}

// SaleScript locks a sale cell: owner may restructure it, anyone else may
// buy tokens at cost capacity per token.
func SaleScript(owner types.Hash32, cost uint64, saleID uint32) types.Script {
	args := tokensale.Args{Owner: owner, UnitCost: cost, SaleID: saleID}
	return types.Script{CodeHash: tokensale.CodeHash, Args: args.Encode()}
}

// CapacityCell holds plain capacity under lock.
func CapacityCell(capacity uint64, lock types.Script) types.Cell {
	return types.Cell{Output: types.CellOutput{Capacity: capacity, Lock: lock}}
}

// TokenCell holds amount tokens of the given kind under lock.
func TokenCell(capacity uint64, lock, token types.Script, amount uint64) types.Cell {
	return types.Cell{
		Output: types.CellOutput{Capacity: capacity, Lock: lock, Type: &token},
		Data:   types.TokenData(uint256.NewInt(amount)),
	}
}

// SaleCell is a sale cell: a token balance and its asking capacity under the
// sale lock.
func SaleCell(capacity uint64, sale, token types.Script, amount uint64) types.Cell {
	return TokenCell(capacity, sale, token, amount)
}

// TxBuilder assembles a transaction.
type TxBuilder struct {
	tx types.Transaction
}

// NewTx starts an empty transaction.
func NewTx() *TxBuilder {
	return &TxBuilder{}
}

// AddInput appends a consumed cell.
func (b *TxBuilder) AddInput(cell types.Cell) *TxBuilder {
	b.tx.Inputs = append(b.tx.Inputs, cell)
	return b
}

// AddOutput appends a created cell.
func (b *TxBuilder) AddOutput(cell types.Cell) *TxBuilder {
	b.tx.Outputs = append(b.tx.Outputs, cell)
	return b
}

// Witness sets the witness of the input at index, growing the witness list
// as needed.
func (b *TxBuilder) Witness(index int, witness []byte) *TxBuilder {
	for len(b.tx.Witnesses) <= index {
		b.tx.Witnesses = append(b.tx.Witnesses, nil)
	}
	b.tx.Witnesses[index] = witness
	return b
}

// Build returns the assembled transaction.
func (b *TxBuilder) Build() *types.Transaction {
	return &b.tx
}

// Sign fills the witness of every input locked to the key's public key with
// an ed25519 signature over the transaction ID. Witnesses do not change the
// ID, so signing order does not matter.
func Sign(priv ed25519.PrivateKey, tx *types.Transaction) {
	target := P2PKScript(priv.Public().(ed25519.PublicKey))
	id := tx.ID()
	sig := ed25519.Sign(priv, id[:])
	for i := range tx.Inputs {
		if tx.Inputs[i].Output.Lock.Equal(&target) {
			for len(tx.Witnesses) <= i {
				tx.Witnesses = append(tx.Witnesses, nil)
			}
			tx.Witnesses[i] = sig
		}
	}
}
