// Package wheel implements the prize-wheel core: the reward table, the
// segment-to-angle mapping, reward selection, and the spin state machine that
// eases the wheel onto its target one frame at a time.
package wheel

import (
	"fmt"

	"github.com/lixenwraith/prize-wheel/constants"
)

// RewardTable is the ordered list of reward labels, one per wheel segment.
// Immutable for the process lifetime once constructed.
type RewardTable [constants.SegmentCount]string

// DefaultRewards is the reference campaign copy
var DefaultRewards = RewardTable{
	"Giro extra",
	"Tarjeta de regalo $50",
	"Sin premio",
	"Tarjeta de regalo $200",
	"Cupón 2x1",
	"Tarjeta de regalo $100",
	"Envío gratis",
	"Descuento 25%",
}

// NewRewardTable builds a table from arbitrary labels, enforcing the segment
// count
func NewRewardTable(labels []string) (RewardTable, error) {
	var t RewardTable
	if len(labels) != constants.SegmentCount {
		return t, fmt.Errorf("reward table needs exactly %d labels, got %d", constants.SegmentCount, len(labels))
	}
	copy(t[:], labels)
	return t, nil
}

// Label returns the reward text for a segment index
func (t RewardTable) Label(i int) string {
	return t[i]
}
