package matching

import "cx-chat/domain"

// waitingPool is a FIFO sequence of participants of one role awaiting a
// match. It carries no synchronization on purpose: the engine serializes
// every pool access behind its single decision point, which is what makes
// poll-or-enqueue atomic across both pools.
type waitingPool struct {
	items []domain.ParticipantID
}

func (p *waitingPool) push(id domain.ParticipantID) {
	p.items = append(p.items, id)
}

// poll removes and returns the oldest waiting participant.
func (p *waitingPool) poll() (domain.ParticipantID, bool) {
	if len(p.items) == 0 {
		return 0, false
	}
	head := p.items[0]
	p.items = p.items[1:]
	return head, true
}

func (p *waitingPool) size() int {
	return len(p.items)
}

// snapshot copies the current queue content, oldest first.
func (p *waitingPool) snapshot() []domain.ParticipantID {
	out := make([]domain.ParticipantID, len(p.items))
	copy(out, p.items)
	return out
}
