package domain

type Connection struct {
	Identity Identity
	Left     EndpointRef
	Right    EndpointRef
}

// Ledger is the append-only set of committed connections for one level.
type Ledger struct {
	conns []Connection
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Append(c Connection) {
	l.conns = append(l.conns, c)
}

func (l *Ledger) Count() int { return len(l.conns) }

func (l *Ledger) All() []Connection {
	out := make([]Connection, len(l.conns))
	copy(out, l.conns)
	return out
}
