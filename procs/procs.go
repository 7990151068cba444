package procs

// Procs runs its elements in order, each to completion.
type Procs[C any] []Proc[C]

var _ Proc[any] = Procs[any]{}

func (p Procs[C]) Run(ctx C) (Proc[C], error) {
	if len(p) == 0 {
		return nil, nil
	}
	next, err := p[0].Run(ctx)
	if err != nil {
		return nil, err
	}
	if next == nil {
		if len(p) == 1 {
			return nil, nil
		}
		return p[1:], nil
	}
	rest := make(Procs[C], len(p))
	copy(rest, p)
	rest[0] = next
	return rest, nil
}
