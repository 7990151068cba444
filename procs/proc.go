package procs

// Proc is one step of a process. Run returns the proc to run next, or nil when done.
type Proc[C any] interface {
	Run(ctx C) (Proc[C], error)
}

// Func adapts a function to Proc.
type Func[C any] func(ctx C) (Proc[C], error)

var _ Proc[any] = Func[any](nil)

func (f Func[C]) Run(ctx C) (Proc[C], error) {
	return f(ctx)
}

// Drive runs proc and its continuations until one returns nil or an error.
func Drive[C any](ctx C, proc Proc[C]) error {
	for proc != nil {
		var err error
		proc, err = proc.Run(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}
