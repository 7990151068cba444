package cmds

// GlobalExecutor holds the commands defined by package init functions.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args on the global executor, exiting the process on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		GlobalExecutor.fail(err)
	}
}
