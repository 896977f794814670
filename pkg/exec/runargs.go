package exec

// RunArgs exposes the command, arguments and other options when running console commands
type RunArgs struct {
	Cmd  string
	Args []string
	// Cwd is the working directory of the command. Empty means the current directory.
	Cwd string
	// Env holds additional environment variables, appended to the current environment.
	Env []string
}

// NewRunArgs creates a new instance with the specified cmd and args
func NewRunArgs(cmd string, args ...string) RunArgs {
	return RunArgs{
		Cmd:  cmd,
		Args: args,
	}
}

// Updates the current working directory (cwd) for the command
func (b RunArgs) WithCwd(cwd string) RunArgs {
	b.Cwd = cwd
	return b
}

// Updates the environment variables to used for the command
func (b RunArgs) WithEnv(env []string) RunArgs {
	b.Env = env
	return b
}
