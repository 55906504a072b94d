package main

import (
	"apptendo/cmd/apptendo/commands"
	"apptendo/lib/util/serviceutil"
)

func main() {
	ctx, cancel := serviceutil.SignalContext()
	defer cancel()
	commands.ExecuteContext(ctx)
}
