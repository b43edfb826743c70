package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "authcore console (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		fmt.Fprint(a.out, "auth> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "help":
			fmt.Fprintln(a.out, "Available commands: register, signin, authenticate, whoami, exit")

		case "register":
			a.Register(ctx)

		case "signin":
			a.SignIn(ctx)

		case "authenticate":
			a.Authenticate(ctx)

		case "whoami":
			a.WhoAmI(ctx)

		case "exit":
			return

		default:
			fmt.Fprintf(a.out, "Unknown command %q\n", line)
		}
	}
}
