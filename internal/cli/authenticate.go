package cli

import (
	"context"
	"fmt"
)

func (a *App) Authenticate(ctx context.Context) {

	credential, err := GetSimpleText(a.reader, "Enter credential", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	subject, err := a.engine.Authenticate(ctx, credential)
	if err != nil {
		fmt.Fprintf(a.out, "Authentication failed: %v\n", err)
		return
	}

	a.credential = credential
	fmt.Fprintf(a.out, "Authenticated as %s\n", subject)
}
