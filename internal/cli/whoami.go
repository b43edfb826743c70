package cli

import (
	"context"
	"fmt"
)

// WhoAmI resolves the credential held by the console session. The credential
// is re-verified on every call, so a token that expired or a session that
// was invalidated since signin is reported as a failure.
func (a *App) WhoAmI(ctx context.Context) {

	if a.credential == "" {
		fmt.Fprintln(a.out, "Not signed in")
		return
	}

	subject, err := a.engine.Authenticate(ctx, a.credential)
	if err != nil {
		fmt.Fprintf(a.out, "Credential no longer valid: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "Signed in as %s\n", subject)
}
