package cli

import (
	"context"
	"fmt"

	"github.com/dbelakovs/authcore/internal/common"
)

func (a *App) SignIn(ctx context.Context) {

	name, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	credential, err := a.engine.SignIn(ctx, name, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "Sign-in failed: %v\n", err)
		return
	}

	a.credential = credential
	fmt.Fprintf(a.out, "Credential:\n%s\n", credential)
}
