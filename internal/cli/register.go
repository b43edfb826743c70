package cli

import (
	"context"
	"fmt"

	"github.com/dbelakovs/authcore/internal/common"
)

func (a *App) Register(ctx context.Context) {

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

	if err := a.engine.Register(ctx, name, string(password)); err != nil {
		fmt.Fprintf(a.out, "Registration failed: %v\n", err)
		return
	}

	fmt.Fprintln(a.out, "Success!")
}
