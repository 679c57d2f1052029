package cli

import (
	"context"
	"log"
	"os"

	"github.com/guptaRishi00/waflow/internal/client/session"
)

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	result, err := a.api.Login(ctx, email, password)
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	err = a.session.Save(session.Session{
		Access:  result.AccessToken,
		Refresh: result.RefreshToken,
		User:    result.User,
	})
	if err != nil {
		log.Printf("error saving session: %v", err)
		return err
	}

	log.Printf("Logged in as %s (%s)", result.User.Email, result.User.Role)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if refresh := a.session.Current().Refresh; refresh != "" {
		if err := a.api.Logout(ctx, refresh); err != nil {
			log.Printf("error revoking token: %v", err)
		}
	}

	if err := a.session.Clear(); err != nil {
		log.Printf("error clearing session: %v", err)
		return err
	}

	log.Println("Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	user, err := a.api.Me(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	printlnFn(user.Email, "-", user.Role)
	return nil
}
