package views

import (
	"banking-console/pkg/auth"
)

func ToSessionView(session *auth.Session) SessionView {
	if session == nil {
		return SessionView{}
	}
	return SessionView{
		Username: session.Username,
		Roles:    session.Roles,
		IsAdmin:  session.IsAdmin(),
	}
}
