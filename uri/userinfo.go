package uri

import (
	"github.com/ghettovoice/uriparse/internal/grammar"
	"github.com/ghettovoice/uriparse/internal/util"
)

// UserInfo is a container for user credentials of an authority.
// The zero value means the authority has no userinfo at all.
type UserInfo struct {
	usrname, passwd string
	hasPasswd       bool
}

// User returns a [UserInfo] containing the provided username and no password.
func User(usrname string) UserInfo {
	return UserInfo{usrname: usrname}
}

// UserPassword returns a [UserInfo] containing the provided username and password.
// The password may be empty, it is still rendered after a ":".
func UserPassword(usrname, passwd string) UserInfo {
	return UserInfo{usrname: usrname, passwd: passwd, hasPasswd: true}
}

// Username returns the decoded username.
func (ui UserInfo) Username() string { return ui.usrname }

// Password returns the decoded password, in case it is set, and a bool flag indicating whether it is set.
func (ui UserInfo) Password() (string, bool) { return ui.passwd, ui.hasPasswd }

func shouldEscapeUserChar(c byte) bool { return !grammar.IsRegNameChar(c) }

func shouldEscapePasswdChar(c byte) bool { return !grammar.IsUserInfoChar(c) }

// String returns the escaped representation of the UserInfo, without the trailing "@".
func (ui UserInfo) String() string {
	return ui.render(false)
}

func (ui UserInfo) render(hidePasswd bool) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(grammar.EscapeAll(ui.usrname, shouldEscapeUserChar))
	if ui.hasPasswd {
		sb.WriteString(":")
		if hidePasswd && ui.passwd != "" {
			sb.WriteString("xxxxx")
		} else {
			sb.WriteString(grammar.EscapeAll(ui.passwd, shouldEscapePasswdChar))
		}
	}
	return sb.String()
}

// Equal compares this UserInfo with another for equality.
func (ui UserInfo) Equal(val any) bool {
	var other UserInfo
	switch v := val.(type) {
	case UserInfo:
		other = v
	case *UserInfo:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return ui.usrname == other.usrname && ui.passwd == other.passwd && ui.hasPasswd == other.hasPasswd
}

// IsValid checks whether the UserInfo has a username.
func (ui UserInfo) IsValid() bool { return ui.usrname != "" }

// IsZero checks whether the UserInfo is empty.
func (ui UserInfo) IsZero() bool { return ui.usrname == "" && ui.passwd == "" && !ui.hasPasswd }
