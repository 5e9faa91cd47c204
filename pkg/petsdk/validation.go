package petsdk

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	requiredReason = "required"

	MaxTitleLen    = 100
	MaxCommentLen  = 300
	MaxNicknameLen = 20
)

var (
	reUsername = regexp.MustCompile(`^[A-Za-z0-9_]{2,20}$`)
	rePhone    = regexp.MustCompile(`^[0-9][0-9-]{6,18}[0-9]$`)
)

// clean trims an identity field and folds it to NFC so equal looking
// nicknames compare equal.
func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func finish(errs map[string]string) map[string]string {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func requireField(errs map[string]string, field, v string) bool {
	if strings.TrimSpace(v) == "" {
		errs[field] = requiredReason
		return false
	}
	return true
}

func maxLen(errs map[string]string, field, v string, n int) {
	if utf8.RuneCountInString(v) > n {
		errs[field] = fmt.Sprintf("too long (max %d)", n)
	}
}

func checkEmail(errs map[string]string, v string) {
	if !requireField(errs, "email", v) {
		return
	}
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v {
		errs["email"] = "must be a valid email address"
	}
}

func checkBirth(errs map[string]string, v string) {
	if !requireField(errs, "birth", v) {
		return
	}
	if _, err := time.Parse(time.DateOnly, v); err != nil {
		errs["birth"] = "must be YYYY-MM-DD"
	}
}

// Validate returns field errors, or nil when the request is acceptable.
// Title and content are stored as sent, so nothing is normalized here.
func (r BoardSaveRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if requireField(errs, "title", r.Title) {
		maxLen(errs, "title", r.Title, MaxTitleLen)
	}
	requireField(errs, "content", r.Content)
	return finish(errs)
}

func (r CommentSaveRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if requireField(errs, "content", r.Content) {
		maxLen(errs, "content", r.Content, MaxCommentLen)
	}
	return finish(errs)
}

func (r LoginRequest) Validate() map[string]string {
	errs := make(map[string]string)
	requireField(errs, "username", r.Username)
	requireField(errs, "password", r.Password)
	return finish(errs)
}

func (r *JoinRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Nickname = clean(r.Nickname)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.TrimSpace(r.Email)
	r.Birth = strings.TrimSpace(r.Birth)
	r.AuthKey = strings.TrimSpace(r.AuthKey)
}

func (r JoinRequest) Validate() map[string]string {
	errs := make(map[string]string)

	switch {
	case r.Username == "":
		errs["username"] = requiredReason
	case !reUsername.MatchString(r.Username):
		errs["username"] = "must be 2-20 characters of a-z, A-Z, 0-9 or _"
	}

	switch n := utf8.RuneCountInString(r.Password); {
	case n == 0:
		errs["password"] = requiredReason
	case n < 4 || n > 64:
		errs["password"] = "must be 4-64 characters"
	}

	if requireField(errs, "nickname", r.Nickname) {
		maxLen(errs, "nickname", r.Nickname, MaxNicknameLen)
	}
	if requireField(errs, "phone", r.Phone) && !rePhone.MatchString(r.Phone) {
		errs["phone"] = "must be digits and dashes"
	}
	checkEmail(errs, r.Email)
	checkBirth(errs, r.Birth)
	requireField(errs, "authKey", r.AuthKey)

	return finish(errs)
}

func (r AuthEmailRequest) Validate() map[string]string {
	errs := make(map[string]string)
	checkEmail(errs, r.Email)
	return finish(errs)
}

func (r AuthEmailCheckRequest) Validate() map[string]string {
	errs := make(map[string]string)
	checkEmail(errs, r.Email)
	requireField(errs, "authKey", r.AuthKey)
	return finish(errs)
}

func (r IDFindRequest) Validate() map[string]string {
	errs := make(map[string]string)
	requireField(errs, "name", r.Name)
	checkBirth(errs, r.Birth)
	checkEmail(errs, r.Email)
	return finish(errs)
}

func (r PwFindRequest) Validate() map[string]string {
	errs := make(map[string]string)
	requireField(errs, "username", r.Username)
	requireField(errs, "name", r.Name)
	checkBirth(errs, r.Birth)
	checkEmail(errs, r.Email)
	return finish(errs)
}

func (r PwChangeRequest) Validate() map[string]string {
	errs := make(map[string]string)
	switch n := utf8.RuneCountInString(r.Password); {
	case n == 0:
		errs["password"] = requiredReason
	case n < 4 || n > 64:
		errs["password"] = "must be 4-64 characters"
	}
	return finish(errs)
}

func (r UserUpdateRequest) Validate() map[string]string {
	errs := make(map[string]string)
	checkEmail(errs, r.Email)
	requireField(errs, "authKey", r.AuthKey)
	if requireField(errs, "nickname", r.Nickname) {
		maxLen(errs, "nickname", r.Nickname, MaxNicknameLen)
	}
	if requireField(errs, "phone", r.Phone) && !rePhone.MatchString(r.Phone) {
		errs["phone"] = "must be digits and dashes"
	}
	requireField(errs, "password", r.Password)
	return finish(errs)
}
