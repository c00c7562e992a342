// Package identity turns stored member records into the client-facing
// user projection.
package identity

import (
	"hash/fnv"
	"strings"
	"unicode/utf8"
)

// fallbackPrefix stands in for an email with nothing before the "@".
const fallbackPrefix = "USR"

// Record is the subset of a stored member that the normalizer reads.
// Password and balance are never read.
type Record struct {
	ID       uint
	Email    string
	Fullname string
	Codename string
	Role     string
}

// UserView is the sanitized user returned to clients and kept in the
// client session.
type UserView struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
	Codename string `json:"codename"`
	Role     string `json:"role"`
}

// Normalize builds a UserView, deriving codename and fullname from the
// email when the record leaves them empty. The record is not modified.
func Normalize(r Record) UserView {
	v := UserView{
		ID:       r.ID,
		Email:    r.Email,
		Fullname: r.Fullname,
		Codename: r.Codename,
		Role:     r.Role,
	}
	if v.Codename == "" {
		v.Codename = Codename(r.Email)
	}
	if v.Fullname == "" {
		v.Fullname = LocalPart(r.Email)
	}
	return v
}

// LocalPart returns the part of email before the first "@".
func LocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

// Codename derives a short uppercase handle from an email address.
// Prefixes of three or more characters yield their first three characters;
// shorter ones get a single digit appended. The digit comes from a hash of
// the full email, so the same email always yields the same codename.
func Codename(email string) string {
	prefix := LocalPart(email)
	if prefix == "" {
		prefix = fallbackPrefix
	}
	if utf8.RuneCountInString(prefix) >= 3 {
		return strings.ToUpper(string([]rune(prefix)[:3]))
	}
	return strings.ToUpper(prefix) + string(rune('0'+suffixDigit(email)))
}

func suffixDigit(email string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return h.Sum32() % 10
}
