package models

import "strings"

// User is one directory record. JSON names follow the directory wire format.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

// FullName joins first and last name, skipping empty parts.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// UserPatch is a partial User: only non-nil fields are meant to change.
// It is both the body of an update request and one entry of the local
// overlay. Avatar is not editable and therefore absent.
type UserPatch struct {
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// Str returns a pointer to s, for building patches.
func Str(s string) *string {
	return &s
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Email == nil && p.FirstName == nil && p.LastName == nil
}

// Fields lists the wire names of the fields the patch sets.
func (p UserPatch) Fields() []string {
	fields := make([]string, 0, 3)
	if p.Email != nil {
		fields = append(fields, "email")
	}
	if p.FirstName != nil {
		fields = append(fields, "first_name")
	}
	if p.LastName != nil {
		fields = append(fields, "last_name")
	}
	return fields
}

// ApplyTo returns a copy of u with every field set in p replaced.
func (p UserPatch) ApplyTo(u User) User {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	return u
}

// Merge layers next on top of p: fields set in next win, fields only set in
// p are kept. Neither input is modified.
func (p UserPatch) Merge(next UserPatch) UserPatch {
	out := UserPatch{
		Email:     clone(p.Email),
		FirstName: clone(p.FirstName),
		LastName:  clone(p.LastName),
	}
	if next.Email != nil {
		out.Email = clone(next.Email)
	}
	if next.FirstName != nil {
		out.FirstName = clone(next.FirstName)
	}
	if next.LastName != nil {
		out.LastName = clone(next.LastName)
	}
	return out
}

func clone(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// UserPage is one page of a directory listing. Page is 1-based.
type UserPage struct {
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	Data       []User `json:"data"`
}
